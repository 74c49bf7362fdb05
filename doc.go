// Package sdfgen generates signed distance field (SDF) texture atlases from
// font glyphs and analytic shapes, and emits a JSON registry describing
// where each character/shape lives in the atlas plus the metrics needed to
// lay out text with it.
//
// # Pipeline
//
//  1. A glyph.MaskProvider rasterizes each character into a binary coverage
//     mask (analytic shapes skip this step and evaluate closed-form
//     distance functions directly).
//  2. field.ComputeSDF turns each mask into a signed distance field with a
//     bounded search radius; negative inside, positive outside.
//  3. atlas.Pack lays the encoded tiles out in a deterministic row-major
//     grid inside one square sprite sheet.
//  4. registry.Build merges the placements with per-glyph metrics into the
//     final registry document.
//
// # Usage
//
//	provider, err := glyph.NewFontProvider(fontData, 64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := sdfgen.DefaultConfig()
//	cfg.IncludeShapes = true
//
//	gen := sdfgen.NewGenerator(cfg, provider)
//	result, err := gen.Generate(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// result.Image is the atlas; result.Registry maps ids to rectangles.
//
// # Multi-channel mode
//
// Config.MultiChannel selects a three-channel (RGB) field. Because the
// engine's input is a coverage mask, which carries no edge identity, the
// channels are replicated copies of the scalar field rather than a true
// per-edge MSDF; see the field.ComputeMSDF conformance note. The mode
// exists for consumers whose shaders expect an RGB median decode, not for
// corner preservation.
//
// # Distance encoding
//
// Stored fields keep signed pixel distances clamped to [-range, +range].
// Encoded tiles map distance d to (d/range + 1) * 0.5 in [0, 1]: fully
// inside is 0, the boundary is 0.5, fully outside is 1.
package sdfgen
