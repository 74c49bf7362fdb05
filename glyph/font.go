package glyph

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/sdfgen/field"
)

// FontProvider rasterizes glyph coverage masks from an OpenType/TrueType
// font and reports metrics scaled to pixel units.
//
// Two parsers share the work: golang.org/x/image/font/opentype rasterizes
// the coverage mask, while go-text/typesetting reads design-unit metrics
// (advance, bearings, upem). Both wrap the same font data.
//
// FontProvider is safe for concurrent use: the parsed fonts are read-only,
// and the per-call rasterizer and metrics faces are created fresh on each
// MaskFor (neither is concurrency-safe itself, but creating them is cheap).
type FontProvider struct {
	otFont *opentype.Font
	gtFont *gtfont.Font

	// size is the mask resolution in pixels (also the ppem).
	size int

	// scale converts font design units to pixels: size / unitsPerEm.
	scale float64
}

// NewFontProvider parses font data (TTF/OTF) and prepares a provider that
// rasterizes size×size coverage masks.
func NewFontProvider(data []byte, size int) (*FontProvider, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph: mask size must be positive, got %d", size)
	}

	otFont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font metrics: %w", err)
	}

	return &FontProvider{
		otFont: otFont,
		gtFont: gtFace.Font,
		size:   size,
		scale:  float64(size) / float64(gtFace.Upem()),
	}, nil
}

// Size returns the mask resolution in pixels.
func (p *FontProvider) Size() int { return p.size }

// MaskFor implements MaskProvider. The glyph is rasterized centered in a
// size×size cell; metrics come from the font's design-unit tables scaled by
// size/upem. Characters the font does not cover yield a MissingGlyphError.
func (p *FontProvider) MaskFor(r rune) (*field.Mask, Metrics, error) {
	// go-text font.Face is not safe for concurrent use; one per call.
	face := gtfont.NewFace(p.gtFont)

	gid, ok := face.NominalGlyph(r)
	if !ok {
		return nil, Metrics{}, &MissingGlyphError{Rune: r}
	}

	m := Metrics{
		Advance: float64(face.HorizontalAdvance(gid)) * p.scale,
	}
	if ext, ok := face.GlyphExtents(gid); ok {
		m.BearingX = float64(ext.XBearing) * p.scale
		m.BearingY = float64(ext.YBearing) * p.scale
	}

	mask, err := p.rasterize(r)
	if err != nil {
		return nil, Metrics{}, err
	}
	return mask, m, nil
}
