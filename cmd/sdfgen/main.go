// Command sdfgen renders an SDF texture atlas and registry from a font
// and/or the built-in analytic shapes.
//
// Output is written to <out>/sdf_atlas.png and <out>/sdf_registry.json.
// Files are only written after the whole pipeline has succeeded, so a
// failed run never leaves partial output behind.
package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/sdfgen"
	"github.com/gogpu/sdfgen/glyph"
)

func main() {
	var (
		fontPath     = flag.String("font", "", "font file (TTF/OTF) to render characters from")
		outDir       = flag.String("out", "./output", "output directory")
		sdfSize      = flag.Int("sdf-size", 64, "per-tile SDF resolution in pixels")
		atlasSize    = flag.Int("atlas-size", 1024, "atlas size in pixels")
		sdfRange     = flag.Float64("range", 4.0, "distance field range in pixels")
		padding      = flag.Int("padding", 2, "padding around each tile in its cell")
		shapes       = flag.Bool("shapes", false, "include analytic shapes (circle, triangle, square)")
		multiChannel = flag.Bool("multi-channel", false, "emit a three-channel (RGB) atlas")
		characters   = flag.String("characters", "", "character set (default: a-zA-Z0-9)")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		sdfgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := sdfgen.DefaultConfig()
	cfg.SDFSize = *sdfSize
	cfg.AtlasSize = *atlasSize
	cfg.Range = *sdfRange
	cfg.Padding = *padding
	cfg.MultiChannel = *multiChannel
	cfg.IncludeShapes = *shapes
	if *characters != "" {
		cfg.Characters = *characters
	}

	var provider glyph.MaskProvider
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("read font: %v", err)
		}
		fp, err := glyph.NewFontProvider(data, cfg.SDFSize)
		if err != nil {
			log.Fatalf("load font: %v", err)
		}
		provider = fp
	} else if !*shapes {
		log.Fatal("nothing to generate: pass -font and/or -shapes")
	}

	gen := sdfgen.NewGenerator(cfg, provider)
	result, err := gen.Generate(context.Background())
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	atlasPath := filepath.Join(*outDir, "sdf_atlas.png")
	if err := writePNG(atlasPath, result); err != nil {
		log.Fatalf("write atlas: %v", err)
	}
	log.Printf("atlas written to %s", atlasPath)

	registryPath := filepath.Join(*outDir, "sdf_registry.json")
	if err := writeRegistry(registryPath, result); err != nil {
		log.Fatalf("write registry: %v", err)
	}
	log.Printf("registry written to %s", registryPath)
}

func writePNG(path string, result *sdfgen.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, result.Image); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeRegistry(path string, result *sdfgen.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := result.Registry.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
