package sdfgen

import (
	"context"
	"fmt"
	"image"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sdfgen/atlas"
	"github.com/gogpu/sdfgen/field"
	"github.com/gogpu/sdfgen/glyph"
	"github.com/gogpu/sdfgen/internal/parallel"
	"github.com/gogpu/sdfgen/registry"
)

// Generator runs the full SDF atlas pipeline: per-character fields from the
// mask provider, analytic shape fields, grid packing, registry assembly.
type Generator struct {
	config   Config
	provider glyph.MaskProvider

	// now supplies the registry provenance timestamp. An explicit clock
	// rather than an ambient time.Now call, so tests can pin it.
	now func() time.Time
}

// NewGenerator creates a generator. The provider may be nil when the
// configuration only asks for shapes.
func NewGenerator(config Config, provider glyph.MaskProvider) *Generator {
	return &Generator{
		config:   config,
		provider: provider,
		now:      time.Now,
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// SetClock overrides the timestamp source used for registry metadata.
// Passing nil restores time.Now.
func (g *Generator) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	g.now = now
}

// Result is the output of one pipeline run: the packed atlas image and the
// registry describing it. Both are immutable once returned.
type Result struct {
	Image    image.Image
	Registry *registry.Registry
}

// Generate runs the pipeline. Tile generation fans out across a worker
// pool; ctx is checked at tile granularity, so cancellation takes effect
// between tiles, never mid-pixel-loop.
//
// Either the whole run succeeds or an error is returned before any output
// exists; there is no partial atlas or registry.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	runes := normalizeCharacters(g.config.Characters)
	if g.provider == nil {
		runes = nil
	}

	metrics := make(map[rune]registry.GlyphMetrics, len(runes))
	tiles := make([]atlas.Tile, 0, len(runes)+len(field.Shapes))

	charTiles, err := g.generateCharTiles(ctx, runes, metrics)
	if err != nil {
		return nil, err
	}
	tiles = append(tiles, charTiles...)

	if g.config.IncludeShapes {
		shapeTiles, err := g.generateShapeTiles(ctx)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, shapeTiles...)
	}

	Logger().Debug("tiles generated",
		"characters", len(charTiles),
		"shapes", len(tiles)-len(charTiles))

	format := atlas.FormatSingleChannel
	if g.config.MultiChannel {
		format = atlas.FormatMultiChannel
	}

	packed, err := atlas.Pack(tiles, g.config.AtlasSize, g.config.Padding, format)
	if err != nil {
		return nil, err
	}

	reg, err := registry.Build(registry.BuildInfo{
		AtlasSize:  g.config.AtlasSize,
		SDFRange:   g.config.Range,
		Resolution: g.config.SDFSize,
		Padding:    g.config.Padding,
		Format:     format,
	}, metrics, packed.Placements, g.now())
	if err != nil {
		return nil, err
	}

	Logger().Info("atlas generated",
		"tiles", len(tiles),
		"atlas_size", g.config.AtlasSize,
		"format", format.String())

	return &Result{Image: packed.Image, Registry: reg}, nil
}

// generateCharTiles computes one encoded SDF tile per character, in rune
// order, filling metrics as it goes. Tiles are computed concurrently but
// the returned slice preserves the deterministic input order.
func (g *Generator) generateCharTiles(ctx context.Context, runes []rune, metrics map[rune]registry.GlyphMetrics) ([]atlas.Tile, error) {
	if len(runes) == 0 {
		return nil, nil
	}

	tiles := make([]atlas.Tile, len(runes))
	perRune := make([]glyph.Metrics, len(runes))

	var (
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	pool := parallel.New(0)
	defer pool.Close()

	tasks := make([]func(), len(runes))
	for i, r := range runes {
		i, r := i, r
		tasks[i] = func() {
			// Tile-granular cancellation: bail before starting a
			// tile, never mid-pixel-loop.
			if err := ctx.Err(); err != nil {
				setErr(err)
				return
			}

			mask, m, err := g.provider.MaskFor(r)
			if err != nil {
				setErr(fmt.Errorf("character %q: %w", r, err))
				return
			}

			img, err := g.encodeField(mask)
			if err != nil {
				setErr(fmt.Errorf("character %q: %w", r, err))
				return
			}

			tiles[i] = atlas.Tile{ID: registry.CharID(r), Image: img}
			perRune[i] = m
		}
	}
	pool.ExecuteAll(tasks)

	if firstErr != nil {
		return nil, firstErr
	}

	for i, r := range runes {
		metrics[r] = registry.GlyphMetrics{
			Advance:  perRune[i].Advance,
			BearingX: perRune[i].BearingX,
			BearingY: perRune[i].BearingY,
		}
	}
	return tiles, nil
}

// encodeField converts a coverage mask into an encoded tile image in the
// configured format.
func (g *Generator) encodeField(mask *field.Mask) (image.Image, error) {
	if g.config.MultiChannel {
		mf, err := field.ComputeMSDF(mask, g.config.Range)
		if err != nil {
			return nil, err
		}
		return mf.Encode(), nil
	}
	f, err := field.ComputeSDF(mask, g.config.Range)
	if err != nil {
		return nil, err
	}
	return f.Encode(), nil
}

// generateShapeTiles evaluates every analytic shape in canonical order.
func (g *Generator) generateShapeTiles(ctx context.Context) ([]atlas.Tile, error) {
	tiles := make([]atlas.Tile, 0, len(field.Shapes))
	for _, kind := range field.Shapes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := field.GenerateShape(kind, g.config.SDFSize, g.config.Range)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", kind, err)
		}

		var img image.Image
		if g.config.MultiChannel {
			img = f.Replicate().Encode()
		} else {
			img = f.Encode()
		}
		tiles = append(tiles, atlas.Tile{ID: registry.ShapeID(kind.String()), Image: img})
	}
	return tiles, nil
}

// normalizeCharacters NFC-normalizes the configured character set, drops
// duplicates, and returns the runes in ascending order. Sorting makes the
// tile order (and therefore every placement) independent of how the caller
// happened to write the set.
func normalizeCharacters(s string) []rune {
	s = norm.NFC.String(s)

	seen := make(map[rune]struct{}, len(s))
	var runes []rune
	for _, r := range s {
		if strings.ContainsRune(" \t\n\r", r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		runes = append(runes, r)
	}

	slices.Sort(runes)
	return runes
}
