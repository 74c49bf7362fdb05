package registry

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gogpu/sdfgen/atlas"
)

// Tile id prefixes. Every placement id must carry exactly one of these so
// the builder can route it into the characters or shapes map.
const (
	CharPrefix  = "char_"
	ShapePrefix = "shape_"
)

// CharID returns the tile id for a character.
func CharID(r rune) string { return CharPrefix + string(r) }

// ShapeID returns the tile id for a named shape.
func ShapeID(name string) string { return ShapePrefix + name }

// GlyphMetrics are the per-character layout metrics merged into the
// registry, in pixel units.
type GlyphMetrics struct {
	Advance  float64
	BearingX float64
	BearingY float64
}

// BuildInfo carries the metadata inputs for Build.
type BuildInfo struct {
	AtlasSize  int
	SDFRange   float64
	Resolution int
	Padding    int
	Format     atlas.Format
}

// DanglingPlacementError reports a broken placement/registry bijection:
// a placement no registry entry claims, or a registry entry with no
// placement.
type DanglingPlacementError struct {
	ID     string
	Reason string
}

func (e *DanglingPlacementError) Error() string {
	return "registry: dangling placement " + e.ID + ": " + e.Reason
}

// Build merges placements and per-character metrics into a Registry.
// It performs no packing or field computation; it is pure data assembly
// with one validation pass enforcing the bijection invariant: every
// placement is claimed by exactly one entry, and every metrics entry has
// exactly one placement.
//
// created is an explicit clock input so callers (and tests) control the
// provenance timestamp; it is recorded as RFC3339 UTC.
func Build(info BuildInfo, metrics map[rune]GlyphMetrics, placements map[string]atlas.Placement, created time.Time) (*Registry, error) {
	reg := &Registry{
		Metadata: Metadata{
			AtlasWidth:  info.AtlasSize,
			AtlasHeight: info.AtlasSize,
			SDFRange:    info.SDFRange,
			Resolution:  info.Resolution,
			Padding:     info.Padding,
			Format:      info.Format.String(),
			Created:     created.UTC().Format(time.RFC3339),
		},
		Characters: make(map[string]CharacterInfo, len(metrics)),
		Shapes:     make(map[string]ShapeInfo),
	}

	for id, p := range placements {
		switch {
		case strings.HasPrefix(id, CharPrefix):
			rest := id[len(CharPrefix):]
			r, size := utf8.DecodeRuneInString(rest)
			if r == utf8.RuneError || size != len(rest) {
				return nil, &DanglingPlacementError{ID: id, Reason: "id does not name a single character"}
			}
			m, ok := metrics[r]
			if !ok {
				return nil, &DanglingPlacementError{ID: id, Reason: "no metrics for character"}
			}
			reg.Characters[rest] = CharacterInfo{
				X:        p.X,
				Y:        p.Y,
				Width:    p.Width,
				Height:   p.Height,
				Advance:  m.Advance,
				BearingX: m.BearingX,
				BearingY: m.BearingY,
			}

		case strings.HasPrefix(id, ShapePrefix):
			name := id[len(ShapePrefix):]
			if name == "" {
				return nil, &DanglingPlacementError{ID: id, Reason: "empty shape name"}
			}
			reg.Shapes[name] = ShapeInfo{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}

		default:
			return nil, &DanglingPlacementError{ID: id, Reason: "id matches no known prefix"}
		}
	}

	// The reverse direction: a metrics entry whose character was never
	// placed breaks the bijection just the same.
	for r := range metrics {
		if _, ok := reg.Characters[string(r)]; !ok {
			return nil, &DanglingPlacementError{ID: CharID(r), Reason: "metrics entry has no placement"}
		}
	}

	return reg, nil
}
