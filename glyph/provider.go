// Package glyph supplies coverage masks and layout metrics for font glyphs.
// It is the geometry provider in front of the distance field engine: the
// engine itself only ever sees masks, so it stays testable against synthetic
// input with no font dependency.
package glyph

import (
	"github.com/gogpu/sdfgen/field"
)

// Metrics are a glyph's layout metrics in pixel units, pre-scaled from font
// design units by the provider's size/upem factor.
type Metrics struct {
	// Advance is the horizontal pen advance after drawing the glyph.
	Advance float64

	// BearingX is the left edge of the glyph's bounding box relative to
	// the pen position.
	BearingX float64

	// BearingY is the top edge of the glyph's bounding box above the
	// baseline.
	BearingY float64
}

// MaskProvider supplies a binary coverage mask plus metrics per character.
// Implementations must be safe for concurrent use; the pipeline calls
// MaskFor from multiple workers.
type MaskProvider interface {
	// MaskFor rasterizes the character at the provider's resolution.
	// The returned mask is square (resolution×resolution).
	MaskFor(r rune) (*field.Mask, Metrics, error)
}

// MissingGlyphError reports a character the font has no glyph for.
type MissingGlyphError struct {
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return "glyph: font has no glyph for " + string(e.Rune)
}
