package glyph

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sdfgen/field"
)

// rasterize draws the character into a size×size alpha mask, centered in
// the cell, and thresholds it into a coverage mask. A glyph with an empty
// outline (e.g. space) produces an all-outside mask, which the distance
// field engine treats as a defined degenerate case.
func (p *FontProvider) rasterize(r rune) (*field.Mask, error) {
	otFace, err := opentype.NewFace(p.otFont, &opentype.FaceOptions{
		Size:    float64(p.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: create face: %w", err)
	}
	defer func() {
		_ = otFace.Close()
	}()

	alpha := image.NewAlpha(image.Rect(0, 0, p.size, p.size))

	bounds, _, ok := otFace.GlyphBounds(r)
	if !ok {
		return nil, &MissingGlyphError{Rune: r}
	}

	// Position the pen so the glyph's bounding box is centered in the
	// cell. Bounds are dot-relative with y growing downward, so MinY is
	// usually negative (above the baseline).
	cell := fixed.I(p.size)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	dot := fixed.Point26_6{
		X: (cell-w)/2 - bounds.Min.X,
		Y: (cell-h)/2 - bounds.Min.Y,
	}

	d := &font.Drawer{
		Dst:  alpha,
		Src:  image.White,
		Face: otFace,
		Dot:  dot,
	}
	d.DrawString(string(r))

	return field.FromAlpha(alpha)
}
