package field

import "image"

// insideThreshold is the coverage value above which a sample counts as
// inside the shape (>50% coverage).
const insideThreshold = 128

// Mask is a binary coverage mask: one 8-bit coverage sample per pixel.
// Samples above insideThreshold are inside the shape.
//
// A Mask is immutable once produced; the distance field engine only reads it.
type Mask struct {
	// Pix holds coverage samples in row-major order, one byte per pixel.
	Pix []uint8

	// Width and Height of the mask in pixels.
	Width, Height int
}

// NewMask creates an empty (all-outside) mask.
// Returns an InputError if either dimension is not positive.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, &InputError{Param: "mask dimensions", Reason: "must be positive"}
	}
	return &Mask{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}, nil
}

// FromAlpha converts a rasterized alpha mask into a coverage mask.
// The alpha image's bounds origin is discarded; only the sample grid matters.
func FromAlpha(img *image.Alpha) (*Mask, error) {
	b := img.Bounds()
	m, err := NewMask(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < m.Height; y++ {
		row := img.Pix[(y+b.Min.Y-img.Rect.Min.Y)*img.Stride:]
		for x := 0; x < m.Width; x++ {
			m.Pix[y*m.Width+x] = row[x+b.Min.X-img.Rect.Min.X]
		}
	}
	return m, nil
}

// At returns the coverage sample at (x, y). Out-of-range coordinates
// return 0 (outside), which keeps neighborhood scans branch-light.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Inside reports whether the pixel at (x, y) is inside the shape.
func (m *Mask) Inside(x, y int) bool {
	return m.At(x, y) > insideThreshold
}

// SetInside marks the pixel at (x, y) as fully covered.
// Intended for building synthetic masks in tests and tools.
func (m *Mask) SetInside(x, y int) {
	if x >= 0 && x < m.Width && y >= 0 && y < m.Height {
		m.Pix[y*m.Width+x] = 255
	}
}
