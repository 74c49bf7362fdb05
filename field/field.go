package field

import (
	"image"
	"math"
	"sync"
)

// Field is a single-channel signed distance field. Values are Euclidean
// pixel distances to the nearest shape boundary, clamped to [-Range, +Range],
// negative inside the shape and positive outside.
type Field struct {
	// Values holds distances in row-major order.
	Values []float32

	// Width and Height of the field in pixels.
	Width, Height int

	// Range is the search/clamp radius the field was computed with.
	Range float64
}

// newField allocates a field with the given dimensions and range.
func newField(width, height int, rng float64) *Field {
	return &Field{
		Values: make([]float32, width*height),
		Width:  width,
		Height: height,
		Range:  rng,
	}
}

// At returns the signed distance at (x, y).
func (f *Field) At(x, y int) float32 {
	return f.Values[y*f.Width+x]
}

// set stores the signed distance at (x, y).
func (f *Field) set(x, y int, v float32) {
	f.Values[y*f.Width+x] = v
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := newField(f.Width, f.Height, f.Range)
	copy(c.Values, f.Values)
	return c
}

// Encode converts the field to an 8-bit grayscale image using the
// normalized encoding (d/range + 1) * 0.5, clamped to [0, 1].
// Fully inside (d = -range) encodes to 0, fully outside to 255.
// The clamp is a defined lossy step of the encoding, not an error.
func (f *Field) Encode() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.Pix[y*img.Stride+x] = encodeDistance(float64(f.At(x, y)), f.Range)
		}
	}
	return img
}

// MultiField is a three-channel signed distance field. All channels share
// one set of dimensions and one range.
type MultiField struct {
	R, G, B *Field
}

// Width returns the shared channel width.
func (m *MultiField) Width() int { return m.R.Width }

// Height returns the shared channel height.
func (m *MultiField) Height() int { return m.R.Height }

// Range returns the shared search/clamp radius.
func (m *MultiField) Range() float64 { return m.R.Range }

// Encode converts the field to an RGB image (alpha fixed at 255) using the
// same per-channel encoding as Field.Encode.
func (m *MultiField) Encode() *image.NRGBA {
	w, h := m.Width(), m.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*img.Stride + x*4
			img.Pix[off] = encodeDistance(float64(m.R.At(x, y)), m.R.Range)
			img.Pix[off+1] = encodeDistance(float64(m.G.At(x, y)), m.G.Range)
			img.Pix[off+2] = encodeDistance(float64(m.B.At(x, y)), m.B.Range)
			img.Pix[off+3] = 255
		}
	}
	return img
}

// encodeDistance maps a signed distance to an 8-bit value:
// (d/rng + 1) * 0.5 clamped to [0, 1], then rounded to [0, 255].
func encodeDistance(d, rng float64) uint8 {
	n := (d/rng + 1) * 0.5
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return uint8(math.Round(n * 255))
}

// ComputeSDF computes a signed distance field from a coverage mask using a
// brute-force bounded search: each pixel is classified by its own mask value,
// then a square neighborhood of radius ceil(rng) is scanned for the nearest
// differently-classified pixel. Pixels with no boundary in reach saturate at
// the range, so a mask with no boundary at all yields a field saturated at
// -rng (all inside) or +rng (all outside); that is a defined degenerate case,
// not an error.
//
// Cost is O(W*H*rng^2) per mask; rows are processed in parallel.
func ComputeSDF(m *Mask, rng float64) (*Field, error) {
	if err := validateInput(m, rng); err != nil {
		return nil, err
	}

	f := newField(m.Width, m.Height, rng)
	radius := int(math.Ceil(rng))

	forEachRowChunk(m.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 0; x < m.Width; x++ {
				f.set(x, y, float32(signedDistanceAt(m, x, y, rng, radius)))
			}
		}
	})

	return f, nil
}

// ComputeMSDF computes a three-channel distance field from a coverage mask.
//
// Conformance note: a coverage mask carries no edge identity, so true
// per-edge channel assignment (the corner-preserving MSDF construction) is
// not possible at this interface. ComputeMSDF therefore replicates the
// scalar field into all three channels. This replication mode is not
// bit-compatible with a per-edge MSDF and has no corner-preservation
// properties; channel-median reconstruction simply recovers the scalar SDF.
func ComputeMSDF(m *Mask, rng float64) (*MultiField, error) {
	f, err := ComputeSDF(m, rng)
	if err != nil {
		return nil, err
	}
	return f.Replicate(), nil
}

// Replicate expands a scalar field into a three-channel field by copying it
// into every channel. See the ComputeMSDF conformance note.
func (f *Field) Replicate() *MultiField {
	return &MultiField{R: f, G: f.Clone(), B: f.Clone()}
}

// signedDistanceAt scans the bounded neighborhood of (x, y) for the nearest
// pixel whose inside/outside classification differs, returning the signed
// minimum distance clamped to rng.
func signedDistanceAt(m *Mask, x, y int, rng float64, radius int) float64 {
	inside := m.Inside(x, y)
	minDist := rng

	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= m.Height {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= m.Width {
				continue
			}
			if m.Inside(nx, ny) == inside {
				continue
			}
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d < minDist {
				minDist = d
			}
		}
	}

	if inside {
		return -minDist
	}
	return minDist
}

// validateInput checks the ComputeSDF/ComputeMSDF preconditions.
func validateInput(m *Mask, rng float64) error {
	if m == nil {
		return &InputError{Param: "mask", Reason: "must not be nil"}
	}
	if m.Width <= 0 || m.Height <= 0 {
		return &InputError{Param: "mask dimensions", Reason: "must be positive"}
	}
	if rng <= 0 {
		return &InputError{Param: "range", Reason: "must be positive"}
	}
	return nil
}

// fieldWorkers is the number of goroutines used for row-parallel loops.
// Modest fixed fan-out; the per-tile pool above this layer provides the
// rest of the parallelism.
const fieldWorkers = 4

// forEachRowChunk splits [0, rows) into contiguous chunks and runs fn on
// each chunk concurrently. Chunks are disjoint, so fn needs no locking.
func forEachRowChunk(rows int, fn func(startRow, endRow int)) {
	var wg sync.WaitGroup
	perWorker := (rows + fieldWorkers - 1) / fieldWorkers

	for w := 0; w < fieldWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > rows {
			end = rows
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
