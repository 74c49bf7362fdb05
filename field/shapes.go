package field

import "math"

// ShapeKind identifies an analytic shape with a closed-form distance
// function. The set is closed: switches over ShapeKind are exhaustively
// checkable, and there is no string-keyed shape dispatch anywhere.
type ShapeKind int

const (
	// ShapeCircle is a filled circle.
	ShapeCircle ShapeKind = iota

	// ShapeTriangle is a filled equilateral triangle, apex up.
	ShapeTriangle

	// ShapeSquare is a filled axis-aligned square.
	ShapeSquare
)

// String returns the shape's registry name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Shapes lists all shape kinds in their canonical generation order.
var Shapes = []ShapeKind{ShapeCircle, ShapeTriangle, ShapeSquare}

// shapeMargin scales every shape to 80% of the tile half-extent, giving
// consistent visual weight across shapes and sizes. Fixed, not configurable.
const shapeMargin = 0.8

// Equilateral triangle vertices in the normalized, center-origin
// coordinate system (before scaling by shapeMargin * size/2).
var triangleVertices = [3]vec2{
	{0, -0.866},  // apex
	{-0.75, 0.433},
	{0.75, 0.433},
}

type vec2 struct {
	x, y float64
}

// GenerateShape evaluates the shape's closed-form distance function over a
// size×size tile, producing a field with the same clamp and sign convention
// as ComputeSDF. Values are clamped to [-rng, +rng].
func GenerateShape(kind ShapeKind, size int, rng float64) (*Field, error) {
	if size <= 0 {
		return nil, &InputError{Param: "size", Reason: "must be positive"}
	}
	if rng <= 0 {
		return nil, &InputError{Param: "range", Reason: "must be positive"}
	}

	center := float64(size) / 2
	extent := center * shapeMargin

	var dist func(px, py float64) float64
	switch kind {
	case ShapeCircle:
		dist = func(px, py float64) float64 {
			return math.Hypot(px, py) - extent
		}
	case ShapeSquare:
		dist = func(px, py float64) float64 {
			return math.Max(math.Abs(px)-extent, math.Abs(py)-extent)
		}
	case ShapeTriangle:
		td, err := triangleDistance(triangleVertices)
		if err != nil {
			return nil, err
		}
		dist = func(px, py float64) float64 {
			// Evaluate in the normalized system, then scale the
			// distance back to pixel units.
			return td(px/extent, py/extent) * extent
		}
	default:
		return nil, &InputError{Param: "kind", Reason: "unknown shape kind"}
	}

	f := newField(size, size, rng)
	forEachRowChunk(size, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			py := float64(y) - center
			for x := 0; x < size; x++ {
				px := float64(x) - center
				f.set(x, y, clampDistance(dist(px, py), rng))
			}
		}
	})
	return f, nil
}

// clampDistance clamps a raw analytic distance into the field's [-rng, +rng]
// value range.
func clampDistance(d, rng float64) float32 {
	if d < -rng {
		return float32(-rng)
	}
	if d > rng {
		return float32(rng)
	}
	return float32(d)
}

// triangleDistance builds the signed distance function for a triangle:
// the minimum of the three point-to-segment distances, negated when the
// barycentric test places the point inside. Boundary ties count as inside.
// Collinear vertices (zero area) are a GeometryError.
func triangleDistance(v [3]vec2) (func(px, py float64) float64, error) {
	denom := (v[1].y-v[2].y)*(v[0].x-v[2].x) + (v[2].x-v[1].x)*(v[0].y-v[2].y)
	if denom == 0 {
		return nil, &GeometryError{Shape: "triangle", Reason: "vertices are collinear"}
	}

	return func(px, py float64) float64 {
		d := math.Min(
			segmentDistance(px, py, v[0], v[1]),
			math.Min(
				segmentDistance(px, py, v[1], v[2]),
				segmentDistance(px, py, v[2], v[0]),
			),
		)

		a := ((v[1].y-v[2].y)*(px-v[2].x) + (v[2].x-v[1].x)*(py-v[2].y)) / denom
		b := ((v[2].y-v[0].y)*(px-v[2].x) + (v[0].x-v[2].x)*(py-v[2].y)) / denom
		c := 1 - a - b
		if a >= 0 && b >= 0 && c >= 0 {
			return -d
		}
		return d
	}, nil
}

// segmentDistance returns the distance from (px, py) to the segment a-b.
func segmentDistance(px, py float64, a, b vec2) float64 {
	dx := b.x - a.x
	dy := b.y - a.y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-a.x, py-a.y)
	}

	t := ((px-a.x)*dx + (py-a.y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(px-(a.x+t*dx), py-(a.y+t*dy))
}
