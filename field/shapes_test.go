package field

import (
	"errors"
	"math"
	"testing"
)

func TestShapeKindString(t *testing.T) {
	cases := []struct {
		kind ShapeKind
		want string
	}{
		{ShapeCircle, "circle"},
		{ShapeTriangle, "triangle"},
		{ShapeSquare, "square"},
		{ShapeKind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("ShapeKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestGenerateShapeCircleCenterIsMinimum(t *testing.T) {
	// Large range so nothing clamps and the true minimum is observable.
	f, err := GenerateShape(ShapeCircle, 8, 20)
	if err != nil {
		t.Fatalf("GenerateShape error: %v", err)
	}

	center := f.At(4, 4)
	want := float32(-3.2) // -extent = -(8/2 * 0.8)
	if math.Abs(float64(center-want)) > 1e-4 {
		t.Errorf("center distance = %v, want %v", center, want)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == 4 && y == 4 {
				continue
			}
			if f.At(x, y) <= center {
				t.Fatalf("pixel (%d,%d) = %v not greater than center %v", x, y, f.At(x, y), center)
			}
		}
	}
}

func TestGenerateShapeSquare(t *testing.T) {
	f, err := GenerateShape(ShapeSquare, 32, 4)
	if err != nil {
		t.Fatalf("GenerateShape error: %v", err)
	}

	// Center is deep inside, clamped to -range.
	if got := f.At(16, 16); got != -4 {
		t.Errorf("center = %v, want -4", got)
	}

	// Tile corner: Chebyshev distance |−16| − 12.8 = 3.2, inside the clamp.
	if got := float64(f.At(0, 0)); math.Abs(got-3.2) > 1e-4 {
		t.Errorf("corner = %v, want 3.2", got)
	}
}

func TestGenerateShapeTriangleSigns(t *testing.T) {
	f, err := GenerateShape(ShapeTriangle, 32, 4)
	if err != nil {
		t.Fatalf("GenerateShape error: %v", err)
	}

	// Tile center maps to the normalized origin, well inside the triangle.
	if got := f.At(16, 16); got >= 0 {
		t.Errorf("center = %v, want negative", got)
	}

	// Top edge of the tile is above the apex (normalized y = -1.25 < -0.866).
	if got := f.At(16, 0); got <= 0 {
		t.Errorf("top-center = %v, want positive", got)
	}

	// Corners are outside on both axes.
	if got := f.At(0, 0); got <= 0 {
		t.Errorf("corner = %v, want positive", got)
	}
}

func TestGenerateShapeEncodeCenter(t *testing.T) {
	// A shape's saturated interior must encode to 0, same as mask fields.
	for _, kind := range Shapes {
		f, err := GenerateShape(kind, 32, 4)
		if err != nil {
			t.Fatalf("GenerateShape(%s) error: %v", kind, err)
		}
		img := f.Encode()
		if got := img.Pix[16*img.Stride+16]; got != 0 {
			t.Errorf("%s center encoded to %d, want 0", kind, got)
		}
	}
}

func TestGenerateShapeInvalidInput(t *testing.T) {
	var inputErr *InputError

	if _, err := GenerateShape(ShapeCircle, 0, 4); !errors.As(err, &inputErr) {
		t.Errorf("size 0: error = %v, want InputError", err)
	}
	if _, err := GenerateShape(ShapeCircle, 32, 0); !errors.As(err, &inputErr) {
		t.Errorf("range 0: error = %v, want InputError", err)
	}
	if _, err := GenerateShape(ShapeKind(99), 32, 4); !errors.As(err, &inputErr) {
		t.Errorf("unknown kind: error = %v, want InputError", err)
	}
}

func TestTriangleDistanceCollinear(t *testing.T) {
	_, err := triangleDistance([3]vec2{{0, 0}, {1, 1}, {2, 2}})

	var geomErr *GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("error = %v, want GeometryError", err)
	}
	if geomErr.Shape != "triangle" {
		t.Errorf("GeometryError.Shape = %q, want %q", geomErr.Shape, "triangle")
	}
}

func TestTriangleBoundaryIsInside(t *testing.T) {
	td, err := triangleDistance(triangleVertices)
	if err != nil {
		t.Fatal(err)
	}

	// A vertex lies on the boundary: distance 0, and the tie counts as
	// inside, so the sign must not flip to positive.
	d := td(triangleVertices[0].x, triangleVertices[0].y)
	if d > 0 {
		t.Errorf("vertex distance = %v, want <= 0", d)
	}
	if math.Abs(d) > 1e-12 {
		t.Errorf("vertex distance magnitude = %v, want 0", math.Abs(d))
	}
}

func TestSegmentDistance(t *testing.T) {
	cases := []struct {
		name   string
		px, py float64
		a, b   vec2
		want   float64
	}{
		{"perpendicular", 0.5, 1, vec2{0, 0}, vec2{1, 0}, 1},
		{"past endpoint", 2, 0, vec2{0, 0}, vec2{1, 0}, 1},
		{"degenerate segment", 3, 4, vec2{0, 0}, vec2{0, 0}, 5},
		{"on segment", 0.25, 0, vec2{0, 0}, vec2{1, 0}, 0},
	}
	for _, tc := range cases {
		if got := segmentDistance(tc.px, tc.py, tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s: segmentDistance = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func BenchmarkGenerateShape64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GenerateShape(ShapeTriangle, 64, 4)
	}
}
