package field

// InputError reports an invalid input to the distance field engine:
// non-positive dimensions, a non-positive range, or a nil mask.
type InputError struct {
	Param  string
	Reason string
}

func (e *InputError) Error() string {
	return "field: invalid " + e.Param + ": " + e.Reason
}

// GeometryError reports a degenerate analytic shape, such as a triangle
// whose vertices are collinear.
type GeometryError struct {
	Shape  string
	Reason string
}

func (e *GeometryError) Error() string {
	return "field: degenerate " + e.Shape + ": " + e.Reason
}
