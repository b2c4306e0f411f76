package curvelab

// Line represents a line segment. Construction ladders are drawn as lines
// between consecutive points of a level.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Eval evaluates the line at parameter t. This is one step of De Casteljau's
// reduction.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}
