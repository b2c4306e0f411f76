package curvelab

// Curve is implemented by the curve kinds an [Editor] can work with: [*Bezier]
// and [*BSpline]. The shared control point state lives in the embedded
// [Model], reachable through Base.
type Curve interface {
	// Base returns the curve's control point model.
	Base() *Model

	// Evaluate samples the curve at samples parameters spread uniformly over
	// [0, 1] and returns the resulting polyline. Curves that are undefined
	// for their current control points return a copy of the control points.
	Evaluate(samples int) []Point

	// DefaultSamples is the sample count used for display.
	DefaultSamples() int

	// MinPoints is the smallest number of control points the curve can be
	// reduced to.
	MinPoints() int

	// CanRemovePoint reports whether one more point can be removed.
	CanRemovePoint() bool
}
