package curvelab

import (
	"log/slog"
	"slices"
)

// DefaultBSplineSamples is the number of samples used to display B-Splines.
const DefaultBSplineSamples = 300

// DefaultDegree is the degree of B-Splines created by the interactive tools.
const DefaultDegree = 3

// DefaultBSplinePoints are the control points of a new B-Spline when none are
// given.
var DefaultBSplinePoints = []Point{
	Pt(0.5, 2), Pt(1.5, 4), Pt(2.5, 1), Pt(3.5, 4.5), Pt(4.5, 2), Pt(5.5, 3),
}

// Basis evaluates the B-Spline basis function N(i, p) at t using the Cox–de
// Boor recursion.
//
// Degree 0 functions are indicator functions of the half-open knot spans
// [knots[i], knots[i+1]). To make the curve reach its last control point,
// t == 1 is additionally accepted by a span whose closed interval contains
// it. This is a deliberate exception to the half-open convention and
// determines the curve's end point.
//
// Terms whose knot difference is zero are skipped, following the convention
// that 0/0 contributes nothing.
func Basis(i, p int, t float64, knots KnotVector) float64 {
	if p == 0 {
		if knots[i] <= t && t < knots[i+1] {
			return 1
		}
		if t == 1 && knots[i] <= t && t <= knots[i+1] {
			return 1
		}
		return 0
	}

	var left, right float64
	if d := knots[i+p] - knots[i]; d != 0 {
		left = (t - knots[i]) / d * Basis(i, p-1, t, knots)
	}
	if d := knots[i+p+1] - knots[i+1]; d != 0 {
		right = (knots[i+p+1] - t) / d * Basis(i+1, p-1, t, knots)
	}
	return left + right
}

// EvaluateBSpline samples the clamped uniform B-Spline of the given degree
// with control points pts at samples uniformly spaced parameters over [0, 1].
//
// If there are no more control points than the degree, the spline is
// underdetermined and a copy of pts is returned. Samples with a non-finite
// coordinate are dropped, so the result may be shorter than samples. If every
// sample was dropped, a copy of pts is returned.
func EvaluateBSpline(pts []Point, degree, samples int) []Point {
	n := len(pts)
	if n <= degree {
		return slices.Clone(pts)
	}

	knots := GenerateKnots(n, degree)
	out := make([]Point, 0, max(samples, 0))
	dropped := 0
	for t := range sampleParams(samples) {
		t = min(max(t, 0), 1)
		var acc Vec2
		for i, pt := range pts {
			acc = acc.Add(Vec2(pt).Mul(Basis(i, degree, t, knots)))
		}
		if p := Point(acc); p.IsFinite() {
			out = append(out, p)
		} else {
			dropped++
		}
	}
	if dropped == 0 {
		return out
	}
	Logger().Debug("dropped non-finite B-Spline samples",
		slog.Int("dropped", dropped), slog.Int("samples", samples))
	if len(out) == 0 {
		return slices.Clone(pts)
	}
	return out
}

// BSpline is a clamped uniform B-Spline curve. Its degree is fixed at
// construction; it needs at least degree+1 control points to be defined.
type BSpline struct {
	Model
	degree int
}

var _ Curve = (*BSpline)(nil)

// NewBSpline returns a B-Spline of the given degree with the given control
// points. A nil slice selects [DefaultBSplinePoints]. The points are copied.
//
// NewBSpline panics if degree is less than 1.
func NewBSpline(pts []Point, degree int, opts ...Option) *BSpline {
	if degree < 1 {
		panic("curvelab: B-Spline degree must be at least 1")
	}
	if pts == nil {
		pts = DefaultBSplinePoints
	}
	s := &BSpline{degree: degree}
	s.init(pts, degree+1, opts)
	return s
}

// Degree returns the spline's degree.
func (s *BSpline) Degree() int { return s.degree }

// Knots returns the knot vector for the current number of control points.
// It is recomputed on every call.
func (s *BSpline) Knots() KnotVector {
	return GenerateKnots(len(s.points), s.degree)
}

// CanRemovePoint reports whether the spline has more than degree+1 control
// points, i.e. whether it stays defined after removing one.
func (s *BSpline) CanRemovePoint() bool {
	return len(s.points) > s.degree+1
}

// Evaluate samples the curve. See [EvaluateBSpline].
func (s *BSpline) Evaluate(samples int) []Point {
	return EvaluateBSpline(s.points, s.degree, samples)
}

// DefaultSamples implements [Curve].
func (s *BSpline) DefaultSamples() int { return DefaultBSplineSamples }
