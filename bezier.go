package curvelab

import (
	"iter"
	"slices"
)

// DefaultBezierSamples is the number of samples [Bezier.Evaluate] callers use
// when they have no better idea.
const DefaultBezierSamples = 200

// DefaultBezierPoints are the control points of a new Bézier curve when none
// are given.
var DefaultBezierPoints = []Point{Pt(1, 2), Pt(2, 4), Pt(4, 1), Pt(5, 3)}

// casteljau runs De Casteljau's reduction on pts at parameter t and returns
// the final point. If visit is non-nil, it is called with every level,
// starting with a copy of pts and ending with the single final point. visit
// must not retain its argument; it is overwritten by the next level.
//
// Level k is computed in place from level k-1 by evaluating the line from
// buf[i] to buf[i+1] at t, for i < n-k. The final point therefore ends up in
// buf[0].
func casteljau(pts []Point, t float64, visit func(level []Point)) Point {
	if len(pts) == 0 {
		panic("curvelab: De Casteljau reduction of empty point set")
	}
	var arena [16]Point
	var buf []Point
	if len(pts) <= len(arena) {
		buf = arena[:len(pts)]
	} else {
		buf = make([]Point, len(pts))
	}
	copy(buf, pts)
	if visit != nil {
		visit(buf)
	}
	for n := len(buf) - 1; n > 0; n-- {
		for i := range n {
			buf[i] = Line{buf[i], buf[i+1]}.Eval(t)
		}
		if visit != nil {
			visit(buf[:n])
		}
	}
	return buf[0]
}

// Subdivide evaluates the Bézier curve with control points pts at parameter t
// by repeatedly interpolating adjacent points until a single point remains.
// A single control point is returned unchanged.
//
// t is not clamped. Values outside [0, 1] extrapolate the curve.
//
// Subdivide panics if pts is empty.
func Subdivide(pts []Point, t float64) Point {
	return casteljau(pts, t, nil)
}

// SubdivideLevels returns every intermediate level of the reduction performed
// by [Subdivide]. Level 0 is a copy of pts, level k has len(pts)-k points and
// the last level holds exactly one point, equal to Subdivide(pts, t).
//
// SubdivideLevels panics if pts is empty.
func SubdivideLevels(pts []Point, t float64) Construction {
	levels := make(Construction, 0, len(pts))
	casteljau(pts, t, func(level []Point) {
		levels = append(levels, slices.Clone(level))
	})
	return levels
}

// sampleParams returns n parameters spread uniformly over [0, 1], including
// both ends. n == 1 yields only 0.
func sampleParams(n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if n == 1 {
			yield(0)
			return
		}
		for i := range n {
			if !yield(float64(i) / float64(n-1)) {
				return
			}
		}
	}
}

// EvaluateBezier samples the Bézier curve with control points pts at samples
// uniformly spaced parameters over [0, 1], endpoints included, and returns the
// resulting polyline.
//
// With fewer than two control points the curve is undefined and a copy of pts
// is returned instead.
func EvaluateBezier(pts []Point, samples int) []Point {
	if len(pts) < 2 {
		return slices.Clone(pts)
	}
	out := make([]Point, 0, max(samples, 0))
	for t := range sampleParams(samples) {
		out = append(out, Subdivide(pts, t))
	}
	return out
}

// Bezier is a Bézier curve of arbitrary degree. Its degree is one less than
// its number of control points, so adding a point raises the degree.
type Bezier struct {
	Model
}

var _ Curve = (*Bezier)(nil)

// NewBezier returns a Bézier curve with the given control points. A nil slice
// selects [DefaultBezierPoints]. The points are copied.
func NewBezier(pts []Point, opts ...Option) *Bezier {
	if pts == nil {
		pts = DefaultBezierPoints
	}
	b := &Bezier{}
	b.init(pts, 2, opts)
	return b
}

// Evaluate samples the curve. See [EvaluateBezier].
func (b *Bezier) Evaluate(samples int) []Point {
	return EvaluateBezier(b.points, samples)
}

// Eval evaluates the curve at parameter t. It returns the zero point if the
// curve has no control points.
func (b *Bezier) Eval(t float64) Point {
	if len(b.points) == 0 {
		return Point{}
	}
	return Subdivide(b.points, t)
}

// Construction returns the De Casteljau ladder at parameter t, or nil if the
// curve has fewer than two control points.
func (b *Bezier) Construction(t float64) Construction {
	if len(b.points) < 2 {
		return nil
	}
	return SubdivideLevels(b.points, t)
}

// DefaultSamples implements [Curve].
func (b *Bezier) DefaultSamples() int { return DefaultBezierSamples }
