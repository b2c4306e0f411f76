package curvelab

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// bernstein evaluates a Bézier curve in Bernstein form, as an independent
// check of De Casteljau's algorithm.
func bernstein(pts []Point, t float64) Point {
	n := len(pts) - 1
	var acc Vec2
	for i, pt := range pts {
		c := binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		acc = acc.Add(Vec2(pt).Mul(c))
	}
	return Point(acc)
}

func binomial(n, k int) float64 {
	c := 1.0
	for i := range k {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

func TestSubdivideEndpoints(t *testing.T) {
	curves := [][]Point{
		{Pt(1, 2), Pt(2, 4)},
		DefaultBezierPoints,
		{Pt(0.1, 0.7), Pt(1e6, -3), Pt(-2.5, 1e-9), Pt(7, 7), Pt(0.3, 0.3)},
	}
	for _, pts := range curves {
		diff(t, pts[0], Subdivide(pts, 0))
		diff(t, pts[len(pts)-1], Subdivide(pts, 1))
	}
}

func TestSubdivideSinglePoint(t *testing.T) {
	diff(t, Pt(3, 4), Subdivide([]Point{Pt(3, 4)}, 0.7))
	diff(t, Construction{{Pt(3, 4)}}, SubdivideLevels([]Point{Pt(3, 4)}, 0.7))
}

func TestSubdivideEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Subdivide(nil, 0.5)
}

func TestSubdivideMatchesBernstein(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 3), Pt(2, -1), Pt(4, 4), Pt(5, 0), Pt(6, 2)}
	for i := range 21 {
		tt := float64(i) / 20
		diff(t, bernstein(pts, tt), Subdivide(pts, tt), cmpopts.EquateApprox(0, 1e-9))
	}
	// Large point sets don't fit the stack buffer.
	many := make([]Point, 20)
	for i := range many {
		many[i] = Pt(float64(i), math.Sin(float64(i)))
	}
	diff(t, bernstein(many, 0.3), Subdivide(many, 0.3), cmpopts.EquateApprox(0, 1e-9))
}

func TestSubdivideExtrapolates(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	diff(t, Pt(2, 2), Subdivide(pts, 2))
	diff(t, Pt(-1, -1), Subdivide(pts, -1))
}

func TestSubdivideLevels(t *testing.T) {
	pts := DefaultBezierPoints
	for _, tt := range []float64{0, 0.25, 0.5, 0.9, 1} {
		levels := SubdivideLevels(pts, tt)
		if len(levels) != len(pts) {
			t.Fatalf("t=%g: got %d levels, want %d", tt, len(levels), len(pts))
		}
		diff(t, pts, levels[0])
		for k, level := range levels {
			if len(level) != len(pts)-k {
				t.Errorf("t=%g: level %d has %d points, want %d", tt, k, len(level), len(pts)-k)
			}
		}
		for k := 1; k < len(levels); k++ {
			for i, pt := range levels[k] {
				diff(t, levels[k-1][i].Lerp(levels[k-1][i+1], tt), pt)
			}
		}
		diff(t, Subdivide(pts, tt), levels.Final())
	}

	// Levels must not alias each other or the input.
	in := slices.Clone(pts)
	levels := SubdivideLevels(in, 0.5)
	levels[0][0] = Pt(100, 100)
	diff(t, pts, in)
}

func TestEvaluateBezier(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, EvaluateBezier(pts, 3))
	diff(t, []Point{Pt(0, 0)}, EvaluateBezier(pts, 1))
	diff(t, []Point{}, EvaluateBezier(pts, 0), cmpopts.EquateEmpty())

	out := EvaluateBezier(DefaultBezierPoints, DefaultBezierSamples)
	if len(out) != DefaultBezierSamples {
		t.Fatalf("got %d samples, want %d", len(out), DefaultBezierSamples)
	}
	diff(t, DefaultBezierPoints[0], out[0])
	diff(t, DefaultBezierPoints[3], out[len(out)-1])

	// Undefined curves evaluate to their control points.
	diff(t, []Point{Pt(1, 1)}, EvaluateBezier([]Point{Pt(1, 1)}, 10))
	diff(t, []Point{}, EvaluateBezier(nil, 10), cmpopts.EquateEmpty())
}

func TestBezier(t *testing.T) {
	b := NewBezier(nil)
	diff(t, DefaultBezierPoints, b.Points())
	diff(t, 2, b.MinPoints())
	diff(t, DefaultBezierSamples, b.DefaultSamples())
	diff(t, Pt(3, 2.5), b.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))

	// The curve owns a copy of its points.
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	b = NewBezier(pts)
	pts[0] = Pt(9, 9)
	diff(t, Pt(0, 0), b.At(0))

	if c := NewBezier([]Point{Pt(1, 1)}).Construction(0.5); c != nil {
		t.Errorf("got construction %v for a single point", c)
	}
	diff(t, Point{}, NewBezier([]Point{}).Eval(0.5))
}
