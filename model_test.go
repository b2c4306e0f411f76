package curvelab

import (
	"math/rand/v2"
	"testing"
)

func TestModelNearestPoint(t *testing.T) {
	b := NewBezier([]Point{Pt(0, 0), Pt(1, 1), Pt(1, 1), Pt(3, 0)})
	tests := []struct {
		pt        Point
		threshold float64
		want      int
	}{
		{Pt(0.05, 0.05), 0.2, 0},
		{Pt(5, 5), 0.2, NoPoint},
		// Equally close points resolve to the lowest index.
		{Pt(1, 1.1), 0.2, 1},
		{Pt(2.9, 0), 0.2, 3},
		// The threshold is exclusive.
		{Pt(3, 0.5), 0.5, NoPoint},
		{Pt(0, 0), 0, NoPoint},
		{Pt(0, 0), -1, NoPoint},
	}
	for _, tt := range tests {
		if got := b.NearestPoint(tt.pt, tt.threshold); got != tt.want {
			t.Errorf("NearestPoint(%s, %g) = %d, want %d", tt.pt, tt.threshold, got, tt.want)
		}
	}
}

func TestModelRemovePoint(t *testing.T) {
	b := NewBezier([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)})
	b.Dragging = 2
	if !b.RemovePoint() {
		t.Fatal("could not remove point")
	}
	diff(t, NoPoint, b.Dragging)
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, b.Points())

	if b.CanRemovePoint() || b.RemovePoint() {
		t.Error("removed a point from a two-point Bézier curve")
	}
	diff(t, 2, b.Len())
}

func TestModelMovePoint(t *testing.T) {
	b := NewBezier(nil)
	if !b.MovePoint(1, Pt(9, 9)) {
		t.Fatal("MovePoint failed")
	}
	diff(t, Pt(9, 9), b.At(1))
	for _, i := range []int{-1, 4, 100} {
		if b.MovePoint(i, Pt(0, 0)) {
			t.Errorf("MovePoint(%d) succeeded", i)
		}
	}
	diff(t, []Point{Pt(1, 2), Pt(9, 9), Pt(4, 1), Pt(5, 3)}, b.Points())
}

func TestModelAddPoint(t *testing.T) {
	bounds := Rect{X0: 2, Y0: -1, X1: 3, Y1: 1}
	b := NewBezier(nil, WithRand(rand.New(rand.NewPCG(1, 2))), WithBounds(bounds))
	for i := range 100 {
		pt := b.AddPoint()
		if !bounds.Contains(pt) {
			t.Fatalf("point %s outside %v", pt, bounds)
		}
		diff(t, pt, b.At(4+i))
	}

	// The same seed places the same points.
	a1 := NewBezier(nil, WithRand(rand.New(rand.NewPCG(7, 7))))
	a2 := NewBezier(nil, WithRand(rand.New(rand.NewPCG(7, 7))))
	for range 5 {
		diff(t, a1.AddPoint(), a2.AddPoint())
	}
	if !DefaultBounds.Contains(a1.At(4)) {
		t.Errorf("point %s outside default bounds", a1.At(4))
	}
}

func TestModelReset(t *testing.T) {
	s := NewBSpline(nil, 3)
	s.AppendPoint(Pt(1, 1))
	s.MovePoint(0, Pt(-1, -1))
	s.Dragging = 0
	s.Reset()
	diff(t, DefaultBSplinePoints, s.Points())
	diff(t, NoPoint, s.Dragging)

	// Reset restores the construction points, not the defaults.
	b := NewBezier([]Point{Pt(0, 0), Pt(1, 1)})
	b.AddPoint()
	b.Reset()
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, b.Points())
}

func TestModelPointsCopy(t *testing.T) {
	b := NewBezier(nil)
	pts := b.Points()
	pts[0] = Pt(100, 100)
	diff(t, Pt(1, 2), b.At(0))
}

func TestModelOptions(t *testing.T) {
	b := NewBezier(nil)
	diff(t, DefaultColor, b.Color)
	diff(t, NoPoint, b.Dragging)
	diff(t, false, b.ShowHull)

	b = NewBezier(nil, WithColor("#DB0505"))
	diff(t, "#DB0505", b.Color)
}

func TestModelHull(t *testing.T) {
	b := NewBezier(nil)
	diff(t, []Point{Pt(1, 2), Pt(4, 1), Pt(5, 3), Pt(2, 4), Pt(1, 2)}, b.Hull())

	line := NewBezier([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)})
	diff(t, line.Points(), line.Hull())
}
