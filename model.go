package curvelab

import (
	"math/rand/v2"
	"slices"
)

// NoPoint is returned by [Model.NearestPoint] when no control point is close
// enough, and is the value of [Model.Dragging] when no point is being dragged.
const NoPoint = -1

// DefaultPickThreshold is the distance, in data units, within which a click
// selects a control point.
const DefaultPickThreshold = 0.2

// DefaultColor is the colour of a new curve.
const DefaultColor = "#45B7D1"

// DefaultBounds is the area in which [Model.AddPoint] places new points.
var DefaultBounds = Rect{X0: 0.5, Y0: 0.5, X1: 5.5, Y1: 4.5}

// Model holds the control points of a curve and the editing state shared by
// all kinds of curves. It is embedded in [Bezier] and [BSpline].
//
// The control points are owned by the model. Accessors return copies.
type Model struct {
	// Color is the curve's display colour as a hex string, like "#45B7D1".
	Color string
	// ShowHull controls whether the convex hull of the control points is
	// part of the curve's scene.
	ShowHull bool
	// Dragging is the index of the control point being dragged, or NoPoint.
	Dragging int

	points    []Point
	initial   []Point
	minPoints int
	bounds    Rect
	rng       *rand.Rand
}

// Option configures a curve at construction.
type Option func(*Model)

// WithRand sets the random source used by [Model.AddPoint]. Passing a seeded
// generator makes point placement reproducible.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.rng = r }
}

// WithColor sets the initial display colour.
func WithColor(hex string) Option {
	return func(m *Model) { m.Color = hex }
}

// WithBounds sets the area in which [Model.AddPoint] places new points.
func WithBounds(r Rect) Option {
	return func(m *Model) { m.bounds = r.Abs() }
}

func (m *Model) init(pts []Point, minPoints int, opts []Option) {
	m.Color = DefaultColor
	m.Dragging = NoPoint
	m.points = slices.Clone(pts)
	m.initial = slices.Clone(pts)
	m.minPoints = minPoints
	m.bounds = DefaultBounds
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// Base returns the model itself. It lets code holding a [Curve] reach the
// shared editing state.
func (m *Model) Base() *Model { return m }

// Len returns the number of control points.
func (m *Model) Len() int { return len(m.points) }

// Points returns a copy of the control points.
func (m *Model) Points() []Point { return slices.Clone(m.points) }

// At returns the control point at index i. It panics if i is out of range.
func (m *Model) At(i int) Point { return m.points[i] }

// MinPoints returns the smallest number of control points the curve may be
// reduced to by [Model.RemovePoint].
func (m *Model) MinPoints() int { return m.minPoints }

// CanRemovePoint reports whether removing a point would keep at least
// MinPoints control points.
func (m *Model) CanRemovePoint() bool {
	return len(m.points) > m.minPoints
}

// AddPoint appends a control point drawn uniformly at random from the
// placement bounds and returns it.
func (m *Model) AddPoint() Point {
	b := m.bounds
	pt := Pt(
		b.X0+m.rng.Float64()*b.Width(),
		b.Y0+m.rng.Float64()*b.Height(),
	)
	m.points = append(m.points, pt)
	return pt
}

// AppendPoint appends pt as the last control point.
func (m *Model) AppendPoint(pt Point) {
	m.points = append(m.points, pt)
}

// RemovePoint removes the last control point. It does nothing and returns
// false if that would leave fewer than MinPoints points.
func (m *Model) RemovePoint() bool {
	if !m.CanRemovePoint() {
		return false
	}
	m.points = m.points[:len(m.points)-1]
	if m.Dragging >= len(m.points) {
		m.Dragging = NoPoint
	}
	return true
}

// NearestPoint returns the index of the control point closest to pt, provided
// its distance to pt is less than threshold. Otherwise it returns NoPoint. Of
// several equally close points, the one with the lowest index wins.
func (m *Model) NearestPoint(pt Point, threshold float64) int {
	if !(threshold > 0) {
		return NoPoint
	}
	best := NoPoint
	bestDist := threshold * threshold
	for i, p := range m.points {
		// Strict comparison keeps the first of equally distant points.
		if d := p.DistanceSquared(pt); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// MovePoint replaces the control point at index i. An out-of-range index is
// ignored and MovePoint returns false.
func (m *Model) MovePoint(i int, pt Point) bool {
	if i < 0 || i >= len(m.points) {
		return false
	}
	m.points[i] = pt
	return true
}

// Reset restores the control points the curve was constructed with and ends
// any drag.
func (m *Model) Reset() {
	m.points = slices.Clone(m.initial)
	m.Dragging = NoPoint
}

// Hull returns the closed convex hull polygon of the control points. See
// [Hull].
func (m *Model) Hull() []Point {
	return Hull(m.points)
}
