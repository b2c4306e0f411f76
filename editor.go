package curvelab

import (
	"log/slog"
	"time"
)

// Scene is a snapshot of everything a renderer needs to draw one curve. All
// slices are freshly computed and owned by the caller.
type Scene struct {
	// Control is the control polygon.
	Control []Point
	// Curve is the evaluated curve, or nil with fewer than two control points.
	Curve []Point
	// Hull is the closed convex hull polygon, or nil if it isn't shown.
	Hull []Point
	// Color is the curve's display colour.
	Color string
	// MarkEnds requests that the first and last control points be drawn
	// distinctly, because the curve passes through them.
	MarkEnds bool
	// Construction and Trace are the animated De Casteljau construction and
	// the path it has traced so far. Both are nil unless animating.
	Construction Construction
	Trace        []Point
}

// Editor applies user actions to a curve. It is the single place that
// enforces the editing rules: while the curve's construction is being
// animated, actions that change control points are refused. Refused and
// guarded actions return false; they are not errors.
//
// An Editor is not safe for concurrent use. It is meant to be driven from one
// event loop.
type Editor struct {
	// View maps the curve's data space to the screen.
	View Viewport
	// PickThreshold is the maximum data-space distance at which BeginDrag
	// picks a control point.
	PickThreshold float64
	// Samples overrides the curve's default sample count if positive.
	Samples int

	curve      Curve
	model      *Model
	anim       *Animator
	palette    Palette
	colorIndex int
	revision   uint64
}

// NewEditor returns an editor for c. Bézier curves get an [Animator] with
// [DefaultStep].
func NewEditor(c Curve, view Viewport) *Editor {
	e := &Editor{
		View:          view,
		PickThreshold: DefaultPickThreshold,
		curve:         c,
		model:         c.Base(),
		palette:       DefaultPalette,
	}
	e.colorIndex = max(e.palette.Index(e.model.Color), 0)
	if b, ok := c.(*Bezier); ok {
		e.anim = NewAnimator(b, DefaultStep)
	}
	return e
}

// Curve returns the edited curve.
func (e *Editor) Curve() Curve { return e.curve }

// Animator returns the editor's animator, or nil if the curve has none.
func (e *Editor) Animator() *Animator { return e.anim }

// Revision returns a counter that changes whenever the editor's scene may
// have changed.
func (e *Editor) Revision() uint64 { return e.revision }

func (e *Editor) touch() { e.revision++ }

// Animating reports whether the construction animation is running.
func (e *Editor) Animating() bool {
	return e.anim != nil && e.anim.Running()
}

// AddRandomPoint appends a control point at a random position.
func (e *Editor) AddRandomPoint() bool {
	if e.Animating() {
		return false
	}
	e.model.AddPoint()
	e.touch()
	return true
}

// AddPoint appends pt as a control point.
func (e *Editor) AddPoint(pt Point) bool {
	if e.Animating() {
		return false
	}
	e.model.AppendPoint(pt)
	e.touch()
	return true
}

// AddPointText appends the control point entered through a coordinate
// prompt. A nil answer means the prompt was cancelled. Cancelled or invalid
// input leaves the curve untouched and is reported as an error wrapping
// [ErrCancelled] or [ErrInvalidCoordinate].
func (e *Editor) AddPointText(x, y *string) (bool, error) {
	if e.Animating() {
		return false, nil
	}
	pt, err := ParseCoordinates(x, y)
	if err != nil {
		Logger().Warn("point not added", slog.Any("err", err))
		return false, err
	}
	return e.AddPoint(pt), nil
}

// RemovePoint removes the last control point, unless the curve is at its
// minimum number of points.
func (e *Editor) RemovePoint() bool {
	if e.Animating() {
		return false
	}
	if !e.curve.CanRemovePoint() {
		return false
	}
	if !e.model.RemovePoint() {
		return false
	}
	e.touch()
	return true
}

// Reset restores the curve's initial control points.
func (e *Editor) Reset() bool {
	if e.Animating() {
		return false
	}
	e.model.Reset()
	e.touch()
	return true
}

// BeginDrag starts dragging the control point nearest to pt, a data-space
// position, if one is within PickThreshold. It reports whether a point was
// picked.
func (e *Editor) BeginDrag(pt Point) bool {
	if e.Animating() {
		return false
	}
	e.model.Dragging = e.model.NearestPoint(pt, e.PickThreshold)
	return e.model.Dragging != NoPoint
}

// DragTo moves the dragged control point to pt. It returns false if no point
// is being dragged.
func (e *Editor) DragTo(pt Point) bool {
	if e.Animating() || e.model.Dragging == NoPoint {
		return false
	}
	if !e.model.MovePoint(e.model.Dragging, pt) {
		return false
	}
	e.touch()
	return true
}

// EndDrag ends any drag in progress.
func (e *Editor) EndDrag() {
	e.model.Dragging = NoPoint
}

// Dragging reports whether a control point is being dragged.
func (e *Editor) Dragging() bool {
	return e.model.Dragging != NoPoint
}

// ToggleHull shows or hides the convex hull and returns the new state.
func (e *Editor) ToggleHull() bool {
	e.model.ShowHull = !e.model.ShowHull
	e.touch()
	return e.model.ShowHull
}

// CycleColor switches the curve to the next palette colour and returns it.
func (e *Editor) CycleColor() Swatch {
	var s Swatch
	e.colorIndex, s = e.palette.Next(e.colorIndex)
	e.model.Color = s.Hex
	e.touch()
	return s
}

// Color returns the palette entry of the current colour.
func (e *Editor) Color() Swatch {
	if i := e.palette.Index(e.model.Color); i >= 0 {
		return e.palette[i]
	}
	return Swatch{Name: e.model.Color, Hex: e.model.Color}
}

// ToggleAnimation starts the construction animation if it is stopped and
// stops it otherwise. It returns whether the animation is running
// afterwards. Curves without an animator are never animated.
func (e *Editor) ToggleAnimation() bool {
	if e.anim == nil {
		return false
	}
	if e.anim.Running() {
		e.anim.Stop()
	} else {
		e.EndDrag()
		e.anim.Start()
		// Show the first frame right away instead of after one interval.
		e.anim.Tick()
	}
	e.touch()
	return e.anim.Running()
}

// Advance passes elapsed time on to the animator. It returns the number of
// animation ticks performed.
func (e *Editor) Advance(elapsed time.Duration) int {
	if e.anim == nil {
		return 0
	}
	n := e.anim.Advance(elapsed)
	if n > 0 {
		e.touch()
	}
	return n
}

// Pan pans the view. See [Viewport.Pan].
func (e *Editor) Pan(d Vec2) {
	e.View.Pan(d)
	e.touch()
}

// Zoom zooms the view about the data point at. See [Viewport.Zoom].
func (e *Editor) Zoom(at Point, in bool) bool {
	if !e.View.Zoom(at, in) {
		return false
	}
	e.touch()
	return true
}

// Resize changes the screen area of the view.
func (e *Editor) Resize(screen Rect) {
	if e.View.Screen == screen {
		return
	}
	e.View.Screen = screen
	e.touch()
}

// Scene evaluates the curve and assembles everything needed to draw it.
func (e *Editor) Scene() Scene {
	s := Scene{
		Control: e.model.Points(),
		Color:   e.model.Color,
	}
	_, s.MarkEnds = e.curve.(*Bezier)
	if len(s.Control) >= 2 {
		samples := e.Samples
		if samples <= 0 {
			samples = e.curve.DefaultSamples()
		}
		s.Curve = e.curve.Evaluate(samples)
	}
	if e.model.ShowHull && len(s.Control) >= 3 {
		s.Hull = e.model.Hull()
	}
	if e.Animating() {
		s.Construction = e.anim.Construction()
		s.Trace = e.anim.Trace()
	}
	return s
}
