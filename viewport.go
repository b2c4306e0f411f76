package curvelab

const (
	// ZoomFactor is the factor by which one zoom step shrinks or grows the
	// visible data area.
	ZoomFactor = 1.1
	// MinSpan and MaxSpan limit the visible width and height, in data units.
	MinSpan = 0.1
	MaxSpan = 20.0
)

// DefaultView is the data area shown by a new [Viewport].
var DefaultView = Rect{X0: 0, Y0: 0, X1: 6, Y1: 5}

// Viewport maps the visible part of data space, which is y-up, onto a
// rectangle of screen pixels, which are y-down. Both axes use the same scale.
type Viewport struct {
	// Data is the data area that is always fully visible. See
	// [Viewport.Visible] for everything on screen.
	Data Rect
	// Screen is the pixel area the data area is drawn into.
	Screen Rect
}

// NewViewport returns a viewport showing [DefaultView] in screen.
func NewViewport(screen Rect) Viewport {
	return Viewport{Data: DefaultView, Screen: screen}
}

// scale returns the number of screen pixels per data unit. Both axes share
// it: the largest scale at which Data still fits into Screen.
func (v Viewport) scale() float64 {
	data, scr := v.Data.Abs(), v.Screen.Abs()
	return min(scr.Width()/data.Width(), scr.Height()/data.Height())
}

// Transform returns the transformation from data to screen coordinates. It
// scales both axes equally and puts the centre of Data on the centre of
// Screen, so Data is fully visible and shapes keep their proportions.
func (v Viewport) Transform() Affine {
	s := v.scale()
	dc, sc := v.Data.Center(), v.Screen.Center()
	aff := Translate(Vec(-dc.X, -dc.Y)).ThenScale(s, s)
	return FlipY.Mul(aff).ThenTranslate(Vec(sc.X, sc.Y))
}

// ToScreen maps a data point to screen coordinates.
func (v Viewport) ToScreen(pt Point) Point {
	return pt.Transform(v.Transform())
}

// ToData maps a screen point to data coordinates.
func (v Viewport) ToData(pt Point) Point {
	return pt.Transform(v.Transform().Invert())
}

// Visible returns the data area covered by Screen. It contains Data and
// extends beyond it along one axis when the aspect ratios of Data and Screen
// differ.
func (v Viewport) Visible() Rect {
	return v.Transform().Invert().TransformRectBoundingBox(v.Screen)
}

// Pan moves the visible area so that the content follows a pointer that moved
// by d screen pixels. It does nothing for an empty screen area.
func (v *Viewport) Pan(d Vec2) {
	s := v.scale()
	if !(s > 0) {
		return
	}
	// Screen y grows downwards, data y upwards.
	v.Data = v.Data.Translate(Vec(-d.X/s, d.Y/s))
}

// Zoom zooms in or out by [ZoomFactor], keeping the data point at fixed on
// screen. It refuses, returning false, if the visible width or height would
// leave [MinSpan, MaxSpan].
func (v *Viewport) Zoom(at Point, in bool) bool {
	f := ZoomFactor
	if in {
		f = 1 / ZoomFactor
	}
	r := v.Data.ScaleAbout(at, f)
	w, h := r.Width(), r.Height()
	if w < MinSpan || w > MaxSpan || h < MinSpan || h > MaxSpan {
		return false
	}
	v.Data = r
	return true
}

// Fit grows the visible area so that it contains every point of pts plus a
// margin, in data units, around them. The visible area never shrinks. Fit
// reports whether the view changed.
func (v *Viewport) Fit(pts []Point, margin float64) bool {
	if len(pts) == 0 {
		return false
	}
	data := v.Data.Abs()
	r := data.Union(BoundingBoxOf(pts).Inflate(margin, margin))
	if r == data {
		return false
	}
	v.Data = r
	return true
}
