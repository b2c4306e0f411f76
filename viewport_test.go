package curvelab

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestViewportMapping(t *testing.T) {
	v := NewViewport(Rect{X0: 0, Y0: 0, X1: 600, Y1: 500})
	approx := cmpopts.EquateApprox(0, 1e-9)

	diff(t, Pt(0, 500), v.ToScreen(Pt(0, 0)), approx)
	diff(t, Pt(600, 0), v.ToScreen(Pt(6, 5)), approx)
	diff(t, Pt(300, 250), v.ToScreen(Pt(3, 2.5)), approx)

	for _, pt := range []Point{Pt(0, 0), Pt(1.5, -2), Pt(7, 3.25)} {
		diff(t, pt, v.ToData(v.ToScreen(pt)), approx)
	}

	// An offset screen area.
	v.Screen = Rect{X0: 10, Y0: 20, X1: 310, Y1: 270}
	diff(t, Pt(10, 270), v.ToScreen(Pt(0, 0)), approx)
	diff(t, Pt(3, 2.5), v.ToData(Pt(160, 145)), approx)
}

func TestViewportAspect(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	v := NewViewport(Rect{X0: 0, Y0: 0, X1: 590, Y1: 560})

	// One data unit covers the same number of pixels on both axes.
	o := v.ToScreen(Pt(0, 0))
	ux := v.ToScreen(Pt(1, 0)).Sub(o)
	uy := v.ToScreen(Pt(0, 1)).Sub(o)
	diff(t, Vec(590.0/6, 0), ux, approx)
	diff(t, Vec(0, -590.0/6), uy, approx)

	// The data area is centred and fully visible.
	diff(t, v.Screen.Center(), v.ToScreen(v.Data.Center()), approx)
	diff(t, Pt(0, 280+2.5*590/6), o, approx)
	vis := v.Visible()
	diff(t, 6.0, vis.Width(), approx)
	diff(t, 560*6/590.0, vis.Height(), approx)
	diff(t, v.Data.Center(), vis.Center(), approx)

	// Square pixels survive a tall screen as well.
	v.Screen = Rect{X0: 0, Y0: 0, X1: 300, Y1: 900}
	o = v.ToScreen(Pt(0, 0))
	diff(t, 50.0, v.ToScreen(Pt(1, 0)).X-o.X, approx)
	diff(t, -50.0, v.ToScreen(Pt(0, 1)).Y-o.Y, approx)
	diff(t, Rect{X0: 0, Y0: 2.5 - 9, X1: 6, Y1: 2.5 + 9}, v.Visible(), approx)
}

func TestViewportEmptyScreen(t *testing.T) {
	v := NewViewport(Rect{X0: 10, Y0: 10, X1: 10, Y1: 100})
	v.Pan(Vec(5, 5))
	diff(t, DefaultView, v.Data)
}

func TestViewportPan(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	v := NewViewport(Rect{X0: 0, Y0: 0, X1: 600, Y1: 500})
	before := v.ToScreen(Pt(2, 2))

	v.Pan(Vec(100, 0))
	diff(t, Rect{X0: -1, Y0: 0, X1: 5, Y1: 5}, v.Data, approx)
	diff(t, Pt(before.X+100, before.Y), v.ToScreen(Pt(2, 2)), approx)

	// Dragging down moves the content down.
	v.Pan(Vec(0, 100))
	diff(t, Rect{X0: -1, Y0: 1, X1: 5, Y1: 6}, v.Data, approx)
	diff(t, Pt(before.X+100, before.Y+100), v.ToScreen(Pt(2, 2)), approx)
}

func TestViewportZoom(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	v := NewViewport(Rect{X0: 0, Y0: 0, X1: 600, Y1: 500})
	at := Pt(1, 4)
	fixed := v.ToScreen(at)

	if !v.Zoom(at, true) {
		t.Fatal("zoom in refused")
	}
	diff(t, 6/ZoomFactor, v.Data.Width(), approx)
	diff(t, fixed, v.ToScreen(at), approx)

	if !v.Zoom(at, false) {
		t.Fatal("zoom out refused")
	}
	diff(t, DefaultView, v.Data, approx)

	// Zooming stops at the span limits.
	for range 100 {
		v.Zoom(at, true)
	}
	// The height is smaller and reaches MinSpan first.
	if h := v.Data.Height(); h < MinSpan || h > MinSpan*ZoomFactor {
		t.Errorf("fully zoomed in height = %g", h)
	}
	if v.Zoom(at, true) {
		t.Error("zoomed in past the limit")
	}
	diff(t, fixed, v.ToScreen(at), cmpopts.EquateApprox(0, 1e-6))

	for range 100 {
		v.Zoom(at, false)
	}
	if w := v.Data.Width(); w > MaxSpan || w < MaxSpan/ZoomFactor {
		t.Errorf("fully zoomed out width = %g", w)
	}
	if v.Zoom(at, false) {
		t.Error("zoomed out past the limit")
	}
}

func TestViewportFit(t *testing.T) {
	v := NewViewport(Rect{X0: 0, Y0: 0, X1: 600, Y1: 500})
	if v.Fit(nil, 1) {
		t.Error("Fit(nil) changed the view")
	}
	if v.Fit([]Point{Pt(1, 1), Pt(4, 3)}, 0.5) {
		t.Error("Fit changed a view that already contained the points")
	}
	diff(t, DefaultView, v.Data)

	if !v.Fit([]Point{Pt(-2, 1), Pt(10, 3)}, 0.5) {
		t.Fatal("Fit did not change the view")
	}
	diff(t, Rect{X0: -2.5, Y0: 0, X1: 10.5, Y1: 5}, v.Data)
}
