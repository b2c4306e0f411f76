// Package render draws curvelab scenes with gg.
//
// A frame consists of one or more panes laid out side by side. Each pane shows
// a single [curvelab.Scene] through its own [curvelab.Viewport]. Sizes in a
// [Style] are in pixels and don't change with the zoom level.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"honnef.co/go/curvelab"
)

// Style controls the look of a frame.
type Style struct {
	Background string
	Border     string
	Grid       string

	// Control polygon.
	ControlColor string
	ControlWidth float64
	ControlDash  []float64

	CurveWidth float64

	Hull      string
	HullWidth float64
	HullDash  []float64

	// Control point markers. Bézier endpoints use EndpointColor, other Bézier
	// points PointColor, and points of other curves SplineColor.
	EndpointColor string
	PointColor    string
	SplineColor   string
	PointRadius   float64
	Outline       string

	// De Casteljau construction. Level k is drawn in LevelColors[k mod n].
	LevelColors  []string
	LevelWidth   float64
	MarkerRadius float64
	FinalColor   string
	FinalRadius  float64
	TraceWidth   float64
}

// DefaultStyle is the style used by the curvelab tools.
var DefaultStyle = Style{
	Background: "#FFFFFF",
	Border:     "#808080",
	Grid:       "#0000001A",

	ControlColor: "#80808080",
	ControlWidth: 1,
	ControlDash:  []float64{6, 4},

	CurveWidth: 3,

	Hull:      "#FF0000B3",
	HullWidth: 2,
	HullDash:  []float64{8, 5},

	EndpointColor: "#4ECDC4",
	PointColor:    "#45B7D1",
	SplineColor:   "#9B59B6",
	PointRadius:   7,
	Outline:       "#000000",

	LevelColors:  []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57", "#FF9FF3"},
	LevelWidth:   2,
	MarkerRadius: 4,
	FinalColor:   "#FF0000",
	FinalRadius:  6,
	TraceWidth:   3,
}

// Pane is one scene and the viewport it is shown through. The viewport's
// screen rectangle is the pane's area within the frame.
type Pane struct {
	Scene curvelab.Scene
	View  curvelab.Viewport
}

// Layout splits a w×h frame into n panes of equal width, separated and
// surrounded by a margin. Panes are at least one pixel wide and high, even if
// that makes them extend past the frame.
func Layout(w, h, n int) []curvelab.Rect {
	if n <= 0 {
		return nil
	}
	const margin = 10
	pw := max((float64(w)-margin*float64(n+1))/float64(n), 1)
	y1 := max(float64(h)-margin, margin+1)
	out := make([]curvelab.Rect, n)
	for i := range out {
		x0 := margin + float64(i)*(pw+margin)
		out[i] = curvelab.Rect{X0: x0, Y0: margin, X1: x0 + pw, Y1: y1}
	}
	return out
}

// Frame renders panes into a new w×h context.
func Frame(w, h int, panes []Pane, style *Style) (*gg.Context, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.Hex(style.Background))
	var errs []error
	for _, p := range panes {
		errs = append(errs, DrawPane(dc, p, style))
	}
	if err := errors.Join(errs...); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// WritePNG renders panes and writes the result to out as PNG.
func WritePNG(out io.Writer, w, h int, panes []Pane, style *Style) error {
	dc, err := Frame(w, h, panes, style)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(out)
}

// painter accumulates the first drawing error so that callers can issue a
// sequence of operations and check once.
type painter struct {
	dc  *gg.Context
	aff curvelab.Affine
	err error
}

func (p *painter) check(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *painter) pen(color string, width float64, dash []float64) {
	p.dc.SetHexColor(color)
	p.dc.SetLineWidth(width)
	p.dc.SetDash(dash...)
}

func (p *painter) polyline(pts []curvelab.Point) {
	if len(pts) < 2 {
		return
	}
	for i, pt := range curvelab.TransformPoints(pts, p.aff) {
		if i == 0 {
			p.dc.MoveTo(pt.X, pt.Y)
		} else {
			p.dc.LineTo(pt.X, pt.Y)
		}
	}
	p.check(p.dc.Stroke())
}

func (p *painter) line(l curvelab.Line) {
	l = l.Transform(p.aff)
	p.dc.MoveTo(l.P0.X, l.P0.Y)
	p.dc.LineTo(l.P1.X, l.P1.Y)
	p.check(p.dc.Stroke())
}

func (p *painter) dot(pt curvelab.Point, r float64, fill, outline string, width float64) {
	pt = pt.Transform(p.aff)
	p.dc.DrawCircle(pt.X, pt.Y, r)
	p.dc.SetHexColor(fill)
	p.check(p.dc.Fill())
	if width > 0 {
		p.dc.DrawCircle(pt.X, pt.Y, r)
		p.pen(outline, width, nil)
		p.check(p.dc.Stroke())
	}
}

// DrawPane draws a single pane onto dc, clipped to the pane's screen area.
func DrawPane(dc *gg.Context, pane Pane, style *Style) error {
	view := pane.View
	scr := view.Screen
	p := &painter{dc: dc, aff: view.Transform()}

	dc.Push()
	defer dc.Pop()
	dc.ClipRect(scr.X0, scr.Y0, scr.Width(), scr.Height())

	drawGrid(p, view.Visible(), style)

	s := pane.Scene
	p.pen(style.ControlColor, style.ControlWidth, style.ControlDash)
	p.polyline(s.Control)

	if len(s.Curve) > 1 {
		p.pen(s.Color, style.CurveWidth, nil)
		p.polyline(s.Curve)
	}

	if len(s.Hull) > 0 {
		p.pen(style.Hull, style.HullWidth, style.HullDash)
		p.polyline(s.Hull)
	}

	if len(s.Construction) > 0 {
		drawConstruction(p, s, style)
	}

	for i, pt := range s.Control {
		fill := style.SplineColor
		if s.MarkEnds {
			fill = style.PointColor
			if i == 0 || i == len(s.Control)-1 {
				fill = style.EndpointColor
			}
		}
		p.dot(pt, style.PointRadius, fill, style.Outline, 2)
	}

	if s.Construction != nil {
		p.dot(s.Construction.Final(), style.FinalRadius, style.FinalColor, style.Outline, 2)
	}

	dc.ResetClip()
	dc.SetDash()
	dc.DrawRectangle(scr.X0, scr.Y0, scr.Width(), scr.Height())
	p.pen(style.Border, 1, nil)
	p.check(dc.Stroke())
	return p.err
}

func drawConstruction(p *painter, s curvelab.Scene, style *Style) {
	levelColor := func(k int) string {
		if len(style.LevelColors) == 0 {
			return s.Color
		}
		return style.LevelColors[k%len(style.LevelColors)]
	}
	for k, l := range s.Construction.Segments() {
		p.pen(levelColor(k), style.LevelWidth, nil)
		p.line(l)
	}
	for k, pt := range s.Construction.Markers() {
		p.dot(pt, style.MarkerRadius, levelColor(k), style.Outline, 1)
	}
	p.pen(s.Color, style.TraceWidth, nil)
	p.polyline(s.Trace)
}

// drawGrid draws lines at every whole data unit within the visible area.
func drawGrid(p *painter, data curvelab.Rect, style *Style) {
	data = data.Abs()
	if data.Width() > 100 || data.Height() > 100 {
		return
	}
	p.pen(style.Grid, 1, nil)
	for x := math.Ceil(data.X0); x <= data.X1; x++ {
		p.line(curvelab.Line{P0: curvelab.Pt(x, data.Y0), P1: curvelab.Pt(x, data.Y1)})
	}
	for y := math.Ceil(data.Y0); y <= data.Y1; y++ {
		p.line(curvelab.Line{P0: curvelab.Pt(data.X0, y), P1: curvelab.Pt(data.X1, y)})
	}
}
