package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tinne26/etxt"

	"honnef.co/go/curvelab"
	"honnef.co/go/curvelab/render"
)

// hudHeight is the height of the status area below the panes.
const hudHeight = 70

const help = "A: enter point   Shift+A: random point   D: remove   R: reset   H: hull   C: colour   Space: animate   Drag: move/pan   Wheel: zoom"

type action int

const (
	actPrompt action = iota + 1
	actAddRandom
	actRemove
	actReset
	actHull
	actColor
	actAnimate
)

// pointer is the mouse state during one update, in screen coordinates.
type pointer struct {
	pos         curvelab.Point
	left, right bool
	leftDown    bool
	rightDown   bool
	wheel       float64
}

// frameInput is everything the game reacts to during one update.
type frameInput struct {
	actions []action
	ptr     pointer
	keys    promptKeys
}

// Game is the interactive editor: one pane per curve, side by side.
type Game struct {
	editors []*curvelab.Editor
	names   []string
	active  int
	w, h    int

	prompt       prompt
	promptTarget int
	status       string

	panning bool
	panLast curvelab.Point

	canvas   *ebiten.Image
	drawn    []uint64
	redraw   bool
	style    *render.Style
	txt      *etxt.Renderer
	txtColor color.Color
}

func newGame(w, h int, opts ...curvelab.Option) *Game {
	g := &Game{
		w:        w,
		h:        h,
		style:    &render.DefaultStyle,
		txtColor: color.RGBA{0x33, 0x33, 0x33, 0xff},
		redraw:   true,
	}
	curves := []curvelab.Curve{
		curvelab.NewBezier(nil, opts...),
		curvelab.NewBSpline(nil, curvelab.DefaultDegree, opts...),
	}
	g.names = []string{"Bézier", "B-Spline"}
	for i, r := range g.paneRects() {
		g.editors = append(g.editors, curvelab.NewEditor(curves[i], curvelab.NewViewport(r)))
	}
	g.drawn = make([]uint64, len(g.editors))
	return g
}

func (g *Game) paneRects() []curvelab.Rect {
	return render.Layout(g.w, max(g.h-hudHeight, 1), 2)
}

// paneAt returns the index of the pane containing the screen point pt, or -1.
func (g *Game) paneAt(pt curvelab.Point) int {
	for i, ed := range g.editors {
		if ed.View.Screen.Contains(pt) {
			return i
		}
	}
	return -1
}

func pollInput() frameInput {
	var in frameInput
	cx, cy := ebiten.CursorPosition()
	in.ptr = pointer{
		pos:       curvelab.Pt(float64(cx), float64(cy)),
		left:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		leftDown:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		rightDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
	_, in.ptr.wheel = ebiten.Wheel()

	in.keys = promptKeys{
		chars:     ebiten.AppendInputChars(nil),
		enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyA:
			if shift {
				in.actions = append(in.actions, actAddRandom)
			} else {
				in.actions = append(in.actions, actPrompt)
			}
		case ebiten.KeyD, ebiten.KeyBackspace, ebiten.KeyDelete:
			in.actions = append(in.actions, actRemove)
		case ebiten.KeyR:
			in.actions = append(in.actions, actReset)
		case ebiten.KeyH:
			in.actions = append(in.actions, actHull)
		case ebiten.KeyC:
			in.actions = append(in.actions, actColor)
		case ebiten.KeySpace:
			in.actions = append(in.actions, actAnimate)
		}
	}
	return in
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.update(pollInput(), time.Second/time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) update(in frameInput, elapsed time.Duration) {
	for i, r := range g.paneRects() {
		g.editors[i].Resize(r)
	}

	if g.prompt.active {
		if done, x, y := g.prompt.update(in.keys); done {
			g.finishPrompt(x, y)
		}
		g.redraw = true
	} else {
		g.pointer(in.ptr)
		for _, a := range in.actions {
			g.do(a)
		}
	}

	for _, ed := range g.editors {
		ed.Advance(elapsed)
	}
}

func (g *Game) finishPrompt(x, y *string) {
	ed := g.editors[g.promptTarget]
	ok, err := ed.AddPointText(x, y)
	switch {
	case errors.Is(err, curvelab.ErrCancelled):
		g.status = "Point entry cancelled."
	case err != nil:
		g.status = fmt.Sprintf("Invalid input: %v", err)
	case !ok:
		g.status = "Stop the animation before adding points."
	default:
		g.status = fmt.Sprintf("Added %s to the %s curve.", ed.Curve().Base().At(ed.Curve().Base().Len()-1), g.names[g.promptTarget])
	}
}

func (g *Game) pointer(p pointer) {
	ed := g.editors[g.active]
	if !ed.Dragging() && !g.panning {
		if i := g.paneAt(p.pos); i >= 0 {
			g.active = i
			ed = g.editors[i]
		}
	}

	switch {
	case g.animating():
		// Control points stay put in every pane during an animation.
		ed.EndDrag()
	case p.leftDown:
		ed.BeginDrag(ed.View.ToData(p.pos))
	case p.left && ed.Dragging():
		ed.DragTo(ed.View.ToData(p.pos))
	case !p.left && ed.Dragging():
		ed.EndDrag()
	}

	switch {
	case p.rightDown:
		g.panning = true
		g.panLast = p.pos
	case p.right && g.panning:
		if d := p.pos.Sub(g.panLast); d != (curvelab.Vec2{}) {
			ed.Pan(d)
		}
		g.panLast = p.pos
	default:
		g.panning = false
	}

	if p.wheel != 0 && g.paneAt(p.pos) == g.active {
		ed.Zoom(ed.View.ToData(p.pos), p.wheel > 0)
	}
}

// animating reports whether any pane is animating.
func (g *Game) animating() bool {
	for _, ed := range g.editors {
		if ed.Animating() {
			return true
		}
	}
	return false
}

func (g *Game) do(a action) {
	ed := g.editors[g.active]
	name := g.names[g.active]
	if ed.Animating() && a != actAnimate && a != actHull && a != actColor {
		g.status = "Stop the animation before editing points."
		return
	}
	switch a {
	case actPrompt:
		g.prompt.open()
		g.promptTarget = g.active
		g.status = ""
	case actAddRandom:
		ed.AddRandomPoint()
		g.status = fmt.Sprintf("Added a random point to the %s curve.", name)
	case actRemove:
		if ed.RemovePoint() {
			g.status = fmt.Sprintf("Removed a point from the %s curve.", name)
		} else {
			g.status = fmt.Sprintf("The %s curve needs at least %d points.", name, ed.Curve().MinPoints())
		}
	case actReset:
		ed.Reset()
		g.status = fmt.Sprintf("Reset the %s curve.", name)
	case actHull:
		if ed.ToggleHull() {
			g.status = "Convex hull shown."
		} else {
			g.status = "Convex hull hidden."
		}
	case actColor:
		s := ed.CycleColor()
		g.status = fmt.Sprintf("%s colour: %s.", name, s.Name)
	case actAnimate:
		if ed.Animator() == nil {
			g.status = fmt.Sprintf("The %s curve can't be animated.", name)
			return
		}
		if ed.ToggleAnimation() {
			g.status = "Animating the De Casteljau construction."
		} else {
			g.status = "Animation stopped."
		}
	}
	slog.Debug("action", "pane", name, "status", g.status)
}

// dirty reports whether any editor changed since the canvas was last drawn.
func (g *Game) dirty() bool {
	if g.redraw {
		return true
	}
	for i, ed := range g.editors {
		if ed.Revision() != g.drawn[i] {
			return true
		}
	}
	return false
}

func (g *Game) renderCanvas() error {
	panes := make([]render.Pane, len(g.editors))
	for i, ed := range g.editors {
		panes[i] = render.Pane{Scene: ed.Scene(), View: ed.View}
		g.drawn[i] = ed.Revision()
	}
	dc, err := render.Frame(g.w, g.h, panes, g.style)
	if err != nil {
		return err
	}
	defer dc.Close()

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		src := dc.Image()
		img = image.NewRGBA(src.Bounds())
		draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	}
	if b := g.canvas; b == nil || b.Bounds().Dx() != g.w || b.Bounds().Dy() != g.h {
		if b != nil {
			b.Deallocate()
		}
		g.canvas = ebiten.NewImage(g.w, g.h)
	}
	g.canvas.WritePixels(img.Pix)
	g.redraw = false
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty() || g.canvas == nil {
		if err := g.renderCanvas(); err != nil {
			slog.Error("rendering failed", "err", err)
			return
		}
	}
	screen.DrawImage(g.canvas, nil)
	if g.txt != nil {
		g.drawText(screen)
	}
}

func (g *Game) paneTitle(i int) string {
	ed := g.editors[i]
	c := ed.Curve()
	title := fmt.Sprintf("%s curve, %d points, %s", g.names[i], c.Base().Len(), ed.Color().Name)
	if s, ok := c.(*curvelab.BSpline); ok {
		title = fmt.Sprintf("%s curve, degree %d, %d points, %s", g.names[i], s.Degree(), c.Base().Len(), ed.Color().Name)
	}
	if ed.Animating() {
		title += fmt.Sprintf(", t = %.2f", ed.Animator().T())
	}
	if i == g.active {
		title = "> " + title
	}
	return title
}

func (g *Game) drawText(screen *ebiten.Image) {
	g.txt.SetColor(g.txtColor)
	for i, ed := range g.editors {
		r := ed.View.Screen
		g.txt.Draw(screen, g.paneTitle(i), int(r.X0)+8, int(r.Y0)+20)
	}

	y := g.h - hudHeight + 22
	g.txt.Draw(screen, help, 10, y)
	line := g.status
	if g.prompt.active {
		line = g.prompt.label()
	}
	if line != "" {
		g.txt.Draw(screen, line, 10, y+24)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.redraw = true
	}
	return g.w, g.h
}
