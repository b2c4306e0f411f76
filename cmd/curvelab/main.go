// Command curvelab is an interactive editor for Bézier and B-Spline curves.
//
// The window shows a Bézier curve on the left and a cubic B-Spline on the
// right. Keyboard actions apply to the pane under the mouse cursor:
//
//	A          enter a point's coordinates
//	Shift+A    add a point at a random position
//	D          remove the last point
//	R          reset the curve to its initial points
//	H          toggle the convex hull of the control points
//	C          cycle the curve's colour
//	Space      animate De Casteljau's construction (Bézier only)
//
// Control points are moved by dragging them with the left mouse button. The
// right mouse button pans and the wheel zooms.
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tinne26/etxt"
	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/curvelab"
)

func main() {
	width := flag.Int("width", 1200, "Initial window width.")
	height := flag.Int("height", 640, "Initial window height.")
	seed := flag.Uint64("seed", 0, "Seed for random point placement; 0 picks one at random.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	curvelab.SetLogger(logger)

	var opts []curvelab.Option
	if *seed != 0 {
		opts = append(opts, curvelab.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}
	g := newGame(*width, *height, opts...)

	txt := etxt.NewRenderer()
	txt.Utils().SetCache8MiB()
	if err := txt.Utils().SetFontBytes(goregular.TTF); err != nil {
		slog.Error("loading font", "err", err)
		os.Exit(1)
	}
	txt.SetSize(15)
	g.txt = txt

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("curvelab")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("curvelab failed", "err", err)
		os.Exit(1)
	}
}
