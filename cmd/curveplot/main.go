// Command curveplot renders Bézier and B-Spline curves to PNG files.
//
// Usage:
//
//	curveplot [flags]
//
// Without -points, the default control points of each curve kind are used.
// With -frames, the De Casteljau construction of the Bézier curve is animated
// and every frame is written to a numbered file next to -out.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/curvelab"
	"honnef.co/go/curvelab/render"
)

// fitMargin is the space kept around custom control points, in data units.
const fitMargin = 0.5

type config struct {
	out     string
	width   int
	height  int
	kind    string
	degree  int
	points  string
	samples int
	hull    bool
	t       float64
	frames  int
	verbose bool
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("curveplot", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.out, "out", "curve.png", "Path of the output PNG file.")
	fs.IntVar(&cfg.width, "width", 600, "Width of each pane in pixels.")
	fs.IntVar(&cfg.height, "height", 500, "Height of the image in pixels.")
	fs.StringVar(&cfg.kind, "kind", "both", "Curves to plot: bezier, bspline or both.")
	fs.IntVar(&cfg.degree, "degree", curvelab.DefaultDegree, "Degree of the B-Spline.")
	fs.StringVar(&cfg.points, "points", "", `Control points as "x,y x,y ...".`)
	fs.IntVar(&cfg.samples, "samples", 0, "Number of curve samples; 0 uses the curve's default.")
	fs.BoolVar(&cfg.hull, "hull", false, "Draw the convex hull of the control points.")
	fs.Float64Var(&cfg.t, "t", -1, "Draw the De Casteljau construction at this parameter (Bézier only, negative for none).")
	fs.IntVar(&cfg.frames, "frames", 0, "Write this many animation frames instead of a single image.")
	fs.BoolVar(&cfg.verbose, "v", false, "Enable debug logging.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	switch cfg.kind {
	case "bezier", "bspline", "both":
	default:
		return nil, fmt.Errorf("unknown curve kind %q", cfg.kind)
	}
	if cfg.degree < 1 {
		return nil, fmt.Errorf("degree must be at least 1, got %d", cfg.degree)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	if cfg.frames < 0 {
		return nil, fmt.Errorf("invalid number of frames %d", cfg.frames)
	}
	return &cfg, nil
}

// parsePoints parses control points written as "x,y x,y ...".
func parsePoints(s string) ([]curvelab.Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	pts := make([]curvelab.Point, 0, len(fields))
	for i, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %d: %q is not of the form x,y", i+1, f)
		}
		pt, err := curvelab.ParseCoordinates(&xs, &ys)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

func newEditors(cfg *config, pts []curvelab.Point) ([]*curvelab.Editor, error) {
	var curves []curvelab.Curve
	if cfg.kind == "bezier" || cfg.kind == "both" {
		if pts != nil && len(pts) < 2 {
			return nil, errors.New("a Bézier curve needs at least 2 points")
		}
		curves = append(curves, curvelab.NewBezier(pts))
	}
	if cfg.kind == "bspline" || cfg.kind == "both" {
		if pts != nil && len(pts) < cfg.degree+1 {
			return nil, fmt.Errorf("a degree %d B-Spline needs at least %d points", cfg.degree, cfg.degree+1)
		}
		curves = append(curves, curvelab.NewBSpline(pts, cfg.degree))
	}

	w := cfg.width * len(curves)
	eds := make([]*curvelab.Editor, len(curves))
	for i, r := range render.Layout(w, cfg.height, len(curves)) {
		ed := curvelab.NewEditor(curves[i], curvelab.NewViewport(r))
		ed.Samples = cfg.samples
		if pts != nil && ed.View.Fit(pts, fitMargin) {
			slog.Debug("view enlarged to fit control points", "view", ed.View.Data)
		}
		if cfg.hull {
			ed.ToggleHull()
		}
		eds[i] = ed
	}
	return eds, nil
}

func panes(cfg *config, eds []*curvelab.Editor) []render.Pane {
	out := make([]render.Pane, len(eds))
	for i, ed := range eds {
		s := ed.Scene()
		if b, ok := ed.Curve().(*curvelab.Bezier); ok && cfg.t >= 0 && !ed.Animating() {
			s.Construction = b.Construction(cfg.t)
		}
		out[i] = render.Pane{Scene: s, View: ed.View}
	}
	return out
}

func frameName(out string, i int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(out, ext), i, ext)
}

func writeFile(path string, w, h int, ps []render.Pane) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.WritePNG(f, w, h, ps, &render.DefaultStyle)
}

func run(cfg *config) error {
	pts, err := parsePoints(cfg.points)
	if err != nil {
		return err
	}
	eds, err := newEditors(cfg, pts)
	if err != nil {
		return err
	}
	w := cfg.width * len(eds)

	if cfg.frames == 0 {
		if err := writeFile(cfg.out, w, cfg.height, panes(cfg, eds)); err != nil {
			return err
		}
		slog.Info("wrote image", "path", cfg.out)
		return nil
	}

	var anim *curvelab.Editor
	for _, ed := range eds {
		if ed.Animator() != nil {
			anim = ed
		}
	}
	if anim == nil {
		return errors.New("-frames requires a Bézier curve")
	}
	anim.ToggleAnimation()
	for i := range cfg.frames {
		path := frameName(cfg.out, i)
		if err := writeFile(path, w, cfg.height, panes(cfg, eds)); err != nil {
			return err
		}
		slog.Debug("wrote frame", "path", path, "t", anim.Animator().T())
		anim.Advance(anim.Animator().Interval)
	}
	slog.Info("wrote frames", "count", cfg.frames, "first", frameName(cfg.out, 0))
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	curvelab.SetLogger(logger)

	if err := run(cfg); err != nil {
		slog.Error("curveplot failed", "err", err)
		os.Exit(1)
	}
}
