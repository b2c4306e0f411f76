package curvelab

import (
	"iter"
	"log/slog"
	"math"
	"slices"
	"time"
)

// DefaultStep is the parameter increment between animation frames.
const DefaultStep = 0.02

// DefaultInterval is the time between animation ticks.
const DefaultInterval = 50 * time.Millisecond

// Construction is the ladder of point sets produced by De Casteljau's
// reduction at a fixed parameter. Level 0 holds the control points, every
// following level one point fewer, and the last level the single curve point.
type Construction [][]Point

// Final returns the curve point, i.e. the only point of the last level. It
// returns the zero point for an empty construction.
func (c Construction) Final() Point {
	if len(c) == 0 || len(c[len(c)-1]) == 0 {
		return Point{}
	}
	return c[len(c)-1][0]
}

// Segments yields the lines between consecutive points of every level but the
// last, together with the index of their level.
func (c Construction) Segments() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for k := 0; k < len(c)-1; k++ {
			level := c[k]
			for i := 0; i+1 < len(level); i++ {
				if !yield(k, Line{level[i], level[i+1]}) {
					return
				}
			}
		}
	}
}

// Markers yields the points of the intermediate levels, together with the
// index of their level. Level 0, which holds the control points, and the final
// point are not included; see [Construction.Final].
func (c Construction) Markers() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for k := 1; k < len(c)-1; k++ {
			for _, pt := range c[k] {
				if !yield(k, pt) {
					return
				}
			}
		}
	}
}

// PointSource provides the control points an [Animator] replays.
type PointSource interface {
	Points() []Point
}

// Animator replays De Casteljau's construction of a Bézier curve for a
// parameter that advances on every tick, looping over [0, 1) for as long as
// it runs. It records the curve points it has visited as the trace.
//
// An Animator is either idle or running. While idle, it holds no construction
// and no trace.
type Animator struct {
	// Interval is the time between ticks for [Animator.Advance].
	Interval time.Duration

	src     PointSource
	step    float64
	frames  int
	frame   int
	t       float64
	running bool
	pending time.Duration

	construction Construction
	trace        []Point
}

// NewAnimator returns an idle animator for the control points of src that
// advances the parameter by step on every tick.
//
// NewAnimator panics unless 0 < step <= 1.
func NewAnimator(src PointSource, step float64) *Animator {
	if !(step > 0 && step <= 1) {
		panic("curvelab: animation step must be in (0, 1]")
	}
	return &Animator{
		Interval: DefaultInterval,
		src:      src,
		step:     step,
		frames:   int(math.Floor(1 / step)),
	}
}

// Running reports whether the animator is running.
func (a *Animator) Running() bool { return a.running }

// Step returns the parameter increment between frames.
func (a *Animator) Step() float64 { return a.step }

// Frames returns the number of frames in one loop, ⌊1/step⌋.
func (a *Animator) Frames() int { return a.frames }

// T returns the parameter of the most recent tick.
func (a *Animator) T() float64 { return a.t }

// Construction returns the construction of the most recent tick. It is nil
// while idle and before the first tick.
func (a *Animator) Construction() Construction { return a.construction }

// Trace returns a copy of the curve points visited since the animator was
// started.
func (a *Animator) Trace() []Point { return slices.Clone(a.trace) }

// Start starts the animation from the first frame with an empty trace. It
// does nothing and returns false if the animator is already running.
func (a *Animator) Start() bool {
	if a.running {
		return false
	}
	a.running = true
	a.frame = 0
	a.t = 0
	a.pending = 0
	a.trace = nil
	a.construction = nil
	Logger().Debug("animation started", slog.Float64("step", a.step), slog.Int("frames", a.frames))
	return true
}

// Stop stops the animation and discards the construction and the trace. It
// does nothing and returns false if the animator is already idle.
func (a *Animator) Stop() bool {
	if !a.running {
		return false
	}
	a.running = false
	a.frame = 0
	a.pending = 0
	a.trace = nil
	a.construction = nil
	Logger().Debug("animation stopped")
	return true
}

// Tick renders the current frame: it sets the parameter to frame·step mod 1,
// rebuilds the construction from the current control points, appends the
// resulting curve point to the trace and moves on to the next frame, wrapping
// around after the last one. The trace keeps growing across loops.
//
// Tick does nothing while idle or if there are fewer than two control points.
func (a *Animator) Tick() {
	if !a.running {
		return
	}
	pts := a.src.Points()
	if len(pts) < 2 {
		return
	}
	a.t = math.Mod(float64(a.frame)*a.step, 1)
	a.construction = SubdivideLevels(pts, a.t)
	a.trace = append(a.trace, a.construction.Final())
	a.frame++
	if a.frame >= a.frames {
		a.frame = 0
	}
}

// Advance feeds elapsed wall time to the animator and performs one tick per
// full Interval that has passed, carrying the remainder over to the next
// call. It returns the number of ticks performed. Time passing while idle is
// discarded.
func (a *Animator) Advance(elapsed time.Duration) int {
	if !a.running || a.Interval <= 0 {
		return 0
	}
	a.pending += elapsed
	n := 0
	for a.pending >= a.Interval {
		a.pending -= a.Interval
		a.Tick()
		n++
	}
	return n
}
