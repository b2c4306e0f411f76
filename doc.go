// Package curvelab provides the model behind an interactive editor for planar
// Bézier curves and B-Splines.
//
// # Curves
//
// A [Bezier] is evaluated with De Casteljau's algorithm: the control polygon is
// repeatedly reduced by linear interpolation until a single point remains.
// [SubdivideLevels] exposes every intermediate level of that reduction, which
// is what the [Animator] replays.
//
// A [BSpline] is evaluated with the Cox–de Boor recursion over a clamped
// uniform knot vector (see [GenerateKnots] and [Basis]). Clamping makes the
// spline start at its first control point and end at its last.
//
// Both curve kinds embed a [Model], which owns the control points and the
// editing state shared by all curves: colour, convex hull visibility and the
// point being dragged. [Curve] is the interface that lets editors and
// renderers handle either kind.
//
// # Editing
//
// [Editor] applies user actions to a curve and decides which of them are
// allowed. Most notably, control points can't be changed while the
// construction of a Bézier curve is being animated. Refused actions return
// false rather than an error. Errors are reserved for bad input, such as
// coordinates that aren't numbers (see [ParseCoordinates]).
//
// [Editor.Scene] evaluates everything needed to draw a curve. Drawing itself is
// left to the render package, which doesn't feed anything back into this one.
//
// # Coordinate systems
//
// Curves live in a y-up data space. A [Viewport] maps the visible part of it
// onto y-down screen pixels with an [Affine] transformation that scales both
// axes equally, and implements panning and zooming.
//
// # Convex hulls
//
// [ConvexHull] computes the convex hull of a set of points and reports
// degenerate input as [ErrDegenerateHull]. [Hull] is the variant used for
// display: it returns a closed polygon and falls back to the input points when
// no proper hull exists.
//
// # Logging
//
// The package logs absorbed numerical problems and animator transitions at
// debug level. It is silent unless a logger is installed with [SetLogger].
package curvelab
