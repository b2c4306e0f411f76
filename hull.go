package curvelab

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrDegenerateHull is returned by [ConvexHull] when the points do not span a
// polygon with positive area.
var ErrDegenerateHull = errors.New("degenerate convex hull")

// cross returns the z component of (a-o) × (b-o). It is positive if o, a, b
// make a counter-clockwise turn in a y-up space.
func cross(o, a, b Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// ConvexHull computes the convex hull of pts with Andrew's monotone chain
// algorithm. The vertices are returned in counter-clockwise order (in a y-up
// space), starting with the lexicographically smallest point, and without
// repeating the first vertex. Collinear points on hull edges are not
// vertices.
//
// ConvexHull returns an error wrapping [ErrDegenerateHull] if pts has fewer
// than three points, contains non-finite coordinates, or if all points are
// collinear. pts is not modified.
func ConvexHull(pts []Point) ([]Point, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%d points: %w", len(pts), ErrDegenerateHull)
	}
	for i, pt := range pts {
		if !pt.IsFinite() {
			return nil, fmt.Errorf("point %d is %s: %w", i, pt, ErrDegenerateHull)
		}
	}

	sorted := slices.Clone(pts)
	slices.SortFunc(sorted, func(a, b Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})

	hull := make([]Point, 0, 2*len(sorted))
	// Lower hull.
	for _, pt := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	// Upper hull. lower is the length of the lower hull; its last point is the
	// first point of the upper hull and must not be popped.
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		pt := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	// The last point is the first point again.
	hull = hull[:len(hull)-1]

	if len(hull) < 3 {
		return nil, fmt.Errorf("points are collinear: %w", ErrDegenerateHull)
	}
	return hull, nil
}

// Hull returns the convex hull of pts as a closed polygon: the vertices of
// [ConvexHull] followed by the first vertex again.
//
// With fewer than three points the hull is undefined and a copy of pts is
// returned. If the hull cannot be computed, for example because all points
// are collinear, Hull falls back to a copy of pts as well.
func Hull(pts []Point) []Point {
	if len(pts) < 3 {
		return slices.Clone(pts)
	}
	hull, err := ConvexHull(pts)
	if err != nil {
		Logger().Debug("convex hull unavailable, using control points", slog.Any("err", err))
		return slices.Clone(pts)
	}
	return append(hull, hull[0])
}
