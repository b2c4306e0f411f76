package curvelab

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrCancelled is returned when coordinate entry was cancelled.
	ErrCancelled = errors.New("coordinate entry cancelled")
	// ErrInvalidCoordinate is returned for coordinate text that is not a
	// finite real number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// ParseCoordinate parses the text of a single coordinate. Surrounding white
// space is ignored. NaN and infinities are rejected.
func ParseCoordinate(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a real number: %w", s, ErrInvalidCoordinate)
	}
	return f, nil
}

// ParseCoordinates turns the answers of a two-field coordinate prompt into a
// point. A nil answer means the prompt was cancelled and yields
// [ErrCancelled]; text that isn't a finite number yields an error wrapping
// [ErrInvalidCoordinate].
func ParseCoordinates(x, y *string) (Point, error) {
	if x == nil || y == nil {
		return Point{}, ErrCancelled
	}
	px, err := ParseCoordinate(*x)
	if err != nil {
		return Point{}, fmt.Errorf("x: %w", err)
	}
	py, err := ParseCoordinate(*y)
	if err != nil {
		return Point{}, fmt.Errorf("y: %w", err)
	}
	return Pt(px, py), nil
}
