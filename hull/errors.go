package hull

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput matches every *DegenerateInputError via errors.Is.
var ErrDegenerateInput = errors.New("hull: degenerate input")

// DegenerateInputError is returned when the input does not contain
// four affinely independent points.
type DegenerateInputError struct {
	// number of input points
	Points int

	// number of independent points found before the scan ran out of input.
	// 1 means all points coincide, 2 collinear, 3 coplanar.
	Independent int
}

func (e *DegenerateInputError) Error() string {
	if e.Points < 4 {
		return fmt.Sprintf("hull: need at least 4 points, got %d", e.Points)
	}

	var what string
	switch e.Independent {
	case 0, 1:
		what = "coincident"
	case 2:
		what = "collinear"
	default:
		what = "coplanar"
	}

	return fmt.Sprintf("hull: all %d points are %s", e.Points, what)
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}
