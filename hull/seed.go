package hull

import (
	"math"

	"github.com/golang/geo/r3"
)

// seed finds the first four affinely independent points in input order.
// The first index is always zero.
func seed(points []r3.Vector, eps float64) ([4]int, error) {
	var idx [4]int
	if len(points) < 4 {
		return idx, &DegenerateInputError{Points: len(points), Independent: min(len(points), 1)}
	}

	found := 1
	for i := 1; i < len(points) && found < 4; i++ {
		p0 := points[idx[0]]

		var independent bool
		switch found {
		case 1:
			// not coincident with the first point
			independent = p0.Distance(points[i]) > eps

		case 2:
			// not collinear with the first edge
			independent = points[idx[1]].Sub(p0).Cross(points[i].Sub(p0)).Norm() > eps

		case 3:
			// not coplanar with the first triangle
			normal := normalOf(p0, points[idx[1]], points[idx[2]])
			independent = math.Abs(points[i].Sub(p0).Dot(normal)) > eps
		}

		if independent {
			idx[found] = i
			found++
		}
	}

	if found < 4 {
		return idx, &DegenerateInputError{Points: len(points), Independent: found}
	}

	return idx, nil
}

// reorder returns a copy of points with the seed points moved to the front.
// All other points keep their relative order.
func reorder(points []r3.Vector, idx [4]int) []r3.Vector {
	result := make([]r3.Vector, 0, len(points))
	for _, i := range idx {
		result = append(result, points[i])
	}

	next := 0
	for i, p := range points {
		if next < len(idx) && idx[next] == i {
			next++
			continue
		}

		result = append(result, p)
	}

	return result
}
