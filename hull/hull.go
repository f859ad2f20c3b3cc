// Package hull computes the convex hull of a set of points in three
// dimensions using incremental construction.
//
// The hull is seeded with a double sided triangle over the first three
// independent points and grows one point at a time: faces that see the new
// point are removed and the horizon formed by the remaining faces is
// connected to the point with new faces.
package hull

import (
	"github.com/golang/geo/r3"
)

// Epsilon is the default tolerance for coincidence, collinearity, coplanarity
// and visibility tests.
const Epsilon = 1e-6

// Hull is the result of a computation.
type Hull struct {
	// the input points, reordered so that the first four form the seed tetrahedron.
	// All face indices refer to this slice.
	Points []r3.Vector

	Faces []Face

	// tolerance the hull was computed with
	Epsilon float64
}

// Computer holds the configuration of a hull computation.
// The zero value is ready to use.
type Computer struct {
	// tolerance, defaults to Epsilon if zero or negative
	Epsilon float64

	// called after each point has been added to the hull
	Progress func(done, total int)
}

// Compute computes the convex hull of points with the default configuration.
func Compute(points []r3.Vector) (*Hull, error) {
	return Computer{}.Compute(points)
}

// Compute computes the convex hull of points. The input slice is not modified.
// An error of type *DegenerateInputError is returned if the points do not
// span a volume.
func (c Computer) Compute(points []r3.Vector) (*Hull, error) {
	eps := c.Epsilon
	if eps <= 0 {
		eps = Epsilon
	}

	idx, err := seed(points, eps)
	if err != nil {
		return nil, err
	}

	points = reorder(points, idx)

	// live directed edges of the current faces
	live := edges{}

	// faces of the current hull, and a second arena that is
	// filled while processing the next point
	faces := make([]Face, 0, 16)
	hidden := make([]Face, 0, 16)

	addFace := func(a, b, c int) {
		face := newFace(points, a, b, c)
		live.add(face)
		faces = append(faces, face)
	}

	// start with a flat disk of two faces with opposite orientation
	addFace(0, 1, 2)
	addFace(0, 2, 1)

	for i := 3; i < len(points); i++ {
		p := points[i]

		// split faces into the ones seeing the new point and the ones that don't.
		// visible faces are dropped, their edges die with them.
		hidden = hidden[:0]
		for _, face := range faces {
			if face.Distance(points, p) > eps {
				live.kill(face)
			} else {
				hidden = append(hidden, face)
			}
		}

		// connect each exposed edge of the remaining faces to the new point
		faces = faces[:0]
		for _, face := range hidden {
			for _, edge := range face.Edges() {
				if !live.live(edge.Reverse()) {
					addFace(edge.To, edge.From, i)
				}
			}
		}

		faces = append(faces, hidden...)

		if c.Progress != nil {
			c.Progress(i+1, len(points))
		}
	}

	return &Hull{
		Points:  points,
		Faces:   faces,
		Epsilon: eps,
	}, nil
}
