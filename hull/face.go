package hull

import (
	"github.com/golang/geo/r3"
)

// Edge is a directed edge between two point indices.
type Edge struct {
	From, To int
}

func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Face is a triangle of the hull. The winding A, B, C is counter-clockwise
// when seen from outside, Normal is the non-normalized (B-A)x(C-A).
type Face struct {
	A, B, C int
	Normal  r3.Vector
}

func newFace(points []r3.Vector, a, b, c int) Face {
	return Face{
		A: a, B: b, C: c,
		Normal: normalOf(points[a], points[b], points[c]),
	}
}

// Edges returns the three directed edges of the face in cyclic order.
func (f Face) Edges() [3]Edge {
	return [3]Edge{
		{From: f.A, To: f.B},
		{From: f.B, To: f.C},
		{From: f.C, To: f.A},
	}
}

// Distance returns the signed distance of p to the plane of the face,
// scaled by the length of the normal.
func (f Face) Distance(points []r3.Vector, p r3.Vector) float64 {
	return p.Sub(points[f.A]).Dot(f.Normal)
}

func normalOf(a, b, c r3.Vector) r3.Vector {
	return b.Sub(a).Cross(c.Sub(a))
}

// edges tracks which directed edges belong to a face of the current hull.
// An edge that is not in the map is dead.
type edges map[Edge]bool

func (e edges) add(f Face) {
	for _, edge := range f.Edges() {
		e[edge] = true
	}
}

func (e edges) kill(f Face) {
	for _, edge := range f.Edges() {
		delete(e, edge)
	}
}

func (e edges) live(edge Edge) bool {
	return e[edge]
}
