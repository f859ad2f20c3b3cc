package hull

import (
	"slices"

	"github.com/golang/geo/r3"
)

// Triangle is a face of the hull resolved to positions.
type Triangle struct {
	Vertices [3]r3.Vector
	Normal   r3.Vector
}

// Mesh is an interleaved vertex buffer: three floats position followed by
// three floats normal per vertex, three vertices per triangle.
type Mesh []float32

// floats per vertex in a Mesh
const stride = 6

func (m Mesh) VertexCount() int {
	return len(m) / stride
}

func (m Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// Vertex returns position and normal of the i-th vertex.
func (m Mesh) Vertex(i int) (position, normal r3.Vector) {
	v := m[i*stride : i*stride+stride]
	position = r3.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
	normal = r3.Vector{X: float64(v[3]), Y: float64(v[4]), Z: float64(v[5])}
	return
}

func (m Mesh) appendVertex(position, normal r3.Vector) Mesh {
	return append(m,
		float32(position.X), float32(position.Y), float32(position.Z),
		float32(normal.X), float32(normal.Y), float32(normal.Z),
	)
}

// Triangles resolves all faces to their positions. The normal is recomputed
// from the positions and not taken from the face.
func (h *Hull) Triangles() []Triangle {
	triangles := make([]Triangle, 0, len(h.Faces))
	for _, face := range h.Faces {
		a, b, c := h.Points[face.A], h.Points[face.B], h.Points[face.C]
		triangles = append(triangles, Triangle{
			Vertices: [3]r3.Vector{a, b, c},
			Normal:   normalOf(a, b, c),
		})
	}

	return triangles
}

// Mesh converts the hull into a flat shaded vertex buffer.
func (h *Hull) Mesh() Mesh {
	mesh := make(Mesh, 0, len(h.Faces)*3*stride)
	for _, tri := range h.Triangles() {
		for _, vertex := range tri.Vertices {
			mesh = mesh.appendVertex(vertex, tri.Normal)
		}
	}

	return mesh
}

// VertexIndices returns the sorted indices into Points of all points
// that are a corner of at least one face.
func (h *Hull) VertexIndices() []int {
	seen := make(map[int]struct{}, len(h.Faces))
	for _, face := range h.Faces {
		seen[face.A] = struct{}{}
		seen[face.B] = struct{}{}
		seen[face.C] = struct{}{}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}

	slices.Sort(indices)
	return indices
}
