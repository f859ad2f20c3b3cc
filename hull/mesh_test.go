package hull

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func TestMesh(t *testing.T) {
	h, err := Compute(cube())
	require.NoError(t, err)

	mesh := h.Mesh()
	require.Equal(t, 36, mesh.VertexCount())
	require.Equal(t, 12, mesh.TriangleCount())
	require.Len(t, mesh, 36*6)

	for i, face := range h.Faces {
		for j, idx := range []int{face.A, face.B, face.C} {
			pos, normal := mesh.Vertex(3*i + j)
			require.Equal(t, h.Points[idx], pos)

			// the normal is recomputed, but must agree with the face winding
			require.Equal(t, face.Normal, normal)
		}
	}
}

func TestTriangles(t *testing.T) {
	h, err := Compute(tetrahedron())
	require.NoError(t, err)

	// move a face normal around to make sure it is not used
	h.Faces[0].Normal = r3.Vector{X: 42}

	triangles := h.Triangles()
	require.Len(t, triangles, 4)

	for _, tri := range triangles {
		centroid := tri.Vertices[0].Add(tri.Vertices[1]).Add(tri.Vertices[2]).Mul(1.0 / 3)

		// a point inside the tetrahedron must be behind every triangle
		inside := r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}
		require.Less(t, inside.Sub(centroid).Dot(tri.Normal), 0.0)
	}
}

func TestWriteOBJ(t *testing.T) {
	h, err := Compute(tetrahedron())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.Mesh().WriteOBJ(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "# convex hull, 4 triangles", lines[0])

	counts := map[string]int{}
	for _, line := range lines[1:] {
		counts[strings.Fields(line)[0]]++
	}

	require.Equal(t, map[string]int{"v": 12, "vn": 12, "f": 4}, counts)
	require.Contains(t, lines, "f 1//1 2//2 3//3")
	require.Contains(t, lines, "f 10//10 11//11 12//12")
}

func TestWriteSTL(t *testing.T) {
	h, err := Compute(cube())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.Mesh().WriteSTL(&buf, "cube"))

	data := buf.Bytes()
	require.Len(t, data, 80+4+12*50)
	require.Equal(t, "cube", string(bytes.TrimRight(data[:80], "\x00")))
	require.Equal(t, uint32(12), binary.LittleEndian.Uint32(data[80:84]))

	var tri stlTriangle
	require.NoError(t, binary.Read(bytes.NewReader(data[84:]), binary.LittleEndian, &tri))

	n := tri.Normal
	length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
	require.InDelta(t, 1.0, length, 1e-6)
}
