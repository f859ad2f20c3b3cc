package hull

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteOBJ writes the mesh as a Wavefront OBJ file. Every vertex is written
// with its flat normal, faces reference both.
func (m Mesh) WriteOBJ(w io.Writer) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "# convex hull, %d triangles\n", m.TriangleCount()); err != nil {
		return fmt.Errorf("write obj header: %w", err)
	}

	for i := range m.VertexCount() {
		pos, normal := m.Vertex(i)
		fmt.Fprintf(buf, "v %g %g %g\n", pos.X, pos.Y, pos.Z)
		fmt.Fprintf(buf, "vn %g %g %g\n", normal.X, normal.Y, normal.Z)
	}

	// obj indices start at 1
	for i := range m.TriangleCount() {
		a, b, c := 3*i+1, 3*i+2, 3*i+3
		fmt.Fprintf(buf, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}

	return nil
}

// stlTriangle is the on-disk layout of one binary STL facet.
type stlTriangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// WriteSTL writes the mesh in the binary STL format. The header is filled
// with name, truncated to 80 bytes. Normals are normalized as the format
// requires.
func (m Mesh) WriteSTL(w io.Writer, name string) error {
	var header [80]byte
	copy(header[:], name)

	buf := bufio.NewWriter(w)
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write stl header: %w", err)
	}

	if err := binary.Write(buf, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return fmt.Errorf("write stl triangle count: %w", err)
	}

	for i := range m.TriangleCount() {
		var tri stlTriangle

		_, normal := m.Vertex(3 * i)
		if length := normal.Norm(); length > 0 {
			normal = normal.Mul(1 / length)
		}

		tri.Normal = [3]float32{float32(normal.X), float32(normal.Y), float32(normal.Z)}

		for j := range 3 {
			pos, _ := m.Vertex(3*i + j)
			tri.Vertices[j] = [3]float32{float32(pos.X), float32(pos.Y), float32(pos.Z)}
		}

		if err := binary.Write(buf, binary.LittleEndian, &tri); err != nil {
			return fmt.Errorf("write stl triangle %d: %w", i, err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write stl: %w", err)
	}

	return nil
}
