package main

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/hullview/hull"
	. "github.com/quasilyte/gmath"
)

// position of the point light in world space
var lightPosition = mgl64.Vec3{0, 0, 70}

// ScreenTriangle is a front facing hull triangle after projection.
type ScreenTriangle struct {
	Vertices [3]Vec
	Depth    float64
	Color    color.NRGBA
}

// ProjectMesh projects, culls and shades all triangles of the mesh.
// The result is sorted back to front.
func ProjectMesh(mesh hull.Mesh, tr *Transform, triangles []ScreenTriangle) []ScreenTriangle {
	triangles = triangles[:0]

triangles:
	for i := range mesh.TriangleCount() {
		var tri ScreenTriangle
		var positions [3]r3.Vector

		for j := range 3 {
			pos, _ := mesh.Vertex(3*i + j)
			positions[j] = pos

			screen, depth, ok := tr.Project(pos)
			if !ok {
				continue triangles
			}

			tri.Vertices[j] = screen
			tri.Depth += depth / 3
		}

		// counter-clockwise in device coordinates is clockwise on the
		// screen, as y points down
		if signedArea(tri.Vertices) >= 0 {
			continue
		}

		_, normal := mesh.Vertex(3 * i)
		centroid := positions[0].Add(positions[1]).Add(positions[2]).Mul(1.0 / 3)
		tri.Color = shade(tr.WorldNormal(normal), tr.WorldPosition(centroid))

		triangles = append(triangles, tri)
	}

	// painters algorithm, draw far triangles first
	slices.SortFunc(triangles, func(a, b ScreenTriangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})

	return triangles
}

// signedArea is twice the signed area of the triangle, positive
// for counter-clockwise winding in a y-up coordinate system.
func signedArea(v [3]Vec) float64 {
	return (v[1].X-v[0].X)*(v[2].Y-v[0].Y) - (v[1].Y-v[0].Y)*(v[2].X-v[0].X)
}

// shade evaluates an ambient + lambert light model.
func shade(normal, position mgl64.Vec3) color.NRGBA {
	var intensity float64
	if normal.Len() > 0 {
		toLight := lightPosition.Sub(position).Normalize()
		intensity = max(0, normal.Normalize().Dot(toLight))
	}

	channel := func(base float64) uint8 {
		value := base*ambientLight + base*diffuseLight*intensity
		return uint8(math.Round(255 * min(1, max(0, value))))
	}

	return color.NRGBA{
		R: channel(HullColor[0]),
		G: channel(HullColor[1]),
		B: channel(HullColor[2]),
		A: 0xff,
	}
}

// Renderer draws a projected hull in batches that fit the 16 bit index limit.
type Renderer struct {
	triangles []ScreenTriangle
	vertices  []ebiten.Vertex
	indices   []uint16
}

func (r *Renderer) DrawMesh(target *ebiten.Image, mesh hull.Mesh, tr *Transform) {
	r.triangles = ProjectMesh(mesh, tr, r.triangles)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for _, tri := range r.triangles {
		if len(r.vertices)+3 > math.MaxUint16 {
			r.flush(target)
		}

		base := uint16(len(r.vertices))
		for _, v := range tri.Vertices {
			r.vertices = append(r.vertices, solidVertex(v, tri.Color))
		}

		r.indices = append(r.indices, base, base+1, base+2)
	}

	r.flush(target)
}

func (r *Renderer) flush(target *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(r.vertices, r.indices, whiteTexture(), op)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
