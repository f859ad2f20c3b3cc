package main

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/oliverbestmann/hullview/hull"
	. "github.com/quasilyte/gmath"
	"github.com/stretchr/testify/require"
)

func cubeHull(t *testing.T) *hull.Hull {
	var points []r3.Vector
	for i := range 8 {
		points = append(points, r3.Vector{X: float64(i & 1), Y: float64((i >> 1) & 1), Z: float64((i >> 2) & 1)})
	}

	h, err := hull.Compute(points)
	require.NoError(t, err)
	return h
}

func TestProjectMesh(t *testing.T) {
	h := cubeHull(t)

	camera := DefaultCamera()
	tr := NewTransform(&camera, FitTransform(h.Points), Vec{X: 800, Y: 600})

	triangles := ProjectMesh(h.Mesh(), &tr, nil)

	// at most three sides of a cube face the camera, at least one
	require.GreaterOrEqual(t, len(triangles), 2)
	require.LessOrEqual(t, len(triangles), 6)

	for idx, tri := range triangles {
		require.Less(t, signedArea(tri.Vertices), 0.0)

		if idx > 0 {
			require.LessOrEqual(t, tri.Depth, triangles[idx-1].Depth)
		}
	}
}

func TestProjectMeshCullsBackFaces(t *testing.T) {
	h := cubeHull(t)

	camera := DefaultCamera()
	tr := NewTransform(&camera, FitTransform(h.Points), Vec{X: 800, Y: 600})

	front := ProjectMesh(h.Mesh(), &tr, nil)

	// flip the winding of every face, now the other side is visible
	flipped := &hull.Hull{Points: h.Points, Epsilon: h.Epsilon}
	for _, face := range h.Faces {
		flipped.Faces = append(flipped.Faces, hull.Face{A: face.A, B: face.C, C: face.B, Normal: face.Normal.Mul(-1)})
	}

	back := ProjectMesh(flipped.Mesh(), &tr, nil)

	require.Equal(t, 12, len(front)+len(back))
}

func TestShade(t *testing.T) {
	toLight := shade(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{})
	require.Equal(t, color.NRGBA{R: 99, G: 255, B: 0, A: 0xff}, toLight)

	away := shade(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{})
	require.Equal(t, color.NRGBA{R: 20, G: 51, B: 0, A: 0xff}, away)

	// degenerate normals only receive ambient light
	require.Equal(t, away, shade(mgl64.Vec3{}, mgl64.Vec3{}))
}
