package main

import (
	"time"

	"github.com/fogleman/ease"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/hullview/tween"
	. "github.com/quasilyte/gmath"
)

const (
	defaultFov = 45.0
	minFov     = 5.0
	maxFov     = 150.0

	// degrees of rotation per pixel of mouse movement
	dragSpeed = 0.5

	// degrees of field of view per wheel step
	zoomSpeed = 2.4

	nearPlane = 0.01
	farPlane  = 100.0
)

// Camera looks at the origin from a fixed distance. The model is rotated
// in front of it.
type Camera struct {
	// rotation around the x, y and z axis in degrees
	RotX, RotY, RotZ float64

	// vertical field of view in degrees
	Fov float64

	// distance of the eye to the origin
	Distance float64
}

func DefaultCamera() Camera {
	return Camera{
		RotX:     20,
		RotY:     30,
		Fov:      defaultFov,
		Distance: 3.5,
	}
}

// Drag rotates the model. The left button turns around x and y, the
// right button around x and z.
func (c *Camera) Drag(delta Vec, button ebiten.MouseButton) {
	c.RotX = tween.NormalizeDegrees(c.RotX + dragSpeed*delta.Y)

	switch button {
	case ebiten.MouseButtonRight:
		c.RotZ = tween.NormalizeDegrees(c.RotZ + dragSpeed*delta.X)
	default:
		c.RotY = tween.NormalizeDegrees(c.RotY + dragSpeed*delta.X)
	}
}

// Zoom changes the field of view by a number of wheel steps.
func (c *Camera) Zoom(steps float64) {
	c.Fov = min(maxFov, max(minFov, c.Fov-zoomSpeed*steps))
}

// World returns the rotation of the model.
func (c *Camera) World() mgl64.Mat4 {
	rotX := mgl64.HomogRotate3DX(mgl64.DegToRad(180 - c.RotX))
	rotY := mgl64.HomogRotate3DY(mgl64.DegToRad(c.RotY))
	rotZ := mgl64.HomogRotate3DZ(mgl64.DegToRad(c.RotZ))
	return rotX.Mul4(rotY).Mul4(rotZ)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, -c.Distance)
}

func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), aspect, nearPlane, farPlane)
}

// TweenTo animates the camera to the target orientation.
func (c *Camera) TweenTo(target Camera, duration time.Duration) tween.Tween {
	simple := func(t tween.Target) tween.Tween {
		return &tween.Simple{Duration: duration, Ease: ease.OutCubic, Target: t}
	}

	return tween.Concurrent(
		simple(tween.LerpAngle(&c.RotX, c.RotX, target.RotX)),
		simple(tween.LerpAngle(&c.RotY, c.RotY, target.RotY)),
		simple(tween.LerpAngle(&c.RotZ, c.RotZ, target.RotZ)),
		simple(tween.LerpValue(&c.Fov, c.Fov, target.Fov)),
		simple(tween.LerpValue(&c.Distance, c.Distance, target.Distance)),
	)
}

// FitTransform scales and moves the points into the unit sphere around the origin.
func FitTransform(points []r3.Vector) mgl64.Mat4 {
	if len(points) == 0 {
		return mgl64.Ident4()
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = r3.Vector{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = r3.Vector{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}

	center := lo.Add(hi).Mul(0.5)

	var radius float64
	for _, p := range points {
		radius = max(radius, p.Sub(center).Norm())
	}

	scale := 1.0
	if radius > 0 {
		scale = 1 / radius
	}

	return mgl64.Scale3D(scale, scale, scale).Mul4(mgl64.Translate3D(-center.X, -center.Y, -center.Z))
}

// Transform maps model coordinates to the screen.
type Transform struct {
	Fit, World, View, Projection mgl64.Mat4

	// size of the target in pixels
	Screen Vec

	// precomputed product of all matrices
	mvp mgl64.Mat4
}

func NewTransform(camera *Camera, fit mgl64.Mat4, screen Vec) Transform {
	aspect := 1.0
	if screen.Y > 0 {
		aspect = screen.X / screen.Y
	}

	tr := Transform{
		Fit:        fit,
		World:      camera.World(),
		View:       camera.View(),
		Projection: camera.Projection(aspect),
		Screen:     screen,
	}

	tr.mvp = tr.Projection.Mul4(tr.View).Mul4(tr.World).Mul4(tr.Fit)
	return tr
}

// Project maps a model point to screen pixels. Depth is the normalized device
// z coordinate. ok is false for points behind the eye.
func (tr *Transform) Project(p r3.Vector) (screen Vec, depth float64, ok bool) {
	clip := tr.mvp.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if clip.W() <= nearPlane*0.5 {
		return Vec{}, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())

	screen = Vec{
		X: (ndc.X() + 1) / 2 * tr.Screen.X,
		Y: (1 - ndc.Y()) / 2 * tr.Screen.Y,
	}

	return screen, ndc.Z(), true
}

// WorldPosition applies fit and rotation to a model point.
func (tr *Transform) WorldPosition(p r3.Vector) mgl64.Vec3 {
	return tr.World.Mul4(tr.Fit).Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1}).Vec3()
}

// WorldNormal rotates a model normal. The fit transform only scales
// uniformly and does not change directions.
func (tr *Transform) WorldNormal(n r3.Vector) mgl64.Vec3 {
	return tr.World.Mat3().Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
}
