package main

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	. "github.com/quasilyte/gmath"
)

var whiteImage *ebiten.Image
var whiteImageOnce sync.Once

// whiteTexture is the source texture for all solid colored triangles.
// Vertices sample it at (1, 1).
func whiteTexture() *ebiten.Image {
	whiteImageOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})

	return whiteImage
}

// Promise holds the result of a background task together with
// the last progress value it reported.
type Promise[T any, P any] struct {
	result   *atomic.Pointer[T]
	progress *atomic.Pointer[P]
	seen     *atomic.Bool
	started  bool
}

func AsyncTask[T any, P any](task func(yield func(P)) T) Promise[T, P] {
	result := &atomic.Pointer[T]{}
	progress := &atomic.Pointer[P]{}

	// spawn go-routine with task
	go func() {
		value := task(func(p P) {
			progress.Store(&p)
		})

		result.Store(&value)
	}()

	return Promise[T, P]{
		started:  true,
		result:   result,
		progress: progress,
		seen:     &atomic.Bool{},
	}
}

func (p Promise[T, P]) Get() *T {
	if p.result == nil {
		return nil
	}

	return p.result.Load()
}

// GetOnce returns the result only to the first caller that sees it.
func (p Promise[T, P]) GetOnce() *T {
	if p.result == nil || p.seen.Load() {
		return nil
	}

	value := p.result.Load()
	if value != nil && !p.seen.CompareAndSwap(false, true) {
		return nil
	}

	return value
}

func (p Promise[T, P]) Status() *P {
	if p.progress == nil || p.Get() != nil {
		return nil
	}

	return p.progress.Load()
}

func (p Promise[T, P]) Waiting() bool {
	return p.started && p.Get() == nil
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func vecSplat(val float64) Vec {
	return Vec{X: val, Y: val}
}

func imageSizeOf(image *ebiten.Image) Vec {
	return Vec{
		X: float64(image.Bounds().Dx()),
		Y: float64(image.Bounds().Dy()),
	}
}

// solidVertex creates a vertex sampling the white texture with the given color.
func solidVertex(pos Vec, c color.Color) ebiten.Vertex {
	r, g, b, a := c.RGBA()

	return ebiten.Vertex{
		DstX:   float32(pos.X),
		DstY:   float32(pos.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}

func iff[T any](cond bool, ifTrue, ifFalse T) T {
	if cond {
		return ifTrue
	}

	return ifFalse
}
