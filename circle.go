package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

var circleVertices []ebiten.Vertex
var circleIndices []uint16

// CircleBatch collects filled circles and draws them with few draw calls.
type CircleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *CircleBatch) Add(target *ebiten.Image, center Vec, radius float64, c color.Color) {
	if circleVertices == nil {
		// tessellate a circle with radius 100 once, and scale it down later
		var path vector.Path
		path.Arc(0, 0, 100, 0, 2*math.Pi, vector.Clockwise)
		circleVertices, circleIndices = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	if len(b.vertices)+len(circleVertices) > math.MaxUint16 {
		b.Flush(target)
	}

	base := uint16(len(b.vertices))
	scale := 0.01 * radius

	for _, vertex := range circleVertices {
		pos := Vec{X: float64(vertex.DstX), Y: float64(vertex.DstY)}.Mulf(scale).Add(center)
		b.vertices = append(b.vertices, solidVertex(pos, c))
	}

	for _, idx := range circleIndices {
		b.indices = append(b.indices, base+idx)
	}
}

func (b *CircleBatch) Flush(target *ebiten.Image) {
	if len(b.indices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(b.vertices, b.indices, whiteTexture(), op)

	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
