package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

// DrawPoints draws all input points, hull vertices are highlighted.
func DrawPoints(target *ebiten.Image, model *Model, tr *Transform, batch *CircleBatch) {
	for idx, p := range model.Hull.Points {
		screen, _, ok := tr.Project(p)
		if !ok {
			continue
		}

		if model.Vertices.Has(idx) {
			batch.Add(target, screen, 3, HullVertexColor)
		} else {
			batch.Add(target, screen, 1.5, PointColor)
		}
	}

	batch.Flush(target)
}

// Silhouette returns the outline of the projected hull on the screen.
func Silhouette(model *Model, tr *Transform) []Vec {
	var projected []Vec
	for idx := range model.Vertices.Iter() {
		if screen, _, ok := tr.Project(model.Hull.Points[idx]); ok {
			projected = append(projected, screen)
		}
	}

	return ConvexHull(projected)
}

func DrawOutline(target *ebiten.Image, outline []Vec) {
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		vector.StrokeLine(target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, OutlineColor, true)
	}
}
