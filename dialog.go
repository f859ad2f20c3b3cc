package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

// Dialog is a centered message window, used to report errors.
type Dialog struct {
	Texts []Text
	Modal bool

	Padding Vec

	// the minimum size of the dialog (without padding)
	MinSize Vec
}

func (d *Dialog) Draw(target *ebiten.Image) {
	size := d.Size()

	if d.Modal {
		screenSize := imageSizeOf(target)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(ModalColor)
		op.GeoM.Scale(screenSize.X, screenSize.Y)
		target.DrawImage(whiteTexture(), op)
	}

	// base position of the dialog so it is centered on the screen
	pos := imageSizeOf(target).Mulf(0.5).Sub(size.Mulf(0.5))

	DrawWindow(target, pos, size)
	DrawTexts(target, pos.Add(d.paddingWithDefaultValue()), d.Texts)
}

func (d *Dialog) paddingWithDefaultValue() Vec {
	if !d.Padding.IsZero() {
		return d.Padding
	}

	return vecSplat(16)
}

func (d *Dialog) Size() Vec {
	size := MeasureTexts(d.Texts).Add(d.paddingWithDefaultValue().Mulf(2))
	size.X = max(size.X, d.MinSize.X)
	size.Y = max(size.Y, d.MinSize.Y)
	return size
}

// DrawWindow draws a panel with a drop shadow.
func DrawWindow(target *ebiten.Image, pos Vec, size Vec) {
	shadow := pos.Add(vecSplat(4))
	vector.DrawFilledRect(target, float32(shadow.X), float32(shadow.Y), float32(size.X), float32(size.Y), ShadowColor, false)
	vector.DrawFilledRect(target, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), WindowColor, false)
}
