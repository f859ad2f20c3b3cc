package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

type ButtonColorSet struct {
	Normal   color.Color
	Hover    color.Color
	Disabled color.Color
}

type Button struct {
	Disabled bool
	Colors   ButtonColorSet
	Text     string
	Position Vec
	Size     Vec
	hover    bool
}

func NewButton(text string, colors ButtonColorSet) *Button {
	return &Button{
		Colors: colors,
		Size:   Vec{X: MeasureText(text).X + 24, Y: 28},
		Text:   text,
	}
}

func (b *Button) Rect() Rect {
	return Rect{Min: b.Position, Max: b.Position.Add(b.Size)}
}

func (b *Button) Hover(loc Vec) bool {
	if b == nil {
		return false
	}

	hover := b.Rect().Contains(loc)

	b.hover = hover && !b.Disabled
	return hover
}

func (b *Button) IsClicked(loc Vec, clicked bool) bool {
	if b == nil || b.Disabled {
		return false
	}

	return clicked && b.Hover(loc)
}

func (b *Button) Draw(target *ebiten.Image) {
	if b == nil {
		return
	}

	fillColor := b.Colors.Normal
	switch {
	case b.Disabled:
		fillColor = b.Colors.Disabled
	case b.hover:
		fillColor = b.Colors.Hover
	}

	// draw a shadow for the rectangle
	shadow := b.Position.Add(vecSplat(3))
	vector.DrawFilledRect(target, float32(shadow.X), float32(shadow.Y), float32(b.Size.X), float32(b.Size.Y), ShadowColor, false)

	hoverOffset := vecSplat(iff(b.hover, 1.0, 0))
	pos := b.Position.Add(hoverOffset)
	vector.DrawFilledRect(target, float32(pos.X), float32(pos.Y), float32(b.Size.X), float32(b.Size.Y), fillColor, false)

	// center the text
	textSize := MeasureText(b.Text)
	textPos := pos.Add(b.Size.Mulf(0.5)).Sub(textSize.Mulf(0.5))
	ebitenutil.DebugPrintAt(target, b.Text, int(textPos.X), int(textPos.Y))
}

// LayoutButtonsRow places the buttons next to each other, starting at origin.
func LayoutButtonsRow(origin Vec, gap float64, buttons ...*Button) {
	pos := origin

	for _, button := range buttons {
		button.Position = pos
		pos.X += button.Size.X + gap
	}
}
