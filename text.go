package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	. "github.com/quasilyte/gmath"
)

// glyph size of the ebitenutil debug font
const (
	glyphWidth = 6
	lineHeight = 16
)

type Text struct {
	Offset Vec
	Text   string
}

// MeasureText returns the size of a possibly multi line string
// in the debug font.
func MeasureText(t string) Vec {
	lines := strings.Split(t, "\n")

	var width int
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	return Vec{X: float64(width * glyphWidth), Y: float64(len(lines) * lineHeight)}
}

func MeasureTexts(texts []Text) Vec {
	var size Vec
	for _, t := range texts {
		textSize := MeasureText(t.Text)
		size.X = max(size.X, t.Offset.X+textSize.X)
		size.Y += t.Offset.Y + textSize.Y
	}

	return size
}

func DrawTexts(target *ebiten.Image, offset Vec, texts []Text) {
	pos := offset

	for _, t := range texts {
		at := pos.Add(t.Offset)
		ebitenutil.DebugPrintAt(target, t.Text, int(at.X), int(at.Y))

		// advance below the text
		pos.Y += t.Offset.Y + MeasureText(t.Text).Y
	}
}

func TextLines(lines ...string) []Text {
	texts := make([]Text, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, Text{Text: line})
	}

	return texts
}
