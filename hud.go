package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	. "github.com/quasilyte/gmath"
)

var helpLines = []string{
	"left drag   rotate x/y",
	"right drag  rotate x/z",
	"wheel       field of view",
	"R           reset view",
	"P           show points",
	"O           show outline",
	"N           new cloud",
	"H           toggle help",
	"drop a file to load it",
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	// buttons in the top right corner
	buttonsWidth := g.btnNewCloud.Size.X + g.btnResetView.Size.X + 8
	LayoutButtonsRow(Vec{X: imageSizeOf(screen).X - buttonsWidth - 16, Y: 16}, 8, g.btnNewCloud, g.btnResetView)

	g.btnNewCloud.Draw(screen)
	g.btnResetView.Draw(screen)

	texts := []Text{{Text: g.source.String()}}

	if g.model != nil {
		stats := TextLines(g.model.Stats.Lines()...)
		stats[0].Offset.Y = 8
		texts = append(texts, stats...)
	}

	if g.showHelp {
		help := TextLines(helpLines...)
		help[0].Offset.Y = 8
		texts = append(texts, help...)
	}

	pos := vecSplat(16)
	DrawWindow(screen, pos, MeasureTexts(texts).Add(vecSplat(16)))
	DrawTexts(screen, pos.Add(vecSplat(8)), texts)
}
