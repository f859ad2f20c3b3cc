package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	. "github.com/quasilyte/gmath"
)

// Loader runs one background task at a time and reports its progress.
type Loader[T any] struct {
	Promise Promise[T, string]

	// text shown while the task is running without progress
	Description string
}

// Start replaces the current task. A running task is not cancelled,
// its result is ignored.
func (l *Loader[T]) Start(description string, task func(yield func(string)) T) {
	l.Description = description
	l.Promise = AsyncTask(task)
}

// Poll returns the result of the task once, after it has finished.
func (l *Loader[T]) Poll() *T {
	return l.Promise.GetOnce()
}

func (l *Loader[T]) Busy() bool {
	return l.Promise.Waiting()
}

func (l *Loader[T]) Draw(screen *ebiten.Image) {
	if !l.Busy() {
		return
	}

	desc := l.Description + "..."
	if status := l.Promise.Status(); status != nil {
		desc = *status + "..."
	}

	// center the text at the bottom of the screen
	screenSize := imageSizeOf(screen)
	size := MeasureText(desc)
	pos := Vec{X: screenSize.X/2 - size.X/2, Y: screenSize.Y - size.Y - 24}

	DrawWindow(screen, pos.Sub(vecSplat(8)), size.Add(vecSplat(16)))
	ebitenutil.DebugPrintAt(screen, desc, int(pos.X), int(pos.Y))
}
