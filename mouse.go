package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	. "github.com/quasilyte/gmath"
)

var touchIds []ebiten.TouchID

// Clicked returns the screen position of a click or tap in this frame.
func Clicked() (Vec, bool) {
	// re-use touchId buffer
	touchIds = inpututil.AppendJustPressedTouchIDs(touchIds[:0])
	for _, touchId := range touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		return Vec{X: float64(touchX), Y: float64(touchY)}, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mouseX, mouseY := ebiten.CursorPosition()
		return Vec{X: float64(mouseX), Y: float64(mouseY)}, true
	}

	return Vec{}, false
}

func CursorPosition() Vec {
	touchIds = ebiten.AppendTouchIDs(touchIds[:0])
	for _, touchId := range touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		return Vec{X: float64(touchX), Y: float64(touchY)}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	return Vec{X: float64(mouseX), Y: float64(mouseY)}
}

// Drag tracks cursor movement while a mouse button or a finger is held down.
type Drag struct {
	last   Vec
	active bool

	// ignore the drag until all buttons are released
	cancelled bool
}

// Update returns the cursor movement since the last frame and which button
// is held. Touch input counts as the left button.
func (d *Drag) Update() (delta Vec, button ebiten.MouseButton, ok bool) {
	button, pressed := pressedButton()
	if !pressed {
		d.active = false
		d.cancelled = false
		return Vec{}, button, false
	}

	cursor := CursorPosition()

	if !d.active {
		// first frame of the drag, nothing moved yet
		d.active = true
		d.last = cursor
		return Vec{}, button, false
	}

	delta = cursor.Sub(d.last)
	d.last = cursor

	return delta, button, !d.cancelled
}

// Cancel ignores the current drag, e.g. because the press hit a button.
func (d *Drag) Cancel() {
	d.cancelled = true
}

func pressedButton() (ebiten.MouseButton, bool) {
	touchIds = ebiten.AppendTouchIDs(touchIds[:0])
	if len(touchIds) > 0 {
		return ebiten.MouseButtonLeft, true
	}

	for _, button := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if ebiten.IsMouseButtonPressed(button) {
			return button, true
		}
	}

	return ebiten.MouseButtonLeft, false
}
