// Package tween animates float values over time. The viewer uses it to move
// the camera smoothly between orientations.
package tween

import (
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

// Tween is advanced by Update until it reports that it is done.
type Tween interface {
	Update(dt time.Duration) (done bool)
}

// Target receives the eased progress f in [0, 1].
type Target func(f float64)

// Tweens runs a set of tweens in parallel.
type Tweens struct {
	tweens []Tween
}

// Add starts the tween. A tween that finishes immediately is not kept.
func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

// Clear stops all running tweens without finishing them.
func (t *Tweens) Clear() {
	t.tweens = nil
}

// Running reports whether at least one tween is still active.
func (t *Tweens) Running() bool {
	return len(t.tweens) > 0
}

// Simple interpolates over a fixed duration.
type Simple struct {
	Duration time.Duration
	Target   Target

	// easing function, linear if nil
	Ease func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		if t.Target != nil {
			t.Target(1)
		}

		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f)
	}

	return t.elapsed >= t.Duration
}

// Sequence runs the tweens one after another.
func Sequence(tweens ...Tween) Tween {
	return &sequence{tweens: tweens}
}

type sequence struct {
	tweens []Tween
}

func (s *sequence) Update(dt time.Duration) bool {
	if len(s.tweens) > 0 {
		if done := s.tweens[0].Update(dt); done {
			s.tweens = s.tweens[1:]
		}
	}

	return len(s.tweens) == 0
}

// Concurrent runs the tweens at the same time and finishes with the last one.
func Concurrent(tweens ...Tween) Tween {
	return &concurrent{tweens: tweens}
}

type concurrent struct {
	tweens []Tween
}

func (c *concurrent) Update(dt time.Duration) bool {
	c.tweens = slices.DeleteFunc(c.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})

	return len(c.tweens) == 0
}

// Delay waits before starting next.
func Delay(delay time.Duration, next Tween) Tween {
	return Sequence(&Simple{Duration: delay}, next)
}

// LerpValue moves target from one value to another.
func LerpValue(target *float64, from, to float64) Target {
	return func(f float64) {
		*target = gmath.Lerp(from, to, f)
	}
}

// LerpAngle moves an angle in degrees to another one along the shorter way.
func LerpAngle(target *float64, from, to float64) Target {
	delta := NormalizeDegrees(to - from)
	if delta > 180 {
		delta -= 360
	}

	return LerpValue(target, from, from+delta)
}

// NormalizeDegrees maps an angle to [0, 360).
func NormalizeDegrees(angle float64) float64 {
	for angle < 0 {
		angle += 360
	}

	for angle >= 360 {
		angle -= 360
	}

	return angle
}
