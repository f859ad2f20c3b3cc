package tween

import (
	"testing"
	"time"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	var value float64

	var tweens Tweens
	tweens.Add(&Simple{
		Duration: 100 * time.Millisecond,
		Target:   LerpValue(&value, 10, 20),
	})

	require.True(t, tweens.Running())
	require.Equal(t, 10.0, value)

	tweens.Update(50 * time.Millisecond)
	require.InDelta(t, 15.0, value, 1e-9)

	tweens.Update(60 * time.Millisecond)
	require.Equal(t, 20.0, value)
	require.False(t, tweens.Running())
}

func TestSimpleEase(t *testing.T) {
	var value float64

	tw := &Simple{
		Duration: time.Second,
		Ease:     ease.OutCubic,
		Target:   LerpValue(&value, 0, 1),
	}

	require.False(t, tw.Update(500*time.Millisecond))
	require.InDelta(t, ease.OutCubic(0.5), value, 1e-9)
	require.Greater(t, value, 0.5)

	require.True(t, tw.Update(time.Second))
	require.InDelta(t, 1.0, value, 1e-9)
}

func TestZeroDurationFinishesImmediately(t *testing.T) {
	var value float64

	var tweens Tweens
	tweens.Add(&Simple{Target: LerpValue(&value, 0, 5)})

	require.False(t, tweens.Running())
	require.Equal(t, 5.0, value)
}

func TestSequenceAndDelay(t *testing.T) {
	var a, b float64

	tw := Delay(100*time.Millisecond, Sequence(
		&Simple{Duration: 100 * time.Millisecond, Target: LerpValue(&a, 0, 1)},
		&Simple{Duration: 100 * time.Millisecond, Target: LerpValue(&b, 0, 1)},
	))

	require.False(t, tw.Update(100*time.Millisecond))
	require.Equal(t, 0.0, a)

	require.False(t, tw.Update(100*time.Millisecond))
	require.Equal(t, 1.0, a)
	require.Equal(t, 0.0, b)

	require.True(t, tw.Update(100*time.Millisecond))
	require.Equal(t, 1.0, b)
}

func TestConcurrent(t *testing.T) {
	var a, b float64

	tw := Concurrent(
		&Simple{Duration: 100 * time.Millisecond, Target: LerpValue(&a, 0, 1)},
		&Simple{Duration: 200 * time.Millisecond, Target: LerpValue(&b, 0, 1)},
	)

	require.False(t, tw.Update(100*time.Millisecond))
	require.Equal(t, 1.0, a)
	require.InDelta(t, 0.5, b, 1e-9)

	require.True(t, tw.Update(100*time.Millisecond))
	require.Equal(t, 1.0, b)
}

func TestLerpAngle(t *testing.T) {
	for _, tc := range []struct {
		from, to, half float64
	}{
		{from: 10, to: 50, half: 30},
		{from: 350, to: 10, half: 360},
		{from: 10, to: 350, half: 0},
		{from: 0, to: 180, half: 90},
	} {
		var value float64
		LerpAngle(&value, tc.from, tc.to)(0.5)
		require.InDelta(t, tc.half, value, 1e-9)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	require.Equal(t, 0.0, NormalizeDegrees(360))
	require.Equal(t, 350.0, NormalizeDegrees(-10))
	require.Equal(t, 10.0, NormalizeDegrees(730))
}
