package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func shakeLegs(mag float64, d time.Duration) []Leg {
	return []Leg{{-mag, d}, {mag, d}, {-mag, d}, {0, d}}
}

func TestSequencePlaysLegsBackToBack(t *testing.T) {
	t.Parallel()

	s := NewSequence(0, Linear)
	s.Play(epoch, shakeLegs(2, 50*time.Millisecond))

	require.Equal(t, 200*time.Millisecond, s.Total())
	require.Equal(t, 0.0, s.Value(epoch))
	require.InDelta(t, -1.0, s.Value(epoch.Add(25*time.Millisecond)), 1e-9)
	require.InDelta(t, -2.0, s.Value(epoch.Add(50*time.Millisecond)), 1e-9)
	require.InDelta(t, 0.0, s.Value(epoch.Add(75*time.Millisecond)), 1e-9)
	require.InDelta(t, 2.0, s.Value(epoch.Add(100*time.Millisecond)), 1e-9)
	require.InDelta(t, -2.0, s.Value(epoch.Add(150*time.Millisecond)), 1e-9)
	require.InDelta(t, -1.0, s.Value(epoch.Add(175*time.Millisecond)), 1e-9)
	require.Equal(t, 0.0, s.Value(epoch.Add(200*time.Millisecond)))
	require.True(t, s.Animating(epoch.Add(199*time.Millisecond)))
	require.False(t, s.Animating(epoch.Add(200*time.Millisecond)))
}

func TestSequenceIdleIsNotAnimating(t *testing.T) {
	t.Parallel()

	s := NewSequence(0, EaseInOutQuad)
	require.False(t, s.Animating(epoch))
	require.Equal(t, 0.0, s.Value(epoch))
	require.Zero(t, s.Total())
}

func TestSequenceReplayStartsFromCurrentValue(t *testing.T) {
	t.Parallel()

	s := NewSequence(0, Linear)
	s.Play(epoch, shakeLegs(2, 50*time.Millisecond))

	mid := epoch.Add(75 * time.Millisecond)
	current := s.Value(mid)
	s.Play(mid, shakeLegs(6, 100*time.Millisecond))

	require.InDelta(t, current, s.Value(mid), 1e-9)
	require.InDelta(t, -6.0, s.Value(mid.Add(100*time.Millisecond)), 1e-9)
	require.Equal(t, 400*time.Millisecond, s.Total())
}

func TestSequenceZeroDurationLegsSnap(t *testing.T) {
	t.Parallel()

	s := NewSequence(0, Linear)
	s.Play(epoch, shakeLegs(2, 0))
	require.False(t, s.Animating(epoch))
	require.Equal(t, 0.0, s.Value(epoch))
}
