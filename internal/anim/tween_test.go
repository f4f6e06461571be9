package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTweenRestsAtInitialValue(t *testing.T) {
	t.Parallel()

	tw := NewTween(1, EaseInOutQuad)
	require.Equal(t, 1.0, tw.Value(epoch))
	require.Equal(t, 1.0, tw.Target())
	require.False(t, tw.Animating(epoch))
}

func TestTweenRetarget(t *testing.T) {
	t.Parallel()

	tw := NewTween(0, Linear)
	require.True(t, tw.Retarget(epoch, 1, 200*time.Millisecond))

	require.Equal(t, 0.0, tw.Value(epoch))
	require.InDelta(t, 0.5, tw.Value(epoch.Add(100*time.Millisecond)), 1e-9)
	require.True(t, tw.Animating(epoch.Add(100*time.Millisecond)))
	require.Equal(t, 1.0, tw.Value(epoch.Add(200*time.Millisecond)))
	require.False(t, tw.Animating(epoch.Add(200*time.Millisecond)))
	require.Equal(t, 1.0, tw.Value(epoch.Add(time.Hour)))
}

func TestTweenRetargetToSameTargetIsNoOp(t *testing.T) {
	t.Parallel()

	tw := NewTween(0, Linear)
	require.True(t, tw.Retarget(epoch, 1, 200*time.Millisecond))

	mid := epoch.Add(50 * time.Millisecond)
	require.False(t, tw.Retarget(mid, 1, 200*time.Millisecond))
	// Timing is untouched: the transition still ends 200ms after epoch.
	require.Equal(t, 1.0, tw.Value(epoch.Add(200*time.Millisecond)))

	require.False(t, tweenAt(1).Retarget(epoch, 1, time.Second))
}

func tweenAt(v float64) *Tween {
	tw := NewTween(v, Linear)
	return &tw
}

func TestTweenRetargetMidFlightStartsFromCurrentValue(t *testing.T) {
	t.Parallel()

	tw := NewTween(0, Linear)
	tw.Retarget(epoch, 1, 200*time.Millisecond)

	mid := epoch.Add(50 * time.Millisecond)
	before := tw.Value(mid)
	require.InDelta(t, 0.25, before, 1e-9)

	require.True(t, tw.Retarget(mid, 0, 200*time.Millisecond))
	require.InDelta(t, before, tw.Value(mid), 1e-9, "retarget must not jump")
	require.InDelta(t, 0.125, tw.Value(mid.Add(100*time.Millisecond)), 1e-9)
	require.Equal(t, 0.0, tw.Value(mid.Add(200*time.Millisecond)))
}

func TestTweenNonPositiveDurationSnaps(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		tw := NewTween(0, EaseInOutQuad)
		require.True(t, tw.Retarget(epoch, 1, d))
		require.Equal(t, 1.0, tw.Value(epoch))
		require.False(t, tw.Animating(epoch))
	}
}

func TestTweenIsContinuousUnderRapidRetargets(t *testing.T) {
	t.Parallel()

	tw := NewTween(0, EaseInOutQuad)
	now := epoch
	last := tw.Value(now)
	targets := []float64{1, 0, 1, 0, 1}
	for _, target := range targets {
		for i := 0; i < 3; i++ {
			now = now.Add(16 * time.Millisecond)
			v := tw.Value(now)
			require.LessOrEqual(t, abs(v-last), 0.2, "sampled values must not teleport")
			last = v
		}
		tw.Retarget(now, target, 200*time.Millisecond)
		require.InDelta(t, last, tw.Value(now), 1e-9)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestManualClock(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(epoch)
	require.Equal(t, epoch, clock.Now())
	clock.Advance(time.Second)
	require.Equal(t, epoch.Add(time.Second), clock.Now())
	clock.Set(epoch)
	require.Equal(t, epoch, clock.Now())

	var sys Clock = SystemClock{}
	require.False(t, sys.Now().IsZero())
}
