package anim

import "time"

// Tween is a retargetable timed transition between two scalar values.
type Tween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

// NewTween creates a tween resting at value. A nil curve means Linear.
func NewTween(value float64, curve Curve) Tween {
	if curve == nil {
		curve = Linear
	}
	return Tween{from: value, to: value, curve: curve}
}

// Value returns the tween's value at now.
func (t *Tween) Value(now time.Time) float64 {
	if t.duration <= 0 {
		return t.to
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.duration {
		return t.to
	}
	progress := clampUnit(float64(elapsed) / float64(t.duration))
	return Lerp(t.from, t.to, t.ease(progress))
}

// Target returns the value the tween is heading to, or resting at.
func (t *Tween) Target() float64 {
	return t.to
}

// Animating reports whether the tween is still moving at now.
func (t *Tween) Animating(now time.Time) bool {
	return t.duration > 0 && t.from != t.to && now.Sub(t.start) < t.duration
}

// Retarget starts a transition toward target that begins at the value held at
// now and lasts d. It reports false without touching the in-flight transition
// when target is already the current target. A non-positive d jumps straight
// to target.
func (t *Tween) Retarget(now time.Time, target float64, d time.Duration) bool {
	if target == t.to {
		return false
	}
	t.from = t.Value(now)
	t.to = target
	t.start = now
	t.duration = d
	return true
}

func (t *Tween) ease(progress float64) float64 {
	if t.curve == nil {
		return progress
	}
	return t.curve(progress)
}
