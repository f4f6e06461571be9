package anim

import "time"

// Leg is one timed step of a Sequence.
type Leg struct {
	Target   float64
	Duration time.Duration
}

// Sequence plays legs back to back, each leg starting where the previous one
// ended.
type Sequence struct {
	origin float64
	legs   []Leg
	start  time.Time
	curve  Curve
}

// NewSequence creates an idle sequence resting at value.
func NewSequence(value float64, curve Curve) Sequence {
	if curve == nil {
		curve = Linear
	}
	return Sequence{origin: value, curve: curve}
}

// Play restarts the sequence from its first leg. The first leg departs from
// the value held at now, so a sequence interrupted mid-leg does not jump.
func (s *Sequence) Play(now time.Time, legs []Leg) {
	s.origin = s.Value(now)
	s.legs = append([]Leg(nil), legs...)
	s.start = now
}

// Value returns the sequence value at now.
func (s *Sequence) Value(now time.Time) float64 {
	from := s.origin
	elapsed := now.Sub(s.start)
	for _, leg := range s.legs {
		if leg.Duration <= 0 {
			from = leg.Target
			continue
		}
		if elapsed < leg.Duration {
			progress := clampUnit(float64(elapsed) / float64(leg.Duration))
			return Lerp(from, leg.Target, s.ease(progress))
		}
		elapsed -= leg.Duration
		from = leg.Target
	}
	return from
}

func (s *Sequence) ease(progress float64) float64 {
	if s.curve == nil {
		return progress
	}
	return s.curve(progress)
}

// Animating reports whether any leg is still playing at now.
func (s *Sequence) Animating(now time.Time) bool {
	return len(s.legs) > 0 && now.Sub(s.start) < s.Total()
}

// Total is the summed duration of all legs.
func (s *Sequence) Total() time.Duration {
	var total time.Duration
	for _, leg := range s.legs {
		if leg.Duration > 0 {
			total += leg.Duration
		}
	}
	return total
}
