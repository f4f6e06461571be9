package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const springEpsilon = 0.001

// Spring is a frame-stepped damped spring. Unlike Tween it has no fixed
// duration: it is advanced once per rendered frame until it settles.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpring creates a spring stepped at fps frames per second.
func NewSpring(fps int, frequency, damping float64) Spring {
	return Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// SetTarget changes the resting point without resetting velocity.
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Target returns the current resting point.
func (s *Spring) Target() float64 {
	return s.target
}

// Step advances the spring by one frame and returns the new position.
func (s *Spring) Step() float64 {
	if s.Settled() {
		s.pos = s.target
		s.vel = 0
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

// Value returns the current position.
func (s *Spring) Value() float64 {
	return s.pos
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.pos-s.target) < springEpsilon && math.Abs(s.vel) < springEpsilon
}

// Snap moves the spring to value and makes it the target.
func (s *Spring) Snap(value float64) {
	s.pos = value
	s.vel = 0
	s.target = value
}
