// Package anim provides the small time-driven interpolation primitives behind
// the floating label: eased tweens that can be retargeted mid-flight, leg
// sequences for the error shake, and a frame-stepped spring for layout
// transitions.
//
// Tweens and sequences are pull based. They store when a transition started
// and compute the value for any instant on demand, so a host only needs a
// clock and a way to schedule redraws. Retargeting always starts from the
// instantaneous value, never from the previous target, which keeps sampled
// values continuous.
package anim
