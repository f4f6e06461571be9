package theme

import "time"

// AnimationConfig controls label and shake timing.
type AnimationConfig struct {
	LabelDuration  time.Duration `yaml:"label_duration"`
	ShakeMagnitude float64       `yaml:"shake_magnitude"`
	// ShakeDuration is the length of a single shake leg.
	ShakeDuration time.Duration `yaml:"shake_duration"`
}

// PartialAnimationConfig carries optional animation overrides.
type PartialAnimationConfig struct {
	LabelDuration  *time.Duration `yaml:"label_duration,omitempty"`
	ShakeMagnitude *float64       `yaml:"shake_magnitude,omitempty"`
	ShakeDuration  *time.Duration `yaml:"shake_duration,omitempty"`
}

// DefaultAnimation returns the stock timing.
func DefaultAnimation() AnimationConfig {
	return AnimationConfig{
		LabelDuration:  200 * time.Millisecond,
		ShakeMagnitude: 2,
		ShakeDuration:  50 * time.Millisecond,
	}
}

// ResolveAnimation merges overrides over defaults. Negative or zero durations
// are kept as given.
func ResolveAnimation(overrides *PartialAnimationConfig, defaults AnimationConfig) AnimationConfig {
	resolved := defaults
	if overrides == nil {
		return resolved
	}
	if overrides.LabelDuration != nil {
		resolved.LabelDuration = *overrides.LabelDuration
	}
	if overrides.ShakeMagnitude != nil {
		resolved.ShakeMagnitude = *overrides.ShakeMagnitude
	}
	if overrides.ShakeDuration != nil {
		resolved.ShakeDuration = *overrides.ShakeDuration
	}
	return resolved
}

// Merge layers next over p.
func (p *PartialAnimationConfig) Merge(next *PartialAnimationConfig) *PartialAnimationConfig {
	if p == nil {
		return next
	}
	merged := *p
	if next == nil {
		return &merged
	}
	mergeField(&merged.LabelDuration, next.LabelDuration)
	mergeField(&merged.ShakeMagnitude, next.ShakeMagnitude)
	mergeField(&merged.ShakeDuration, next.ShakeDuration)
	return &merged
}

// Duration returns a pointer to d.
func Duration(d time.Duration) *time.Duration { return &d }
