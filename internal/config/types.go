// Package config loads theme and animation overrides from YAML documents.
package config

import "github.com/alexisbeaulieu97/floatinput/internal/theme"

// Overrides are the optional settings an override file may carry. Absent
// sections and fields keep their defaults.
type Overrides struct {
	Theme     *theme.PartialTheme           `yaml:"theme,omitempty"`
	Animation *theme.PartialAnimationConfig `yaml:"animation,omitempty"`
}

// Resolved is a fully-populated theme and animation pair.
type Resolved struct {
	Theme     theme.Theme           `yaml:"theme"`
	Animation theme.AnimationConfig `yaml:"animation"`
}

// Resolve applies the overrides to the stock defaults. A nil receiver
// resolves to the defaults.
func (o *Overrides) Resolve() Resolved {
	var (
		t *theme.PartialTheme
		a *theme.PartialAnimationConfig
	)
	if o != nil {
		t, a = o.Theme, o.Animation
	}
	return Resolved{
		Theme:     theme.Resolve(t, theme.DefaultTheme()),
		Animation: theme.ResolveAnimation(a, theme.DefaultAnimation()),
	}
}
