// Package theme resolves caller overrides for a floating-label input against
// fixed defaults. Resolution is pure and cheap enough to run on every render.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout calibration shared by the label controller and the renderer.
const (
	// InputPaddingTop is the top padding of the input in layout units.
	InputPaddingTop = 24.0
	// RestOffsetDivisor scales the top padding into the label rest offset.
	RestOffsetDivisor = 1.75
)

// Theme is the fully-populated visual configuration of an input.
type Theme struct {
	BackgroundColor     lipgloss.Color `yaml:"background_color"`
	LabelColor          lipgloss.Color `yaml:"label_color"`
	InputColor          lipgloss.Color `yaml:"input_color"`
	ErrorColor          lipgloss.Color `yaml:"error_color"`
	SelectionColor      lipgloss.Color `yaml:"selection_color"`
	PlaceholderColor    lipgloss.Color `yaml:"placeholder_color"`
	BorderRadius        float64        `yaml:"border_radius"`
	FontSize            float64        `yaml:"font_size"`
	LabelActiveFontSize float64        `yaml:"label_active_font_size"`
	FontFamily          string         `yaml:"font_family"`
}

// PartialTheme carries optional overrides. A nil field keeps the default.
type PartialTheme struct {
	BackgroundColor     *string  `yaml:"background_color,omitempty" validate:"omitempty,colour"`
	LabelColor          *string  `yaml:"label_color,omitempty" validate:"omitempty,colour"`
	InputColor          *string  `yaml:"input_color,omitempty" validate:"omitempty,colour"`
	ErrorColor          *string  `yaml:"error_color,omitempty" validate:"omitempty,colour"`
	SelectionColor      *string  `yaml:"selection_color,omitempty" validate:"omitempty,colour"`
	PlaceholderColor    *string  `yaml:"placeholder_color,omitempty" validate:"omitempty,colour"`
	BorderRadius        *float64 `yaml:"border_radius,omitempty"`
	FontSize            *float64 `yaml:"font_size,omitempty"`
	LabelActiveFontSize *float64 `yaml:"label_active_font_size,omitempty"`
	FontFamily          *string  `yaml:"font_family,omitempty"`
}

// DefaultTheme returns the stock input theme.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:     lipgloss.Color("#EDEFF2"),
		LabelColor:          lipgloss.Color("#878A99"),
		InputColor:          lipgloss.Color("#36373D"),
		ErrorColor:          lipgloss.Color("#E3152E"),
		SelectionColor:      lipgloss.Color("#31BE30"),
		PlaceholderColor:    lipgloss.Color("#878A99"),
		BorderRadius:        14,
		FontSize:            16,
		LabelActiveFontSize: 12,
		FontFamily:          "System",
	}
}

// Resolve merges overrides over defaults field by field. Values are not range
// checked; whatever the caller sets is passed through.
func Resolve(overrides *PartialTheme, defaults Theme) Theme {
	resolved := defaults
	if overrides == nil {
		return resolved
	}

	resolveColor(&resolved.BackgroundColor, overrides.BackgroundColor)
	resolveColor(&resolved.LabelColor, overrides.LabelColor)
	resolveColor(&resolved.InputColor, overrides.InputColor)
	resolveColor(&resolved.ErrorColor, overrides.ErrorColor)
	resolveColor(&resolved.SelectionColor, overrides.SelectionColor)
	resolveColor(&resolved.PlaceholderColor, overrides.PlaceholderColor)

	if overrides.BorderRadius != nil {
		resolved.BorderRadius = *overrides.BorderRadius
	}
	if overrides.FontSize != nil {
		resolved.FontSize = *overrides.FontSize
	}
	if overrides.LabelActiveFontSize != nil {
		resolved.LabelActiveFontSize = *overrides.LabelActiveFontSize
	}
	if overrides.FontFamily != nil {
		resolved.FontFamily = *overrides.FontFamily
	}

	return resolved
}

func resolveColor(dst *lipgloss.Color, override *string) {
	if override != nil {
		*dst = lipgloss.Color(*override)
	}
}

// Merge layers next over p and returns the combined overrides. Fields set in
// next win.
func (p *PartialTheme) Merge(next *PartialTheme) *PartialTheme {
	if p == nil {
		return next
	}
	merged := *p
	if next == nil {
		return &merged
	}
	mergeField(&merged.BackgroundColor, next.BackgroundColor)
	mergeField(&merged.LabelColor, next.LabelColor)
	mergeField(&merged.InputColor, next.InputColor)
	mergeField(&merged.ErrorColor, next.ErrorColor)
	mergeField(&merged.SelectionColor, next.SelectionColor)
	mergeField(&merged.PlaceholderColor, next.PlaceholderColor)
	mergeField(&merged.BorderRadius, next.BorderRadius)
	mergeField(&merged.FontSize, next.FontSize)
	mergeField(&merged.LabelActiveFontSize, next.LabelActiveFontSize)
	mergeField(&merged.FontFamily, next.FontFamily)
	return &merged
}

func mergeField[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// BorderFor returns the box border matching the theme's corner radius.
func BorderFor(t Theme) lipgloss.Border {
	if t.BorderRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// DefaultRestOffset is the label rest offset for the stock input padding.
func DefaultRestOffset() float64 {
	return RestOffset(InputPaddingTop)
}

// RestOffset converts an input top padding into the label rest offset.
func RestOffset(paddingTop float64) float64 {
	return paddingTop / RestOffsetDivisor
}

// String returns a pointer to s, for building overrides from literals.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
