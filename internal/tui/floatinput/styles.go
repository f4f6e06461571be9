package floatinput

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatinput/internal/theme"
)

const (
	// paddingX is the horizontal inset of the label and input, in cells.
	paddingX = 2
	// inputPaddingTop is the number of rows above the input line.
	inputPaddingTop = 1
	errorMarginLeft = 1
)

type styles struct {
	box         lipgloss.Style
	row         lipgloss.Style
	label       lipgloss.Style
	text        lipgloss.Style
	placeholder lipgloss.Style
	cursor      lipgloss.Style
	right       lipgloss.Style
	errorText   lipgloss.Style
}

func newStyles(t theme.Theme, hasError, focused bool) styles {
	bg := t.BackgroundColor

	accent := t.SelectionColor
	if hasError {
		accent = t.ErrorColor
	}
	border := bg
	if hasError || focused {
		border = accent
	}
	labelColor := t.LabelColor
	if hasError {
		labelColor = t.ErrorColor
	}

	return styles{
		box: lipgloss.NewStyle().
			Border(theme.BorderFor(t)).
			BorderForeground(border).
			BorderBackground(bg).
			Background(bg),
		row:         lipgloss.NewStyle().Background(bg),
		label:       lipgloss.NewStyle().Foreground(labelColor).Background(bg),
		text:        lipgloss.NewStyle().Foreground(t.InputColor).Background(bg),
		placeholder: lipgloss.NewStyle().Foreground(t.PlaceholderColor).Background(bg),
		cursor:      lipgloss.NewStyle().Foreground(accent),
		right:       lipgloss.NewStyle().Foreground(t.LabelColor).Background(bg),
		errorText:   lipgloss.NewStyle().Foreground(t.ErrorColor).MarginLeft(errorMarginLeft),
	}
}

// compactLabel reports whether size is closer to the active font size than
// to the resting one. Terminals have a single glyph size, so the raised label
// is drawn faint instead of smaller.
func compactLabel(size float64, t theme.Theme) bool {
	return math.Abs(size-t.LabelActiveFontSize) < math.Abs(size-t.FontSize)
}

func measureHeight(rendered string) int {
	return lipgloss.Height(rendered)
}
