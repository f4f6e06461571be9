package floatinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func lipglossColor(c lipgloss.TerminalColor) string {
	if color, ok := c.(lipgloss.Color); ok {
		return string(color)
	}
	return ""
}

func maxLineWidth(view string) int {
	widest := 0
	for _, line := range strings.Split(view, "\n") {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}
