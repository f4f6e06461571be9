package floatinput

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatinput/internal/floatlabel"
)

const (
	labelSlotRow = 0
	inputRow     = labelSlotRow + inputPaddingTop
	// collapseAt is the reveal level below which the error row gives up its
	// space.
	collapseAt = 0.5
)

// View renders the input box and, while revealed, the error text below it.
func (m Model) View() string {
	container := m.renderContainer(m.ctrl.Sample())
	errRow := m.renderError()
	if errRow == "" {
		return container
	}
	return lipgloss.JoinVertical(lipgloss.Left, container, errRow)
}

func (m Model) innerWidth() int {
	// Border takes one cell on each side.
	return max(1, m.width-2)
}

func (m Model) renderContainer(s floatlabel.Sample) string {
	st := newStyles(m.theme, s.HasError, m.focusedLook())
	width := m.innerWidth()

	top := st.row.Width(width).Render("")
	bottom := m.renderInputLine(st, width)

	row := inputRow + int(math.Round(s.LabelTranslateY))
	label := m.renderLabel(st, s, width)
	switch {
	case row <= labelSlotRow:
		top = label
	case m.input.Value() == "":
		// The label rests on the input line until it has risen.
		bottom = label
	}

	return st.box.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
}

func (m Model) renderLabel(st styles, s floatlabel.Sample, width int) string {
	style := st.label
	if compactLabel(s.LabelFontSize, m.theme) {
		style = style.Faint(true)
	}
	shift := max(0, m.insetX()+int(math.Round(s.ShakeOffset)))
	return st.row.Width(width).PaddingLeft(shift).Render(style.Render(m.label))
}

func (m Model) renderInputLine(st styles, width int) string {
	left := st.row.PaddingLeft(m.insetX()).Render(m.input.View())
	if m.right == "" {
		return st.row.Width(width).Render(left)
	}
	right := st.right.Render(m.right) + st.row.Render(" ")
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return st.row.Width(width).Render(left + st.row.Render(strings.Repeat(" ", gap)) + right)
}

// layoutInput sizes the embedded textinput to the space left of the accessory.
func (m *Model) layoutInput() {
	reserve := 0
	if m.right != "" {
		reserve = lipgloss.Width(m.right) + 2
	}
	// One cell is kept for the cursor.
	m.input.Width = max(1, m.innerWidth()-2*m.insetX()-reserve-1)
}

// insetX is the horizontal inset of the label and input. It grows with the
// shake magnitude so both legs of the shake fit inside the box.
func (m Model) insetX() int {
	mag := int(math.Ceil(math.Abs(m.ctrl.Animation().ShakeMagnitude)))
	return max(paddingX, mag)
}

// renderError shows the full error text exactly while the input has an
// error. Once it clears, a blank row holds the space until the spring has
// collapsed past collapseAt.
func (m Model) renderError() string {
	if m.ctrl.HasError() {
		st := newStyles(m.theme, true, false)
		return st.errorText.Render(m.ctrl.Error())
	}
	if m.reveal.Value() >= collapseAt {
		return " "
	}
	return ""
}
