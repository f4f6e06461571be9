package floatinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Handle is the imperative surface a parent uses to drive an input.
type Handle interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	Clear() tea.Cmd
	IsFocused() bool
}

var _ Handle = (*Model)(nil)

// Focus gives the input keyboard focus. Pressable inputs are highlighted
// instead; read-only inputs ignore the request.
func (m *Model) Focus() tea.Cmd {
	if !m.Focusable() || m.IsFocused() {
		return nil
	}
	if m.pressable {
		m.selected = true
		m.syncInput()
		return emit(FocusMsg{ID: m.id})
	}

	m.input.Focus()
	m.ctrl.OnFocus()
	m.syncInput()
	m.log.Debug("focused")
	return tea.Batch(textinput.Blink, m.startFrames(), emit(FocusMsg{ID: m.id}))
}

// Blur removes focus.
func (m *Model) Blur() tea.Cmd {
	if !m.IsFocused() {
		return nil
	}
	if m.pressable {
		m.selected = false
		m.syncInput()
		return emit(BlurMsg{ID: m.id})
	}

	m.input.Blur()
	m.ctrl.OnBlur()
	m.syncInput()
	m.log.Debug("blurred")
	return tea.Batch(m.startFrames(), emit(BlurMsg{ID: m.id}))
}

// Clear empties the input and reports the change.
func (m *Model) Clear() tea.Cmd {
	m.input.Reset()
	return tea.Batch(m.valueChanged(), emit(ChangedMsg{ID: m.id, Value: ""}))
}

// IsFocused reports whether the input holds focus, or is highlighted when
// pressable.
func (m Model) IsFocused() bool {
	if m.pressable {
		return m.selected
	}
	return m.input.Focused()
}
