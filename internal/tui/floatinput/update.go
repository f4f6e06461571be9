package floatinput

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update forwards input events to the label controller and advances frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.advanceFrame()
	case layoutMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.measure()
		return m, nil
	case tea.WindowSizeMsg:
		m.measure()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and paste messages.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.pressable {
		if m.selected && key.Matches(msg, m.KeyMap.Press) {
			m.log.Debug("pressed")
			return m, emit(PressedMsg{ID: m.id})
		}
		return m, nil
	}
	if m.readOnly || !m.input.Focused() {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.valueChanged(), emit(ChangedMsg{ID: m.id, Value: after}))
}
