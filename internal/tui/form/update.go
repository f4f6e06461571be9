package form

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatinput/internal/tui/floatinput"
)

var validatedFields = map[int]string{
	FieldName:     "Name",
	FieldEmail:    "Email",
	FieldPassword: "Password",
}

// Update routes keys to the form or the focused field and reacts to field
// events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case focusFieldMsg:
		return m, m.focusField(msg.index)
	case floatinput.ChangedMsg:
		return m, m.revalidate()
	case floatinput.BlurMsg:
		if i := m.indexOf(msg.ID); i >= 0 {
			m.touched[i] = true
			m.log.DebugFields("field touched", map[string]any{"field": m.fields[i].Label()})
		}
		return m, m.revalidate()
	case floatinput.PressedMsg:
		if m.indexOf(msg.ID) == FieldDate {
			return m, m.fields[FieldDate].SetValue(PressedDate)
		}
		return m, nil
	case floatinput.FocusMsg:
		return m, nil
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.focusField(m.step(1))
	case key.Matches(msg, m.keys.Prev):
		return m, m.focusField(m.step(-1))
	case key.Matches(msg, m.keys.FocusName):
		return m, m.focusField(FieldName)
	case key.Matches(msg, m.keys.FocusEmail):
		return m, m.focusField(FieldEmail)
	case key.Matches(msg, m.keys.ClearName):
		return m, m.fields[FieldName].Clear()
	case key.Matches(msg, m.keys.TogglePassword):
		return m, m.togglePassword()
	}

	if m.focus < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

// broadcast hands frame, layout and blink messages to every field; each
// field ignores messages addressed to another.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for i := range m.fields {
		var cmd tea.Cmd
		m.fields[i], cmd = m.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// step returns the next focusable field index in direction dir.
func (m Model) step(dir int) int {
	n := len(m.fields)
	start := m.focus
	if start < 0 {
		start = n - 1
		if dir < 0 {
			start = 0
		}
	}
	for i := 1; i <= n; i++ {
		next := ((start+dir*i)%n + n) % n
		if m.fields[next].Focusable() {
			return next
		}
	}
	return m.focus
}

func (m *Model) focusField(index int) tea.Cmd {
	if index < 0 || index >= len(m.fields) || index == m.focus || !m.fields[index].Focusable() {
		return nil
	}
	var cmds []tea.Cmd
	if m.focus >= 0 {
		cmds = append(cmds, m.fields[m.focus].Blur())
	}
	m.focus = index
	cmds = append(cmds, m.fields[index].Focus())
	return tea.Batch(cmds...)
}

func (m *Model) togglePassword() tea.Cmd {
	m.showPassword = !m.showPassword
	field := &m.fields[FieldPassword]
	field.SetSecure(!m.showPassword)
	if m.showPassword {
		return field.SetRight(passwordHide)
	}
	return field.SetRight(passwordShow)
}

// revalidate pushes rule outcomes into the validated fields. Errors only
// show once a field has been touched.
func (m *Model) revalidate() tea.Cmd {
	errs := Validate(m.Values())
	cmds := make([]tea.Cmd, 0, len(validatedFields))
	for index, name := range validatedFields {
		cmds = append(cmds, m.fields[index].SetError(m.touched[index], errs[name]))
	}
	return tea.Batch(cmds...)
}
