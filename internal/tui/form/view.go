package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View renders every section of the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("FloatingInput Examples"))
	b.WriteString("\n")

	next := 0
	for i, f := range m.fields {
		if next < len(sections) && sections[next].first == i {
			b.WriteString(sectionStyle.Render(sections[next].title))
			b.WriteString("\n")
			next++
		}
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpView()))
	return b.String()
}

func (m Model) helpView() string {
	bindings := m.keys.help()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	if m.focus == FieldDate {
		h := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick date")).Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Snapshot measures every field and renders the form once, for output that
// is not an interactive terminal.
func (m Model) Snapshot() string {
	for i := range m.fields {
		m.fields[i], _ = m.fields[i].Update(tea.WindowSizeMsg{})
	}
	return m.View()
}
