package form

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the form-level bindings.
type KeyMap struct {
	Next           key.Binding
	Prev           key.Binding
	FocusName      key.Binding
	FocusEmail     key.Binding
	ClearName      key.Binding
	TogglePassword key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:           key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:           key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		FocusName:      key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "focus name")),
		FocusEmail:     key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "focus email")),
		ClearName:      key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "clear name")),
		TogglePassword: key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "show/hide password")),
		Quit:           key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.FocusName, k.FocusEmail, k.ClearName, k.TogglePassword, k.Quit}
}
