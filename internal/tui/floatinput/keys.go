package floatinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings an input handles itself. Text editing keys belong
// to the embedded textinput.
type KeyMap struct {
	Press key.Binding
}

// DefaultKeyMap is the default set of bindings.
var DefaultKeyMap = KeyMap{
	Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
}
