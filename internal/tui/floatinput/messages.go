package floatinput

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg reports text typed into an input, or the input being cleared.
type ChangedMsg struct {
	ID    int
	Value string
}

// FocusMsg reports that an input gained focus.
type FocusMsg struct {
	ID int
}

// BlurMsg reports that an input lost focus.
type BlurMsg struct {
	ID int
}

// PressedMsg reports activation of a pressable input.
type PressedMsg struct {
	ID int
}

// frameMsg advances the animations of one input by a frame.
type frameMsg struct {
	id int
}

// layoutMsg asks an input to measure its rendered container.
type layoutMsg struct {
	id int
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
