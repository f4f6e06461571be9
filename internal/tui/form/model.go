// Package form is the interactive showcase for floating-label inputs. Its
// validation rules are ordinary caller policy layered on top of the inputs.
package form

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatinput/internal/anim"
	"github.com/alexisbeaulieu97/floatinput/internal/logger"
	"github.com/alexisbeaulieu97/floatinput/internal/theme"
	"github.com/alexisbeaulieu97/floatinput/internal/tui/floatinput"
)

// Field indexes in display order.
const (
	FieldName = iota
	FieldEmail
	FieldPassword
	FieldDate
	FieldPhone
	FieldSlow
	FieldFixed
	fieldCount
)

// PressedDate is the value a press on the date field selects.
const PressedDate = "01/01/2000"

const (
	defaultWidth = 44
	passwordShow = "show"
	passwordHide = "hide"
)

// Options configures the demo form.
type Options struct {
	// Theme and Animation apply to every field, under per-field overrides.
	Theme     *theme.PartialTheme
	Animation *theme.PartialAnimationConfig
	Width     int
	Clock     anim.Clock
	Logger    *logger.Logger
}

type section struct {
	title string
	first int
}

var sections = []section{
	{"BASIC", FieldName},
	{"WITH RIGHT ELEMENT", FieldPassword},
	{"PRESSABLE MODE", FieldDate},
	{"CUSTOM THEME", FieldPhone},
	{"CUSTOM ANIMATION", FieldSlow},
	{"DISABLED", FieldFixed},
}

// Model is the bubbletea model of the demo form.
type Model struct {
	fields  []floatinput.Model
	touched [fieldCount]bool
	focus   int

	showPassword bool
	quitting     bool

	keys KeyMap
	log  *logger.Logger
}

// New builds the demo form.
func New(opts Options) Model {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	field := func(o floatinput.Options) floatinput.Model {
		o.Width = width
		o.Clock = opts.Clock
		o.Logger = opts.Logger
		o.Theme = opts.Theme.Merge(o.Theme)
		o.Animation = opts.Animation.Merge(o.Animation)
		return floatinput.New(o)
	}

	fields := make([]floatinput.Model, fieldCount)
	fields[FieldName] = field(floatinput.Options{Label: "Full Name"})
	fields[FieldEmail] = field(floatinput.Options{Label: "Email", Placeholder: "you@example.com"})
	fields[FieldPassword] = field(floatinput.Options{Label: "Password", Secure: true, Right: passwordShow})
	fields[FieldDate] = field(floatinput.Options{Label: "Date of Birth", Pressable: true})
	fields[FieldPhone] = field(floatinput.Options{
		Label: "Phone Number",
		Theme: &theme.PartialTheme{
			BackgroundColor: theme.String("#E8F5E9"),
			SelectionColor:  theme.String("#2E7D32"),
			LabelColor:      theme.String("#4CAF50"),
			InputColor:      theme.String("#1B5E20"),
			BorderRadius:    theme.Float(8),
		},
	})
	fields[FieldSlow] = field(floatinput.Options{
		Label: "Slow label transition",
		Curve: anim.EaseInOut,
		Animation: &theme.PartialAnimationConfig{
			LabelDuration:  theme.Duration(500 * time.Millisecond),
			ShakeMagnitude: theme.Float(6),
		},
	})
	fields[FieldFixed] = field(floatinput.Options{
		Label:    "Not editable",
		Value:    "Fixed value",
		ReadOnly: true,
		Theme: &theme.PartialTheme{
			BackgroundColor: theme.String("#E0E0E0"),
			InputColor:      theme.String("#9E9E9E"),
		},
	})

	return Model{
		fields: fields,
		focus:  -1,
		keys:   DefaultKeyMap(),
		log:    opts.Logger,
	}
}

// Init mounts every field and focuses the first one.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields)+1)
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	cmds = append(cmds, func() tea.Msg { return focusFieldMsg{index: FieldName} })
	return tea.Batch(cmds...)
}

// focusFieldMsg moves focus once the fields are mounted.
type focusFieldMsg struct {
	index int
}

// Field returns the field at index.
func (m Model) Field(index int) floatinput.Model {
	return m.fields[index]
}

// Focused returns the focused field index, or -1.
func (m Model) Focused() int {
	return m.focus
}

// Touched reports whether the field at index has been blurred at least once.
func (m Model) Touched(index int) bool {
	return m.touched[index]
}

// Values returns the values checked by the validation rules.
func (m Model) Values() Values {
	return Values{
		Name:     m.fields[FieldName].Value(),
		Email:    m.fields[FieldEmail].Value(),
		Password: m.fields[FieldPassword].Value(),
	}
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) indexOf(id int) int {
	for i, f := range m.fields {
		if f.ID() == id {
			return i
		}
	}
	return -1
}
