package floatinput

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatinput/internal/anim"
	"github.com/alexisbeaulieu97/floatinput/internal/floatlabel"
	"github.com/alexisbeaulieu97/floatinput/internal/logger"
	"github.com/alexisbeaulieu97/floatinput/internal/theme"
)

const (
	defaultWidth  = 40
	framesPerSec  = 60
	frameInterval = time.Second / framesPerSec

	revealFrequency = 7.0
	revealDamping   = 0.8
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Options configures an input at mount time.
type Options struct {
	Label       string
	Placeholder string
	Value       string
	Error       string
	Touched     bool

	MaxLength int
	ReadOnly  bool
	Secure    bool
	AutoFocus bool
	// Pressable inputs never take text focus; Enter emits PressedMsg instead.
	Pressable bool
	// Right is an accessory rendered at the right edge of the input line.
	Right string

	Theme     *theme.PartialTheme
	Animation *theme.PartialAnimationConfig
	// Curve eases the label transition and the shake legs. Nil selects
	// anim.EaseInOutQuad.
	Curve anim.Curve
	Width int

	Clock  anim.Clock
	Logger *logger.Logger
}

// Model is a floating-label text input for bubbletea programs.
type Model struct {
	id          int
	label       string
	placeholder string
	right       string
	pressable   bool
	readOnly    bool
	width       int

	input textinput.Model
	ctrl  *floatlabel.Controller

	themeOverrides *theme.PartialTheme
	animOverrides  *theme.PartialAnimationConfig
	theme          theme.Theme

	// reveal springs the error row's space open and closed. The text itself
	// follows the error level.
	reveal anim.Spring

	selected bool
	ticking  bool

	KeyMap KeyMap
	log    *logger.Logger
}

// New mounts an input.
func New(opts Options) Model {
	id := nextID()
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	log := opts.Logger.WithFields(map[string]any{"input": id, "label": opts.Label})
	resolved := theme.Resolve(opts.Theme, theme.DefaultTheme())

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = opts.MaxLength
	input.SetValue(opts.Value)
	if opts.Secure {
		input.EchoMode = textinput.EchoPassword
	}

	m := Model{
		id:             id,
		label:          opts.Label,
		placeholder:    opts.Placeholder,
		right:          opts.Right,
		pressable:      opts.Pressable,
		readOnly:       opts.ReadOnly,
		width:          width,
		input:          input,
		themeOverrides: opts.Theme,
		animOverrides:  opts.Animation,
		theme:          resolved,
		reveal:         anim.NewSpring(framesPerSec, revealFrequency, revealDamping),
		KeyMap:         DefaultKeyMap,
		log:            log,
	}
	m.ctrl = floatlabel.New(floatlabel.Options{
		Theme:      resolved,
		Animation:  theme.ResolveAnimation(opts.Animation, theme.DefaultAnimation()),
		Value:      opts.Value,
		Touched:    opts.Touched,
		Error:      opts.Error,
		RestOffset: theme.RestOffset(inputPaddingTop),
		Clock:      opts.Clock,
		Curve:      opts.Curve,
		Logger:     log,
	})
	if m.ctrl.HasError() {
		m.reveal.Snap(1)
	}

	if opts.AutoFocus && m.Focusable() && !m.pressable {
		m.input.Focus()
		m.ctrl.OnFocus()
	}
	// A mount shake or focus transition needs frames from Init.
	m.ticking = m.ctrl.Animating()

	m.layoutInput()
	m.syncInput()
	return m
}

// Init measures the container once it can be rendered and starts any mount
// animation.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.layoutCmd()}
	if m.input.Focused() {
		cmds = append(cmds, textinput.Blink, emit(FocusMsg{ID: m.id}))
	}
	if m.ticking {
		cmds = append(cmds, m.frameCmd())
	}
	return tea.Batch(cmds...)
}

// ID identifies the input in emitted messages.
func (m Model) ID() int { return m.id }

// Label returns the label text.
func (m Model) Label() string { return m.label }

// Value returns the current text.
func (m Model) Value() string { return m.input.Value() }

// Focusable reports whether the input can take focus.
func (m Model) Focusable() bool { return m.pressable || !m.readOnly }

// Pressable reports whether the input is in pressable mode.
func (m Model) Pressable() bool { return m.pressable }

// Selected reports whether a pressable input is highlighted.
func (m Model) Selected() bool { return m.selected }

// Controller exposes the label controller, for inspection.
func (m Model) Controller() *floatlabel.Controller { return m.ctrl }

// Theme returns the resolved theme.
func (m Model) Theme() theme.Theme { return m.theme }

// Animating reports whether a frame loop is running.
func (m Model) Animating() bool { return m.ticking }

// SetValue replaces the text without emitting ChangedMsg.
func (m *Model) SetValue(v string) tea.Cmd {
	m.input.SetValue(v)
	return m.valueChanged()
}

// SetError updates the validation flags.
func (m *Model) SetError(touched bool, err string) tea.Cmd {
	m.ctrl.OnErrorFlagsChange(touched, err)
	if m.ctrl.HasError() {
		m.reveal.SetTarget(1)
	} else {
		m.reveal.SetTarget(0)
	}
	m.syncInput()
	return m.startFrames()
}

// SetTheme replaces the theme overrides.
func (m *Model) SetTheme(overrides *theme.PartialTheme) {
	m.themeOverrides = overrides
	m.theme = theme.Resolve(overrides, theme.DefaultTheme())
	m.ctrl.SetTheme(m.theme)
	m.syncInput()
}

// SetAnimation replaces the animation overrides.
func (m *Model) SetAnimation(overrides *theme.PartialAnimationConfig) {
	m.animOverrides = overrides
	m.ctrl.SetAnimation(theme.ResolveAnimation(overrides, theme.DefaultAnimation()))
	m.layoutInput()
}

// SetSecure switches password masking on or off.
func (m *Model) SetSecure(secure bool) {
	if secure {
		m.input.EchoMode = textinput.EchoPassword
		return
	}
	m.input.EchoMode = textinput.EchoNormal
}

// Secure reports whether input is masked.
func (m Model) Secure() bool { return m.input.EchoMode == textinput.EchoPassword }

// SetRight replaces the right-hand accessory.
func (m *Model) SetRight(right string) tea.Cmd {
	m.right = right
	m.layoutInput()
	return m.layoutCmd()
}

// SetWidth changes the total rendered width.
func (m *Model) SetWidth(width int) tea.Cmd {
	if width <= 0 || width == m.width {
		return nil
	}
	m.width = width
	m.layoutInput()
	return m.layoutCmd()
}

func (m *Model) valueChanged() tea.Cmd {
	m.ctrl.OnValueChange(m.input.Value() != "")
	m.syncInput()
	return m.startFrames()
}

// syncInput pushes theme and state into the embedded textinput.
func (m *Model) syncInput() {
	if m.ctrl.ShouldBeActive() {
		m.input.Placeholder = m.placeholder
	} else {
		m.input.Placeholder = ""
	}
	s := newStyles(m.theme, m.ctrl.HasError(), m.focusedLook())
	m.input.TextStyle = s.text
	m.input.PlaceholderStyle = s.placeholder
	m.input.Cursor.Style = s.cursor
	m.input.Cursor.TextStyle = s.text
}

func (m Model) focusedLook() bool {
	return m.ctrl.IsFocused() || m.selected
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking || (!m.ctrl.Animating() && m.reveal.Settled()) {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func (m Model) layoutCmd() tea.Cmd {
	return emit(layoutMsg{id: m.id})
}

func (m *Model) advanceFrame() tea.Cmd {
	m.reveal.Step()
	if m.ctrl.Animating() || !m.reveal.Settled() {
		return m.frameCmd()
	}
	m.ticking = false
	return nil
}

// measure reports the rendered container height to the controller.
func (m *Model) measure() {
	h := measureHeight(m.renderContainer(m.ctrl.Sample()))
	m.ctrl.OnLayout(float64(h))
}
