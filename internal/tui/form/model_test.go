package form

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatinput/internal/anim"
	"github.com/alexisbeaulieu97/floatinput/internal/theme"
	"github.com/alexisbeaulieu97/floatinput/internal/tui/floatinput"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestForm(t *testing.T) Model {
	t.Helper()
	m := New(Options{Clock: anim.NewManualClock(epoch)})
	return send(t, m, focusFieldMsg{index: FieldName})
}

// send delivers msg and then every field event the resulting commands emit.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 100, "event loop did not drain")
		next := queue[0]
		queue = queue[1:]
		model, cmd := m.Update(next)
		m = model.(Model)
		queue = append(queue, fieldEvents(cmd)...)
	}
	return m
}

func fieldEvents(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, fieldEvents(c)...)
		}
		return out
	case floatinput.ChangedMsg, floatinput.FocusMsg, floatinput.BlurMsg, floatinput.PressedMsg, focusFieldMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: k})
}

func TestInitFocusesName(t *testing.T) {
	t.Parallel()

	m := New(Options{Clock: anim.NewManualClock(epoch)})
	require.Equal(t, -1, m.Focused())

	msgs := fieldEvents(m.Init())
	require.Contains(t, msgs, tea.Msg(focusFieldMsg{index: FieldName}))

	m = send(t, m, focusFieldMsg{index: FieldName})
	require.Equal(t, FieldName, m.Focused())
	require.True(t, m.Field(FieldName).IsFocused())
}

func TestTabCyclesFocusableFields(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	var order []int
	for i := 0; i < fieldCount; i++ {
		m = press(t, m, tea.KeyTab)
		order = append(order, m.Focused())
	}
	require.Equal(t, []int{FieldEmail, FieldPassword, FieldDate, FieldPhone, FieldSlow, FieldName, FieldEmail}, order)

	m = press(t, m, tea.KeyShiftTab)
	require.Equal(t, FieldName, m.Focused())
	m = press(t, m, tea.KeyShiftTab)
	require.Equal(t, FieldSlow, m.Focused(), "read-only field is skipped")
}

func TestBlurMarksTouchedAndShowsError(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	require.False(t, m.Touched(FieldName))
	require.False(t, m.Field(FieldName).Controller().HasError())

	m = press(t, m, tea.KeyTab)
	require.True(t, m.Touched(FieldName))
	require.True(t, m.Field(FieldName).Controller().HasError())
	require.Equal(t, "Name is required", m.Field(FieldName).Controller().Error())
	require.False(t, m.Field(FieldEmail).Controller().HasError(), "email is not touched yet")
}

func TestTypingClearsTouchedError(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = press(t, m, tea.KeyTab)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n"), Alt: true})
	require.Equal(t, FieldName, m.Focused())

	m = typeText(t, m, "Ada")
	require.Equal(t, "Ada", m.Values().Name)
	require.False(t, m.Field(FieldName).Controller().HasError())
}

func TestEmailRule(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e"), Alt: true})
	require.Equal(t, FieldEmail, m.Focused())

	m = typeText(t, m, "ada")
	m = press(t, m, tea.KeyTab)
	require.Equal(t, "Invalid email address", m.Field(FieldEmail).Controller().Error())

	m = press(t, m, tea.KeyShiftTab)
	m = typeText(t, m, "@example.com")
	require.False(t, m.Field(FieldEmail).Controller().HasError())
}

func TestClearNameShortcut(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	m = typeText(t, m, "Ada")
	m = press(t, m, tea.KeyTab)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	require.Empty(t, m.Values().Name)
	require.True(t, m.Field(FieldName).Controller().HasError())
	require.Equal(t, FieldEmail, m.Focused(), "clearing does not move focus")
}

func TestTogglePassword(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	require.True(t, m.Field(FieldPassword).Secure())
	require.Contains(t, m.Field(FieldPassword).View(), passwordShow)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true})
	require.False(t, m.Field(FieldPassword).Secure())
	require.Contains(t, m.Field(FieldPassword).View(), passwordHide)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true})
	require.True(t, m.Field(FieldPassword).Secure())
}

func TestPressingDateFieldSetsValue(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	for m.Focused() != FieldDate {
		m = press(t, m, tea.KeyTab)
	}
	require.True(t, m.Field(FieldDate).Selected())

	m = press(t, m, tea.KeyEnter)
	require.Equal(t, PressedDate, m.Field(FieldDate).Value())
	require.True(t, m.Field(FieldDate).Controller().HasValue())
}

func TestCustomFieldOverrides(t *testing.T) {
	t.Parallel()

	m := New(Options{
		Theme:     &theme.PartialTheme{ErrorColor: theme.String("#FF0000")},
		Animation: &theme.PartialAnimationConfig{ShakeMagnitude: theme.Float(3)},
	})

	phone := m.Field(FieldPhone).Theme()
	require.Equal(t, "#E8F5E9", string(phone.BackgroundColor))
	require.Equal(t, "#FF0000", string(phone.ErrorColor))
	require.Equal(t, "#FF0000", string(m.Field(FieldName).Theme().ErrorColor))

	require.Equal(t, 500*time.Millisecond, m.Field(FieldSlow).Controller().Animation().LabelDuration)
	require.Equal(t, 6.0, m.Field(FieldSlow).Controller().Animation().ShakeMagnitude)
	require.Equal(t, 3.0, m.Field(FieldName).Controller().Animation().ShakeMagnitude)

	require.Equal(t, "Fixed value", m.Field(FieldFixed).Value())
	require.False(t, m.Field(FieldFixed).Focusable())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestForm(t)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(Model)
	require.True(t, m.Quitting())
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestSnapshotListsSections(t *testing.T) {
	t.Parallel()

	view := New(Options{Clock: anim.NewManualClock(epoch)}).Snapshot()
	for _, s := range sections {
		require.Contains(t, view, s.title)
	}
	require.Contains(t, view, "FloatingInput Examples")
	require.Contains(t, view, "Fixed value")
	require.Less(t, strings.Index(view, "Full Name"), strings.Index(view, "Phone Number"))
}

func TestSlowFieldUsesItsOwnTiming(t *testing.T) {
	t.Parallel()

	clock := anim.NewManualClock(epoch)
	m := New(Options{Clock: clock})
	m = send(t, m, focusFieldMsg{index: FieldSlow})
	require.Equal(t, FieldSlow, m.Focused())

	clock.Advance(125 * time.Millisecond)
	slow := m.Field(FieldSlow).Controller()
	require.InDelta(t, anim.EaseInOut(0.25), slow.FocusProgress(), 1e-9)
	require.True(t, slow.Animating())
}
