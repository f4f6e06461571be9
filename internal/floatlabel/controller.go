package floatlabel

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/floatinput/internal/anim"
	"github.com/alexisbeaulieu97/floatinput/internal/logger"
	"github.com/alexisbeaulieu97/floatinput/internal/theme"
)

// Options configures a Controller at mount time. A control that mounts with
// an error already showing plays the shake once.
type Options struct {
	Theme     theme.Theme
	Animation theme.AnimationConfig

	// Value is the text the control mounts with. A non-empty value starts the
	// label in its active position without animating.
	Value   string
	Touched bool
	Error   string

	// RestOffset is subtracted from half the measured height when the label
	// is raised. Zero selects theme.DefaultRestOffset.
	RestOffset float64

	Clock  anim.Clock
	Curve  anim.Curve
	Logger *logger.Logger
}

// Sample is a snapshot of the label outputs at one instant.
type Sample struct {
	LabelTranslateY float64
	LabelFontSize   float64
	ShakeOffset     float64
	HasError        bool
	ShouldBeActive  bool
}

// Controller drives the floating label of one input.
type Controller struct {
	theme      theme.Theme
	animation  theme.AnimationConfig
	restOffset float64
	clock      anim.Clock
	log        *logger.Logger

	focused  bool
	hasValue bool
	touched  bool
	errText  string

	focus          anim.Tween
	shake          anim.Sequence
	measuredHeight float64
}

// New creates a controller in its mount state.
func New(opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = anim.SystemClock{}
	}
	curve := opts.Curve
	if curve == nil {
		curve = anim.EaseInOutQuad
	}
	restOffset := opts.RestOffset
	if restOffset == 0 {
		restOffset = theme.DefaultRestOffset()
	}

	c := &Controller{
		theme:      opts.Theme,
		animation:  opts.Animation,
		restOffset: restOffset,
		clock:      clock,
		log:        opts.Logger,
		hasValue:   opts.Value != "",
		touched:    opts.Touched,
		errText:    opts.Error,
		shake:      anim.NewSequence(0, curve),
	}

	initial := 0.0
	if c.ShouldBeActive() {
		initial = 1
	}
	c.focus = anim.NewTween(initial, curve)
	if c.HasError() {
		c.playShake()
	}
	return c
}

// OnFocus records that the input gained focus.
func (c *Controller) OnFocus() {
	c.focused = true
	c.syncFocusTarget("focus")
}

// OnBlur records that the input lost focus.
func (c *Controller) OnBlur() {
	c.focused = false
	c.syncFocusTarget("blur")
}

// OnValueChange records whether the input currently holds text. It may be
// called without any focus event, e.g. for a programmatic value.
func (c *Controller) OnValueChange(hasValue bool) {
	c.hasValue = hasValue
	c.syncFocusTarget("value")
}

// OnErrorFlagsChange updates the validation flags. The shake plays only when
// HasError goes from false to true; colour and error text follow the level.
func (c *Controller) OnErrorFlagsChange(touched bool, err string) {
	was := c.HasError()
	c.touched = touched
	c.errText = err
	if !was && c.HasError() {
		c.playShake()
	}
}

// OnLayout records the rendered container height. Zero means unmeasured.
func (c *Controller) OnLayout(height float64) {
	if height == c.measuredHeight {
		return
	}
	c.measuredHeight = height
	c.log.DebugFields("layout measured", map[string]any{"height": height})
}

// SetTheme replaces the resolved theme. Derived font sizes pick it up on the
// next sample.
func (c *Controller) SetTheme(t theme.Theme) {
	c.theme = t
}

// SetAnimation replaces the timing used by subsequent transitions. In-flight
// transitions keep the timing they started with.
func (c *Controller) SetAnimation(a theme.AnimationConfig) {
	c.animation = a
}

func (c *Controller) syncFocusTarget(cause string) {
	target := 0.0
	if c.ShouldBeActive() {
		target = 1
	}
	now := c.clock.Now()
	if !c.focus.Retarget(now, target, c.animation.LabelDuration) || !c.log.Enabled(zerolog.DebugLevel) {
		return
	}
	c.log.DebugFields("label retargeted", map[string]any{
		"cause":  cause,
		"target": target,
		"from":   c.focus.Value(now),
	})
}

func (c *Controller) playShake() {
	mag := c.animation.ShakeMagnitude
	leg := c.animation.ShakeDuration
	c.shake.Play(c.clock.Now(), []anim.Leg{
		{Target: -mag, Duration: leg},
		{Target: mag, Duration: leg},
		{Target: -mag, Duration: leg},
		{Target: 0, Duration: leg},
	})
	if !c.log.Enabled(zerolog.DebugLevel) {
		return
	}
	c.log.DebugFields("shake started", map[string]any{"magnitude": mag, "leg": leg.String()})
}

// Sample evaluates every output at the current clock instant.
func (c *Controller) Sample() Sample {
	return c.SampleAt(c.clock.Now())
}

// SampleAt evaluates every output at now.
func (c *Controller) SampleAt(now time.Time) Sample {
	progress := c.focus.Value(now)
	return Sample{
		LabelTranslateY: LabelTranslateY(progress, c.measuredHeight, c.restOffset),
		LabelFontSize:   LabelFontSize(progress, c.theme),
		ShakeOffset:     c.shake.Value(now),
		HasError:        c.HasError(),
		ShouldBeActive:  c.ShouldBeActive(),
	}
}

// Animating reports whether focus progress or the shake is still moving.
func (c *Controller) Animating() bool {
	now := c.clock.Now()
	return c.focus.Animating(now) || c.shake.Animating(now)
}

// IsFocused reports whether the input holds focus.
func (c *Controller) IsFocused() bool { return c.focused }

// HasValue reports whether the input holds text.
func (c *Controller) HasValue() bool { return c.hasValue }

// ShouldBeActive reports whether the label belongs in its raised position.
func (c *Controller) ShouldBeActive() bool { return c.focused || c.hasValue }

// HasError reports whether the input is touched and carries an error.
func (c *Controller) HasError() bool { return c.touched && c.errText != "" }

// Error returns the current error text, shown only while HasError is true.
func (c *Controller) Error() string { return c.errText }

// FocusProgress returns the focus channel at the current instant.
func (c *Controller) FocusProgress() float64 { return c.focus.Value(c.clock.Now()) }

// FocusTarget returns where the focus channel is heading.
func (c *Controller) FocusTarget() float64 { return c.focus.Target() }

// ShakeOffset returns the shake channel at the current instant.
func (c *Controller) ShakeOffset() float64 { return c.shake.Value(c.clock.Now()) }

// MeasuredHeight returns the last reported container height.
func (c *Controller) MeasuredHeight() float64 { return c.measuredHeight }

// RestOffset returns the label rest offset in layout units.
func (c *Controller) RestOffset() float64 { return c.restOffset }

// Theme returns the resolved theme in use.
func (c *Controller) Theme() theme.Theme { return c.theme }

// Animation returns the resolved timing in use.
func (c *Controller) Animation() theme.AnimationConfig { return c.animation }
