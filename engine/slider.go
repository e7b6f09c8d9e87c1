// Package engine implements the interaction logic of a dual-thumb range
// slider: value/position mapping, thumb selection, hit testing, controlled
// value reconciliation and the drag state machine.
//
// The engine draws nothing. It publishes pixel positions through Targets for a
// renderer or animator to follow and reports value changes through callbacks.
// All methods must be called from a single event loop.
package engine

import "github.com/sirupsen/logrus"

// Props are the caller-supplied inputs of one update. A nil Low or High leaves
// that axis uncontrolled.
type Props struct {
	Config

	Low  *float64
	High *float64
}

// Slider ties the engine components together for one control instance.
type Slider struct {
	config   Config
	measured Layout

	rec     *Reconciler
	ctrl    *Controller
	targets Targets

	label *Follower
	notch *Follower

	changed ChangedFunc
	log     logrus.FieldLogger
}

// New creates a slider from its initial props.
func New(props Props) *Slider {
	s := &Slider{
		config:  props.Config,
		targets: newTargets(),
		label:   newFollower(),
		notch:   newFollower(),
		log:     logrus.StandardLogger(),
	}
	s.rec = NewReconciler(props.Config, props.Low, s.highProp(props))
	s.rec.SetChangedFunc(s.valueChanged)
	s.ctrl = NewController(s.rec, s.targets, s.Layout)
	s.ctrl.followed = s.followed
	s.updatePositions()
	return s
}

// Update applies a new set of props, like one render of the control. A value
// moved by the new config or by changed controlled props is reported once with
// byUser=false; unchanged props report nothing.
func (s *Slider) Update(props Props) {
	before := s.rec.Value()
	configChanged := props.Config != s.config
	if configChanged {
		s.config = props.Config
		s.rec.Configure(props.Config)
	}
	if s.rec.sync(props.Low, s.highProp(props)) {
		s.log.WithFields(logrus.Fields{
			"low":  s.rec.Value().Low,
			"high": s.rec.Value().High,
		}).Debug("value synced from props")
	}

	switch {
	case s.rec.Value() != before:
		s.rec.notify(false)
	case configChanged:
		s.updatePositions()
	}
}

// highProp pins the controlled high value to max when the range is disabled.
func (s *Slider) highProp(props Props) *float64 {
	if props.DisableRange {
		high := props.Max
		return &high
	}
	return props.High
}

// SetValueChangedFunc sets the handler called for every accepted value change.
func (s *Slider) SetValueChangedFunc(handler ChangedFunc) *Slider {
	s.changed = handler
	return s
}

// SetTouchStartFunc sets the handler called when a drag is granted.
func (s *Slider) SetTouchStartFunc(handler TouchFunc) *Slider {
	s.ctrl.SetTouchStartFunc(handler)
	return s
}

// SetTouchEndFunc sets the handler called when a drag that was not canceled
// is released.
func (s *Slider) SetTouchEndFunc(handler TouchFunc) *Slider {
	s.ctrl.SetTouchEndFunc(handler)
	return s
}

// SetLogger sets the logger for gesture and sync tracing.
func (s *Slider) SetLogger(log logrus.FieldLogger) *Slider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s.log = log
	s.ctrl.SetLogger(log)
	return s
}

// SetContainerWidth delivers a measured track width. It is ignored when a
// fixed container width is configured.
func (s *Slider) SetContainerWidth(width float64) {
	if s.config.FixedContainerWidth > 0 || s.measured.ContainerWidth == width {
		return
	}
	s.measured.ContainerWidth = width
	s.updatePositions()
}

// SetThumbWidth delivers a measured thumb width. It is ignored when a fixed
// thumb width is configured.
func (s *Slider) SetThumbWidth(width float64) {
	if s.config.FixedThumbWidth > 0 || s.measured.ThumbWidth == width {
		return
	}
	s.measured.ThumbWidth = width
	s.updatePositions()
}

// Layout returns the effective geometry, fixed widths taking precedence over
// measured ones.
func (s *Slider) Layout() Layout {
	layout := s.measured
	if s.config.FixedContainerWidth > 0 {
		layout.ContainerWidth = s.config.FixedContainerWidth
	}
	if s.config.FixedThumbWidth > 0 {
		layout.ThumbWidth = s.config.FixedThumbWidth
	}
	return layout
}

// Config returns the active configuration.
func (s *Slider) Config() Config {
	return s.config
}

// Value returns the current value.
func (s *Slider) Value() Value {
	return s.rec.Value()
}

// Targets returns the position targets for the renderer.
func (s *Slider) Targets() Targets {
	return s.targets
}

// Label returns the follower used for the value label.
func (s *Slider) Label() *Follower {
	return s.label
}

// Notch returns the follower used for the notch under the label.
func (s *Slider) Notch() *Follower {
	return s.notch
}

// State returns the gesture state.
func (s *Slider) State() GestureState {
	return s.ctrl.State()
}

// Pressed reports whether a thumb is held.
func (s *Slider) Pressed() bool {
	return s.ctrl.Pressed()
}

// ActiveThumb returns the thumb being dragged, if any.
func (s *Slider) ActiveThumb() (Thumb, bool) {
	return s.ctrl.ActiveThumb()
}

// ShouldCapture runs the hit-test gate.
func (s *Slider) ShouldCapture(e StartEvent) bool {
	return s.ctrl.ShouldCapture(e)
}

// Grant starts a drag.
func (s *Slider) Grant(e StartEvent) bool {
	return s.ctrl.Grant(e)
}

// Move feeds a pointer move.
func (s *Slider) Move(e MoveEvent) {
	s.ctrl.Move(e)
	s.syncFollowers()
}

// Release ends the drag.
func (s *Slider) Release() {
	s.ctrl.Release()
	s.syncFollowers()
}

// Terminate aborts the drag without a touch-end notification.
func (s *Slider) Terminate() {
	s.ctrl.Terminate()
	s.syncFollowers()
}

// StepThumb moves a thumb by a number of steps within its bounds, as a key
// press would. It reports whether the value changed.
func (s *Slider) StepThumb(thumb Thumb, steps int) bool {
	return s.MoveThumbTo(thumb, s.rec.Value().Get(thumb)+float64(steps)*s.config.Step)
}

// MoveThumbTo moves a thumb to v, quantized and limited to the thumb's bounds.
// The change is reported as a user interaction. It reports whether the value
// changed.
func (s *Slider) MoveThumbTo(thumb Thumb, v float64) bool {
	if s.config.Disabled {
		return false
	}
	if s.config.DisableRange {
		thumb = ThumbLow
	}
	lo, hi := s.rec.Bounds(thumb)
	v = Clamp(quantize(v, s.config.Min, s.config.Step), lo, hi)
	if v == s.rec.Value().Get(thumb) || !s.rec.set(thumb, v) {
		return false
	}
	s.updatePositions()
	s.rec.notify(true)
	return true
}

// Bounds returns the interval a thumb may currently move in.
func (s *Slider) Bounds(thumb Thumb) (lo, hi float64) {
	return s.rec.Bounds(thumb)
}

// valueChanged is the reconciler's notification hook. Changes mirrored from
// props reposition the thumbs before the caller hears about them.
func (s *Slider) valueChanged(low, high float64, byUser bool) {
	if !byUser {
		s.updatePositions()
	}
	if s.changed != nil {
		s.changed(low, high, byUser)
	}
}

// updatePositions recomputes all targets from the current value. It does
// nothing until the layout is measured.
func (s *Slider) updatePositions() {
	layout := s.Layout()
	if !layout.Ready() {
		return
	}
	v := s.rec.Value()
	c := s.config
	s.targets.Low.Set(LowPosition(v.Low, c.Min, c.Max, layout.ContainerWidth, layout.ThumbWidth))
	if !c.DisableRange {
		s.targets.High.Set(HighPosition(v.High, c.Min, c.Max, layout.ContainerWidth, layout.ThumbWidth))
	}
	left, width := SelectedRail(v, c.Min, c.Max, layout, c.DisableRange)
	s.targets.RailLeft.Set(left)
	s.targets.RailWidth.Set(width)
}

func (s *Slider) followed(center, value float64) {
	width := s.Layout().ContainerWidth
	s.label.update(center, value, width)
	s.notch.update(center, value, width)
}

func (s *Slider) syncFollowers() {
	if s.ctrl.Pressed() {
		return
	}
	s.label.hide()
	s.notch.hide()
}
