package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GestureState is the state of the gesture controller.
type GestureState int

const (
	// StateIdle means no pointer is being tracked.
	StateIdle GestureState = iota
	// StateCapturing means a candidate touch passed the hit-test gate and
	// the host has not granted it yet.
	StateCapturing
	// StateDragging means a thumb follows the pointer.
	StateDragging
	// StateCanceled means the pointer moved like a scroll. Moves are ignored
	// until the pointer is released.
	StateCanceled
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateDragging:
		return "dragging"
	case StateCanceled:
		return "canceled"
	}
	return "unknown"
}

// StartEvent describes a touch-down. LocationX is relative to the container,
// PageX is absolute.
type StartEvent struct {
	LocationX           float64
	PageX               float64
	NumberActiveTouches int
}

// MoveEvent describes pointer movement since the grant. DeltaY is the total
// vertical displacement, VelocityY is in pixels per millisecond and MoveX is
// the absolute horizontal coordinate.
type MoveEvent struct {
	DeltaY    float64
	VelocityY float64
	MoveX     float64
}

// TouchFunc receives the value at the start or the end of a gesture.
type TouchFunc func(low, high float64)

// session is the record of one drag. It exists from grant to release or
// termination.
type session struct {
	id    uuid.UUID
	thumb Thumb

	// lastValue starts as NaN so the grant always emits.
	lastValue    float64
	lastPosition float64

	// containerX converts absolute move coordinates back into the container.
	containerX float64

	pressed  bool
	canceled bool
}

// Controller is the pointer state machine. Events that are not legal in the
// current state are ignored.
type Controller struct {
	rec     *Reconciler
	layout  func() Layout
	targets Targets

	state   GestureState
	session *session

	touchStart TouchFunc
	touchEnd   TouchFunc
	// followed is called with the thumb center and value after each emission.
	followed func(center, value float64)

	log logrus.FieldLogger
}

// NewController creates a controller writing values into rec and positions
// into targets. layout is consulted on every event so late measurements are
// picked up.
func NewController(rec *Reconciler, targets Targets, layout func() Layout) *Controller {
	return &Controller{
		rec:     rec,
		layout:  layout,
		targets: targets,
		log:     logrus.StandardLogger(),
	}
}

// SetTouchStartFunc sets the handler called when a gesture is granted.
func (c *Controller) SetTouchStartFunc(handler TouchFunc) *Controller {
	c.touchStart = handler
	return c
}

// SetTouchEndFunc sets the handler called when a gesture that was not
// canceled is released.
func (c *Controller) SetTouchEndFunc(handler TouchFunc) *Controller {
	c.touchEnd = handler
	return c
}

// SetLogger sets the logger used for state transitions.
func (c *Controller) SetLogger(log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c.log = log
	return c
}

// State returns the current state.
func (c *Controller) State() GestureState {
	return c.state
}

// Pressed reports whether a thumb is currently held.
func (c *Controller) Pressed() bool {
	return c.session != nil && c.session.pressed
}

// ActiveThumb returns the thumb of the current session.
func (c *Controller) ActiveThumb() (Thumb, bool) {
	if c.session == nil {
		return ThumbLow, false
	}
	return c.session.thumb, true
}

// LastPosition returns the center of the active thumb after the latest
// emission.
func (c *Controller) LastPosition() float64 {
	if c.session == nil {
		return 0
	}
	return c.session.lastPosition
}

// ShouldCapture runs the hit-test gate for a start or move candidate. Bubble
// and capture phase candidates are answered the same way. While a session is
// active the slider keeps the pointer.
func (c *Controller) ShouldCapture(e StartEvent) bool {
	switch c.state {
	case StateDragging, StateCanceled:
		return true
	}

	layout := c.layout()
	ok := layout.Ready() && ShouldCaptureFocus(
		e.LocationX,
		layout.ThumbWidth,
		c.targets.Low.Value(),
		c.targets.High.Value(),
		c.rec.Config().DisableRange,
	)
	switch {
	case ok:
		c.state = StateCapturing
	case c.state == StateCapturing:
		c.state = StateIdle
	}
	return ok
}

// Grant starts a drag for the touch described by e. It is refused, leaving the
// controller idle, when the slider is disabled, more than one pointer is down,
// the layout is not measured yet, or another session is active.
func (c *Controller) Grant(e StartEvent) bool {
	switch c.state {
	case StateDragging, StateCanceled:
		return false
	}

	config := c.rec.Config()
	layout := c.layout()
	switch {
	case config.Disabled:
		c.refuse("disabled")
		return false
	case e.NumberActiveTouches > 1:
		c.refuse("multiple touches")
		return false
	case !layout.Ready():
		c.refuse("layout not measured")
		return false
	}

	value := c.rec.Value()
	thumb := ThumbLow
	if !config.DisableRange {
		lowCenter := layout.ThumbWidth/2 + LowPosition(value.Low, config.Min, config.Max, layout.ContainerWidth, layout.ThumbWidth)
		highCenter := layout.ThumbWidth/2 + HighPosition(value.High, config.Min, config.Max, layout.ContainerWidth, layout.ThumbWidth)
		if !IsLowCloser(e.LocationX, lowCenter, highCenter) {
			thumb = ThumbHigh
		}
	}

	c.session = &session{
		id:         uuid.New(),
		thumb:      thumb,
		lastValue:  math.NaN(),
		containerX: e.PageX - e.LocationX,
		pressed:    true,
	}
	c.state = StateDragging
	c.entry().WithFields(logrus.Fields{"low": value.Low, "high": value.High}).Debug("gesture granted")

	if c.touchStart != nil {
		c.touchStart(value.Low, value.High)
	}
	c.emit(e.LocationX)
	return true
}

// Move feeds one pointer move into the active session.
func (c *Controller) Move(e MoveEvent) {
	if c.state != StateDragging || c.session == nil {
		return
	}
	config := c.rec.Config()
	if config.Disabled {
		return
	}
	if math.Abs(e.DeltaY) > config.focusHeightLimit() || math.Abs(e.VelocityY) > 1 {
		c.state = StateCanceled
		c.session.pressed = false
		c.session.canceled = true
		c.entry().WithFields(logrus.Fields{"dy": e.DeltaY, "vy": e.VelocityY}).Debug("gesture canceled")
		return
	}
	c.emit(e.MoveX - c.session.containerX)
}

// Release ends the session. The touch-end handler only runs for sessions that
// were not canceled.
func (c *Controller) Release() {
	if c.state == StateDragging && c.touchEnd != nil {
		v := c.rec.Value()
		c.touchEnd(v.Low, v.High)
	}
	if c.session != nil {
		c.entry().WithField("state", c.state).Debug("gesture released")
	}
	c.reset()
}

// Terminate ends the session because another responder took the pointer. No
// touch-end notification is sent.
func (c *Controller) Terminate() {
	if c.session != nil {
		c.entry().Debug("gesture terminated")
	}
	c.reset()
}

func (c *Controller) reset() {
	if c.session != nil {
		c.session.pressed = false
		c.session.canceled = false
	}
	c.session = nil
	c.state = StateIdle
}

func (c *Controller) refuse(reason string) {
	c.state = StateIdle
	c.log.WithField("reason", reason).Debug("gesture refused")
}

// emit maps a container-relative pointer coordinate to a value for the active
// thumb and publishes it unless it repeats the previous emission.
func (c *Controller) emit(positionInView float64) {
	s := c.session
	layout := c.layout()
	if s == nil || !layout.Ready() {
		return
	}
	config := c.rec.Config()
	lo, hi := c.rec.Bounds(s.thumb)
	value := Clamp(
		ValueForPosition(positionInView, layout.ContainerWidth, layout.ThumbWidth, config.Min, config.Max, config.Step),
		lo, hi,
	)
	if value == s.lastValue {
		return
	}

	position := LowPosition(value, config.Min, config.Max, layout.ContainerWidth, layout.ThumbWidth)
	s.lastValue = value
	s.lastPosition = position + layout.ThumbWidth/2

	c.targets.Thumb(s.thumb).Set(position)
	c.rec.set(s.thumb, value)
	left, width := SelectedRail(c.rec.Value(), config.Min, config.Max, layout, config.DisableRange)
	c.targets.RailLeft.Set(left)
	c.targets.RailWidth.Set(width)

	if c.followed != nil {
		c.followed(s.lastPosition, value)
	}
	c.rec.notify(true)
}

func (c *Controller) entry() logrus.FieldLogger {
	if c.session == nil {
		return c.log
	}
	return c.log.WithFields(logrus.Fields{
		"gesture": c.session.id.String(),
		"thumb":   c.session.thumb.String(),
	})
}
