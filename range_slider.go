package rangeslider

import (
	"math"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/sirupsen/logrus"

	"github.com/xqrs/rangeslider/animate"
	"github.com/xqrs/rangeslider/engine"
	"github.com/xqrs/rangeslider/keybind"
)

// SliderKeybinds are the keys a focused RangeSlider reacts to.
type SliderKeybinds struct {
	Decrease     keybind.Keybind
	Increase     keybind.Keybind
	DecreaseMore keybind.Keybind
	IncreaseMore keybind.Keybind
	First        keybind.Keybind
	Last         keybind.Keybind
	SwitchThumb  keybind.Keybind
}

// DefaultSliderKeybinds returns arrow key stepping, home/end jumps and tab to
// switch thumbs.
func DefaultSliderKeybinds() SliderKeybinds {
	return SliderKeybinds{
		Decrease:     keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "decrease")),
		Increase:     keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "increase")),
		DecreaseMore: keybind.NewKeybind(keybind.WithKeys("shift+left"), keybind.WithHelp("⇧←", "decrease ×10")),
		IncreaseMore: keybind.NewKeybind(keybind.WithKeys("shift+right"), keybind.WithHelp("⇧→", "increase ×10")),
		First:        keybind.NewKeybind(keybind.WithKeys("home"), keybind.WithHelp("home", "to start")),
		Last:         keybind.NewKeybind(keybind.WithKeys("end"), keybind.WithHelp("end", "to end")),
		SwitchThumb:  keybind.NewKeybind(keybind.WithKeys("tab"), keybind.WithHelp("tab", "switch thumb")),
	}
}

// largeStep is the number of steps DecreaseMore and IncreaseMore move by.
const largeStep = 10

// RangeSlider is a dual-thumb slider selecting the interval [low, high]. With
// the range disabled it selects a single value.
//
// Mouse drags and keys go through the engine, which owns the value. By default
// the slider is uncontrolled; after SetValue it mirrors the values it is given
// and reports user changes through the changed handler.
type RangeSlider struct {
	*Box

	slider *engine.Slider
	props  engine.Props

	thumbCells    int
	glyphs        SliderGlyphSet
	showLabel     bool
	floatingLabel bool
	showValue     bool
	format        func(v float64) string

	trackStyle    tcell.Style
	selectedStyle tcell.Style
	thumbStyle    tcell.Style
	focusedStyle  tcell.Style
	pressedStyle  tcell.Style
	labelStyle    tcell.Style
	disabledStyle tcell.Style

	// The thumb keys apply to.
	focusedThumb engine.Thumb

	Keybinds SliderKeybinds

	// Rendered positions following the engine targets.
	lowAnim, highAnim, railLeftAnim, railWidthAnim *animate.Animator
	duration                                       time.Duration
	easing                                         animate.EasingFunc

	now func() time.Time

	// Pointer tracking of the active gesture, in cells.
	downY, lastY int
	lastTime     time.Time

	changed func(low, high float64, byUser bool)
}

// NewRangeSlider returns a 0..100 range slider.
func NewRangeSlider() *RangeSlider {
	r := &RangeSlider{
		Box:        NewBox(),
		props:      engine.Props{Config: engine.DefaultConfig()},
		thumbCells: 1,
		glyphs:     UnicodeSliderGlyphs(),
		showLabel:  true,
		showValue:  true,
		format:     formatValue,
		Keybinds:   DefaultSliderKeybinds(),
		now:        time.Now,
	}
	r.height = 5

	background := tcell.StyleDefault.Background(Styles.PrimitiveBackgroundColor)
	r.trackStyle = background.Foreground(Styles.RailColor)
	r.selectedStyle = background.Foreground(Styles.SelectedRailColor)
	r.thumbStyle = background.Foreground(Styles.ThumbColor)
	r.focusedStyle = background.Foreground(Styles.FocusedThumbColor)
	r.pressedStyle = background.Foreground(Styles.PressedThumbColor)
	r.labelStyle = background.Foreground(Styles.LabelColor)
	r.disabledStyle = background.Foreground(Styles.DisabledColor)

	r.slider = engine.New(r.props)
	r.slider.SetValueChangedFunc(r.valueChanged)
	r.slider.Notch().SetWidth(subcell)
	r.updateLabelWidth()
	r.newAnimators()
	return r
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (r *RangeSlider) valueChanged(low, high float64, byUser bool) {
	r.MarkDirty()
	if r.changed != nil {
		r.changed(low, high, byUser)
	}
}

// newAnimators replaces the animators, starting them at the current targets.
func (r *RangeSlider) newAnimators() {
	for _, a := range []*animate.Animator{r.lowAnim, r.highAnim, r.railLeftAnim, r.railWidthAnim} {
		if a != nil {
			a.Close()
		}
	}
	targets := r.slider.Targets()
	r.lowAnim = animate.New(targets.Low, r.duration, r.easing).SetNowFunc(r.now)
	r.highAnim = animate.New(targets.High, r.duration, r.easing).SetNowFunc(r.now)
	r.railLeftAnim = animate.New(targets.RailLeft, r.duration, r.easing).SetNowFunc(r.now)
	r.railWidthAnim = animate.New(targets.RailWidth, r.duration, r.easing).SetNowFunc(r.now)
}

func (r *RangeSlider) animators() []*animate.Animator {
	return []*animate.Animator{r.lowAnim, r.highAnim, r.railLeftAnim, r.railWidthAnim}
}

func (r *RangeSlider) snap() {
	for _, a := range r.animators() {
		a.Snap()
	}
}

// updateLabelWidth sizes the label for the widest value it can show.
func (r *RangeSlider) updateLabelWidth() {
	r.slider.Label().SetWidth(r.labelWidth())
}

// SetConfig replaces the range configuration. The value is reclamped into the
// new bounds.
func (r *RangeSlider) SetConfig(config engine.Config) *RangeSlider {
	if r.props.Config != config {
		r.props.Config = config
		r.slider.Update(r.props)
		r.updateLabelWidth()
		if config.DisableRange {
			r.focusedThumb = engine.ThumbLow
		}
		r.MarkDirty()
	}
	return r
}

// GetConfig returns the range configuration.
func (r *RangeSlider) GetConfig() engine.Config {
	return r.props.Config
}

// SetValue makes the slider controlled and sets its value. Calling it again
// with the values reported to the changed handler is a no-op.
func (r *RangeSlider) SetValue(low, high float64) *RangeSlider {
	r.props.Low, r.props.High = &low, &high
	r.slider.Update(r.props)
	return r
}

// SetUncontrolled lets the slider keep its own value.
func (r *RangeSlider) SetUncontrolled() *RangeSlider {
	r.props.Low, r.props.High = nil, nil
	r.slider.Update(r.props)
	return r
}

// GetValue returns the current value.
func (r *RangeSlider) GetValue() (low, high float64) {
	v := r.slider.Value()
	return v.Low, v.High
}

// SetChangedFunc sets a handler called whenever the value changes. byUser is
// true for drags and keys and false for changes made through SetValue or
// SetConfig.
func (r *RangeSlider) SetChangedFunc(handler func(low, high float64, byUser bool)) *RangeSlider {
	r.changed = handler
	return r
}

// SetTouchStartFunc sets a handler called when a drag starts.
func (r *RangeSlider) SetTouchStartFunc(handler func(low, high float64)) *RangeSlider {
	r.slider.SetTouchStartFunc(handler)
	return r
}

// SetTouchEndFunc sets a handler called when a drag ends normally.
func (r *RangeSlider) SetTouchEndFunc(handler func(low, high float64)) *RangeSlider {
	r.slider.SetTouchEndFunc(handler)
	return r
}

// SetLogger sets the logger for gesture tracing.
func (r *RangeSlider) SetLogger(log logrus.FieldLogger) *RangeSlider {
	r.slider.SetLogger(log)
	return r
}

// SetThumbCells sets the width of a thumb in cells.
func (r *RangeSlider) SetThumbCells(cells int) *RangeSlider {
	cells = max(cells, 1)
	if r.thumbCells != cells {
		r.thumbCells = cells
		r.MarkDirty()
	}
	return r
}

// SetGlyphSet sets the rail and thumb glyphs.
func (r *RangeSlider) SetGlyphSet(g SliderGlyphSet) *RangeSlider {
	if r.glyphs != g {
		r.glyphs = g
		r.MarkDirty()
	}
	return r
}

// SetShowLabel controls whether a value label and notch ride above the thumb
// while it is dragged.
func (r *RangeSlider) SetShowLabel(show bool) *RangeSlider {
	if r.showLabel != show {
		r.showLabel = show
		r.MarkDirty()
	}
	return r
}

// SetFloatingLabel draws the label over the top edge of the box instead of
// reserving a row for it.
func (r *RangeSlider) SetFloatingLabel(floating bool) *RangeSlider {
	if r.floatingLabel != floating {
		r.floatingLabel = floating
		r.MarkDirty()
	}
	return r
}

// SetAllowLabelOverflow lets the label extend past the ends of the rail.
func (r *RangeSlider) SetAllowLabelOverflow(allow bool) *RangeSlider {
	r.slider.Label().SetAllowOverflow(allow)
	r.slider.Notch().SetAllowOverflow(allow)
	return r
}

// SetShowValue controls whether the value is shown in the footer.
func (r *RangeSlider) SetShowValue(show bool) *RangeSlider {
	if r.showValue != show {
		r.showValue = show
		r.MarkDirty()
	}
	return r
}

// SetFormatFunc sets how values are printed in the label and footer.
func (r *RangeSlider) SetFormatFunc(format func(v float64) string) *RangeSlider {
	if format == nil {
		format = formatValue
	}
	r.format = format
	r.updateLabelWidth()
	r.MarkDirty()
	return r
}

// SetAnimation eases thumbs toward values set by keys, SetValue or SetConfig.
// Drags always follow the pointer directly. A zero duration disables easing.
func (r *RangeSlider) SetAnimation(duration time.Duration, easing animate.EasingFunc) *RangeSlider {
	r.duration, r.easing = duration, easing
	r.newAnimators()
	return r
}

// SetNowFunc replaces the clock used for pointer velocity and animation.
func (r *RangeSlider) SetNowFunc(now func() time.Time) *RangeSlider {
	r.now = now
	for _, a := range r.animators() {
		a.SetNowFunc(now)
	}
	return r
}

// SetRailStyle sets the styles of the unselected and the selected rail.
func (r *RangeSlider) SetRailStyle(track, selected tcell.Style) *RangeSlider {
	r.trackStyle, r.selectedStyle = track, selected
	r.MarkDirty()
	return r
}

// SetThumbStyle sets the thumb style for the idle, the focused and the
// pressed thumb.
func (r *RangeSlider) SetThumbStyle(idle, focused, pressed tcell.Style) *RangeSlider {
	r.thumbStyle, r.focusedStyle, r.pressedStyle = idle, focused, pressed
	r.MarkDirty()
	return r
}

// FocusedThumb returns the thumb keys apply to.
func (r *RangeSlider) FocusedThumb() engine.Thumb {
	return r.focusedThumb
}

// Animating reports whether a thumb is still easing toward its target.
func (r *RangeSlider) Animating() bool {
	for _, a := range r.animators() {
		if a.Active() {
			return true
		}
	}
	return false
}

// Blur aborts an active drag when the focus moves elsewhere.
func (r *RangeSlider) Blur() {
	if r.sessionActive() {
		r.slider.Terminate()
	}
	r.Box.Blur()
}

func (r *RangeSlider) sessionActive() bool {
	switch r.slider.State() {
	case engine.StateDragging, engine.StateCanceled:
		return true
	}
	return false
}

func (r *RangeSlider) valueText() string {
	v := r.slider.Value()
	if r.props.DisableRange {
		return r.format(v.Low)
	}
	return r.format(v.Low) + " - " + r.format(v.High)
}

// measure forwards the inner width and the thumb width to the engine.
// Positions jump to a new layout instead of easing into it.
func (r *RangeSlider) measure(cells int) {
	before := r.slider.Layout()
	r.slider.SetContainerWidth(float64(cells * subcell))
	r.slider.SetThumbWidth(float64(r.thumbCells * subcell))
	if r.slider.Layout() != before {
		r.snap()
	}
}

// railRow returns the row of the rail within the inner rect.
func (r *RangeSlider) railRow(y, height int) int {
	row := y
	switch {
	case r.showLabel && r.floatingLabel:
		row = y + 1
	case r.showLabel:
		row = y + 2
	}
	return min(row, y+height-1)
}

// Draw draws this primitive onto the screen.
func (r *RangeSlider) Draw(screen tcell.Screen) {
	if r.showValue {
		r.SetFooter(r.valueText())
	} else {
		r.SetFooter("")
	}
	r.DrawForSubclass(screen, r)

	x, y, width, height := r.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	r.measure(width)
	if r.slider.Pressed() {
		r.snap()
	}
	now := r.now()
	low, _ := r.lowAnim.Tick(now)
	high, _ := r.highAnim.Tick(now)
	railLeft, _ := r.railLeftAnim.Tick(now)
	railWidth, _ := r.railWidthAnim.Tick(now)

	config := r.props.Config
	layout := r.slider.Layout()
	thumbWidth := layout.ThumbWidth
	trackStyle, selectedStyle := r.trackStyle, r.selectedStyle
	if config.Disabled {
		trackStyle, selectedStyle = r.disabledStyle, r.disabledStyle
	}

	railY := r.railRow(y, height)
	selected := pixelSpan(railLeft+thumbWidth/2, railWidth)
	if config.DisableRange {
		selected = pixelSpan(0, railWidth+thumbWidth/2)
	}
	if !layout.Ready() {
		selected = span{}
	}
	drawRail(screen, x, railY, width, selected, r.glyphs, trackStyle, selectedStyle)
	if !layout.Ready() {
		return
	}

	// The active or focused thumb is drawn last so it stays on top.
	thumbs := []engine.Thumb{engine.ThumbHigh, engine.ThumbLow}
	top := r.focusedThumb
	if active, ok := r.slider.ActiveThumb(); ok {
		top = active
	}
	if top == engine.ThumbHigh {
		thumbs = []engine.Thumb{engine.ThumbLow, engine.ThumbHigh}
	}
	for _, thumb := range thumbs {
		if thumb == engine.ThumbHigh && config.DisableRange {
			continue
		}
		position := low
		if thumb == engine.ThumbHigh {
			position = high
		}
		cell := thumbCell(position, r.thumbCells, width)
		style := r.thumbStyleFor(thumb)
		for i := 0; i < r.thumbCells && cell+i < width; i++ {
			screen.Put(x+cell+i, railY, r.glyphs.Thumb, style)
		}
	}

	if r.showLabel {
		r.drawFollowers(screen, x, railY, width)
	}
}

func (r *RangeSlider) thumbStyleFor(thumb engine.Thumb) tcell.Style {
	if r.props.Disabled {
		return r.disabledStyle
	}
	if active, ok := r.slider.ActiveThumb(); ok && active == thumb && r.slider.Pressed() {
		return r.pressedStyle
	}
	if r.HasFocus() && thumb == r.focusedThumb {
		return r.focusedStyle
	}
	return r.thumbStyle
}

// drawFollowers draws the label two rows and the notch one row above the
// rail while a thumb is pressed.
func (r *RangeSlider) drawFollowers(screen tcell.Screen, x, railY, width int) {
	label, notch := r.slider.Label(), r.slider.Notch()
	if !label.Visible() || math.IsNaN(label.Value()) {
		return
	}
	// Followers may use the rows above the inner rect but not above the box.
	_, top, _, _ := r.GetRect()

	if notchY := railY - 1; notchY >= top {
		cell := int(math.Round(notch.Left() / subcell))
		if cell >= 0 && cell < width {
			screen.Put(x+cell, notchY, r.glyphs.Notch, r.labelStyle)
		}
	}

	labelY := railY - 2
	if labelY < top {
		return
	}
	text := r.format(label.Value())
	cells := int(math.Round(r.labelWidth() / subcell))
	labelX := x + int(math.Round(label.Left()/subcell)) + max(cells-TaggedStringWidth(text), 0)/2
	PrintWithStyle(screen, text, labelX, labelY, TaggedStringWidth(text), AlignmentLeft, r.labelStyle)
}

func (r *RangeSlider) labelWidth() float64 {
	c := r.props.Config
	return float64(max(TaggedStringWidth(r.format(c.Min)), TaggedStringWidth(r.format(c.Max))) * subcell)
}

// MouseHandler turns mouse events into engine pointer events. A granted drag
// captures the mouse until the button is released.
func (r *RangeSlider) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return r.handleMouse(action, x, y, event.Buttons())
}

func activeTouches(buttons tcell.ButtonMask) int {
	n := 0
	for _, b := range []tcell.ButtonMask{tcell.ButtonPrimary, tcell.ButtonSecondary, tcell.ButtonMiddle} {
		if buttons&b != 0 {
			n++
		}
	}
	return n
}

func (r *RangeSlider) handleMouse(action MouseAction, x, y int, buttons tcell.ButtonMask) (Primitive, Command) {
	if r.sessionActive() {
		switch action {
		case MouseMove:
			r.move(x, y)
			return r, RedrawCommand{}
		case MouseLeftUp:
			r.slider.Release()
			return nil, RedrawCommand{}
		}
		return r, nil
	}

	if !r.InRect(x, y) {
		return nil, nil
	}
	var cmd Command
	switch {
	case action == MouseLeftDown:
		cmd = SetFocusCommand{Target: r}
		if !r.InInnerRect(x, y) {
			return nil, cmd
		}
	case action == MouseMove && buttons&tcell.ButtonPrimary != 0:
		// A held button sliding onto a thumb starts a drag too.
		if !r.InInnerRect(x, y) {
			return nil, nil
		}
	default:
		return nil, nil
	}

	innerX, _, _, _ := r.GetInnerRect()
	start := engine.StartEvent{
		LocationX:           float64((x-innerX)*subcell + subcell/2),
		PageX:               float64(x*subcell + subcell/2),
		NumberActiveTouches: activeTouches(buttons),
	}
	if !r.slider.ShouldCapture(start) || !r.slider.Grant(start) {
		return nil, cmd
	}
	if cmd == nil {
		cmd = SetFocusCommand{Target: r}
	}
	if thumb, ok := r.slider.ActiveThumb(); ok {
		r.focusedThumb = thumb
	}
	r.downY, r.lastY, r.lastTime = y, y, r.now()
	r.snap()
	r.MarkDirty()
	return r, AppendCommand(cmd, RedrawCommand{})
}

// move feeds a pointer move at cell (x, y) into the engine.
func (r *RangeSlider) move(x, y int) {
	now := r.now()
	elapsed := math.Max(float64(now.Sub(r.lastTime))/float64(time.Millisecond), 1)
	r.slider.Move(engine.MoveEvent{
		DeltaY:    float64((y - r.downY) * rowHeight),
		VelocityY: float64((y-r.lastY)*rowHeight) / elapsed,
		MoveX:     float64(x*subcell + subcell/2),
	})
	r.lastY, r.lastTime = y, now
	r.MarkDirty()
}

// InputHandler steps the focused thumb.
func (r *RangeSlider) InputHandler(event *tcell.EventKey) Command {
	return r.handleKey(keybind.EventString(event))
}

func (r *RangeSlider) handleKey(key string) Command {
	if r.props.Disabled || r.sessionActive() {
		return nil
	}
	k := r.Keybinds
	thumb := r.focusedThumb
	switch {
	case keybind.MatchesKey(key, k.Decrease):
		r.slider.StepThumb(thumb, -1)
	case keybind.MatchesKey(key, k.Increase):
		r.slider.StepThumb(thumb, 1)
	case keybind.MatchesKey(key, k.DecreaseMore):
		r.slider.StepThumb(thumb, -largeStep)
	case keybind.MatchesKey(key, k.IncreaseMore):
		r.slider.StepThumb(thumb, largeStep)
	case keybind.MatchesKey(key, k.First):
		lo, _ := r.slider.Bounds(thumb)
		r.slider.MoveThumbTo(thumb, lo)
	case keybind.MatchesKey(key, k.Last):
		_, hi := r.slider.Bounds(thumb)
		r.slider.MoveThumbTo(thumb, hi)
	case keybind.MatchesKey(key, k.SwitchThumb) && !r.props.DisableRange:
		r.focusedThumb = thumb.Other()
		r.MarkDirty()
	default:
		return nil
	}
	return RedrawCommand{}
}

// ShortHelp returns the keybinds for one-line help.
func (r *RangeSlider) ShortHelp() []keybind.Keybind {
	k := r.keybindsForHelp()
	return []keybind.Keybind{k.Decrease, k.Increase, k.SwitchThumb}
}

// FullHelp returns all keybinds in columns.
func (r *RangeSlider) FullHelp() [][]keybind.Keybind {
	k := r.keybindsForHelp()
	return [][]keybind.Keybind{
		{k.Decrease, k.Increase},
		{k.DecreaseMore, k.IncreaseMore},
		{k.First, k.Last, k.SwitchThumb},
	}
}

func (r *RangeSlider) keybindsForHelp() SliderKeybinds {
	k := r.Keybinds
	if r.props.DisableRange {
		k.SwitchThumb.SetEnabled(false)
	}
	return k
}
