package rangeslider

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/rangeslider/animate"
	"github.com/xqrs/rangeslider/engine"
)

type sliderChange struct {
	low, high float64
	byUser    bool
}

type sliderHarness struct {
	*RangeSlider
	now     time.Time
	changes []sliderChange
	starts  int
	ends    int
}

// newSliderHarness returns a 0..10 slider at [2, 7], rendered once at 11x4
// cells so that one value step is exactly one cell.
func newSliderHarness(t *testing.T) *sliderHarness {
	t.Helper()
	h := &sliderHarness{now: time.Unix(1000, 0)}
	config := engine.DefaultConfig()
	config.Max = 10
	h.RangeSlider = NewRangeSlider().
		SetNowFunc(func() time.Time { return h.now }).
		SetConfig(config).
		SetValue(2, 7).
		SetChangedFunc(func(low, high float64, byUser bool) {
			h.changes = append(h.changes, sliderChange{low, high, byUser})
		}).
		SetTouchStartFunc(func(low, high float64) { h.starts++ }).
		SetTouchEndFunc(func(low, high float64) { h.ends++ })
	require.Equal(t, []string{"", "", "──●████●───", "   2 - 7"}, h.render())
	return h
}

func (h *sliderHarness) render() []string {
	return RenderText(h.RangeSlider, 11, 4)
}

func (h *sliderHarness) down(x, y int) (Primitive, Command) {
	return h.handleMouse(MouseLeftDown, x, y, tcell.ButtonPrimary)
}

func (h *sliderHarness) moveTo(x, y int) (Primitive, Command) {
	return h.handleMouse(MouseMove, x, y, tcell.ButtonPrimary)
}

func (h *sliderHarness) up(x, y int) (Primitive, Command) {
	return h.handleMouse(MouseLeftUp, x, y, tcell.ButtonNone)
}

func TestRangeSliderDrag(t *testing.T) {
	h := newSliderHarness(t)

	capture, cmd := h.down(2, 2)
	assert.Same(t, h.RangeSlider, capture)
	assert.Equal(t, BatchCommand{SetFocusCommand{Target: h.RangeSlider}, RedrawCommand{}}, cmd)
	assert.Equal(t, 1, h.starts)
	assert.Equal(t, engine.StateDragging, h.slider.State())

	h.now = h.now.Add(50 * time.Millisecond)
	capture, _ = h.moveTo(5, 2)
	assert.Same(t, h.RangeSlider, capture)
	assert.Equal(t, []string{"     5", "     ▼", "─────●█●───", "   5 - 7"}, h.render())

	capture, cmd = h.up(5, 2)
	assert.Nil(t, capture)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 1, h.ends)
	assert.Equal(t, []string{"", "", "─────●█●───", "   5 - 7"}, h.render())

	low, high := h.GetValue()
	assert.Equal(t, 5.0, low)
	assert.Equal(t, 7.0, high)
	require.NotEmpty(t, h.changes)
	assert.Equal(t, sliderChange{5, 7, true}, h.changes[len(h.changes)-1])
}

func TestRangeSliderDragPicksNearerThumb(t *testing.T) {
	h := newSliderHarness(t)

	h.down(6, 2)
	thumb, ok := h.slider.ActiveThumb()
	require.True(t, ok)
	assert.Equal(t, engine.ThumbHigh, thumb)
	assert.Equal(t, engine.ThumbHigh, h.FocusedThumb())

	// The high thumb cannot pass the low one.
	h.moveTo(0, 2)
	h.up(0, 2)
	low, high := h.GetValue()
	assert.Equal(t, 2.0, low)
	assert.Equal(t, 2.0, high)
}

func TestRangeSliderDownAwayFromThumbsOnlyFocuses(t *testing.T) {
	h := newSliderHarness(t)
	h.SetValue(0, 10)
	h.render()

	capture, cmd := h.down(5, 2)
	assert.Nil(t, capture)
	assert.Equal(t, SetFocusCommand{Target: h.RangeSlider}, cmd)
	assert.Equal(t, engine.StateIdle, h.slider.State())
	assert.Zero(t, h.starts)
}

func TestRangeSliderIgnoresEventsOutside(t *testing.T) {
	h := newSliderHarness(t)

	capture, cmd := h.down(20, 2)
	assert.Nil(t, capture)
	assert.Nil(t, cmd)

	capture, cmd = h.moveTo(20, 2)
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
	assert.Equal(t, engine.StateIdle, h.slider.State())
}

func TestRangeSliderHeldMoveOntoThumbStartsDrag(t *testing.T) {
	h := newSliderHarness(t)

	capture, cmd := h.down(10, 2)
	assert.Nil(t, capture)
	assert.Equal(t, SetFocusCommand{Target: h.RangeSlider}, cmd)
	assert.Equal(t, engine.StateIdle, h.slider.State())

	capture, cmd = h.moveTo(7, 2)
	assert.Same(t, h.RangeSlider, capture)
	assert.Equal(t, BatchCommand{SetFocusCommand{Target: h.RangeSlider}, RedrawCommand{}}, cmd)
	assert.Equal(t, 1, h.starts)
	thumb, ok := h.slider.ActiveThumb()
	require.True(t, ok)
	assert.Equal(t, engine.ThumbHigh, thumb)

	h.now = h.now.Add(50 * time.Millisecond)
	h.moveTo(9, 2)
	h.up(9, 2)
	low, high := h.GetValue()
	assert.Equal(t, 2.0, low)
	assert.Equal(t, 9.0, high)
	assert.Equal(t, 1, h.ends)
}

func TestRangeSliderMoveWithoutButtonDoesNotCapture(t *testing.T) {
	h := newSliderHarness(t)

	capture, cmd := h.handleMouse(MouseMove, 2, 2, tcell.ButtonNone)
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
	assert.Equal(t, engine.StateIdle, h.slider.State())
	assert.Zero(t, h.starts)
}

func TestRangeSliderFastVerticalMoveCancels(t *testing.T) {
	h := newSliderHarness(t)

	h.down(2, 2)
	// One row within the same millisecond is far above 1px/ms.
	h.moveTo(4, 3)
	assert.Equal(t, engine.StateCanceled, h.slider.State())
	assert.False(t, h.slider.Pressed())

	// The session keeps the mouse until release but ignores moves.
	capture, _ := h.moveTo(6, 2)
	assert.Same(t, h.RangeSlider, capture)
	h.up(6, 2)

	low, _ := h.GetValue()
	assert.Equal(t, 2.0, low)
	assert.Zero(t, h.ends)
	assert.Equal(t, engine.StateIdle, h.slider.State())
}

func TestRangeSliderSlowVerticalMoveKeepsDragging(t *testing.T) {
	h := newSliderHarness(t)

	h.down(2, 2)
	h.now = h.now.Add(100 * time.Millisecond)
	h.moveTo(3, 3)
	assert.Equal(t, engine.StateDragging, h.slider.State())
	low, _ := h.GetValue()
	assert.Equal(t, 3.0, low)

	// Seven rows down is past the 100px focus height limit.
	h.now = h.now.Add(time.Second)
	h.moveTo(3, 9)
	assert.Equal(t, engine.StateCanceled, h.slider.State())
}

func TestRangeSliderBlurTerminatesDrag(t *testing.T) {
	h := newSliderHarness(t)
	h.Focus(nil)

	h.down(2, 2)
	h.moveTo(4, 2)
	h.Blur()

	assert.Equal(t, engine.StateIdle, h.slider.State())
	assert.False(t, h.HasFocus())
	assert.Zero(t, h.ends)
	assert.Equal(t, []string{"", "", "────●██●───", "   4 - 7"}, h.render())
}

func TestRangeSliderKeys(t *testing.T) {
	h := newSliderHarness(t)

	tests := []struct {
		key       string
		low, high float64
	}{
		{"right", 3, 7},
		{"left", 2, 7},
		{"shift+right", 7, 7},
		{"home", 0, 7},
		{"tab", 0, 7},
		{"left", 0, 6},
		{"end", 0, 10},
		{"shift+left", 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, RedrawCommand{}, h.handleKey(tt.key), tt.key)
		low, high := h.GetValue()
		assert.Equal(t, tt.low, low, "low after %s", tt.key)
		assert.Equal(t, tt.high, high, "high after %s", tt.key)
	}
	assert.Nil(t, h.handleKey("x"))

	for _, c := range h.changes {
		assert.True(t, c.byUser)
	}
}

func TestRangeSliderKeysIgnoredWhenDisabled(t *testing.T) {
	h := newSliderHarness(t)
	config := h.GetConfig()
	config.Disabled = true
	h.SetConfig(config)

	assert.Nil(t, h.handleKey("right"))
	capture, cmd := h.down(2, 2)
	assert.Nil(t, capture)
	assert.Equal(t, SetFocusCommand{Target: h.RangeSlider}, cmd)
	assert.Zero(t, h.starts)
}

func TestRangeSliderSingleValue(t *testing.T) {
	h := newSliderHarness(t)
	config := h.GetConfig()
	config.DisableRange = true
	h.SetConfig(config)
	h.SetValue(4, 0)

	assert.Equal(t, []string{"", "", "████●──────", "     4"}, h.render())
	assert.Equal(t, RedrawCommand{}, h.handleKey("right"))
	assert.Nil(t, h.handleKey("tab"), "there is no second thumb")
	assert.Equal(t, engine.ThumbLow, h.FocusedThumb())
	assert.False(t, h.ShortHelp()[2].Enabled())
}

func TestRangeSliderControlledEcho(t *testing.T) {
	h := newSliderHarness(t)
	h.SetChangedFunc(func(low, high float64, byUser bool) {
		h.changes = append(h.changes, sliderChange{low, high, byUser})
		h.SetValue(low, high)
	})

	h.handleKey("right")
	require.Len(t, h.changes, 1)
	assert.Equal(t, sliderChange{3, 7, true}, h.changes[0])

	h.SetValue(1, 9)
	require.Len(t, h.changes, 2)
	assert.Equal(t, sliderChange{1, 9, false}, h.changes[1])
}

func TestRangeSliderAnimatesKeySteps(t *testing.T) {
	h := newSliderHarness(t)
	h.SetAnimation(100*time.Millisecond, animate.Linear)
	assert.False(t, h.Animating())

	h.handleKey("right")
	assert.True(t, h.Animating())

	h.now = h.now.Add(25 * time.Millisecond)
	assert.Equal(t, "──●████●───", h.render()[2])
	assert.True(t, h.Animating())

	h.now = h.now.Add(75 * time.Millisecond)
	assert.Equal(t, "───●███●───", h.render()[2])
	assert.False(t, h.Animating())
}

func TestRangeSliderDragDoesNotAnimate(t *testing.T) {
	h := newSliderHarness(t)
	h.SetAnimation(time.Second, animate.Linear)

	h.down(2, 2)
	h.moveTo(5, 2)
	assert.Equal(t, "─────●█●───", h.render()[2])
	assert.False(t, h.Animating())
}

func TestRangeSliderLayout(t *testing.T) {
	h := newSliderHarness(t)

	h.SetShowLabel(false).SetShowValue(false)
	assert.Equal(t, []string{"──●████●───", "", "", ""}, h.render())

	h.SetShowLabel(true).SetBorders(BordersAll).SetTitle("Price")
	assert.Equal(t, []string{
		"┌Price──────┐",
		"│           │",
		"│           │",
		"│──●████●───│",
		"└───────────┘",
	}, RenderText(h.RangeSlider, 13, 5))

	// Too small for a thumb: only the track is drawn.
	h.SetBorders(BordersNone).SetTitle("")
	h.SetThumbCells(2)
	assert.Equal(t, []string{"─"}, RenderText(h.RangeSlider, 1, 1))
}

func TestRangeSliderFormatFunc(t *testing.T) {
	h := newSliderHarness(t)
	h.SetFormatFunc(func(v float64) string { return "$" + formatValue(v) })
	assert.Equal(t, "  $2 - $7", h.render()[3])

	h.down(2, 2)
	assert.Equal(t, " $2", h.render()[0])
}

func TestRangeSliderHelp(t *testing.T) {
	h := newSliderHarness(t)
	short := h.ShortHelp()
	require.Len(t, short, 3)
	for _, kb := range short {
		assert.True(t, kb.Enabled())
	}
	assert.Len(t, h.FullHelp(), 3)
}
