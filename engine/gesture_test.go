package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type touch struct {
	low, high float64
}

type harness struct {
	*Slider
	changes []change
	starts  []touch
	ends    []touch
}

// newHarness returns a measured slider over 0..10 with a 110px track and a
// 10px thumb, so that every value unit is 10px of travel.
func newHarness(t *testing.T, modify func(*Props)) *harness {
	t.Helper()
	c := DefaultConfig()
	c.Max = 10
	props := Props{Config: c}
	if modify != nil {
		modify(&props)
	}
	h := &harness{Slider: New(props)}
	h.SetValueChangedFunc(func(low, high float64, byUser bool) {
		h.changes = append(h.changes, change{low, high, byUser})
	})
	h.SetTouchStartFunc(func(low, high float64) {
		h.starts = append(h.starts, touch{low, high})
	})
	h.SetTouchEndFunc(func(low, high float64) {
		h.ends = append(h.ends, touch{low, high})
	})
	h.SetContainerWidth(110)
	h.SetThumbWidth(10)
	return h
}

// press grants a drag for a single pointer whose container starts at page
// x=100.
func (h *harness) press(locationX float64) bool {
	return h.Grant(StartEvent{LocationX: locationX, PageX: 100 + locationX, NumberActiveTouches: 1})
}

func (h *harness) moveTo(locationX float64) {
	h.Move(MoveEvent{MoveX: 100 + locationX})
}

func TestGestureDragLowThumb(t *testing.T) {
	h := newHarness(t, nil)

	require.True(t, h.press(5))
	assert.Equal(t, StateDragging, h.State())
	assert.True(t, h.Pressed())
	thumb, ok := h.ActiveThumb()
	require.True(t, ok)
	assert.Equal(t, ThumbLow, thumb)
	assert.Equal(t, []touch{{0, 10}}, h.starts)
	assert.Equal(t, []change{{0, 10, true}}, h.changes)

	h.moveTo(50)
	assert.Equal(t, []change{{0, 10, true}, {5, 10, true}}, h.changes)
	assert.Equal(t, 50.0, h.Targets().Low.Value())
	assert.Equal(t, 50.0, h.Targets().RailLeft.Value())
	assert.Equal(t, 50.0, h.Targets().RailWidth.Value())

	h.Release()
	assert.Equal(t, []touch{{5, 10}}, h.ends)
	assert.Equal(t, StateIdle, h.State())
	assert.False(t, h.Pressed())
}

func TestGestureSuppressesRepeatedValues(t *testing.T) {
	h := newHarness(t, nil)
	require.True(t, h.press(5))

	for _, x := range []float64{50, 51, 52, 53, 54.9, 50} {
		h.moveTo(x)
	}
	assert.Equal(t, []change{{0, 10, true}, {5, 10, true}}, h.changes)

	h.moveTo(60)
	assert.Equal(t, change{6, 10, true}, h.changes[len(h.changes)-1])
}

func TestGestureRespectsMinRange(t *testing.T) {
	h := newHarness(t, func(p *Props) {
		p.Max = 100
		p.MinRange = 10
		p.Low, p.High = ptr(40), ptr(50)
	})
	// 1000px of travel for 0..100.
	h.SetContainerWidth(1010)

	require.True(t, h.press(405))
	assert.Equal(t, []change{{40, 50, true}}, h.changes)

	for _, x := range []float64{450, 480, 600, 1000} {
		h.moveTo(x)
	}
	assert.Len(t, h.changes, 1, "the low thumb cannot pass high-minRange")
	assert.Equal(t, Value{40, 50}, h.Value())

	h.moveTo(305)
	assert.Equal(t, change{30, 50, true}, h.changes[len(h.changes)-1])
}

func TestGestureHighThumbStopsAtLow(t *testing.T) {
	h := newHarness(t, func(p *Props) {
		p.Low, p.High = ptr(4), ptr(8)
	})

	require.True(t, h.press(85))
	thumb, _ := h.ActiveThumb()
	assert.Equal(t, ThumbHigh, thumb)

	h.moveTo(0)
	assert.Equal(t, Value{4, 4}, h.Value())
	assert.Equal(t, 40.0, h.Targets().High.Value())
	assert.Zero(t, h.Targets().RailWidth.Value())
}

func TestGestureCanceledByVerticalMovement(t *testing.T) {
	tests := []struct {
		name string
		move MoveEvent
	}{
		{"displacement", MoveEvent{DeltaY: 150, MoveX: 150}},
		{"upward displacement", MoveEvent{DeltaY: -101, MoveX: 150}},
		{"velocity", MoveEvent{VelocityY: 1.5, MoveX: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			require.True(t, h.press(5))

			h.Move(tt.move)
			assert.Equal(t, StateCanceled, h.State())
			assert.False(t, h.Pressed())

			h.moveTo(80)
			assert.Equal(t, []change{{0, 10, true}}, h.changes)

			h.Release()
			assert.Empty(t, h.ends)
			assert.Equal(t, StateIdle, h.State())
		})
	}
}

func TestGestureVerticalLimitIsExclusive(t *testing.T) {
	h := newHarness(t, nil)
	require.True(t, h.press(5))

	h.Move(MoveEvent{DeltaY: 100, VelocityY: 1, MoveX: 150})
	assert.Equal(t, StateDragging, h.State())
	assert.Equal(t, 5.0, h.Value().Low)
}

func TestGestureCustomFocusHeightLimit(t *testing.T) {
	h := newHarness(t, func(p *Props) { p.FocusHeightLimit = 20 })
	require.True(t, h.press(5))

	h.Move(MoveEvent{DeltaY: 21, MoveX: 150})
	assert.Equal(t, StateCanceled, h.State())
}

func TestGestureTerminate(t *testing.T) {
	h := newHarness(t, nil)
	require.True(t, h.press(5))
	h.moveTo(30)

	h.Terminate()
	assert.Empty(t, h.ends)
	assert.Equal(t, StateIdle, h.State())
	assert.False(t, h.Pressed())
	_, ok := h.ActiveThumb()
	assert.False(t, ok)

	h.moveTo(90)
	assert.Equal(t, 3.0, h.Value().Low)
}

func TestGestureRefusals(t *testing.T) {
	t.Run("multiple touches", func(t *testing.T) {
		h := newHarness(t, nil)
		ok := h.Grant(StartEvent{LocationX: 5, PageX: 105, NumberActiveTouches: 2})
		assert.False(t, ok)
		assert.Equal(t, StateIdle, h.State())
		assert.Empty(t, h.changes)
		assert.Empty(t, h.starts)
	})

	t.Run("disabled", func(t *testing.T) {
		h := newHarness(t, func(p *Props) { p.Disabled = true })
		assert.False(t, h.press(5))
		assert.Equal(t, StateIdle, h.State())
		assert.Empty(t, h.changes)
	})

	t.Run("layout not measured", func(t *testing.T) {
		s := New(Props{Config: DefaultConfig()})
		assert.False(t, s.ShouldCapture(StartEvent{LocationX: 5}))
		assert.False(t, s.Grant(StartEvent{LocationX: 5, PageX: 5, NumberActiveTouches: 1}))
		assert.Equal(t, StateIdle, s.State())
	})

	t.Run("session already active", func(t *testing.T) {
		h := newHarness(t, nil)
		require.True(t, h.press(5))
		assert.False(t, h.press(105))
		thumb, _ := h.ActiveThumb()
		assert.Equal(t, ThumbLow, thumb)
		assert.Len(t, h.starts, 1)
	})
}

func TestGestureDisabledMidDragIgnoresMoves(t *testing.T) {
	h := newHarness(t, nil)
	require.True(t, h.press(5))

	c := h.Config()
	c.Disabled = true
	h.Update(Props{Config: c})

	h.moveTo(80)
	assert.Equal(t, []change{{0, 10, true}}, h.changes)
}

func TestGestureMovesWhileIdleAreIgnored(t *testing.T) {
	h := newHarness(t, nil)
	h.moveTo(50)
	h.Release()
	assert.Empty(t, h.changes)
	assert.Empty(t, h.ends)
	assert.Equal(t, StateIdle, h.State())
}

func TestGestureCoincidentThumbs(t *testing.T) {
	tests := []struct {
		name      string
		locationX float64
		want      Thumb
	}{
		{"touch at the shared center picks high", 55, ThumbHigh},
		{"touch right of it picks high", 58, ThumbHigh},
		{"touch left of it picks low", 54, ThumbLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(p *Props) {
				p.Low, p.High = ptr(5), ptr(5)
			})
			require.True(t, h.press(tt.locationX))
			thumb, _ := h.ActiveThumb()
			assert.Equal(t, tt.want, thumb)
			assert.Equal(t, Value{5, 5}, h.Value())
		})
	}
}

func TestGestureSingleThumb(t *testing.T) {
	h := newHarness(t, func(p *Props) {
		p.DisableRange = true
		p.Low = ptr(2)
	})
	assert.Equal(t, Value{2, 10}, h.Value())

	// A touch on the far end still moves the only thumb.
	require.True(t, h.press(105))
	thumb, _ := h.ActiveThumb()
	assert.Equal(t, ThumbLow, thumb)
	assert.Equal(t, Value{10, 10}, h.Value())
	assert.Zero(t, h.Targets().RailLeft.Value())
	assert.Equal(t, 100.0, h.Targets().RailWidth.Value())
}

func TestShouldCaptureTransitions(t *testing.T) {
	h := newHarness(t, nil)

	assert.True(t, h.ShouldCapture(StartEvent{LocationX: 5}))
	assert.Equal(t, StateCapturing, h.State())

	assert.False(t, h.ShouldCapture(StartEvent{LocationX: 50}))
	assert.Equal(t, StateIdle, h.State())

	assert.True(t, h.ShouldCapture(StartEvent{LocationX: 105}))
	require.True(t, h.press(105))

	// An active session keeps the pointer wherever it goes.
	assert.True(t, h.ShouldCapture(StartEvent{LocationX: 50}))
	assert.Equal(t, StateDragging, h.State())
}

func TestGestureLogsSessionFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := newHarness(t, nil)
	h.SetLogger(logger)
	require.True(t, h.press(105))
	h.Release()

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "gesture granted", entries[0].Message)
	assert.Equal(t, "high", entries[0].Data["thumb"])
	assert.NotEmpty(t, entries[0].Data["gesture"])
	assert.Equal(t, entries[0].Data["gesture"], entries[1].Data["gesture"])
	assert.Equal(t, "gesture released", entries[1].Message)
}
