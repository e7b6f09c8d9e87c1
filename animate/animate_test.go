package animate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/rangeslider/engine"
)

func TestEasingEndpoints(t *testing.T) {
	for name, easing := range map[string]EasingFunc{
		"linear":      Linear,
		"quad":        EaseOutQuad,
		"cubic":       EaseOutCubic,
		"ease-in-out": EaseInOutCubic,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, easing(0), 1e-12)
			assert.InDelta(t, 1, easing(1), 1e-12)
		})
	}
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)
}

func TestEasingByName(t *testing.T) {
	assert.NotNil(t, EasingByName("linear"))
	assert.NotNil(t, EasingByName("cubic"))
	assert.Nil(t, EasingByName("wobble"))
}

func TestAnimatorTweensTowardTarget(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	target := engine.NewTarget(0)
	a := New(target, 100*time.Millisecond, Linear).SetNowFunc(func() time.Time { return now })
	defer a.Close()

	v, active := a.Tick(now)
	assert.Zero(t, v)
	assert.False(t, active)

	target.Set(80)
	assert.True(t, a.Active())
	assert.Equal(t, 80.0, a.Target())

	v, active = a.Tick(start.Add(25 * time.Millisecond))
	assert.InDelta(t, 20, v, 1e-9)
	assert.True(t, active)

	v, active = a.Tick(start.Add(100 * time.Millisecond))
	assert.Equal(t, 80.0, v)
	assert.False(t, active)
	assert.Equal(t, 80.0, a.Value())
}

func TestAnimatorRetargetStartsFromRenderedValue(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	target := engine.NewTarget(0)
	a := New(target, 100*time.Millisecond, Linear).SetNowFunc(func() time.Time { return now })

	target.Set(100)
	a.Tick(start.Add(50 * time.Millisecond))
	require.InDelta(t, 50, a.Value(), 1e-9)

	now = start.Add(50 * time.Millisecond)
	target.Set(0)
	v, _ := a.Tick(now.Add(50 * time.Millisecond))
	assert.InDelta(t, 25, v, 1e-9)
}

func TestAnimatorZeroDurationSnaps(t *testing.T) {
	target := engine.NewTarget(10)
	a := New(target, 0, nil)

	target.Set(42)
	assert.False(t, a.Active())
	assert.Equal(t, 42.0, a.Value())
	v, active := a.Tick(time.Now())
	assert.Equal(t, 42.0, v)
	assert.False(t, active)
}

func TestAnimatorClose(t *testing.T) {
	target := engine.NewTarget(0)
	a := New(target, 0, Linear)
	a.Close()

	target.Set(5)
	assert.Zero(t, a.Value())
	a.Close()
}

func TestAnimatorSnap(t *testing.T) {
	target := engine.NewTarget(0)
	a := New(target, time.Second, Linear)

	target.Set(30)
	require.True(t, a.Active())
	a.Snap()
	assert.False(t, a.Active())
	assert.Equal(t, 30.0, a.Value())
}
