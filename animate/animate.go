// Package animate eases rendered positions toward the position targets
// published by the slider engine.
package animate

import (
	"time"

	"github.com/xqrs/rangeslider/engine"
)

// EasingFunc maps time progress in [0, 1] to value progress in [0, 1].
type EasingFunc func(t float64) float64

var (
	// Linear moves at constant speed.
	Linear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad decelerates to zero.
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseOutCubic decelerates smoothly.
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic accelerates then decelerates.
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}
)

// EasingByName returns the easing function for name, or nil if the name is
// unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return Linear
	case "ease-out", "quad":
		return EaseOutQuad
	case "cubic":
		return EaseOutCubic
	case "ease-in-out":
		return EaseInOutCubic
	default:
		return nil
	}
}

// Animator follows one engine target. Every change of the target starts a new
// tween from the currently rendered value; Tick advances it.
//
// An Animator belongs to the goroutine that updates its target.
type Animator struct {
	duration time.Duration
	easing   EasingFunc
	now      func() time.Time

	from, to float64
	value    float64
	start    time.Time
	active   bool

	unsubscribe func()
}

// New creates an animator following target. A zero duration makes the
// animator snap to every new target value. A nil easing defaults to
// EaseOutCubic.
func New(target *engine.Target, duration time.Duration, easing EasingFunc) *Animator {
	if easing == nil {
		easing = EaseOutCubic
	}
	a := &Animator{
		duration: duration,
		easing:   easing,
		now:      time.Now,
		from:     target.Value(),
		to:       target.Value(),
		value:    target.Value(),
	}
	a.unsubscribe = target.Subscribe(a.retarget)
	return a
}

// SetNowFunc replaces the clock used to time tweens.
func (a *Animator) SetNowFunc(now func() time.Time) *Animator {
	a.now = now
	return a
}

func (a *Animator) retarget(to float64) {
	a.from = a.value
	a.to = to
	if a.duration <= 0 || a.from == a.to {
		a.value = to
		a.active = false
		return
	}
	a.start = a.now()
	a.active = true
}

// Tick advances the tween to now and returns the rendered value. active is
// false once the value has reached the target.
func (a *Animator) Tick(now time.Time) (value float64, active bool) {
	if !a.active {
		return a.value, false
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		a.value = a.to
		a.active = false
		return a.value, false
	}
	t := float64(elapsed) / float64(a.duration)
	if t < 0 {
		t = 0
	}
	a.value = a.from + (a.to-a.from)*a.easing(t)
	return a.value, true
}

// Snap ends any running tween at the target value.
func (a *Animator) Snap() {
	a.from = a.to
	a.value = a.to
	a.active = false
}

// Value returns the last rendered value.
func (a *Animator) Value() float64 {
	return a.value
}

// Target returns the value the animator is heading for.
func (a *Animator) Target() float64 {
	return a.to
}

// Active reports whether a tween is running.
func (a *Animator) Active() bool {
	return a.active
}

// Close stops following the target.
func (a *Animator) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.active = false
}
