package engine

import "math"

// Follower tracks a label or notch that rides above the active thumb while it
// is pressed.
type Follower struct {
	width         float64
	allowOverflow bool

	visible bool
	left    float64
	value   float64
}

func newFollower() *Follower {
	return &Follower{value: math.NaN()}
}

// SetWidth sets the measured width of the follower's content.
func (f *Follower) SetWidth(width float64) *Follower {
	f.width = math.Max(width, 0)
	return f
}

// SetAllowOverflow lets the follower extend past the container edges.
func (f *Follower) SetAllowOverflow(allow bool) *Follower {
	f.allowOverflow = allow
	return f
}

// Visible reports whether the follower should be drawn.
func (f *Follower) Visible() bool {
	return f.visible
}

// Left returns the follower's left offset within the container.
func (f *Follower) Left() float64 {
	return f.left
}

// Value returns the value the follower displays. It is NaN before the first
// press.
func (f *Follower) Value() float64 {
	return f.value
}

// update centers the follower on center and shows value.
func (f *Follower) update(center, value, containerWidth float64) {
	left := center - f.width/2
	if !f.allowOverflow {
		left = Clamp(left, 0, math.Max(containerWidth-f.width, 0))
	}
	f.left = left
	f.value = value
	f.visible = true
}

func (f *Follower) hide() {
	f.visible = false
}
