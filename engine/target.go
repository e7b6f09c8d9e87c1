package engine

// Target holds one position a renderer or animator should move toward. The
// gesture controller and reconciler write targets; renderers read them or
// subscribe to changes.
//
// Targets are not safe for concurrent use. Like the rest of the engine they
// belong to the UI event loop.
type Target struct {
	value     float64
	listeners map[int]func(float64)
	nextID    int
}

// NewTarget returns a target holding value.
func NewTarget(value float64) *Target {
	return &Target{value: value}
}

// Value returns the current target value.
func (t *Target) Value() float64 {
	return t.value
}

// Set stores value and notifies subscribers. Writing the current value again
// is a no-op.
func (t *Target) Set(value float64) {
	if t.value == value {
		return
	}
	t.value = value
	for id := 0; id < t.nextID; id++ {
		if fn, ok := t.listeners[id]; ok {
			fn(value)
		}
	}
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (t *Target) Subscribe(fn func(float64)) (unsubscribe func()) {
	if t.listeners == nil {
		t.listeners = make(map[int]func(float64))
	}
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() {
		delete(t.listeners, id)
	}
}

// Targets bundles the positions produced for the renderer: the leading edge
// of each thumb and the extent of the selected rail.
type Targets struct {
	Low       *Target
	High      *Target
	RailLeft  *Target
	RailWidth *Target
}

func newTargets() Targets {
	return Targets{
		Low:       NewTarget(0),
		High:      NewTarget(0),
		RailLeft:  NewTarget(0),
		RailWidth: NewTarget(0),
	}
}

// Thumb returns the target of the given thumb.
func (t Targets) Thumb(thumb Thumb) *Target {
	if thumb == ThumbHigh {
		return t.High
	}
	return t.Low
}
