package engine

// Value is the current selection. Low <= High always holds and both sit on the
// step grid (or at a bound).
type Value struct {
	Low  float64
	High float64
}

// Get returns the value of the given thumb.
func (v Value) Get(thumb Thumb) float64 {
	if thumb == ThumbHigh {
		return v.High
	}
	return v.Low
}

// ChangedFunc receives every accepted value change. byUser is true for changes
// produced by a gesture or key press and false for changes mirrored from the
// caller's props.
type ChangedFunc func(low, high float64, byUser bool)

// Reconciler owns the current value of a slider and keeps it in sync with
// optional caller-supplied low/high props.
//
// It remembers the props it saw last. A prop that differs from that snapshot
// is an external change; a prop that merely echoes the current value (the
// caller reflecting an earlier notification back) only refreshes the snapshot.
// That distinction is what keeps a controlled slider from looping.
type Reconciler struct {
	config Config
	value  Value

	prevLow, prevHigh *float64

	changed ChangedFunc
}

// NewReconciler creates a reconciler for config. Undefined props start at the
// respective bound.
func NewReconciler(config Config, low, high *float64) *Reconciler {
	r := &Reconciler{config: config}
	v := Value{Low: config.Min, High: config.Max}
	if low != nil {
		v.Low = *low
	}
	if high != nil {
		v.High = *high
	}
	r.value = r.Normalize(v)
	r.prevLow, r.prevHigh = copyProp(low), copyProp(high)
	return r
}

// SetChangedFunc sets the handler notified of accepted value changes.
func (r *Reconciler) SetChangedFunc(handler ChangedFunc) *Reconciler {
	r.changed = handler
	return r
}

// Configure replaces the configuration and re-normalizes the current value
// against it. It does not notify; it reports whether the value changed.
func (r *Reconciler) Configure(config Config) bool {
	r.config = config
	next := r.Normalize(r.value)
	changed := next != r.value
	r.value = next
	return changed
}

// Config returns the active configuration.
func (r *Reconciler) Config() Config {
	return r.config
}

// Value returns the current value.
func (r *Reconciler) Value() Value {
	return r.value
}

// Sync compares the props against the last observed props. When either
// defined prop changed, the current value is overwritten and listeners are
// notified once with byUser=false. It reports whether the value changed.
func (r *Reconciler) Sync(low, high *float64) bool {
	if !r.sync(low, high) {
		return false
	}
	r.notify(false)
	return true
}

// sync is Sync without the notification.
func (r *Reconciler) sync(low, high *float64) bool {
	lowChanged := low != nil && !sameProp(low, r.prevLow)
	highChanged := high != nil && !sameProp(high, r.prevHigh)
	r.prevLow, r.prevHigh = copyProp(low), copyProp(high)
	if !lowChanged && !highChanged {
		return false
	}

	next := r.value
	if lowChanged {
		next.Low = *low
	}
	if highChanged {
		next.High = *high
	}
	next = r.Normalize(next)
	if next == r.value {
		return false
	}
	r.value = next
	return true
}

// SetInternal writes a value produced by an interaction for one thumb. It
// bypasses the prop diff, applies the same normalization and notifies with
// byUser=true. Callers deduplicate; every call notifies. It reports whether
// the value changed.
func (r *Reconciler) SetInternal(thumb Thumb, v float64) bool {
	changed := r.set(thumb, v)
	r.notify(true)
	return changed
}

// set writes v for thumb without notifying.
func (r *Reconciler) set(thumb Thumb, v float64) bool {
	next := r.value
	if thumb == ThumbHigh {
		next.High = v
	} else {
		next.Low = v
	}
	next = r.normalizeFor(next, thumb)
	changed := next != r.value
	r.value = next
	return changed
}

// Bounds returns the interval the given thumb may move in, taking the other
// thumb's live value and minRange into account.
func (r *Reconciler) Bounds(thumb Thumb) (lo, hi float64) {
	c := r.config
	if c.DisableRange {
		return c.Min, c.Max
	}
	if thumb == ThumbLow {
		hi = snapDown(r.value.High-c.MinRange, c.Min, c.Step)
		return c.Min, Clamp(hi, c.Min, c.Max)
	}
	lo = snapUp(r.value.Low+c.MinRange, c.Min, c.Step)
	return Clamp(lo, c.Min, c.Max), c.Max
}

// Normalize quantizes both values to the step grid, clamps them into
// [min, max] and enforces low <= high - minRange, letting high give way. With
// the range disabled high is pinned to max.
func (r *Reconciler) Normalize(v Value) Value {
	return r.normalizeFor(v, ThumbHigh)
}

// normalizeFor normalizes v, keeping the thumb that did not move fixed where
// the minimum range forces one of them to give way.
func (r *Reconciler) normalizeFor(v Value, moved Thumb) Value {
	c := r.config
	if c.span() == 0 {
		return Value{Low: c.Min, High: c.Min}
	}
	v.Low = Clamp(quantize(v.Low, c.Min, c.Step), c.Min, c.Max)
	v.High = Clamp(quantize(v.High, c.Min, c.Step), c.Min, c.Max)
	if c.DisableRange {
		v.High = c.Max
		return v
	}

	minRange := Clamp(c.MinRange, 0, c.span())
	if v.High-v.Low >= minRange {
		return v
	}
	if moved == ThumbLow {
		v.Low = Clamp(snapDown(v.High-minRange, c.Min, c.Step), c.Min, c.Max)
		if v.High-v.Low < minRange {
			v.High = Clamp(snapUp(v.Low+minRange, c.Min, c.Step), c.Min, c.Max)
		}
		return v
	}
	v.High = Clamp(snapUp(v.Low+minRange, c.Min, c.Step), c.Min, c.Max)
	if v.High-v.Low < minRange {
		v.Low = Clamp(snapDown(v.High-minRange, c.Min, c.Step), c.Min, c.Max)
	}
	return v
}

func (r *Reconciler) notify(byUser bool) {
	if r.changed != nil {
		r.changed(r.value.Low, r.value.High, byUser)
	}
}

func sameProp(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyProp(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
