package engine

import "math"

// roundingSlack absorbs floating point error when a pointer lands exactly on
// a half step, so that 4.4999999999 still rounds up like 4.5 does.
const roundingSlack = 1e-9

// Layout is the measured geometry of the track, in pixels.
type Layout struct {
	ContainerWidth float64
	ThumbWidth     float64
}

// Ready reports whether both widths are known and leave room for a thumb to
// travel. Position math must not run otherwise.
func (l Layout) Ready() bool {
	return LayoutReady(l.ContainerWidth, l.ThumbWidth)
}

// Travel returns the distance available to a thumb's leading edge.
func (l Layout) Travel() float64 {
	return TravelSpace(l.ContainerWidth, l.ThumbWidth)
}

// LayoutReady reports whether position math can run for the given widths.
func LayoutReady(containerWidth, thumbWidth float64) bool {
	return thumbWidth > 0 && containerWidth > 0 && containerWidth > thumbWidth
}

// TravelSpace returns containerWidth - thumbWidth.
func TravelSpace(containerWidth, thumbWidth float64) float64 {
	return containerWidth - thumbWidth
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// LowPosition returns the pixel offset of the low thumb's leading edge.
func LowPosition(low, min, max, containerWidth, thumbWidth float64) float64 {
	return valuePosition(low, min, max, containerWidth, thumbWidth)
}

// HighPosition returns the pixel offset of the high thumb's leading edge.
func HighPosition(high, min, max, containerWidth, thumbWidth float64) float64 {
	return valuePosition(high, min, max, containerWidth, thumbWidth)
}

func valuePosition(v, min, max, containerWidth, thumbWidth float64) float64 {
	if !(max > min) {
		return 0
	}
	return (v - min) / (max - min) * TravelSpace(containerWidth, thumbWidth)
}

// ValueForPosition converts a pointer coordinate inside the container into a
// value. The coordinate is taken relative to the thumb's center, snapped to
// the nearest step from min with halves rounding up, and clamped to
// [min, max]. Degenerate geometry or configuration yields min.
func ValueForPosition(positionInView, containerWidth, thumbWidth, min, max, step float64) float64 {
	travel := TravelSpace(containerWidth, thumbWidth)
	if travel <= 0 || !(max > min) || !(step > 0) {
		return min
	}
	// Multiplying before dividing keeps half steps exact for integral inputs.
	steps := (positionInView - thumbWidth/2) * (max - min) / (travel * step)
	if math.IsNaN(steps) || math.IsInf(steps, 0) {
		return min
	}
	return Clamp(min+roundHalfUp(steps)*step, min, max)
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5 + roundingSlack)
}

// snapDown returns the largest value on the step grid from min that is <= v.
func snapDown(v, min, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return min + math.Floor((v-min)/step+roundingSlack)*step
}

// snapUp returns the smallest value on the step grid from min that is >= v.
func snapUp(v, min, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return min + math.Ceil((v-min)/step-roundingSlack)*step
}

// quantize snaps v to the nearest step from min, halves rounding up.
func quantize(v, min, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return min + roundHalfUp((v-min)/step)*step
}

// SelectedRail returns the left offset and width of the filled part of the
// rail, in thumb position space. With the range disabled the fill runs from
// the start of the rail to the single thumb.
func SelectedRail(v Value, min, max float64, layout Layout, disableRange bool) (left, width float64) {
	if !layout.Ready() {
		return 0, 0
	}
	low := LowPosition(v.Low, min, max, layout.ContainerWidth, layout.ThumbWidth)
	if disableRange {
		return 0, low
	}
	high := HighPosition(v.High, min, max, layout.ContainerWidth, layout.ThumbWidth)
	return low, math.Max(high-low, 0)
}
