package engine

import "math"

// CaptureRadius is the distance in pixels around a thumb within which a touch
// is captured by the slider. Twice this is the usual minimum touch target.
const CaptureRadius = 20

// Thumb identifies one of the two handles.
type Thumb int

const (
	ThumbLow Thumb = iota
	ThumbHigh
)

func (t Thumb) String() string {
	switch t {
	case ThumbLow:
		return "low"
	case ThumbHigh:
		return "high"
	}
	return "unknown"
}

// Other returns the opposite thumb.
func (t Thumb) Other() Thumb {
	if t == ThumbLow {
		return ThumbHigh
	}
	return ThumbLow
}

// IsLowCloser decides which thumb a touch at downX should move. When both
// thumbs sit at the same position the low thumb is only chosen for touches
// strictly left of it, so dragging right out of a collapsed range grows the
// high end. Otherwise the nearer thumb wins and ties go to low.
func IsLowCloser(downX, lowPosition, highPosition float64) bool {
	if lowPosition == highPosition {
		return downX < lowPosition
	}
	return math.Abs(downX-lowPosition) <= math.Abs(downX-highPosition)
}

// ShouldCaptureFocus reports whether a touch at touchX (container relative)
// lands close enough to a thumb to be handled by the slider. Positions are
// leading-edge offsets, so the touch is shifted by half a thumb before the
// comparison. The high thumb is ignored when the range is disabled.
func ShouldCaptureFocus(touchX, thumbWidth, lowPosition, highPosition float64, disableRange bool) bool {
	x := touchX - thumbWidth/2
	if x-CaptureRadius <= lowPosition && x+CaptureRadius > lowPosition {
		return true
	}
	if !disableRange && highPosition-CaptureRadius < x && x < highPosition+CaptureRadius {
		return true
	}
	return false
}
