package rangeslider

import "github.com/rivo/uniseg"

// stepState is the state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{unisegState: -1}
	}
	if len(str) == 0 {
		return "", "", state
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)
	return cluster, rest, state
}

// TaggedStringWidth returns the width of the given string needed to print it on
// screen.
func TaggedStringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}

// Truncate shortens text to at most width cells, replacing the cut part with
// an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if TaggedStringWidth(text) <= width {
		return text
	}
	var (
		state *stepState
		used  int
		n     int
	)
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, state = step(rest, state)
		if used+state.Width() > width-1 {
			break
		}
		used += state.Width()
		n += len(cluster)
	}
	return text[:n] + SemigraphicsHorizontalEllipsis
}
