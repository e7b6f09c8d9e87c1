package rangeslider

import (
	"math"

	"github.com/gdamore/tcell/v3"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The screen's background color is kept.
//
// Returns the number of bytes of text printed and the width used.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintWithStyle works like [Print] but takes a full style. Its background
// replaces the screen's unless it is tcell.ColorDefault.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, maxWidth, alignment, style, style.GetBackground() == tcell.ColorDefault)
	return end - start, width
}

// PrintSimple prints text in the primary text color at the given position.
func PrintSimple(screen tcell.Screen, text string, x, y int) {
	Print(screen, text, x, y, math.MaxInt32, AlignmentLeft, Styles.PrimaryTextColor)
}

// printWithStyle returns the start index, end index (exclusively), and screen
// width of the text actually printed. If maintainBackground is true, the
// existing screen background is not changed.
func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	textWidth := TaggedStringWidth(text)
	state := &stepState{unisegState: -1}

	// Reduce all alignments to AlignmentLeft.
	switch alignment {
	case AlignmentRight:
		// Chop off characters on the left until it fits.
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		subtracted := (textWidth - maxWidth) / 2
		for len(text) > 0 && subtracted > 0 {
			_, text, state = step(text, state)
			subtracted -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		if c == "" {
			break
		}
		width := state.Width()
		if x+width > rightBorder {
			break
		}

		if width > 0 && x >= 0 {
			finalStyle := style
			if maintainBackground {
				_, existing, _ := screen.Get(x, y)
				finalStyle = finalStyle.Background(existing.GetBackground())
			}
			// Clear the tail of wide clusters first so nothing stale shows
			// through, then let the cluster claim it.
			for offset := width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", finalStyle)
			}
			screen.Put(x, y, c, finalStyle)
		}

		x += width
		end += state.GrossLength()
		printedWidth += width
	}

	return
}
