package rangeslider

import (
	"math"

	"github.com/gdamore/tcell/v3"
)

// subcell is the number of pixels per terminal cell. Slider geometry is
// computed in pixels so fills can end at 1/8 of a cell.
const subcell = 8

// rowHeight is the pixel height of one terminal row.
const rowHeight = 2 * subcell

// SliderGlyphSet defines the rail, fill, thumb and notch glyphs of a slider.
type SliderGlyphSet struct {
	Track string

	// FillLeft[i] covers i+1 eighths from the left edge of a cell,
	// FillRight[i] from the right edge.
	FillLeft  [8]string
	FillRight [8]string

	Thumb string
	Notch string
}

var leftEighths = [8]string{
	BlockLeftOneEighth, BlockLeftOneQuarter, BlockLeftThreeEighths, BlockLeftHalf,
	BlockLeftFiveEighths, BlockLeftThreeQuarters, BlockLeftSevenEighths, BlockFull,
}

// LegacyComputingSliderGlyphs uses legacy-computing right blocks for full 1/8
// precision on both ends of the selected rail.
func LegacyComputingSliderGlyphs() SliderGlyphSet {
	return SliderGlyphSet{
		Track:    BoxDrawingsLightHorizontal,
		FillLeft: leftEighths,
		FillRight: [8]string{
			BlockRightOneEighth, BlockRightOneQuarter, BlockRightThreeEighths, BlockRightHalf,
			BlockRightFiveEighths, BlockRightThreeQuarters, BlockRightSevenEighths, BlockFull,
		},
		Thumb: BlackCircle,
		Notch: BlackDownPointingTriangle,
	}
}

// UnicodeSliderGlyphs approximates the right end of the selected rail with
// standard block elements.
func UnicodeSliderGlyphs() SliderGlyphSet {
	return SliderGlyphSet{
		Track:    BoxDrawingsLightHorizontal,
		FillLeft: leftEighths,
		FillRight: [8]string{
			BlockRightOneEighth, BlockRightOneEighth, BlockRightHalf, BlockRightHalf,
			BlockRightHalf, BlockRightHalf, BlockFull, BlockFull,
		},
		Thumb: BlackCircle,
		Notch: BlackDownPointingTriangle,
	}
}

// SliderGlyphsByName returns the glyph set for "unicode" or "legacy".
func SliderGlyphsByName(name string) (SliderGlyphSet, bool) {
	switch name {
	case "", "unicode":
		return UnicodeSliderGlyphs(), true
	case "legacy":
		return LegacyComputingSliderGlyphs(), true
	}
	return SliderGlyphSet{}, false
}

// span is a horizontal run in pixels.
type span struct {
	start, length int
}

// pixelSpan rounds a float extent to whole pixels.
func pixelSpan(start, length float64) span {
	from := int(math.Round(start))
	to := int(math.Round(start + length))
	if to < from {
		to = from
	}
	return span{start: from, length: to - from}
}

// cellFill returns the part of cell cellIndex covered by s as a cell-local
// start and length in pixels.
func cellFill(s span, cellIndex int) (start, fillLen int) {
	if s.length <= 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	from := max(s.start, cellStart)
	to := min(s.start+s.length, cellStart+subcell)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

// fillGlyph picks the glyph for a partly covered cell. Coverage touching the
// left edge uses a left block, anything else a right block.
func (g SliderGlyphSet) fillGlyph(start, fillLen int) string {
	if fillLen >= subcell {
		return g.FillLeft[7]
	}
	if start == 0 {
		return g.FillLeft[fillLen-1]
	}
	return g.FillRight[fillLen-1]
}

// drawRail draws cells track cells starting at (x, y) with the selected span
// filled.
func drawRail(screen tcell.Screen, x, y, cells int, selected span, g SliderGlyphSet, trackStyle, selectedStyle tcell.Style) {
	for cell := 0; cell < cells; cell++ {
		start, fillLen := cellFill(selected, cell)
		if fillLen <= 0 {
			screen.Put(x+cell, y, g.Track, trackStyle)
			continue
		}
		screen.Put(x+cell, y, g.fillGlyph(start, fillLen), selectedStyle)
	}
}

// thumbCell returns the first cell of a thumb whose leading edge is at
// position pixels, kept inside a rail of cells cells.
func thumbCell(position float64, thumbCells, cells int) int {
	cell := int(math.Round(position / subcell))
	return min(max(cell, 0), max(cells-thumbCells, 0))
}
