package rangeslider

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string
	style tcell.Style
	// cont marks the trailing columns of a wide grapheme.
	cont bool
}

// captureScreen is an in-memory tcell.Screen for snapshots and tests. Only
// the drawing half of the interface is implemented; everything else panics
// through the nil embedded Screen.
type captureScreen struct {
	tcell.Screen

	width, height int
	cells         []cell
	defaultStyle  tcell.Style
}

func newCaptureScreen(width, height int) *captureScreen {
	width, height = max(width, 0), max(height, 0)
	return &captureScreen{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (s *captureScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *captureScreen) Show()                      {}
func (s *captureScreen) Sync()                      {}
func (s *captureScreen) HideCursor()                {}
func (s *captureScreen) ShowCursor(x, y int)        {}
func (s *captureScreen) SetStyle(style tcell.Style) { s.defaultStyle = style }

func (s *captureScreen) Clear() {
	s.Fill(' ', s.defaultStyle)
}

func (s *captureScreen) Fill(r rune, style tcell.Style) {
	for i := range s.cells {
		s.cells[i] = cell{text: string(r), style: style}
	}
}

func (s *captureScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Put(x, y, string(primary)+string(combining), style)
}

func (s *captureScreen) Get(x, y int) (str string, style tcell.Style, width int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return "", tcell.StyleDefault, 1
	}
	c := s.cells[y*s.width+x]
	width = max(uniseg.StringWidth(c.text), 1)
	return c.text, c.style, width
}

func (s *captureScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}

	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		r, size := utf8.DecodeRuneInString(str)
		if size == 0 {
			return "", 0
		}
		cluster, remain, width = string(r), str[size:], 1
	}
	if width <= 0 {
		return remain, 0
	}

	// Match terminal clipping behavior for wide graphemes at the right edge.
	if width > 1 && x == s.width-1 {
		cluster, width = " ", 1
	}

	s.set(x, y, cell{text: cluster, style: style})
	for i := 1; i < width; i++ {
		s.set(x+i, y, cell{style: style, cont: true})
	}
	return remain, width
}

func (s *captureScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, s.defaultStyle)
}

func (s *captureScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < s.width {
		remain, width := s.Put(x, y, str, style)
		if width <= 0 || remain == str {
			return
		}
		x += width
		str = remain
	}
}

func (s *captureScreen) set(x, y int, c cell) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = c
}

// lines returns the screen content row by row, trailing blanks removed.
func (s *captureScreen) lines() []string {
	out := make([]string, s.height)
	for y := range s.height {
		var b strings.Builder
		for x := range s.width {
			c := s.cells[y*s.width+x]
			switch {
			case c.cont:
			case c.text == "":
				b.WriteByte(' ')
			default:
				b.WriteString(c.text)
			}
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// RenderText draws p into a width x height off-screen buffer and returns the
// rows as text. Styles are discarded.
func RenderText(p Primitive, width, height int) []string {
	screen := newCaptureScreen(width, height)
	p.SetRect(0, 0, width, height)
	p.Draw(screen)
	p.MarkClean()
	return screen.lines()
}
