// Package help renders the key bindings of a KeyMap as a one-line summary or
// as aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/rangeslider"
	"github.com/xqrs/rangeslider/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help is a primitive showing the key help of a KeyMap.
type Help struct {
	*rangeslider.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            rangeslider.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       rangeslider.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the key map to describe.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll switches between the one-line and the full help.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

func (h *Help) ShowAll() bool {
	return h.showAll
}

func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	h.MarkDirty()
	return h
}

func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	h.MarkDirty()
	return h
}

// SetEllipsis sets the marker appended when bindings were left out. An empty
// marker disables it.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	h.MarkDirty()
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	h.MarkDirty()
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		lines[row].draw(screen, x, y+row, width)
	}
}

// Lines returns the current help as plain text rows for the given width.
func (h *Help) Lines(width int) []string {
	if h.keyMap == nil {
		return nil
	}
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

type segment struct {
	text  string
	style tcell.Style
}

// line is a row of styled segments.
type line []segment

func (l line) width() int {
	w := 0
	for _, s := range l {
		w += rangeslider.TaggedStringWidth(s.text)
	}
	return w
}

func (l line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		if s.text == "" {
			continue
		}
		_, printed := rangeslider.PrintWithStyle(screen, s.text, x, y, width, rangeslider.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// pad appends spaces until the line is n cells wide.
func (l line) pad(n int, style tcell.Style) line {
	if w := l.width(); w < n {
		l = append(l, segment{strings.Repeat(" ", n-w), style})
	}
	return l
}

func (h *Help) item(help keybind.Help) line {
	var l line
	if help.Key != "" {
		l = append(l, segment{help.Key, h.Styles.KeyStyle})
	}
	if help.Key != "" && help.Desc != "" {
		l = append(l, segment{" ", h.Styles.DescStyle})
	}
	if help.Desc != "" {
		l = append(l, segment{help.Desc, h.Styles.DescStyle})
	}
	return l
}

// withEllipsis appends the ellipsis marker if it fits in maxWidth.
func (h *Help) withEllipsis(l line, maxWidth int) line {
	if h.ellipsis == "" {
		return l
	}
	tail := line{{" " + h.ellipsis, h.Styles.EllipsisStyle}}
	if maxWidth > 0 && l.width()+tail.width() > maxWidth {
		return l
	}
	return append(l, tail...)
}

func separator(text string) string {
	if text == "" {
		return " "
	}
	return text
}

// shortLine joins enabled bindings until the next one would not fit.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	sep := segment{separator(h.shortSeparator), h.Styles.SeparatorStyle}
	var out line
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		item := h.item(kb.Help())
		if len(item) == 0 {
			continue
		}
		next := append(line(nil), out...)
		if len(next) > 0 {
			next = append(next, sep)
		}
		next = append(next, item...)
		if maxWidth > 0 && next.width() > maxWidth {
			if len(out) == 0 {
				return nil
			}
			return h.withEllipsis(out, maxWidth)
		}
		out = next
	}
	return out
}

type column struct {
	entries  []keybind.Help
	keyWidth int
	width    int
}

func (h *Help) columns(groups [][]keybind.Keybind) []column {
	var columns []column
	for _, group := range groups {
		var c column
		for _, kb := range group {
			help := kb.Help()
			if !kb.Enabled() || (help.Key == "" && help.Desc == "") {
				continue
			}
			c.entries = append(c.entries, help)
			c.keyWidth = max(c.keyWidth, rangeslider.TaggedStringWidth(help.Key))
		}
		if len(c.entries) == 0 {
			continue
		}
		for _, e := range c.entries {
			c.width = max(c.width, h.entry(c, e).width())
		}
		columns = append(columns, c)
	}
	return columns
}

// entry renders one binding with its key padded to the column's key width.
func (h *Help) entry(c column, e keybind.Help) line {
	l := line{{e.Key, h.Styles.KeyStyle}}.pad(c.keyWidth, h.Styles.KeyStyle)
	if e.Desc != "" {
		l = append(l, segment{" " + e.Desc, h.Styles.DescStyle})
	}
	return l
}

// fullLines lays out groups as columns from left to right, dropping the
// columns that do not fit.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []line {
	columns := h.columns(groups)
	if len(columns) == 0 {
		return nil
	}

	sep := separator(h.fullSeparator)
	sepWidth := rangeslider.TaggedStringWidth(sep)
	included, total := 0, 0
	for i, c := range columns {
		w := c.width
		if i > 0 {
			w += sepWidth
		}
		if maxWidth > 0 && total+w > maxWidth {
			break
		}
		included++
		total += w
	}
	if included == 0 {
		return []line{{{h.ellipsis, h.Styles.EllipsisStyle}}}
	}

	rows := 0
	for _, c := range columns[:included] {
		rows = max(rows, len(c.entries))
	}
	lines := make([]line, rows)
	for row := range lines {
		var l line
		for i, c := range columns[:included] {
			if i > 0 {
				l = append(l, segment{sep, h.Styles.SeparatorStyle})
			}
			start := l.width()
			if row < len(c.entries) {
				l = append(l, h.entry(c, c.entries[row])...)
			}
			// Pad all but the last column so separators stay aligned.
			if i < included-1 {
				l = l.pad(start+c.width, h.Styles.DescStyle)
			}
		}
		lines[row] = l
	}
	if included < len(columns) {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}
