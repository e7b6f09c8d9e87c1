package rangeslider

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/rangeslider/keybind"
)

// rowItem is one row of a Rows container.
type rowItem struct {
	item       Primitive
	height     int  // Fixed height, 0 for a proportional row.
	proportion int  // Share of the space left over by fixed rows.
	focusable  bool // Whether focus keys stop at this row.
}

// RowsKeybinds move the focus between the focusable rows.
type RowsKeybinds struct {
	Next     keybind.Keybind
	Previous keybind.Keybind
}

// DefaultRowsKeybinds moves the focus with the up and down keys.
func DefaultRowsKeybinds() RowsKeybinds {
	return RowsKeybinds{
		Next:     keybind.NewKeybind(keybind.WithKeys("down"), keybind.WithHelp("↓", "next")),
		Previous: keybind.NewKeybind(keybind.WithKeys("up"), keybind.WithHelp("↑", "previous")),
	}
}

// Rows stacks primitives vertically inside its inner rect. Rows have a fixed
// height or share the remaining space by proportion.
type Rows struct {
	*Box

	items []*rowItem

	// The last row that had the focus.
	focused int

	Keybinds RowsKeybinds

	// We keep a reference to the function which allows us to pass the focus
	// on to a row.
	setFocus func(p Primitive)
}

// NewRows returns an empty container.
func NewRows() *Rows {
	return &Rows{
		Box:      NewBox(),
		Keybinds: DefaultRowsKeybinds(),
	}
}

// AddItem appends a row. A fixedHeight > 0 pins the row's height, otherwise
// it gets proportion shares of the free space.
func (r *Rows) AddItem(item Primitive, fixedHeight, proportion int, focusable bool) *Rows {
	r.items = append(r.items, &rowItem{
		item:       item,
		height:     max(fixedHeight, 0),
		proportion: max(proportion, 0),
		focusable:  focusable,
	})
	bindDirtyParent(item, r.Box)
	r.MarkDirty()
	return r
}

// Clear removes all rows.
func (r *Rows) Clear() *Rows {
	for _, it := range r.items {
		unbindDirtyParent(it.item, r.Box)
	}
	r.items = nil
	r.focused = 0
	r.MarkDirty()
	return r
}

// ItemCount returns the number of rows.
func (r *Rows) ItemCount() int {
	return len(r.items)
}

// GetItem returns the primitive of row index.
func (r *Rows) GetItem(index int) Primitive {
	if index < 0 || index >= len(r.items) {
		return nil
	}
	return r.items[index].item
}

// layout assigns every row its rect within the inner rect.
func (r *Rows) layout() {
	x, y, width, height := r.GetInnerRect()

	free, shares := height, 0
	for _, it := range r.items {
		if it.height > 0 {
			free -= it.height
		} else {
			shares += it.proportion
		}
	}
	free = max(free, 0)

	bottom := y + height
	for _, it := range r.items {
		size := it.height
		if size == 0 && shares > 0 {
			size = free * it.proportion / shares
			free -= size
			shares -= it.proportion
		}
		size = max(min(size, bottom-y), 0)
		it.item.SetRect(x, y, width, size)
		y += size
	}
}

// Draw draws this primitive onto the screen.
func (r *Rows) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)
	r.layout()
	for _, it := range r.items {
		if _, _, w, h := it.item.GetRect(); w > 0 && h > 0 {
			it.item.Draw(screen)
		}
	}
}

// IsDirty returns whether this primitive or one of its rows needs redraw.
func (r *Rows) IsDirty() bool {
	if r.Box.IsDirty() {
		return true
	}
	for _, it := range r.items {
		if it.item.IsDirty() {
			return true
		}
	}
	return false
}

// MarkClean marks this primitive and all rows as clean.
func (r *Rows) MarkClean() {
	r.Box.MarkClean()
	for _, it := range r.items {
		it.item.MarkClean()
	}
}

// Animating reports whether any row wants another frame.
func (r *Rows) Animating() bool {
	for _, it := range r.items {
		if a, ok := it.item.(Animating); ok && a.Animating() {
			return true
		}
	}
	return false
}

// HasFocus returns whether this container or one of its rows has focus.
func (r *Rows) HasFocus() bool {
	return r.focusedIndex() >= 0 || r.Box.HasFocus()
}

func (r *Rows) focusedIndex() int {
	for index, it := range r.items {
		if it.item.HasFocus() {
			return index
		}
	}
	return -1
}

// Focus passes the focus on to the last focused row.
func (r *Rows) Focus(delegate func(p Primitive)) {
	if delegate == nil {
		return // We cannot delegate so we cannot focus.
	}
	r.setFocus = delegate
	if r.focused < len(r.items) && r.items[r.focused].focusable {
		delegate(r.items[r.focused].item)
		return
	}
	if next := r.nextFocusable(-1, 1); next >= 0 {
		r.focused = next
		delegate(r.items[next].item)
		return
	}
	r.Box.Focus(delegate)
}

// nextFocusable returns the first focusable row after from in direction dir,
// wrapping around, or -1.
func (r *Rows) nextFocusable(from, dir int) int {
	n := len(r.items)
	for i := 1; i <= n; i++ {
		index := ((from+dir*i)%n + n) % n
		if r.items[index].focusable {
			return index
		}
	}
	return -1
}

// InputHandler passes keys to the focused row. Keys it leaves unhandled may
// move the focus.
func (r *Rows) InputHandler(event *tcell.EventKey) Command {
	current := r.focusedIndex()
	if current >= 0 {
		if cmd := r.items[current].item.InputHandler(event); cmd != nil {
			return cmd
		}
	}
	return r.handleKey(keybind.EventString(event), current)
}

func (r *Rows) handleKey(key string, current int) Command {
	dir := 0
	switch {
	case keybind.MatchesKey(key, r.Keybinds.Next):
		dir = 1
	case keybind.MatchesKey(key, r.Keybinds.Previous):
		dir = -1
	default:
		return nil
	}
	if current < 0 {
		current = r.focused
	}
	next := r.nextFocusable(current, dir)
	if next < 0 || next == current {
		return nil
	}
	r.focused = next
	return SetFocusCommand{Target: r.items[next].item}
}

// MouseHandler passes mouse events to the row under the pointer.
func (r *Rows) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return r.handleMouse(action, event, x, y)
}

func (r *Rows) handleMouse(action MouseAction, event *tcell.EventMouse, x, y int) (Primitive, Command) {
	if !r.InRect(x, y) {
		return nil, nil
	}
	for index, it := range r.items {
		if !inRect(it.item, x, y) {
			continue
		}
		capture, cmd := it.item.MouseHandler(action, event)
		if it.focusable && (action == MouseLeftDown || capture != nil) {
			r.focused = index
		}
		return capture, cmd
	}
	return nil, nil
}

func inRect(p Primitive, x, y int) bool {
	rectX, rectY, width, height := p.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}
