package rangeslider

import "github.com/gdamore/tcell/v3"

// Primitive is the interface of everything the Application can show.
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events when this primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. The returned capture primitive (if
	// non-nil) receives all follow-up mouse events until it returns nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command)

	// HasFocus determines if the primitive has focus. Containers return true
	// if one of their children has focus.
	HasFocus() bool
	// Focus is called by the application when the primitive receives focus.
	// Implementers may call delegate() to pass the focus on to a child.
	Focus(delegate func(p Primitive))
	// Blur is called by the application when the primitive loses focus.
	Blur()

	// IsDirty reports whether the primitive needs a redraw.
	IsDirty() bool
	// MarkClean is called after the primitive was drawn.
	MarkClean()
}

// Animating is implemented by primitives that want further frames after a
// draw, for example while a thumb eases toward its target.
type Animating interface {
	Animating() bool
}
