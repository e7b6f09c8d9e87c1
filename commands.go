package rangeslider

// Command is a side effect requested by a primitive while handling input.
// Commands are executed by the Application event loop.
type Command any

// BatchCommand groups multiple commands into one.
type BatchCommand []Command

// AppendCommand merges next into current, flattening nested batches.
func AppendCommand(current Command, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}

	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if b, ok := c.(BatchCommand); ok {
			batch = append(batch, b...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// SetFocusCommand moves keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// QuitCommand stops the application event loop.
type QuitCommand struct{}

// SetTitleCommand sets the terminal title.
type SetTitleCommand string
