package spinwheel

// Command is a side effect requested by a primitive during input handling.
// Commands are executed by the Application event loop.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand appends next to current and returns a merged command value.
// It flattens nested BatchCommand values.
func AppendCommand(current Command, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}

	var batch BatchCommand
	if c, ok := current.(BatchCommand); ok {
		batch = append(batch, c...)
	} else {
		batch = append(batch, current)
	}
	if n, ok := next.(BatchCommand); ok {
		batch = append(batch, n...)
	} else {
		batch = append(batch, next)
	}
	return batch
}

type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// AnimateCommand registers Target with the application's frame ticker. The
// ticker runs only while at least one animator is registered.
type AnimateCommand struct {
	Target Animator
}

// QuitCommand requests stopping the application event loop.
type QuitCommand struct{}

// SyncCommand requests a full re-sync of the terminal.
type SyncCommand struct{}

// SetTitleCommand requests updating the terminal title.
type SetTitleCommand string

// SetClipboardCommand copies text to the system clipboard where the terminal
// supports it.
type SetClipboardCommand string

// ConsumeEventCommand stops further propagation of the current input event.
type ConsumeEventCommand struct{}

// consumed reports whether cmd contains a ConsumeEventCommand.
func consumed(cmd Command) bool {
	switch c := cmd.(type) {
	case ConsumeEventCommand:
		return true
	case BatchCommand:
		for _, item := range c {
			if consumed(item) {
				return true
			}
		}
	}
	return false
}
