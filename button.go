package spinwheel

import (
	"github.com/gdamore/tcell/v3"
)

// Button is a labeled box that triggers an action when selected.
type Button struct {
	*Box

	// If set to true, the button cannot be activated.
	disabled bool

	label string

	style          tcell.Style // Not focused.
	activatedStyle tcell.Style // Focused.
	disabledStyle  tcell.Style

	// An optional function which is called when the button was selected. The
	// returned command is executed by the application.
	selected func() Command

	// An optional function which is called when the user leaves the button
	// with tab, backtab or escape.
	exit func(tcell.Key) Command
}

// NewButton returns a new button with the given label.
func NewButton(label string) *Button {
	box := NewBox()
	box.SetRect(0, 0, StringWidth(label)+4, 1)
	return &Button{
		Box:            box,
		label:          label,
		style:          tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		activatedStyle: tcell.StyleDefault.Background(Styles.PrimaryTextColor).Foreground(Styles.InverseTextColor),
		disabledStyle:  tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.ContrastSecondaryTextColor),
	}
}

// SetLabel sets the button text.
func (b *Button) SetLabel(label string) *Button {
	if b.label != label {
		b.label = label
		b.MarkDirty()
	}
	return b
}

// GetLabel returns the button text.
func (b *Button) GetLabel() string {
	return b.label
}

// SetStyle sets the style of the button used when it is not focused.
func (b *Button) SetStyle(style tcell.Style) *Button {
	if b.style != style {
		b.style = style
		b.MarkDirty()
	}
	return b
}

// SetActivatedStyle sets the style of the button used when it is focused.
func (b *Button) SetActivatedStyle(style tcell.Style) *Button {
	if b.activatedStyle != style {
		b.activatedStyle = style
		b.MarkDirty()
	}
	return b
}

// SetDisabledStyle sets the style of the button used when it is disabled.
func (b *Button) SetDisabledStyle(style tcell.Style) *Button {
	if b.disabledStyle != style {
		b.disabledStyle = style
		b.MarkDirty()
	}
	return b
}

// SetDisabled sets whether or not the button is disabled. Disabled buttons
// cannot be activated.
func (b *Button) SetDisabled(disabled bool) *Button {
	if b.disabled != disabled {
		b.disabled = disabled
		b.MarkDirty()
	}
	return b
}

// GetDisabled returns whether or not the button is disabled.
func (b *Button) GetDisabled() bool {
	return b.disabled
}

// SetSelectedFunc sets a handler which is called when the button was selected.
func (b *Button) SetSelectedFunc(handler func() Command) *Button {
	b.selected = handler
	return b
}

// SetExitFunc sets a handler which is called when the user leaves the button.
// The key is one of KeyEscape, KeyTab or KeyBacktab.
func (b *Button) SetExitFunc(handler func(key tcell.Key) Command) *Button {
	b.exit = handler
	return b
}

// Draw draws this primitive onto the screen.
func (b *Button) Draw(screen tcell.Screen) {
	style := b.style
	switch {
	case b.disabled:
		style = b.disabledStyle
	case b.HasFocus():
		style = b.activatedStyle
	}
	b.SetBackgroundColor(style.GetBackground())
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width > 0 && height > 0 {
		printWithStyle(screen, b.label, x, y+height/2, 0, width, AlignmentCenter, style, true)
	}
}

func (b *Button) selectCommand() Command {
	var cmd Command = RedrawCommand{}
	if b.selected != nil {
		cmd = AppendCommand(cmd, b.selected())
	}
	return cmd
}

// InputHandler returns the handler for this primitive.
func (b *Button) InputHandler(event *tcell.EventKey) Command {
	if b.disabled {
		return nil
	}

	switch key := event.Key(); key {
	case tcell.KeyEnter:
		return b.selectCommand()
	case tcell.KeyBacktab, tcell.KeyTab, tcell.KeyEscape:
		if b.exit != nil {
			return b.exit(key)
		}
	}
	return nil
}

// MouseHandler returns the mouse handler for this primitive.
func (b *Button) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if b.disabled || !b.InRect(event.Position()) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: b}
	case MouseLeftClick:
		return nil, b.selectCommand()
	}
	return nil, nil
}
