package spinwheel

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestButtonDraw(t *testing.T) {
	button := NewButton("Mix")
	screen := NewSnapshotScreen(9, 1)
	button.SetRect(0, 0, 9, 1)
	button.Draw(screen)

	assert.Equal(t, "   Mix", screen.Line(0))
	assert.Equal(t, button.style, screen.StyleAt(3, 0))

	button.Focus(nil)
	button.Draw(screen)
	assert.Equal(t, button.activatedStyle, screen.StyleAt(3, 0))

	button.SetDisabled(true).Draw(screen)
	assert.Equal(t, button.disabledStyle, screen.StyleAt(3, 0))
}

func TestButtonSelect(t *testing.T) {
	var count int
	button := NewButton("Mix").SetSelectedFunc(func() Command {
		count++
		return QuitCommand{}
	})
	enter := tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone)

	assert.Equal(t, BatchCommand{RedrawCommand{}, QuitCommand{}}, button.InputHandler(enter))
	assert.Equal(t, 1, count)

	button.SetRect(0, 0, 7, 1)
	_, cmd := button.MouseHandler(MouseLeftClick, tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, BatchCommand{RedrawCommand{}, QuitCommand{}}, cmd)
	assert.Equal(t, 2, count)

	_, cmd = button.MouseHandler(MouseLeftDown, tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, SetFocusCommand{Target: button}, cmd)

	button.SetDisabled(true)
	assert.Nil(t, button.InputHandler(enter))
	_, cmd = button.MouseHandler(MouseLeftClick, tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, count)
}

func TestButtonExit(t *testing.T) {
	var keys []tcell.Key
	button := NewButton("Mix").SetExitFunc(func(key tcell.Key) Command {
		keys = append(keys, key)
		return ConsumeEventCommand{}
	})

	for _, key := range []tcell.Key{tcell.KeyTab, tcell.KeyBacktab, tcell.KeyEscape} {
		assert.Equal(t, ConsumeEventCommand{}, button.InputHandler(tcell.NewEventKey(key, "", tcell.ModNone)))
	}
	assert.Equal(t, []tcell.Key{tcell.KeyTab, tcell.KeyBacktab, tcell.KeyEscape}, keys)
	assert.Nil(t, button.InputHandler(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone)))
}

func TestButtonLabel(t *testing.T) {
	button := NewButton("Mix")
	button.MarkClean()
	button.SetLabel("Mix")
	assert.False(t, button.IsDirty())
	button.SetLabel("Spin")
	assert.True(t, button.IsDirty())
	assert.Equal(t, "Spin", button.GetLabel())
}

func TestButtonStyles(t *testing.T) {
	activated := tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Bold(true)
	disabled := tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Italic(true)
	button := NewButton("Mix")
	screen := NewSnapshotScreen(9, 1)
	button.SetRect(0, 0, 9, 1)

	button.MarkClean()
	button.SetActivatedStyle(activated)
	assert.True(t, button.IsDirty())
	button.MarkClean()
	button.SetActivatedStyle(activated)
	assert.False(t, button.IsDirty())

	button.Focus(nil)
	button.Draw(screen)
	assert.Equal(t, activated, screen.StyleAt(3, 0))

	button.SetDisabledStyle(disabled)
	button.SetDisabled(true).Draw(screen)
	assert.Equal(t, disabled, screen.StyleAt(3, 0))
}
