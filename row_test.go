package spinwheel

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLayout(t *testing.T) {
	fixed, small, large := NewBox(), NewBox(), NewBox()
	row := NewRow().
		AddItem(fixed, 3, 0, false).
		AddItem(small, 0, 1, false).
		AddItem(large, 0, 2, false)
	assert.Equal(t, []int{3, 3, 6}, row.layout(12))

	row.SetRect(0, 0, 12, 2)
	row.Draw(NewSnapshotScreen(12, 2))
	x, _, width, height := large.GetRect()
	assert.Equal(t, 6, x)
	assert.Equal(t, 6, width)
	assert.Equal(t, 2, height)

	// Fixed sizes win when space runs out.
	assert.Equal(t, []int{3, 0, 0}, row.layout(2))
}

func TestColumnLayout(t *testing.T) {
	top, bottom := NewBox(), NewBox()
	column := NewColumn().
		AddItem(top, 1, 0, false).
		AddItem(bottom, 0, 1, false)
	column.SetRect(2, 3, 10, 6)
	column.Draw(NewSnapshotScreen(20, 20))

	x, y, width, height := bottom.GetRect()
	assert.Equal(t, []int{2, 4, 10, 5}, []int{x, y, width, height})
}

func TestRowResizeItem(t *testing.T) {
	first, second := NewBox(), NewBox()
	row := NewRow().AddItem(first, 0, 1, false).AddItem(second, 0, 1, false)
	assert.Equal(t, []int{5, 5}, row.layout(10))

	row.MarkClean()
	row.ResizeItem(second, 2, 0)
	assert.True(t, row.IsDirty())
	assert.Equal(t, []int{8, 2}, row.layout(10))

	row.MarkClean()
	row.ResizeItem(second, 2, 0)
	assert.False(t, row.IsDirty())
}

func TestRowRemoveItem(t *testing.T) {
	first, second := NewBox(), NewBox()
	row := NewRow().AddItem(first, 0, 1, false).AddItem(second, 0, 1, false)
	row.RemoveItem(first)
	require.Equal(t, 1, row.GetItemCount())
	assert.Equal(t, Primitive(second), row.GetItem(0))

	row.Clear()
	assert.Zero(t, row.GetItemCount())
}

func TestRowSeparators(t *testing.T) {
	row := NewRow().
		AddItem(NewBox(), 0, 1, false).
		AddItem(NewBox(), 0, 1, false).
		SetSeparators(true)
	row.SetBorders(BordersAll)

	screen := NewSnapshotScreen(13, 3)
	row.SetRect(0, 0, 13, 3)
	row.Draw(screen)

	str, _, _ := screen.Get(6, 1)
	assert.Equal(t, BoxDrawingsLightVertical, str)
	str, _, _ = screen.Get(6, 0)
	assert.Equal(t, BoxDrawingsLightDownAndHorizontal, str)
	str, _, _ = screen.Get(6, 2)
	assert.Equal(t, BoxDrawingsLightUpAndHorizontal, str)
}

func TestRowFocus(t *testing.T) {
	label := NewTextItem("label")
	first, second := NewButton("One"), NewButton("Two")
	row := NewRow().
		AddItem(label, 0, 1, false).
		AddItem(first, 0, 1, true).
		AddItem(second, 0, 1, true)

	app := NewApplication().SetRoot(row)
	assert.Equal(t, Primitive(first), app.GetFocus())
	assert.True(t, row.HasFocus())

	tab := tcell.NewEventKey(tcell.KeyTab, "", tcell.ModNone)
	assert.Equal(t, SetFocusCommand{Target: second}, row.InputHandler(tab))

	backtab := tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone)
	assert.Equal(t, SetFocusCommand{Target: second}, row.InputHandler(backtab))

	app.SetFocus(second)
	assert.Equal(t, SetFocusCommand{Target: first}, row.InputHandler(tab))
	assert.False(t, first.HasFocus())
}

func TestRowForwardsKeysToFocusedChild(t *testing.T) {
	var selected bool
	button := NewButton("OK").SetSelectedFunc(func() Command {
		selected = true
		return nil
	})
	row := NewRow().AddItem(button, 0, 1, true)
	NewApplication().SetRoot(row)

	cmd := row.InputHandler(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.True(t, selected)
}

func TestRowMouse(t *testing.T) {
	first, second := NewButton("One"), NewButton("Two")
	row := NewRow().AddItem(first, 0, 1, true).AddItem(second, 0, 1, true)
	row.SetRect(0, 0, 20, 1)
	row.Draw(NewSnapshotScreen(20, 1))

	_, cmd := row.MouseHandler(MouseLeftDown, tcell.NewEventMouse(15, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, SetFocusCommand{Target: second}, cmd)

	capture, cmd := row.MouseHandler(MouseLeftDown, tcell.NewEventMouse(30, 0, tcell.Button1, tcell.ModNone))
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
}
