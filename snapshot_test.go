package spinwheel

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotScreenPut(t *testing.T) {
	screen := NewSnapshotScreen(6, 2)
	width, height := screen.Size()
	assert.Equal(t, 6, width)
	assert.Equal(t, 2, height)

	bold := tcell.StyleDefault.Bold(true)
	screen.PutStrStyled(1, 0, "ab", bold)
	assert.Equal(t, " ab", screen.Line(0))
	assert.Equal(t, bold, screen.StyleAt(1, 0))

	str, _, w := screen.Get(0, 0)
	assert.Equal(t, " ", str)
	assert.Equal(t, 1, w)

	// Off-screen writes are dropped.
	screen.PutStr(-1, 0, "xyz")
	screen.PutStr(0, 5, "xyz")
	assert.Equal(t, "yzb", screen.Line(0))
	assert.Equal(t, "", screen.Line(5))
}

func TestSnapshotScreenWideGraphemes(t *testing.T) {
	screen := NewSnapshotScreen(4, 1)
	screen.PutStr(0, 0, "世a")
	assert.Equal(t, "世a", screen.Line(0))
	_, _, w := screen.Get(0, 0)
	assert.Equal(t, 2, w)

	// Overwriting the lead clears the tail.
	screen.PutStr(0, 0, "b")
	assert.Equal(t, "b a", screen.Line(0))

	// A wide grapheme does not fit into the last column.
	screen.PutStr(3, 0, "世")
	assert.Equal(t, "b a", screen.Line(0))
}

func TestSnapshotScreenFill(t *testing.T) {
	screen := NewSnapshotScreen(3, 2)
	screen.Fill('.', tcell.StyleDefault)
	assert.Equal(t, "...\n...", screen.String())
	screen.Clear()
	assert.Equal(t, "\n", screen.String())
}

func TestSnapshot(t *testing.T) {
	column := NewColumn().
		AddItem(NewTextItem("top"), 1, 0, false).
		AddItem(NewTextItem("bottom"), 1, 0, false)
	assert.Equal(t, "   top\n bottom\n", Snapshot(column, 8, 3))
}
