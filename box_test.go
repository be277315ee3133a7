package spinwheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxInnerRectWithPadding(t *testing.T) {
	box := NewBox().SetBorders(BordersAll)
	box.SetRect(0, 0, 10, 6)
	box.SetBorderPadding(1, 0, 2, 1)

	x, y, width, height := box.GetInnerRect()
	assert.Equal(t, []int{3, 2, 5, 3}, []int{x, y, width, height})

	box.MarkClean()
	box.SetBorderPadding(1, 0, 2, 1)
	assert.False(t, box.IsDirty())

	// Padding larger than the box clamps to an empty inner rect.
	box.SetBorderPadding(5, 5, 0, 0)
	assert.True(t, box.IsDirty())
	_, _, _, height = box.GetInnerRect()
	assert.Zero(t, height)
}

func TestBoxDontClear(t *testing.T) {
	screen := NewSnapshotScreen(6, 2)
	screen.PutStr(0, 0, "xxxxxx")

	box := NewBox().SetDontClear(true)
	box.SetRect(0, 0, 6, 2)
	box.Draw(screen)
	assert.Equal(t, "xxxxxx", screen.Line(0))

	box.SetDontClear(false)
	box.Draw(screen)
	assert.Equal(t, "", screen.Line(0))
}

func TestBoxTitleAlignment(t *testing.T) {
	tests := []struct {
		alignment Alignment
		want      string
	}{
		{AlignmentLeft, " ab"},
		{AlignmentCenter, "    ab"},
		{AlignmentRight, "       ab"},
	}
	for _, tt := range tests {
		screen := NewSnapshotScreen(10, 1)
		box := NewBox().SetTitle("ab").SetTitleAlignment(tt.alignment)
		box.SetRect(0, 0, 10, 1)
		box.Draw(screen)
		assert.Equal(t, tt.want, screen.Line(0), "alignment %v", tt.alignment)
	}

	box := NewBox().SetTitleAlignment(AlignmentLeft)
	box.MarkClean()
	box.SetTitleAlignment(AlignmentLeft)
	assert.False(t, box.IsDirty())
	box.SetTitleAlignment(AlignmentRight)
	assert.True(t, box.IsDirty())
}
