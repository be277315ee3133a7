package spinwheel

import (
	"strings"
	"testing"
	"time"

	"github.com/ayn2op/spinwheel/wheel"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var letters = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

// newTestWheel returns a drawn 10x5 wheel view of letters showing one item
// per row.
func newTestWheel(t *testing.T, cyclic bool) (*WheelView, *SnapshotScreen, *testClock) {
	t.Helper()
	clock := newTestClock()
	v := NewWheelView(wheel.Config{VisibleItems: 5, Cyclic: cyclic, Clock: clock.Now}).
		SetSource(wheel.NewStringSource(letters...))
	screen := draw(v, 10, 5)
	return v, screen, clock
}

func draw(p Primitive, width, height int) *SnapshotScreen {
	screen := NewSnapshotScreen(width, height)
	p.SetRect(0, 0, width, height)
	p.Draw(screen)
	return screen
}

// settleWheel animates v until it stops.
func settleWheel(t *testing.T, v *WheelView, clock *testClock) {
	t.Helper()
	for range 50 {
		clock.Advance(100 * time.Millisecond)
		if !v.Animate(clock.Now()) {
			return
		}
	}
	t.Fatal("wheel did not settle")
}

func rows(screen *SnapshotScreen) []string {
	_, height := screen.Size()
	out := make([]string, height)
	for y := range out {
		out[y] = strings.TrimSpace(screen.Line(y))
	}
	return out
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, "", tcell.ModNone)
}

func runeKey(s string) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, s, tcell.ModNone)
}

func mouse(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func hasAnimate(cmd Command, target Animator) bool {
	switch c := cmd.(type) {
	case AnimateCommand:
		return c.Target == target
	case BatchCommand:
		for _, item := range c {
			if hasAnimate(item, target) {
				return true
			}
		}
	}
	return false
}

func TestWheelViewCentresCurrentItem(t *testing.T) {
	v, screen, _ := newTestWheel(t, false)
	assert.Equal(t, []string{"", "", "a", "b", "c"}, rows(screen))

	v.SetCurrentItem(5, false)
	screen = draw(v, 10, 5)
	assert.Equal(t, []string{"d", "e", "f", "g", "h"}, rows(screen))

	v.SetCurrentItem(9, false)
	screen = draw(v, 10, 5)
	assert.Equal(t, []string{"h", "i", "j", "", ""}, rows(screen))
}

func TestWheelViewCyclicWraps(t *testing.T) {
	v, screen, _ := newTestWheel(t, true)
	assert.Equal(t, []string{"i", "j", "a", "b", "c"}, rows(screen))

	v.SetCurrentItem(-1, false)
	assert.Equal(t, 9, v.CurrentItem())
	screen = draw(v, 10, 5)
	assert.Equal(t, []string{"h", "i", "j", "a", "b"}, rows(screen))
}

func TestWheelViewHorizontal(t *testing.T) {
	clock := newTestClock()
	v := NewWheelView(wheel.Config{VisibleItems: 5, Clock: clock.Now}).
		SetSource(wheel.NewStringSource(letters...)).
		SetHorizontal(true)
	require.True(t, v.IsHorizontal())

	// Five items of three cells each.
	screen := draw(v, 15, 1)
	assert.Equal(t, "a  b  c", strings.TrimSpace(screen.Line(0)))
}

func TestWheelViewItemSize(t *testing.T) {
	v, _, _ := newTestWheel(t, false)
	v.SetItemSize(2).SetCurrentItem(3, false)

	// Each item takes two rows and its text sits on the lower one.
	screen := draw(v, 10, 6)
	assert.Equal(t, []string{"", "c", "", "d", "", "e"}, rows(screen))
}

func TestWheelViewSelectionStyle(t *testing.T) {
	v, screen, _ := newTestWheel(t, false)
	v.SetShowDividers(false)

	col := strings.Index(screen.Line(2), "a")
	require.GreaterOrEqual(t, col, 0)
	selected := screen.StyleAt(col, 2)
	assert.Equal(t, Styles.SelectorTextColor, selected.GetForeground())
	assert.Equal(t, Styles.SelectorBackgroundColor, selected.GetBackground())

	// Neighbours are dimmed, the rest fades into the background.
	plain := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor)
	assert.NotEqual(t, plain, screen.StyleAt(col, 3))
	assert.Equal(t, Styles.PrimitiveBackgroundColor, screen.StyleAt(col, 4).GetForeground())
}

func TestWheelViewDividers(t *testing.T) {
	v, _, _ := newTestWheel(t, false)
	v.SetShowDividers(true)
	screen := draw(v, 10, 5)

	line := []rune(screen.Line(2))
	require.Len(t, line, 10)
	assert.Equal(t, SemigraphicsRightPointingTriangle, string(line[0]))
	assert.Equal(t, SemigraphicsLeftPointingTriangle, string(line[9]))
	assert.NotContains(t, screen.Line(1), SemigraphicsRightPointingTriangle)
}

func TestWheelViewKeysScroll(t *testing.T) {
	v, _, clock := newTestWheel(t, false)

	cmd := v.InputHandler(key(tcell.KeyDown))
	assert.True(t, hasAnimate(cmd, v))
	assert.True(t, v.IsAnimating())

	settleWheel(t, v, clock)
	assert.Equal(t, 1, v.CurrentItem())
	assert.False(t, v.IsAnimating())

	v.InputHandler(key(tcell.KeyEnd))
	settleWheel(t, v, clock)
	assert.Equal(t, 9, v.CurrentItem())

	v.InputHandler(key(tcell.KeyPgUp))
	settleWheel(t, v, clock)
	assert.Equal(t, 5, v.CurrentItem())

	v.InputHandler(key(tcell.KeyHome))
	settleWheel(t, v, clock)
	assert.Equal(t, 0, v.CurrentItem())

	// Scrolling before the first item stops at it.
	v.InputHandler(key(tcell.KeyUp))
	settleWheel(t, v, clock)
	assert.Equal(t, 0, v.CurrentItem())
}

func TestWheelViewSelectorFades(t *testing.T) {
	v, _, clock := newTestWheel(t, false)
	v.InputHandler(key(tcell.KeyDown))

	clock.Advance(time.Second)
	assert.True(t, v.Animate(clock.Now()), "fade still running")
	assert.Equal(t, 1, v.CurrentItem())

	clock.Advance(SelectorFadeDuration)
	assert.False(t, v.Animate(clock.Now()))
}

func TestWheelViewSelect(t *testing.T) {
	v, _, _ := newTestWheel(t, false)
	v.SetCurrentItem(4, false)

	var got int
	v.SetSelectedFunc(func(index int) Command {
		got = index
		return QuitCommand{}
	})
	cmd := v.InputHandler(key(tcell.KeyEnter))
	assert.Equal(t, QuitCommand{}, cmd)
	assert.Equal(t, 4, got)
}

func TestWheelViewCopy(t *testing.T) {
	v, _, _ := newTestWheel(t, false)
	v.SetCurrentItem(2, false)

	cmd := v.InputHandler(tcell.NewEventKey(tcell.KeyRune, "y", tcell.ModCtrl))
	assert.Equal(t, SetClipboardCommand("c"), cmd)
	assert.Empty(t, v.Query())
}

func TestWheelViewTypeToFind(t *testing.T) {
	clock := newTestClock()
	v := NewWheelView(wheel.Config{VisibleItems: 3, Clock: clock.Now}).
		SetSource(wheel.NewStringSource("apple", "banana", "cherry", "date"))
	draw(v, 12, 3)

	cmd := v.InputHandler(runeKey("c"))
	assert.True(t, hasAnimate(cmd, v))
	settleWheel(t, v, clock)
	assert.Equal(t, 2, v.CurrentItem())
	assert.Equal(t, "c", v.Query())

	v.InputHandler(runeKey("h"))
	assert.Equal(t, "ch", v.Query())

	v.InputHandler(key(tcell.KeyBackspace2))
	assert.Equal(t, "c", v.Query())

	screen := draw(v, 12, 3)
	assert.True(t, strings.HasSuffix(screen.Line(2), "/c"))

	cmd = v.InputHandler(key(tcell.KeyEscape))
	assert.Equal(t, ConsumeEventCommand{}, cmd)
	assert.Empty(t, v.Query())
	assert.Nil(t, v.InputHandler(key(tcell.KeyEscape)))
}

func TestWheelViewPaste(t *testing.T) {
	clock := newTestClock()
	v := NewWheelView(wheel.Config{VisibleItems: 3, Clock: clock.Now}).
		SetSource(wheel.NewStringSource("apple", "banana", "cherry", "date"))
	draw(v, 12, 3)

	v.PasteHandler("nan")
	settleWheel(t, v, clock)
	assert.Equal(t, 1, v.CurrentItem())
	assert.Equal(t, "nan", v.Query())

	// A new adapter drops the query.
	v.SetSource(wheel.NewStringSource("x"))
	assert.Empty(t, v.Query())
}

func TestWheelViewRunesWithoutTextSource(t *testing.T) {
	clock := newTestClock()
	v := NewWheelView(wheel.Config{Clock: clock.Now})
	assert.Nil(t, v.InputHandler(runeKey("a")))
	_, ok := v.CurrentText()
	assert.False(t, ok)
}

func TestWheelViewDrag(t *testing.T) {
	v, _, clock := newTestWheel(t, false)

	capture, cmd := v.MouseHandler(MouseLeftDown, mouse(5, 2))
	assert.Equal(t, v, capture)
	assert.NotNil(t, cmd)

	// Dragging two rows up brings the item two rows down into the centre.
	capture, _ = v.MouseHandler(MouseMove, mouse(5, 0))
	assert.Equal(t, v, capture)
	assert.Equal(t, 2, v.CurrentItem())
	assert.True(t, v.Wheel().IsScrolling())

	clock.Advance(time.Second)
	capture, _ = v.MouseHandler(MouseLeftUp, mouse(5, 0))
	assert.Nil(t, capture)
	settleWheel(t, v, clock)
	assert.Equal(t, 2, v.CurrentItem())
	assert.Zero(t, v.Wheel().ScrollingOffset())
}

func TestWheelViewClick(t *testing.T) {
	v, _, clock := newTestWheel(t, false)

	v.MouseHandler(MouseLeftDown, mouse(5, 4))
	_, cmd := v.MouseHandler(MouseLeftUp, mouse(5, 4))
	assert.True(t, hasAnimate(cmd, v))
	settleWheel(t, v, clock)
	assert.Equal(t, 2, v.CurrentItem())

	// Tapping the current item does nothing.
	v.MouseHandler(MouseLeftDown, mouse(5, 2))
	v.MouseHandler(MouseLeftUp, mouse(5, 2))
	assert.False(t, v.Wheel().IsAnimating())
	assert.Equal(t, 2, v.CurrentItem())
}

func TestWheelViewMouseWheel(t *testing.T) {
	v, _, clock := newTestWheel(t, false)

	_, cmd := v.MouseHandler(MouseScrollDown, mouse(5, 2))
	assert.True(t, hasAnimate(cmd, v))
	settleWheel(t, v, clock)
	assert.Equal(t, 1, v.CurrentItem())

	capture, cmd := v.MouseHandler(MouseScrollUp, mouse(50, 50))
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
}

func TestWheelViewChangedFunc(t *testing.T) {
	v, _, _ := newTestWheel(t, false)

	var changes [][2]int
	remove := v.SetChangedFunc(func(oldIndex, newIndex int) {
		changes = append(changes, [2]int{oldIndex, newIndex})
	})
	v.SetCurrentItem(3, false)
	remove()
	v.SetCurrentItem(4, false)

	assert.Equal(t, [][2]int{{0, 3}}, changes)
}

func TestWheelViewSourceChanges(t *testing.T) {
	clock := newTestClock()
	source, err := wheel.NewNumericSource(1, 31, "%02d")
	require.NoError(t, err)
	v := NewWheelView(wheel.Config{VisibleItems: 5, Clock: clock.Now}).SetSource(source)
	v.SetCurrentItem(30, false)

	require.NoError(t, source.SetMax(28))
	assert.Equal(t, 27, v.CurrentItem())
	text, ok := v.CurrentText()
	require.True(t, ok)
	assert.Equal(t, "28", text)
	assert.True(t, v.IsDirty())
}

func TestWheelViewHelp(t *testing.T) {
	v := NewWheelView(wheel.Config{})
	assert.Len(t, v.ShortHelp(), 4)

	var total int
	for _, group := range v.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 9, total)

	keyMap := v.KeyMap()
	keyMap.Copy.SetEnabled(false)
	v.SetKeyMap(keyMap)
	assert.False(t, v.KeyMap().Copy.Enabled())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, floorDiv(9, 8))
	assert.Equal(t, 0, floorDiv(0, 8))
	assert.Equal(t, -1, floorDiv(-1, 8))
	assert.Equal(t, -1, floorDiv(-8, 8))
	assert.Equal(t, -2, floorDiv(-9, 8))
}
