package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"":            "",
		" k ":         "k",
		"K":           "K",
		"Ctrl+K":      "ctrl+k",
		"control+a":   "ctrl+a",
		"ctrl+ctrl+a": "ctrl+a",
		"Escape":      "esc",
		"Return":      "enter",
		"PageUp":      "pgup",
		"pagedown":    "pgdn",
		"Backtab":     "shift+tab",
		"Rune[x]":     "x",
		"Ctrl-Y":      "ctrl+y",
		"F1":          "f1",
		"alt+":        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeKey(in), in)
	}
}

func TestEventKey(t *testing.T) {
	assert.Equal(t, "", EventKey(nil))
	assert.Equal(t, "down", EventKey(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)))
	assert.Equal(t, "shift+tab", EventKey(tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone)))
	assert.Equal(t, "k", EventKey(tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModNone)))
	assert.Equal(t, "alt+k", EventKey(tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModAlt)))
	assert.Equal(t, "ctrl+up", EventKey(tcell.NewEventKey(tcell.KeyUp, "", tcell.ModCtrl)))
	assert.Equal(t, "f1", EventKey(tcell.NewEventKey(tcell.KeyF1, "", tcell.ModNone)))
}

func TestMatches(t *testing.T) {
	next := NewKeybind(WithKeys("down", "j"), WithHelp("↓/j", "next"))
	prev := NewKeybind(WithKeys("up", "k"), WithHelp("↑/k", "previous"))
	down := tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)

	assert.True(t, Matches(down, next))
	assert.True(t, Matches(down, prev, next))
	assert.False(t, Matches(down, prev))
	assert.False(t, Matches(nil, next))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone), next))

	next.SetEnabled(false)
	assert.False(t, next.Enabled())
	assert.False(t, Matches(down, next))
}

func TestKeybind(t *testing.T) {
	kb := NewKeybind(WithKeys("Enter", " "), WithHelp("enter", "select"), WithDisabled())
	assert.Equal(t, []string{"enter"}, kb.Keys())
	assert.Equal(t, Help{Key: "enter", Desc: "select"}, kb.Help())
	assert.False(t, kb.Enabled())

	kb.SetEnabled(true)
	assert.True(t, kb.Enabled())

	kb.SetKeys()
	assert.False(t, kb.Enabled())

	kb.SetHelp("space", "pick")
	assert.Equal(t, "pick", kb.Help().Desc)
}
