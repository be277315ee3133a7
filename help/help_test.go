package help

import (
	"strings"
	"testing"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/keybind"
	"github.com/stretchr/testify/assert"
)

type testKeyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k testKeyMap) ShortHelp() []keybind.Keybind   { return k.short }
func (k testKeyMap) FullHelp() [][]keybind.Keybind { return k.full }

func binding(key, desc string) keybind.Keybind {
	return keybind.NewKeybind(keybind.WithKeys(key), keybind.WithHelp(key, desc))
}

func TestShortHelpLine(t *testing.T) {
	h := New()
	bindings := []keybind.Keybind{
		binding("a", "alpha"),
		keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled()),
		binding("b", "beta"),
	}

	assert.Equal(t, "a alpha • b beta", h.ShortHelpLine(bindings, 0))
	assert.Equal(t, "a alpha …", h.ShortHelpLine(bindings, 12))
	assert.Equal(t, "", h.ShortHelpLine(bindings, 5))

	h.SetShortSeparator(" | ")
	assert.Equal(t, "a alpha | b beta", h.ShortHelpLine(bindings, 0))
}

func TestEllipsis(t *testing.T) {
	h := New().SetEllipsis("...")
	bindings := []keybind.Keybind{binding("a", "alpha"), binding("b", "beta")}
	assert.Equal(t, "a alpha ...", h.ShortHelpLine(bindings, 12))

	h.SetEllipsis("")
	assert.Equal(t, "a alpha", h.ShortHelpLine(bindings, 12))
	assert.Equal(t, []string{""}, h.FullHelpLines([][]keybind.Keybind{{binding("a", "alpha")}}, 3))
}

func TestFullHelpLines(t *testing.T) {
	h := New()
	groups := [][]keybind.Keybind{
		{binding("a", "alpha"), binding("bb", "beta")},
		{binding("c", "gamma")},
	}

	lines := h.FullHelpLines(groups, 0)
	assert.Len(t, lines, 2)
	assert.Equal(t, "a  alpha    c gamma", lines[0])
	assert.Equal(t, "bb beta", strings.TrimRight(lines[1], " "))

	assert.Equal(t, []string{"a  alpha …", "bb beta"}, h.FullHelpLines(groups, 10))
	assert.Equal(t, []string{"…"}, h.FullHelpLines(groups, 5))
	assert.Empty(t, h.FullHelpLines(nil, 0))
}

func TestHeight(t *testing.T) {
	h := New()
	assert.Zero(t, h.Height(80))

	h.SetKeyMap(testKeyMap{
		short: []keybind.Keybind{binding("a", "alpha")},
		full:  [][]keybind.Keybind{{binding("a", "alpha"), binding("b", "beta")}},
	})
	assert.Equal(t, 1, h.Height(80))

	h.SetShowAll(true)
	assert.True(t, h.ShowAll())
	assert.Equal(t, 2, h.Height(80))
}

func TestDraw(t *testing.T) {
	h := New().SetKeyMap(testKeyMap{
		short: []keybind.Keybind{binding("a", "alpha"), binding("b", "beta")},
		full:  [][]keybind.Keybind{{binding("a", "alpha")}, {binding("b", "beta")}},
	})

	screen := spinwheel.NewSnapshotScreen(20, 2)
	h.SetRect(0, 0, 20, 2)
	h.Draw(screen)
	assert.Equal(t, "a alpha • b beta", screen.Line(0))
	assert.Equal(t, h.Styles.ShortKeyStyle.GetForeground(), screen.StyleAt(0, 0).GetForeground())

	h.SetShowAll(true)
	h.Draw(screen)
	assert.Equal(t, "a alpha    b beta", screen.Line(0))
}
