// Package demo builds the sample screens of the spinwheel binary. Each demo
// arranges a few wheel views, a status line and a help bar in a Screen.
package demo

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/help"
	"github.com/ayn2op/spinwheel/keybind"
	"github.com/ayn2op/spinwheel/wheel"
	"github.com/gdamore/tcell/v3"
	"github.com/rs/zerolog"
)

// ErrUnknownDemo is returned by New for a name no demo is registered under.
var ErrUnknownDemo = errors.New("unknown demo")

// Options configure the wheels of a demo.
type Options struct {
	// Engine options shared by every wheel. VisibleItems is overridden by
	// demos that need a specific count.
	Engine      wheel.Config
	Horizontal  bool
	DimmedAlpha float64
	// BorderSet frames every wheel. The zero value keeps the plain set.
	BorderSet spinwheel.BorderSet
	// Logger receives engine events. The zero value discards them.
	Logger zerolog.Logger
	// Rand drives the slot machine. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Now is the initial time of the time and date demos. Defaults to
	// time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		o.Rand = rand.New(rand.NewPCG(seed, seed>>32))
	}
	if o.DimmedAlpha <= 0 {
		o.DimmedAlpha = spinwheel.DefaultDimmedAlpha
	}
	if o.BorderSet == (spinwheel.BorderSet{}) {
		o.BorderSet = spinwheel.BorderSetPlain
	}
	return o
}

type builder func(opts Options) (*Screen, error)

var registry = map[string]builder{
	"time":   newTimeDemo,
	"date":   newDateDemo,
	"slot":   newSlotDemo,
	"color":  newColorDemo,
	"cities": newCitiesDemo,
}

// DefaultName is the demo shown when none is requested.
const DefaultName = "time"

// Names returns the registered demo names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the demo registered under name.
func New(name string, opts Options) (*Screen, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	screen, err := build(opts.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("build %s demo: %w", name, err)
	}
	return screen, nil
}

// KeyMap holds the global keybinds of a Screen.
type KeyMap struct {
	Quit   keybind.Keybind
	Help   keybind.Keybind
	Redraw keybind.Keybind
}

// DefaultKeyMap returns the global keybinds.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   keybind.NewKeybind(keybind.WithKeys("ctrl+c", "ctrl+q"), keybind.WithHelp("ctrl+q", "quit")),
		Help:   keybind.NewKeybind(keybind.WithKeys("f1"), keybind.WithHelp("f1", "help")),
		Redraw: keybind.NewKeybind(keybind.WithKeys("ctrl+l"), keybind.WithHelp("ctrl+l", "redraw")),
	}
}

// Screen is the root primitive of a demo: a title, the demo content, a
// status line and a help bar stacked on top of each other.
type Screen struct {
	*spinwheel.Row

	opts    Options
	keyMap  KeyMap
	title   *spinwheel.TextItem
	content *spinwheel.Row
	status  *spinwheel.TextItem
	help    *help.Help
	wheels  []*spinwheel.WheelView
}

func newScreen(title string, opts Options) *Screen {
	s := &Screen{
		Row:    spinwheel.NewColumn(),
		opts:   opts,
		keyMap: DefaultKeyMap(),
		title:  spinwheel.NewTextItem(title),
		status: spinwheel.NewTextItem(""),
		help:   help.New(),
	}
	s.title.SetTextStyle(tcell.StyleDefault.Foreground(spinwheel.Styles.TitleColor).Background(spinwheel.Styles.PrimitiveBackgroundColor).Bold(true))
	s.status.SetTextStyle(tcell.StyleDefault.Foreground(spinwheel.Styles.SecondaryTextColor).Background(spinwheel.Styles.PrimitiveBackgroundColor))
	s.help.SetKeyMap(s)

	if opts.Horizontal {
		s.content = spinwheel.NewColumn()
	} else {
		s.content = spinwheel.NewRow()
	}

	s.AddItem(s.title, 1, 0, false).
		AddItem(s.content, 0, 1, true).
		AddItem(s.status, 1, 0, false).
		AddItem(s.help, 1, 0, false)
	return s
}

// newWheel returns a bordered wheel view configured from the options.
func (s *Screen) newWheel(title string, source wheel.TextSource, visibleItems int) *spinwheel.WheelView {
	cfg := s.opts.Engine
	if visibleItems > 0 {
		cfg.VisibleItems = visibleItems
	}
	v := spinwheel.NewWheelView(cfg).
		SetHorizontal(s.opts.Horizontal).
		SetDimmedAlpha(s.opts.DimmedAlpha).
		SetLogger(s.opts.Logger.With().Str("wheel", title).Logger()).
		SetSource(source).
		SetShowDividers(true)
	v.SetBorders(spinwheel.BordersAll).SetBorderSet(s.opts.BorderSet).SetTitle(title)
	return v
}

// addWheel appends v to the content. A proportion of 0 gives the wheel a
// fixed size.
func (s *Screen) addWheel(v *spinwheel.WheelView, fixedSize, proportion int, focus bool) {
	s.wheels = append(s.wheels, v)
	s.content.AddItem(v, fixedSize, proportion, focus)
}

// fixedExtent returns the size of a fixed content item: width next to
// vertical wheels, height below horizontal ones.
func (s *Screen) fixedExtent(width, height int) int {
	if s.opts.Horizontal {
		return height
	}
	return width
}

// Wheels returns the wheel views of the demo in layout order.
func (s *Screen) Wheels() []*spinwheel.WheelView {
	return s.wheels
}

// Status returns the text of the status line.
func (s *Screen) Status() string {
	return s.status.GetText()
}

// SetStatus sets the text of the status line.
func (s *Screen) SetStatus(text string) {
	s.status.SetText(text)
}

// Help returns the help bar.
func (s *Screen) Help() *help.Help {
	return s.help
}

// ShortHelp returns the keybinds of the focused wheel followed by the global
// ones.
func (s *Screen) ShortHelp() []keybind.Keybind {
	var bindings []keybind.Keybind
	if v := s.focusedWheel(); v != nil {
		bindings = append(bindings, v.ShortHelp()...)
	}
	return append(bindings, s.keyMap.Help, s.keyMap.Quit)
}

// FullHelp returns the keybinds of the focused wheel and a column of global
// keybinds.
func (s *Screen) FullHelp() [][]keybind.Keybind {
	var groups [][]keybind.Keybind
	if v := s.focusedWheel(); v != nil {
		groups = append(groups, v.FullHelp()...)
	}
	return append(groups, []keybind.Keybind{s.keyMap.Help, s.keyMap.Redraw, s.keyMap.Quit})
}

func (s *Screen) focusedWheel() *spinwheel.WheelView {
	for _, v := range s.wheels {
		if v.HasFocus() {
			return v
		}
	}
	return nil
}

// Draw sizes the help bar for the current width and draws the screen.
func (s *Screen) Draw(screen tcell.Screen) {
	_, _, width, _ := s.GetInnerRect()
	s.ResizeItem(s.help, s.help.Height(width), 0)
	s.Row.Draw(screen)
}

// InputHandler handles the global keys before passing the event down to the
// focused wheel. Escape quits unless a child consumed it.
func (s *Screen) InputHandler(event *tcell.EventKey) spinwheel.Command {
	switch {
	case keybind.Matches(event, s.keyMap.Quit):
		return spinwheel.QuitCommand{}
	case keybind.Matches(event, s.keyMap.Help):
		s.help.SetShowAll(!s.help.ShowAll())
		return spinwheel.RedrawCommand{}
	case keybind.Matches(event, s.keyMap.Redraw):
		return spinwheel.SyncCommand{}
	}

	cmd := s.Row.InputHandler(event)
	if cmd == nil && event.Key() == tcell.KeyEscape {
		return spinwheel.QuitCommand{}
	}
	return cmd
}
