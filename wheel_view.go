package spinwheel

import (
	"time"

	"github.com/ayn2op/spinwheel/keybind"
	"github.com/ayn2op/spinwheel/wheel"
	"github.com/gdamore/tcell/v3"
	"github.com/rs/zerolog"
)

// UnitsPerCell is the number of wheel scroll units in one terminal cell.
// Drags and flings move the wheel in units, so items glide at sub-cell
// resolution before snapping.
const UnitsPerCell = 8

// SelectorFadeDuration is how long the wheel takes to dim again after
// scrolling finished.
const SelectorFadeDuration = 500 * time.Millisecond

// WheelKeyMap holds the keybinds of a WheelView.
type WheelKeyMap struct {
	Prev       keybind.Keybind
	Next       keybind.Keybind
	PagePrev   keybind.Keybind
	PageNext   keybind.Keybind
	First      keybind.Keybind
	Last       keybind.Keybind
	Select     keybind.Keybind
	ClearQuery keybind.Keybind
	Copy       keybind.Keybind
}

// DefaultWheelKeyMap returns the keybinds used by new wheel views.
func DefaultWheelKeyMap() WheelKeyMap {
	return WheelKeyMap{
		Prev:       keybind.NewKeybind(keybind.WithKeys("up", "left"), keybind.WithHelp("↑/←", "prev")),
		Next:       keybind.NewKeybind(keybind.WithKeys("down", "right"), keybind.WithHelp("↓/→", "next")),
		PagePrev:   keybind.NewKeybind(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page up")),
		PageNext:   keybind.NewKeybind(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page down")),
		First:      keybind.NewKeybind(keybind.WithKeys("home"), keybind.WithHelp("home", "first")),
		Last:       keybind.NewKeybind(keybind.WithKeys("end"), keybind.WithHelp("end", "last")),
		Select:     keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "select")),
		ClearQuery: keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "clear search")),
		Copy:       keybind.NewKeybind(keybind.WithKeys("ctrl+y"), keybind.WithHelp("ctrl+y", "copy")),
	}
}

// textSourcer is implemented by adapters backed by a text source, such as
// TextAdapter. Type-to-find and copying need it.
type textSourcer interface {
	Source() wheel.TextSource
}

// WheelView is a picker wheel. It lays out the visuals of a
// wheel.Wheel[Primitive] along its scroll axis, dims them away from the
// selected item and translates keys, mouse and paste into wheel operations.
//
// WheelView is an Animator: handlers return an AnimateCommand whenever the
// wheel starts moving, and the application drives it until it settles.
type WheelView struct {
	*Box

	wheel      *wheel.Wheel[Primitive]
	viewport   wheel.Viewport
	horizontal bool
	clock      func() time.Time

	// Extent of one item in cells. 0 divides the view by the visible items.
	itemSize int

	dimmedAlpha   float64
	selectedStyle tcell.Style
	showDividers  bool
	dividerStyle  tcell.Style
	// Brightness of the wheel away from the selected item: 1 while
	// scrolling, fading to 0 afterwards.
	selector wheel.Tween

	keyMap   WheelKeyMap
	query    string
	dragging bool

	// Called with the current item when the user selects it.
	selected func(index int) Command
}

// NewWheelView returns a vertical wheel view using the engine options in cfg.
func NewWheelView(cfg wheel.Config) *WheelView {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	v := &WheelView{
		Box:           NewBox(),
		clock:         cfg.Clock,
		dimmedAlpha:   DefaultDimmedAlpha,
		selectedStyle: tcell.StyleDefault.Foreground(Styles.SelectorTextColor).Background(Styles.SelectorBackgroundColor),
		dividerStyle:  tcell.StyleDefault.Foreground(Styles.DividerColor).Background(Styles.PrimitiveBackgroundColor),
		keyMap:        DefaultWheelKeyMap(),
	}
	v.selector.Interpolator = wheel.Decelerate

	v.wheel = wheel.New[Primitive](wheel.Vertical(&v.viewport), cfg)
	v.wheel.SetInvalidateFunc(v.MarkDirty)
	v.wheel.AddScrollingListener(wheel.ScrollingFuncs[Primitive]{
		Started: func(*wheel.Wheel[Primitive]) {
			v.selector.Start(1, 1, 0, v.clock())
		},
		Finished: func(*wheel.Wheel[Primitive]) {
			v.selector.Start(1, 0, SelectorFadeDuration, v.clock())
		},
	})
	v.wheel.AddClickingListener(wheel.ClickedFunc[Primitive](func(w *wheel.Wheel[Primitive], index int) {
		w.SetCurrentItem(index, true)
	}))
	return v
}

// Wheel returns the underlying engine, for listeners and direct control.
func (v *WheelView) Wheel() *wheel.Wheel[Primitive] {
	return v.wheel
}

// SetLogger sets the logger of the engine.
func (v *WheelView) SetLogger(logger zerolog.Logger) *WheelView {
	v.wheel.SetLogger(logger)
	return v
}

// SetAdapter sets the adapter producing the item visuals.
func (v *WheelView) SetAdapter(adapter wheel.Adapter[Primitive]) *WheelView {
	v.wheel.SetAdapter(adapter)
	v.query = ""
	v.MarkDirty()
	return v
}

// SetSource shows the items of a text source, wrapped in a TextAdapter.
func (v *WheelView) SetSource(source wheel.TextSource) *WheelView {
	return v.SetAdapter(NewTextAdapter(source))
}

// SetHorizontal switches between vertical (false) and horizontal (true)
// scrolling.
func (v *WheelView) SetHorizontal(horizontal bool) *WheelView {
	if v.horizontal == horizontal {
		return v
	}
	v.horizontal = horizontal
	if horizontal {
		v.wheel.SetOrientation(wheel.Horizontal(&v.viewport))
	} else {
		v.wheel.SetOrientation(wheel.Vertical(&v.viewport))
	}
	v.MarkDirty()
	return v
}

// IsHorizontal reports whether the wheel scrolls horizontally.
func (v *WheelView) IsHorizontal() bool {
	return v.horizontal
}

// SetItemSize fixes the extent of each item along the scroll axis, in cells.
// 0 divides the view evenly among the visible items.
func (v *WheelView) SetItemSize(cells int) *WheelView {
	cells = max(cells, 0)
	if v.itemSize != cells {
		v.itemSize = cells
		v.MarkDirty()
	}
	return v
}

// SetVisibleItems sets the number of items materialized around the current
// one.
func (v *WheelView) SetVisibleItems(count int) *WheelView {
	v.wheel.SetVisibleItems(count)
	v.MarkDirty()
	return v
}

// SetCyclic sets whether the wheel wraps around.
func (v *WheelView) SetCyclic(cyclic bool) *WheelView {
	v.wheel.SetCyclic(cyclic)
	v.MarkDirty()
	return v
}

// SetInterpolator sets the easing curve of programmatic scrolls.
func (v *WheelView) SetInterpolator(interpolator wheel.Interpolator) *WheelView {
	v.wheel.SetInterpolator(interpolator)
	return v
}

// SetDimmedAlpha sets the opacity, between 0 and 1, of the items next to the
// selected one while the wheel is at rest.
func (v *WheelView) SetDimmedAlpha(alpha float64) *WheelView {
	alpha = clampAlpha(alpha)
	if v.dimmedAlpha != alpha {
		v.dimmedAlpha = alpha
		v.MarkDirty()
	}
	return v
}

// SetSelectedStyle sets the style of the band behind the selected item.
func (v *WheelView) SetSelectedStyle(style tcell.Style) *WheelView {
	if v.selectedStyle != style {
		v.selectedStyle = style
		v.MarkDirty()
	}
	return v
}

// SetShowDividers sets whether markers are drawn at both ends of the
// selection band.
func (v *WheelView) SetShowDividers(show bool) *WheelView {
	if v.showDividers != show {
		v.showDividers = show
		v.MarkDirty()
	}
	return v
}

// SetDividerStyle sets the style of the selection band markers.
func (v *WheelView) SetDividerStyle(style tcell.Style) *WheelView {
	if v.dividerStyle != style {
		v.dividerStyle = style
		v.MarkDirty()
	}
	return v
}

// SetKeyMap replaces the keybinds.
func (v *WheelView) SetKeyMap(keyMap WheelKeyMap) *WheelView {
	v.keyMap = keyMap
	return v
}

// KeyMap returns the keybinds.
func (v *WheelView) KeyMap() WheelKeyMap {
	return v.keyMap
}

// SetSelectedFunc sets the handler called with the current item when the user
// presses enter. The returned command is executed by the application.
func (v *WheelView) SetSelectedFunc(handler func(index int) Command) *WheelView {
	v.selected = handler
	return v
}

// SetChangedFunc registers a handler called whenever the current item
// changes. It returns a function removing the handler.
func (v *WheelView) SetChangedFunc(handler func(oldIndex, newIndex int)) (remove func()) {
	return v.wheel.AddChangingListener(wheel.ChangedFunc[Primitive](func(_ *wheel.Wheel[Primitive], oldIndex, newIndex int) {
		handler(oldIndex, newIndex)
	}))
}

// CurrentItem returns the index of the selected item.
func (v *WheelView) CurrentItem() int {
	return v.wheel.CurrentItem()
}

// CurrentText returns the text of the selected item if the adapter is backed
// by a text source.
func (v *WheelView) CurrentText() (string, bool) {
	source, ok := v.textSource()
	if !ok || source.ItemsCount() == 0 {
		return "", false
	}
	return source.ItemText(v.wheel.CurrentItem())
}

// SetCurrentItem selects index. The returned command starts the animation
// of an animated change and must be executed by the application.
func (v *WheelView) SetCurrentItem(index int, animated bool) Command {
	v.wheel.SetCurrentItem(index, animated)
	return v.animateCommand(RedrawCommand{})
}

// Scroll scrolls by items over duration, 0 selecting the default duration.
// The returned command starts the animation.
func (v *WheelView) Scroll(items int, duration time.Duration) Command {
	v.wheel.Scroll(items, duration)
	return v.animateCommand(RedrawCommand{})
}

// StopScrolling cancels any animation of the wheel.
func (v *WheelView) StopScrolling() {
	v.wheel.StopScrolling()
}

// Query returns the current type-to-find query.
func (v *WheelView) Query() string {
	return v.query
}

// IsAnimating reports whether the view changes over time.
func (v *WheelView) IsAnimating() bool {
	return v.wheel.IsAnimating() || v.selector.Running()
}

// Animate advances the wheel and the selector fade to now.
func (v *WheelView) Animate(now time.Time) bool {
	v.wheel.Tick()
	v.selector.Value(now)
	v.MarkDirty()
	return v.IsAnimating()
}

// animateCommand appends an AnimateCommand to cmd while the view animates.
func (v *WheelView) animateCommand(cmd Command) Command {
	if v.IsAnimating() {
		return AppendCommand(cmd, AnimateCommand{Target: v})
	}
	return cmd
}

func (v *WheelView) textSource() (wheel.TextSource, bool) {
	sourcer, ok := v.wheel.Adapter().(textSourcer)
	if !ok {
		return nil, false
	}
	source := sourcer.Source()
	return source, source != nil
}

// layoutViewport copies the inner rect into the engine's viewport, in units.
func (v *WheelView) layoutViewport(width, height int) {
	v.viewport.Width = width * UnitsPerCell
	v.viewport.Height = height * UnitsPerCell
	v.viewport.ItemWidth, v.viewport.ItemHeight = 0, 0
	if v.horizontal {
		v.viewport.ItemWidth = v.itemSize * UnitsPerCell
	} else {
		v.viewport.ItemHeight = v.itemSize * UnitsPerCell
	}
}

// Draw draws this primitive onto the screen.
func (v *WheelView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	v.layoutViewport(width, height)

	adapter := v.wheel.Adapter()
	if adapter == nil || adapter.ItemsCount() == 0 {
		v.drawQuery(screen, x, y, width, height)
		return
	}
	v.wheel.RebuildItems()

	base := v.wheel.BaseDimension()
	itemDim := v.wheel.ItemDimension()
	axisStart, crossStart, crossSize := y, x, width
	if v.horizontal {
		axisStart, crossStart, crossSize = x, y, height
	}

	// Offset of the first materialized item so that the current item is
	// centred, shifted by the scrolling offset.
	top := (v.wheel.CurrentItem()-v.wheel.FirstItem())*itemDim + (itemDim-base)/2
	coeff := v.selector.Value(v.clock())
	background := v.GetBackgroundColor()

	out := &itemScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		restyle: func(cx, cy int, style tcell.Style) tcell.Style {
			pos := cy
			if v.horizontal {
				pos = cx
			}
			t := (float64(pos-axisStart) + 0.5) * UnitsPerCell / float64(base)
			if v.inSelection(t, itemDim, base) {
				return style.Foreground(v.selectedStyle.GetForeground()).Background(v.selectedStyle.GetBackground())
			}
			alpha := selectorGradient(t, float64(itemDim)/float64(base), v.wheel.VisibleItems(), v.dimmedAlpha, coeff)
			return dimStyle(style, background, alpha)
		},
	}

	for i, visual := range v.wheel.Layout().Visuals() {
		start := i*itemDim - top + v.wheel.ScrollingOffset()
		from := floorDiv(start, UnitsPerCell)
		size := max(floorDiv(start+itemDim, UnitsPerCell)-from, 1)
		if v.horizontal {
			visual.SetRect(axisStart+from, crossStart, size, crossSize)
		} else {
			visual.SetRect(crossStart, axisStart+from, crossSize, size)
		}
		visual.Draw(out)
	}

	if v.showDividers {
		v.drawDividers(screen, x, y, width, height, itemDim, base)
	}
	v.drawQuery(screen, x, y, width, height)
}

// inSelection reports whether t, a fraction of the viewport, lies within the
// band of the selected item.
func (v *WheelView) inSelection(t float64, itemDim, base int) bool {
	fraction := float64(itemDim) / float64(base)
	return t >= (1-fraction)/2 && t < (1+fraction)/2
}

// drawDividers marks both ends of the selection band.
func (v *WheelView) drawDividers(screen tcell.Screen, x, y, width, height, itemDim, base int) {
	if v.horizontal {
		for col := x; col < x+width; col++ {
			t := (float64(col-x) + 0.5) * UnitsPerCell / float64(base)
			if !v.inSelection(t, itemDim, base) {
				continue
			}
			screen.Put(col, y, SemigraphicsDownPointingTriangle, v.dividerStyle)
			if height > 1 {
				screen.Put(col, y+height-1, SemigraphicsUpPointingTriangle, v.dividerStyle)
			}
		}
		return
	}
	for row := y; row < y+height; row++ {
		t := (float64(row-y) + 0.5) * UnitsPerCell / float64(base)
		if !v.inSelection(t, itemDim, base) {
			continue
		}
		screen.Put(x, row, SemigraphicsRightPointingTriangle, v.dividerStyle)
		if width > 1 {
			screen.Put(x+width-1, row, SemigraphicsLeftPointingTriangle, v.dividerStyle)
		}
	}
}

// drawQuery shows the type-to-find query in the last row.
func (v *WheelView) drawQuery(screen tcell.Screen, x, y, width, height int) {
	if v.query == "" {
		return
	}
	text := truncateWidth("/"+v.query, width)
	style := tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Background(v.GetBackgroundColor())
	printWithStyle(screen, text, x, y+height-1, 0, width, AlignmentRight, style, false)
}

// pointer converts screen coordinates into viewport units at the centre of
// the cell.
func (v *WheelView) pointer(x, y int) (float64, float64) {
	innerX, innerY, _, _ := v.GetInnerRect()
	return float64((x-innerX)*UnitsPerCell + UnitsPerCell/2), float64((y-innerY)*UnitsPerCell + UnitsPerCell/2)
}

// InputHandler returns the handler for this primitive.
func (v *WheelView) InputHandler(event *tcell.EventKey) Command {
	page := max(v.wheel.VisibleItems()-1, 1)
	switch {
	case keybind.Matches(event, v.keyMap.Prev):
		v.wheel.Scroll(-1, 0)
	case keybind.Matches(event, v.keyMap.Next):
		v.wheel.Scroll(1, 0)
	case keybind.Matches(event, v.keyMap.PagePrev):
		v.wheel.Scroll(-page, 0)
	case keybind.Matches(event, v.keyMap.PageNext):
		v.wheel.Scroll(page, 0)
	case keybind.Matches(event, v.keyMap.First):
		v.wheel.SetCurrentItem(0, true)
	case keybind.Matches(event, v.keyMap.Last):
		if adapter := v.wheel.Adapter(); adapter != nil {
			v.wheel.SetCurrentItem(adapter.ItemsCount()-1, true)
		}
	case keybind.Matches(event, v.keyMap.Select):
		if v.selected == nil {
			return nil
		}
		return v.selected(v.wheel.CurrentItem())
	case keybind.Matches(event, v.keyMap.Copy):
		text, ok := v.CurrentText()
		if !ok {
			return nil
		}
		return SetClipboardCommand(text)
	case keybind.Matches(event, v.keyMap.ClearQuery):
		if v.query == "" {
			return nil
		}
		v.query = ""
		v.MarkDirty()
		return ConsumeEventCommand{}
	case event.Key() == tcell.KeyBackspace || event.Key() == tcell.KeyBackspace2:
		if v.query == "" {
			return nil
		}
		runes := []rune(v.query)
		v.query = string(runes[:len(runes)-1])
		v.find()
	case event.Key() == tcell.KeyRune && event.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0:
		if _, ok := v.textSource(); !ok {
			return nil
		}
		v.query += event.Str()
		v.find()
	default:
		return nil
	}
	v.MarkDirty()
	return v.animateCommand(RedrawCommand{})
}

// find selects the best match for the query.
func (v *WheelView) find() {
	source, ok := v.textSource()
	if !ok || v.query == "" {
		return
	}
	if index, ok := wheel.FindItem(source, v.query); ok {
		v.wheel.SetCurrentItem(index, true)
	}
}

// PasteHandler replaces the type-to-find query with the pasted text.
func (v *WheelView) PasteHandler(text string) Command {
	if _, ok := v.textSource(); !ok || text == "" {
		return nil
	}
	v.query = text
	v.find()
	v.MarkDirty()
	return v.animateCommand(RedrawCommand{})
}

// MouseHandler returns the mouse handler for this primitive.
func (v *WheelView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !v.dragging && !v.InInnerRect(x, y) {
		return nil, nil
	}
	px, py := v.pointer(x, y)

	switch action {
	case MouseLeftDown:
		v.dragging = true
		v.wheel.Press(px, py)
		return v, AppendCommand(SetFocusCommand{Target: v}, RedrawCommand{})
	case MouseMove:
		if !v.dragging {
			return nil, nil
		}
		v.wheel.Move(px, py)
		return v, RedrawCommand{}
	case MouseLeftUp:
		if !v.dragging {
			return nil, nil
		}
		v.dragging = false
		v.wheel.Release(px, py)
		return nil, v.animateCommand(RedrawCommand{})
	case MouseScrollUp, MouseScrollLeft:
		v.wheel.Scroll(-1, 0)
		return nil, v.animateCommand(RedrawCommand{})
	case MouseScrollDown, MouseScrollRight:
		v.wheel.Scroll(1, 0)
		return nil, v.animateCommand(RedrawCommand{})
	}
	if v.dragging {
		return v, nil
	}
	return nil, nil
}

// ShortHelp returns the keybinds shown in a one-line help bar.
func (v *WheelView) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{v.keyMap.Prev, v.keyMap.Next, v.keyMap.Select, v.keyMap.ClearQuery}
}

// FullHelp returns all keybinds in columns.
func (v *WheelView) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{v.keyMap.Prev, v.keyMap.Next, v.keyMap.PagePrev, v.keyMap.PageNext},
		{v.keyMap.First, v.keyMap.Last, v.keyMap.Select},
		{v.keyMap.ClearQuery, v.keyMap.Copy},
	}
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
