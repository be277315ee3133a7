// Package wheel implements the engine of a scrollable picker wheel: selection
// state, scroll physics, snapping, cyclic wraparound and recycling of item
// visuals. It is independent of any toolkit; hosts supply an Orientation, an
// Adapter producing visuals and a per-frame call to Tick.
package wheel

import (
	"time"

	"github.com/rs/zerolog"
)

// Phase is the interaction state of a wheel.
type Phase int

const (
	// PhaseIdle means no gesture or animation is active.
	PhaseIdle Phase = iota
	// PhaseDragging means a pointer is down.
	PhaseDragging
	// PhaseSettling means an inertial, programmatic or justify animation runs.
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	}
	return "unknown"
}

// State is a snapshot of a wheel's state.
type State struct {
	Phase              Phase
	CurrentItem        int
	ScrollingOffset    int
	FirstItem          int
	VisibleItems       int
	Cyclic             bool
	ScrollingPerformed bool
}

// Wheel is the picker engine for item visuals of type V.
type Wheel[V comparable] struct {
	orientation Orientation
	logger      zerolog.Logger
	invalidate  func()

	adapter  Adapter[V]
	observer *dataObserver[V]

	currentItem        int
	visibleItems       int
	cyclic             bool
	scrollingOffset    int
	scrollingPerformed bool

	firstItem int
	layout    ItemsLayout[V]
	recycler  Recycler[V]
	scroller  *Scroller

	changingListeners  listenerList[ChangingListener[V]]
	scrollingListeners listenerList[WheelScrollListener[V]]
	clickingListeners  listenerList[ClickingListener[V]]
}

// New returns a wheel measuring itself through orientation.
func New[V comparable](orientation Orientation, cfg Config) *Wheel[V] {
	cfg = cfg.withDefaults()
	w := &Wheel[V]{
		orientation:  orientation,
		logger:       zerolog.Nop(),
		visibleItems: cfg.VisibleItems,
		cyclic:       cfg.Cyclic,
	}
	w.observer = &dataObserver[V]{w: w}
	w.scroller = NewScroller(scrollerListener[V]{w: w}, cfg)
	return w
}

// SetLogger sets the logger receiving debug events.
func (w *Wheel[V]) SetLogger(logger zerolog.Logger) *Wheel[V] {
	w.logger = logger
	return w
}

// SetInvalidateFunc sets the function called whenever the wheel needs to be
// redrawn.
func (w *Wheel[V]) SetInvalidateFunc(fn func()) *Wheel[V] {
	w.invalidate = fn
	return w
}

func (w *Wheel[V]) requestRedraw() {
	if w.invalidate != nil {
		w.invalidate()
	}
}

// SetOrientation replaces the measurement source.
func (w *Wheel[V]) SetOrientation(orientation Orientation) *Wheel[V] {
	w.orientation = orientation
	w.InvalidateItemsLayout(false)
	return w
}

func (w *Wheel[V]) Orientation() Orientation {
	return w.orientation
}

// Adapter returns the current adapter, or nil.
func (w *Wheel[V]) Adapter() Adapter[V] {
	return w.adapter
}

// SetAdapter replaces the adapter. Any scrolling is stopped, all cached
// visuals are dropped and the current item is brought into the new range.
func (w *Wheel[V]) SetAdapter(adapter Adapter[V]) *Wheel[V] {
	if w.adapter != nil {
		w.adapter.UnregisterObserver(w.observer)
	}
	w.scroller.StopScrolling()
	w.adapter = adapter
	if w.adapter != nil {
		w.adapter.RegisterObserver(w.observer)
	}
	w.logger.Debug().Int("items", w.itemsCount()).Msg("adapter replaced")
	w.fitCurrentItem()
	w.InvalidateItemsLayout(true)
	return w
}

func (w *Wheel[V]) itemsCount() int {
	if w.adapter == nil {
		return 0
	}
	return w.adapter.ItemsCount()
}

// CurrentItem returns the index of the selected item.
func (w *Wheel[V]) CurrentItem() int {
	return w.currentItem
}

func (w *Wheel[V]) VisibleItems() int {
	return w.visibleItems
}

// SetVisibleItems sets the desired number of visible items. It takes effect at
// the next rebuild.
func (w *Wheel[V]) SetVisibleItems(count int) *Wheel[V] {
	if count < 1 {
		count = 1
	}
	w.visibleItems = count
	w.requestRedraw()
	return w
}

func (w *Wheel[V]) Cyclic() bool {
	return w.cyclic
}

// SetCyclic switches wraparound on or off. Cached visuals are dropped.
func (w *Wheel[V]) SetCyclic(cyclic bool) *Wheel[V] {
	if w.cyclic == cyclic {
		return w
	}
	w.cyclic = cyclic
	w.InvalidateItemsLayout(true)
	return w
}

// SetInterpolator sets the curve of programmatic scrolls.
func (w *Wheel[V]) SetInterpolator(interpolator Interpolator) *Wheel[V] {
	w.scroller.SetInterpolator(interpolator)
	return w
}

// ScrollingOffset returns the residual displacement not yet folded into the
// current item.
func (w *Wheel[V]) ScrollingOffset() int {
	return w.scrollingOffset
}

// IsScrolling reports whether a scrolling sequence is in progress.
func (w *Wheel[V]) IsScrolling() bool {
	return w.scrollingPerformed
}

// FirstItem returns the item index shown by the first materialized visual.
func (w *Wheel[V]) FirstItem() int {
	return w.firstItem
}

// Layout returns the materialized visuals.
func (w *Wheel[V]) Layout() *ItemsLayout[V] {
	return &w.layout
}

func (w *Wheel[V]) State() State {
	phase := PhaseIdle
	switch {
	case w.scroller.pressed:
		phase = PhaseDragging
	case w.scroller.IsAnimating():
		phase = PhaseSettling
	}
	return State{
		Phase:              phase,
		CurrentItem:        w.currentItem,
		ScrollingOffset:    w.scrollingOffset,
		FirstItem:          w.firstItem,
		VisibleItems:       w.visibleItems,
		Cyclic:             w.cyclic,
		ScrollingPerformed: w.scrollingPerformed,
	}
}

// BaseDimension returns the viewport extent along the scroll axis.
func (w *Wheel[V]) BaseDimension() int {
	return w.orientation.BaseDimension()
}

// ItemDimension returns the extent of one item slot, never less than 1.
func (w *Wheel[V]) ItemDimension() int {
	dim := w.orientation.ItemDimension()
	if dim <= 0 {
		dim = w.BaseDimension() / w.visibleItems
	}
	return max(dim, 1)
}

// IsValidItemIndex reports whether index names a real item. Every index is
// valid on a non-empty cyclic wheel.
func (w *Wheel[V]) IsValidItemIndex(index int) bool {
	count := w.itemsCount()
	return count > 0 && (w.cyclic || (index >= 0 && index < count))
}

func (w *Wheel[V]) normalize(index int) int {
	count := w.itemsCount()
	return ((index % count) + count) % count
}

// SetCurrentItem selects index. Out of range indices wrap on cyclic wheels and
// are ignored otherwise. An animated change scrolls the shorter way round a
// cyclic wheel. Animating to the current item re-centres it.
func (w *Wheel[V]) SetCurrentItem(index int, animated bool) {
	count := w.itemsCount()
	if count == 0 {
		return
	}
	if index < 0 || index >= count {
		if !w.cyclic {
			return
		}
		index = w.normalize(index)
	}
	if index == w.currentItem {
		if animated && w.scrollingOffset != 0 {
			w.Scroll(0, 0)
		}
		return
	}

	if animated {
		itemsToScroll := index - w.currentItem
		if w.cyclic {
			wrapped := count + min(index, w.currentItem) - max(index, w.currentItem)
			if wrapped < abs(itemsToScroll) {
				if itemsToScroll < 0 {
					itemsToScroll = wrapped
				} else {
					itemsToScroll = -wrapped
				}
			}
		}
		w.Scroll(itemsToScroll, 0)
		return
	}

	w.scrollingOffset = 0
	w.commitCurrentItem(index)
}

func (w *Wheel[V]) commitCurrentItem(index int) {
	old := w.currentItem
	w.currentItem = index
	w.changingListeners.each(func(l ChangingListener[V]) {
		l.OnChanged(w, old, index)
	})
	w.requestRedraw()
}

// fitCurrentItem brings the current item into the adapter's range after the
// item count changed.
func (w *Wheel[V]) fitCurrentItem() {
	count := w.itemsCount()
	switch {
	case count == 0:
		w.currentItem = 0
	case w.currentItem >= count && w.cyclic:
		w.commitCurrentItem(w.normalize(w.currentItem))
	case w.currentItem >= count:
		w.commitCurrentItem(count - 1)
	}
}

// Scroll animates by items over duration, measured from the nearest item
// boundary so that any residual offset is absorbed. A zero duration uses the
// configured scroll duration.
func (w *Wheel[V]) Scroll(items int, duration time.Duration) {
	w.scroller.Scroll(-w.scrollingOffset-items*w.ItemDimension(), duration)
}

// StopScrolling cancels any animation. Scrolling listeners receive the finish
// notification at once.
func (w *Wheel[V]) StopScrolling() {
	w.scroller.StopScrolling()
}

// Tick advances animations to the current time. It returns whether another
// frame is needed.
func (w *Wheel[V]) Tick() bool {
	return w.scroller.Tick()
}

// IsAnimating reports whether the host should keep calling Tick.
func (w *Wheel[V]) IsAnimating() bool {
	return w.scroller.IsAnimating()
}

// Press starts a pointer gesture at (x, y), relative to the viewport.
func (w *Wheel[V]) Press(x, y float64) {
	w.scroller.Press(w.orientation.Position(x, y))
}

// Move feeds a pointer motion sample.
func (w *Wheel[V]) Move(x, y float64) {
	w.scroller.Move(w.orientation.Position(x, y))
}

// Release ends a pointer gesture. A release that did not scroll is a tap: the
// tapped item is reported to the clicking listeners unless it is the current
// one.
func (w *Wheel[V]) Release(x, y float64) {
	if w.scroller.pressed && !w.scrollingPerformed {
		w.click(w.orientation.Position(x, y))
	}
	w.scroller.Release()
}

// click resolves a tap position to an item, rounding half an item away from
// the centre.
func (w *Wheel[V]) click(pos float64) {
	itemDim := w.ItemDimension()
	distance := int(pos) - w.BaseDimension()/2
	if distance > 0 {
		distance += itemDim / 2
	} else {
		distance -= itemDim / 2
	}
	items := distance / itemDim
	if items == 0 || !w.IsValidItemIndex(w.currentItem+items) {
		return
	}
	index := w.currentItem + items
	if w.cyclic {
		index = w.normalize(index)
	}
	w.clickingListeners.each(func(l ClickingListener[V]) {
		l.OnItemClicked(w, index)
	})
}

// doScroll folds delta into the scrolling offset and commits every whole item
// crossed. An item counts as crossed once more than half of it has passed.
func (w *Wheel[V]) doScroll(delta int) {
	w.scrollingOffset += delta

	count := w.itemsCount()
	if count == 0 {
		w.requestRedraw()
		return
	}

	itemDim := w.ItemDimension()
	items := w.scrollingOffset / itemDim
	pos := w.currentItem - items

	fixPos := w.scrollingOffset % itemDim
	if abs(fixPos) <= itemDim/2 {
		fixPos = 0
	}

	if w.cyclic {
		if fixPos > 0 {
			pos--
			items++
		} else if fixPos < 0 {
			pos++
			items--
		}
		pos = w.normalize(pos)
	} else {
		switch {
		case pos < 0:
			items = w.currentItem
			pos = 0
		case pos >= count:
			items = w.currentItem - count + 1
			pos = count - 1
		case pos > 0 && fixPos > 0:
			pos--
			items++
		case pos < count-1 && fixPos < 0:
			pos++
			items--
		}
	}

	offset := w.scrollingOffset
	if pos != w.currentItem {
		w.logger.Debug().Int("from", w.currentItem).Int("to", pos).Int("offset", offset).Msg("item crossed")
		w.SetCurrentItem(pos, false)
	} else {
		w.requestRedraw()
	}

	w.scrollingOffset = offset - items*itemDim
	if base := w.BaseDimension(); base > 0 {
		if w.scrollingOffset > base {
			w.scrollingOffset = w.scrollingOffset%base + base
		} else if w.scrollingOffset < -base {
			w.scrollingOffset = w.scrollingOffset%base - base
		}
	}
}

// ItemsRange returns the span of items that should be materialized.
func (w *Wheel[V]) ItemsRange() ItemsRange {
	return computeItemsRange(w.currentItem, w.visibleItems, w.itemsCount(), w.cyclic)
}

// InvalidateItemsLayout recycles every materialized visual so the next
// rebuild asks the adapter again. With clearCaches the pool is dropped as
// well and the scrolling offset is reset.
func (w *Wheel[V]) InvalidateItemsLayout(clearCaches bool) {
	if clearCaches {
		w.recycler.ClearAll()
		w.layout.Clear()
		w.scrollingOffset = 0
		w.logger.Debug().Msg("item caches cleared")
	} else {
		w.recycler.RecycleItems(&w.layout, w.firstItem, ItemsRange{}, w.itemsCount(), w.cyclic)
	}
	w.requestRedraw()
}

// RebuildItems brings the materialized visuals in line with ItemsRange,
// reusing visuals that stay in range and pooling the rest. It returns whether
// the materialized set changed.
func (w *Wheel[V]) RebuildItems() bool {
	rng := w.ItemsRange()

	first := w.recycler.RecycleItems(&w.layout, w.firstItem, rng, w.itemsCount(), w.cyclic)
	updated := w.firstItem != first || w.layout.Len() == 0
	w.firstItem = first
	if !updated {
		updated = w.firstItem != rng.First || w.layout.Len() != rng.Count
	}

	if w.firstItem > rng.First && w.firstItem <= rng.Last() && w.layout.Len() > 0 {
		for i := w.firstItem - 1; i >= rng.First; i-- {
			if !w.addItem(i, true) {
				break
			}
			w.firstItem = i
		}
	} else {
		w.firstItem = rng.First
	}

	for i := w.layout.Len(); i < rng.Count; i++ {
		if !w.addItem(w.firstItem+i, false) {
			break
		}
	}

	if updated {
		w.logger.Debug().
			Int("first", w.firstItem).
			Int("count", w.layout.Len()).
			Int("pooled", w.recycler.Len()).
			Msg("items rebuilt")
	}
	return updated
}

func (w *Wheel[V]) addItem(index int, first bool) bool {
	v, ok := w.itemVisual(index)
	if !ok {
		return false
	}
	if first {
		w.layout.Prepend(v)
	} else {
		w.layout.Append(v)
	}
	return true
}

func (w *Wheel[V]) itemVisual(index int) (V, bool) {
	var zero V
	if w.itemsCount() == 0 {
		return zero, false
	}

	var v V
	if !w.IsValidItemIndex(index) {
		recycled, _ := w.recycler.EmptyItem()
		v = w.adapter.EmptyItem(recycled)
	} else {
		recycled, _ := w.recycler.Item()
		v = w.adapter.Item(w.normalize(index), recycled)
	}
	return v, v != zero
}

// AddChangingListener registers l and returns a function removing it.
func (w *Wheel[V]) AddChangingListener(l ChangingListener[V]) (remove func()) {
	return w.changingListeners.add(l)
}

// AddScrollingListener registers l and returns a function removing it.
func (w *Wheel[V]) AddScrollingListener(l WheelScrollListener[V]) (remove func()) {
	return w.scrollingListeners.add(l)
}

// AddClickingListener registers l and returns a function removing it.
func (w *Wheel[V]) AddClickingListener(l ClickingListener[V]) (remove func()) {
	return w.clickingListeners.add(l)
}

// scrollerListener turns Scroller callbacks into wheel state changes.
type scrollerListener[V comparable] struct {
	w *Wheel[V]
}

func (s scrollerListener[V]) OnStarted() {
	w := s.w
	w.scrollingPerformed = true
	w.scrollingListeners.each(func(l WheelScrollListener[V]) {
		l.OnScrollingStarted(w)
	})
}

func (s scrollerListener[V]) OnTouch() {}

func (s scrollerListener[V]) OnTouchUp() {}

// OnScroll keeps the offset within one viewport. Inertial motion that hits
// that limit is stopped.
func (s scrollerListener[V]) OnScroll(distance int) {
	w := s.w
	w.doScroll(distance)

	base := w.BaseDimension()
	if w.scrollingOffset > base {
		w.scrollingOffset = base
		w.scroller.StopFling()
	} else if w.scrollingOffset < -base {
		w.scrollingOffset = -base
		w.scroller.StopFling()
	}
}

func (s scrollerListener[V]) OnJustify() {
	w := s.w
	if abs(w.scrollingOffset) > MinDeltaForScrolling {
		w.scroller.Scroll(-w.scrollingOffset, 0)
	}
}

func (s scrollerListener[V]) OnFinished() {
	w := s.w
	if w.scrollingPerformed {
		w.scrollingPerformed = false
		w.scrollingListeners.each(func(l WheelScrollListener[V]) {
			l.OnScrollingFinished(w)
		})
	}
	w.scrollingOffset = 0
	w.requestRedraw()
}

// dataObserver rebuilds the wheel when its adapter's data changes.
type dataObserver[V comparable] struct {
	w *Wheel[V]
}

func (o *dataObserver[V]) OnChanged() {
	o.w.fitCurrentItem()
	o.w.InvalidateItemsLayout(false)
}

func (o *dataObserver[V]) OnInvalidated() {
	o.w.fitCurrentItem()
	o.w.InvalidateItemsLayout(true)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
