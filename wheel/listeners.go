package wheel

// ChangingListener is notified when the current item of a wheel changes.
type ChangingListener[V comparable] interface {
	OnChanged(w *Wheel[V], oldValue, newValue int)
}

// ChangedFunc adapts a function to a ChangingListener.
type ChangedFunc[V comparable] func(w *Wheel[V], oldValue, newValue int)

func (f ChangedFunc[V]) OnChanged(w *Wheel[V], oldValue, newValue int) {
	f(w, oldValue, newValue)
}

// WheelScrollListener is notified when a scrolling sequence of a wheel starts and
// when it settles.
type WheelScrollListener[V comparable] interface {
	OnScrollingStarted(w *Wheel[V])
	OnScrollingFinished(w *Wheel[V])
}

// ScrollingFuncs adapts a pair of functions to a WheelScrollListener. Either
// function may be nil.
type ScrollingFuncs[V comparable] struct {
	Started  func(w *Wheel[V])
	Finished func(w *Wheel[V])
}

func (f ScrollingFuncs[V]) OnScrollingStarted(w *Wheel[V]) {
	if f.Started != nil {
		f.Started(w)
	}
}

func (f ScrollingFuncs[V]) OnScrollingFinished(w *Wheel[V]) {
	if f.Finished != nil {
		f.Finished(w)
	}
}

// ClickingListener is notified when an item other than the current one is
// tapped.
type ClickingListener[V comparable] interface {
	OnItemClicked(w *Wheel[V], index int)
}

// ClickedFunc adapts a function to a ClickingListener.
type ClickedFunc[V comparable] func(w *Wheel[V], index int)

func (f ClickedFunc[V]) OnItemClicked(w *Wheel[V], index int) {
	f(w, index)
}

// listenerList keeps listeners in registration order. Removal is by
// registration id so func-backed listeners can be removed too.
type listenerList[L any] struct {
	nextID  int
	entries []listenerEntry[L]
}

type listenerEntry[L any] struct {
	id       int
	listener L
}

func (l *listenerList[L]) add(listener L) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry[L]{id: id, listener: listener})
	return func() { l.remove(id) }
}

func (l *listenerList[L]) remove(id int) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// each calls fn for every listener registered when each was called.
func (l *listenerList[L]) each(fn func(L)) {
	entries := l.entries
	for _, e := range entries {
		fn(e.listener)
	}
}
