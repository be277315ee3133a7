package wheel

import "slices"

// DataSetObserver is notified when the data behind an Adapter changes.
type DataSetObserver interface {
	// OnChanged reports that items changed but cached visuals may be reused.
	OnChanged()
	// OnInvalidated reports that all cached visuals must be dropped.
	OnInvalidated()
}

// Adapter supplies the items of a wheel as visuals of type V. The zero V means
// "no visual".
type Adapter[V comparable] interface {
	ItemsCount() int
	// Item returns the visual for index, reconfiguring recycled if it is not
	// the zero V. Returning the zero V stops the current fill pass.
	Item(index int, recycled V) V
	// EmptyItem returns the placeholder shown at out-of-range positions of a
	// non-cyclic wheel.
	EmptyItem(recycled V) V

	RegisterObserver(observer DataSetObserver)
	UnregisterObserver(observer DataSetObserver)
}

// AdapterBase implements observer bookkeeping for adapters. Embed it and call
// NotifyChanged or NotifyInvalidated when the data changes.
type AdapterBase struct {
	observers []DataSetObserver
}

func (a *AdapterBase) RegisterObserver(observer DataSetObserver) {
	if observer == nil || slices.Contains(a.observers, observer) {
		return
	}
	a.observers = append(a.observers, observer)
}

func (a *AdapterBase) UnregisterObserver(observer DataSetObserver) {
	if i := slices.Index(a.observers, observer); i >= 0 {
		a.observers = slices.Delete(a.observers, i, i+1)
	}
}

func (a *AdapterBase) NotifyChanged() {
	for _, o := range slices.Clone(a.observers) {
		o.OnChanged()
	}
}

func (a *AdapterBase) NotifyInvalidated() {
	for _, o := range slices.Clone(a.observers) {
		o.OnInvalidated()
	}
}
