package wheel

// Recycler pools item visuals that scrolled out of the visible range so they
// can be reconfigured for items scrolling in. Real items and empty
// placeholders are pooled separately and handed out in the order they were
// recycled.
type Recycler[V comparable] struct {
	items      []V
	emptyItems []V
}

// RecycleItems removes from layout every visual whose item index falls outside
// r and pools it. Visuals inside r are left in place. The layout's first
// visual shows firstItem; the returned index is the first item still
// materialized afterwards.
func (r *Recycler[V]) RecycleItems(layout *ItemsLayout[V], firstItem int, rng ItemsRange, itemsCount int, cyclic bool) int {
	index := firstItem
	for i := 0; i < layout.Len(); index++ {
		if rng.Contains(index) {
			i++
			continue
		}
		r.recycle(layout.RemoveAt(i), index, itemsCount, cyclic)
		if i == 0 {
			firstItem++
		}
	}
	return firstItem
}

func (r *Recycler[V]) recycle(v V, index, itemsCount int, cyclic bool) {
	if (index < 0 || index >= itemsCount) && !cyclic {
		r.emptyItems = append(r.emptyItems, v)
		return
	}
	r.items = append(r.items, v)
}

// Item pops a pooled real item visual.
func (r *Recycler[V]) Item() (V, bool) {
	return pop(&r.items)
}

// EmptyItem pops a pooled placeholder visual.
func (r *Recycler[V]) EmptyItem() (V, bool) {
	return pop(&r.emptyItems)
}

// Len returns the number of pooled visuals of both kinds.
func (r *Recycler[V]) Len() int {
	return len(r.items) + len(r.emptyItems)
}

// ClearAll drops every pooled visual.
func (r *Recycler[V]) ClearAll() {
	clear(r.items)
	clear(r.emptyItems)
	r.items = nil
	r.emptyItems = nil
}

func pop[V comparable](pool *[]V) (V, bool) {
	var zero V
	if len(*pool) == 0 {
		return zero, false
	}
	v := (*pool)[0]
	(*pool)[0] = zero
	*pool = (*pool)[1:]
	return v, true
}
