package wheel

import "slices"

// ItemsLayout is the ordered, contiguous list of materialized visuals. The
// visual at position 0 shows the wheel's first item.
type ItemsLayout[V comparable] struct {
	visuals []V
}

func (l *ItemsLayout[V]) Len() int {
	return len(l.visuals)
}

// At returns the visual at position i.
func (l *ItemsLayout[V]) At(i int) V {
	return l.visuals[i]
}

// Visuals returns the materialized visuals in display order. The slice must
// not be modified.
func (l *ItemsLayout[V]) Visuals() []V {
	return l.visuals
}

func (l *ItemsLayout[V]) Prepend(v V) {
	l.visuals = slices.Insert(l.visuals, 0, v)
}

func (l *ItemsLayout[V]) Append(v V) {
	l.visuals = append(l.visuals, v)
}

// RemoveAt detaches and returns the visual at position i.
func (l *ItemsLayout[V]) RemoveAt(i int) V {
	v := l.visuals[i]
	l.visuals = slices.Delete(l.visuals, i, i+1)
	return v
}

func (l *ItemsLayout[V]) Clear() {
	clear(l.visuals)
	l.visuals = l.visuals[:0]
}
