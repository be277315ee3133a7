package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutOf(visuals ...*testVisual) *ItemsLayout[*testVisual] {
	var l ItemsLayout[*testVisual]
	for _, v := range visuals {
		l.Append(v)
	}
	return &l
}

func TestRecyclerKeepsOverlap(t *testing.T) {
	v := []*testVisual{{id: 1}, {id: 2}, {id: 3}, {id: 4}}
	layout := layoutOf(v...)
	var r Recycler[*testVisual]

	first := r.RecycleItems(layout, 2, NewItemsRange(3, 4), 10, false)

	assert.Equal(t, 3, first)
	assert.Equal(t, []*testVisual{v[1], v[2], v[3]}, layout.Visuals())
	assert.Equal(t, 1, r.Len())
}

func TestRecyclerPoolsByRole(t *testing.T) {
	v := []*testVisual{{id: 1}, {id: 2}, {id: 3}}
	layout := layoutOf(v...)
	var r Recycler[*testVisual]

	first := r.RecycleItems(layout, 8, NewItemsRange(0, 5), 10, false)
	assert.Equal(t, 11, first)
	assert.Zero(t, layout.Len())

	empty, ok := r.EmptyItem()
	require.True(t, ok)
	assert.Same(t, v[2], empty)
	_, ok = r.EmptyItem()
	assert.False(t, ok)

	item, ok := r.Item()
	require.True(t, ok)
	assert.Same(t, v[0], item)
	item, ok = r.Item()
	require.True(t, ok)
	assert.Same(t, v[1], item)
	_, ok = r.Item()
	assert.False(t, ok)
}

func TestRecyclerCyclicNeverPoolsEmpty(t *testing.T) {
	layout := layoutOf(&testVisual{id: 1}, &testVisual{id: 2})
	var r Recycler[*testVisual]

	r.RecycleItems(layout, -2, ItemsRange{}, 4, true)

	assert.Len(t, r.items, 2)
	assert.Empty(t, r.emptyItems)
}

func TestRecyclerRemovesFromMiddle(t *testing.T) {
	v := []*testVisual{{id: 1}, {id: 2}, {id: 3}}
	layout := layoutOf(v...)
	var r Recycler[*testVisual]

	first := r.RecycleItems(layout, 0, NewItemsRange(0, 1), 3, false)

	assert.Equal(t, 0, first)
	assert.Equal(t, []*testVisual{v[0]}, layout.Visuals())
}

func TestRecyclerClearAll(t *testing.T) {
	layout := layoutOf(&testVisual{id: 1}, &testVisual{id: 2})
	var r Recycler[*testVisual]
	r.RecycleItems(layout, 0, ItemsRange{}, 1, false)
	require.Equal(t, 2, r.Len())

	r.ClearAll()
	assert.Zero(t, r.Len())
	_, ok := r.Item()
	assert.False(t, ok)
}

func TestItemsLayout(t *testing.T) {
	a, b, c := &testVisual{id: 1}, &testVisual{id: 2}, &testVisual{id: 3}
	var l ItemsLayout[*testVisual]
	l.Append(b)
	l.Prepend(a)
	l.Append(c)

	assert.Equal(t, []*testVisual{a, b, c}, l.Visuals())
	assert.Same(t, b, l.RemoveAt(1))
	assert.Equal(t, 2, l.Len())
	assert.Same(t, c, l.At(1))

	l.Clear()
	assert.Zero(t, l.Len())
}
