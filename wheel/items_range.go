package wheel

// ItemsRange is a contiguous span of item indices, [First, First+Count-1].
// Indices may be negative or past the adapter's end; the wheel shows empty
// items there when it is not cyclic.
type ItemsRange struct {
	First int
	Count int
}

// NewItemsRange returns a range starting at first with count items. A negative
// count is treated as an empty range.
func NewItemsRange(first, count int) ItemsRange {
	return ItemsRange{First: first, Count: max(count, 0)}
}

// Last returns the index of the last item in the range.
func (r ItemsRange) Last() int {
	return r.First + r.Count - 1
}

// Contains reports whether index lies within the range.
func (r ItemsRange) Contains(index int) bool {
	return index >= r.First && index <= r.Last()
}

// Empty reports whether the range holds no items.
func (r ItemsRange) Empty() bool {
	return r.Count <= 0
}

// computeItemsRange centres visible items around current. A non-cyclic range
// is clamped to start at 0 and end no later than itemsCount, so near the edges
// fewer than visible items are covered.
func computeItemsRange(current, visible, itemsCount int, cyclic bool) ItemsRange {
	start := current - visible/2
	end := start + visible - 1
	if !cyclic {
		if start < 0 {
			start = 0
		}
		if end > itemsCount {
			end = itemsCount
		}
	}
	return NewItemsRange(start, end-start+1)
}
