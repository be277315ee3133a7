package spinwheel

import "github.com/gdamore/tcell/v3"

// rowItem is one child of a Row.
type rowItem struct {
	item       Primitive
	fixedSize  int // Size in cells along the layout axis, or 0 for proportional.
	proportion int // Relative size if fixedSize is 0.
	focus      bool
}

// Row lays out its children side by side, or stacked on top of each other
// when created with NewColumn. Fixed sizes are served first and the
// remaining space is shared in proportion. Tab and backtab move the focus
// between focusable children.
type Row struct {
	*Box

	items    []*rowItem
	vertical bool

	// Draw a line between children, joined with the box border.
	separators     bool
	separatorStyle tcell.Style
}

// NewRow returns an empty horizontal container.
func NewRow() *Row {
	return &Row{
		Box:            NewBox(),
		separatorStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
	}
}

// NewColumn returns an empty vertical container.
func NewColumn() *Row {
	r := NewRow()
	r.vertical = true
	return r
}

// SetSeparators sets whether a line is drawn between children.
func (r *Row) SetSeparators(separators bool) *Row {
	if r.separators != separators {
		r.separators = separators
		r.MarkDirty()
	}
	return r
}

// SetSeparatorStyle sets the style of the lines between children.
func (r *Row) SetSeparatorStyle(style tcell.Style) *Row {
	if r.separatorStyle != style {
		r.separatorStyle = style
		r.MarkDirty()
	}
	return r
}

// AddItem appends a child. A fixedSize above 0 reserves that many cells
// along the layout axis; otherwise the child takes a share of the remaining
// space weighted by proportion. Children added with focus take part in tab
// navigation, and the first of them receives the focus of the row.
func (r *Row) AddItem(item Primitive, fixedSize, proportion int, focus bool) *Row {
	r.items = append(r.items, &rowItem{item: item, fixedSize: fixedSize, proportion: proportion, focus: focus})
	bindDirtyParent(item, r.Box)
	r.MarkDirty()
	return r
}

// RemoveItem removes all occurrences of item.
func (r *Row) RemoveItem(item Primitive) *Row {
	for index := len(r.items) - 1; index >= 0; index-- {
		if r.items[index].item == item {
			r.items = append(r.items[:index], r.items[index+1:]...)
			unbindDirtyParent(item, r.Box)
			r.MarkDirty()
		}
	}
	return r
}

// ResizeItem changes the size of all occurrences of item.
func (r *Row) ResizeItem(item Primitive, fixedSize, proportion int) *Row {
	for _, entry := range r.items {
		if entry.item == item && (entry.fixedSize != fixedSize || entry.proportion != proportion) {
			entry.fixedSize = fixedSize
			entry.proportion = proportion
			r.MarkDirty()
		}
	}
	return r
}

// Clear removes all children.
func (r *Row) Clear() *Row {
	for _, item := range r.items {
		unbindDirtyParent(item.item, r.Box)
	}
	r.items = nil
	r.MarkDirty()
	return r
}

// GetItemCount returns the number of children.
func (r *Row) GetItemCount() int {
	return len(r.items)
}

// GetItem returns the child at index.
func (r *Row) GetItem(index int) Primitive {
	return r.items[index].item
}

// layout computes the size of every child along the layout axis.
func (r *Row) layout(total int) []int {
	sizes := make([]int, len(r.items))
	if r.separators && len(r.items) > 1 {
		total -= len(r.items) - 1
	}

	var proportionSum int
	remaining := total
	for _, item := range r.items {
		if item.fixedSize > 0 {
			remaining -= item.fixedSize
		} else {
			proportionSum += max(item.proportion, 1)
		}
	}
	remaining = max(remaining, 0)

	// Each proportional child takes its share of what is left, so the last
	// one absorbs rounding errors.
	for index, item := range r.items {
		if item.fixedSize > 0 {
			sizes[index] = item.fixedSize
			continue
		}
		weight := max(item.proportion, 1)
		size := remaining * weight / proportionSum
		sizes[index] = size
		remaining -= size
		proportionSum -= weight
	}
	return sizes
}

// Draw draws this primitive onto the screen.
func (r *Row) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)

	x, y, width, height := r.GetInnerRect()
	total := width
	if r.vertical {
		total = height
	}
	sizes := r.layout(total)

	pos := 0
	for index, item := range r.items {
		size := min(sizes[index], max(total-pos, 0))
		if r.vertical {
			item.item.SetRect(x, y+pos, width, size)
		} else {
			item.item.SetRect(x+pos, y, size, height)
		}
		if size > 0 {
			item.item.Draw(screen)
		}
		pos += size

		if r.separators && index < len(r.items)-1 && pos < total {
			r.drawSeparator(screen, pos)
			pos++
		}
	}
}

// drawSeparator draws the line at offset pos of the inner rect and joins its
// ends with the border.
func (r *Row) drawSeparator(screen tcell.Screen, pos int) {
	x, y, width, height := r.GetInnerRect()
	borders := r.GetBorders()

	if r.vertical {
		row := y + pos
		for col := x; col < x+width; col++ {
			PrintJoinedSemigraphics(screen, col, row, BoxDrawingsLightHorizontal, r.separatorStyle)
		}
		if borders&BordersLeft != 0 {
			PrintJoinedSemigraphics(screen, x-1, row, BoxDrawingsLightVerticalAndRight, r.separatorStyle)
		}
		if borders&BordersRight != 0 {
			PrintJoinedSemigraphics(screen, x+width, row, BoxDrawingsLightVerticalAndLeft, r.separatorStyle)
		}
		return
	}

	col := x + pos
	for row := y; row < y+height; row++ {
		PrintJoinedSemigraphics(screen, col, row, BoxDrawingsLightVertical, r.separatorStyle)
	}
	if borders&BordersTop != 0 {
		PrintJoinedSemigraphics(screen, col, y-1, BoxDrawingsLightDownAndHorizontal, r.separatorStyle)
	}
	if borders&BordersBottom != 0 {
		PrintJoinedSemigraphics(screen, col, y+height, BoxDrawingsLightUpAndHorizontal, r.separatorStyle)
	}
}

// Focus is called when this primitive receives focus.
func (r *Row) Focus(delegate func(p Primitive)) {
	for _, item := range r.items {
		if item.focus {
			delegate(item.item)
			return
		}
	}
	r.Box.Focus(delegate)
}

// HasFocus returns whether or not this primitive or one of its children has
// focus.
func (r *Row) HasFocus() bool {
	for _, item := range r.items {
		if item.item.HasFocus() {
			return true
		}
	}
	return r.Box.HasFocus()
}

func (r *Row) focusedIndex() int {
	for index, item := range r.items {
		if item.item.HasFocus() {
			return index
		}
	}
	return -1
}

// cycleFocus returns a command focusing the next (step 1) or previous
// (step -1) focusable child.
func (r *Row) cycleFocus(step int) Command {
	current := r.focusedIndex()
	count := len(r.items)
	for i := 1; i <= count; i++ {
		index := ((current+step*i)%count + count) % count
		if r.items[index].focus && index != current {
			return SetFocusCommand{Target: r.items[index].item}
		}
	}
	return nil
}

// InputHandler passes key events to the focused child. Tab and backtab move
// the focus if the child ignores them.
func (r *Row) InputHandler(event *tcell.EventKey) Command {
	if index := r.focusedIndex(); index >= 0 {
		if cmd := r.items[index].item.InputHandler(event); cmd != nil {
			return cmd
		}
	}
	switch event.Key() {
	case tcell.KeyTab:
		return r.cycleFocus(1)
	case tcell.KeyBacktab:
		return r.cycleFocus(-1)
	}
	return nil
}

// PasteHandler passes pasted text to the focused child.
func (r *Row) PasteHandler(text string) Command {
	if index := r.focusedIndex(); index >= 0 {
		return r.items[index].item.PasteHandler(text)
	}
	return nil
}

// MouseHandler passes mouse events to the child under the pointer.
func (r *Row) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !r.InRect(x, y) {
		return nil, nil
	}
	for _, item := range r.items {
		ix, iy, iw, ih := item.item.GetRect()
		if x < ix || y < iy || x >= ix+iw || y >= iy+ih {
			continue
		}
		return item.item.MouseHandler(action, event)
	}
	return nil, nil
}
