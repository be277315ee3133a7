package wheel

// Orientation supplies the measurements that depend on the scroll axis.
type Orientation interface {
	// BaseDimension is the viewport extent along the scroll axis.
	BaseDimension() int
	// ItemDimension is the extent of one item slot. A value of 0 or less
	// makes the wheel divide the base dimension by the visible item count.
	ItemDimension() int
	// Position maps a pointer location to a scalar along the scroll axis.
	Position(x, y float64) float64
}

// Viewport is a mutable extent description shared by the built-in
// orientations. Hosts update it on layout.
type Viewport struct {
	Width, Height int
	// ItemWidth and ItemHeight are optional fixed item extents.
	ItemWidth, ItemHeight int
}

type vertical struct{ v *Viewport }

// Vertical scrolls along the y axis of v.
func Vertical(v *Viewport) Orientation {
	return vertical{v: v}
}

func (o vertical) BaseDimension() int { return o.v.Height }
func (o vertical) ItemDimension() int { return o.v.ItemHeight }
func (o vertical) Position(_, y float64) float64 { return y }

type horizontal struct{ v *Viewport }

// Horizontal scrolls along the x axis of v.
func Horizontal(v *Viewport) Orientation {
	return horizontal{v: v}
}

func (o horizontal) BaseDimension() int { return o.v.Width }
func (o horizontal) ItemDimension() int { return o.v.ItemWidth }
func (o horizontal) Position(x, _ float64) float64 { return x }
