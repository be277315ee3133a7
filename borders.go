package spinwheel

import "strings"

// BorderSet defines the glyphs used when box borders are drawn.
type BorderSet struct {
	Top, Bottom, Left, Right                   string
	TopLeft, TopRight, BottomLeft, BottomRight string
}

func newBorderSet(horizontal, vertical, topLeft, topRight, bottomLeft, bottomRight string) BorderSet {
	return BorderSet{
		Top:         horizontal,
		Bottom:      horizontal,
		Left:        vertical,
		Right:       vertical,
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

var (
	BorderSetHidden = newBorderSet(" ", " ", " ", " ", " ", " ")
	BorderSetPlain  = newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightDownAndRight, BoxDrawingsLightDownAndLeft,
		BoxDrawingsLightUpAndRight, BoxDrawingsLightUpAndLeft,
	)
	BorderSetRound = newBorderSet(
		BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightArcDownAndRight, BoxDrawingsLightArcDownAndLeft,
		BoxDrawingsLightArcUpAndRight, BoxDrawingsLightArcUpAndLeft,
	)
	BorderSetThick = newBorderSet(
		BoxDrawingsHeavyHorizontal, BoxDrawingsHeavyVertical,
		BoxDrawingsHeavyDownAndRight, BoxDrawingsHeavyDownAndLeft,
		BoxDrawingsHeavyUpAndRight, BoxDrawingsHeavyUpAndLeft,
	)
	BorderSetDouble = newBorderSet(
		BoxDrawingsDoubleHorizontal, BoxDrawingsDoubleVertical,
		BoxDrawingsDoubleDownAndRight, BoxDrawingsDoubleDownAndLeft,
		BoxDrawingsDoubleUpAndRight, BoxDrawingsDoubleUpAndLeft,
	)
)

// BorderSetByName returns the border set called name: hidden, plain, round,
// thick or double.
func BorderSetByName(name string) (BorderSet, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hidden", "none":
		return BorderSetHidden, true
	case "plain", "":
		return BorderSetPlain, true
	case "round":
		return BorderSetRound, true
	case "thick":
		return BorderSetThick, true
	case "double":
		return BorderSetDouble, true
	}
	return BorderSet{}, false
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
