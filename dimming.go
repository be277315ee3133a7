package spinwheel

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// DefaultDimmedAlpha is the opacity of the items next to the selected one
// while the wheel is at rest.
const DefaultDimmedAlpha = 50.0 / 255

type gradientStop struct {
	pos, alpha float64
}

// selectorGradient returns the opacity at t, the position along the scroll
// axis as a fraction of the viewport. itemFraction is the item extent as a
// fraction of the viewport. The selected item is opaque. At rest (coeff 0) its
// neighbours have dimmedAlpha and the rest of the wheel is transparent; while
// scrolling (coeff 1) every item is visible, fading out towards the edges.
func selectorGradient(t, itemFraction float64, visibleItems int, dimmedAlpha, coeff float64) float64 {
	p1 := (1 - itemFraction) / 2
	p2 := (1 + itemFraction) / 2
	z := dimmedAlpha * (1 - coeff)
	c1 := z + coeff

	var stops []gradientStop
	if visibleItems == 2 {
		stops = []gradientStop{{0, z}, {p1, c1}, {p1, 1}, {p2, 1}, {p2, c1}, {1, z}}
	} else {
		p3 := (1 - 3*itemFraction) / 2
		p4 := (1 + 3*itemFraction) / 2
		var c3 float64
		if p1 > 0 {
			c3 = p3 / p1 * coeff
		}
		c2 := z + c3
		stops = []gradientStop{
			{0, 0}, {p3, c3}, {p3, c2}, {p1, c1}, {p1, 1},
			{p2, 1}, {p2, c1}, {p4, c2}, {p4, c3}, {1, 0},
		}
	}
	return clampAlpha(evalGradient(stops, t))
}

// evalGradient interpolates linearly between stops. Coinciding stops form a
// hard edge; the later stop wins at the edge itself.
func evalGradient(stops []gradientStop, t float64) float64 {
	if t < stops[0].pos {
		return stops[0].alpha
	}
	for i := len(stops) - 1; i > 0; i-- {
		from, to := stops[i-1], stops[i]
		if t < from.pos || t >= to.pos {
			continue
		}
		return from.alpha + (to.alpha-from.alpha)*(t-from.pos)/(to.pos-from.pos)
	}
	return stops[len(stops)-1].alpha
}

func clampAlpha(alpha float64) float64 {
	return min(max(alpha, 0), 1)
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NewRGBColor(int32(r), int32(g), int32(b))
}

// blendColor mixes from towards to. At alpha 1 the result is from, at alpha 0
// it is to. The second return value is false when either color has no RGB
// value, such as the terminal default.
func blendColor(from, to tcell.Color, alpha float64) (tcell.Color, bool) {
	f, ok := toColorful(from)
	if !ok {
		return from, false
	}
	t, ok := toColorful(to)
	if !ok {
		return from, false
	}
	return fromColorful(f.BlendLab(t, 1-alpha)), true
}

// dimStyle fades the foreground of style towards background. Colors without
// an RGB value fall back to the dim attribute.
func dimStyle(style tcell.Style, background tcell.Color, alpha float64) tcell.Style {
	if alpha >= 1 {
		return style
	}
	if alpha <= 0 {
		return style.Foreground(background)
	}
	fg, ok := blendColor(style.GetForeground(), background, alpha)
	if !ok {
		return style.Dim(alpha < 0.5)
	}
	return style.Foreground(fg)
}

// itemScreen clips drawing to a rectangle and restyles every cell through
// restyle. Item visuals of a wheel draw through it.
type itemScreen struct {
	tcell.Screen

	x, y, width, height int
	restyle             func(x, y int, style tcell.Style) tcell.Style
}

func (s *itemScreen) contains(x, y int) bool {
	return x >= s.x && y >= s.y && x < s.x+s.width && y < s.y+s.height
}

func (s *itemScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.contains(x, y) {
		_, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
		return rest, width
	}
	if s.restyle != nil {
		style = s.restyle(x, y, style)
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *itemScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" {
		rest, width := s.Put(x, y, str, style)
		if width <= 0 || rest == str {
			return
		}
		x += width
		str = rest
	}
}

// ShowCursor is ignored; item visuals never own the cursor.
func (s *itemScreen) ShowCursor(x, y int) {}
