package demo

import (
	"fmt"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/wheel"
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	hueStep     = 15
	percentStep = 10
)

// colorDemo mixes a colour from hue, saturation and value wheels and shows
// it in a swatch.
type colorDemo struct {
	*Screen

	hue, saturation, value *spinwheel.WheelView
	swatch                 *spinwheel.Box
	label                  *spinwheel.TextItem
}

func newColorDemo(opts Options) (*Screen, error) {
	hueSource, err := wheel.NewNumericSource(0, 360/hueStep-1, "")
	if err != nil {
		return nil, err
	}
	hueSource.SetFormatFunc(func(value int) string {
		return fmt.Sprintf("%d°", value*hueStep)
	})
	saturationSource, err := percentSource()
	if err != nil {
		return nil, err
	}
	valueSource, err := percentSource()
	if err != nil {
		return nil, err
	}

	d := &colorDemo{
		Screen: newScreen("Color", opts),
		swatch: spinwheel.NewBox(),
		label:  spinwheel.NewTextItem(""),
	}
	d.hue = d.newWheel("Hue", hueSource, 0).SetCyclic(true)
	d.saturation = d.newWheel("Saturation", saturationSource, 0)
	d.value = d.newWheel("Value", valueSource, 0)
	d.addWheel(d.hue, 0, 1, true)
	d.addWheel(d.saturation, 0, 1, true)
	d.addWheel(d.value, 0, 1, true)

	preview := spinwheel.NewColumn().
		AddItem(d.swatch, 0, 1, false).
		AddItem(d.label, 1, 0, false)
	preview.SetBorders(spinwheel.BordersAll).SetBorderSet(d.opts.BorderSet).SetTitle("Preview")
	d.content.AddItem(preview, 0, 1, false)

	d.hue.SetCurrentItem(240/hueStep, false)
	d.saturation.SetCurrentItem(100/percentStep, false)
	d.value.SetCurrentItem(80/percentStep, false)
	for _, v := range d.wheels {
		v.SetChangedFunc(func(int, int) { d.update() })
	}
	d.update()
	return d.Screen, nil
}

func percentSource() (*wheel.NumericSource, error) {
	source, err := wheel.NewNumericSource(0, 100/percentStep, "")
	if err != nil {
		return nil, err
	}
	source.SetFormatFunc(func(value int) string {
		return fmt.Sprintf("%d%%", value*percentStep)
	})
	return source, nil
}

// Color returns the selected colour.
func (d *colorDemo) Color() colorful.Color {
	h := float64(d.hue.CurrentItem() * hueStep)
	s := float64(d.saturation.CurrentItem()*percentStep) / 100
	v := float64(d.value.CurrentItem()*percentStep) / 100
	return colorful.Hsv(h, s, v).Clamped()
}

func (d *colorDemo) update() {
	c := d.Color()
	r, g, b := c.RGB255()
	fill := color.NewRGBColor(int32(r), int32(g), int32(b))
	d.swatch.SetBackgroundColor(fill)

	// Keep the label readable on light colours.
	text := spinwheel.Styles.PrimaryTextColor
	if _, _, l := c.Hsl(); l > 0.6 {
		text = spinwheel.Styles.PrimitiveBackgroundColor
	}
	d.label.SetTextStyle(tcell.StyleDefault.Foreground(text).Background(fill))
	d.label.SetText(c.Hex())
	d.SetStatus("Selected colour: " + c.Hex())
}
