package demo

import (
	"time"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/wheel"
)

const (
	// Slot wheels spin back by spinItems minus up to spinJitter items.
	spinItems    = 350
	spinJitter   = 50
	spinDuration = 2 * time.Second
)

var slotSymbols = []string{"7", "★", "♠", "♥", "♦", "♣", "☀", "☂", "♪", "☘"}

// slotDemo is a slot machine: the wheels only move when the mix button is
// pressed, and three equal symbols win.
type slotDemo struct {
	*Screen

	mix *spinwheel.Button
}

func newSlotDemo(opts Options) (*Screen, error) {
	d := &slotDemo{Screen: newScreen("Slot machine", opts)}

	for range 3 {
		v := d.newWheel("", wheel.NewStringSource(slotSymbols...), 3).SetCyclic(true)
		v.SetCurrentItem(opts.Rand.IntN(len(slotSymbols)), false)
		v.Wheel().AddScrollingListener(wheel.ScrollingFuncs[spinwheel.Primitive]{
			Finished: func(*wheel.Wheel[spinwheel.Primitive]) { d.update() },
		})
		d.addWheel(v, 0, 1, false)
	}

	d.mix = spinwheel.NewButton("Mix").SetSelectedFunc(d.spin)
	d.content.AddItem(d.mix, d.fixedExtent(8, 3), 0, true)
	d.update()
	return d.Screen, nil
}

// spin scrolls every wheel by a random number of items.
func (d *slotDemo) spin() spinwheel.Command {
	d.SetStatus("")
	var cmd spinwheel.Command
	for _, v := range d.wheels {
		items := -spinItems + d.opts.Rand.IntN(spinJitter)
		cmd = spinwheel.AppendCommand(cmd, v.Scroll(items, spinDuration))
	}
	return cmd
}

// Won reports whether all wheels show the same symbol.
func (d *slotDemo) Won() bool {
	first := d.wheels[0].CurrentItem()
	for _, v := range d.wheels[1:] {
		if v.CurrentItem() != first {
			return false
		}
	}
	return true
}

// update reports a win once every wheel settled.
func (d *slotDemo) update() {
	for _, v := range d.wheels {
		if v.Wheel().IsScrolling() {
			return
		}
	}
	if d.Won() {
		d.SetStatus("Congratulations!")
	} else {
		d.SetStatus("")
	}
}
