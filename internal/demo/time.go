package demo

import (
	"fmt"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/wheel"
)

// timeDemo picks a time of day on a twelve-hour clock.
type timeDemo struct {
	*Screen

	hours, minutes, meridiem *spinwheel.WheelView
	hourSource               *wheel.NumericSource
	minuteSource             *wheel.NumericSource
}

func newTimeDemo(opts Options) (*Screen, error) {
	hourSource, err := wheel.NewNumericSource(1, 12, "%2d")
	if err != nil {
		return nil, err
	}
	minuteSource, err := wheel.NewNumericSource(0, 59, "%02d")
	if err != nil {
		return nil, err
	}

	d := &timeDemo{
		Screen:       newScreen("Time", opts),
		hourSource:   hourSource,
		minuteSource: minuteSource,
	}
	d.hours = d.newWheel("Hours", hourSource, 0).SetCyclic(true)
	d.minutes = d.newWheel("Minutes", minuteSource, 0).SetCyclic(true)
	d.meridiem = d.newWheel("AM/PM", wheel.NewStringSource("AM", "PM"), 0)
	d.addWheel(d.hours, 0, 1, true)
	d.addWheel(d.minutes, 0, 1, true)
	d.addWheel(d.meridiem, 0, 1, true)

	now := opts.Now()
	hour := now.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	hourIndex, _ := hourSource.Index(hour)
	minuteIndex, _ := minuteSource.Index(now.Minute())
	d.hours.SetCurrentItem(hourIndex, false)
	d.minutes.SetCurrentItem(minuteIndex, false)
	d.meridiem.SetCurrentItem(now.Hour()/12, false)

	for _, v := range d.wheels {
		v.SetChangedFunc(func(int, int) { d.update() })
		v.SetSelectedFunc(func(int) spinwheel.Command {
			d.SetStatus("Alarm set for " + d.Time())
			return spinwheel.RedrawCommand{}
		})
	}
	d.update()
	return d.Screen, nil
}

// Time formats the selected time as "hh:mm AM".
func (d *timeDemo) Time() string {
	hour, _ := d.hourSource.Value(d.hours.CurrentItem())
	minute, _ := d.minuteSource.Value(d.minutes.CurrentItem())
	meridiem, _ := d.meridiem.CurrentText()
	return fmt.Sprintf("%02d:%02d %s", hour, minute, meridiem)
}

func (d *timeDemo) update() {
	d.SetStatus("Selected time: " + d.Time())
}
