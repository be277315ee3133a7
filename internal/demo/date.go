package demo

import (
	"time"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/wheel"
)

// yearSpan is the number of years listed before and after the current one.
const yearSpan = 10

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// dateDemo picks a calendar date. The day wheel shrinks and grows with the
// length of the selected month.
type dateDemo struct {
	*Screen

	day, month, year *spinwheel.WheelView
	daySource        *wheel.NumericSource
	yearSource       *wheel.NumericSource
}

func newDateDemo(opts Options) (*Screen, error) {
	now := opts.Now()
	daySource, err := wheel.NewNumericSource(1, daysIn(now.Year(), now.Month()), "%02d")
	if err != nil {
		return nil, err
	}
	yearSource, err := wheel.NewNumericSource(now.Year()-yearSpan, now.Year()+yearSpan, "")
	if err != nil {
		return nil, err
	}

	d := &dateDemo{
		Screen:     newScreen("Date", opts),
		daySource:  daySource,
		yearSource: yearSource,
	}
	d.day = d.newWheel("Day", daySource, 0)
	d.month = d.newWheel("Month", wheel.NewStringSource(monthNames...), 0).SetCyclic(true)
	d.year = d.newWheel("Year", yearSource, 0)
	d.addWheel(d.day, 0, 1, true)
	d.addWheel(d.month, 0, 2, true)
	d.addWheel(d.year, 0, 1, true)

	d.month.SetCurrentItem(int(now.Month())-1, false)
	d.year.SetCurrentItem(yearSpan, false)
	d.day.SetCurrentItem(now.Day()-1, false)

	d.month.SetChangedFunc(func(int, int) { d.updateDays() })
	d.year.SetChangedFunc(func(int, int) { d.updateDays() })
	d.day.SetChangedFunc(func(int, int) { d.update() })
	d.update()
	return d.Screen, nil
}

// daysIn returns the number of days of month in year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the selected date.
func (d *dateDemo) Date() time.Time {
	year, _ := d.yearSource.Value(d.year.CurrentItem())
	day, _ := d.daySource.Value(d.day.CurrentItem())
	return time.Date(year, time.Month(d.month.CurrentItem()+1), day, 0, 0, 0, 0, time.UTC)
}

// updateDays fits the day wheel to the selected month. A day past the new
// end of the month moves to its last day.
func (d *dateDemo) updateDays() {
	year, _ := d.yearSource.Value(d.year.CurrentItem())
	month := time.Month(d.month.CurrentItem() + 1)
	if err := d.daySource.SetMax(daysIn(year, month)); err != nil {
		d.SetStatus(err.Error())
		return
	}
	d.update()
}

func (d *dateDemo) update() {
	d.SetStatus("Selected date: " + d.Date().Format("Monday, 2 January 2006"))
}
