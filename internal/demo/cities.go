package demo

import (
	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/wheel"
)

var countries = []string{"USA", "Canada", "Ukraine", "France"}

var cities = [][]string{
	{"New York", "Washington", "Chicago", "Atlanta", "Orlando", "Los Angeles", "Houston", "New Orleans"},
	{"Ottawa", "Vancouver", "Toronto", "Windsor", "Montreal", "Calgary", "Winnipeg", "Edmonton"},
	{"Kyiv", "Simferopol", "Lviv", "Kharkiv", "Odessa", "Mariupol", "Lugansk", "Sevastopol"},
	{"Paris", "Bordeaux", "Le Mans", "Orleans", "Valence", "Amiens", "Rouen", "Touluse", "La Rochelle"},
}

// citiesDemo repopulates the city wheel whenever the country wheel settles
// on another country. The city picked last in each country is remembered.
type citiesDemo struct {
	*Screen

	country, city *spinwheel.WheelView
	activeCountry int
	activeCities  []int
	// Set while the country wheel scrolls. The cities are only swapped once
	// it settles.
	scrolling bool
}

func newCitiesDemo(opts Options) (*Screen, error) {
	d := &citiesDemo{
		Screen:       newScreen("Cities", opts),
		activeCities: make([]int, len(cities)),
	}
	for i, list := range cities {
		d.activeCities[i] = len(list) / 2
	}

	d.country = d.newWheel("Country", wheel.NewStringSource(countries...), 3)
	d.city = d.newWheel("City", wheel.NewStringSource(cities[0]...), 5)
	d.addWheel(d.country, 0, 1, true)
	d.addWheel(d.city, 0, 2, true)

	d.city.SetChangedFunc(func(_, newIndex int) {
		if !d.scrolling {
			d.activeCities[d.activeCountry] = newIndex
		}
		d.update()
	})
	d.country.SetChangedFunc(func(_, newIndex int) {
		if !d.scrolling {
			d.updateCities(newIndex)
		}
	})
	d.country.Wheel().AddScrollingListener(wheel.ScrollingFuncs[spinwheel.Primitive]{
		Started: func(*wheel.Wheel[spinwheel.Primitive]) {
			d.scrolling = true
		},
		Finished: func(w *wheel.Wheel[spinwheel.Primitive]) {
			d.scrolling = false
			d.updateCities(w.CurrentItem())
		},
	})

	d.country.SetCurrentItem(1, false)
	return d.Screen, nil
}

// updateCities shows the cities of country and restores the city picked
// there before.
func (d *citiesDemo) updateCities(country int) {
	// Swapping the source may clamp the current city; restore it afterwards.
	active := d.activeCities[country]
	d.activeCountry = country
	d.city.SetSource(wheel.NewStringSource(cities[country]...))
	d.city.SetCurrentItem(active, false)
	d.update()
}

// Selection returns the selected city and country.
func (d *citiesDemo) Selection() (city, country string) {
	country, _ = d.country.CurrentText()
	city, _ = d.city.CurrentText()
	return city, country
}

func (d *citiesDemo) update() {
	city, country := d.Selection()
	d.SetStatus("Selected: " + city + ", " + country)
}
