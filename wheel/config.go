package wheel

import "time"

const (
	// DefaultVisibleItems is the number of items a wheel shows by default.
	DefaultVisibleItems = 4
	// DefaultCyclic reports whether wheels wrap around by default.
	DefaultCyclic = false

	DefaultMinFlingVelocity = 80
	DefaultMaxFlingVelocity = 4000
	DefaultDeceleration     = 400
)

// Config holds the engine options of a Wheel and its Scroller. Velocities are
// in scroll units per second and deceleration in units per second squared.
type Config struct {
	VisibleItems int
	Cyclic       bool

	Interpolator     Interpolator
	ScrollDuration   time.Duration
	MinFlingVelocity float64
	MaxFlingVelocity float64
	Deceleration     float64

	// Clock supplies the current time to animations. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		VisibleItems:     DefaultVisibleItems,
		Cyclic:           DefaultCyclic,
		Interpolator:     DefaultInterpolator,
		ScrollDuration:   DefaultScrollDuration,
		MinFlingVelocity: DefaultMinFlingVelocity,
		MaxFlingVelocity: DefaultMaxFlingVelocity,
		Deceleration:     DefaultDeceleration,
		Clock:            time.Now,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.VisibleItems <= 0 {
		c.VisibleItems = def.VisibleItems
	}
	if c.Interpolator == nil {
		c.Interpolator = def.Interpolator
	}
	if c.ScrollDuration <= 0 {
		c.ScrollDuration = def.ScrollDuration
	}
	if c.MinFlingVelocity <= 0 {
		c.MinFlingVelocity = def.MinFlingVelocity
	}
	if c.MaxFlingVelocity <= 0 {
		c.MaxFlingVelocity = def.MaxFlingVelocity
	}
	if c.Deceleration <= 0 {
		c.Deceleration = def.Deceleration
	}
	if c.Clock == nil {
		c.Clock = def.Clock
	}
	return c
}
