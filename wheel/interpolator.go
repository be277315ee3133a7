package wheel

import (
	"math"
	"time"
)

// Interpolator maps animation progress t in [0, 1] to eased progress. Values
// outside [0, 1] are allowed for overshooting curves, but f(1) must be 1.
type Interpolator func(t float64) float64

// Linear advances at a constant rate.
func Linear(t float64) float64 {
	return t
}

// Decelerate starts fast and slows down quadratically, which is the shape of
// motion under constant friction.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// AccelerateDecelerate eases in and out along a cosine curve.
func AccelerateDecelerate(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

// Overshoot returns an interpolator that passes the target and settles back.
// A tension of 0 degrades to a cubic ease-out.
func Overshoot(tension float64) Interpolator {
	return func(t float64) float64 {
		t--
		return t*t*((tension+1)*t+tension) + 1
	}
}

// DefaultInterpolator is used by programmatic scrolls when no other
// interpolator is configured.
var DefaultInterpolator Interpolator = Decelerate

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Tween steps a float value from From to To over Duration. It is driven by the
// host's frame callback; it holds no timers of its own.
type Tween struct {
	From, To     float64
	Duration     time.Duration
	Interpolator Interpolator

	start   time.Time
	running bool
}

// Start begins the tween at now, replacing any tween in flight. Starting from
// the current value of a running tween avoids visible jumps.
func (tw *Tween) Start(from, to float64, duration time.Duration, now time.Time) {
	tw.From, tw.To = from, to
	tw.Duration = duration
	tw.start = now
	tw.running = duration > 0 && from != to
}

// Running reports whether the tween has not reached its end value.
func (tw *Tween) Running() bool {
	return tw.running
}

// Value returns the tweened value at now and marks the tween finished once the
// duration has elapsed.
func (tw *Tween) Value(now time.Time) float64 {
	if !tw.running {
		return tw.To
	}
	elapsed := now.Sub(tw.start)
	if elapsed >= tw.Duration {
		tw.running = false
		return tw.To
	}
	interp := tw.Interpolator
	if interp == nil {
		interp = Linear
	}
	t := interp(clamp01(float64(elapsed) / float64(tw.Duration)))
	return tw.From + (tw.To-tw.From)*t
}
