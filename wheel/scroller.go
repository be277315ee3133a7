package wheel

import (
	"math"
	"time"
)

const (
	// MinDeltaForScrolling is the smallest residual offset, in scroll units,
	// worth animating. Smaller offsets are snapped immediately.
	MinDeltaForScrolling = 1

	// DefaultScrollDuration is used by Scroll when no duration is given.
	DefaultScrollDuration = 400 * time.Millisecond

	// maxFlingDuration caps inertial animations.
	maxFlingDuration = 3 * time.Second
)

// ScrollingListener receives the lifecycle of a gesture or animation from a
// Scroller. OnStarted always precedes OnScroll, and a started sequence is
// terminated by exactly one OnFinished.
type ScrollingListener interface {
	// OnStarted is called when motion begins.
	OnStarted()
	// OnTouch is called when the pointer goes down or a programmatic scroll
	// emulates a touch.
	OnTouch()
	// OnTouchUp is called when the pointer is lifted. Inertial motion may
	// still follow.
	OnTouchUp()
	// OnScroll delivers a scroll delta in units.
	OnScroll(distance int)
	// OnJustify is called when motion has ended and the residual offset should
	// be snapped to an item boundary.
	OnJustify()
	// OnFinished is called when the sequence has settled.
	OnFinished()
}

type animationKind int

const (
	animationNone animationKind = iota
	// An inertial or programmatic scroll. Justification follows.
	animationScroll
	// A settle animation started from OnJustify. Finishing follows.
	animationJustify
)

type animation struct {
	kind         animationKind
	start        time.Time
	duration     time.Duration
	distance     int
	emitted      int
	interpolator Interpolator
	halted       bool
}

// Scroller turns motion samples and programmatic requests into scroll deltas
// over time. It never starts timers: the host calls Tick once per frame while
// IsAnimating reports true.
type Scroller struct {
	listener ScrollingListener
	clock    func() time.Time

	interpolator     Interpolator
	duration         time.Duration
	minFlingVelocity float64
	maxFlingVelocity float64
	deceleration     float64

	tracker     velocityTracker
	pressed     bool
	lastTouched float64

	anim               animation
	generation         int
	scrollingPerformed bool
}

// NewScroller returns a scroller reporting to listener, configured from cfg.
func NewScroller(listener ScrollingListener, cfg Config) *Scroller {
	cfg = cfg.withDefaults()
	return &Scroller{
		listener:         listener,
		clock:            cfg.Clock,
		interpolator:     cfg.Interpolator,
		duration:         cfg.ScrollDuration,
		minFlingVelocity: cfg.MinFlingVelocity,
		maxFlingVelocity: cfg.MaxFlingVelocity,
		deceleration:     cfg.Deceleration,
	}
}

// SetInterpolator sets the curve used by programmatic scrolls. Nil restores
// DefaultInterpolator.
func (s *Scroller) SetInterpolator(interpolator Interpolator) {
	if interpolator == nil {
		interpolator = DefaultInterpolator
	}
	s.interpolator = interpolator
}

// IsAnimating reports whether the host should keep calling Tick.
func (s *Scroller) IsAnimating() bool {
	return s.anim.kind != animationNone
}

// IsScrolling reports whether a started sequence has not finished yet.
func (s *Scroller) IsScrolling() bool {
	return s.scrollingPerformed
}

// Press starts a gesture at pos. Any momentum is cancelled without finishing
// the sequence, so a caught fling continues as the same drag.
func (s *Scroller) Press(pos float64) {
	now := s.clock()
	s.anim = animation{}
	s.tracker.reset()
	s.tracker.add(pos, now)
	s.lastTouched = pos
	s.pressed = true
	s.listener.OnTouch()
}

// Move feeds one motion sample. Whole units travelled since the last emitted
// delta are reported through OnScroll.
func (s *Scroller) Move(pos float64) {
	if !s.pressed {
		return
	}
	s.tracker.add(pos, s.clock())
	distance := int(pos - s.lastTouched)
	if distance == 0 {
		return
	}
	s.startScrolling()
	s.lastTouched += float64(distance)
	s.listener.OnScroll(distance)
}

// Release ends the gesture. A release faster than the minimal fling velocity
// starts an inertial animation, anything slower is justified right away.
func (s *Scroller) Release() {
	if !s.pressed {
		return
	}
	s.pressed = false
	s.listener.OnTouchUp()

	velocity := s.tracker.velocity(s.clock())
	s.tracker.reset()
	if math.Abs(velocity) < s.minFlingVelocity {
		s.justify()
		return
	}
	s.fling(velocity)
}

func (s *Scroller) fling(velocity float64) {
	if velocity > s.maxFlingVelocity {
		velocity = s.maxFlingVelocity
	} else if velocity < -s.maxFlingVelocity {
		velocity = -s.maxFlingVelocity
	}

	speed := math.Abs(velocity)
	distance := speed * speed / (2 * s.deceleration)
	duration := time.Duration(speed / s.deceleration * float64(time.Second))
	if duration > maxFlingDuration {
		duration = maxFlingDuration
	}
	if velocity < 0 {
		distance = -distance
	}

	s.startScrolling()
	s.generation++
	s.anim = animation{
		kind:         animationScroll,
		start:        s.clock(),
		duration:     duration,
		distance:     int(math.Round(distance)),
		interpolator: Decelerate,
	}
}

// Scroll animates the given distance over duration, emitting deltas that sum
// to distance. A zero duration selects the configured default duration.
func (s *Scroller) Scroll(distance int, duration time.Duration) {
	if duration <= 0 {
		duration = s.duration
	}
	s.generation++
	s.anim = animation{
		kind:         animationScroll,
		start:        s.clock(),
		duration:     duration,
		distance:     distance,
		interpolator: s.interpolator,
	}
	s.startScrolling()
}

// StopScrolling cancels any animation and finishes the sequence immediately.
func (s *Scroller) StopScrolling() {
	s.anim = animation{}
	s.finishScrolling()
}

// StopFling ends the current animation early as if it had run its course. It
// is used to stop momentum at over-scroll limits. The justify or finish step
// runs on the next Tick.
func (s *Scroller) StopFling() {
	if s.anim.kind != animationNone {
		s.anim.halted = true
	}
}

// Tick advances the running animation to the current time. It returns whether
// another frame is needed.
func (s *Scroller) Tick() bool {
	if s.anim.kind == animationNone {
		return false
	}

	a := &s.anim
	generation := s.generation
	finished := a.halted
	if !finished {
		t := 1.0
		if a.duration > 0 {
			t = clamp01(float64(s.clock().Sub(a.start)) / float64(a.duration))
		}
		target := a.distance
		if t < 1 {
			target = int(math.Round(float64(a.distance) * a.interpolator(t)))
		} else {
			finished = true
		}
		delta := target - a.emitted
		a.emitted = target
		if delta != 0 {
			s.listener.OnScroll(delta)
		}
		// OnScroll may have stopped or replaced the animation.
		if s.anim.kind == animationNone {
			return false
		}
		if s.generation != generation {
			return true
		}
		finished = finished || s.anim.halted
	}
	if !finished {
		return true
	}

	kind := s.anim.kind
	s.anim = animation{}
	if kind == animationScroll {
		s.justify()
	} else {
		s.finishScrolling()
	}
	return s.IsAnimating()
}

// justify asks the listener to settle. If it starts a settle animation the
// sequence finishes when that animation ends, otherwise right away.
func (s *Scroller) justify() {
	s.listener.OnJustify()
	if s.anim.kind != animationNone {
		s.anim.kind = animationJustify
		return
	}
	s.finishScrolling()
}

func (s *Scroller) startScrolling() {
	if !s.scrollingPerformed {
		s.scrollingPerformed = true
		s.listener.OnStarted()
	}
}

func (s *Scroller) finishScrolling() {
	if s.scrollingPerformed {
		s.scrollingPerformed = false
		s.listener.OnFinished()
	}
}
