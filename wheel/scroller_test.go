package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	events   []string
	scrolled int
	justify  func()
}

func (l *recordingListener) OnStarted()  { l.events = append(l.events, "started") }
func (l *recordingListener) OnTouch()    { l.events = append(l.events, "touch") }
func (l *recordingListener) OnTouchUp()  { l.events = append(l.events, "touchup") }
func (l *recordingListener) OnFinished() { l.events = append(l.events, "finished") }

func (l *recordingListener) OnScroll(distance int) {
	if n := len(l.events); n == 0 || l.events[n-1] != "scroll" {
		l.events = append(l.events, "scroll")
	}
	l.scrolled += distance
}

func (l *recordingListener) OnJustify() {
	l.events = append(l.events, "justify")
	if l.justify != nil {
		l.justify()
	}
}

func newTestScroller() (*Scroller, *recordingListener, *manualClock) {
	clock := newManualClock()
	l := &recordingListener{}
	cfg := DefaultConfig()
	cfg.Clock = clock.Now
	return NewScroller(l, cfg), l, clock
}

func runScroller(t *testing.T, s *Scroller, clock *manualClock) {
	t.Helper()
	for range 10000 {
		clock.Advance(frame)
		if !s.Tick() {
			return
		}
	}
	t.Fatal("scroller did not settle")
}

func TestScrollerDragLifecycle(t *testing.T) {
	s, l, clock := newTestScroller()

	s.Press(100)
	clock.Advance(10 * time.Millisecond)
	s.Move(100.4)
	clock.Advance(10 * time.Millisecond)
	s.Move(93.5)
	assert.Equal(t, -6, l.scrolled)
	assert.True(t, s.IsScrolling())

	clock.Advance(time.Second)
	s.Release()

	assert.False(t, s.IsAnimating())
	assert.Equal(t, []string{"touch", "started", "scroll", "touchup", "justify", "finished"}, l.events)
}

func TestScrollerTapDoesNotStart(t *testing.T) {
	s, l, _ := newTestScroller()

	s.Press(10)
	s.Release()

	assert.Equal(t, []string{"touch", "touchup", "justify"}, l.events)
	assert.False(t, s.IsScrolling())
}

func TestScrollerScrollDeltasSumToDistance(t *testing.T) {
	for _, interpolator := range []Interpolator{Linear, Decelerate, AccelerateDecelerate, Overshoot(2)} {
		s, l, clock := newTestScroller()
		s.SetInterpolator(interpolator)

		s.Scroll(-137, 300*time.Millisecond)
		require.True(t, s.IsAnimating())
		runScroller(t, s, clock)

		assert.Equal(t, -137, l.scrolled)
		assert.Equal(t, []string{"started", "scroll", "justify", "finished"}, l.events)
	}
}

func TestScrollerZeroDurationUsesDefault(t *testing.T) {
	s, _, clock := newTestScroller()

	s.Scroll(40, 0)
	clock.Advance(DefaultScrollDuration / 2)
	assert.True(t, s.Tick())
	clock.Advance(DefaultScrollDuration / 2)
	assert.False(t, s.Tick())
}

func TestScrollerJustifyAnimation(t *testing.T) {
	s, l, clock := newTestScroller()
	l.justify = func() {
		if l.scrolled != 0 {
			s.Scroll(-l.scrolled, 100*time.Millisecond)
		}
	}

	s.Scroll(25, 100*time.Millisecond)
	runScroller(t, s, clock)

	assert.Zero(t, l.scrolled)
	assert.Equal(t, []string{"started", "scroll", "justify", "scroll", "finished"}, l.events)
}

func TestScrollerFling(t *testing.T) {
	s, l, clock := newTestScroller()

	s.Press(0)
	for i := 1; i <= 5; i++ {
		clock.Advance(10 * time.Millisecond)
		s.Move(float64(i * 5))
	}
	s.Release()
	require.True(t, s.IsAnimating())
	runScroller(t, s, clock)

	// 500 units/s at 400 units/s² travels 312.5 units after the 25 dragged.
	assert.Equal(t, 25+313, l.scrolled)
	assert.Equal(t, "finished", l.events[len(l.events)-1])
}

func TestScrollerFlingVelocityIsCapped(t *testing.T) {
	s, l, clock := newTestScroller()

	s.Press(0)
	clock.Advance(time.Millisecond)
	s.Move(1000)
	s.Release()
	runScroller(t, s, clock)

	maxDistance := DefaultMaxFlingVelocity * DefaultMaxFlingVelocity / (2 * DefaultDeceleration)
	assert.LessOrEqual(t, l.scrolled, 1000+maxDistance)
}

func TestScrollerPressCatchesFling(t *testing.T) {
	s, l, clock := newTestScroller()

	s.Press(0)
	clock.Advance(10 * time.Millisecond)
	s.Move(20)
	s.Release()
	require.True(t, s.IsAnimating())

	clock.Advance(frame)
	s.Tick()
	s.Press(50)
	assert.False(t, s.IsAnimating())
	assert.True(t, s.IsScrolling())
	assert.NotContains(t, l.events, "finished")

	clock.Advance(time.Second)
	s.Release()
	assert.Equal(t, "finished", l.events[len(l.events)-1])
}

func TestScrollerStopScrolling(t *testing.T) {
	s, l, clock := newTestScroller()

	s.Scroll(100, 0)
	clock.Advance(frame)
	s.Tick()
	s.StopScrolling()
	s.StopScrolling()

	assert.False(t, s.IsAnimating())
	assert.Equal(t, []string{"started", "scroll", "finished"}, l.events)
}

func TestScrollerStopFlingJustifies(t *testing.T) {
	s, l, clock := newTestScroller()

	s.Scroll(100, 0)
	clock.Advance(frame)
	s.Tick()
	s.StopFling()
	assert.False(t, s.Tick())

	assert.Less(t, l.scrolled, 100)
	assert.Equal(t, []string{"started", "scroll", "justify", "finished"}, l.events)
}

func TestVelocityTracker(t *testing.T) {
	var v velocityTracker
	start := newManualClock().Now()

	v.add(0, start)
	v.add(10, start.Add(50*time.Millisecond))
	assert.InDelta(t, 200, v.velocity(start.Add(50*time.Millisecond)), 1e-9)

	assert.Zero(t, v.velocity(start.Add(time.Second)))
}

func TestTween(t *testing.T) {
	var tw Tween
	now := newManualClock().Now()
	tw.Interpolator = Linear

	tw.Start(0, 1, 100*time.Millisecond, now)
	require.True(t, tw.Running())
	assert.InDelta(t, 0.5, tw.Value(now.Add(50*time.Millisecond)), 1e-9)
	assert.Equal(t, 1.0, tw.Value(now.Add(200*time.Millisecond)))
	assert.False(t, tw.Running())
}

func TestInterpolatorsEndAtOne(t *testing.T) {
	for _, f := range []Interpolator{Linear, Decelerate, AccelerateDecelerate, Overshoot(2)} {
		assert.InDelta(t, 0, f(0), 1e-9)
		assert.InDelta(t, 1, f(1), 1e-9)
	}
}
