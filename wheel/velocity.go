package wheel

import "time"

// velocityWindow bounds how far back motion samples count towards the
// release velocity.
const velocityWindow = 100 * time.Millisecond

type motionSample struct {
	pos float64
	at  time.Time
}

// velocityTracker keeps the motion samples of the current gesture that fall
// within velocityWindow of the newest one.
type velocityTracker struct {
	samples []motionSample
}

func (v *velocityTracker) reset() {
	v.samples = v.samples[:0]
}

func (v *velocityTracker) add(pos float64, at time.Time) {
	v.samples = append(v.samples, motionSample{pos: pos, at: at})
	v.prune(at)
}

// prune drops samples older than velocityWindow relative to now, reusing the
// backing array.
func (v *velocityTracker) prune(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	kept := v.samples[:0]
	for _, s := range v.samples {
		if !s.at.Before(cutoff) {
			kept = append(kept, s)
		}
	}
	v.samples = kept
}

// velocity returns the motion speed in units per second at now. A pointer that
// has been held still for longer than the window has no velocity.
func (v *velocityTracker) velocity(now time.Time) float64 {
	v.prune(now)
	if len(v.samples) < 2 {
		return 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.pos - first.pos) / dt
}
