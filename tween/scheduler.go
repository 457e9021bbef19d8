package tween

import (
	"time"
)

// A Scheduler holds the set of currently-playing timelines and advances each
// one by a per-frame delta on every tick. It never reads a clock itself; the
// host supplies the elapsed time.
type Scheduler struct {
	active []*Timeline
	speed  float64
}

// NewScheduler creates a Scheduler with a real-time speed multiplier.
func NewScheduler() *Scheduler {
	s := new(Scheduler)
	s.speed = 1.0
	return s
}

// SetSpeed scales every subsequent Advance delta. 1 is real time.
func (s *Scheduler) SetSpeed(multiplier float64) {
	s.speed = multiplier
}

func (s *Scheduler) add(t *Timeline) {
	for _, existing := range s.active {
		if existing == t {
			return
		}
	}
	s.active = append(s.active, t)
}

// Advance steps every running timeline by delta, firing the callbacks crossed
// along the way, then drops timelines that stopped or completed. Callbacks may
// start or stop timelines (including their own) while this runs; a timeline
// started mid-tick is first advanced on the next tick.
func (s *Scheduler) Advance(delta time.Duration) {
	deltaMs := int64(float64(delta.Milliseconds()) * s.speed)
	for i := len(s.active) - 1; i >= 0; i-- {
		tl := s.active[i]
		if !tl.running {
			continue
		}
		prev := tl.elapsedMs
		tl.elapsedMs += deltaMs
		tl.cacheOK = false
		tl.triggerCallbacks(prev, tl.elapsedMs)
		if tl.Done() {
			tl.running = false
		}
	}

	// Sweep out everything flagged not-running during this tick.
	n := 0
	for _, tl := range s.active {
		if tl.running {
			s.active[n] = tl
			n++
		}
	}
	for i := n; i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = s.active[:n]
}

// Active returns a snapshot of the running set for diagnostics. Timelines
// stopped since the last tick are flagged not-running and omitted even though
// they have not been swept yet.
func (s *Scheduler) Active() []*Timeline {
	out := make([]*Timeline, 0, len(s.active))
	for _, tl := range s.active {
		if tl.running {
			out = append(out, tl)
		}
	}
	return out
}
