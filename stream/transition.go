package stream

import (
	"time"

	"github.com/matt-g-everett/ledseq/tween"
)

// A Transition crossfades between two Animations, eased by a timeline that
// drives the blend point from 0 to 1. A callback half-way through marks the
// midpoint so callers can swap any per-animation state exactly once.
type Transition struct {
	from     Animation
	to       Animation
	blend    *tween.Timeline
	midpoint bool
}

// NewTransition creates a Transition and starts its blend timeline.
func NewTransition(sched *tween.Scheduler, from, to Animation, d time.Duration) *Transition {
	t := new(Transition)
	t.from = from
	t.to = to

	t.blend = tween.NewTimeline(sched)
	t.blend.From(0).
		To(1, d, tween.ByName("inOutQuad")).
		Callback(t.markMidpoint, -d/2).
		Start()

	return t
}

func (t *Transition) markMidpoint() {
	t.midpoint = true
}

// MidpointReached reports whether the blend has crossed the half-way point.
func (t *Transition) MidpointReached() bool {
	return t.midpoint
}

// Done reports whether the crossfade has completed.
func (t *Transition) Done() bool {
	return t.blend.Done()
}

// Target returns the animation being transitioned to.
func (t *Transition) Target() Animation {
	return t.to
}

// CalculateFrame renders both animations and blends them at the current
// blend point.
func (t *Transition) CalculateFrame(runtimeMs int64) *Frame {
	f1 := t.from.CalculateFrame(runtimeMs)
	f2 := t.to.CalculateFrame(runtimeMs)
	return f1.InterpolateFrame(f2, t.blend.Value())
}
