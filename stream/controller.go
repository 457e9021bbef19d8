package stream

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/matt-g-everett/ledseq/tween"
)

// Controller that manages animations. It owns the engine scheduler, advances
// it once per frame and rotates through the available animations on a fixed
// cycle, crossfading between them.
type Controller struct {
	sched      *tween.Scheduler
	animation  Animation
	transition *Transition

	factories []func(sched *tween.Scheduler) Animation
	next      int

	runtimeMs    int64
	sinceCycleMs int64
	cycleMs      int64
	transitionMs int64
}

// NewController creates an instance of a Controller.
func NewController(config Config) *Controller {
	c := new(Controller)
	c.sched = tween.NewScheduler()
	c.cycleMs = int64(config.AnimationTimeSecs * 1000)
	c.transitionMs = int64(config.TransitionSecs * 1000)

	backColour, _ := colorful.Hex("#000005")
	foreColour, _ := colorful.Hex("#808080")
	gradient := config.Gradient

	c.factories = []func(sched *tween.Scheduler) Animation{
		func(sched *tween.Scheduler) Animation {
			return NewTwinkle(sched, 400, foreColour, backColour)
		},
		func(sched *tween.Scheduler) Animation {
			return NewGradientTrail(sched, gradient, 180, 6*time.Second)
		},
	}

	c.animation = c.factories[0](c.sched)
	c.next = 1

	return c
}

// Scheduler exposes the engine registry for diagnostics.
func (c *Controller) Scheduler() *tween.Scheduler {
	return c.sched
}

// Advance steps engine time by delta and rotates animations when the cycle
// elapses.
func (c *Controller) Advance(delta time.Duration) {
	c.sched.Advance(delta)
	c.runtimeMs += delta.Milliseconds()
	c.sinceCycleMs += delta.Milliseconds()

	if c.transition != nil && c.transition.Done() {
		retiring := c.animation
		c.animation = c.transition.Target()
		c.transition = nil
		if stopper, ok := retiring.(Stopper); ok {
			stopper.Stop()
		}
	}

	if c.transition == nil && c.sinceCycleMs >= c.cycleMs {
		c.sinceCycleMs = 0
		c.cycleAnimation()
	}
}

func (c *Controller) cycleAnimation() {
	next := c.factories[c.next](c.sched)
	c.next = (c.next + 1) % len(c.factories)
	c.transition = NewTransition(c.sched, c.animation, next,
		time.Duration(c.transitionMs)*time.Millisecond)
	log.Info().Int64("runtimeMs", c.runtimeMs).Msg("Cycling animation")
}

// CalculateFrame renders the current animation, or the crossfade while one is
// in progress.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	if c.transition != nil {
		return c.transition.CalculateFrame(runtimeMs)
	}
	return c.animation.CalculateFrame(runtimeMs)
}
