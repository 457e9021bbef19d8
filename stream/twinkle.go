package stream

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledseq/tween"
	"github.com/matt-g-everett/ledseq/util"
)

// A Twinkle is an Animation that pulses random particles, each driven by its
// own looping timeline so the pulses stay staggered.
type Twinkle struct {
	sched        *tween.Scheduler
	numParticles int
	foreColour   colorful.Color
	backColour   colorful.Color

	initialised bool
	particles   map[int]*tween.Timeline
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(sched *tween.Scheduler, numParticles int, foreColour, backColour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.sched = sched
	t.numParticles = numParticles
	t.foreColour = foreColour
	t.backColour = backColour

	t.initialised = false
	t.particles = make(map[int]*tween.Timeline)

	return t
}

func (t *Twinkle) initParticles(pixelCount int) {
	for i := 0; i < t.numParticles; i++ {
		pixel := rand.Intn(pixelCount)
		if _, found := t.particles[pixel]; found {
			continue
		}

		gain := util.RandomiseSaturation(0.4, 1.0)
		ramp := time.Duration(rand.Intn(1200)+600) * time.Millisecond
		rest := time.Duration(rand.Intn(2500)) * time.Millisecond

		// Rest dark, ease up to the particle's gain, then back down; looping
		// replays the rest so the particles never synchronise.
		pulse := tween.NewTimeline(t.sched)
		pulse.From(0).
			Sleep(rest).
			To(gain, ramp, tween.ByName("inOutQuad")).
			Again(1, true).
			Loop().
			Start()
		t.particles[pixel] = pulse
	}
	t.initialised = true
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()
	if !t.initialised {
		t.initParticles(len(f.pixels))
	}

	f.Fill(t.backColour)
	for pixel, pulse := range t.particles {
		f.pixels[pixel] = t.backColour.BlendHcl(t.foreColour, pulse.Value())
	}

	return f
}

// Stop releases every particle timeline.
func (t *Twinkle) Stop() {
	for _, pulse := range t.particles {
		pulse.Stop()
	}
}
