package stream

import (
	"math"
	"time"

	"github.com/matt-g-everett/ledseq/tween"
)

// A GradientTrail is an Animation that cycles a gradient along an led strip,
// its offset driven by a looping linear timeline.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	offset      *tween.Timeline
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(sched *tween.Scheduler, gradient GradientTable, trailLength int, cycle time.Duration) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength

	g.offset = tween.NewTimeline(sched)
	g.offset.From(0).
		To(float64(trailLength), cycle, tween.ByName("linear")).
		Loop().
		Start()

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()
	saturation := 1.0
	luminance := 0.05
	current := g.offset.Value()
	pixelCount := len(f.pixels)
	for i := 0; i < pixelCount; i++ {
		t := math.Mod(float64(i+pixelCount)-current, float64(g.trailLength)) / float64(g.trailLength)
		f.pixels[i] = g.gradient.GetColor(t, saturation, luminance)
	}

	return f
}

// Stop releases the offset timeline.
func (g *GradientTrail) Stop() {
	g.offset.Stop()
}
