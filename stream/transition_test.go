package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledseq/tween"
)

type solid struct {
	colour colorful.Color
}

func (s *solid) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame()
	f.Fill(s.colour)
	return f
}

func TestTransitionMidpointAndCompletion(t *testing.T) {
	t.Parallel()
	sched := tween.NewScheduler()
	black, _ := colorful.Hex("#000000")
	white, _ := colorful.Hex("#ffffff")
	tr := NewTransition(sched, &solid{black}, &solid{white}, 2*time.Second)

	sched.Advance(900 * time.Millisecond)
	if tr.MidpointReached() {
		t.Fatal("midpoint reported before half-way")
	}

	sched.Advance(200 * time.Millisecond)
	if !tr.MidpointReached() {
		t.Fatal("midpoint not reported after half-way")
	}
	if tr.Done() {
		t.Fatal("transition done before its duration elapsed")
	}

	sched.Advance(time.Second)
	if !tr.Done() {
		t.Fatal("transition not done after its duration")
	}
	if got := tr.blend.Value(); got != 1 {
		t.Fatalf("blend point after completion = %v, want 1", got)
	}
	if got := len(sched.Active()); got != 0 {
		t.Fatalf("blend timeline still active (%d running), want 0", got)
	}
}

func TestTransitionRendersBothSides(t *testing.T) {
	t.Parallel()
	sched := tween.NewScheduler()
	black, _ := colorful.Hex("#000000")
	white, _ := colorful.Hex("#ffffff")
	tr := NewTransition(sched, &solid{black}, &solid{white}, time.Second)

	// Before any tick the blend point is 0, so the frame is the source.
	f := tr.CalculateFrame(0)
	r, g, b := f.pixels[0].Clamped().RGB255()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("frame at blend 0 = %d,%d,%d, want black", r, g, b)
	}

	sched.Advance(2 * time.Second)
	f = tr.CalculateFrame(0)
	r, g, b = f.pixels[0].Clamped().RGB255()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("frame at blend 1 = %d,%d,%d, want white", r, g, b)
	}
}
