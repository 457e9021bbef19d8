package tween

import (
	"testing"
	"time"
)

func TestSchedulerRemovesCompletedTimelines(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	tl := NewTimeline(s).From(0).To(10, 500*time.Millisecond, ByName("linear")).Start()

	s.Advance(600 * time.Millisecond)
	if got := len(s.Active()); got != 0 {
		t.Fatalf("active set has %d timelines after completion, want 0", got)
	}
	if !tl.Done() {
		t.Fatal("timeline not done after playing through its span")
	}
	if got := tl.Value(); got != 10 {
		t.Fatalf("Value after completion = %v, want 10", got)
	}
}

func TestLoopingTimelineIsNeverDone(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	tl := NewTimeline(s).From(0).To(10, 500*time.Millisecond, ByName("linear")).Loop().Start()

	s.Advance(5 * time.Second)
	if tl.Done() {
		t.Fatal("looping timeline reported done")
	}
	if got := len(s.Active()); got != 1 {
		t.Fatalf("active set has %d timelines, want 1", got)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	tl := NewTimeline(s).From(0).To(10, time.Second, ByName("linear"))

	tl.Start().Start()
	if got := len(s.Active()); got != 1 {
		t.Fatalf("active set has %d timelines after double Start, want 1", got)
	}

	// Lazily-removed timelines must not be registered twice either.
	tl.Stop()
	tl.Start()
	if got := len(s.Active()); got != 1 {
		t.Fatalf("active set has %d timelines after Stop/Start, want 1", got)
	}
}

func TestStopFromOwnCallback(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	tl := NewTimeline(s)
	tl.From(0).
		To(10, time.Second, ByName("linear")).
		Callback(func() { tl.Stop() }, -750*time.Millisecond).
		Start()

	s.Advance(300 * time.Millisecond)
	if got := len(s.Active()); got != 0 {
		t.Fatalf("active set has %d timelines after mid-tick Stop, want 0", got)
	}
	if got := tl.Elapsed(); got != 0 {
		t.Fatalf("Elapsed after Stop = %v, want 0", got)
	}
}

func TestRestartFromOwnCallback(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	tl := NewTimeline(s)
	tl.From(0).
		To(10, time.Second, ByName("linear")).
		Callback(func() { tl.Restart() }, -600*time.Millisecond).
		Start()

	s.Advance(500 * time.Millisecond)
	if got := len(s.Active()); got != 1 {
		t.Fatalf("active set has %d timelines after mid-tick Restart, want 1", got)
	}
	if got := tl.Elapsed(); got != 0 {
		t.Fatalf("Elapsed after Restart = %v, want 0", got)
	}
}

func TestCallbackStartsAnotherTimeline(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	other := NewTimeline(s).From(0).To(1, time.Second, ByName("linear"))
	NewTimeline(s).
		From(0).
		To(10, time.Second, ByName("linear")).
		Callback(func() { other.Start() }, -800*time.Millisecond).
		Start()

	s.Advance(300 * time.Millisecond)
	if got := len(s.Active()); got != 2 {
		t.Fatalf("active set has %d timelines, want 2", got)
	}
	// The newly-started timeline is first advanced on the next tick.
	if got := other.Elapsed(); got != 0 {
		t.Fatalf("Elapsed of mid-tick start = %v, want 0", got)
	}

	s.Advance(300 * time.Millisecond)
	if got := other.Elapsed(); got != 300*time.Millisecond {
		t.Fatalf("Elapsed after next tick = %v, want 300ms", got)
	}
}

func TestSpeedMultiplier(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	s.SetSpeed(2)
	tl := NewTimeline(s).From(0).To(10, time.Second, ByName("linear")).Start()

	s.Advance(250 * time.Millisecond)
	if got := tl.Value(); got != 5 {
		t.Fatalf("Value at double speed = %v, want 5", got)
	}
}

func TestAdvanceInvalidatesValueCache(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	calls := 0
	counting := func(elapsed, from, delta, duration float64, params ...float64) float64 {
		calls++
		return from + delta*elapsed/duration
	}
	tl := NewTimeline(s).From(0).To(10, time.Second, Func(counting)).Start()

	s.Advance(100 * time.Millisecond)
	tl.Value()
	tl.Value()
	if calls != 1 {
		t.Fatalf("easing invoked %d times before next tick, want 1", calls)
	}

	s.Advance(100 * time.Millisecond)
	tl.Value()
	if calls != 2 {
		t.Fatalf("easing invoked %d times after next tick, want 2", calls)
	}
}
