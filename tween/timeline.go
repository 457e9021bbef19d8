package tween

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// PlaybackMode controls how a timeline's unbounded elapsed time maps into its
// bounded span.
type PlaybackMode int

const (
	// ModeClamp holds the final value once the timeline completes.
	ModeClamp PlaybackMode = iota
	// ModeLoop wraps back to the start on completion.
	ModeLoop
	// ModeMirror bounces back and forth between the ends.
	ModeMirror
)

func (m PlaybackMode) String() string {
	switch m {
	case ModeLoop:
		return "loop"
	case ModeMirror:
		return "mirror"
	default:
		return "clamp"
	}
}

// DefaultDuration is used by To when the caller passes a negative duration.
const DefaultDuration = 300 * time.Millisecond

// A segment is one easing leg. Segments are contiguous: each starts where the
// previous one ends, so startMs+durMs of the last segment is the timeline span.
type segment struct {
	startMs int64
	from    float64
	to      float64
	durMs   int64
	fn      EasingFunc
	params  []float64
}

func (s segment) endMs() int64 {
	return s.startMs + s.durMs
}

type callbackEntry struct {
	atMs int64
	fn   func()
}

// A Timeline is an ordered chain of easing segments plus scheduled callbacks,
// advanced by elapsed time. Build it with From followed by chained To, Set,
// Sleep, Again and Callback calls, then Start it on its Scheduler and read it
// with Value each frame.
type Timeline struct {
	sched     *Scheduler
	segments  []segment
	callbacks []callbackEntry
	totalMs   int64
	elapsedMs int64
	mode      PlaybackMode
	running   bool

	segHint  int
	cacheKey int64
	cacheVal float64
	cacheOK  bool
}

// NewTimeline creates a Timeline registered against the given Scheduler.
func NewTimeline(sched *Scheduler) *Timeline {
	t := new(Timeline)
	t.sched = sched
	return t
}

func (t *Timeline) resetCaches() {
	t.segHint = 0
	t.cacheOK = false
}

func (t *Timeline) lastSegment() segment {
	return t.segments[len(t.segments)-1]
}

// From resets the timeline to a flat starting value, clearing all segments,
// callbacks, the clock and the caches. It must precede any other builder call.
func (t *Timeline) From(value float64) *Timeline {
	t.segments = t.segments[:0]
	t.callbacks = t.callbacks[:0]
	t.totalMs = 0
	t.elapsedMs = 0
	t.resetCaches()
	t.segments = append(t.segments, segment{from: value, to: value, fn: Flat})
	return t
}

// To appends a segment easing from the previous end value to target over d.
// A negative d selects DefaultDuration; a zero d is an instant jump.
func (t *Timeline) To(target float64, d time.Duration, easing Easing, params ...float64) *Timeline {
	if len(t.segments) == 0 {
		log.Warn().Msg("To called before From, ignoring")
		return t
	}
	if d < 0 {
		d = DefaultDuration
	}
	last := t.lastSegment()
	durMs := d.Milliseconds()
	t.segments = append(t.segments, segment{
		startMs: last.endMs(),
		from:    last.to,
		to:      target,
		durMs:   durMs,
		fn:      easing.resolve(),
		params:  params,
	})
	t.totalMs += durMs
	return t
}

// Set appends an instant jump to value. It takes no time at all.
func (t *Timeline) Set(value float64) *Timeline {
	if len(t.segments) == 0 {
		log.Warn().Msg("Set called before From, ignoring")
		return t
	}
	last := t.lastSegment()
	t.segments = append(t.segments, segment{
		startMs: last.endMs(),
		from:    value,
		to:      value,
		fn:      Flat,
	})
	return t
}

// Sleep appends a hold of the previous value for d. A zero d is a no-op.
func (t *Timeline) Sleep(d time.Duration) *Timeline {
	if len(t.segments) == 0 {
		log.Warn().Msg("Sleep called before From, ignoring")
		return t
	}
	durMs := d.Milliseconds()
	if durMs <= 0 {
		return t
	}
	last := t.lastSegment()
	t.segments = append(t.segments, segment{
		startMs: last.endMs(),
		from:    last.to,
		to:      last.to,
		durMs:   durMs,
		fn:      Flat,
	})
	t.totalMs += durMs
	return t
}

// Again duplicates the last segment repeat times, chained sequentially. When
// mirror is set each duplicate swaps from/to relative to the segment appended
// just before it, so repeated mirroring alternates direction every step.
func (t *Timeline) Again(repeat int, mirror bool) *Timeline {
	if len(t.segments) == 0 {
		log.Warn().Msg("Again called before From, ignoring")
		return t
	}
	for i := 0; i < repeat; i++ {
		last := t.lastSegment()
		next := segment{
			startMs: last.endMs(),
			from:    last.from,
			to:      last.to,
			durMs:   last.durMs,
			fn:      last.fn,
			params:  last.params,
		}
		if mirror {
			next.from, next.to = last.to, last.from
		}
		t.segments = append(t.segments, next)
		t.totalMs += next.durMs
	}
	return t
}

// Callback schedules fn to fire when playback crosses the end of the last
// segment plus offset. A negative offset fires before the segment boundary.
func (t *Timeline) Callback(fn func(), offset time.Duration) *Timeline {
	if len(t.segments) == 0 {
		log.Warn().Msg("Callback called before From, ignoring")
		return t
	}
	t.callbacks = append(t.callbacks, callbackEntry{
		atMs: t.lastSegment().endMs() + offset.Milliseconds(),
		fn:   fn,
	})
	return t
}

// Loop makes elapsed time wrap around the timeline span.
func (t *Timeline) Loop() *Timeline {
	t.mode = ModeLoop
	return t
}

// Mirror makes elapsed time bounce back and forth across the timeline span.
func (t *Timeline) Mirror() *Timeline {
	t.mode = ModeMirror
	return t
}

// Start registers the timeline with its scheduler. Starting an empty or
// already-running timeline is a no-op.
func (t *Timeline) Start() *Timeline {
	if len(t.segments) == 0 {
		log.Warn().Msg("Cannot start an empty timeline")
		return t
	}
	if t.running || t.sched == nil {
		return t
	}
	t.running = true
	t.sched.add(t)
	return t
}

// Stop halts playback and rewinds the clock. The scheduler drops the timeline
// on its next tick.
func (t *Timeline) Stop() *Timeline {
	t.running = false
	t.elapsedMs = 0
	t.resetCaches()
	return t
}

// Pause halts playback but preserves the clock.
func (t *Timeline) Pause() *Timeline {
	t.running = false
	return t
}

// Restart rewinds the clock and starts playback.
func (t *Timeline) Restart() *Timeline {
	t.elapsedMs = 0
	t.resetCaches()
	return t.Start()
}

// Running reports whether the timeline is playing.
func (t *Timeline) Running() bool {
	return t.running
}

// Elapsed returns the raw clock, which is unbounded while looping.
func (t *Timeline) Elapsed() time.Duration {
	return time.Duration(t.elapsedMs) * time.Millisecond
}

// Total returns the sum of all segment durations.
func (t *Timeline) Total() time.Duration {
	return time.Duration(t.totalMs) * time.Millisecond
}

// Mode returns the playback mode.
func (t *Timeline) Mode() PlaybackMode {
	return t.mode
}

// Done reports whether a clamped timeline has played through its span.
// Looping and mirroring timelines are never done on their own.
func (t *Timeline) Done() bool {
	return t.mode == ModeClamp && t.elapsedMs >= t.totalMs
}

// Value resolves the timeline at the current clock.
func (t *Timeline) Value() float64 {
	return t.valueAt(t.elapsedMs)
}

// ValueAt resolves the timeline at an explicit raw time, independent of the
// clock.
func (t *Timeline) ValueAt(at time.Duration) float64 {
	return t.valueAt(at.Milliseconds())
}

func (t *Timeline) valueAt(rawMs int64) float64 {
	if len(t.segments) == 0 {
		log.Warn().Msg("Value requested from an empty timeline")
		return 0
	}
	if t.cacheOK && t.cacheKey == rawMs {
		return t.cacheVal
	}
	pos, _ := t.clampedTime(rawMs)
	seg := t.segmentAt(pos)
	var v float64
	if seg.durMs == 0 {
		v = seg.to
	} else {
		v = seg.fn(float64(pos-seg.startMs), seg.from, seg.to-seg.from, float64(seg.durMs), seg.params...)
	}
	t.cacheKey = rawMs
	t.cacheVal = v
	t.cacheOK = true
	return v
}

// clampedTime maps the unbounded raw clock into [0, totalMs] according to the
// playback mode, along with the direction of travel at that instant.
func (t *Timeline) clampedTime(rawMs int64) (int64, bool) {
	if t.totalMs == 0 {
		return 0, true
	}
	switch t.mode {
	case ModeLoop:
		return floorMod(rawMs, t.totalMs), true
	case ModeMirror:
		m := floorMod(rawMs, 2*t.totalMs)
		if m > t.totalMs {
			return 2*t.totalMs - m, false
		}
		return m, true
	default:
		if rawMs < 0 {
			return 0, true
		}
		if rawMs > t.totalMs {
			return t.totalMs, true
		}
		return rawMs, true
	}
}

func floorMod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// segmentAt finds the segment covering pos, walking left/right from the cached
// index of the previous lookup. At a boundary shared by two segments the later
// one wins, except past the final segment where there is nothing to enter.
func (t *Timeline) segmentAt(pos int64) *segment {
	i := t.segHint
	if i < 0 || i >= len(t.segments) {
		i = 0
	}
	for i > 0 && pos < t.segments[i].startMs {
		i--
	}
	for i < len(t.segments)-1 && pos >= t.segments[i].endMs() {
		i++
	}
	seg := &t.segments[i]
	if pos < seg.startMs || pos > seg.endMs() {
		log.Warn().Int64("position", pos).Msg("No segment covers position, using first")
		t.segHint = 0
		return &t.segments[0]
	}
	t.segHint = i
	return seg
}

// triggerCallbacks fires every callback whose timestamp was crossed while the
// raw clock moved from prevMs to nowMs, exactly once per crossing. Looping and
// mirroring require splitting the step at wrap and bounce points.
func (t *Timeline) triggerCallbacks(prevMs, nowMs int64) {
	if len(t.callbacks) == 0 || nowMs <= prevMs {
		return
	}
	if t.totalMs == 0 {
		// A zero-span timeline has nowhere to travel, whatever the playback
		// mode; its t=0 callbacks fire on the first tick only.
		if prevMs == 0 {
			t.fireRange(0, 0, true)
		}
		return
	}
	start, forward := t.clampedTime(prevMs)

	if t.mode == ModeClamp {
		end, _ := t.clampedTime(nowMs)
		t.fireRange(start, end, true)
		return
	}

	delta := nowMs - prevMs
	if delta > t.totalMs {
		// Whole cycles were skipped over; every callback fires once for them,
		// then the partial remainder is handled below.
		t.fireRange(0, t.totalMs, true)
		delta %= t.totalMs
		if delta == 0 {
			return
		}
	}

	end := start + delta
	if !forward {
		end = start - delta
	}

	switch {
	case end < 0:
		// The step folds back at the zero boundary.
		folded, _ := t.clampedTime(end)
		hi := start
		if folded > hi {
			hi = folded
		}
		t.fireRange(0, hi, false)
	case end > t.totalMs:
		if t.mode == ModeLoop {
			wrapped, _ := t.clampedTime(end)
			t.fireRange(start, t.totalMs, true)
			t.fireRange(0, wrapped, true)
		} else {
			// Mirror: the step reflects off the far boundary.
			reflected, _ := t.clampedTime(end)
			lo := start
			if reflected < lo {
				lo = reflected
			}
			t.fireRange(lo, t.totalMs, true)
		}
	default:
		t.fireRange(start, end, forward)
	}
}

// fireRange fires every callback strictly inside the range, plus the endpoint
// in the direction of travel, plus a callback at 0 when a forward range starts
// there (a timeline just started with a callback scheduled at 0).
func (t *Timeline) fireRange(a, b int64, forward bool) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	var due []callbackEntry
	for _, cb := range t.callbacks {
		at := cb.atMs
		fires := (at > lo && at < hi) ||
			(forward && at == hi && hi > lo) ||
			(!forward && at == lo && hi > lo) ||
			(forward && lo == 0 && at == 0)
		if fires {
			due = append(due, cb)
		}
	}
	if len(due) == 0 {
		return
	}

	// Fire in the direction of travel, from a snapshot so that callbacks may
	// freely mutate this timeline.
	sort.Slice(due, func(i, j int) bool {
		if forward {
			return due[i].atMs < due[j].atMs
		}
		return due[i].atMs > due[j].atMs
	})
	for _, cb := range due {
		cb.fn()
	}
}
