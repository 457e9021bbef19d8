package tween

import (
	"math"
	"testing"
)

func TestResolveNamedCurves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		curve   string
		elapsed float64
		want    float64
	}{
		{name: "linear midpoint", curve: "linear", elapsed: 500, want: 5},
		{name: "linear start", curve: "linear", elapsed: 0, want: 0},
		{name: "linear end", curve: "linear", elapsed: 1000, want: 10},
		{name: "inOutQuad midpoint", curve: "inOutQuad", elapsed: 500, want: 5},
		{name: "inQuad midpoint", curve: "inQuad", elapsed: 500, want: 2.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fn := Resolve(tt.curve)
			if got := fn(tt.elapsed, 0, 10, 1000); !almostEqual(got, tt.want) {
				t.Fatalf("%s(%v) = %v, want %v", tt.curve, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	t.Parallel()
	unknown := Resolve("definitely-not-a-curve")
	fallback := Resolve("inOutQuad")
	for _, elapsed := range []float64{0, 250, 500, 750, 1000} {
		if got, want := unknown(elapsed, 0, 1, 1000), fallback(elapsed, 0, 1, 1000); got != want {
			t.Fatalf("fallback mismatch at %v: %v != %v", elapsed, got, want)
		}
	}
}

func TestFlatHoldsFromValue(t *testing.T) {
	t.Parallel()
	if got := Flat(123, 7, 5, 1000); got != 7 {
		t.Fatalf("Flat = %v, want 7", got)
	}
}

func TestZeroDurationResolvesToEnd(t *testing.T) {
	t.Parallel()
	fn := Resolve("linear")
	if got := fn(0, 3, 4, 0); got != 7 {
		t.Fatalf("zero-duration curve = %v, want 7", got)
	}
}

func TestElasticPeriodParam(t *testing.T) {
	t.Parallel()
	fn := Resolve("outElastic")

	// The curve lands near its target with or without an explicit period.
	if got := fn(1000, 0, 10, 1000); math.Abs(got-10) > 0.1 {
		t.Fatalf("outElastic end = %v, want ~10", got)
	}
	if got := fn(1000, 0, 10, 1000, 0.5); math.Abs(got-10) > 0.1 {
		t.Fatalf("outElastic with period end = %v, want ~10", got)
	}

	// Different periods oscillate differently mid-curve.
	a := fn(300, 0, 10, 1000, 0.2)
	b := fn(300, 0, 10, 1000, 0.7)
	if a == b {
		t.Fatalf("period parameter had no effect (%v)", a)
	}
}

func TestEasingZeroValueIsDefault(t *testing.T) {
	t.Parallel()
	var e Easing
	fn := fallbackSample(e.resolve())
	want := fallbackSample(defaultEasing)
	if fn != want {
		t.Fatalf("zero-value Easing = %v, want %v", fn, want)
	}
}

func fallbackSample(fn EasingFunc) float64 {
	return fn(250, 0, 1, 1000)
}
