package tween

import (
	"github.com/fogleman/ease"
	"github.com/rs/zerolog/log"
)

// An EasingFunc maps time elapsed within a segment to an interpolated value.
// elapsed and duration are in milliseconds, from is the segment's starting
// value and delta is the difference to its end value. Extra params are
// curve-specific (the elastic curves read params[0] as the period).
type EasingFunc func(elapsed, from, delta, duration float64, params ...float64) float64

// Easing selects a curve, either by registry name or as a direct function
// value. The zero value selects the default in-out curve.
type Easing struct {
	name string
	fn   EasingFunc
}

// ByName selects a curve from the registry, e.g. "linear" or "outBounce".
func ByName(name string) Easing {
	return Easing{name: name}
}

// Func selects a curve by function value.
func Func(fn EasingFunc) Easing {
	return Easing{fn: fn}
}

func (e Easing) resolve() EasingFunc {
	if e.fn != nil {
		return e.fn
	}
	if e.name != "" {
		return Resolve(e.name)
	}
	return defaultEasing
}

// Flat holds the starting value for the whole segment.
func Flat(elapsed, from, delta, duration float64, params ...float64) float64 {
	return from
}

// fromUnit adapts a unit-interval curve to the four-argument working range.
func fromUnit(f ease.Function) EasingFunc {
	return func(elapsed, from, delta, duration float64, params ...float64) float64 {
		if duration <= 0 {
			return from + delta
		}
		return from + delta*f(elapsed/duration)
	}
}

// elastic binds the optional period parameter to an elastic curve variant.
func elastic(variant func(period float64) ease.Function, fallback ease.Function) EasingFunc {
	return func(elapsed, from, delta, duration float64, params ...float64) float64 {
		f := fallback
		if len(params) > 0 {
			f = variant(params[0])
		}
		if duration <= 0 {
			return from + delta
		}
		return from + delta*f(elapsed/duration)
	}
}

var defaultEasing = fromUnit(ease.InOutQuad)

var curves = map[string]EasingFunc{
	"flat":         Flat,
	"linear":       fromUnit(ease.Linear),
	"inQuad":       fromUnit(ease.InQuad),
	"outQuad":      fromUnit(ease.OutQuad),
	"inOutQuad":    fromUnit(ease.InOutQuad),
	"inCubic":      fromUnit(ease.InCubic),
	"outCubic":     fromUnit(ease.OutCubic),
	"inOutCubic":   fromUnit(ease.InOutCubic),
	"inQuart":      fromUnit(ease.InQuart),
	"outQuart":     fromUnit(ease.OutQuart),
	"inOutQuart":   fromUnit(ease.InOutQuart),
	"inQuint":      fromUnit(ease.InQuint),
	"outQuint":     fromUnit(ease.OutQuint),
	"inOutQuint":   fromUnit(ease.InOutQuint),
	"inSine":       fromUnit(ease.InSine),
	"outSine":      fromUnit(ease.OutSine),
	"inOutSine":    fromUnit(ease.InOutSine),
	"inExpo":       fromUnit(ease.InExpo),
	"outExpo":      fromUnit(ease.OutExpo),
	"inOutExpo":    fromUnit(ease.InOutExpo),
	"inCirc":       fromUnit(ease.InCirc),
	"outCirc":      fromUnit(ease.OutCirc),
	"inOutCirc":    fromUnit(ease.InOutCirc),
	"inElastic":    elastic(ease.InElasticFunction, ease.InElastic),
	"outElastic":   elastic(ease.OutElasticFunction, ease.OutElastic),
	"inOutElastic": elastic(ease.InOutElasticFunction, ease.InOutElastic),
	"inBack":       fromUnit(ease.InBack),
	"outBack":      fromUnit(ease.OutBack),
	"inOutBack":    fromUnit(ease.InOutBack),
	"inBounce":     fromUnit(ease.InBounce),
	"outBounce":    fromUnit(ease.OutBounce),
	"inOutBounce":  fromUnit(ease.InOutBounce),
}

// Resolve looks up a named curve, falling back to the default in-out curve
// when the name is unrecognised.
func Resolve(name string) EasingFunc {
	if fn, ok := curves[name]; ok {
		return fn
	}
	log.Warn().Str("easing", name).Msg("Unknown easing, using inOutQuad")
	return defaultEasing
}
