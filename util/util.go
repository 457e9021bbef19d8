package util

import (
	"math/rand"
)

// RandomiseSaturation picks a saturation level between min and max.
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}
