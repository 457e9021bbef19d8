package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A GradientStop pins a hue at a position on the look-up table.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// Validate checks that the table spans [0, 1] with non-decreasing positions,
// so GetColor can always bracket its input.
func (g GradientTable) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("gradient needs at least 2 stops, has %d", len(g))
	}
	if g[0].Pos != 0 || g[len(g)-1].Pos != 1 {
		return fmt.Errorf("gradient must span positions 0 to 1, spans %v to %v",
			g[0].Pos, g[len(g)-1].Pos)
	}
	for i := 0; i < len(g)-1; i++ {
		if g[i+1].Pos < g[i].Pos {
			return fmt.Errorf("gradient positions decrease at stop %d", i+1)
		}
	}

	return nil
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// At (or past) the last stop.
	return colorful.Hcl(g[len(g)-1].Hue, 1.0, 0.05)
}
