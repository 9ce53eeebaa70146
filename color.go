package river

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	husl "github.com/hsluv/hsluv-go"
)

// RGBA is a colour with straight (non-premultiplied) alpha. Components are
// nominally in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

var (
	White = RGBA{1, 1, 1, 1}
	Black = RGBA{0, 0, 0, 1}
	// Pink is the colour the centerline trail is drawn in.
	Pink = RGBA{1, 192.0 / 255, 203.0 / 255, 1}
	// Coral is the colour of the closed-loop preset.
	Coral = RGBA{1, 0.2, 0.2, 1}
)

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Lerp linearly interpolates each component between c and o.
func (c RGBA) Lerp(o RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// IsNaN reports whether any component is NaN.
func (c RGBA) IsNaN() bool {
	return math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) || math.IsNaN(c.A)
}

// NRGBA converts c to an 8-bit colour, clamping components to [0, 1].
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(f float64) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math.Round(f * 255))
}

// HSLuv returns the colour with the given HSLuv hue (degrees), saturation and
// lightness (both percentages) and alpha.
func HSLuv(h, s, l, a float64) RGBA {
	r, g, b := husl.HuslToRGB(h, s, l)
	return RGBA{R: r, G: g, B: b, A: a}
}

// RandomColor returns an opaque, saturated colour of random hue. Callers that
// want reproducible colours pass a seeded source.
func RandomColor(r *rand.Rand) RGBA {
	return HSLuv(r.Float64()*360, 90, 60, 1)
}
