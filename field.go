package river

import (
	"fmt"
	"math"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
	"go.uber.org/multierr"
)

// DryLand is the value a [NoiseField] reports outside its bounds. It is the
// field's maximum, so gradients near the border push the river back inside.
const DryLand = 1.0

// Field is a scalar field over the plane. Implementations must be safe for
// concurrent use.
type Field interface {
	At(p Point) float64
}

// ConstField is a flat field.
type ConstField float64

func (f ConstField) At(Point) float64 { return float64(f) }

// FieldFunc adapts a function to the Field interface.
type FieldFunc func(p Point) float64

func (f FieldFunc) At(p Point) float64 { return f(p) }

// Noise selects the coherent noise that backs a [NoiseField].
type Noise int

const (
	// Perlin is fractal Brownian motion over Perlin gradient noise.
	Perlin Noise = iota
	// Simplex is fractal Brownian motion over OpenSimplex noise.
	Simplex
)

func (n Noise) String() string {
	switch n {
	case Perlin:
		return "perlin"
	case Simplex:
		return "simplex"
	default:
		return fmt.Sprintf("Noise(%d)", int(n))
	}
}

// ParseNoise parses the name returned by [Noise.String].
func ParseNoise(s string) (Noise, error) {
	switch strings.ToLower(s) {
	case "perlin":
		return Perlin, nil
	case "simplex", "opensimplex":
		return Simplex, nil
	default:
		return 0, &ConfigError{Field: "Noise", Reason: fmt.Sprintf("unknown noise %q", s)}
	}
}

// FieldConfig describes a [NoiseField].
type FieldConfig struct {
	Seed int64
	// Scale is the world distance corresponding to one unit of noise space.
	Scale float64
	// Bounds is the region in which the field is defined. Outside of it the
	// field reports DryLand.
	Bounds  Rect
	Octaves int
	Noise   Noise
}

// Reference scales of the height and width fields.
const (
	HeightScale = 100
	WidthScale  = 50
)

// DefaultFieldConfig returns a six-octave Perlin field over bounds.
func DefaultFieldConfig(seed int64, scale float64, bounds Rect) FieldConfig {
	return FieldConfig{
		Seed:    seed,
		Scale:   scale,
		Bounds:  bounds,
		Octaves: 6,
		Noise:   Perlin,
	}
}

func (fc FieldConfig) validate() error {
	var err error
	if !finite(fc.Scale) || fc.Scale <= 0 {
		err = multierr.Append(err, &ConfigError{Field: "Scale", Reason: "must be positive and finite"})
	}
	if fc.Bounds.IsNaN() || fc.Bounds.IsInf() || fc.Bounds.Abs().IsEmpty() {
		err = multierr.Append(err, &ConfigError{Field: "Bounds", Reason: "must be a finite, non-empty rectangle"})
	}
	if fc.Octaves < 1 {
		err = multierr.Append(err, &ConfigError{Field: "Octaves", Reason: "must be at least 1"})
	}
	if fc.Noise != Perlin && fc.Noise != Simplex {
		err = multierr.Append(err, &ConfigError{Field: "Noise", Reason: fmt.Sprintf("unknown noise %s", fc.Noise)})
	}
	return err
}

// NoiseField is a seeded, bounded, multi-octave noise field. It is immutable
// after construction.
type NoiseField struct {
	cfg  FieldConfig
	eval func(x, y float64) float64
}

var _ Field = (*NoiseField)(nil)

// NewNoiseField returns the field described by fc.
func NewNoiseField(fc FieldConfig) (*NoiseField, error) {
	if err := fc.validate(); err != nil {
		return nil, fmt.Errorf("noise field: %w", err)
	}
	fc.Bounds = fc.Bounds.Abs()
	f := &NoiseField{cfg: fc}
	switch fc.Noise {
	case Perlin:
		// alpha 2 halves the amplitude and beta 2 doubles the frequency of
		// each successive octave.
		p := perlin.NewPerlin(2, 2, int32(fc.Octaves), fc.Seed)
		f.eval = p.Noise2D
	case Simplex:
		f.eval = simplexFBM(opensimplex.New(fc.Seed), fc.Octaves)
	}
	return f, nil
}

func simplexFBM(n opensimplex.Noise, octaves int) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		var total, maxValue float64
		frequency, amplitude := 1.0, 1.0
		for range octaves {
			total += n.Eval2(x*frequency, y*frequency) * amplitude
			maxValue += amplitude
			amplitude *= 0.5
			frequency *= 2
		}
		return total / maxValue
	}
}

// Config returns the configuration the field was built from.
func (f *NoiseField) Config() FieldConfig { return f.cfg }

// At returns the field's value at p, in [-1, 1]. Points outside the field's
// bounds map to DryLand.
func (f *NoiseField) At(p Point) float64 {
	if !f.cfg.Bounds.Interior(p) {
		return DryLand
	}
	v := f.eval(p.X/f.cfg.Scale, p.Y/f.cfg.Scale)
	return math.Max(-1, math.Min(1, v))
}
