package river

import (
	"math"
	"time"

	"go.uber.org/multierr"
)

// Config holds the tunables of the simulation. The zero value is not usable;
// start from [DefaultConfig].
type Config struct {
	// PointSpacing is the arc length between nodes emitted by Distribute.
	PointSpacing float64
	// MinDistance is the distance below which a later node is considered to
	// have collided with the cursor, causing the loop in between to be
	// skipped. It must not be smaller than PointSpacing.
	MinDistance float64
	// CollisionEpsilon is added to MinDistance to form the collision radius.
	CollisionEpsilon float64

	// Weights of the three terms of a node's displacement in Step.
	TangentWeight   float64
	BitangentWeight float64
	GradientWeight  float64
	// Speed multiplies the whole displacement.
	Speed float64
	// MaxStep bounds the elapsed time a single Step integrates over.
	MaxStep time.Duration
	// Slowdown is subtracted from the elapsed time of every step.
	Slowdown time.Duration

	// The stroke width at a point is the width field's value times
	// WidthScale plus WidthBase, unless the node carries its own width.
	WidthScale float64
	WidthBase  float64
	Stroke     StrokeStyle

	// HistoryInterval is the simulated time between centerline snapshots;
	// zero disables the history. HistoryLength bounds the number of
	// snapshots kept.
	HistoryInterval time.Duration
	HistoryLength   int

	// Workers is the number of goroutines Step may use to sample the height
	// field. Values below 2 run serially.
	Workers int
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		PointSpacing:     5,
		MinDistance:      5,
		CollisionEpsilon: 0.1,

		TangentWeight:   3,
		BitangentWeight: -7,
		GradientWeight:  35,
		Speed:           3,
		MaxStep:         200 * time.Millisecond,

		WidthScale: 10,
		WidthBase:  15,
		Stroke:     DefaultStrokeStyle,

		HistoryInterval: 500 * time.Millisecond,
		HistoryLength:   32,
	}
}

// collisionDistance is the radius within which Distribute treats a later node
// as having collided with the cursor.
func (cfg Config) collisionDistance() float64 {
	return cfg.MinDistance + cfg.CollisionEpsilon
}

// collisionGap is the number of indices following the cursor that are never
// considered collisions, as they are naturally close to it.
func (cfg Config) collisionGap() int {
	return int(math.Ceil(cfg.MinDistance/cfg.PointSpacing)) * 2
}

// Validate checks every field and returns all problems found, combined with
// multierr. Each individual error is a *ConfigError.
func (cfg Config) Validate() error {
	var err error
	bad := func(field, reason string) {
		err = multierr.Append(err, &ConfigError{Field: field, Reason: reason})
	}

	if !finite(cfg.PointSpacing) || cfg.PointSpacing <= 0 {
		bad("PointSpacing", "must be positive and finite")
	}
	if !finite(cfg.MinDistance) {
		bad("MinDistance", "must be finite")
	} else if cfg.MinDistance < cfg.PointSpacing {
		bad("MinDistance", "must not be smaller than PointSpacing")
	}
	if !finite(cfg.CollisionEpsilon) || cfg.CollisionEpsilon < 0 {
		bad("CollisionEpsilon", "must be non-negative and finite")
	}
	for _, w := range []struct {
		name string
		v    float64
	}{
		{"TangentWeight", cfg.TangentWeight},
		{"BitangentWeight", cfg.BitangentWeight},
		{"GradientWeight", cfg.GradientWeight},
		{"Speed", cfg.Speed},
		{"WidthScale", cfg.WidthScale},
		{"WidthBase", cfg.WidthBase},
	} {
		if !finite(w.v) {
			bad(w.name, "must be finite")
		}
	}
	if cfg.MaxStep <= 0 {
		bad("MaxStep", "must be positive")
	}
	if cfg.Slowdown < 0 {
		bad("Slowdown", "must not be negative")
	}
	if cfg.HistoryInterval < 0 {
		bad("HistoryInterval", "must not be negative")
	}
	if cfg.HistoryLength < 0 {
		bad("HistoryLength", "must not be negative")
	}
	if cfg.Workers < 0 {
		bad("Workers", "must not be negative")
	}
	return multierr.Append(err, cfg.Stroke.validate())
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
