package river

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Recompute returns a copy of rv in which every segment's tangent and
// bitangent have been derived from its neighbors.
//
// For a node b with neighbors a and c, the tangent is the direction from a to
// c. The bitangent is the tangent's perpendicular, flipped to the side the
// curve bends towards at b, or zero where the curve is straight. Coincident
// points yield zero vectors, never NaNs.
func (rv River) Recompute() River {
	out := rv.Clone()
	for i := range rv.Segments {
		a := rv.Neighbor(i, Prev).Node.Position
		b := rv.Segments[i].Position
		c := rv.Neighbor(i, Next).Node.Position

		tangent := c.Sub(a).NormalizeOrZero()
		cross := b.Sub(a).NormalizeOrZero().Cross(c.Sub(b).NormalizeOrZero())
		out.Segments[i].Tangent = tangent
		out.Segments[i].Bitangent = tangent.Perp().Mul(sign(cross)).NormalizeOrZero()
	}
	return out
}

// Step returns a copy of rv with every segment moved by one integration step
// of length dt.
//
// A node drifts along its tangent and bitangent and down the gradient of the
// height field, which is sampled one unit to either side of the node on both
// axes. dt is clamped to cfg.MaxStep and reduced by cfg.Slowdown. Nodes
// without a frame only follow the gradient. The anchors do not move.
func (rv River) Step(dt time.Duration, height Field, cfg Config) River {
	out := rv.Clone()
	secs := stepSeconds(dt, cfg)
	if secs == 0 || len(out.Segments) == 0 {
		return out
	}
	k := secs * cfg.Speed

	move := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			n := &out.Segments[i]
			d := gradient(height, n.Position).Mul(cfg.GradientWeight)
			if n.HasFrame() {
				d = d.Add(n.Tangent.Mul(cfg.TangentWeight)).
					Add(n.Bitangent.Mul(cfg.BitangentWeight))
			}
			n.Position = n.Position.Translate(d.Mul(k))
		}
	}

	workers := min(cfg.Workers, len(out.Segments))
	if workers < 2 {
		move(0, len(out.Segments))
		return out
	}
	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(out.Segments) + workers - 1) / workers
	for lo := 0; lo < len(out.Segments); lo += chunk {
		hi := min(lo+chunk, len(out.Segments))
		g.Go(func() error {
			move(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	return out
}

// gradient returns the direction of steepest descent of f at p, estimated from
// samples one unit away on each axis.
func gradient(f Field, p Point) Vec2 {
	px := f.At(p.Translate(Vec(1, 0)))
	nx := f.At(p.Translate(Vec(-1, 0)))
	py := f.At(p.Translate(Vec(0, 1)))
	ny := f.At(p.Translate(Vec(0, -1)))
	return Vec(px-nx, py-ny).Negate()
}

// stepSeconds returns the integration length in seconds.
func stepSeconds(dt time.Duration, cfg Config) float64 {
	dt = min(dt, cfg.MaxStep) - cfg.Slowdown
	if dt <= 0 {
		return 0
	}
	return dt.Seconds()
}
