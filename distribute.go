package river

// DistributeStats summarizes a [River.DistributeStats] pass.
type DistributeStats struct {
	// In and Out are the segment counts before and after the pass.
	In, Out int
	// Collisions counts the shortcuts taken, Skipped the old nodes they
	// bypassed.
	Collisions int
	Skipped    int
}

// Distribute returns a copy of rv whose segments have been resampled at even
// arc-length spacing of cfg.PointSpacing.
//
// The walk starts at Start (open rivers) or at the first segment, which is
// kept (closed rivers). At every old node it looks ahead for the furthest
// later node that has come within the collision distance of the cursor and, if
// there is one, jumps straight to it, dropping the loop in between. Nodes that
// follow the cursor closely, by index or by arc length, are never considered,
// as they are close by construction. On closed rivers the same holds for the
// nodes leading back across the seam to the cursor. The walk ends at End
// (open) or back at the first segment (closed).
//
// Consecutive emitted nodes are PointSpacing apart along the walked path, so
// their straight-line distance is at most PointSpacing.
//
// Emitted nodes take their colour and width from the node being walked
// towards and have undefined frames. The anchors are not part of the output
// sequence.
func (rv River) Distribute(cfg Config) River {
	out, _ := rv.DistributeStats(cfg)
	return out
}

// DistributeStats is like [River.Distribute] but also reports what it did.
func (rv River) DistributeStats(cfg Config) (River, DistributeStats) {
	out := rv
	out.Segments = []Node{}
	n := len(rv.Segments)
	stats := DistributeStats{In: n}
	if n == 0 || !(cfg.PointSpacing > 0) {
		return out, stats
	}

	rs := resampler{spacing: cfg.PointSpacing, toNext: cfg.PointSpacing}
	at := -1
	if rv.Closed {
		first := rv.Segments[0]
		first.Tangent, first.Bitangent = undefinedFrame, undefinedFrame
		rs.at = first.Position
		rs.out = append(rs.out, first)
		at = 0
	} else {
		rs.at = rv.Start.Position
	}

	// arc[i] is the arc length of the old path from the walk's origin to
	// Segments[i]; closed rivers also need the length of the whole loop.
	arc := make([]float64, n)
	prev := rv.Start.Position
	if rv.Closed {
		prev = rv.Segments[0].Position
	}
	var total float64
	for i, s := range rv.Segments {
		total += s.Position.Distance(prev)
		arc[i] = total
		prev = s.Position
	}
	if rv.Closed {
		total += prev.Distance(rv.Segments[0].Position)
	}
	cursorArc := func(at int) float64 {
		if at < 0 {
			return 0
		}
		return arc[at]
	}

	collision := cfg.collisionDistance()
	collision2 := collision * collision
	gap := cfg.collisionGap()
	reach := float64(gap) * cfg.PointSpacing
	for at < n {
		next := at + 1
		for j := n - 1; j > at+gap; j-- {
			if arc[j]-cursorArc(at) < reach {
				break
			}
			// On closed rivers the last nodes lead back to the cursor's
			// side of the seam and are close to it by construction.
			if rv.Closed && total-arc[j]+arc[at] < reach {
				continue
			}
			if rv.Segments[j].Position.DistanceSquared(rs.at) < collision2 {
				next = j
				break
			}
		}
		if next > at+1 {
			stats.Collisions++
			stats.Skipped += next - at - 1
		}

		var target Node
		switch {
		case next < n:
			target = rv.Segments[next]
		case rv.Closed:
			target = rv.Segments[0]
		default:
			target = rv.End
		}
		rs.walkTo(target)
		at = next
	}

	if rv.Closed && len(rs.out) > 1 {
		last := rs.out[len(rs.out)-1]
		if last.Position.Distance(rs.out[0].Position) < 0.5*cfg.PointSpacing {
			rs.out = rs.out[:len(rs.out)-1]
		}
	}
	out.Segments = rs.out
	stats.Out = len(rs.out)
	return out, stats
}

type resampler struct {
	spacing float64
	// toNext is the arc length left until the next node is emitted.
	toNext float64
	at     Point
	out    []Node
}

// walkTo moves the cursor in a straight line to target, emitting a node every
// spacing units of arc length.
func (rs *resampler) walkTo(target Node) {
	seg := Line{P0: rs.at, P1: target.Position}
	length := seg.Length()
	if !(length > 0) || !finite(length) {
		return
	}
	var walked float64
	for rs.toNext <= length-walked {
		walked += rs.toNext
		rs.out = append(rs.out, Node{
			Position:  seg.Eval(walked / length),
			Tangent:   undefinedFrame,
			Bitangent: undefinedFrame,
			Color:     target.Color,
			Width:     target.Width,
		})
		rs.toNext = rs.spacing
	}
	rs.toNext -= length - walked
	rs.at = target.Position
}
