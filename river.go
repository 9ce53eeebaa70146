package river

import (
	"math"
	"slices"
)

// Node is a sample point on the river.
type Node struct {
	Position Point
	// Tangent and Bitangent form the node's local frame. They are derived by
	// [River.Recompute] and are unit length or zero afterwards. Nodes emitted
	// by [River.Distribute] have NaN frames until the next Recompute.
	Tangent   Vec2
	Bitangent Vec2
	Color     RGBA
	// Width overrides the stroke width at this node. Zero means the width is
	// sampled from the width field.
	Width float64
}

// undefinedFrame marks a frame that has not been computed yet.
var undefinedFrame = Vec2{math.NaN(), math.NaN()}

// HasFrame reports whether the node's frame has been computed.
func (n Node) HasFrame() bool {
	return !n.Tangent.IsNaN() && !n.Bitangent.IsNaN()
}

// River is the simulated curve: the interior Segments, and for open rivers the
// fixed Start and End anchors.
//
// Anchors are never moved, removed or reordered by any pass. They are not
// resampled, but they take part in neighbor lookups and path construction of
// open rivers. Closed rivers wrap around their Segments and ignore the anchors.
//
// All passes are pure: they return a new River and leave the receiver and its
// Segments untouched.
type River struct {
	Start    Node
	End      Node
	Segments []Node
	Closed   bool
}

// Clone returns a copy of the river that shares no memory with rv.
func (rv River) Clone() River {
	rv.Segments = slices.Clone(rv.Segments)
	return rv
}

// Direction selects a neighbor of a node.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Neighbor is the result of a neighbor lookup.
type Neighbor struct {
	Node Node
	// Index is the neighbor's index into Segments. It is -1 for Start and
	// len(Segments) for End.
	Index int
	// Anchor reports whether the neighbor is Start or End.
	Anchor bool
}

// Neighbor returns the node adjacent to Segments[i] in direction dir.
//
// For open rivers, the node before the first segment is Start and the node
// after the last segment is End. Closed rivers wrap around. i must be a valid
// index into Segments.
func (rv River) Neighbor(i int, dir Direction) Neighbor {
	n := len(rv.Segments)
	j := i + int(dir)
	if rv.Closed {
		j = ((j % n) + n) % n
		return Neighbor{Node: rv.Segments[j], Index: j}
	}
	switch {
	case j < 0:
		return Neighbor{Node: rv.Start, Index: -1, Anchor: true}
	case j >= n:
		return Neighbor{Node: rv.End, Index: n, Anchor: true}
	default:
		return Neighbor{Node: rv.Segments[j], Index: j}
	}
}

// Nodes returns the nodes of the river's path in order: Start, the segments
// and End for open rivers, only the segments for closed ones. An open river
// with no segments still has a path of its two anchors.
func (rv River) Nodes() []Node {
	if rv.Closed {
		return slices.Clone(rv.Segments)
	}
	nodes := make([]Node, 0, len(rv.Segments)+2)
	nodes = append(nodes, rv.Start)
	nodes = append(nodes, rv.Segments...)
	return append(nodes, rv.End)
}

// Centerline returns the positions of [River.Nodes]. It is the raw view used
// for trail rendering.
func (rv River) Centerline() []Point {
	nodes := rv.Nodes()
	pts := make([]Point, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Position
	}
	return pts
}

// Length returns the arc length of the river's path, including the closing
// segment of closed rivers.
func (rv River) Length() float64 {
	pts := rv.Centerline()
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i].Distance(pts[i-1])
	}
	if rv.Closed && len(pts) > 1 {
		l += pts[len(pts)-1].Distance(pts[0])
	}
	return l
}
