package river

import (
	"math"
	"testing"
)

func nodesAt(pts ...Point) []Node {
	nodes := make([]Node, len(pts))
	for i, p := range pts {
		nodes[i] = Node{Position: p}
	}
	return nodes
}

// straightRiver returns an open river from (x0, 0) to (x1, 0) with segments
// every step units in between.
func straightRiver(x0, x1, step float64) River {
	rv := River{
		Start: Node{Position: Pt(x0, 0)},
		End:   Node{Position: Pt(x1, 0)},
	}
	for x := x0 + step; x < x1-step/2; x += step {
		rv.Segments = append(rv.Segments, Node{Position: Pt(x, 0)})
	}
	return rv
}

func TestNeighborOpen(t *testing.T) {
	rv := River{
		Start:    Node{Position: Pt(0, 0)},
		End:      Node{Position: Pt(4, 0)},
		Segments: nodesAt(Pt(1, 0), Pt(2, 0), Pt(3, 0)),
	}
	diff(t, Neighbor{Node: rv.Start, Index: -1, Anchor: true}, rv.Neighbor(0, Prev))
	diff(t, Neighbor{Node: rv.End, Index: 3, Anchor: true}, rv.Neighbor(2, Next))
	diff(t, Neighbor{Node: rv.Segments[2], Index: 2}, rv.Neighbor(1, Next))
	diff(t, Neighbor{Node: rv.Segments[0], Index: 0}, rv.Neighbor(1, Prev))
}

func TestNeighborClosed(t *testing.T) {
	rv := River{
		Segments: nodesAt(Pt(1, 0), Pt(2, 0), Pt(3, 0)),
		Closed:   true,
	}
	diff(t, Neighbor{Node: rv.Segments[2], Index: 2}, rv.Neighbor(0, Prev))
	diff(t, Neighbor{Node: rv.Segments[0], Index: 0}, rv.Neighbor(2, Next))

	single := River{Segments: nodesAt(Pt(1, 1)), Closed: true}
	diff(t, Neighbor{Node: single.Segments[0], Index: 0}, single.Neighbor(0, Next))
}

func TestRiverNodes(t *testing.T) {
	open := River{
		Start:    Node{Position: Pt(0, 0)},
		End:      Node{Position: Pt(0, 3)},
		Segments: nodesAt(Pt(4, 0), Pt(4, 3)),
	}
	diff(t, []Point{Pt(0, 0), Pt(4, 0), Pt(4, 3), Pt(0, 3)}, open.Centerline())
	if l := open.Length(); l != 11 {
		t.Errorf("got length %v, want 11", l)
	}

	closed := open
	closed.Closed = true
	diff(t, []Point{Pt(4, 0), Pt(4, 3)}, closed.Centerline())
	if l := closed.Length(); l != 6 {
		t.Errorf("got length %v, want 6", l)
	}

	diff(t, []Point{Pt(0, 0), Pt(0, 3)}, River{Start: open.Start, End: open.End}.Centerline())
}

func TestRiverClone(t *testing.T) {
	rv := straightRiver(0, 20, 5)
	c := rv.Clone()
	c.Segments[0].Position = Pt(math.Pi, 0)
	if rv.Segments[0].Position != Pt(5, 0) {
		t.Error("clone shares segments with its source")
	}
}
