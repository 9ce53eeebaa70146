package river

import (
	"slices"
)

// Frame is a self-contained snapshot of the three views a renderer draws: the
// ribbon mesh, the two banks and the centerline.
type Frame struct {
	Mesh       Mesh
	LeftBank   []BankPoint
	RightBank  []BankPoint
	Centerline []Point
	Closed     bool
	// Tick is the number of the tick that produced the frame, starting at 1.
	// The zero Frame has Tick 0.
	Tick uint64
}

// Frame returns a snapshot of the builder's current geometry together with the
// centerline of rv. The snapshot shares no memory with the builder.
func (mb *MeshBuilder) Frame(rv River) Frame {
	return Frame{
		Mesh:       mb.Mesh().Clone(),
		LeftBank:   slices.Clone(mb.left),
		RightBank:  slices.Clone(mb.right),
		Centerline: rv.Centerline(),
		Closed:     rv.Closed,
	}
}

// Bank returns the positions of one bank as a polyline.
func (f Frame) Bank(side Side) []Point {
	if side == Right {
		return bankPolyline(f.RightBank)
	}
	return bankPolyline(f.LeftBank)
}

// Bounds returns the bounding box of everything in the frame, and false for an
// empty frame.
func (f Frame) Bounds() (Rect, bool) {
	pts := slices.Clone(f.Centerline)
	for _, v := range f.Mesh.Vertices {
		pts = append(pts, v.Point())
	}
	return BoundingBox(pts)
}
