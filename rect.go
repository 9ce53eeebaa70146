package river

import (
	"math"
)

// Rect is an axis-aligned rectangle. Scalar fields use it as their bounds, and
// the centerline and mesh report their extents with it.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromCenter returns a rectangle of the given size centered around the
// center point.
func NewRectFromCenter(center Point, size Size) Rect {
	return Rect{
		X0: center.X - 0.5*size.Width,
		Y0: center.Y - 0.5*size.Height,
		X1: center.X + 0.5*size.Width,
		Y1: center.Y + 0.5*size.Height,
	}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Interior reports whether pt lies strictly inside the rectangle. Points on
// the border are not part of the interior.
func (r Rect) Interior(pt Point) bool {
	return pt.X > r.X0 &&
		pt.X < r.X1 &&
		pt.Y > r.Y0 &&
		pt.Y < r.Y1
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// IsInf reports whether at least one coordinate is infinite.
func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y1, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}

// BoundingBox returns the smallest rectangle enclosing all points, and false
// if there are none.
func BoundingBox(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r, true
}
