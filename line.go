package river

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with t = 0 at P0 and t = 1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Direction returns the unit vector pointing from P0 to P1, or the zero vector
// if the line is degenerate.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0).NormalizeOrZero()
}
