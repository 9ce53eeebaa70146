package river

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// The segments are extended to their natural intersection point, falling
	// back to a bevel when the miter would exceed the miter limit.
	MiterJoin Join = iota
	// A straight line connecting the segments.
	BevelJoin
	// An arc between the segments.
	RoundJoin
)

// Cap defines the shape drawn at the ends of an open stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap extending half the stroke width past the endpoint.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

// StrokeStyle describes how a path is turned into a ribbon. Unlike a
// constant-width stroke, the width comes from each path vertex.
type StrokeStyle struct {
	Join Join
	// Limit for miter joins, as a multiple of the half width.
	MiterLimit float64
	// Style for capping the beginning of an open path.
	StartCap Cap
	// Style for capping the end of an open path.
	EndCap Cap
	// Tolerance is the maximum distance between round joins and caps and the
	// polygons that approximate them. It also decides when a join is too
	// shallow to need any extra geometry.
	Tolerance float64
}

var DefaultStrokeStyle = StrokeStyle{
	Join:       MiterJoin,
	MiterLimit: 4.0,
	StartCap:   ButtCap,
	EndCap:     ButtCap,
	Tolerance:  0.1,
}

func (s StrokeStyle) WithJoin(join Join) StrokeStyle           { s.Join = join; return s }
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle { s.MiterLimit = limit; return s }
func (s StrokeStyle) WithStartCap(cap Cap) StrokeStyle         { s.StartCap = cap; return s }
func (s StrokeStyle) WithEndCap(cap Cap) StrokeStyle           { s.EndCap = cap; return s }
func (s StrokeStyle) WithCaps(cap Cap) StrokeStyle             { s.StartCap, s.EndCap = cap, cap; return s }
func (s StrokeStyle) WithTolerance(tol float64) StrokeStyle    { s.Tolerance = tol; return s }

func (s StrokeStyle) validate() error {
	var err error
	if s.Join < MiterJoin || s.Join > RoundJoin {
		err = multierr.Append(err, &ConfigError{Field: "Stroke.Join", Reason: fmt.Sprintf("unknown join %d", s.Join)})
	}
	if !finite(s.MiterLimit) || s.MiterLimit < 1 {
		err = multierr.Append(err, &ConfigError{Field: "Stroke.MiterLimit", Reason: "must be finite and at least 1"})
	}
	for _, c := range []struct {
		name string
		cap  Cap
	}{{"Stroke.StartCap", s.StartCap}, {"Stroke.EndCap", s.EndCap}} {
		if c.cap < ButtCap || c.cap > RoundCap {
			err = multierr.Append(err, &ConfigError{Field: c.name, Reason: fmt.Sprintf("unknown cap %d", c.cap)})
		}
	}
	if !finite(s.Tolerance) || s.Tolerance <= 0 {
		err = multierr.Append(err, &ConfigError{Field: "Stroke.Tolerance", Reason: "must be positive and finite"})
	}
	return err
}

// Side is the side of the path a stroke vertex lies on, relative to the
// direction of travel.
type Side int

const (
	// Left is the side of the positive normal, the direction rotated by 90°.
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Attributes are the per-vertex values interpolated along a stroke.
type Attributes struct {
	Width float64
	Color RGBA
}

// VertexID identifies a vertex added to a [GeometryBuilder].
type VertexID uint32

// StrokeVertex is a vertex generated by the stroker.
type StrokeVertex struct {
	Position Point
	Side     Side
	// Advancement is the arc length along the path at which the vertex was
	// generated. Cap vertices extend it past the ends of the path.
	Advancement float64
	Attributes  Attributes
	// Source is the index of the path vertex this vertex belongs to.
	Source int
}

// GeometryBuilder receives the output of the stroker.
//
// A pass calls Begin, then any number of AddStrokeVertex and AddTriangle, and
// finally either End or, if the pass failed, Abort.
type GeometryBuilder interface {
	Begin()
	AddStrokeVertex(v StrokeVertex) (VertexID, error)
	AddTriangle(a, b, c VertexID)
	End()
	Abort()
}

// PathVertex is a vertex of a path to be stroked.
type PathVertex struct {
	Position   Point
	Attributes Attributes
}

// StrokePath tessellates the polyline through path into a ribbon whose width
// at each vertex is that vertex's Width attribute. Closed paths connect the
// last vertex back to the first and have no caps.
//
// Consecutive coincident vertices are merged. Paths with fewer than two
// distinct vertices produce no geometry. On failure, out has been aborted and
// the error is a *TessellationError.
func StrokePath(path []PathVertex, closed bool, style StrokeStyle, out GeometryBuilder) error {
	out.Begin()
	s := stroker{out: out, style: style}
	if err := s.run(path, closed); err != nil {
		out.Abort()
		return err
	}
	out.End()
	return nil
}

// StrokePolyline strokes pts at a constant width with the given colour.
func StrokePolyline(pts []Point, width float64, color RGBA, closed bool, style StrokeStyle, out GeometryBuilder) error {
	path := make([]PathVertex, len(pts))
	for i, pt := range pts {
		path[i] = PathVertex{Position: pt, Attributes: Attributes{Width: width, Color: color}}
	}
	return StrokePath(path, closed, style, out)
}

// coincident is the distance below which consecutive path vertices are merged.
const coincident = 1e-9

type vertexPair struct {
	left, right VertexID
}

type stroker struct {
	out   GeometryBuilder
	style StrokeStyle

	pts  []Point
	attr []Attributes
	src  []int
	// dirs[i] is the unit direction from pts[i] to the next vertex.
	dirs []Vec2
	adv  []float64
}

func (s *stroker) run(path []PathVertex, closed bool) error {
	for i, v := range path {
		if !v.Position.IsFinite() || !finite(v.Attributes.Width) {
			return &TessellationError{Vertex: i, Err: ErrNonFinite}
		}
		if n := len(s.pts); n > 0 && v.Position.DistanceSquared(s.pts[n-1]) <= coincident*coincident {
			continue
		}
		s.pts = append(s.pts, v.Position)
		s.attr = append(s.attr, v.Attributes)
		s.src = append(s.src, i)
	}
	if n := len(s.pts); closed && n > 1 && s.pts[0].DistanceSquared(s.pts[n-1]) <= coincident*coincident {
		s.pts, s.attr, s.src = s.pts[:n-1], s.attr[:n-1], s.src[:n-1]
	}
	if len(s.pts) < 2 {
		return nil
	}
	if len(s.pts) < 3 {
		closed = false
	}

	n := len(s.pts)
	segs := n - 1
	if closed {
		segs = n
	}
	s.dirs = make([]Vec2, segs)
	s.adv = make([]float64, n)
	for i := range segs {
		seg := Line{P0: s.pts[i], P1: s.pts[(i+1)%n]}
		s.dirs[i] = seg.Direction()
		if i+1 < n {
			s.adv[i+1] = s.adv[i] + seg.Length()
		}
	}

	if closed {
		return s.closedPath()
	}
	return s.openPath()
}

func (s *stroker) openPath() error {
	n := len(s.pts)
	first, err := s.startCap()
	if err != nil {
		return err
	}
	prev := first
	for i := 1; i < n-1; i++ {
		entry, exit, err := s.join(i, s.dirs[i-1], s.dirs[i])
		if err != nil {
			return err
		}
		s.quad(prev, entry)
		prev = exit
	}
	last, err := s.endCap()
	if err != nil {
		return err
	}
	s.quad(prev, last)
	return nil
}

func (s *stroker) closedPath() error {
	n := len(s.pts)
	var first, prev vertexPair
	for i := range n {
		entry, exit, err := s.join(i, s.dirs[(i+n-1)%n], s.dirs[i])
		if err != nil {
			return err
		}
		if i == 0 {
			first = entry
		} else {
			s.quad(prev, entry)
		}
		prev = exit
	}
	s.quad(prev, first)
	return nil
}

// quad fills the segment between two vertex pairs.
func (s *stroker) quad(a, b vertexPair) {
	s.out.AddTriangle(a.left, a.right, b.left)
	s.out.AddTriangle(b.left, a.right, b.right)
}

func (s *stroker) vertex(i int, p Point, side Side, adv float64) (VertexID, error) {
	id, err := s.out.AddStrokeVertex(StrokeVertex{
		Position:    p,
		Side:        side,
		Advancement: adv,
		Attributes:  s.attr[i],
		Source:      s.src[i],
	})
	if err != nil {
		return 0, &TessellationError{Vertex: s.src[i], Err: err}
	}
	return id, nil
}

func (s *stroker) halfWidth(i int) float64 {
	return 0.5 * max(s.attr[i].Width, 0)
}

// pair emits the two vertices at p ± off.
func (s *stroker) pair(i int, p Point, off Vec2, adv float64) (vertexPair, error) {
	l, err := s.vertex(i, p.Translate(off), Left, adv)
	if err != nil {
		return vertexPair{}, err
	}
	r, err := s.vertex(i, p.Translate(off.Negate()), Right, adv)
	if err != nil {
		return vertexPair{}, err
	}
	return vertexPair{l, r}, nil
}

// join emits the geometry at interior vertex i, where the path turns from
// direction din to dout. Segments end at the entry pair and continue from the
// exit pair.
func (s *stroker) join(i int, din, dout Vec2) (entry, exit vertexPair, err error) {
	p := s.pts[i]
	h := s.halfWidth(i)
	adv := s.adv[i]
	nin, nout := din.Perp(), dout.Perp()
	m := nin.Add(nout).NormalizeOrZero()
	cosHalf := m.Dot(nin)

	// A join whose outer corner deviates from the miter by less than the
	// tolerance needs no extra geometry.
	shallow := cosHalf > 0 && h*(1-cosHalf) <= s.style.Tolerance*cosHalf
	miter := s.style.Join == MiterJoin && cosHalf > 0 && 1 <= s.style.MiterLimit*cosHalf
	if shallow || miter {
		pr, err := s.pair(i, p, m.Mul(h/cosHalf), adv)
		return pr, pr, err
	}

	// The outer side of a left turn is the right side.
	cross := din.Cross(dout)
	outer, sgn := Left, 1.0
	if cross > 0 {
		outer, sgn = Right, -1.0
	}
	inner := Right
	if outer == Right {
		inner = Left
	}

	var depth float64
	if cosHalf > 1e-9 {
		depth = min(h/cosHalf, h*s.style.MiterLimit)
	}
	in, err := s.vertex(i, p.Translate(m.Mul(-sgn*depth)), inner, adv)
	if err != nil {
		return vertexPair{}, vertexPair{}, err
	}

	oin := nin.Mul(sgn * h)
	var offsets []Vec2
	if s.style.Join == RoundJoin {
		theta := math.Abs(math.Atan2(cross, din.Dot(dout)))
		offsets = arc(oin, -sgn*theta, h, s.style.Tolerance)
	} else {
		offsets = []Vec2{oin, nout.Mul(sgn * h)}
	}
	ids := make([]VertexID, len(offsets))
	for k, off := range offsets {
		if ids[k], err = s.vertex(i, p.Translate(off), outer, adv); err != nil {
			return vertexPair{}, vertexPair{}, err
		}
	}
	for k := 1; k < len(ids); k++ {
		s.out.AddTriangle(in, ids[k-1], ids[k])
	}

	first, last := ids[0], ids[len(ids)-1]
	if outer == Left {
		return vertexPair{first, in}, vertexPair{last, in}, nil
	}
	return vertexPair{in, first}, vertexPair{in, last}, nil
}

func (s *stroker) startCap() (vertexPair, error) {
	d := s.dirs[0]
	return s.cap(0, d, s.style.StartCap, -1)
}

func (s *stroker) endCap() (vertexPair, error) {
	n := len(s.pts)
	d := s.dirs[n-2]
	return s.cap(n-1, d, s.style.EndCap, 1)
}

// cap emits the cap at path vertex i, whose path direction is d. outward is
// -1 for the start cap and 1 for the end cap. The returned pair is where the
// adjacent segment attaches.
func (s *stroker) cap(i int, d Vec2, style Cap, outward float64) (vertexPair, error) {
	p := s.pts[i]
	h := s.halfWidth(i)
	adv := s.adv[i]
	norm := d.Perp().Mul(h)
	switch style {
	case SquareCap:
		ext := d.Mul(outward * h)
		return s.pair(i, p.Translate(ext), norm, adv+outward*h)
	case RoundCap:
		// Sweep from the left normal to the right normal through the point
		// beyond the end of the path.
		offsets := arc(norm, -outward*math.Pi, h, s.style.Tolerance)
		ids := make([]VertexID, len(offsets))
		for k, off := range offsets {
			side := Right
			if off.Dot(norm) > 0 || (off.Dot(norm) == 0 && 2*k <= len(offsets)-1) {
				side = Left
			}
			var err error
			if ids[k], err = s.vertex(i, p.Translate(off), side, adv+off.Dot(d)); err != nil {
				return vertexPair{}, err
			}
		}
		for k := 2; k < len(ids); k++ {
			s.out.AddTriangle(ids[0], ids[k-1], ids[k])
		}
		return vertexPair{ids[0], ids[len(ids)-1]}, nil
	default:
		return s.pair(i, p, norm, adv)
	}
}

// arc returns offsets of length r starting at from and rotating by sweep
// radians, subdivided so that no chord deviates from the arc by more than tol.
// The first and last offsets are the exact endpoints.
func arc(from Vec2, sweep, r, tol float64) []Vec2 {
	maxStep := math.Pi / 2
	if tol < r {
		maxStep = min(maxStep, 2*math.Acos(1-tol/r))
	}
	steps := max(1, int(math.Ceil(math.Abs(sweep)/maxStep)))
	offsets := make([]Vec2, steps+1)
	offsets[0] = from
	for k := 1; k <= steps; k++ {
		sin, cos := math.Sincos(sweep * float64(k) / float64(steps))
		offsets[k] = Vec(from.X*cos-from.Y*sin, from.X*sin+from.Y*cos)
	}
	return offsets
}
