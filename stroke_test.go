package river

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"testing"
)

func polyline(width float64, pts ...Point) []PathVertex {
	path := make([]PathVertex, len(pts))
	for i, p := range pts {
		path[i] = PathVertex{Position: p, Attributes: Attributes{Width: width, Color: White}}
	}
	return path
}

func checkMesh(t *testing.T, mb *MeshBuilder) {
	t.Helper()
	m := mb.Mesh()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("got %d indices, not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d refers to vertex %d of %d", i, idx, len(m.Vertices))
		}
	}
	for _, bank := range [][]BankPoint{mb.LeftBank(), mb.RightBank()} {
		if !slices.IsSortedFunc(bank, func(a, b BankPoint) int { return cmp.Compare(a.Advancement, b.Advancement) }) {
			t.Errorf("bank is not sorted by advancement: %v", bank)
		}
	}
	if n := len(mb.LeftBank()) + len(mb.RightBank()); n != len(m.Vertices) {
		t.Errorf("banks hold %d points for %d vertices", n, len(m.Vertices))
	}
}

func TestStrokeStraight(t *testing.T) {
	var mb MeshBuilder
	if err := StrokePath(polyline(2, Pt(0, 0), Pt(10, 0), Pt(20, 0)), false, DefaultStrokeStyle, &mb); err != nil {
		t.Fatal(err)
	}
	checkMesh(t, &mb)
	m := mb.Mesh()
	if len(m.Vertices) != 6 || m.Triangles() != 4 {
		t.Errorf("got %d vertices and %d triangles, want 6 and 4", len(m.Vertices), m.Triangles())
	}
	diff(t, []BankPoint{{0, Pt(0, 1)}, {10, Pt(10, 1)}, {20, Pt(20, 1)}}, mb.LeftBank())
	diff(t, []Point{Pt(0, -1), Pt(10, -1), Pt(20, -1)}, mb.Bank(Right))
	for _, v := range m.Vertices {
		if v.Color != White || v.Position[2] != 0 {
			t.Errorf("unexpected vertex %v", v)
		}
	}
}

func TestStrokeVariableWidth(t *testing.T) {
	path := polyline(2, Pt(0, 0), Pt(10, 0))
	path[1].Attributes.Width = 6
	var mb MeshBuilder
	if err := StrokePath(path, false, DefaultStrokeStyle, &mb); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 1), Pt(10, 3)}, mb.Bank(Left))
	diff(t, []Point{Pt(0, -1), Pt(10, -3)}, mb.Bank(Right))
}

func TestStrokeClosedJoins(t *testing.T) {
	square := polyline(2, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	tests := []struct {
		join      Join
		vertices  int
		triangles int
	}{
		{MiterJoin, 8, 8},
		{BevelJoin, 12, 12},
		{RoundJoin, 16, 16},
	}
	for _, tt := range tests {
		var mb MeshBuilder
		if err := StrokePath(square, true, DefaultStrokeStyle.WithJoin(tt.join), &mb); err != nil {
			t.Fatal(err)
		}
		checkMesh(t, &mb)
		m := mb.Mesh()
		if len(m.Vertices) != tt.vertices || m.Triangles() != tt.triangles {
			t.Errorf("join %d: got %d vertices and %d triangles, want %d and %d",
				tt.join, len(m.Vertices), m.Triangles(), tt.vertices, tt.triangles)
		}
		// The left bank of a counter-clockwise loop is on the inside.
		for _, p := range mb.Bank(Left) {
			if p.X < 0.5 || p.X > 9.5 || p.Y < 0.5 || p.Y > 9.5 {
				t.Errorf("join %d: left bank point %s outside the loop's interior", tt.join, p)
			}
		}
	}

	var mb MeshBuilder
	if err := StrokePath(square, true, DefaultStrokeStyle, &mb); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(1, 1), Pt(9, 1), Pt(9, 9), Pt(1, 9)}, mb.Bank(Left), approx)
	diff(t, []Point{Pt(-1, -1), Pt(11, -1), Pt(11, 11), Pt(-1, 11)}, mb.Bank(Right), approx)
}

func TestStrokeMiterLimit(t *testing.T) {
	// A hairpin turn exceeds any reasonable miter limit and falls back to a
	// bevel.
	path := polyline(2, Pt(0, 0), Pt(10, 0), Pt(0, 0.5))
	var mb MeshBuilder
	if err := StrokePath(path, false, DefaultStrokeStyle, &mb); err != nil {
		t.Fatal(err)
	}
	checkMesh(t, &mb)
	for _, v := range mb.Mesh().Vertices {
		if p := v.Point(); p.Distance(Pt(10, 0)) > 4.01 && p.X > 10 {
			t.Errorf("vertex %s lies beyond the miter limit", p)
		}
	}
}

func TestStrokeCaps(t *testing.T) {
	path := polyline(2, Pt(0, 0), Pt(10, 0))

	var mb MeshBuilder
	if err := StrokePath(path, false, DefaultStrokeStyle.WithCaps(SquareCap), &mb); err != nil {
		t.Fatal(err)
	}
	checkMesh(t, &mb)
	diff(t, []BankPoint{{-1, Pt(-1, 1)}, {11, Pt(11, 1)}}, mb.LeftBank())

	if err := StrokePath(path, false, DefaultStrokeStyle.WithCaps(RoundCap), &mb); err != nil {
		t.Fatal(err)
	}
	checkMesh(t, &mb)
	m := mb.Mesh()
	if len(m.Vertices) != 10 || m.Triangles() != 8 {
		t.Errorf("got %d vertices and %d triangles, want 10 and 8", len(m.Vertices), m.Triangles())
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, bank := range [][]BankPoint{mb.LeftBank(), mb.RightBank()} {
		for _, bp := range bank {
			lo = min(lo, bp.Advancement)
			hi = max(hi, bp.Advancement)
		}
	}
	if math.Abs(lo+1) > 1e-9 || math.Abs(hi-11) > 1e-9 {
		t.Errorf("round caps span advancements [%v, %v], want [-1, 11]", lo, hi)
	}
	for _, v := range m.Vertices {
		p := v.Point()
		if p.X < 0 && math.Abs(p.Distance(Pt(0, 0))-1) > 1e-9 {
			t.Errorf("start cap vertex %s not on the cap's arc", p)
		}
	}
}

func TestStrokeDegenerate(t *testing.T) {
	for _, path := range [][]PathVertex{
		nil,
		polyline(2, Pt(1, 1)),
		polyline(2, Pt(1, 1), Pt(1, 1), Pt(1, 1)),
	} {
		for _, closed := range []bool{false, true} {
			var mb MeshBuilder
			if err := StrokePath(path, closed, DefaultStrokeStyle, &mb); err != nil {
				t.Errorf("got error %s", err)
			}
			if !mb.IsEmpty() {
				t.Errorf("got geometry for degenerate path %v", path)
			}
		}
	}

	// Two points cannot enclose anything and are stroked as an open path.
	var mb MeshBuilder
	if err := StrokePath(polyline(2, Pt(0, 0), Pt(10, 0)), true, DefaultStrokeStyle, &mb); err != nil {
		t.Fatal(err)
	}
	if n := len(mb.Mesh().Vertices); n != 4 {
		t.Errorf("got %d vertices, want 4", n)
	}
}

func TestStrokeNonFinite(t *testing.T) {
	var mb MeshBuilder
	if err := StrokePath(polyline(2, Pt(0, 0), Pt(10, 0)), false, DefaultStrokeStyle, &mb); err != nil {
		t.Fatal(err)
	}

	path := polyline(2, Pt(0, 0), Pt(10, 0), Pt(20, 0))
	path[1].Attributes.Width = math.NaN()
	err := StrokePath(path, false, DefaultStrokeStyle, &mb)
	var terr *TessellationError
	if !errors.As(err, &terr) {
		t.Fatalf("got %v, want a *TessellationError", err)
	}
	if terr.Vertex != 1 || !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite at vertex 1", err)
	}
	if !mb.IsEmpty() {
		t.Error("builder holds geometry after a failed pass")
	}

	path = polyline(2, Pt(0, 0), Pt(math.Inf(1), 0))
	if err := StrokePath(path, false, DefaultStrokeStyle, &mb); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite", err)
	}
}

func TestStrokeTooManyVertices(t *testing.T) {
	mb := MeshBuilder{MaxVertices: 3}
	err := StrokePath(polyline(2, Pt(0, 0), Pt(10, 0), Pt(20, 0)), false, DefaultStrokeStyle, &mb)
	if !errors.Is(err, ErrTooManyVertices) {
		t.Fatalf("got %v, want ErrTooManyVertices", err)
	}
	var terr *TessellationError
	if errors.As(err, &terr) && terr.Vertex != 1 {
		t.Errorf("got vertex %d, want 1", terr.Vertex)
	}
	if !mb.IsEmpty() {
		t.Error("builder holds geometry after a failed pass")
	}
}

func TestStrokeStyleValidate(t *testing.T) {
	if err := DefaultStrokeStyle.validate(); err != nil {
		t.Errorf("default style is invalid: %s", err)
	}
	bad := DefaultStrokeStyle.WithJoin(Join(7)).WithMiterLimit(0.5).WithEndCap(Cap(-1))
	var cerr *ConfigError
	if err := bad.validate(); !errors.As(err, &cerr) {
		t.Errorf("got %v, want a *ConfigError", err)
	}
}

func BenchmarkStroke(b *testing.B) {
	rv := circleRiver(Point{}, 216, 272)
	path := PathVertices(rv, ConstField(0), DefaultConfig())
	var mb MeshBuilder
	b.ResetTimer()
	for range b.N {
		StrokePath(path, true, DefaultStrokeStyle, &mb)
	}
}
