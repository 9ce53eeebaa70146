package river

import (
	"cmp"
	"math"
	"slices"
)

// MeshVertex is a vertex of the ribbon mesh. Z is always zero.
type MeshVertex struct {
	Position [3]float64
	Color    RGBA
}

// Point returns the vertex position projected onto the plane.
func (v MeshVertex) Point() Point {
	return Pt(v.Position[0], v.Position[1])
}

// Mesh is an indexed triangle mesh. Every three consecutive entries of Indices
// form a triangle.
type Mesh struct {
	Vertices []MeshVertex
	Indices  []uint32
}

// Triangles returns the number of triangles.
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Triangle returns the corners of the i-th triangle.
func (m Mesh) Triangle(i int) [3]MeshVertex {
	return [3]MeshVertex{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: slices.Clone(m.Vertices),
		Indices:  slices.Clone(m.Indices),
	}
}

// BankPoint is a point on a bank of the river, tagged with the arc length of
// the centerline at which it was generated.
type BankPoint struct {
	Advancement float64
	Position    Point
}

// MeshBuilder accumulates the output of the stroker: the mesh and the two
// banks. It implements [GeometryBuilder] and reuses its buffers between
// passes.
//
// The slices returned by its accessors are valid until the next Begin or
// Abort. Use [MeshBuilder.Frame] or Clone to keep geometry around longer.
type MeshBuilder struct {
	// MaxVertices limits the number of vertices in a pass. Zero means the
	// limit imposed by VertexID.
	MaxVertices int

	vertices []MeshVertex
	indices  []uint32
	left     []BankPoint
	right    []BankPoint
}

var _ GeometryBuilder = (*MeshBuilder)(nil)

// Reset discards all geometry. It is safe to call on an empty builder.
func (mb *MeshBuilder) Reset() {
	mb.vertices = mb.vertices[:0]
	mb.indices = mb.indices[:0]
	mb.left = mb.left[:0]
	mb.right = mb.right[:0]
}

// Begin implements GeometryBuilder.
func (mb *MeshBuilder) Begin() { mb.Reset() }

// Abort implements GeometryBuilder.
func (mb *MeshBuilder) Abort() { mb.Reset() }

// End implements GeometryBuilder. It sorts both banks by advancement, keeping
// the emission order of points with equal advancement.
func (mb *MeshBuilder) End() {
	byAdvancement := func(a, b BankPoint) int { return cmp.Compare(a.Advancement, b.Advancement) }
	slices.SortStableFunc(mb.left, byAdvancement)
	slices.SortStableFunc(mb.right, byAdvancement)
}

// AddStrokeVertex implements GeometryBuilder.
func (mb *MeshBuilder) AddStrokeVertex(v StrokeVertex) (VertexID, error) {
	if uint64(len(mb.vertices)) >= math.MaxUint32 ||
		(mb.MaxVertices > 0 && len(mb.vertices) >= mb.MaxVertices) {
		return 0, ErrTooManyVertices
	}
	bp := BankPoint{Advancement: v.Advancement, Position: v.Position}
	switch v.Side {
	case Left:
		mb.left = append(mb.left, bp)
	case Right:
		mb.right = append(mb.right, bp)
	}
	id := VertexID(len(mb.vertices))
	mb.vertices = append(mb.vertices, MeshVertex{
		Position: [3]float64{v.Position.X, v.Position.Y, 0},
		Color:    v.Attributes.Color,
	})
	return id, nil
}

// AddTriangle implements GeometryBuilder.
func (mb *MeshBuilder) AddTriangle(a, b, c VertexID) {
	mb.indices = append(mb.indices, uint32(a), uint32(b), uint32(c))
}

// Mesh returns the accumulated mesh.
func (mb *MeshBuilder) Mesh() Mesh {
	return Mesh{Vertices: mb.vertices, Indices: mb.indices}
}

// LeftBank returns the points of the left bank, ordered by advancement.
func (mb *MeshBuilder) LeftBank() []BankPoint { return mb.left }

// RightBank returns the points of the right bank, ordered by advancement.
func (mb *MeshBuilder) RightBank() []BankPoint { return mb.right }

// Bank returns the positions of one bank as a polyline.
func (mb *MeshBuilder) Bank(side Side) []Point {
	bank := mb.left
	if side == Right {
		bank = mb.right
	}
	return bankPolyline(bank)
}

// IsEmpty reports whether the builder holds no geometry.
func (mb *MeshBuilder) IsEmpty() bool {
	return len(mb.vertices) == 0 && len(mb.indices) == 0 && len(mb.left) == 0 && len(mb.right) == 0
}

func bankPolyline(bank []BankPoint) []Point {
	pts := make([]Point, len(bank))
	for i, bp := range bank {
		pts[i] = bp.Position
	}
	return pts
}
