package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"honnef.co/go/river"
)

var (
	tangentColor   = river.RGBA{R: 0.2, G: 1, B: 0.2, A: 1}
	bitangentColor = river.RGBA{R: 0.3, G: 0.5, B: 1, A: 1}
	bankColor      = river.Black.WithAlpha(0.6)
)

// lineStyle is used for everything drawn as a thin line.
var lineStyle = river.DefaultStrokeStyle.WithJoin(river.BevelJoin)

// Renderer rasterizes frames of a simulation.
type Renderer struct {
	// World is the region of the simulation that is drawn. It is fitted into
	// the image preserving its aspect ratio.
	World river.Rect
	// Pixels is the width and height of the image.
	Pixels     int
	Background river.RGBA
	// Trails draws the recorded centerline history.
	Trails bool
	// Frames draws every node's tangent and bitangent.
	Frames bool
}

// Render draws one frame: the history trails, the ribbon mesh, both banks and
// the centerline, and optionally the node frames of rv.
func (r *Renderer) Render(f river.Frame, history [][]river.Point, rv river.River) (*image.RGBA, error) {
	px := float64(r.Pixels)
	c := &canvas{
		dst: image.NewRGBA(image.Rect(0, 0, r.Pixels, r.Pixels)),
		aff: river.ViewTransform(r.World, river.Sz(px, px)),
		z:   vector.NewRasterizer(r.Pixels, r.Pixels),
	}
	// One pixel in world units.
	c.unit = 1 / math.Sqrt(math.Abs(c.aff.Determinant()))
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(r.Background.NRGBA()), image.Point{}, draw.Src)

	if r.Trails {
		for i, trail := range history {
			alpha := 0.15 + 0.35*float64(i+1)/float64(len(history))
			if err := c.stroke(trail, 1, river.Pink.WithAlpha(alpha), f.Closed); err != nil {
				return nil, err
			}
		}
	}
	c.fill(f.Mesh)
	for _, side := range []river.Side{river.Left, river.Right} {
		if err := c.stroke(f.Bank(side), 1, bankColor, f.Closed); err != nil {
			return nil, err
		}
	}
	if err := c.stroke(f.Centerline, 1, river.Pink, f.Closed); err != nil {
		return nil, err
	}

	if r.Frames {
		rv = rv.Recompute()
		for _, n := range rv.Segments {
			for _, v := range []struct {
				dir river.Vec2
				col river.RGBA
			}{{n.Tangent, tangentColor}, {n.Bitangent, bitangentColor}} {
				tip := n.Position.Translate(v.dir.Mul(8 * c.unit))
				if err := c.stroke([]river.Point{n.Position, tip}, 1, v.col, false); err != nil {
					return nil, err
				}
			}
		}
	}
	return c.dst, nil
}

type canvas struct {
	dst  *image.RGBA
	aff  river.Affine
	unit float64
	z    *vector.Rasterizer
	mb   river.MeshBuilder
}

// stroke draws a polyline width pixels wide.
func (c *canvas) stroke(pts []river.Point, width float64, col river.RGBA, closed bool) error {
	if err := river.StrokePolyline(pts, width*c.unit, col, closed, lineStyle, &c.mb); err != nil {
		return err
	}
	c.fill(c.mb.Mesh())
	return nil
}

// fill rasterizes the triangles of m, each in the average colour of its
// corners. Triangles of equal colour are drawn in one pass.
func (c *canvas) fill(m river.Mesh) {
	type bucket struct {
		col  color.NRGBA
		tris [][3]river.Point
	}
	var buckets []*bucket
	byColor := map[color.NRGBA]*bucket{}
	for i := range m.Triangles() {
		t := m.Triangle(i)
		col := t[0].Color.Lerp(t[1].Color, 0.5).Lerp(t[2].Color, 1.0/3).NRGBA()
		b := byColor[col]
		if b == nil {
			b = &bucket{col: col}
			byColor[col] = b
			buckets = append(buckets, b)
		}
		b.tris = append(b.tris, [3]river.Point{
			t[0].Point().Transform(c.aff),
			t[1].Point().Transform(c.aff),
			t[2].Point().Transform(c.aff),
		})
	}

	size := c.dst.Bounds().Size()
	for _, b := range buckets {
		c.z.Reset(size.X, size.Y)
		for _, tri := range b.tris {
			// The rasterizer accumulates signed area; consistent winding keeps
			// overlapping triangles from cancelling out.
			if tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])) < 0 {
				tri[1], tri[2] = tri[2], tri[1]
			}
			c.z.MoveTo(float32(tri[0].X), float32(tri[0].Y))
			c.z.LineTo(float32(tri[1].X), float32(tri[1].Y))
			c.z.LineTo(float32(tri[2].X), float32(tri[2].Y))
			c.z.ClosePath()
		}
		c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(b.col), image.Point{})
	}
}
