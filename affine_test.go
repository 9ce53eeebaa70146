package river

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	aff := Translate(Vec(1, 2)).ThenScale(2, 3).ThenTranslate(Vec(-1, 1))
	assertNear(t, Pt(1, 1).Transform(aff), Pt(3, 10), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(1, 7), epsilon)
	if d := aff.Determinant(); d != 6 {
		t.Errorf("got determinant %v, want 6", d)
	}
}

func TestViewTransform(t *testing.T) {
	const epsilon = 1e-9
	world := NewRectFromCenter(Point{}, Sz(720, 720))

	// Square world onto a square raster: y is flipped and the origin moves to
	// the raster's center.
	aff := ViewTransform(world, Sz(360, 360))
	assertNear(t, Pt(0, 0).Transform(aff), Pt(180, 180), epsilon)
	assertNear(t, Pt(-360, 360).Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, Pt(360, -360).Transform(aff), Pt(360, 360), epsilon)

	// A wide raster letterboxes horizontally.
	aff = ViewTransform(world, Sz(200, 100))
	assertNear(t, Pt(-360, 0).Transform(aff), Pt(50, 50), epsilon)
	assertNear(t, Pt(360, 0).Transform(aff), Pt(150, 50), epsilon)

	if aff := ViewTransform(Rect{}, Sz(10, 10)); aff != Identity {
		t.Errorf("got %v for an empty world, want the identity", aff)
	}
}
