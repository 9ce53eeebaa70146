package river

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The river is simulated in a y-up world centered on the origin, while most
// raster consumers are y-down with the origin in a corner; [ViewTransform]
// builds the mapping between the two.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Mul composes two transforms; (A.Mul(B)) applied to p equals A applied to B
// applied to p.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale.
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// ViewTransform maps the y-up world rectangle world onto a y-down raster of the
// given pixel size, preserving aspect ratio and centering the world in the
// raster.
func ViewTransform(world Rect, pixels Size) Affine {
	world = world.Abs()
	if world.IsEmpty() || pixels.Width <= 0 || pixels.Height <= 0 {
		return Identity
	}
	s := min(pixels.Width/world.Width(), pixels.Height/world.Height())
	c := world.Center()
	return Translate(Vec2(c).Negate()).
		ThenScale(s, -s).
		ThenTranslate(Vec(0.5*pixels.Width, 0.5*pixels.Height))
}
