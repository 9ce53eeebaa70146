package river

import (
	"math"
	"testing"
)

func TestRectFromCenter(t *testing.T) {
	r := NewRectFromCenter(Pt(0, 0), Sz(720, 720))
	diff(t, Rect{-360, -360, 360, 360}, r)
	diff(t, Pt(0, 0), r.Center())
	diff(t, Sz(720, 720), r.Size())

	diff(t, Rect{0, 0, 10, 20}, Rect{10, 20, 0, 0}.Abs())
}

func TestRectInterior(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt       Point
		interior bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 5), false},
		{Pt(10, 5), false},
		{Pt(5, 0), false},
		{Pt(5, 10), false},
		{Pt(-1, 5), false},
		{Pt(math.NaN(), 5), false},
	}
	for _, tt := range tests {
		if got := r.Interior(tt.pt); got != tt.interior {
			t.Errorf("Interior(%s) = %t, want %t", tt.pt, got, tt.interior)
		}
	}
}

func TestRectIsEmpty(t *testing.T) {
	if (Rect{0, 0, 10, 10}).IsEmpty() {
		t.Error("rectangle should not be empty")
	}
	if !(Rect{0, 0, 0, 10}).IsEmpty() {
		t.Error("zero-width rectangle should be empty")
	}
	if !(Rect{0, 0, math.NaN(), 10}).IsEmpty() {
		t.Error("NaN rectangle should be empty")
	}
}

func TestBoundingBox(t *testing.T) {
	if _, ok := BoundingBox(nil); ok {
		t.Error("no points should have no bounding box")
	}
	r, ok := BoundingBox([]Point{Pt(1, 2), Pt(-3, 4), Pt(0, -1)})
	if !ok {
		t.Fatal("expected a bounding box")
	}
	diff(t, Rect{-3, -1, 1, 4}, r)
	diff(t, Rect{-3, -1, 1, 4}, r.UnionPoint(Pt(0, 0)))
}
