package shape

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecRotate(t *testing.T) {
	const epsilon = 1e-12
	for _, th := range []float64{0, 0.3, math.Pi / 2, -2, math.Pi} {
		v := Vec(3, -4)
		got := v.Rotate(th)
		want := Point(v).Transform(Rotate(th))
		assertNear(t, Point(got), want, epsilon)
		assertNearF(t, got.Hypot(), 5, epsilon)
	}
	assertNear(t, Point(VecFromAngle(math.Pi/2)), Pt(0, 1), epsilon)
}

func TestFiniteness(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported as non-finite")
	}
	for _, pt := range []Point{Pt(math.NaN(), 0), Pt(0, math.Inf(-1))} {
		if pt.IsFinite() {
			t.Errorf("%s reported as finite", pt)
		}
	}
	if !Sz(0, 3).IsDegenerate() || Sz(-1, 3).IsDegenerate() {
		t.Error("wrong degeneracy")
	}
}
