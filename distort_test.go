package shape

import (
	"errors"
	"math"
	"testing"
)

func TestDistortionIdentity(t *testing.T) {
	for _, d := range []Distortion{{}, {Perspective: true}} {
		if !d.IsIdentity() {
			t.Fatalf("%v is not the identity", d)
		}
		for _, p := range []Point{Pt(0, 0), Pt(0.3, -0.5), Pt(0.1234567, 0.7654321)} {
			if got := d.MapPoint(p); got != p {
				t.Errorf("MapPoint(%s) = %s", p, got)
			}
		}
		p := UnitRect.OvalPath()
		diff(t, p, d.MapPath(p))
	}
}

func TestDistortionCorners(t *testing.T) {
	d := Distortion{Corners: [4]Vec2{Vec(0.1, 0), Vec(0, 0.2), Vec(-0.3, 0), Vec(0, -0.4)}}
	q := d.Quad()
	for _, perspective := range []bool{false, true} {
		d.Perspective = perspective
		for i, c := range unitCorners {
			assertNear(t, d.MapPoint(c), q[i], 1e-12)
		}
	}
}

func TestDistortionBilinear(t *testing.T) {
	// Moving the bottom right corner by (1, 1) moves the centre by a
	// quarter of that.
	var d Distortion
	d.Corners[CornerBottomRight] = Vec(1, 1)
	assertNear(t, d.MapPoint(Pt(0, 0)), Pt(0.25, 0.25), 1e-12)
	assertNear(t, d.MapPoint(Pt(0.5, 0)), Pt(1, 0.5), 1e-12)
	assertNear(t, d.MapPoint(Pt(-0.5, 0)), Pt(-0.5, 0), 1e-12)
}

func TestDistortionPerspectiveKeepsLinesStraight(t *testing.T) {
	d := Distortion{Perspective: true}
	d.Corners[CornerTopLeft] = Vec(0.2, 0.1)
	d.Corners[CornerTopRight] = Vec(-0.2, 0.1)
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}
	// Points on a line through the square stay collinear.
	a := d.MapPoint(Pt(-0.5, -0.5))
	b := d.MapPoint(Pt(0.5, 0.5))
	for _, s := range []float64{-0.25, 0, 0.3} {
		m := d.MapPoint(Pt(s, s))
		if c := b.Sub(a).Cross(m.Sub(a)); math.Abs(c) > 1e-12 {
			t.Errorf("mapped point %s is off the line by %g", m, c)
		}
	}

	// Lines are mapped directly, curves are subdivided.
	p := UnitRect.Path()
	got := d.MapPath(p)
	if len(got) != len(p) {
		t.Errorf("got %d elements, want %d", len(got), len(p))
	}
	oval := d.MapPathN(UnitRect.OvalPath(), 4)
	if n := len(oval); n != 1+4*4+1 {
		t.Errorf("got %d elements, want %d", n, 1+4*4+1)
	}
}

func TestDistortionMapPathSubdivides(t *testing.T) {
	var d Distortion
	d.Corners[CornerTopRight] = Vec(0.5, 0)
	p := UnitRect.Path()
	got := d.MapPathN(p, 8)
	// Three lines and the implicit closing line, each cut into eight
	// pieces, plus the move and the close.
	if n := len(got); n != 1+3*8+8+1 {
		t.Errorf("got %d elements, want %d", n, 1+3*8+8+1)
	}
	// Endpoints of subdivided segments are exact.
	diff(t, got[0], MoveTo(d.MapPoint(Pt(-0.5, -0.5))))
	diff(t, got[8], LineTo(d.MapPoint(Pt(0.5, -0.5))))
}

func TestDistortionValidate(t *testing.T) {
	var d Distortion
	d.Corners[2] = Vec(math.NaN(), 0)
	if err := d.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, want %v", err, ErrInvalidGeometry)
	}

	// Pulling the bottom right corner onto the diagonal through its
	// neighbours leaves no projective mapping.
	d = Distortion{Perspective: true}
	d.Corners[CornerBottomRight] = Vec(-0.5, -0.5)
	if err := d.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, want %v", err, ErrInvalidGeometry)
	}
}

func TestDistortionValidatePerspectiveQuads(t *testing.T) {
	tests := []struct {
		name    string
		corners [4]Vec2
		ok      bool
	}{
		{"trapezoid", [4]Vec2{Vec(0.2, 0.1), Vec(-0.2, 0.1), {}, {}}, true},
		{"mirrored", [4]Vec2{Vec(1, 0), Vec(-1, 0), Vec(-1, 0), Vec(1, 0.2)}, true},
		{"nearly a triangle", [4]Vec2{{}, {}, Vec(-0.45, -0.45), {}}, true},
		// The bottom right corner crosses the diagonal through its
		// neighbours.
		{"concave", [4]Vec2{{}, {}, Vec(-0.8, -0.8), {}}, false},
		{"self-intersecting", [4]Vec2{{}, Vec(0, 1), Vec(0, -1), {}}, false},
	}
	for _, tt := range tests {
		d := Distortion{Perspective: true, Corners: tt.corners}
		err := d.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%s: got %v, want %v", tt.name, err, ErrInvalidGeometry)
		}

		// Bilinear envelopes have no pole and accept any finite corners.
		d.Perspective = false
		if err := d.Validate(); err != nil {
			t.Errorf("%s: bilinear: unexpected error %v", tt.name, err)
		}
	}
}
