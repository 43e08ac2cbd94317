package shape

import (
	"testing"
)

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	epsilon := 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, q.Eval(ts), qs.Eval(tt), epsilon)
	}
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	c := q.Raise()
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		assertNear(t, q.Eval(tt), c.Eval(tt), 1e-12)
	}
}

func TestQuadBezBoundingBox(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	ts, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	assertNearF(t, ts[0], 0.5, 1e-12)
	bbox := q.BoundingBox()
	assertNearF(t, bbox.Y1, 1, 1e-12)
	assertNearF(t, bbox.X1, 2, 0)
}
