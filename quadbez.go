package shape

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt).Add(Vec2(q.P1).Mul(mt * 2).Add(Vec2(q.P2).Mul(t)).Mul(t))
	return Point(v)
}

// Raise returns the equivalent cubic Bézier.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		Point(Vec2(q.P0).Add(Vec2(q.P1).Mul(2)).Div(3)),
		Point(Vec2(q.P2).Add(Vec2(q.P1).Mul(2)).Div(3)),
		q.P2,
	}
}

// Subsegment returns the part of the curve between t0 and t1 as a new quadratic.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Extrema returns the parameters in (0, 1) at which the curve has a
// horizontal or vertical tangent.
func (q QuadBez) Extrema() ([2]float64, int) {
	var out [2]float64
	var n int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	return out, n
}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	r := NewRectFromPoints(q.P0, q.P2)
	ts, n := q.Extrema()
	for _, t := range ts[:n] {
		r = r.UnionPoint(q.Eval(t))
	}
	return r
}
