package shape

import (
	"fmt"
	"math"
)

// Corner indices into [Distortion.Corners], following the corners of the
// canonical unit square in a y-down space.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// unitCorners are the corners of [UnitRect] in corner index order.
var unitCorners = UnitRect.Corners()

// DefaultSubdivisions is the number of pieces every segment is cut into
// before [Distortion.MapPath] maps it.
const DefaultSubdivisions = 16

// Distortion is a non-affine mapping of the canonical unit square onto an
// arbitrary quadrilateral. Each entry of Corners displaces one corner of the
// unit square, in canonical units. With Perspective unset, points are mapped
// by bilinear interpolation of the displaced corners. With Perspective set,
// the displaced corners define a projective mapping instead.
//
// The zero value is the identity bilinear distortion.
type Distortion struct {
	Perspective bool
	Corners     [4]Vec2
}

// IsIdentity reports whether all corner displacements are zero.
func (d Distortion) IsIdentity() bool {
	return d.Corners == [4]Vec2{}
}

// Quad returns the displaced corners of the unit square.
func (d Distortion) Quad() [4]Point {
	var q [4]Point
	for i, c := range unitCorners {
		q[i] = c.Translate(d.Corners[i])
	}
	return q
}

// Validate fails with [ErrInvalidGeometry] if a displacement isn't finite or,
// for a perspective distortion, the displaced corners do not form a convex
// quad that a projective mapping can reach without passing through infinity.
func (d Distortion) Validate() error {
	for i, c := range d.Corners {
		if !c.IsFinite() {
			return fmt.Errorf("distortion corner %d %s: %w", i, c, ErrInvalidGeometry)
		}
	}
	if d.Perspective && !d.homography().valid() {
		return fmt.Errorf("perspective quad %v: %w", d.Quad(), ErrInvalidGeometry)
	}
	return nil
}

// MapPoint maps a point in canonical space. Identity distortions return p
// unchanged.
func (d Distortion) MapPoint(p Point) Point {
	if d.IsIdentity() {
		return p
	}
	if d.Perspective {
		return d.homography().apply(p)
	}
	return d.bilinear(p)
}

func (d Distortion) bilinear(p Point) Point {
	u, v := p.X+0.5, p.Y+0.5
	c := d.Corners
	disp := c[CornerTopLeft].Mul((1 - u) * (1 - v)).
		Add(c[CornerTopRight].Mul(u * (1 - v))).
		Add(c[CornerBottomRight].Mul(u * v)).
		Add(c[CornerBottomLeft].Mul((1 - u) * v))
	return p.Translate(disp)
}

// MapPath maps every point of p, cutting each segment into
// [DefaultSubdivisions] pieces first. See [Distortion.MapPathN].
func (d Distortion) MapPath(p BezPath) BezPath {
	return d.MapPathN(p, DefaultSubdivisions)
}

// MapPathN maps every point of p. Neither mapping preserves Bézier curves, so
// each curve is cut into n pieces whose control points are mapped
// individually. Bilinear maps also bend straight lines, so lines, including
// the implicit closing lines of closed subpaths, are cut as well. Projective
// maps keep lines straight and map them directly.
//
// Identity distortions return an unmodified copy of p.
func (d Distortion) MapPathN(p BezPath, n int) BezPath {
	if d.IsIdentity() {
		return p.Clone()
	}
	n = max(n, 1)
	var mapPt func(Point) Point
	if d.Perspective {
		h := d.homography()
		mapPt = h.apply
	} else {
		mapPt = d.bilinear
	}

	out := make(BezPath, 0, len(p)*n)
	line := func(from, to Point) {
		if d.Perspective {
			out.LineTo(mapPt(to))
			return
		}
		l := Line{from, to}
		for i := 1; i < n; i++ {
			out.LineTo(mapPt(l.Eval(float64(i) / float64(n))))
		}
		out.LineTo(mapPt(to))
	}
	var cur, start Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			out.MoveTo(mapPt(el.P0))
			cur, start = el.P0, el.P0
		case LineToKind:
			line(cur, el.P0)
			cur = el.P0
		case QuadToKind:
			q := QuadBez{cur, el.P0, el.P1}
			for i := range n {
				s := q.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
				if i == n-1 {
					s.P2 = el.P1
				}
				out.QuadTo(mapPt(s.P1), mapPt(s.P2))
			}
			cur = el.P1
		case CubicToKind:
			c := CubicBez{cur, el.P0, el.P1, el.P2}
			for i := range n {
				s := c.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
				if i == n-1 {
					s.P3 = el.P2
				}
				out.CubicTo(mapPt(s.P1), mapPt(s.P2), mapPt(s.P3))
			}
			cur = el.P2
		case ClosePathKind:
			if cur != start && !d.Perspective {
				line(cur, start)
			}
			out.ClosePath()
			cur = start
		}
	}
	return out
}

// homography is a projective mapping of the unit square [0, 1]² onto a
// quadrilateral, stored as the 3×3 matrix
//
//	| a11 a21 a31 |
//	| a12 a22 a32 |
//	| a13 a23 a33 |
type homography struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
}

// homography returns the mapping from canonical space onto the displaced
// corners.
func (d Distortion) homography() homography {
	return squareToQuad(d.Quad())
}

// squareToQuad computes the projective mapping that takes the corners (0, 0),
// (1, 0), (1, 1), (0, 1) to q[0] through q[3].
func squareToQuad(q [4]Point) homography {
	x0, y0 := q[0].Splat()
	x1, y1 := q[1].Splat()
	x2, y2 := q[2].Splat()
	x3, y3 := q[3].Splat()
	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3
	if dx3 == 0 && dy3 == 0 {
		// Parallelogram: the mapping is affine.
		return homography{
			a11: x1 - x0, a21: x2 - x1, a31: x0,
			a12: y1 - y0, a22: y2 - y1, a32: y0,
			a33: 1,
		}
	}
	dx1 := x1 - x2
	dx2 := x3 - x2
	dy1 := y1 - y2
	dy2 := y3 - y2
	den := dx1*dy2 - dx2*dy1
	a13 := (dx3*dy2 - dx2*dy3) / den
	a23 := (dx1*dy3 - dx3*dy1) / den
	return homography{
		a11: x1 - x0 + a13*x1, a21: x3 - x0 + a23*x3, a31: x0,
		a12: y1 - y0 + a13*y1, a22: y3 - y0 + a23*y3, a32: y0,
		a13: a13, a23: a23, a33: 1,
	}
}

// apply maps a canonical point, shifting it into the unit square first.
func (h homography) apply(p Point) Point {
	u, v := p.X+0.5, p.Y+0.5
	den := h.a13*u + h.a23*v + h.a33
	return Point{
		X: (h.a11*u + h.a21*v + h.a31) / den,
		Y: (h.a12*u + h.a22*v + h.a32) / den,
	}
}

// valid reports whether h is finite and has no pole in the unit square. The
// denominator is linear, so it is positive everywhere on the square if it is
// positive at the corners. Concave and self-intersecting quads fail this.
func (h homography) valid() bool {
	for _, f := range [...]float64{h.a11, h.a12, h.a13, h.a21, h.a22, h.a23, h.a31, h.a32, h.a33} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	for _, c := range [...][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		if !(h.a13*c[0]+h.a23*c[1]+h.a33 > 0) {
			return false
		}
	}
	return true
}
