package shape

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// MoveToKind moves the pen without drawing, starting a new subpath.
	MoveToKind PathElementKind = iota + 1
	// LineToKind draws a line from the current position to P0.
	LineToKind
	// QuadToKind draws a quadratic Bézier with control point P0 ending at P1.
	QuadToKind
	// CubicToKind draws a cubic Bézier with control points P0 and P1 ending at P2.
	CubicToKind
	// ClosePathKind closes the current subpath.
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

// points returns the number of points used by the element.
func (el PathElement) points() int {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return 1
	case QuadToKind:
		return 2
	case CubicToKind:
		return 3
	default:
		return 0
	}
}

// MapPoints returns the element with fn applied to each of its points.
func (el PathElement) MapPoints(fn func(Point) Point) PathElement {
	n := el.points()
	if n > 0 {
		el.P0 = fn(el.P0)
	}
	if n > 1 {
		el.P1 = fn(el.P1)
	}
	if n > 2 {
		el.P2 = fn(el.P2)
	}
	return el
}

func (el PathElement) Transform(aff Affine) PathElement {
	return el.MapPoints(func(pt Point) Point { return pt.Transform(aff) })
}

// EndPoint returns the pen position after the element, if the element has
// one. ClosePath returns false, as its end point depends on the subpath.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// IsFinite reports whether all points used by the element are finite.
func (el PathElement) IsFinite() bool {
	n := el.points()
	return (n < 1 || el.P0.IsFinite()) &&
		(n < 2 || el.P1.IsFinite()) &&
		(n < 3 || el.P2.IsFinite())
}

// BezPath is a path made of lines, quadratic and cubic Béziers. It may
// contain multiple subpaths, each of which begins with a MoveTo.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Clone returns a copy of the path that shares no memory with p.
func (p BezPath) Clone() BezPath {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Transform returns a new path with an affine transformation applied.
func (p BezPath) Transform(aff Affine) BezPath {
	return p.MapPoints(func(pt Point) Point { return pt.Transform(aff) })
}

// MapPoints returns a new path with fn applied to every on-curve and control
// point. This is only exact for maps that preserve Béziers, such as affine
// transformations.
func (p BezPath) MapPoints(fn func(Point) Point) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.MapPoints(fn)
	}
	return out
}

// IsFinite reports whether every point of the path is finite.
func (p BezPath) IsFinite() bool {
	for _, el := range p {
		if !el.IsFinite() {
			return false
		}
	}
	return true
}

// HasSegments reports whether the path contains any segments. A path that consists only
// of MoveTo and ClosePath elements has no segments.
func (p BezPath) HasSegments() bool {
	for _, el := range p {
		if el.Kind != MoveToKind && el.Kind != ClosePathKind {
			return true
		}
	}
	return false
}

// BoundingBox returns the tight bounding box of the path, taking curve
// extrema into account. Lone MoveTo points are included. The empty path has
// the zero Rect as its bounding box.
func (p BezPath) BoundingBox() Rect {
	var (
		bbox Rect
		init bool
	)
	add := func(r Rect) {
		if !init {
			bbox, init = r, true
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, el := range p {
		if el.Kind == MoveToKind {
			add(NewRectFromPoints(el.P0, el.P0))
		}
	}
	for seg := range p.Segments() {
		add(seg.BoundingBox())
	}
	return bbox
}

// Subpaths splits the path at each MoveTo. Every returned path is a copy.
func (p BezPath) Subpaths() []BezPath {
	var out []BezPath
	start := -1
	for i, el := range p {
		if el.Kind == MoveToKind {
			if start >= 0 {
				out = append(out, slices.Clone(p[start:i]))
			}
			start = i
		}
	}
	if start >= 0 {
		out = append(out, slices.Clone(p[start:]))
	}
	return out
}

// SVG returns the path as SVG path data. Numbers are formatted with the
// shortest representation that parses back to the same float64.
func (p BezPath) SVG() string {
	var sb strings.Builder
	num := func(f float64) {
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	pt := func(pt Point) {
		num(pt.X)
		sb.WriteByte(',')
		num(pt.Y)
	}
	for i, el := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch el.Kind {
		case MoveToKind:
			sb.WriteString("M")
			pt(el.P0)
		case LineToKind:
			sb.WriteString("L")
			pt(el.P0)
		case QuadToKind:
			sb.WriteString("Q")
			pt(el.P0)
			sb.WriteByte(' ')
			pt(el.P1)
		case CubicToKind:
			sb.WriteString("C")
			pt(el.P0)
			sb.WriteByte(' ')
			pt(el.P1)
			sb.WriteByte(' ')
			pt(el.P2)
		case ClosePathKind:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

// Segments converts a sequence of path elements into path segments. A
// ClosePath produces a closing line if the pen isn't already at the
// subpath's start.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		for el := range seq {
			var seg PathSegment
			switch el.Kind {
			case MoveToKind:
				start, last = el.P0, el.P0
				continue
			case LineToKind:
				seg = Line{last, el.P0}.Seg()
			case QuadToKind:
				seg = QuadBez{last, el.P0, el.P1}.Seg()
			case CubicToKind:
				seg = CubicBez{last, el.P0, el.P1, el.P2}.Seg()
			case ClosePathKind:
				if last == start {
					continue
				}
				seg = Line{last, start}.Seg()
			default:
				continue
			}
			last = seg.End()
			if !yield(seg) {
				return
			}
		}
	}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment is a self-contained segment of a path, acting as a tagged union
// of [Line], [QuadBez] and [CubicBez].
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only valid when Kind ==
// CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point { return seg.P0 }

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	default:
		return seg.P3
	}
}

func (seg PathSegment) Subsegment(t0, t1 float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(t0, t1).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(t0, t1).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(t0, t1).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}
