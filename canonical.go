package shape

import (
	"fmt"
	"iter"
	"slices"
)

// CanonicalPath is a path whose bounding box is the unit square
// [-0.5, 0.5]² centered at the origin. It is immutable: the constructors copy
// their input and no method hands out the underlying elements. This is what
// makes it safe for any number of geometries to share one *CanonicalPath.
type CanonicalPath struct {
	els  BezPath
	bbox Rect
}

var (
	unitSquare = &CanonicalPath{els: UnitRect.Path(), bbox: UnitRect}
	unitOval   = &CanonicalPath{els: UnitRect.OvalPath(), bbox: UnitRect}
)

// UnitSquare returns the shared canonical path of a rectangle.
func UnitSquare() *CanonicalPath { return unitSquare }

// UnitOval returns the shared canonical path of an ellipse.
func UnitOval() *CanonicalPath { return unitOval }

// NewCanonicalPath normalizes p into the canonical unit square. It returns
// the canonical path and the transform that maps it back onto p.
//
// An axis along which p has zero extent is left unscaled, so a horizontal
// line stays a horizontal line of height zero. Empty paths, paths that don't
// start with a MoveTo and paths with non-finite points fail with
// [ErrInvalidGeometry].
func NewCanonicalPath(p BezPath) (*CanonicalPath, Affine, error) {
	if len(p) == 0 || p[0].Kind != MoveToKind {
		return nil, Affine{}, fmt.Errorf("shape: canonical path must start with a MoveTo: %w", ErrInvalidGeometry)
	}
	if !p.IsFinite() {
		return nil, Affine{}, fmt.Errorf("shape: canonical path has non-finite points: %w", ErrInvalidGeometry)
	}
	bbox := p.BoundingBox()
	w, h := unitExtent(bbox.Width()), unitExtent(bbox.Height())
	center := bbox.Center()
	toCanonical := Translate(Vec2(center).Negate()).ThenScale(1/w, 1/h)
	els := p.Transform(toCanonical)
	cp := &CanonicalPath{
		els:  els,
		bbox: els.BoundingBox(),
	}
	return cp, Scale(w, h).ThenTranslate(Vec2(center)), nil
}

// unitExtent returns the divisor used to normalize an extent. Zero extents
// are left alone.
func unitExtent(e float64) float64 {
	if e == 0 {
		return 1
	}
	return e
}

// Path returns a copy of the canonical elements.
func (cp *CanonicalPath) Path() BezPath {
	return cp.els.Clone()
}

// Elements returns an iterator over the canonical elements.
func (cp *CanonicalPath) Elements() iter.Seq[PathElement] {
	return slices.Values(cp.els)
}

// Len returns the number of elements.
func (cp *CanonicalPath) Len() int { return len(cp.els) }

// BoundingBox returns the path's bounding box. It is [UnitRect] for any path
// with a non-zero extent in both directions.
func (cp *CanonicalPath) BoundingBox() Rect { return cp.bbox }

// SVG returns the canonical path as SVG path data.
func (cp *CanonicalPath) SVG() string { return cp.els.SVG() }

// transformed returns the canonical path with dist and then aff applied.
// It always returns a fresh path.
func (cp *CanonicalPath) transformed(aff Affine, dist Distortion, distorted bool) BezPath {
	if !distorted || dist.IsIdentity() {
		return cp.els.Transform(aff)
	}
	// MapPath always allocates, so transform in place.
	out := dist.MapPath(cp.els)
	for i := range out {
		out[i] = out[i].Transform(aff)
	}
	return out
}
