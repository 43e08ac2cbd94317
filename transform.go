package shape

import (
	"fmt"
	"math"
)

// Params are the mutable placement parameters of a shape. Together with the
// canonical path they fully determine the shape's affine placement in the
// drawing.
type Params struct {
	// Location is the drawing-space position of the shape's logical centre,
	// which is also the default pivot for rotation.
	Location Point
	// Angle is the rotation in radians, following the convention of
	// [Rotate].
	Angle float64
	// Scale is the size of the canonical unit square in the drawing. A
	// negative component flips the shape along that axis.
	Scale Size
	// Offset moves the logical centre away from the canonical path's
	// centre, in canonical units.
	Offset Vec2
}

// DefaultParams are the parameters of a freshly created shape: the canonical
// path placed at the origin at unit size.
var DefaultParams = Params{Scale: Sz(1, 1)}

func (p Params) String() string {
	return fmt.Sprintf("Params{loc: %s, angle: %g, scale: %s, offset: %s}", p.Location, p.Angle, p.Scale, p.Offset)
}

// Validate fails with [ErrInvalidGeometry] if any parameter is NaN or
// infinite.
func (p Params) Validate() error {
	switch {
	case !p.Location.IsFinite():
		return fmt.Errorf("location %s: %w", p.Location, ErrInvalidGeometry)
	case math.IsInf(p.Angle, 0) || math.IsNaN(p.Angle):
		return fmt.Errorf("angle %g: %w", p.Angle, ErrInvalidGeometry)
	case !p.Scale.IsFinite():
		return fmt.Errorf("scale %s: %w", p.Scale, ErrInvalidGeometry)
	case !p.Offset.IsFinite():
		return fmt.Errorf("offset %s: %w", p.Offset, ErrInvalidGeometry)
	}
	return nil
}

// BuildTransform returns the forward canonical-to-drawing transform for p.
// Points are translated by -Offset, scaled by Scale, rotated by Angle and
// finally translated to Location, in that order.
func BuildTransform(p Params) Affine {
	return Translate(p.Offset.Negate()).
		ThenScale(p.Scale.Width, p.Scale.Height).
		ThenRotate(p.Angle).
		ThenTranslate(Vec2(p.Location))
}

// InverseTransform returns the drawing-to-canonical transform for p, the
// exact inverse of [BuildTransform]. It fails with [ErrDegenerateTransform]
// if either scale component is zero.
func InverseTransform(p Params) (Affine, error) {
	if p.Scale.IsDegenerate() {
		return Affine{}, fmt.Errorf("shape: inverse of scale %s: %w", p.Scale, ErrDegenerateTransform)
	}
	return Translate(Vec2(p.Location).Negate()).
		ThenRotate(-p.Angle).
		ThenScale(1/p.Scale.Width, 1/p.Scale.Height).
		ThenTranslate(p.Offset), nil
}

// BuildIncludingParent returns t followed by parent, for shapes that live
// in a nested coordinate space. Points pass through t first.
func BuildIncludingParent(t, parent Affine) Affine {
	return parent.Mul(t)
}
