// Package shape implements the geometric core of a vector shape editor: a
// shape's outline stored once in a canonical frame, the parameters that place
// it in the drawing, and the knob dragging that edits those parameters.
//
// # Canonical paths
//
// A [CanonicalPath] is a [BezPath] normalized so that its bounding box is the
// unit square [-0.5, 0.5]² centered at the origin. Canonical paths are
// immutable, so any number of shapes can share one; [UnitSquare] and
// [UnitOval] are shared by all rectangles and ellipses. Use
// [NewCanonicalPath] to normalize an arbitrary path.
//
// # Geometry
//
// A [Geometry] places a canonical path in the drawing. Its [Params] are a
// location, an angle, a scale and an offset, combined by [BuildTransform] in
// this order:
//
//  1. translate by -Offset, moving the logical centre to the origin
//  2. scale by Scale; negative components flip the shape
//  3. rotate by Angle
//  4. translate to Location
//
// Outside of [ModeStandard], a geometry also carries a [Distortion], a
// bilinear or projective envelope that is applied to the canonical path
// before the affine transform. Because the envelope lives in the canonical
// frame, it follows the shape through moves, rotations and resizes.
//
// The transformed path and its bounds are computed on demand and cached until
// the next mutation. Every mutation is atomic: on error, the geometry is left
// as it was.
//
// # Editing
//
// An [Editor] turns pointer drags on knobs, identified by [Part], into
// parameter updates: resizing against an anchor, rotating, moving and
// distorting. A drag can be cancelled, restoring the geometry exactly.
//
// # Conventions
//
// Coordinates are y-down, as is common in graphics. Positive angles rotate
// the positive x axis towards the positive y axis, which appears clockwise on
// screen.
//
// [Affine] follows the convention that (A * B) * v == A * (B * v), so
// A.Mul(B) applies B first.
package shape
