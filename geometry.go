package shape

import (
	"fmt"
	"math"
)

// DefaultConstraintAngle is the step constrained rotations snap to.
const DefaultConstraintAngle = math.Pi / 12

// geometryState is everything a [Geometry] is made of. Copying it takes a
// complete snapshot, since the canonical path is immutable and the mode state
// is a value.
type geometryState struct {
	path   *CanonicalPath
	params Params
	mode   modeState
}

func (s geometryState) validate() error {
	if s.path == nil {
		return fmt.Errorf("nil canonical path: %w", ErrInvalidGeometry)
	}
	if err := s.params.Validate(); err != nil {
		return err
	}
	if d, ok := s.mode.Distortion(); ok {
		return d.Validate()
	}
	return nil
}

// transformed is the derived drawing-space path and its bounds. It is either
// valid or dirty; it is never partially up to date.
type transformed struct {
	valid  bool
	path   BezPath
	bounds Rect
}

// Geometry is the placement of a canonical path in the drawing: a location,
// rotation, scale and offset, an operation mode and, outside of
// [ModeStandard], a [Distortion].
//
// All mutations are atomic. A mutation that fails leaves the geometry exactly
// as it was. A Geometry must not be used concurrently.
type Geometry struct {
	state geometryState
	cache transformed
}

// NewGeometry returns a geometry for cp with [DefaultParams] in
// [ModeStandard].
func NewGeometry(cp *CanonicalPath) *Geometry {
	if cp == nil {
		cp = UnitSquare()
	}
	return &Geometry{state: geometryState{
		path:   cp,
		params: DefaultParams,
		mode:   standardState{},
	}}
}

// commit replaces the geometry's state after validating it. It is the only
// place that invalidates the cached transformed path.
func (g *Geometry) commit(s geometryState) error {
	if err := s.validate(); err != nil {
		return err
	}
	g.state = s
	g.cache = transformed{}
	return nil
}

// restore reinstates a snapshot that is known to be valid.
func (g *Geometry) restore(s geometryState) {
	g.state = s
	g.cache = transformed{}
}

func (g *Geometry) derived() *transformed {
	if !g.cache.valid {
		d, ok := g.state.mode.Distortion()
		path := g.state.path.transformed(g.Transform(), d, ok)
		g.cache = transformed{
			valid:  true,
			path:   path,
			bounds: path.BoundingBox(),
		}
	}
	return &g.cache
}

// Path returns the shared canonical path.
func (g *Geometry) Path() *CanonicalPath { return g.state.path }

func (g *Geometry) Params() Params  { return g.state.params }
func (g *Geometry) Location() Point { return g.state.params.Location }
func (g *Geometry) Angle() float64  { return g.state.params.Angle }
func (g *Geometry) Scale() Size     { return g.state.params.Scale }
func (g *Geometry) Offset() Vec2    { return g.state.params.Offset }
func (g *Geometry) Mode() Mode      { return g.state.mode.Mode() }

func (g *Geometry) String() string {
	return fmt.Sprintf("Geometry{%s, %s}", g.state.params, g.Mode())
}

// Distortion returns the geometry's envelope. The second result is false in
// [ModeStandard], which has none.
func (g *Geometry) Distortion() (Distortion, bool) {
	return g.state.mode.Distortion()
}

// Transform returns the affine part of the canonical-to-drawing mapping.
func (g *Geometry) Transform() Affine {
	return BuildTransform(g.state.params)
}

// TransformIncludingParent returns [Geometry.Transform] followed by parent.
func (g *Geometry) TransformIncludingParent(parent Affine) Affine {
	return BuildIncludingParent(g.Transform(), parent)
}

// InverseTransform returns the drawing-to-canonical affine. It fails with
// [ErrDegenerateTransform] if either scale component is zero. The distortion
// is not inverted.
func (g *Geometry) InverseTransform() (Affine, error) {
	return InverseTransform(g.state.params)
}

// TransformedPath returns the canonical path placed in the drawing, with the
// distortion applied in distortion modes. The result belongs to the caller.
func (g *Geometry) TransformedPath() BezPath {
	return g.derived().path.Clone()
}

// MakePath is an alias of [Geometry.TransformedPath].
func (g *Geometry) MakePath() BezPath {
	return g.TransformedPath()
}

// Bounds returns the bounding box of the transformed path.
func (g *Geometry) Bounds() Rect {
	return g.derived().bounds
}

// PointFromRelative maps a point in canonical space into the drawing,
// applying the distortion first when there is one.
func (g *Geometry) PointFromRelative(p Point) Point {
	if d, ok := g.state.mode.Distortion(); ok {
		p = d.MapPoint(p)
	}
	return p.Transform(g.Transform())
}

// LocationIgnoringOffset returns the centre of the canonical path in the
// drawing. It differs from [Geometry.Location] when the offset isn't zero.
func (g *Geometry) LocationIgnoringOffset() Point {
	return Point{}.Transform(g.Transform())
}

// KnobPoint returns the drawing-space position of part's knob. It fails with
// [ErrInvalidGeometry] for parts that have no position.
func (g *Geometry) KnobPoint(part Part) (Point, error) {
	pos, ok := part.canonicalPosition(g.state.params)
	if !ok {
		return Point{}, fmt.Errorf("shape: knob point of %s: %w", part, ErrInvalidGeometry)
	}
	if part.Role() == RoleOrigin {
		return g.state.params.Location, nil
	}
	return g.PointFromRelative(pos), nil
}

// RotationKnobPoint returns the position of the rotation knob.
func (g *Geometry) RotationKnobPoint() Point {
	pt, _ := g.KnobPoint(PartRotation)
	return pt
}

// SetPath replaces the canonical path. The parameters are left alone; use
// [Geometry.ResetBoundingBox] or [Geometry.AdoptPath] to keep the appearance.
func (g *Geometry) SetPath(cp *CanonicalPath) error {
	s := g.state
	s.path = cp
	if err := g.commit(s); err != nil {
		return fmt.Errorf("shape: set path: %w", err)
	}
	return nil
}

// SetParams replaces all placement parameters at once.
func (g *Geometry) SetParams(p Params) error {
	s := g.state
	s.params = p
	if err := g.commit(s); err != nil {
		return fmt.Errorf("shape: set params: %w", err)
	}
	return nil
}

func (g *Geometry) SetLocation(pt Point) error {
	p := g.state.params
	p.Location = pt
	return g.SetParams(p)
}

func (g *Geometry) SetAngle(th float64) error {
	p := g.state.params
	p.Angle = th
	return g.SetParams(p)
}

func (g *Geometry) SetScale(sz Size) error {
	p := g.state.params
	p.Scale = sz
	return g.SetParams(p)
}

func (g *Geometry) SetOffset(v Vec2) error {
	p := g.state.params
	p.Offset = v
	return g.SetParams(p)
}

// MoveBy translates the geometry by v.
func (g *Geometry) MoveBy(v Vec2) error {
	p := g.state.params
	p.Location = p.Location.Translate(v)
	return g.SetParams(p)
}

// Rotate sets the angle to th while keeping ref visually fixed. With
// constrain set, the change of angle is snapped to a multiple of
// [DefaultConstraintAngle].
func (g *Geometry) Rotate(ref Point, th float64, constrain bool) error {
	if !ref.IsFinite() {
		return fmt.Errorf("shape: rotate about %s: %w", ref, ErrInvalidGeometry)
	}
	step := 0.0
	if constrain {
		step = DefaultConstraintAngle
	}
	s := g.state
	s.params = rotateParams(s.params, ref, th, step)
	if err := g.commit(s); err != nil {
		return fmt.Errorf("shape: rotate: %w", err)
	}
	return nil
}

// rotateParams returns p rotated to th about ref. A non-zero step snaps the
// change of angle, not the angle itself.
func rotateParams(p Params, ref Point, th, step float64) Params {
	delta := th - p.Angle
	if step > 0 {
		delta = math.Round(delta/step) * step
	}
	p.Angle += delta
	p.Location = ref.Translate(p.Location.Sub(ref).Rotate(delta))
	return p
}

// FlipHorizontally mirrors the shape about its vertical axis by negating the
// horizontal scale.
func (g *Geometry) FlipHorizontally() {
	s := g.state
	s.params.Scale.Width = -s.params.Scale.Width
	g.restore(s)
}

// FlipVertically mirrors the shape about its horizontal axis by negating the
// vertical scale.
func (g *Geometry) FlipVertically() {
	s := g.state
	s.params.Scale.Height = -s.params.Scale.Height
	g.restore(s)
}

// ResetBoundingBox bakes the current appearance into a new canonical path so
// that the shape's unrotated bounds become its canonical unit square. Flips
// and distortions become part of the path, the scale ends up positive and
// the distortion is cleared. The angle, location and the transformed path
// are unchanged.
func (g *Geometry) ResetBoundingBox() error {
	if err := g.adopt(g.TransformedPath(), g.state.params.Angle); err != nil {
		return fmt.Errorf("shape: reset bounding box: %w", err)
	}
	return nil
}

// ResetBoundingBoxAndRotation is like [Geometry.ResetBoundingBox] but also
// bakes in the rotation, leaving the angle at zero.
func (g *Geometry) ResetBoundingBoxAndRotation() error {
	if err := g.adopt(g.TransformedPath(), 0); err != nil {
		return fmt.Errorf("shape: reset bounding box and rotation: %w", err)
	}
	return nil
}

// AdoptPath replaces the canonical path with one derived from p, a path in
// drawing space that is already rotated by the geometry's angle. The
// geometry's angle and location are kept.
func (g *Geometry) AdoptPath(p BezPath) error {
	if err := g.adopt(p, g.state.params.Angle); err != nil {
		return fmt.Errorf("shape: adopt path: %w", err)
	}
	return nil
}

// adopt makes p, a drawing-space path rotated by th about the current
// location, the geometry's new appearance.
func (g *Geometry) adopt(p BezPath, th float64) error {
	loc := g.state.params.Location
	local := p
	if th != 0 {
		local = p.Transform(RotateAbout(-th, loc))
	}
	cp, back, err := NewCanonicalPath(local)
	if err != nil {
		return err
	}
	sx, sy := back.N0, back.N3
	center := Point(back.Translation())
	s := g.state
	s.path = cp
	s.params = Params{
		Location: loc,
		Angle:    th,
		Scale:    Sz(sx, sy),
		Offset:   Vec((loc.X-center.X)/sx, (loc.Y-center.Y)/sy),
	}
	if d, ok := s.mode.Distortion(); ok {
		s.mode = newDistortState(s.mode.Mode(), Distortion{Perspective: d.Perspective})
	}
	return g.commit(s)
}

// SetOperationMode switches the operation mode. Entering a distortion mode
// starts from the identity envelope unless the geometry already has one,
// which is kept. Returning to [ModeStandard] discards the envelope.
func (g *Geometry) SetOperationMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("shape: set operation mode %s: %w", m, ErrInvalidGeometry)
	}
	s := g.state
	if m == ModeStandard {
		s.mode = standardState{}
	} else {
		d, _ := s.mode.Distortion()
		s.mode = newDistortState(m, d)
	}
	if err := g.commit(s); err != nil {
		return fmt.Errorf("shape: set operation mode %s: %w", m, err)
	}
	return nil
}

// SetDistortion replaces the envelope. Its Perspective field is overridden by
// the current mode. It fails with [ErrInvalidState] in [ModeStandard].
func (g *Geometry) SetDistortion(d Distortion) error {
	m := g.state.mode.Mode()
	if m == ModeStandard {
		return fmt.Errorf("shape: set distortion in %s mode: %w", m, ErrInvalidState)
	}
	s := g.state
	s.mode = newDistortState(m, d)
	if err := g.commit(s); err != nil {
		return fmt.Errorf("shape: set distortion: %w", err)
	}
	return nil
}

// Clone returns an independent copy of g that shares its canonical path.
func (g *Geometry) Clone() *Geometry {
	return &Geometry{state: g.state}
}
