package shape

import (
	"fmt"
	"log/slog"
	"math"
)

// Operation describes what an ongoing drag does, for informational displays.
type Operation int

const (
	OpNone Operation = iota
	OpResize
	OpMove
	OpRotate
	OpDistort
)

func (op Operation) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpResize:
		return "resize"
	case OpMove:
		return "move"
	case OpRotate:
		return "rotate"
	case OpDistort:
		return "distort"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// State is the state of an [Editor].
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type drag struct {
	part Part
	op   Operation
	// start is restored verbatim by CancelDrag, and every update is
	// computed from it.
	start geometryState
	// anchor is the drawing-space point that stays fixed; anchorPos is the
	// same point in canonical space.
	anchor    Point
	anchorPos Point
	startPt   Point
	startKnob Point
}

// Editor turns pointer drags on a geometry's knobs into changes of its
// parameters. An Editor is either idle or dragging exactly one part.
type Editor struct {
	g          *Geometry
	opts       Options
	log        *slog.Logger
	anchorPart Part
	drag       *drag
}

// NewEditor returns an idle editor for g. Zero fields of opts take their
// values from [DefaultOptions].
func NewEditor(g *Geometry, opts Options) *Editor {
	opts = opts.withDefaults()
	return &Editor{
		g:    g,
		opts: opts,
		log:  opts.Logger,
	}
}

// Geometry returns the geometry being edited.
func (e *Editor) Geometry() *Geometry { return e.g }

func (e *Editor) State() State {
	if e.drag != nil {
		return StateDragging
	}
	return StateIdle
}

func (e *Editor) Dragging() bool { return e.drag != nil }

// Part returns the part being dragged, or PartNone.
func (e *Editor) Part() Part {
	if e.drag == nil {
		return PartNone
	}
	return e.drag.part
}

// Anchor returns the point held fixed by the current drag.
func (e *Editor) Anchor() (Point, bool) {
	if e.drag == nil {
		return Point{}, false
	}
	return e.drag.anchor, true
}

func (e *Editor) Operation() Operation {
	if e.drag == nil {
		return OpNone
	}
	return e.drag.op
}

// SetDragAnchorToPart makes part the anchor of subsequent drags instead of
// the dragged part's default anchor. PartNone restores the defaults.
func (e *Editor) SetDragAnchorToPart(part Part) error {
	if part != PartNone {
		if _, ok := part.canonicalPosition(Params{}); !ok {
			return fmt.Errorf("shape: anchor part %s: %w", part, ErrInvalidState)
		}
	}
	e.anchorPart = part
	return nil
}

// BeginDrag starts dragging part, with the pointer at pt.
//
// It fails with [ErrInvalidState] if a drag is already in progress, if part
// can't be dragged or is masked out, and for distortion parts in
// [ModeStandard] or resize parts in the distortion modes.
// [PartSnapToPathEdge] fails with [ErrSnapToPathEdge] and leaves the editor
// idle.
func (e *Editor) BeginDrag(part Part, pt Point) error {
	if e.drag != nil {
		return fmt.Errorf("shape: begin drag on %s while dragging %s: %w", part, e.drag.part, ErrInvalidState)
	}
	if part == PartSnapToPathEdge {
		return ErrSnapToPathEdge
	}
	if !pt.IsFinite() {
		return fmt.Errorf("shape: begin drag at %s: %w", pt, ErrInvalidGeometry)
	}
	if !e.opts.KnobMask.Has(part) {
		return fmt.Errorf("shape: part %s is not draggable: %w", part, ErrInvalidState)
	}
	mode := e.g.Mode()
	role := part.Role()
	switch {
	case role == RoleDistort && mode == ModeStandard:
		return fmt.Errorf("shape: cannot distort in %s mode: %w", mode, ErrInvalidState)
	case role == RoleResize && mode != ModeStandard:
		return fmt.Errorf("shape: cannot resize in %s mode: %w", mode, ErrInvalidState)
	}

	d := &drag{
		part:    part,
		start:   e.g.state,
		startPt: pt,
	}
	d.startKnob, _ = e.g.KnobPoint(part)
	params := d.start.params

	anchorPart := e.anchorPart
	switch role {
	case RoleResize:
		d.op = OpResize
		if anchorPart == PartNone {
			anchorPart = part.Opposite()
		}
	case RoleCentre, RoleOrigin:
		d.op = OpMove
	case RoleRotation:
		d.op = OpRotate
	case RoleDistort:
		d.op = OpDistort
		if anchorPart == PartNone {
			anchorPart = PartCentre
		}
	}
	if anchorPart == PartNone {
		d.anchor = params.Location
		d.anchorPos = Point(params.Offset)
	} else {
		d.anchorPos, _ = anchorPart.canonicalPosition(params)
		d.anchor, _ = e.g.KnobPoint(anchorPart)
	}

	e.drag = d
	e.log.Debug("drag began", "part", part, "op", d.op, "anchor", d.anchor, "point", pt)
	return nil
}

// UpdateDrag moves the pointer of the current drag to pt. With constrain set,
// resizes keep the starting aspect ratio and rotations snap to multiples of
// the constraint angle. It fails with [ErrInvalidState] when no drag is in
// progress; the geometry is left unchanged by any failure.
func (e *Editor) UpdateDrag(pt Point, constrain bool) error {
	d := e.drag
	if d == nil {
		return fmt.Errorf("shape: update drag: %w", ErrInvalidState)
	}
	if !pt.IsFinite() {
		return fmt.Errorf("shape: update drag to %s: %w", pt, ErrInvalidGeometry)
	}

	var (
		s   geometryState
		err error
	)
	switch d.op {
	case OpResize:
		s = e.resize(d, pt, constrain)
	case OpMove:
		s = d.start
		s.params.Location = d.start.params.Location.Translate(pt.Sub(d.startPt))
	case OpRotate:
		s = e.rotate(d, pt, constrain)
	case OpDistort:
		s, err = e.distort(d, pt)
	}
	if err == nil {
		err = e.g.commit(s)
	}
	if err != nil {
		e.log.Debug("drag update rejected", "part", d.part, "point", pt, "error", err)
		return fmt.Errorf("shape: update drag on %s: %w", d.part, err)
	}
	return nil
}

// EndDrag finishes the current drag, keeping its result.
func (e *Editor) EndDrag() error {
	if e.drag == nil {
		return fmt.Errorf("shape: end drag: %w", ErrInvalidState)
	}
	e.log.Debug("drag ended", "part", e.drag.part, "params", e.g.Params())
	e.drag = nil
	return nil
}

// CancelDrag finishes the current drag and restores the geometry to exactly
// the state it had when the drag began.
func (e *Editor) CancelDrag() error {
	if e.drag == nil {
		return fmt.Errorf("shape: cancel drag: %w", ErrInvalidState)
	}
	e.g.restore(e.drag.start)
	e.log.Debug("drag cancelled", "part", e.drag.part)
	e.drag = nil
	return nil
}

func (e *Editor) resize(d *drag, pt Point, constrain bool) geometryState {
	s := d.start
	p := s.params

	if e.opts.AllowSizeKnobsToRotate && d.part.IsCorner() {
		phi := normalizeAngle(pt.Sub(d.anchor).Angle() - d.startKnob.Sub(d.anchor).Angle())
		if math.Abs(phi) > e.opts.RotateThreshold {
			s.params = rotateParams(p, d.anchor, p.Angle+phi, e.step(constrain))
			return s
		}
	}

	// Work in the shape's unrotated frame, where the knob sits at
	// scale*span from the anchor.
	local := pt.Sub(d.anchor).Rotate(-p.Angle)
	knobPos, _ := d.part.canonicalPosition(p)
	span := knobPos.Sub(d.anchorPos)
	edges := d.part.Edges()

	sx, sy := p.Scale.Splat()
	adjustX := edges.Horizontal() && span.X != 0
	adjustY := edges.Vertical() && span.Y != 0
	if adjustX {
		sx = local.X / span.X
	}
	if adjustY {
		sy = local.Y / span.Y
	}

	if constrain && p.Scale.Width != 0 && p.Scale.Height != 0 {
		kx := sx / p.Scale.Width
		ky := sy / p.Scale.Height
		switch {
		case adjustX && adjustY:
			k := math.Max(math.Abs(kx), math.Abs(ky))
			sx = math.Copysign(k, kx) * p.Scale.Width
			sy = math.Copysign(k, ky) * p.Scale.Height
		case adjustX:
			sy = math.Abs(kx) * p.Scale.Height
		case adjustY:
			sx = math.Abs(ky) * p.Scale.Width
		}
	}

	p.Scale = Sz(sx, sy)
	// Place the shape so that the anchor's canonical position maps onto the
	// anchor again.
	rel := d.anchorPos.Sub(Point(p.Offset))
	p.Location = d.anchor.Translate(Vec(rel.X*sx, rel.Y*sy).Rotate(p.Angle).Negate())
	s.params = p
	return s
}

func (e *Editor) rotate(d *drag, pt Point, constrain bool) geometryState {
	s := d.start
	delta := pt.Sub(d.anchor).Angle() - d.startPt.Sub(d.anchor).Angle()
	s.params = rotateParams(s.params, d.anchor, s.params.Angle+normalizeAngle(delta), e.step(constrain))
	return s
}

func (e *Editor) distort(d *drag, pt Point) (geometryState, error) {
	s := d.start
	inv, err := InverseTransform(s.params)
	if err != nil {
		return s, err
	}
	dist, _ := s.mode.Distortion()
	i, _ := d.part.Corner()
	target := pt.Transform(inv).Sub(unitCorners[i])

	switch s.mode.Mode() {
	case ModeShearH:
		// Slide the horizontal edge through the corner.
		dx := target.X - dist.Corners[i].X
		dist.Corners[i].X += dx
		dist.Corners[i^1].X += dx
	case ModeShearV:
		dy := target.Y - dist.Corners[i].Y
		dist.Corners[i].Y += dy
		dist.Corners[3-i].Y += dy
	default:
		dist.Corners[i] = target
	}
	s.mode = newDistortState(s.mode.Mode(), dist)
	return s, nil
}

func (e *Editor) step(constrain bool) float64 {
	if !constrain {
		return 0
	}
	return e.opts.ConstraintAngle
}

// normalizeAngle maps th into (-π, π].
func normalizeAngle(th float64) float64 {
	th = math.Remainder(th, 2*math.Pi)
	if th == -math.Pi {
		th = math.Pi
	}
	return th
}
