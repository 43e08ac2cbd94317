package shape

import (
	"fmt"
	"math/bits"
	"strings"
)

// Part identifies one of a shape's knobs.
type Part int

const (
	PartNone Part = iota
	PartTopLeft
	PartTop
	PartTopRight
	PartRight
	PartBottomRight
	PartBottom
	PartBottomLeft
	PartLeft
	// PartCentre is the centre of the canonical path.
	PartCentre
	// PartOrigin is the shape's location, which differs from the centre by
	// the offset.
	PartOrigin
	PartRotation
	PartDistortTopLeft
	PartDistortTopRight
	PartDistortBottomRight
	PartDistortBottomLeft
	// PartSnapToPathEdge isn't a knob. Hit testing reports it to ask the
	// caller to snap to the path's edge itself.
	PartSnapToPathEdge

	numParts = iota
)

// Role is what dragging a part does.
type Role int

const (
	RoleNone Role = iota
	RoleResize
	RoleCentre
	RoleOrigin
	RoleRotation
	RoleDistort
	RoleSnap
)

var roleNames = [...]string{
	RoleNone:     "none",
	RoleResize:   "resize",
	RoleCentre:   "centre",
	RoleOrigin:   "origin",
	RoleRotation: "rotation",
	RoleDistort:  "distort",
	RoleSnap:     "snap",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Edges is a set of edges of the canonical unit square. Corner parts touch
// two edges.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	EdgesHorizontal = EdgeLeft | EdgeRight
	EdgesVertical   = EdgeTop | EdgeBottom
)

// Has reports whether all edges in o are in e.
func (e Edges) Has(o Edges) bool { return e&o == o }

// Horizontal reports whether e includes the left or right edge, that is,
// whether a resize through e changes the width.
func (e Edges) Horizontal() bool { return e&EdgesHorizontal != 0 }

// Vertical reports whether e includes the top or bottom edge.
func (e Edges) Vertical() bool { return e&EdgesVertical != 0 }

// rotationKnobX is the canonical x coordinate of the rotation knob.
const rotationKnobX = 0.375

type partInfo struct {
	name     string
	action   string
	role     Role
	edges    Edges
	pos      Point
	opposite Part
	corner   int
}

// parts is the table every Part method reads from. Corner indices are -1 for
// parts that aren't distortion corners.
var parts = [numParts]partInfo{
	PartNone:               {"none", "", RoleNone, 0, Point{}, PartNone, -1},
	PartTopLeft:            {"top-left", "Resize", RoleResize, EdgeTop | EdgeLeft, Pt(-0.5, -0.5), PartBottomRight, -1},
	PartTop:                {"top", "Resize", RoleResize, EdgeTop, Pt(0, -0.5), PartBottom, -1},
	PartTopRight:           {"top-right", "Resize", RoleResize, EdgeTop | EdgeRight, Pt(0.5, -0.5), PartBottomLeft, -1},
	PartRight:              {"right", "Resize", RoleResize, EdgeRight, Pt(0.5, 0), PartLeft, -1},
	PartBottomRight:        {"bottom-right", "Resize", RoleResize, EdgeBottom | EdgeRight, Pt(0.5, 0.5), PartTopLeft, -1},
	PartBottom:             {"bottom", "Resize", RoleResize, EdgeBottom, Pt(0, 0.5), PartTop, -1},
	PartBottomLeft:         {"bottom-left", "Resize", RoleResize, EdgeBottom | EdgeLeft, Pt(-0.5, 0.5), PartTopRight, -1},
	PartLeft:               {"left", "Resize", RoleResize, EdgeLeft, Pt(-0.5, 0), PartRight, -1},
	PartCentre:             {"centre", "Move", RoleCentre, 0, Pt(0, 0), PartNone, -1},
	PartOrigin:             {"origin", "Move Origin", RoleOrigin, 0, Pt(0, 0), PartNone, -1},
	PartRotation:           {"rotation", "Rotate", RoleRotation, 0, Pt(rotationKnobX, 0), PartNone, -1},
	PartDistortTopLeft:     {"distort-top-left", "Distort", RoleDistort, EdgeTop | EdgeLeft, Pt(-0.5, -0.5), PartDistortBottomRight, CornerTopLeft},
	PartDistortTopRight:    {"distort-top-right", "Distort", RoleDistort, EdgeTop | EdgeRight, Pt(0.5, -0.5), PartDistortBottomLeft, CornerTopRight},
	PartDistortBottomRight: {"distort-bottom-right", "Distort", RoleDistort, EdgeBottom | EdgeRight, Pt(0.5, 0.5), PartDistortTopLeft, CornerBottomRight},
	PartDistortBottomLeft:  {"distort-bottom-left", "Distort", RoleDistort, EdgeBottom | EdgeLeft, Pt(-0.5, 0.5), PartDistortTopRight, CornerBottomLeft},
	PartSnapToPathEdge:     {"snap-to-path-edge", "", RoleSnap, 0, Point{}, PartNone, -1},
}

// Valid reports whether p is a defined part.
func (p Part) Valid() bool { return p >= 0 && p < numParts }

func (p Part) info() partInfo {
	if !p.Valid() {
		return parts[PartNone]
	}
	return parts[p]
}

func (p Part) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return parts[p].name
}

// ParsePart is the inverse of [Part.String].
func ParsePart(s string) (Part, error) {
	for i, info := range parts {
		if info.name == s {
			return Part(i), nil
		}
	}
	return PartNone, fmt.Errorf("shape: unknown part %q: %w", s, ErrInvalidGeometry)
}

func (p Part) Role() Role   { return p.info().role }
func (p Part) Edges() Edges { return p.info().edges }

// Opposite returns the part that stays fixed by default while p is dragged.
// It is PartNone for parts without an opposite.
func (p Part) Opposite() Part { return p.info().opposite }

// Corner returns the distortion corner index of p, if it is a distortion
// part.
func (p Part) Corner() (int, bool) {
	c := p.info().corner
	return c, c >= 0
}

// IsCorner reports whether p is one of the four corner resize parts.
func (p Part) IsCorner() bool {
	e := p.Edges()
	return p.Role() == RoleResize && e.Horizontal() && e.Vertical()
}

// ActionName returns a name for an undoable action performed by dragging p,
// or the empty string for parts that can't be dragged.
func (p Part) ActionName() string { return p.info().action }

// canonicalPosition returns where p sits in the canonical unit square. The
// origin follows the offset.
func (p Part) canonicalPosition(params Params) (Point, bool) {
	switch p.Role() {
	case RoleNone, RoleSnap:
		return Point{}, false
	case RoleOrigin:
		return Point(params.Offset), true
	default:
		return p.info().pos, true
	}
}

// KnobMask is a set of parts. It decides which knobs an [Editor] accepts
// drags on.
type KnobMask uint32

// MaskOf returns the mask containing the given parts.
func MaskOf(ps ...Part) KnobMask {
	var m KnobMask
	for _, p := range ps {
		if p.Valid() && p != PartNone {
			m |= 1 << p
		}
	}
	return m
}

var (
	CornerKnobs = MaskOf(PartTopLeft, PartTopRight, PartBottomRight, PartBottomLeft)
	// EWKnobs and NSKnobs hold the edge knobs of one axis only.
	EWKnobs = MaskOf(PartLeft, PartRight)
	NSKnobs = MaskOf(PartTop, PartBottom)
	// HorizontalSizingKnobs and VerticalSizingKnobs are the knobs that can
	// change the width or the height, corners included.
	HorizontalSizingKnobs = EWKnobs | CornerKnobs
	VerticalSizingKnobs   = NSKnobs | CornerKnobs
	AllLeftKnobs          = MaskOf(PartLeft, PartTopLeft, PartBottomLeft)
	AllRightKnobs         = MaskOf(PartRight, PartTopRight, PartBottomRight)
	AllTopKnobs           = MaskOf(PartTop, PartTopLeft, PartTopRight)
	AllBottomKnobs        = MaskOf(PartBottom, PartBottomLeft, PartBottomRight)
	AllSizeKnobs          = HorizontalSizingKnobs | VerticalSizingKnobs
	DistortKnobs          = MaskOf(PartDistortTopLeft, PartDistortTopRight, PartDistortBottomRight, PartDistortBottomLeft)
	AllKnobs              = AllSizeKnobs | DistortKnobs | MaskOf(PartCentre, PartOrigin, PartRotation)
)

var namedMasks = map[string]KnobMask{
	"all":        AllKnobs,
	"size":       AllSizeKnobs,
	"horizontal": HorizontalSizingKnobs,
	"vertical":   VerticalSizingKnobs,
	"ew":         EWKnobs,
	"ns":         NSKnobs,
	"corners":    CornerKnobs,
	"all-left":   AllLeftKnobs,
	"all-right":  AllRightKnobs,
	"all-top":    AllTopKnobs,
	"all-bottom": AllBottomKnobs,
	"distort":    DistortKnobs,
}

// Has reports whether p is in m.
func (m KnobMask) Has(p Part) bool {
	return p.Valid() && p != PartNone && m&(1<<p) != 0
}

// Len returns the number of parts in m.
func (m KnobMask) Len() int { return bits.OnesCount32(uint32(m)) }

func (m KnobMask) String() string {
	if m == AllKnobs {
		return "all"
	}
	var names []string
	for p := PartNone + 1; p < numParts; p++ {
		if m.Has(p) {
			names = append(names, p.String())
		}
	}
	return strings.Join(names, ",")
}

// Decode parses a comma-separated list of part names and mask names. The
// masks are "all", "size", "horizontal", "vertical", "ew", "ns", "corners",
// "all-left", "all-right", "all-top", "all-bottom" and "distort". It
// implements envconfig.Decoder.
func (m *KnobMask) Decode(value string) error {
	var out KnobMask
	for _, f := range strings.Split(value, ",") {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" {
			continue
		}
		if named, ok := namedMasks[f]; ok {
			out |= named
			continue
		}
		p, err := ParsePart(f)
		if err != nil || p == PartNone || p == PartSnapToPathEdge {
			return fmt.Errorf("shape: unknown knob %q in mask %q", f, value)
		}
		out |= MaskOf(p)
	}
	*m = out
	return nil
}

func (m KnobMask) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *KnobMask) UnmarshalText(b []byte) error { return m.Decode(string(b)) }
