package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Record is the persisted form of a [Geometry]. Decoding a record and
// building a geometry from it reproduces the original transformed path
// exactly. Floats survive every [Format] bit for bit, negative zero
// included.
type Record struct {
	Path       []ElementRecord `json:"path" yaml:"path" toml:"path"`
	Location   [2]float64      `json:"location" yaml:"location" toml:"location"`
	Angle      float64         `json:"angle" yaml:"angle" toml:"angle"`
	Scale      [2]float64      `json:"scale" yaml:"scale" toml:"scale"`
	Offset     [2]float64      `json:"offset" yaml:"offset" toml:"offset"`
	Mode       string          `json:"mode" yaml:"mode" toml:"mode"`
	Distortion [][2]float64    `json:"distortion,omitempty" yaml:"distortion,omitempty" toml:"distortion,omitempty"`
}

// ElementRecord is one canonical path element. Op is one of the SVG
// commands M, L, Q, C and Z.
type ElementRecord struct {
	Op     string       `json:"op" yaml:"op" toml:"op"`
	Points [][2]float64 `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
}

var elementOps = [...]string{
	MoveToKind:    "M",
	LineToKind:    "L",
	QuadToKind:    "Q",
	CubicToKind:   "C",
	ClosePathKind: "Z",
}

func pointRecord(pt Point) [2]float64 { return [2]float64{pt.X, pt.Y} }

// Record returns the persisted form of g.
func (g *Geometry) Record() Record {
	s := g.state
	r := Record{
		Path:     make([]ElementRecord, 0, s.path.Len()),
		Location: pointRecord(s.params.Location),
		Angle:    s.params.Angle,
		Scale:    [2]float64{s.params.Scale.Width, s.params.Scale.Height},
		Offset:   [2]float64{s.params.Offset.X, s.params.Offset.Y},
		Mode:     s.mode.Mode().String(),
	}
	for el := range s.path.Elements() {
		er := ElementRecord{Op: elementOps[el.Kind]}
		for _, pt := range []Point{el.P0, el.P1, el.P2}[:el.points()] {
			er.Points = append(er.Points, pointRecord(pt))
		}
		r.Path = append(r.Path, er)
	}
	if d, ok := s.mode.Distortion(); ok {
		for _, c := range d.Corners {
			r.Distortion = append(r.Distortion, [2]float64{c.X, c.Y})
		}
	}
	return r
}

// FromRecord builds a geometry from its persisted form. The path must
// already be canonical.
func FromRecord(r Record) (*Geometry, error) {
	p, err := r.bezPath()
	if err != nil {
		return nil, err
	}
	cp, err := canonicalPathFromRecord(p)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMode(r.Mode)
	if err != nil {
		return nil, err
	}

	s := geometryState{
		path: cp,
		params: Params{
			Location: Pt(r.Location[0], r.Location[1]),
			Angle:    r.Angle,
			Scale:    Sz(r.Scale[0], r.Scale[1]),
			Offset:   Vec(r.Offset[0], r.Offset[1]),
		},
		mode: standardState{},
	}
	if mode != ModeStandard {
		var d Distortion
		switch len(r.Distortion) {
		case 0:
		case len(d.Corners):
			for i, c := range r.Distortion {
				d.Corners[i] = Vec(c[0], c[1])
			}
		default:
			return nil, fmt.Errorf("shape: record has %d distortion corners: %w", len(r.Distortion), ErrInvalidGeometry)
		}
		s.mode = newDistortState(mode, d)
	} else if len(r.Distortion) != 0 {
		return nil, fmt.Errorf("shape: record has a distortion in %s mode: %w", mode, ErrInvalidGeometry)
	}

	g := &Geometry{}
	if err := g.commit(s); err != nil {
		return nil, fmt.Errorf("shape: geometry from record: %w", err)
	}
	return g, nil
}

func (r Record) bezPath() (BezPath, error) {
	p := make(BezPath, 0, len(r.Path))
	for i, er := range r.Path {
		kind := PathElementKind(slices.Index(elementOps[:], er.Op))
		if kind <= 0 {
			return nil, fmt.Errorf("shape: record element %d: unknown op %q: %w", i, er.Op, ErrInvalidGeometry)
		}
		el := PathElement{Kind: kind}
		if len(er.Points) != el.points() {
			return nil, fmt.Errorf("shape: record element %d: %s takes %d points, got %d: %w",
				i, er.Op, el.points(), len(er.Points), ErrInvalidGeometry)
		}
		pts := []*Point{&el.P0, &el.P1, &el.P2}
		for j, c := range er.Points {
			*pts[j] = Pt(c[0], c[1])
		}
		p = append(p, el)
	}
	return p, nil
}

// canonicalTolerance is how far a stored canonical path may stray outside
// the unit square.
const canonicalTolerance = 1e-9

// canonicalPathFromRecord adopts a path that is already canonical, without
// normalizing it again. Paths equal to the shared unit paths return those.
func canonicalPathFromRecord(p BezPath) (*CanonicalPath, error) {
	for _, shared := range []*CanonicalPath{unitSquare, unitOval} {
		if slices.Equal(p, shared.els) {
			return shared, nil
		}
	}
	if len(p) == 0 || p[0].Kind != MoveToKind || !p.IsFinite() {
		return nil, fmt.Errorf("shape: record path: %w", ErrInvalidGeometry)
	}
	bbox := p.BoundingBox()
	if !UnitRect.Inflate(canonicalTolerance, canonicalTolerance).containsRect(bbox) {
		return nil, fmt.Errorf("shape: record path %s is not canonical: %w", bbox, ErrInvalidGeometry)
	}
	return &CanonicalPath{els: p, bbox: bbox}, nil
}

// containsRect reports whether o lies within r, edges included.
func (r Rect) containsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Format is an encoding for records.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MarshalRecord encodes r in the given format.
func MarshalRecord(r Record, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(r, "", "\t")
	case FormatYAML:
		return marshalYAML(r)
	case FormatTOML:
		return toml.Marshal(r)
	default:
		return nil, fmt.Errorf("shape: unknown record format %s", f)
	}
}

func marshalYAML(v any) ([]byte, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	keepNegativeZero(&n)
	return yaml.Marshal(&n)
}

// keepNegativeZero rewrites a plain -0, which YAML resolves as the integer
// zero, as a float so that its sign survives decoding.
func keepNegativeZero(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!int" && n.Value == "-0" {
		n.Value, n.Tag = "-0.0", "!!float"
	}
	for _, c := range n.Content {
		keepNegativeZero(c)
	}
}

// UnmarshalRecord decodes a record in the given format. Unknown fields are
// rejected.
func UnmarshalRecord(b []byte, f Format) (Record, error) {
	var r Record
	var err error
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&r)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(&r)
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&r)
	default:
		err = fmt.Errorf("unknown record format %s", f)
	}
	if err != nil {
		return Record{}, fmt.Errorf("shape: decode %s record: %w", f, err)
	}
	return r, nil
}
