package shape

import "fmt"

// Mode selects how a shape's handles are interpreted and whether a
// [Distortion] contributes to its transformed path.
type Mode int

const (
	// ModeStandard is plain resizing and rotation.
	ModeStandard Mode = iota
	// ModeFreeDistort moves each corner of the envelope independently.
	ModeFreeDistort
	// ModeShearH slides the top or bottom edge of the envelope horizontally.
	ModeShearH
	// ModeShearV slides the left or right edge of the envelope vertically.
	ModeShearV
	// ModePerspective moves corners of a projective envelope.
	ModePerspective
)

var modeNames = [...]string{
	ModeStandard:    "standard",
	ModeFreeDistort: "free-distort",
	ModeShearH:      "shear-horizontal",
	ModeShearV:      "shear-vertical",
	ModePerspective: "perspective",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeStandard && m <= ModePerspective
}

// ParseMode is the inverse of [Mode.String].
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("shape: unknown operation mode %q: %w", s, ErrInvalidGeometry)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("shape: cannot marshal %s: %w", m, ErrInvalidGeometry)
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// modeState is the per-mode state of a [Geometry]. Standard mode carries
// nothing; the distortion modes carry their envelope.
type modeState interface {
	Mode() Mode
	Distortion() (Distortion, bool)
}

type standardState struct{}

func (standardState) Mode() Mode                     { return ModeStandard }
func (standardState) Distortion() (Distortion, bool) { return Distortion{}, false }

type distortState struct {
	mode Mode
	dist Distortion
}

// newDistortState returns the state for a distortion mode, forcing the
// envelope's kind to match the mode.
func newDistortState(m Mode, d Distortion) distortState {
	d.Perspective = m == ModePerspective
	return distortState{mode: m, dist: d}
}

func (s distortState) Mode() Mode                     { return s.mode }
func (s distortState) Distortion() (Distortion, bool) { return s.dist, true }
