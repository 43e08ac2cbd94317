package shape

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/kelseyhightower/envconfig"
)

// DefaultRotateThreshold is how far, in radians, the pointer has to swing
// away from a corner knob's direction before a resize turns into a rotation.
const DefaultRotateThreshold = math.Pi / 4

// Options configure an [Editor].
type Options struct {
	// ConstraintAngle is the step constrained rotations snap to.
	ConstraintAngle float64 `envconfig:"CONSTRAINT_ANGLE" default:"0.2617993877991494"`
	// AllowSizeKnobsToRotate lets corner knobs rotate the shape when the
	// pointer moves more than RotateThreshold away from the knob's
	// direction, seen from the anchor.
	AllowSizeKnobsToRotate bool    `envconfig:"ALLOW_SIZE_KNOBS_TO_ROTATE" default:"false"`
	RotateThreshold        float64 `envconfig:"ROTATE_THRESHOLD" default:"0.7853981633974483"`
	// KnobMask is the set of parts that can be dragged. The zero mask
	// enables all knobs.
	KnobMask KnobMask `envconfig:"KNOB_MASK" default:"all"`

	Logger *slog.Logger `ignored:"true"`
}

// DefaultOptions returns the options LoadOptions produces with an empty
// environment.
func DefaultOptions() Options {
	return Options{
		ConstraintAngle: DefaultConstraintAngle,
		RotateThreshold: DefaultRotateThreshold,
		KnobMask:        AllKnobs,
		Logger:          slog.Default(),
	}
}

// LoadOptions reads options from environment variables, each name prefixed
// with prefix and an underscore, such as SHAPE_KNOB_MASK for the prefix
// "SHAPE".
func LoadOptions(prefix string) (Options, error) {
	var opts Options
	if err := envconfig.Process(prefix, &opts); err != nil {
		return Options{}, fmt.Errorf("shape: load options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	opts.Logger = slog.Default()
	return opts, nil
}

// Validate checks that the angles are usable.
func (o Options) Validate() error {
	if !(o.ConstraintAngle > 0) || math.IsInf(o.ConstraintAngle, 0) {
		return fmt.Errorf("shape: constraint angle %g: %w", o.ConstraintAngle, ErrInvalidGeometry)
	}
	if !(o.RotateThreshold > 0 && o.RotateThreshold <= math.Pi) {
		return fmt.Errorf("shape: rotate threshold %g: %w", o.RotateThreshold, ErrInvalidGeometry)
	}
	return nil
}

// withDefaults fills in zero fields.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ConstraintAngle == 0 {
		o.ConstraintAngle = def.ConstraintAngle
	}
	if o.RotateThreshold == 0 {
		o.RotateThreshold = def.RotateThreshold
	}
	if o.KnobMask == 0 {
		o.KnobMask = def.KnobMask
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}
