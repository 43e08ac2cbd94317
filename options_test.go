package shape

import (
	"math"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions("SHAPETEST")
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/12, opts.ConstraintAngle, 1e-15)
	assert.InDelta(t, math.Pi/4, opts.RotateThreshold, 1e-15)
	assert.False(t, opts.AllowSizeKnobsToRotate)
	assert.Equal(t, AllKnobs, opts.KnobMask)
	assert.NotNil(t, opts.Logger)
}

func TestLoadOptionsEnvironment(t *testing.T) {
	t.Setenv("SHAPE_CONSTRAINT_ANGLE", "0.5")
	t.Setenv("SHAPE_ALLOW_SIZE_KNOBS_TO_ROTATE", "true")
	t.Setenv("SHAPE_ROTATE_THRESHOLD", "1")
	t.Setenv("SHAPE_KNOB_MASK", "corners, rotation")

	opts, err := LoadOptions("SHAPE")
	require.NoError(t, err)
	assert.Equal(t, 0.5, opts.ConstraintAngle)
	assert.Equal(t, 1.0, opts.RotateThreshold)
	assert.True(t, opts.AllowSizeKnobsToRotate)
	assert.Equal(t, CornerKnobs|MaskOf(PartRotation), opts.KnobMask)
}

func TestLoadOptionsInvalid(t *testing.T) {
	tests := map[string]string{
		"SHAPE_CONSTRAINT_ANGLE":           "-1",
		"SHAPE_ROTATE_THRESHOLD":           "4",
		"SHAPE_KNOB_MASK":                  "corners,elbows",
		"SHAPE_ALLOW_SIZE_KNOBS_TO_ROTATE": "perhaps",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadOptions("SHAPE")
			assert.Error(t, err)
		})
	}
}

func TestLoadOptionsParseError(t *testing.T) {
	t.Setenv("SHAPE_ALLOW_SIZE_KNOBS_TO_ROTATE", "perhaps")
	_, err := LoadOptions("SHAPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape: load options:")
	var perr *envconfig.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
	for _, o := range []Options{
		{RotateThreshold: 1},
		{ConstraintAngle: math.Inf(1), RotateThreshold: 1},
		{ConstraintAngle: math.NaN(), RotateThreshold: 1},
		{ConstraintAngle: 1, RotateThreshold: math.NaN()},
	} {
		assert.ErrorIs(t, o.Validate(), ErrInvalidGeometry)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{RotateThreshold: 0.5}.withDefaults()
	assert.Equal(t, DefaultConstraintAngle, opts.ConstraintAngle)
	assert.Equal(t, 0.5, opts.RotateThreshold)
	assert.Equal(t, AllKnobs, opts.KnobMask)
	assert.NotNil(t, opts.Logger)
}
