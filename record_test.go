package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distortedGeometry(t *testing.T) *Geometry {
	t.Helper()
	g := skewedGeometry(t)
	require.NoError(t, g.SetOperationMode(ModeFreeDistort))
	require.NoError(t, g.SetDistortion(Distortion{Corners: [4]Vec2{
		CornerTopRight:   Vec(0.25, -0.125),
		CornerBottomLeft: Vec(-0.1, 0.3),
	}}))
	return g
}

func TestRecordRoundTrip(t *testing.T) {
	custom, _, err := NewCanonicalPath(MustParsePathData("M8,16 L40,16 Q40,80 24,80 C16,80 8,60 8,16 Z"))
	require.NoError(t, err)
	withCustomPath := NewGeometry(custom)
	require.NoError(t, withCustomPath.SetParams(Params{Location: Pt(-3, 7), Angle: -2, Scale: Sz(12.5, 0.75)}))

	geoms := map[string]*Geometry{
		"standard":  skewedGeometry(t),
		"distorted": distortedGeometry(t),
		"custom":    withCustomPath,
	}
	for name, g := range geoms {
		for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
			t.Run(name+"/"+f.String(), func(t *testing.T) {
				b, err := MarshalRecord(g.Record(), f)
				require.NoError(t, err)
				r, err := UnmarshalRecord(b, f)
				require.NoError(t, err)
				diff(t, g.Record(), r)

				got, err := FromRecord(r)
				require.NoError(t, err)
				assert.Equal(t, g.Params(), got.Params())
				assert.Equal(t, g.Mode(), got.Mode())
				assert.Equal(t, g.TransformedPath(), got.TransformedPath())
			})
		}
	}
}

func TestRecordSharesUnitPaths(t *testing.T) {
	g, err := FromRecord(NewOvalGeometry(Rect{0, 0, 10, 10}).Record())
	require.NoError(t, err)
	assert.Same(t, UnitOval(), g.Path())
}

func TestRecordContents(t *testing.T) {
	r := distortedGeometry(t).Record()
	assert.Equal(t, "free-distort", r.Mode)
	assert.Equal(t, [2]float64{10, 20}, r.Location)
	assert.Equal(t, [2]float64{-40, 25}, r.Scale)
	require.Len(t, r.Distortion, 4)
	assert.Equal(t, [2]float64{0.25, -0.125}, r.Distortion[CornerTopRight])
	assert.Equal(t, "M", r.Path[0].Op)
	assert.Equal(t, "Z", r.Path[len(r.Path)-1].Op)
	assert.Empty(t, r.Path[len(r.Path)-1].Points)

	assert.Nil(t, skewedGeometry(t).Record().Distortion)
}

func TestFromRecordInvalid(t *testing.T) {
	valid := func() Record { return distortedGeometry(t).Record() }
	tests := []struct {
		name   string
		modify func(r *Record)
	}{
		{"unknown op", func(r *Record) { r.Path[1].Op = "X" }},
		{"empty op", func(r *Record) { r.Path[1].Op = "" }},
		{"point count", func(r *Record) { r.Path[0].Points = nil }},
		{"empty path", func(r *Record) { r.Path = nil }},
		{"not canonical", func(r *Record) { r.Path[0].Points[0] = [2]float64{2, 0} }},
		{"unknown mode", func(r *Record) { r.Mode = "sideways" }},
		{"corner count", func(r *Record) { r.Distortion = r.Distortion[:3] }},
		{"distortion in standard mode", func(r *Record) { r.Mode = "standard" }},
		{"scale", func(r *Record) { r.Scale[1] = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.modify(&r)
			_, err := FromRecord(r)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func TestUnmarshalRecordUnknownFields(t *testing.T) {
	tests := map[Format]string{
		FormatJSON: `{"mode": "standard", "colour": "red"}`,
		FormatYAML: "mode: standard\ncolour: red\n",
		FormatTOML: "mode = 'standard'\ncolour = 'red'\n",
	}
	for f, in := range tests {
		_, err := UnmarshalRecord([]byte(in), f)
		assert.Error(t, err, f.String())
	}
}

func TestRecordUnknownFormat(t *testing.T) {
	_, err := MarshalRecord(Record{}, Format(7))
	assert.Error(t, err)
	_, err = UnmarshalRecord(nil, Format(7))
	assert.Error(t, err)
}

func TestRecordNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	r := skewedGeometry(t).Record()
	r.Angle = negZero
	r.Offset = [2]float64{negZero, 0}
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		b, err := MarshalRecord(r, f)
		require.NoError(t, err)
		got, err := UnmarshalRecord(b, f)
		require.NoError(t, err)
		assert.True(t, math.Signbit(got.Angle), "%s: angle %g in\n%s", f, got.Angle, b)
		assert.True(t, math.Signbit(got.Offset[0]), "%s: offset %g", f, got.Offset[0])
		assert.False(t, math.Signbit(got.Offset[1]), "%s: offset %g", f, got.Offset[1])
	}
}
