package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathData(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"M0,0 L10,0 L10,10 Z", "M0,0 L10,0 L10,10 Z"},
		{"M 0 0 10 0 10 10 z", "M0,0 L10,0 L10,10 Z"},
		{"m1,1 l2,0 0,2 h-2 z", "M1,1 L3,1 L3,3 L1,3 Z"},
		{"M0,0 H5 V5 h-1 v-1", "M0,0 L5,0 L5,5 L4,5 L4,4"},
		{"M0-1L2.5.5", "M0,-1 L2.5,0.5"},
		{"M0,0 C1,1 2,1 3,0 S5,-1 6,0", "M0,0 C1,1 2,1 3,0 C4,-1 5,-1 6,0"},
		{"M0,0 Q1,1 2,0 T4,0", "M0,0 Q1,1 2,0 Q3,-1 4,0"},
		{"M0,0 T2,0", "M0,0 Q0,0 2,0"},
		{"M0,0 c1,1 2,1 3,0 q1,1 2,0", "M0,0 C1,1 2,1 3,0 Q4,1 5,0"},
		{"M1e1,2E-1", "M10,0.2"},
	}
	for _, tt := range tests {
		p, err := ParsePathData(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, p.SVG(), tt.in)
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, in := range []string{
		"0,0",
		"M0",
		"M0,0 A1,1 0 0 1 2,2",
		"M0,0 Z 1",
		"M0,0 L1,x",
	} {
		_, err := ParsePathData(in)
		assert.Error(t, err, in)
	}
}

func TestParsePathDataRoundTrip(t *testing.T) {
	p := UnitRect.OvalPath()
	q, err := ParsePathData(p.SVG())
	require.NoError(t, err)
	diff(t, p, q, approx)
}
