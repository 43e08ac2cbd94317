package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertOnGrid(t *testing.T, gr Grid, pt Point) {
	t.Helper()
	assertNear(t, pt, gr.Snap(pt), 1e-9)
}

func TestGridSnap(t *testing.T) {
	gr := Grid{Origin: Pt(5, -3), Spacing: Vec(10, 4)}
	tests := []struct {
		in, want Point
	}{
		{Pt(5, -3), Pt(5, -3)},
		{Pt(9, -1.5), Pt(5, -3)},
		{Pt(11, -0.9), Pt(15, 1)},
		{Pt(-6, -9), Pt(-5, -11)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gr.Snap(tt.in), "snapping %s", tt.in)
	}
}

func TestGridValidate(t *testing.T) {
	for _, gr := range []Grid{
		{},
		{Spacing: Vec(10, 0)},
		{Spacing: Vec(-1, 10)},
		{Spacing: Vec(math.NaN(), 10)},
		{Origin: Pt(math.Inf(1), 0), Spacing: Vec(10, 10)},
	} {
		assert.True(t, errors.Is(gr.Validate(), ErrInvalidGeometry), "%+v", gr)
	}
	require.NoError(t, Grid{Spacing: Vec(1, 2)}.Validate())
}

func TestAdjustToFitGridAxisAligned(t *testing.T) {
	g := scenarioGeometry(t)
	gr := Grid{Spacing: Vec(20, 20)}
	require.NoError(t, g.AdjustToFitGrid(gr))

	// 50×30 rounds to 3×2 cells.
	diff(t, Rect{80, 80, 140, 120}, g.Bounds(), approx)
	diff(t, Sz(60, 40), g.Scale(), approx)
	assertOnGrid(t, gr, g.Bounds().Origin())
}

func TestAdjustToFitGridQuarterTurn(t *testing.T) {
	g := scenarioGeometry(t)
	require.NoError(t, g.SetScale(Sz(55, 26)))
	require.NoError(t, g.SetAngle(math.Pi/2))
	gr := Grid{Origin: Pt(3, 3), Spacing: Vec(20, 20)}
	require.NoError(t, g.AdjustToFitGrid(gr))

	// The drawn width comes from the scale's height.
	b := g.Bounds()
	assert.InDelta(t, 20, b.Width(), 1e-9)
	assert.InDelta(t, 60, b.Height(), 1e-9)
	diff(t, Sz(60, 20), g.Scale(), approx)
	assertOnGrid(t, gr, b.Origin())
	assert.Equal(t, math.Pi/2, g.Angle())
}

func TestAdjustToFitGridMinimumCell(t *testing.T) {
	g := scenarioGeometry(t)
	require.NoError(t, g.SetScale(Sz(4, 0)))
	gr := Grid{Spacing: Vec(10, 10)}
	require.NoError(t, g.AdjustToFitGrid(gr))
	// One cell at least; a flat shape stays flat.
	diff(t, Sz(10, 0), g.Scale(), approx)
	assertOnGrid(t, gr, g.Bounds().Origin())
}

func TestAdjustToFitGridRotated(t *testing.T) {
	g := skewedGeometry(t)
	before := g.Scale()
	gr := Grid{Spacing: Vec(7, 7)}
	require.NoError(t, g.AdjustToFitGrid(gr))
	assert.Equal(t, before, g.Scale())
	assertOnGrid(t, gr, g.Bounds().Origin())
}

func TestAdjustToFitGridInvalid(t *testing.T) {
	g := scenarioGeometry(t)
	before := g.Params()
	err := g.AdjustToFitGrid(Grid{Spacing: Vec(0, 10)})
	assert.True(t, errors.Is(err, ErrInvalidGeometry), "got %v", err)
	assert.Equal(t, before, g.Params())
}

func TestQuarterTurns(t *testing.T) {
	tests := []struct {
		th   float64
		want int
		ok   bool
	}{
		{0, 0, true},
		{math.Pi / 2, 1, true},
		{math.Pi, 2, true},
		{-math.Pi / 2, 3, true},
		{5 * math.Pi / 2, 1, true},
		{0.1, 0, false},
	}
	for _, tt := range tests {
		got, ok := quarterTurns(tt.th)
		assert.Equal(t, tt.ok, ok, "%g", tt.th)
		if ok {
			assert.Equal(t, tt.want, got, "%g", tt.th)
		}
	}
}
