package shape

import (
	"fmt"
	"math"
)

// Grid describes the grid a shape can be aligned to. The grid logic itself
// belongs to the caller; the geometry only needs the lattice.
type Grid struct {
	Origin  Point
	Spacing Vec2
}

// Validate fails with [ErrInvalidGeometry] unless the origin is finite and
// both spacings are finite and positive.
func (gr Grid) Validate() error {
	if !gr.Origin.IsFinite() || !gr.Spacing.IsFinite() || !(gr.Spacing.X > 0) || !(gr.Spacing.Y > 0) {
		return fmt.Errorf("grid origin %s spacing %s: %w", gr.Origin, gr.Spacing, ErrInvalidGeometry)
	}
	return nil
}

// Snap returns the grid point closest to pt.
func (gr Grid) Snap(pt Point) Point {
	return Point{
		X: snap(pt.X, gr.Origin.X, gr.Spacing.X),
		Y: snap(pt.Y, gr.Origin.Y, gr.Spacing.Y),
	}
}

func snap(v, origin, spacing float64) float64 {
	return origin + math.Round((v-origin)/spacing)*spacing
}

// quarterTurnTolerance is how close to a multiple of π/2 an angle has to be
// for the shape's sides to count as parallel to the grid.
const quarterTurnTolerance = 1e-9

// AdjustToFitGrid moves the geometry so the top left corner of its bounds
// lies on the grid. When the shape's sides are parallel to the grid lines,
// its size is also rounded to whole grid cells, with a minimum of one cell
// along each axis that has an extent.
func (g *Geometry) AdjustToFitGrid(gr Grid) error {
	if err := gr.Validate(); err != nil {
		return fmt.Errorf("shape: adjust to fit grid: %w", err)
	}

	s := g.state
	b := g.Bounds()
	if quarter, ok := quarterTurns(s.params.Angle); ok {
		kx := snappedRatio(b.Width(), gr.Spacing.X)
		ky := snappedRatio(b.Height(), gr.Spacing.Y)
		if quarter%2 == 1 {
			kx, ky = ky, kx
		}
		s.params.Scale = Sz(s.params.Scale.Width*kx, s.params.Scale.Height*ky)

		if err := s.validate(); err != nil {
			return fmt.Errorf("shape: adjust to fit grid: %w", err)
		}
		sized := &Geometry{state: s}
		b = sized.Bounds()
	}

	origin := b.Origin()
	s.params.Location = s.params.Location.Translate(gr.Snap(origin).Sub(origin))
	if err := g.commit(s); err != nil {
		return fmt.Errorf("shape: adjust to fit grid: %w", err)
	}
	return nil
}

// quarterTurns reports how many quarter turns th is, if it is a whole
// number of them.
func quarterTurns(th float64) (int, bool) {
	q := math.Round(th / (math.Pi / 2))
	if math.Abs(th-q*math.Pi/2) > quarterTurnTolerance {
		return 0, false
	}
	n := int(math.Mod(q, 4))
	if n < 0 {
		n += 4
	}
	return n, true
}

// snappedRatio returns the factor that rounds extent to whole cells.
func snappedRatio(extent, spacing float64) float64 {
	if extent == 0 {
		return 1
	}
	cells := math.Max(math.Round(extent/spacing), 1)
	return cells * spacing / extent
}
