package shape

import "fmt"

// NewRectGeometry returns a rectangle occupying r.
func NewRectGeometry(r Rect) *Geometry {
	return newBoxGeometry(UnitSquare(), r)
}

// NewOvalGeometry returns an ellipse inscribed in r.
func NewOvalGeometry(r Rect) *Geometry {
	return newBoxGeometry(UnitOval(), r)
}

func newBoxGeometry(cp *CanonicalPath, r Rect) *Geometry {
	r = r.Abs()
	g := NewGeometry(cp)
	g.state.params.Location = r.Center()
	g.state.params.Scale = r.Size()
	return g
}

// NewGeometryFromPath returns a geometry whose transformed path is p. The
// path is taken to be rotated by th already, which becomes the geometry's
// angle; its location is the centre of the unrotated path.
func NewGeometryFromPath(p BezPath, th float64) (*Geometry, error) {
	g := NewGeometry(UnitSquare())
	if len(p) > 0 {
		g.state.params.Location = p.BoundingBox().Center()
	}
	if err := g.adopt(p, th); err != nil {
		return nil, fmt.Errorf("shape: geometry from path: %w", err)
	}
	s := g.state
	s.params.Location = g.LocationIgnoringOffset()
	s.params.Offset = Vec2{}
	if err := g.commit(s); err != nil {
		return nil, fmt.Errorf("shape: geometry from path: %w", err)
	}
	return g, nil
}

// BreakApart returns one geometry per subpath of the transformed path, each
// with g's angle. Subpaths without segments are dropped.
func (g *Geometry) BreakApart() ([]*Geometry, error) {
	var out []*Geometry
	for _, sub := range g.TransformedPath().Subpaths() {
		if !sub.HasSegments() {
			continue
		}
		part, err := NewGeometryFromPath(sub, g.state.params.Angle)
		if err != nil {
			return nil, fmt.Errorf("shape: break apart: %w", err)
		}
		out = append(out, part)
	}
	return out, nil
}
