package shape

import (
	"fmt"
	"math"
)

// Size is the extent of a shape along its own axes. Negative components are
// allowed and encode a flip along that axis.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{X: sz.Width, Y: sz.Height}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Abs returns the size with non-negative width and height.
func (sz Size) Abs() Size {
	return Size{Width: math.Abs(sz.Width), Height: math.Abs(sz.Height)}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}

// IsFinite reports whether both components are neither infinite nor NaN.
func (sz Size) IsFinite() bool {
	return !sz.IsInf() && !sz.IsNaN()
}

// IsDegenerate reports whether either component is exactly zero. A
// degenerate size produces a transform that cannot be inverted.
func (sz Size) IsDegenerate() bool {
	return sz.Width == 0 || sz.Height == 0
}
