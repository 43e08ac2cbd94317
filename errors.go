package shape

import "errors"

var (
	// ErrInvalidGeometry is returned when a mutation is given a non-finite
	// or out-of-domain value. The geometry is left unchanged.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDegenerateTransform is returned when an inverse is requested for a
	// transform that cannot be inverted, such as one with a zero scale
	// component.
	ErrDegenerateTransform = errors.New("degenerate transform")

	// ErrInvalidState is returned when the drag API is misused, for example
	// when updating without a drag in progress or when starting a second
	// drag.
	ErrInvalidState = errors.New("invalid state")

	// ErrSnapToPathEdge is returned by [Editor.BeginDrag] for
	// [PartSnapToPathEdge]. It is not a failure: it tells the caller to run
	// its own edge snapping before starting a real drag.
	ErrSnapToPathEdge = errors.New("snap to path edge requested")
)
