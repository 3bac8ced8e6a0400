package planar

import "errors"

// Sentinel errors for the planar layer. Callers branch with errors.Is;
// messages are never pattern-matched.
var (
	// ErrTooFewPoints indicates a polyline or polygon operation was
	// given fewer points than it needs (2 for a segment, 3 for a polygon).
	ErrTooFewPoints = errors.New("planar: too few points")

	// ErrZeroOffset indicates PolylineOffset2D or WallOutline2D was
	// asked to offset by a distance smaller than geom.Tolerance.
	ErrZeroOffset = errors.New("planar: offset distance too small")

	// ErrSelfIntersectionUnresolved indicates WallOutline2D traced no
	// boundary loop at all from its offset rims.
	ErrSelfIntersectionUnresolved = errors.New("planar: could not resolve self-intersections")
)
