package geom

import "errors"

// Sentinel errors for the analytic geometry layer. Callers branch with
// errors.Is; messages are never pattern-matched.
var (
	// ErrZeroVector indicates a direction, axis, or normal vector had
	// near-zero length where a unit direction was required.
	ErrZeroVector = errors.New("geom: zero-length vector")

	// ErrDegenerate indicates a constructor or operation could not
	// produce a well-defined geometric object (parallel reference/axis
	// pair, non-positive radius, minor radius >= major radius, cone
	// half-angle outside (0, pi/2), collinear points, and similar).
	ErrDegenerate = errors.New("geom: degenerate geometry")

	// ErrOutOfDomain indicates a parameter value lies outside a curve's
	// or surface's declared domain by more than Tolerance.
	ErrOutOfDomain = errors.New("geom: parameter out of domain")
)
