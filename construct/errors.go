package construct

import "errors"

// Sentinel errors specific to the construct package, wrapped into an
// errs.OperationError by each operation's Execute so callers can still
// branch with errors.Is against the precise cause.
var (
	// ErrNonLinearProfile indicates a wire passed to Extrude or Revolve
	// contained a curved edge; both sweeps only accept straight edges.
	ErrNonLinearProfile = errors.New("construct: profile wire must consist of straight edges")

	// ErrNonPlanarFace indicates Extrude or Revolve was given a face
	// whose surface is not a plane.
	ErrNonPlanarFace = errors.New("construct: face surface is not planar")

	// ErrDegenerateSweep indicates an operation's input collapses the
	// result instead of extending it: a zero extrude vector, a zero
	// revolve axis, a profile lying entirely on the revolve axis, or a
	// non-positive primitive dimension (MakeBox, MakeCylinder, MakeCone).
	ErrDegenerateSweep = errors.New("construct: sweep is degenerate")
)
