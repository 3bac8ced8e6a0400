package topo

import "errors"

// Sentinel errors for the topology layer. Callers branch with
// errors.Is; messages are never pattern-matched.
var (
	// ErrEntityNotFound indicates a lookup referenced an Id that is not
	// present in the Store (the zero Id, or an index beyond the entities
	// of its kind). An Id minted by a different Store is not detected if
	// its index is in range.
	ErrEntityNotFound = errors.New("topo: entity not found")

	// ErrWireNotClosed indicates a wire intended to bound a face does
	// not return to its starting vertex.
	ErrWireNotClosed = errors.New("topo: wire is not closed")

	// ErrWireNotContinuous indicates consecutive oriented edges in a
	// wire do not share a vertex (end of one, start of the next).
	ErrWireNotContinuous = errors.New("topo: wire is not continuous")

	// ErrShellNotClosed indicates a shell intended to bound a solid has
	// at least one edge used by only one of its faces.
	ErrShellNotClosed = errors.New("topo: shell is not closed")

	// ErrOrientationInconsistent indicates a shell's faces do not agree
	// on a consistent outward-normal convention across shared edges.
	ErrOrientationInconsistent = errors.New("topo: face orientations are inconsistent")

	// ErrEmptyWire indicates an operation required at least one edge in
	// a wire and received none.
	ErrEmptyWire = errors.New("topo: wire has no edges")
)
