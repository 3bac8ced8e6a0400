package boolean

import "errors"

var (
	// ErrNotFound is not returned by Union, Subtract or Intersect: a
	// missing operand is reported as an errs.NotFound OperationError
	// wrapping the store's topo.ErrEntityNotFound.
	ErrNotFound = errors.New("boolean: solid not found")
	// ErrEmptyResult is wrapped when an operation discards every
	// fragment from both operands, leaving no faces to assemble.
	ErrEmptyResult = errors.New("boolean: operation produced no surviving geometry")
	// ErrUnsupportedSurface is wrapped when a curved face's outer wire
	// has no vertices to place the face's ray-cast sample point.
	ErrUnsupportedSurface = errors.New("boolean: surface kind not supported")
)
