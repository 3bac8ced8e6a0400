package query

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// PointOnCurve evaluates an edge's curve at parameter T.
type PointOnCurve struct {
	Edge topo.EdgeId
	T    float64
}

// NewPointOnCurve builds a PointOnCurve query.
func NewPointOnCurve(edge topo.EdgeId, t float64) PointOnCurve {
	return PointOnCurve{Edge: edge, T: t}
}

// Execute evaluates the curve at T. Returns errs.OperationError
// wrapping ErrOutOfDomain if T lies outside the curve's domain by more
// than geom.Tolerance.
func (q PointOnCurve) Execute(store *topo.Store) (geom.Point3, error) {
	const name = "PointOnCurve"

	e, err := store.Edge(q.Edge)
	if err != nil {
		return geom.Point3{}, errs.Wrap(name, errs.NotFound, "edge", err)
	}
	d := e.Curve.Domain()
	if !d.Contains(q.T) {
		return geom.Point3{}, errs.Wrap(name, errs.InvalidInput, "parameter", ErrOutOfDomain)
	}
	return e.Curve.Evaluate(d.Clamp(q.T)), nil
}

// PointOnSurface evaluates a face's surface at parameters (U, V).
type PointOnSurface struct {
	Face topo.FaceId
	U, V float64
}

// NewPointOnSurface builds a PointOnSurface query.
func NewPointOnSurface(face topo.FaceId, u, v float64) PointOnSurface {
	return PointOnSurface{Face: face, U: u, V: v}
}

// Execute evaluates the surface at (U, V). Returns errs.OperationError
// wrapping ErrOutOfDomain if either parameter lies outside the
// surface's domain by more than geom.Tolerance.
func (q PointOnSurface) Execute(store *topo.Store) (geom.Point3, error) {
	const name = "PointOnSurface"

	f, err := store.Face(q.Face)
	if err != nil {
		return geom.Point3{}, errs.Wrap(name, errs.NotFound, "face", err)
	}
	d := f.Surface.Domain()
	if !surfaceDomainContains(d, q.U, q.V) {
		return geom.Point3{}, errs.Wrap(name, errs.InvalidInput, "parameter", ErrOutOfDomain)
	}
	return f.Surface.Evaluate(q.U, q.V), nil
}

// surfaceDomainContains reports whether (u, v) lies within d, allowing
// a geom.Tolerance-sized slack at every bound.
func surfaceDomainContains(d geom.SurfaceDomain, u, v float64) bool {
	return u >= d.UMin-geom.Tolerance && u <= d.UMax+geom.Tolerance &&
		v >= d.VMin-geom.Tolerance && v <= d.VMax+geom.Tolerance
}
