package query

import "errors"

var (
	// ErrUnsupportedSurface is returned by ClosestPointOnSurface for a
	// surface kind with no analytic projection implemented.
	ErrUnsupportedSurface = errors.New("query: surface kind not supported")
	// ErrOutOfDomain is returned by PointOnCurve/PointOnSurface when a
	// requested parameter lies outside the curve's or surface's domain
	// by more than geom.Tolerance.
	ErrOutOfDomain = errors.New("query: parameter outside domain")
	// ErrNoIntersection reports that two curves do not meet within
	// tolerance; no query in this package returns it.
	ErrNoIntersection = errors.New("query: curves do not intersect")
	// ErrNotPlanar indicates a planar face's boundary vertices do not
	// actually lie on its stored Plane within 1000 * geom.Tolerance.
	ErrNotPlanar = errors.New("query: face boundary is not coplanar with its surface")
)
