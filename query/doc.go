// Package query answers read-only questions about the entities in a
// topo.Store: BoundingBox, Volume, Area, Length, IsValid, PointOnCurve,
// PointOnSurface, ClosestPointOnCurve and ClosestPointOnSurface. The
// package has no curve/curve intersection query.
//
// Volume and Area run the tessellate package and sum over the
// resulting triangles, exactly as
// original_source/src/operations/query/volume.rs and area.rs do.
// ClosestPointOnSurface uses closed-form per-surface-type projections
// the way closest_point_surface.rs does; ClosestPointOnCurve takes the
// nearest of a fixed set of uniform parameter samples.
package query
