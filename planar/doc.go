// Package planar implements 2D polygon algorithms used to derive
// architectural floor-plan geometry before it is lifted into the
// topology layer: point-in-polygon and segment intersection primitives,
// polyline offsetting with mitered or beveled joins, and the wall
// outline algorithm that turns a set of centerline polylines into the
// boundary polylines of walls of uniform thickness.
//
// Everything here operates in geom.Point2/Vec2; callers are
// responsible for projecting 3D input onto a working plane and lifting
// 2D output back (see construct.MakeFace for the inverse direction).
package planar
