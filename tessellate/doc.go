// Package tessellate turns the analytic entities in a topo.Store into
// discrete approximations a renderer or a query can consume:
// TessellateCurve samples an edge into a Polyline, TessellateFace
// samples a face's boundary and triangulates its parameter-space
// polygon (with holes) into a TriangleMesh, and TessellateSolid
// concatenates every face of a solid into one combined mesh.
//
// Curve sampling is adaptive: a segment is subdivided further only
// when its chord deviates from the true curve by more than the
// requested tolerance, clamped to [MinSegments, MaxSegments], mirroring
// original_source/src/tessellation's TessellationParams. Face
// triangulation projects the sampled 3D boundary into the surface's
// own (u, v) domain and ear-clips the resulting 2D polygon, the same
// sample -> project -> triangulate -> lift pipeline described for
// tessellate_face.rs/tessellate_with_holes.rs (not present in the
// filtered reference source; the stage names and TriangleMesh /
// Polyline / TessellationParams field layout are taken directly from
// tessellation/mod.rs).
package tessellate
