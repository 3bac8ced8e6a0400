// Package brepkit is a boundary-representation (B-rep) geometric
// modeling kernel: vertices, edges, wires, faces, shells, and solids
// built from analytic curves and surfaces, with construction,
// editing, boolean, tessellation, and query operations on top.
//
// The kernel is organized as a set of subpackages, each owning one
// concern:
//
//	geom/       — vectors, points, analytic curves & surfaces, tolerance
//	topo/       — the entity arena (Store) and its validation rules
//	errs/       — the shared OperationError type every operation returns
//	planar/     — 2D polygon offset, wall outlines, point/segment tests
//	construct/  — MakeWire, MakeFace, MakeBox, Extrude, Revolve
//	edit/       — FaceOffset, ThickenFace, Shell, Split
//	boolean/    — Union, Subtract, Intersect
//	tessellate/ — curve/face/solid → triangle mesh
//	query/      — BoundingBox, Volume, Area, Length, IsValid, ClosestPoint
//
// A Store is a self-contained arena: every entity is addressed by an
// opaque, comparable Id, and every operation is a small configuration
// struct built with a NewXxx constructor and run with Execute(store).
// There is no hidden global state; two stores may be driven
// independently, and nothing in the core spawns goroutines.
//
//	store := topo.NewStore()
//	sid, err := construct.NewMakeBox(geom.Point3{}, 2, 2, 2).Execute(store)
package brepkit
