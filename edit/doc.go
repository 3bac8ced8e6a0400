// Package edit provides the kernel's editing operations: FaceOffset
// (displace a face along its own outward normal/radial direction),
// ThickenFace (turn a single face into a thin solid slab), Shell (hollow
// a solid out to a uniform wall thickness), and Split (cut a solid by
// an infinite plane using two oversized halfspace boxes and the
// boolean engine).
//
// FaceOffset dispatches per surface type the way
// original_source/src/operations/offset/face_offset.rs does: a Plane
// translates along its normal, Cylinder/Cone/Sphere/Torus change
// radius (and, for Cone, shift the apex so the half-angle is
// preserved) while their boundary vertices are displaced individually
// along each point's own radial or normal direction. ThickenFace builds
// on FaceOffset the way construct.Extrude builds a solid from a swept
// profile: the offset copy becomes one cap, the original flipped the
// other, and a planar side face connects each boundary edge to its
// offset counterpart. Shell offsets every outer face inward, flips it,
// and adds the offset faces as a new void shell; it builds no side
// faces.
package edit
