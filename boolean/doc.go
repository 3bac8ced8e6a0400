// Package boolean implements the kernel's set operations — Union,
// Subtract, Intersect — over solids bounded by planar faces.
//
// The pipeline follows spec §4.7: each face of one solid is split
// against the half-spaces carved out by the other solid's faces, the
// resulting fragments are classified Inside/Outside/OnBoundary, a
// fixed selection table decides which fragments survive (and whether
// a surviving fragment from the subtracted solid needs its
// orientation flipped), and the kept fragments are collected into a
// new shell. Every clipped fragment is rebuilt with its own new
// vertices and edges, so faces of the result share no edges and the
// shell does not pass topo.ValidateShellClosed.
//
// Splitting is done by Sutherland-Hodgman half-plane clipping in each
// face's own 2D parameter space, sequentially walking the opposite
// solid's face planes — exact when the opposite solid is convex
// (every primitive solid construct builds is), an approximation
// otherwise. Faces bound to a curved surface (Cylinder, Cone, Sphere,
// Torus) are not split at all: they are classified whole, by a single
// ray cast from their centroid, and kept or discarded as a unit. This
// matches spec §1's scope note that curved geometry participates in
// booleans at reduced fidelity, not via exact curved-edge splitting.
package boolean
