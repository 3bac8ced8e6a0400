package topo

import "github.com/brepkit/kernel/geom"

// Vertex is a point in space, addressed by VertexId.
type Vertex struct {
	Point geom.Point3
}

// Edge is a bounded curve between two vertices, addressed by EdgeId.
// Start and End may be the same VertexId for a closed curve (Circle,
// or a full-turn Ellipse/BSpline); the curve's own domain, not the
// vertex pair, is authoritative for closedness.
type Edge struct {
	Curve      geom.Curve
	Start, End VertexId
}

// OrientedEdge references an Edge together with a traversal sense: if
// Reversed is true, the wire traverses the edge's curve from End to
// Start instead of Start to End.
type OrientedEdge struct {
	Edge     EdgeId
	Reversed bool
}

// StartVertex returns the vertex the oriented edge starts from, given
// the underlying Edge.
func (oe OrientedEdge) StartVertex(e Edge) VertexId {
	if oe.Reversed {
		return e.End
	}
	return e.Start
}

// EndVertex returns the vertex the oriented edge ends at, given the
// underlying Edge.
func (oe OrientedEdge) EndVertex(e Edge) VertexId {
	if oe.Reversed {
		return e.Start
	}
	return e.End
}

// Wire is an ordered sequence of oriented edges, addressed by WireId.
// A wire used to bound a face must be both continuous (each edge's
// end vertex equals the next edge's start vertex) and closed (the
// last edge's end vertex equals the first edge's start vertex); see
// Store.ValidateWireContinuous and Store.ValidateWireClosed.
type Wire struct {
	Edges []OrientedEdge
}

// Face is a bounded region of a surface, addressed by FaceId. Outer
// is the wire bounding the face's outer boundary; Inners are wires
// bounding holes. SameSense reports whether the face's outward normal
// follows the surface's natural Normal(u, v) orientation (true) or is
// reversed relative to it (false) — the same convention STEP calls
// FACE_SURFACE.same_sense.
type Face struct {
	Surface   geom.Surface
	Outer     WireId
	Inners    []WireId
	SameSense bool
}

// Shell is an ordered, unordered-semantically set of faces forming a
// connected patch of surface, addressed by ShellId. A shell intended
// to bound a Solid must be closed: every edge used by exactly one of
// its faces fails closure (see Store.ValidateShellClosed).
type Shell struct {
	Faces []FaceId
}

// Solid is a region of space bounded by one outer shell and zero or
// more void shells (internal cavities), addressed by SolidId.
type Solid struct {
	Outer ShellId
	Voids []ShellId
}
