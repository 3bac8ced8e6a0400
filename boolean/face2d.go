package boolean

import (
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// wireVertices3D walks a wire's oriented edges in order and returns the
// 3D position of each edge's start vertex (the wire is assumed closed,
// so the last edge's end vertex is the first point again and is not
// repeated).
func wireVertices3D(store *topo.Store, wid topo.WireId) ([]geom.Point3, error) {
	w, err := store.Wire(wid)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point3, 0, len(w.Edges))
	for _, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return nil, err
		}
		v, err := store.Vertex(oe.StartVertex(e))
		if err != nil {
			return nil, err
		}
		pts = append(pts, v.Point)
	}
	return pts, nil
}

// facePolygon2D projects a face's outer wire into its own surface's
// (u, v) parameter space, in traversal order. Works for any
// InvertibleSurface, not only Plane, so the same helper serves both
// planar clipping and curved-face boundary tests.
func facePolygon2D(store *topo.Store, f topo.Face, surf geom.InvertibleSurface) ([]geom.Point2, error) {
	pts3, err := wireVertices3D(store, f.Outer)
	if err != nil {
		return nil, err
	}
	poly := make([]geom.Point2, len(pts3))
	for i, p := range pts3 {
		u, v, _ := surf.Inverse(p)
		poly[i] = geom.Point2{X: u, Y: v}
	}
	return poly, nil
}

// buildPlanarFace constructs a new planar Face bounded by poly2D,
// expressed in plane's own (u, v) coordinates, with the given
// orientation sense. Consecutive duplicate points (possible after
// clipping) are dropped; returns ok=false if fewer than 3 distinct
// points remain.
func buildPlanarFace(store *topo.Store, plane geom.Plane, sameSense bool, poly2D []geom.Point2) (topo.FaceId, bool, error) {
	pts3 := make([]geom.Point3, 0, len(poly2D))
	for _, p := range poly2D {
		pt := plane.Evaluate(p.X, p.Y)
		if len(pts3) > 0 && pts3[len(pts3)-1].ApproxEqual(pt) {
			continue
		}
		pts3 = append(pts3, pt)
	}
	if len(pts3) > 1 && pts3[0].ApproxEqual(pts3[len(pts3)-1]) {
		pts3 = pts3[:len(pts3)-1]
	}
	if len(pts3) < 3 {
		return topo.FaceId{}, false, nil
	}

	verts := make([]topo.VertexId, len(pts3))
	for i, p := range pts3 {
		verts[i] = store.AddVertex(topo.Vertex{Point: p})
	}
	n := len(pts3)
	oes := make([]topo.OrientedEdge, n)
	for i := 0; i < n; i++ {
		a, b := pts3[i], pts3[(i+1)%n]
		dir := b.Sub(a)
		line, err := geom.NewLine(a, dir, 0, 1)
		if err != nil {
			return topo.FaceId{}, false, err
		}
		eid := store.AddEdge(topo.Edge{Curve: line, Start: verts[i], End: verts[(i+1)%n]})
		oes[i] = topo.OrientedEdge{Edge: eid}
	}
	wid := store.AddWire(topo.Wire{Edges: oes})
	fid := store.AddFace(topo.Face{Surface: plane, Outer: wid, SameSense: sameSense})
	return fid, true, nil
}

// flipFace builds a copy of f with its outer wire traversed in reverse
// and its orientation sense toggled, so its outward normal points the
// opposite way. Used when a fragment of the subtracted solid survives
// as the wall of a new cavity and must face into it.
func flipFace(store *topo.Store, fid topo.FaceId) (topo.FaceId, error) {
	f, err := store.Face(fid)
	if err != nil {
		return topo.FaceId{}, err
	}
	w, err := store.Wire(f.Outer)
	if err != nil {
		return topo.FaceId{}, err
	}
	n := len(w.Edges)
	rev := make([]topo.OrientedEdge, n)
	for i, oe := range w.Edges {
		rev[n-1-i] = topo.OrientedEdge{Edge: oe.Edge, Reversed: !oe.Reversed}
	}
	var inners []topo.WireId
	for _, iw := range f.Inners {
		innerW, err := store.Wire(iw)
		if err != nil {
			return topo.FaceId{}, err
		}
		m := len(innerW.Edges)
		revInner := make([]topo.OrientedEdge, m)
		for i, oe := range innerW.Edges {
			revInner[m-1-i] = topo.OrientedEdge{Edge: oe.Edge, Reversed: !oe.Reversed}
		}
		inners = append(inners, store.AddWire(topo.Wire{Edges: revInner}))
	}
	wid := store.AddWire(topo.Wire{Edges: rev})
	return store.AddFace(topo.Face{Surface: f.Surface, Outer: wid, Inners: inners, SameSense: !f.SameSense}), nil
}

// faceCentroid returns the average of a face's outer wire vertices —
// not the true area centroid, but adequate as a representative
// interior-ish sample point for ray-cast classification.
func faceCentroid(store *topo.Store, f topo.Face) (geom.Point3, error) {
	pts, err := wireVertices3D(store, f.Outer)
	if err != nil {
		return geom.Point3{}, err
	}
	if len(pts) == 0 {
		return geom.Point3{}, ErrUnsupportedSurface
	}
	sum := geom.Vec3{}
	for _, p := range pts {
		sum = sum.Add(p.Vec())
	}
	n := float64(len(pts))
	avg := geom.Point3{}.Add(sum.Scale(1 / n))
	return avg, nil
}
