package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// MakeFace builds a planar face bounded by a closed outer wire, with
// zero or more closed inner wires cut out as holes. The bounding
// plane is derived from the outer wire's vertices via Newell's method,
// so the outer wire does not need to be given in any particular
// winding relative to a pre-existing surface.
type MakeFace struct {
	Outer  topo.WireId
	Inners []topo.WireId
}

// NewMakeFace builds a MakeFace operation.
func NewMakeFace(outer topo.WireId, inners []topo.WireId) MakeFace {
	return MakeFace{Outer: outer, Inners: inners}
}

// Execute validates that every wire is closed and coplanar with the
// outer wire's fitted plane, then inserts the face. Returns
// errs.OperationError(Failed) wrapping topo.ErrWireNotClosed,
// geom.ErrDegenerate (collinear outer points), or a coplanarity
// failure.
func (op MakeFace) Execute(store *topo.Store) (topo.FaceId, error) {
	const name = "MakeFace"

	outerWire, err := store.Wire(op.Outer)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.NotFound, "outer wire", err)
	}
	if err := store.ValidateWireClosed(outerWire); err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.Failed, "outer wire not closed", err)
	}

	outerPts, err := wirePoints(store, outerWire)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.NotFound, "outer wire vertices", err)
	}

	plane, err := planeFromPoints(outerPts)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.Failed, "could not fit a plane to the outer wire", err)
	}

	if err := validateCoplanar(plane, outerPts); err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.Failed, "outer wire is not coplanar", err)
	}

	for _, wid := range op.Inners {
		w, err := store.Wire(wid)
		if err != nil {
			return topo.FaceId{}, errs.Wrap(name, errs.NotFound, "inner wire", err)
		}
		if err := store.ValidateWireClosed(w); err != nil {
			return topo.FaceId{}, errs.Wrap(name, errs.Failed, "inner wire not closed", err)
		}
		pts, err := wirePoints(store, w)
		if err != nil {
			return topo.FaceId{}, errs.Wrap(name, errs.NotFound, "inner wire vertices", err)
		}
		if err := validateCoplanar(plane, pts); err != nil {
			return topo.FaceId{}, errs.Wrap(name, errs.Failed, "inner wire is not coplanar with the outer wire", err)
		}
	}

	fid := store.AddFace(topo.Face{
		Surface:   plane,
		Outer:     op.Outer,
		Inners:    op.Inners,
		SameSense: true,
	})
	return fid, nil
}

// wirePoints collects a wire's vertex points in traversal order.
func wirePoints(store *topo.Store, w topo.Wire) ([]geom.Point3, error) {
	pts := make([]geom.Point3, 0, len(w.Edges))
	for _, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return nil, err
		}
		vid := oe.StartVertex(e)
		v, err := store.Vertex(vid)
		if err != nil {
			return nil, err
		}
		pts = append(pts, v.Point)
	}
	return pts, nil
}

// planeFromPoints fits a plane to a closed point loop via Newell's
// method, using the loop's centroid as the plane's origin. Returns
// geom.ErrDegenerate if the points are collinear (Newell's sum has
// near-zero magnitude).
func planeFromPoints(points []geom.Point3) (geom.Plane, error) {
	if len(points) < 3 {
		return geom.Plane{}, geom.ErrDegenerate
	}
	n := len(points)
	var normal geom.Vec3
	var centroid geom.Vec3
	for i := 0; i < n; i++ {
		cur, next := points[i], points[(i+1)%n]
		normal.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		normal.Y += (cur.Z - next.Z) * (cur.X + next.X)
		normal.Z += (cur.X - next.X) * (cur.Y + next.Y)
		centroid = centroid.Add(cur.Vec())
	}
	if normal.Norm() < geom.Tolerance {
		return geom.Plane{}, geom.ErrDegenerate
	}
	origin := geom.Point3{X: centroid.X / float64(n), Y: centroid.Y / float64(n), Z: centroid.Z / float64(n)}
	return geom.NewPlane(origin, normal)
}

// validateCoplanar reports an error if any point lies farther than
// geom.Tolerance from plane.
func validateCoplanar(plane geom.Plane, points []geom.Point3) error {
	for _, p := range points {
		if abs(plane.SignedDistance(p)) > geom.Tolerance {
			return geom.ErrDegenerate
		}
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
