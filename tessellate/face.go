package tessellate

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// TessellateFace samples a face's boundary with the curve tessellator,
// projects the sampled polygon(s) into the surface's parameter domain,
// triangulates with holes, and lifts the result back to 3D.
type TessellateFace struct {
	Face   topo.FaceId
	Params Params
}

// NewTessellateFace builds a TessellateFace operation with params.
func NewTessellateFace(face topo.FaceId, params Params) TessellateFace {
	return TessellateFace{Face: face, Params: params}
}

// Execute builds the face's mesh. Returns errs.OperationError wrapping
// ErrUnsupportedSurface if the face's surface cannot report (u, v) for
// a 3D point, or ErrDegeneratePolygon if ear-clipping fails on the
// projected boundary.
func (op TessellateFace) Execute(store *topo.Store) (TriangleMesh, error) {
	const name = "TessellateFace"

	f, err := store.Face(op.Face)
	if err != nil {
		return TriangleMesh{}, errs.Wrap(name, errs.NotFound, "face", err)
	}
	invertible, ok := f.Surface.(geom.InvertibleSurface)
	if !ok {
		return TriangleMesh{}, errs.Wrap(name, errs.InvalidInput, "surface", ErrUnsupportedSurface)
	}

	outer2D, err := sampleWireParams(store, f.Outer, invertible, op.Params)
	if err != nil {
		return TriangleMesh{}, errs.Wrap(name, errs.Failed, "sampling outer wire", err)
	}
	holes2D := make([][]geom.Point2, len(f.Inners))
	for i, wid := range f.Inners {
		pts, err := sampleWireParams(store, wid, invertible, op.Params)
		if err != nil {
			return TriangleMesh{}, errs.Wrap(name, errs.Failed, "sampling inner wire", err)
		}
		holes2D[i] = pts
	}

	poly := mergeHoles(outer2D, holes2D)
	tris, err := triangulate(poly)
	if err != nil {
		return TriangleMesh{}, errs.Wrap(name, errs.Failed, "triangulating boundary", err)
	}

	mesh := TriangleMesh{
		Vertices: make([]geom.Point3, len(poly)),
		Normals:  make([]geom.Vec3, len(poly)),
		UVs:      make([]geom.Point2, len(poly)),
		Indices:  tris,
	}
	for i, p := range poly {
		mesh.Vertices[i] = f.Surface.Evaluate(p.X, p.Y)
		n := f.Surface.Normal(p.X, p.Y)
		if !f.SameSense {
			n = n.Neg()
		}
		mesh.Normals[i] = n
		mesh.UVs[i] = p
	}
	if !f.SameSense {
		for i, tri := range mesh.Indices {
			mesh.Indices[i] = [3]int{tri[0], tri[2], tri[1]}
		}
	}
	return mesh, nil
}

// sampleWireParams tessellates every edge of wid with the curve
// tessellator and projects each sampled point into surface's (u, v)
// domain, dropping the point shared between consecutive edges.
func sampleWireParams(store *topo.Store, wid topo.WireId, surface geom.InvertibleSurface, params Params) ([]geom.Point2, error) {
	w, err := store.Wire(wid)
	if err != nil {
		return nil, err
	}
	var pts2D []geom.Point2
	for _, oe := range w.Edges {
		poly, err := NewTessellateCurve(oe.Edge, params).Execute(store)
		if err != nil {
			return nil, err
		}
		samples := poly.Points
		if oe.Reversed {
			samples = reversePoints(samples)
		}
		for i, p := range samples {
			if i == len(samples)-1 {
				continue // shared with the next edge's first sample
			}
			u, v, err := surface.Inverse(p)
			if err != nil {
				return nil, err
			}
			pts2D = append(pts2D, geom.Point2{X: u, Y: v})
		}
	}
	return pts2D, nil
}

func reversePoints(pts []geom.Point3) []geom.Point3 {
	out := make([]geom.Point3, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
