package construct

import (
	"math"

	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// Revolve sweeps a planar, straight-edged profile face a full turn
// about an axis, producing a solid whose faces are one genuine Plane,
// Cylinder, or Cone per profile edge depending on how that edge sits
// relative to the axis. Each swept face reuses the source profile
// edge itself as its parametric seam, so no duplicate straight edges
// are created; only the iso-radius circles bounding each face and the
// (shared, cached) per-vertex circle edges are new topology.
type Revolve struct {
	Face       topo.FaceId
	AxisOrigin geom.Point3
	AxisDir    geom.Vec3
}

// NewRevolve builds a Revolve operation.
func NewRevolve(face topo.FaceId, axisOrigin geom.Point3, axisDir geom.Vec3) Revolve {
	return Revolve{Face: face, AxisOrigin: axisOrigin, AxisDir: axisDir}
}

// Execute builds the revolved solid. Returns errs.OperationError
// wrapping ErrNonPlanarFace if the face's surface is not a plane,
// ErrDegenerateSweep if AxisDir is zero or the profile lies entirely
// on the axis, or ErrNonLinearProfile if any boundary edge is curved.
func (op Revolve) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "Revolve"

	f, err := store.Face(op.Face)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "face", err)
	}
	if _, ok := f.Surface.(geom.Plane); !ok {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "face must be planar", ErrNonPlanarFace)
	}
	if op.AxisDir.IsZero() {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "axis must be non-zero", ErrDegenerateSweep)
	}
	axisDir := op.AxisDir.Normalize()

	outerWire, err := store.Wire(f.Outer)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "outer wire", err)
	}
	if err := requireLinearWire(store, outerWire); err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "outer wire", err)
	}
	for _, wid := range f.Inners {
		w, err := store.Wire(wid)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "inner wire", err)
		}
		if err := requireLinearWire(store, w); err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "inner wire", err)
		}
	}

	refDir, err := pickRefDir(store, outerWire, op.AxisOrigin, axisDir)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "profile does not leave the axis", err)
	}

	rv := &revolver{
		store:      store,
		axisOrigin: op.AxisOrigin,
		axisDir:    axisDir,
		refDir:     refDir,
		circles:    make(map[topo.VertexId]topo.EdgeId),
	}

	var faces []topo.FaceId
	outerFaces, err := rv.sweepWire(outerWire)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "revolving outer wire", err)
	}
	faces = append(faces, outerFaces...)

	for _, wid := range f.Inners {
		w, err := store.Wire(wid)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "inner wire", err)
		}
		innerFaces, err := rv.sweepWire(w)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "revolving inner wire", err)
		}
		faces = append(faces, innerFaces...)
	}

	if len(faces) == 0 {
		return topo.SolidId{}, errs.New(name, errs.Failed, "profile produced no swept faces")
	}

	shell := store.AddShell(topo.Shell{Faces: faces})
	solid := store.AddSolid(topo.Solid{Outer: shell})
	return solid, nil
}

// revolver holds the shared axis/refDir frame and the per-vertex
// iso-radius circle cache used while sweeping a profile's wires.
type revolver struct {
	store      *topo.Store
	axisOrigin geom.Point3
	axisDir    geom.Vec3
	refDir     geom.Vec3
	circles    map[topo.VertexId]topo.EdgeId
}

// sweepWire builds one swept face per non-degenerate edge of w.
func (rv *revolver) sweepWire(w topo.Wire) ([]topo.FaceId, error) {
	var faces []topo.FaceId
	for _, oe := range w.Edges {
		e, err := rv.store.Edge(oe.Edge)
		if err != nil {
			return nil, err
		}
		sv, ev := oe.StartVertex(e), oe.EndVertex(e)
		pStart, err := rv.store.Vertex(sv)
		if err != nil {
			return nil, err
		}
		pEnd, err := rv.store.Vertex(ev)
		if err != nil {
			return nil, err
		}

		z0, r0, _ := radialDecompose(rv.axisOrigin, rv.axisDir, pStart.Point)
		z1, r1, _ := radialDecompose(rv.axisOrigin, rv.axisDir, pEnd.Point)

		if r0 <= geom.Tolerance && r1 <= geom.Tolerance {
			continue // both endpoints on the axis: sweeping traces no surface
		}

		fid, err := rv.sweepEdge(oe.Edge, sv, ev, z0, r0, z1, r1)
		if err != nil {
			return nil, err
		}
		faces = append(faces, fid)
	}
	return faces, nil
}

// sweepEdge builds the surface and bounding wire for revolving a
// single straight edge, classifying it as a Plane, Cylinder, or Cone
// depending on how its endpoints' axial coordinate and radius differ.
func (rv *revolver) sweepEdge(seam topo.EdgeId, sv, ev topo.VertexId, z0, r0, z1, r1 float64) (topo.FaceId, error) {
	dz := z1 - z0
	dr := r1 - r0

	var surface geom.Surface
	var err error
	switch {
	case abs(dz) <= geom.Tolerance:
		origin := rv.axisOrigin.Add(rv.axisDir.Scale(z0))
		surface, err = geom.NewPlaneFromBasis(origin, rv.axisDir, rv.refDir)
	case abs(dr) <= geom.Tolerance:
		origin := rv.axisOrigin.Add(rv.axisDir.Scale(z0))
		surface, err = geom.NewCylinder(origin, rv.axisDir, rv.refDir, r0)
	default:
		surface, err = rv.coneSurface(z0, r0, z1, r1)
	}
	if err != nil {
		return topo.FaceId{}, err
	}

	startCircle, err := rv.vertexCircle(sv, z0, r0)
	if err != nil {
		return topo.FaceId{}, err
	}
	endCircle, err := rv.vertexCircle(ev, z1, r1)
	if err != nil {
		return topo.FaceId{}, err
	}

	var edges []topo.OrientedEdge
	edges = append(edges, topo.OrientedEdge{Edge: seam, Reversed: false})
	if endCircle != nil {
		edges = append(edges, topo.OrientedEdge{Edge: *endCircle, Reversed: false})
	}
	edges = append(edges, topo.OrientedEdge{Edge: seam, Reversed: true})
	if startCircle != nil {
		edges = append(edges, topo.OrientedEdge{Edge: *startCircle, Reversed: true})
	}

	wid := rv.store.AddWire(topo.Wire{Edges: edges})
	fid := rv.store.AddFace(topo.Face{Surface: surface, Outer: wid, SameSense: true})
	return fid, nil
}

// coneSurface builds the Cone swept by a profile edge whose radius
// changes over a non-zero axial span, placing the apex where the
// edge's line, extended if necessary, meets the axis.
func (rv *revolver) coneSurface(z0, r0, z1, r1 float64) (geom.Cone, error) {
	t := -r0 / (r1 - r0)
	apexZ := z0 + t*(z1-z0)
	apex := rv.axisOrigin.Add(rv.axisDir.Scale(apexZ))

	farZ, farR := z1, r1
	if abs(z0-apexZ) > abs(z1-apexZ) {
		farZ, farR = z0, r0
	}
	axis := rv.axisDir
	if farZ < apexZ {
		axis = rv.axisDir.Neg()
	}
	halfAngle := math.Atan2(farR, abs(farZ-apexZ))
	return geom.NewCone(apex, axis, rv.refDir, halfAngle)
}

// vertexCircle returns the cached iso-radius circle edge for a given
// profile vertex (building and caching it on first use), or nil if
// the vertex lies on the axis and so has no circle to sweep.
func (rv *revolver) vertexCircle(vid topo.VertexId, z, r float64) (*topo.EdgeId, error) {
	if r <= geom.Tolerance {
		return nil, nil
	}
	if eid, ok := rv.circles[vid]; ok {
		return &eid, nil
	}
	center := rv.axisOrigin.Add(rv.axisDir.Scale(z))
	circle, err := geom.NewCircle(center, r, rv.axisDir, rv.refDir)
	if err != nil {
		return nil, err
	}
	eid := rv.store.AddEdge(topo.Edge{Curve: circle, Start: vid, End: vid})
	rv.circles[vid] = eid
	return &eid, nil
}
