package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// Extrude sweeps a planar, straight-edged profile face along Vector,
// producing a solid bounded by the original profile (as one cap), a
// translated copy of it (the other cap), and one planar side face per
// profile edge.
type Extrude struct {
	Face   topo.FaceId
	Vector geom.Vec3
}

// NewExtrude builds an Extrude operation.
func NewExtrude(face topo.FaceId, vector geom.Vec3) Extrude {
	return Extrude{Face: face, Vector: vector}
}

// Execute builds the extruded solid. Returns errs.OperationError
// wrapping ErrNonPlanarFace if the face's surface is not a plane,
// ErrDegenerateSweep if Vector is zero, or ErrNonLinearProfile if any
// boundary edge is not straight.
func (op Extrude) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "Extrude"

	f, err := store.Face(op.Face)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "face", err)
	}
	plane, ok := f.Surface.(geom.Plane)
	if !ok {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "face must be planar", ErrNonPlanarFace)
	}
	if op.Vector.IsZero() {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "sweep vector must be non-zero", ErrDegenerateSweep)
	}

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

	translate := func(p geom.Point3) geom.Point3 { return p.Add(op.Vector) }

	normalAlignsWithVector := plane.Normal(0, 0).Dot(op.Vector) > 0

	var allSideFaces []topo.FaceId
	topOuter, sides, err := sweepLinear(store, f.Outer, translate)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "sweeping outer wire", err)
	}
	allSideFaces = append(allSideFaces, sides...)

	topInners := make([]topo.WireId, len(f.Inners))
	for i, wid := range f.Inners {
		topWid, innerSides, err := sweepLinear(store, wid, translate)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "sweeping inner wire", err)
		}
		topInners[i] = topWid
		allSideFaces = append(allSideFaces, innerSides...)
	}

	bottomFace := store.AddFace(topo.Face{
		Surface:   plane,
		Outer:     f.Outer,
		Inners:    f.Inners,
		SameSense: !normalAlignsWithVector,
	})
	topPlane := geom.Plane{Origin: plane.Origin.Add(op.Vector), U: plane.U, V: plane.V}
	topFace := store.AddFace(topo.Face{
		Surface:   topPlane,
		Outer:     topOuter,
		Inners:    topInners,
		SameSense: normalAlignsWithVector,
	})

	faces := append([]topo.FaceId{bottomFace, topFace}, allSideFaces...)
	shell := store.AddShell(topo.Shell{Faces: faces})
	solid := store.AddSolid(topo.Solid{Outer: shell})
	return solid, nil
}

// sweepLinear translates every vertex of the wire named by wid by
// sweep, builds the corresponding straight-edged top wire, and
// returns one planar side face per source edge connecting the
// original and translated loops. The bottom edges are reused as-is
// (no duplicate topology); only the top edges and one vertical edge
// per source vertex are newly created.
func sweepLinear(store *topo.Store, wid topo.WireId, sweep func(geom.Point3) geom.Point3) (topo.WireId, []topo.FaceId, error) {
	w, err := store.Wire(wid)
	if err != nil {
		return topo.WireId{}, nil, err
	}
	n := len(w.Edges)
	if n == 0 {
		return topo.WireId{}, nil, topo.ErrEmptyWire
	}

	bottomVerts := make([]topo.VertexId, n)
	topVerts := make([]topo.VertexId, n)
	bottomPts := make([]geom.Point3, n)
	for i, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		sv := oe.StartVertex(e)
		bottomVerts[i] = sv
		p, err := store.Vertex(sv)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		bottomPts[i] = p.Point
		topVerts[i] = store.AddVertex(topo.Vertex{Point: sweep(p.Point)})
	}

	verticals := make([]topo.EdgeId, n)
	for i := 0; i < n; i++ {
		a, b := bottomPts[i], sweep(bottomPts[i])
		dir := b.Sub(a)
		if dir.IsZero() {
			return topo.WireId{}, nil, ErrDegenerateSweep
		}
		line, err := geom.NewLine(a, dir, 0, 1)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		verticals[i] = store.AddEdge(topo.Edge{Curve: line, Start: bottomVerts[i], End: topVerts[i]})
	}

	topOEs := make([]topo.OrientedEdge, n)
	for i := 0; i < n; i++ {
		a, b := topVerts[i], topVerts[(i+1)%n]
		pa, _ := store.Vertex(a)
		pb, _ := store.Vertex(b)
		dir := pb.Point.Sub(pa.Point)
		if dir.IsZero() {
			return topo.WireId{}, nil, ErrDegenerateSweep
		}
		line, err := geom.NewLine(pa.Point, dir, 0, 1)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		eid := store.AddEdge(topo.Edge{Curve: line, Start: a, End: b})
		topOEs[i] = topo.OrientedEdge{Edge: eid}
	}
	topWireId := store.AddWire(topo.Wire{Edges: topOEs})

	sideFaces := make([]topo.FaceId, n)
	for i, oe := range w.Edges {
		topStart, topEnd := topVerts[i], topVerts[(i+1)%n]
		faceWire := topo.Wire{Edges: []topo.OrientedEdge{
			{Edge: oe.Edge, Reversed: oe.Reversed},
			{Edge: verticals[(i+1)%n], Reversed: false},
			{Edge: topOEs[i].Edge, Reversed: true},
			{Edge: verticals[i], Reversed: true},
		}}
		faceWireId := store.AddWire(faceWire)

		a := bottomPts[i]
		b := bottomPts[(i+1)%n]
		pTopEnd, _ := store.Vertex(topEnd)
		pTopStart, _ := store.Vertex(topStart)
		plane, err := planeFromPoints([]geom.Point3{a, b, pTopEnd.Point, pTopStart.Point})
		if err != nil {
			return topo.WireId{}, nil, err
		}
		sideFaces[i] = store.AddFace(topo.Face{Surface: plane, Outer: faceWireId, SameSense: true})
	}

	return topWireId, sideFaces, nil
}
