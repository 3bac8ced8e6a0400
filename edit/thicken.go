package edit

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// ThickenFace turns a single face into a thin solid: the face's
// current boundary becomes one cap (flipped, so it faces into the new
// solid), an offset copy of the face becomes the other, and one planar
// side face connects each boundary edge to its offset counterpart.
type ThickenFace struct {
	Face      topo.FaceId
	Thickness float64
}

// NewThickenFace builds a ThickenFace operation.
func NewThickenFace(face topo.FaceId, thickness float64) ThickenFace {
	return ThickenFace{Face: face, Thickness: thickness}
}

// Execute builds the thickened solid. Returns errs.OperationError
// wrapping ErrUnsupportedSurface for a surface FaceOffset cannot
// handle, or ErrDegenerateOffset if Thickness collapses a curved
// surface's radius.
func (op ThickenFace) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "ThickenFace"

	f, err := store.Face(op.Face)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "face", err)
	}

	topSurface, err := offsetSurface(f.Surface, f.SameSense, op.Thickness)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "offsetting surface", err)
	}

	var sides []topo.FaceId

	topOuter, rimOuter, err := rimFaces(store, f.Outer, f.Surface, f.SameSense, op.Thickness)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building outer rim", err)
	}
	sides = append(sides, rimOuter...)

	topInners := make([]topo.WireId, len(f.Inners))
	for i, wid := range f.Inners {
		topWid, rim, err := rimFaces(store, wid, f.Surface, f.SameSense, op.Thickness)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building inner rim", err)
		}
		topInners[i] = topWid
		sides = append(sides, rim...)
	}

	bottomFace := store.AddFace(topo.Face{Surface: f.Surface, Outer: f.Outer, Inners: f.Inners, SameSense: !f.SameSense})
	topFace := store.AddFace(topo.Face{Surface: topSurface, Outer: topOuter, Inners: topInners, SameSense: f.SameSense})

	faces := append([]topo.FaceId{bottomFace, topFace}, sides...)
	shell := store.AddShell(topo.Shell{Faces: faces})
	return store.AddSolid(topo.Solid{Outer: shell}), nil
}

// rimFaces offsets every vertex of wid by distance along its own
// offsetDirection, builds the resulting top wire, and returns one
// planar side face per source edge connecting the original and
// offset loops — the curved-surface analogue of construct's
// sweepLinear, driven by a per-vertex direction instead of one
// constant sweep vector.
func rimFaces(store *topo.Store, wid topo.WireId, surface geom.Surface, sameSense bool, distance float64) (topo.WireId, []topo.FaceId, error) {
	w, err := store.Wire(wid)
	if err != nil {
		return topo.WireId{}, nil, err
	}
	n := len(w.Edges)
	if n == 0 {
		return topo.WireId{}, nil, topo.ErrEmptyWire
	}

	bottomVerts := make([]topo.VertexId, n)
	bottomPts := make([]geom.Point3, n)
	topVerts := make([]topo.VertexId, n)
	for i, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		sv := oe.StartVertex(e)
		bottomVerts[i] = sv
		v, err := store.Vertex(sv)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		bottomPts[i] = v.Point
		dir, err := offsetDirection(surface, sameSense, v.Point)
		if err != nil {
			return topo.WireId{}, nil, err
		}
		topVerts[i] = store.AddVertex(topo.Vertex{Point: v.Point.Add(dir.Scale(distance))})
	}

	verticals := make([]topo.EdgeId, n)
	for i := 0; i < n; i++ {
		tp, err := store.Vertex(topVerts[i])
		if err != nil {
			return topo.WireId{}, nil, err
		}
		dir := tp.Point.Sub(bottomPts[i])
		if dir.IsZero() {
			return topo.WireId{}, nil, ErrDegenerateOffset
		}
		line, err := geom.NewLine(bottomPts[i], dir, 0, 1)
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
			return topo.WireId{}, nil, ErrDegenerateOffset
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

		pTopEnd, _ := store.Vertex(topEnd)
		pTopStart, _ := store.Vertex(topStart)
		plane, err := planeFromPoints([]geom.Point3{bottomPts[i], bottomPts[(i+1)%n], pTopEnd.Point, pTopStart.Point})
		if err != nil {
			return topo.WireId{}, nil, err
		}
		sideFaces[i] = store.AddFace(topo.Face{Surface: plane, Outer: faceWireId, SameSense: true})
	}

	return topWireId, sideFaces, nil
}
