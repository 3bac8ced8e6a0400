package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// MakeWire builds a polygonal wire through a sequence of points,
// connecting each consecutive pair with a straight edge. If closed is
// true, an additional edge connects the last point back to the first.
type MakeWire struct {
	Points []geom.Point3
	Closed bool
}

// NewMakeWire builds a MakeWire operation.
func NewMakeWire(points []geom.Point3, closed bool) MakeWire {
	return MakeWire{Points: points, Closed: closed}
}

// Execute inserts one vertex per point and one straight edge per
// consecutive pair into store, and returns the resulting wire's Id.
// Returns an errs.OperationError(InvalidInput) if fewer than 2 points
// (3 for a closed wire) are given, or (Failed) if two consecutive
// points coincide within geom.Tolerance.
func (op MakeWire) Execute(store *topo.Store) (topo.WireId, error) {
	const name = "MakeWire"
	minPts := 2
	if op.Closed {
		minPts = 3
	}
	if len(op.Points) < minPts {
		return topo.WireId{}, errs.New(name, errs.InvalidInput, "too few points")
	}

	verts := make([]topo.VertexId, len(op.Points))
	for i, p := range op.Points {
		verts[i] = store.AddVertex(topo.Vertex{Point: p})
	}

	n := len(op.Points)
	edgeCount := n - 1
	if op.Closed {
		edgeCount = n
	}

	oes := make([]topo.OrientedEdge, edgeCount)
	for i := 0; i < edgeCount; i++ {
		a, b := op.Points[i], op.Points[(i+1)%n]
		dir := b.Sub(a)
		if dir.IsZero() {
			return topo.WireId{}, errs.Wrap(name, errs.Failed, "consecutive points coincide", geom.ErrZeroVector)
		}
		line, err := geom.NewLine(a, dir, 0, 1)
		if err != nil {
			return topo.WireId{}, errs.Wrap(name, errs.Failed, "degenerate edge", err)
		}
		eid := store.AddEdge(topo.Edge{Curve: line, Start: verts[i], End: verts[(i+1)%n]})
		oes[i] = topo.OrientedEdge{Edge: eid}
	}

	wid := store.AddWire(topo.Wire{Edges: oes})
	return wid, nil
}
