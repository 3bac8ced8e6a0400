package query

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/tessellate"
	"github.com/brepkit/kernel/topo"
)

// Length computes the arc length of an edge's curve via its
// tessellated polyline.
type Length struct {
	Edge   topo.EdgeId
	Params tessellate.Params
}

// NewLength builds a Length query with default tessellation params.
func NewLength(edge topo.EdgeId) Length {
	return Length{Edge: edge, Params: tessellate.DefaultParams()}
}

// WithParams overrides the tessellation params used for the query.
func (q Length) WithParams(params tessellate.Params) Length {
	q.Params = params
	return q
}

// Execute returns the sum of the tessellated polyline's segment lengths.
func (q Length) Execute(store *topo.Store) (float64, error) {
	const name = "Length"

	poly, err := tessellate.NewTessellateCurve(q.Edge, q.Params).Execute(store)
	if err != nil {
		return 0, errs.Wrap(name, errs.Failed, "tessellating edge", err)
	}

	var total float64
	for i := 1; i < len(poly.Points); i++ {
		total += poly.Points[i].Sub(poly.Points[i-1]).Norm()
	}
	return total, nil
}
