package tessellate

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// TessellateCurve samples an edge's curve into a Polyline.
type TessellateCurve struct {
	Edge   topo.EdgeId
	Params Params
}

// NewTessellateCurve builds a TessellateCurve operation with params.
func NewTessellateCurve(edge topo.EdgeId, params Params) TessellateCurve {
	return TessellateCurve{Edge: edge, Params: params}
}

// Execute samples the edge's curve starting from MinSegments uniform
// breakpoints, then repeatedly bisects whichever segment's midpoint
// deviates from the chord by more than Params.Tolerance, until every
// segment is within tolerance or MaxSegments is reached.
func (op TessellateCurve) Execute(store *topo.Store) (Polyline, error) {
	const name = "TessellateCurve"

	e, err := store.Edge(op.Edge)
	if err != nil {
		return Polyline{}, errs.Wrap(name, errs.NotFound, "edge", err)
	}

	ts := sampleParams(e.Curve, op.Params)
	points := make([]geom.Point3, len(ts))
	for i, t := range ts {
		points[i] = e.Curve.Evaluate(t)
	}
	return Polyline{Points: points}, nil
}

// sampleParams returns the sorted curve parameters of an adaptively
// refined polyline over curve's domain.
func sampleParams(curve geom.Curve, params Params) []float64 {
	d := curve.Domain()
	minSeg := params.MinSegments
	if minSeg < 1 {
		minSeg = 1
	}
	ts := make([]float64, minSeg+1)
	for i := range ts {
		ts[i] = d.TMin + (d.TMax-d.TMin)*float64(i)/float64(minSeg)
	}

	for len(ts)-1 < params.MaxSegments {
		worst := -1
		worstDeviation := params.Tolerance
		for i := 0; i < len(ts)-1; i++ {
			mid := (ts[i] + ts[i+1]) / 2
			chordMid := geom.Point3{
				X: (curve.Evaluate(ts[i]).X + curve.Evaluate(ts[i+1]).X) / 2,
				Y: (curve.Evaluate(ts[i]).Y + curve.Evaluate(ts[i+1]).Y) / 2,
				Z: (curve.Evaluate(ts[i]).Z + curve.Evaluate(ts[i+1]).Z) / 2,
			}
			deviation := curve.Evaluate(mid).Sub(chordMid).Norm()
			if deviation > worstDeviation {
				worstDeviation = deviation
				worst = i
			}
		}
		if worst < 0 {
			break
		}
		mid := (ts[worst] + ts[worst+1]) / 2
		ts = append(ts, 0)
		copy(ts[worst+2:], ts[worst+1:])
		ts[worst+1] = mid
	}
	return ts
}
