package query

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/tessellate"
	"github.com/brepkit/kernel/topo"
)

// Area computes the total surface area of a solid via tessellation.
type Area struct {
	Solid  topo.SolidId
	Params tessellate.Params
}

// NewArea builds an Area query with default tessellation params.
func NewArea(solid topo.SolidId) Area {
	return Area{Solid: solid, Params: tessellate.DefaultParams()}
}

// WithParams overrides the tessellation params used for the query.
func (q Area) WithParams(params tessellate.Params) Area {
	q.Params = params
	return q
}

// Execute returns the sum of every mesh triangle's area.
func (q Area) Execute(store *topo.Store) (float64, error) {
	const name = "Area"

	mesh, err := tessellate.NewTessellateSolid(q.Solid, q.Params).Execute(store)
	if err != nil {
		return 0, errs.Wrap(name, errs.Failed, "tessellating solid", err)
	}

	var total float64
	for _, tri := range mesh.Indices {
		v0, v1, v2 := mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]]
		e1 := v1.Sub(v0)
		e2 := v2.Sub(v0)
		total += e1.Cross(e2).Norm() * 0.5
	}
	return total, nil
}
