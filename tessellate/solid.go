package tessellate

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/topo"
)

// TessellateSolid tessellates every face of a solid, respecting each
// face's SameSense, and concatenates the results into one mesh.
type TessellateSolid struct {
	Solid  topo.SolidId
	Params Params
}

// NewTessellateSolid builds a TessellateSolid operation with params.
func NewTessellateSolid(solid topo.SolidId, params Params) TessellateSolid {
	return TessellateSolid{Solid: solid, Params: params}
}

// Execute builds the combined mesh of the solid's outer shell and
// every void shell.
func (op TessellateSolid) Execute(store *topo.Store) (TriangleMesh, error) {
	const name = "TessellateSolid"

	s, err := store.Solid(op.Solid)
	if err != nil {
		return TriangleMesh{}, errs.Wrap(name, errs.NotFound, "solid", err)
	}

	var mesh TriangleMesh
	shells := append([]topo.ShellId{s.Outer}, s.Voids...)
	for _, shid := range shells {
		sh, err := store.Shell(shid)
		if err != nil {
			return TriangleMesh{}, errs.Wrap(name, errs.NotFound, "shell", err)
		}
		for _, fid := range sh.Faces {
			faceMesh, err := NewTessellateFace(fid, op.Params).Execute(store)
			if err != nil {
				return TriangleMesh{}, errs.Wrap(name, errs.Failed, "tessellating face", err)
			}
			mesh.Append(faceMesh)
		}
	}
	return mesh, nil
}
