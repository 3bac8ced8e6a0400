package query

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// IsValid checks a solid's shell closure, orientation consistency,
// wire continuity, and planar-face coplanarity.
type IsValid struct {
	Solid topo.SolidId
}

// NewIsValid builds an IsValid query.
func NewIsValid(solid topo.SolidId) IsValid {
	return IsValid{Solid: solid}
}

// Execute returns nil if the solid passes every check, otherwise the
// first failing errs.OperationError encountered.
func (q IsValid) Execute(store *topo.Store) error {
	const name = "IsValid"

	s, err := store.Solid(q.Solid)
	if err != nil {
		return errs.Wrap(name, errs.NotFound, "solid", err)
	}

	shells := append([]topo.ShellId{s.Outer}, s.Voids...)
	for _, shid := range shells {
		sh, err := store.Shell(shid)
		if err != nil {
			return errs.Wrap(name, errs.NotFound, "shell", err)
		}
		if err := store.ValidateShellClosed(sh); err != nil {
			return errs.Wrap(name, errs.Failed, "shell not closed", err)
		}
		if err := store.ValidateShellOrientation(sh); err != nil {
			return errs.Wrap(name, errs.Failed, "shell orientation inconsistent", err)
		}

		for _, fid := range sh.Faces {
			f, err := store.Face(fid)
			if err != nil {
				return errs.Wrap(name, errs.NotFound, "face", err)
			}
			wires := append([]topo.WireId{f.Outer}, f.Inners...)
			for _, wid := range wires {
				w, err := store.Wire(wid)
				if err != nil {
					return errs.Wrap(name, errs.NotFound, "wire", err)
				}
				if err := store.ValidateWireContinuous(w); err != nil {
					return errs.Wrap(name, errs.Failed, "wire not continuous", err)
				}
				if err := checkPlanar(store, f, wid); err != nil {
					return errs.Wrap(name, errs.Failed, "face not planar", err)
				}
			}
		}
	}
	return nil
}

// checkPlanar verifies every vertex of wid lies on f's surface within
// tolerance, when that surface is a Plane.
func checkPlanar(store *topo.Store, f topo.Face, wid topo.WireId) error {
	plane, ok := f.Surface.(geom.Plane)
	if !ok {
		return nil
	}
	pts, err := wirePoints(store, wid)
	if err != nil {
		return err
	}
	for _, p := range pts {
		if abs(plane.SignedDistance(p)) > geom.Tolerance*1e3 {
			return ErrNotPlanar
		}
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
