package edit

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/topo"
)

// Shell hollows a solid to a uniform wall thickness: every face of the
// solid's outer shell is offset inward and flipped to face the new
// interior, and the resulting shell becomes a void of the same solid.
type Shell struct {
	Solid     topo.SolidId
	Thickness float64
}

// NewShell builds a Shell operation. Thickness must be positive; the
// wall is built by offsetting each outer face inward by Thickness.
func NewShell(solid topo.SolidId, thickness float64) Shell {
	return Shell{Solid: solid, Thickness: thickness}
}

// Execute builds the hollowed solid. Returns errs.OperationError
// wrapping ErrUnsupportedSurface if any outer face's surface cannot be
// offset, or ErrDegenerateOffset if Thickness collapses one.
func (op Shell) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "Shell"

	s, err := store.Solid(op.Solid)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "solid", err)
	}
	outer, err := store.Shell(s.Outer)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "outer shell", err)
	}

	innerFaces := make([]topo.FaceId, 0, len(outer.Faces))
	for _, fid := range outer.Faces {
		f, err := store.Face(fid)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "face", err)
		}

		newSurface, err := offsetSurface(f.Surface, f.SameSense, -op.Thickness)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "offsetting surface", err)
		}

		outerPts, err := offsetWirePoints(store, f.Outer, f.Surface, f.SameSense, -op.Thickness)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "offsetting outer boundary", err)
		}
		outerWire, err := buildStraightWire(store, outerPts)
		if err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building offset outer wire", err)
		}

		inners := make([]topo.WireId, len(f.Inners))
		for i, wid := range f.Inners {
			pts, err := offsetWirePoints(store, wid, f.Surface, f.SameSense, -op.Thickness)
			if err != nil {
				return topo.SolidId{}, errs.Wrap(name, errs.Failed, "offsetting inner boundary", err)
			}
			w, err := buildStraightWire(store, pts)
			if err != nil {
				return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building offset inner wire", err)
			}
			inners[i] = w
		}

		// the inward offset copy bounds the cavity, so it faces the
		// opposite way from the original outer face.
		innerFaces = append(innerFaces, store.AddFace(topo.Face{
			Surface:   newSurface,
			Outer:     outerWire,
			Inners:    inners,
			SameSense: !f.SameSense,
		}))
	}

	innerShell := store.AddShell(topo.Shell{Faces: innerFaces})
	voids := append(append([]topo.ShellId(nil), s.Voids...), innerShell)
	return store.AddSolid(topo.Solid{Outer: s.Outer, Voids: voids}), nil
}
