package edit

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/topo"
)

// FaceOffset builds a new face displaced from an existing one along
// its own outward direction: translated for a planar face, grown or
// shrunk in radius for a curved one.
type FaceOffset struct {
	Face     topo.FaceId
	Distance float64
}

// NewFaceOffset builds a FaceOffset operation.
func NewFaceOffset(face topo.FaceId, distance float64) FaceOffset {
	return FaceOffset{Face: face, Distance: distance}
}

// Execute builds the offset face and returns its Id, leaving the
// source face untouched. Returns errs.OperationError wrapping
// ErrUnsupportedSurface if the face's surface is not Plane, Cylinder,
// Cone, Sphere, or Torus, or ErrDegenerateOffset if the offset would
// collapse a curved surface's radius to zero or below.
func (op FaceOffset) Execute(store *topo.Store) (topo.FaceId, error) {
	const name = "FaceOffset"

	f, err := store.Face(op.Face)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.NotFound, "face", err)
	}

	newSurface, err := offsetSurface(f.Surface, f.SameSense, op.Distance)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.InvalidInput, "offsetting surface", err)
	}

	outerPts, err := offsetWirePoints(store, f.Outer, f.Surface, f.SameSense, op.Distance)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.Failed, "offsetting outer boundary", err)
	}
	outerWire, err := buildStraightWire(store, outerPts)
	if err != nil {
		return topo.FaceId{}, errs.Wrap(name, errs.Failed, "building offset outer wire", err)
	}

	inners := make([]topo.WireId, len(f.Inners))
	for i, wid := range f.Inners {
		pts, err := offsetWirePoints(store, wid, f.Surface, f.SameSense, op.Distance)
		if err != nil {
			return topo.FaceId{}, errs.Wrap(name, errs.Failed, "offsetting inner boundary", err)
		}
		w, err := buildStraightWire(store, pts)
		if err != nil {
			return topo.FaceId{}, errs.Wrap(name, errs.Failed, "building offset inner wire", err)
		}
		inners[i] = w
	}

	fid := store.AddFace(topo.Face{Surface: newSurface, Outer: outerWire, Inners: inners, SameSense: f.SameSense})
	return fid, nil
}
