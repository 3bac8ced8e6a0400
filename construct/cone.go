package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// MakeCone builds a right circular cone (or, when TopRadius is
// positive, a frustum) by revolving a triangular or trapezoidal
// profile a full turn about an axis through Origin in direction Axis.
// BottomRadius is the radius at Origin; TopRadius is the radius at
// Origin+Height*Axis, and may be zero for a pointed cone.
type MakeCone struct {
	Origin                  geom.Point3
	Axis                    geom.Vec3
	BottomRadius, TopRadius float64
	Height                  float64
}

// NewMakeCone builds a MakeCone operation.
func NewMakeCone(origin geom.Point3, axis geom.Vec3, bottomRadius, topRadius, height float64) MakeCone {
	return MakeCone{Origin: origin, Axis: axis, BottomRadius: bottomRadius, TopRadius: topRadius, Height: height}
}

// Execute builds the profile and revolves it. A pointed cone
// (TopRadius == 0) yields two faces: one planar bottom cap and one
// conical side, since Revolve collapses the apex-to-axis edge to a
// degenerate skip. A frustum (TopRadius > 0) yields three faces: two
// planar caps and one conical side. Returns errs.OperationError
// wrapping geom.ErrZeroVector if Axis is zero, or ErrDegenerateSweep
// if BottomRadius, Height are non-positive, TopRadius is negative, or
// both radii are equal (which would make this a cylinder, not a cone).
func (op MakeCone) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "MakeCone"
	if op.Axis.IsZero() {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "axis must be non-zero", geom.ErrZeroVector)
	}
	if op.BottomRadius <= geom.Tolerance || op.Height <= geom.Tolerance || op.TopRadius < 0 {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "bottom radius and height must be positive, top radius non-negative", ErrDegenerateSweep)
	}
	if abs(op.TopRadius-op.BottomRadius) <= geom.Tolerance {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "top and bottom radii must differ", ErrDegenerateSweep)
	}
	axis := op.Axis.Normalize()
	refDir := arbitraryPerpendicular(axis)

	bottom := op.Origin
	top := op.Origin.Add(axis.Scale(op.Height))

	var profile []geom.Point3
	if op.TopRadius <= geom.Tolerance {
		profile = []geom.Point3{
			bottom,
			bottom.Add(refDir.Scale(op.BottomRadius)),
			top,
		}
	} else {
		profile = []geom.Point3{
			bottom,
			bottom.Add(refDir.Scale(op.BottomRadius)),
			top.Add(refDir.Scale(op.TopRadius)),
			top,
		}
	}

	wid, err := NewMakeWire(profile, true).Execute(store)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building profile wire", err)
	}
	fid, err := NewMakeFace(wid, nil).Execute(store)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building profile face", err)
	}
	sid, err := NewRevolve(fid, op.Origin, axis).Execute(store)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "revolving profile", err)
	}
	return sid, nil
}
