package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// MakeCylinder builds a right circular cylinder of the given Radius
// and Height, centered on an axis through Origin in direction Axis,
// by revolving a rectangular profile a full turn.
type MakeCylinder struct {
	Origin         geom.Point3
	Axis           geom.Vec3
	Radius, Height float64
}

// NewMakeCylinder builds a MakeCylinder operation.
func NewMakeCylinder(origin geom.Point3, axis geom.Vec3, radius, height float64) MakeCylinder {
	return MakeCylinder{Origin: origin, Axis: axis, Radius: radius, Height: height}
}

// Execute builds the cylinder's rectangular profile (one side on the
// axis, so Revolve collapses it to a degenerate edge and produces
// exactly three faces: two planar caps and one cylindrical side) and
// revolves it. Returns errs.OperationError wrapping geom.ErrZeroVector
// if Axis is zero, or ErrDegenerateSweep if Radius or Height is
// non-positive.
func (op MakeCylinder) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "MakeCylinder"
	if op.Axis.IsZero() {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "axis must be non-zero", geom.ErrZeroVector)
	}
	if op.Radius <= geom.Tolerance || op.Height <= geom.Tolerance {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "radius and height must be positive", ErrDegenerateSweep)
	}
	axis := op.Axis.Normalize()
	refDir := arbitraryPerpendicular(axis)

	bottom := op.Origin
	top := op.Origin.Add(axis.Scale(op.Height))
	profile := []geom.Point3{
		bottom,
		bottom.Add(refDir.Scale(op.Radius)),
		top.Add(refDir.Scale(op.Radius)),
		top,
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

// arbitraryPerpendicular returns a unit vector perpendicular to the
// given unit axis, using the world X axis as a cross-product seed, or
// Y when axis is within about 25 degrees of X.
func arbitraryPerpendicular(axis geom.Vec3) geom.Vec3 {
	seed := geom.Vec3{X: 1}
	if abs(axis.Dot(seed)) > 0.9 {
		seed = geom.Vec3{Y: 1}
	}
	return axis.Cross(seed).Normalize()
}
