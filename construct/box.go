package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// MakeBox builds an axis-aligned rectangular box solid with Origin at
// its minimum corner and the given extents along X, Y, and Z.
type MakeBox struct {
	Origin     geom.Point3
	DX, DY, DZ float64
}

// NewMakeBox builds a MakeBox operation.
func NewMakeBox(origin geom.Point3, dx, dy, dz float64) MakeBox {
	return MakeBox{Origin: origin, DX: dx, DY: dy, DZ: dz}
}

// Execute builds the box by constructing its base rectangle as a wire
// and face, then extruding it along Z. Returns errs.OperationError
// wrapping ErrDegenerateSweep if any extent is non-positive.
func (op MakeBox) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "MakeBox"
	if op.DX <= geom.Tolerance || op.DY <= geom.Tolerance || op.DZ <= geom.Tolerance {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "extents must be positive", ErrDegenerateSweep)
	}

	o := op.Origin
	points := []geom.Point3{
		o,
		{X: o.X + op.DX, Y: o.Y, Z: o.Z},
		{X: o.X + op.DX, Y: o.Y + op.DY, Z: o.Z},
		{X: o.X, Y: o.Y + op.DY, Z: o.Z},
	}

	wid, err := NewMakeWire(points, true).Execute(store)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building base wire", err)
	}
	fid, err := NewMakeFace(wid, nil).Execute(store)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building base face", err)
	}

	sid, err := NewExtrude(fid, geom.Vec3{Z: op.DZ}).Execute(store)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "extruding base face", err)
	}
	return sid, nil
}
