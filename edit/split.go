package edit

import (
	"math"

	"github.com/brepkit/kernel/boolean"
	"github.com/brepkit/kernel/construct"
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// Split cuts a solid by an infinite plane (given by PlaneOrigin and
// PlaneNormal) into the piece on the positive side of the normal and
// the piece on the negative side, built by intersecting the solid
// against two oversized axis-aligned halfspace boxes.
type Split struct {
	Solid       topo.SolidId
	PlaneOrigin geom.Point3
	PlaneNormal geom.Vec3
}

// NewSplit builds a Split operation.
func NewSplit(solid topo.SolidId, planeOrigin geom.Point3, planeNormal geom.Vec3) Split {
	return Split{Solid: solid, PlaneOrigin: planeOrigin, PlaneNormal: planeNormal}
}

// Execute returns (positive, negative), the two fragments of the
// solid on each side of the plane. The cutting boxes are exact
// halfspaces when PlaneNormal is axis-aligned; for a tilted normal the
// plane is snapped to its dominant axis, an approximation inherent to
// building the cut from axis-aligned boxes.
//
// Returns errs.OperationError wrapping ErrZeroNormal if PlaneNormal is
// the zero vector.
func (op Split) Execute(store *topo.Store) (positive, negative topo.SolidId, err error) {
	const name = "Split"

	if op.PlaneNormal.IsZero() {
		return topo.SolidId{}, topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "plane normal", ErrZeroNormal)
	}

	min, max, err := solidBoundingBox(store, op.Solid)
	if err != nil {
		return topo.SolidId{}, topo.SolidId{}, errs.Wrap(name, errs.NotFound, "solid", err)
	}

	diagonal := max.Sub(min).Norm()
	if diagonal < geom.Tolerance {
		diagonal = 1
	}
	pad := 2 * diagonal

	axis, sign := dominantAxis(op.PlaneNormal)
	cut := coordAlong(op.PlaneOrigin, axis)

	lo := geom.Point3{X: min.X - pad, Y: min.Y - pad, Z: min.Z - pad}
	hi := geom.Point3{X: max.X + pad, Y: max.Y + pad, Z: max.Z + pad}

	// boxLow covers [lo.axis, cut]; boxHigh covers [cut, hi.axis]. Both
	// span the full padded extent on the other two axes.
	lowOrigin, lowHi := lo, hi
	setCoord(&lowHi, axis, cut)

	highOrigin, highHi := lo, hi
	setCoord(&highOrigin, axis, cut)

	posLo, posHi := highOrigin, highHi
	negLo, negHi := lowOrigin, lowHi
	if sign < 0 {
		posLo, posHi, negLo, negHi = negLo, negHi, posLo, posHi
	}

	positiveBox, err := construct.NewMakeBox(posLo, posHi.X-posLo.X, posHi.Y-posLo.Y, posHi.Z-posLo.Z).Execute(store)
	if err != nil {
		return topo.SolidId{}, topo.SolidId{}, errs.Wrap(name, errs.Failed, "building positive halfspace box", err)
	}
	negativeBox, err := construct.NewMakeBox(negLo, negHi.X-negLo.X, negHi.Y-negLo.Y, negHi.Z-negLo.Z).Execute(store)
	if err != nil {
		return topo.SolidId{}, topo.SolidId{}, errs.Wrap(name, errs.Failed, "building negative halfspace box", err)
	}

	positive, err = boolean.Intersect(store, op.Solid, positiveBox)
	if err != nil {
		return topo.SolidId{}, topo.SolidId{}, errs.Wrap(name, errs.Failed, "intersecting positive side", err)
	}
	negative, err = boolean.Intersect(store, op.Solid, negativeBox)
	if err != nil {
		return topo.SolidId{}, topo.SolidId{}, errs.Wrap(name, errs.Failed, "intersecting negative side", err)
	}
	return positive, negative, nil
}

// dominantAxis returns which of X(0)/Y(1)/Z(2) has the largest
// magnitude in n, and the sign of that component.
func dominantAxis(n geom.Vec3) (axis int, sign float64) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return 0, sign3(n.X)
	case ay >= ax && ay >= az:
		return 1, sign3(n.Y)
	default:
		return 2, sign3(n.Z)
	}
}

func sign3(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func coordAlong(p geom.Point3, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func setCoord(p *geom.Point3, axis int, v float64) {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
}

// solidBoundingBox returns the min/max corners of the axis-aligned box
// containing every vertex reachable from solid's outer shell and void
// shells.
func solidBoundingBox(store *topo.Store, sid topo.SolidId) (min, max geom.Point3, err error) {
	s, err := store.Solid(sid)
	if err != nil {
		return geom.Point3{}, geom.Point3{}, err
	}

	first := true
	visit := func(shid topo.ShellId) error {
		sh, err := store.Shell(shid)
		if err != nil {
			return err
		}
		for _, fid := range sh.Faces {
			f, err := store.Face(fid)
			if err != nil {
				return err
			}
			wires := append([]topo.WireId{f.Outer}, f.Inners...)
			for _, wid := range wires {
				pts, err := wirePoints3D(store, wid)
				if err != nil {
					return err
				}
				for _, p := range pts {
					if first {
						min, max = p, p
						first = false
						continue
					}
					min = geom.Point3{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
					max = geom.Point3{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
				}
			}
		}
		return nil
	}

	if err := visit(s.Outer); err != nil {
		return geom.Point3{}, geom.Point3{}, err
	}
	for _, void := range s.Voids {
		if err := visit(void); err != nil {
			return geom.Point3{}, geom.Point3{}, err
		}
	}
	return min, max, nil
}
