package construct

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// MakeSphere builds a full spherical shell of the given Radius
// centered at Center, bound to a true geom.Sphere surface split into
// two hemispherical faces that share a single equatorial seam edge.
//
// This departs from a cone-faceted approximation: the kernel's
// geom.Sphere already models a true spherical surface, so there is no
// reason to approximate it with ruled cone strips.
type MakeSphere struct {
	Center geom.Point3
	Axis   geom.Vec3 // polar axis; defaults to +Z if zero
	Radius float64
}

// NewMakeSphere builds a MakeSphere operation.
func NewMakeSphere(center geom.Point3, axis geom.Vec3, radius float64) MakeSphere {
	return MakeSphere{Center: center, Axis: axis, Radius: radius}
}

// Execute builds the sphere. Returns errs.OperationError wrapping
// geom.ErrDegenerate if Radius is non-positive.
func (op MakeSphere) Execute(store *topo.Store) (topo.SolidId, error) {
	const name = "MakeSphere"
	if op.Radius <= geom.Tolerance {
		return topo.SolidId{}, errs.Wrap(name, errs.InvalidInput, "radius must be positive", geom.ErrDegenerate)
	}
	axis := op.Axis
	if axis.IsZero() {
		axis = geom.Vec3{Z: 1}
	}
	axis = axis.Normalize()
	refDir := arbitraryPerpendicular(axis)

	sphere, err := geom.NewSphere(op.Center, axis, refDir, op.Radius)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building sphere surface", err)
	}

	seamVertex := store.AddVertex(topo.Vertex{Point: op.Center.Add(refDir.Scale(op.Radius))})
	equator, err := geom.NewCircle(op.Center, op.Radius, axis, refDir)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "building equator", err)
	}
	equatorEdge := store.AddEdge(topo.Edge{Curve: equator, Start: seamVertex, End: seamVertex})

	// North face covers the pole at +Axis, bounded below by the equator
	// traversed in its natural sense; south covers the pole at -Axis,
	// bounded above by the equator traversed in reverse, so the two
	// share the seam with opposite orientation.
	northWire := store.AddWire(topo.Wire{Edges: []topo.OrientedEdge{{Edge: equatorEdge, Reversed: false}}})
	southWire := store.AddWire(topo.Wire{Edges: []topo.OrientedEdge{{Edge: equatorEdge, Reversed: true}}})

	northFace := store.AddFace(topo.Face{Surface: sphere, Outer: northWire, SameSense: true})
	southFace := store.AddFace(topo.Face{Surface: sphere, Outer: southWire, SameSense: true})

	shell := store.AddShell(topo.Shell{Faces: []topo.FaceId{northFace, southFace}})
	solid := store.AddSolid(topo.Solid{Outer: shell})
	return solid, nil
}
