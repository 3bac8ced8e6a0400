package construct

import (
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// requireLinearWire returns ErrNonLinearProfile if any edge of w is
// not a geom.Line — Extrude and Revolve only accept straight-edged
// profiles, since a swept curved edge would need a doubly-curved
// surface type this kernel does not model.
func requireLinearWire(store *topo.Store, w topo.Wire) error {
	for _, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return err
		}
		if _, ok := e.Curve.(geom.Line); !ok {
			return ErrNonLinearProfile
		}
	}
	return nil
}

// radialDecompose splits p, relative to an axis through axisOrigin in
// direction axisDir (assumed unit), into its axial coordinate z, its
// radial distance r, and — when r exceeds geom.Tolerance — its unit
// radial direction.
func radialDecompose(axisOrigin geom.Point3, axisDir geom.Vec3, p geom.Point3) (z, r float64, radialDir geom.Vec3) {
	dp := p.Sub(axisOrigin)
	z = dp.Dot(axisDir)
	radial := dp.Sub(axisDir.Scale(z))
	r = radial.Norm()
	if r > geom.Tolerance {
		radialDir = radial.Scale(1 / r)
	}
	return z, r, radialDir
}

// pickRefDir scans a wire's vertices for the first one lying off the
// axis and returns its radial direction, used as the common u=0
// reference for every revolved surface in the solid so their
// parameterizations agree at the seam. Returns ErrDegenerateSweep if
// every vertex lies on the axis.
func pickRefDir(store *topo.Store, w topo.Wire, axisOrigin geom.Point3, axisDir geom.Vec3) (geom.Vec3, error) {
	for _, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return geom.Vec3{}, err
		}
		v, err := store.Vertex(oe.StartVertex(e))
		if err != nil {
			return geom.Vec3{}, err
		}
		_, r, dir := radialDecompose(axisOrigin, axisDir, v.Point)
		if r > geom.Tolerance {
			return dir, nil
		}
	}
	return geom.Vec3{}, ErrDegenerateSweep
}
