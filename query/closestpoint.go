package query

import (
	"math"

	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// SurfacePoint is the result of a closest-point-on-surface query.
type SurfacePoint struct {
	U, V     float64
	Point    geom.Point3
	Distance float64
}

// ClosestPointOnSurface finds the closest point on a face's surface to
// Query, by analytic projection for Plane, Cylinder, Sphere, Cone, and
// Torus.
type ClosestPointOnSurface struct {
	Face  topo.FaceId
	Query geom.Point3
}

// NewClosestPointOnSurface builds a ClosestPointOnSurface query.
func NewClosestPointOnSurface(face topo.FaceId, query geom.Point3) ClosestPointOnSurface {
	return ClosestPointOnSurface{Face: face, Query: query}
}

// Execute returns the closest point. Returns errs.OperationError
// wrapping ErrUnsupportedSurface for any surface kind other than
// Plane, Cylinder, Sphere, Cone, or Torus.
func (q ClosestPointOnSurface) Execute(store *topo.Store) (SurfacePoint, error) {
	const name = "ClosestPointOnSurface"

	f, err := store.Face(q.Face)
	if err != nil {
		return SurfacePoint{}, errs.Wrap(name, errs.NotFound, "face", err)
	}

	switch s := f.Surface.(type) {
	case geom.Plane:
		return closestOnPlane(s, q.Query), nil
	case geom.Cylinder:
		return closestOnCylinder(s, q.Query), nil
	case geom.Sphere:
		return closestOnSphere(s, q.Query), nil
	case geom.Cone:
		return closestOnCone(s, q.Query), nil
	case geom.Torus:
		return closestOnTorus(s, q.Query), nil
	default:
		return SurfacePoint{}, errs.Wrap(name, errs.InvalidInput, "surface", ErrUnsupportedSurface)
	}
}

func closestOnPlane(plane geom.Plane, query geom.Point3) SurfacePoint {
	u, v, _ := plane.Inverse(query)
	point := plane.Evaluate(u, v)
	return SurfacePoint{U: u, V: v, Point: point, Distance: query.Sub(point).Norm()}
}

func closestOnCylinder(cyl geom.Cylinder, query geom.Point3) SurfacePoint {
	dp := query.Sub(cyl.Origin)
	v := dp.Dot(cyl.Axis)
	foot := cyl.Origin.Add(cyl.Axis.Scale(v))
	radial := query.Sub(foot)

	var point geom.Point3
	if radial.IsZero() {
		point = foot.Add(cyl.RefDir.Scale(cyl.Radius))
	} else {
		point = foot.Add(radial.Normalize().Scale(cyl.Radius))
	}
	u, vParam, _ := cyl.Inverse(point)
	return SurfacePoint{U: u, V: vParam, Point: point, Distance: query.Sub(point).Norm()}
}

func closestOnSphere(sph geom.Sphere, query geom.Point3) SurfacePoint {
	dp := query.Sub(sph.Center)
	var point geom.Point3
	if dp.IsZero() {
		point = sph.Center.Add(sph.RefDir.Scale(sph.Radius))
	} else {
		point = sph.Center.Add(dp.Normalize().Scale(sph.Radius))
	}
	u, v, _ := sph.Inverse(point)
	return SurfacePoint{U: u, V: v, Point: point, Distance: query.Sub(point).Norm()}
}

func closestOnCone(cone geom.Cone, query geom.Point3) SurfacePoint {
	dp := query.Sub(cone.Apex)
	axisProj := dp.Dot(cone.Axis)
	radial := dp.Sub(cone.Axis.Scale(axisProj))

	sa, ca := math.Sin(cone.HalfAngle), math.Cos(cone.HalfAngle)
	var radialDir geom.Vec3
	if radial.IsZero() {
		radialDir = cone.RefDir
	} else {
		radialDir = radial.Normalize()
	}
	genDir := cone.Axis.Scale(ca).Add(radialDir.Scale(sa))

	s := dp.Dot(genDir)
	if s < 0 {
		s = 0
	}
	point := cone.Apex.Add(genDir.Scale(s))
	u, v, err := cone.Inverse(point)
	if err != nil {
		u, v = 0, 0
	}
	return SurfacePoint{U: u, V: v, Point: point, Distance: query.Sub(point).Norm()}
}

func closestOnTorus(torus geom.Torus, query geom.Point3) SurfacePoint {
	u, v, err := torus.Inverse(query)
	if err != nil {
		return SurfacePoint{}
	}
	point := torus.Evaluate(u, v)
	return SurfacePoint{U: u, V: v, Point: point, Distance: query.Sub(point).Norm()}
}

// ClosestPointOnCurve finds the closest point on an edge's curve to
// Query by evaluating the curve at uniformly spaced parameters and
// keeping the nearest sample; the result is not refined between
// samples.
type ClosestPointOnCurve struct {
	Edge  topo.EdgeId
	Query geom.Point3
}

// NewClosestPointOnCurve builds a ClosestPointOnCurve query.
func NewClosestPointOnCurve(edge topo.EdgeId, query geom.Point3) ClosestPointOnCurve {
	return ClosestPointOnCurve{Edge: edge, Query: query}
}

// CurvePoint is the result of a closest-point-on-curve query.
type CurvePoint struct {
	T        float64
	Point    geom.Point3
	Distance float64
}

// Execute samples the curve at 257 evenly spaced parameters and returns
// the nearest sample; adequate since every curve variant here is smooth
// and monotonically parametrized.
func (q ClosestPointOnCurve) Execute(store *topo.Store) (CurvePoint, error) {
	const name = "ClosestPointOnCurve"

	e, err := store.Edge(q.Edge)
	if err != nil {
		return CurvePoint{}, errs.Wrap(name, errs.NotFound, "edge", err)
	}

	d := e.Curve.Domain()
	const samples = 256
	tMin, tMax := d.TMin, d.TMax
	if math.IsInf(tMin, 0) || math.IsInf(tMax, 0) {
		return CurvePoint{}, errs.Wrap(name, errs.InvalidInput, "curve", ErrUnsupportedSurface)
	}

	best := CurvePoint{Distance: math.Inf(1)}
	for i := 0; i <= samples; i++ {
		t := tMin + (tMax-tMin)*float64(i)/samples
		p := e.Curve.Evaluate(t)
		dist := q.Query.Sub(p).Norm()
		if dist < best.Distance {
			best = CurvePoint{T: t, Point: p, Distance: dist}
		}
	}
	return best, nil
}
