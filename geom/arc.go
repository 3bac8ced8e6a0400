package geom

import "math"

// Arc is a circular arc in 3D: Evaluate(t) = Center + r*cos(t)*RefDir +
// r*sin(t)*Binormal, for t in [TMin, TMax], where Binormal = Axis x RefDir.
// A full Arc over [0, 2*pi) is equivalent to a Circle; Circle is kept
// as a distinct variant because closed curves participate differently
// in wire continuity checks (no start/end vertex to match).
type Arc struct {
	Center Point3
	Radius float64
	Axis   Vec3 // unit normal of the arc's plane
	RefDir Vec3 // unit reference direction, t=0
	domain CurveDomain
}

// NewArc builds an Arc. Returns ErrDegenerate if radius is non-positive,
// ErrZeroVector if axis or refDir is degenerate, ErrDegenerate if axis
// and refDir are not perpendicular within Tolerance.
func NewArc(center Point3, radius float64, axis, refDir Vec3, tMin, tMax float64) (Arc, error) {
	if radius <= Tolerance {
		return Arc{}, ErrDegenerate
	}
	if axis.IsZero() || refDir.IsZero() {
		return Arc{}, ErrZeroVector
	}
	axis = axis.Normalize()
	refDir = refDir.Normalize()
	if abs(axis.Dot(refDir)) > Tolerance {
		return Arc{}, ErrDegenerate
	}
	return Arc{Center: center, Radius: radius, Axis: axis, RefDir: refDir, domain: CurveDomain{tMin, tMax}}, nil
}

func (a Arc) binormal() Vec3 { return a.Axis.Cross(a.RefDir) }

// Evaluate implements Curve.
func (a Arc) Evaluate(t float64) Point3 {
	b := a.binormal()
	radial := a.RefDir.Scale(math.Cos(t)).Add(b.Scale(math.Sin(t)))
	return a.Center.Add(radial.Scale(a.Radius))
}

// Tangent implements Curve.
func (a Arc) Tangent(t float64) Vec3 {
	b := a.binormal()
	d := a.RefDir.Scale(-math.Sin(t)).Add(b.Scale(math.Cos(t)))
	return d.Normalize()
}

// Domain implements Curve.
func (a Arc) Domain() CurveDomain { return a.domain }

// Inverse implements InvertibleCurve.
func (a Arc) Inverse(p Point3) (float64, error) {
	dp := p.Sub(a.Center)
	b := a.binormal()
	return math.Atan2(dp.Dot(b), dp.Dot(a.RefDir)), nil
}

// Length returns the arc length.
func (a Arc) Length() float64 { return a.Radius * (a.domain.TMax - a.domain.TMin) }
