package geom

import "math"

// Cone is a right circular conical surface with its apex at Apex:
// Evaluate(u, v) = Apex + v*Axis + v*tan(HalfAngle)*(cos(u)*RefDir +
// sin(u)*Binormal), u in [0, 2*pi), v >= 0 measured along the axis
// from the apex.
type Cone struct {
	Apex      Point3
	Axis      Vec3 // unit axis direction, apex toward the growing end
	RefDir    Vec3 // unit reference direction, perpendicular to Axis
	HalfAngle float64
}

// NewCone builds a Cone. Returns ErrDegenerate if HalfAngle is outside
// (0, pi/2), ErrZeroVector if axis or refDir is degenerate, and
// ErrDegenerate if they are not perpendicular within Tolerance.
func NewCone(apex Point3, axis, refDir Vec3, halfAngle float64) (Cone, error) {
	if halfAngle <= Tolerance || halfAngle >= math.Pi/2-Tolerance {
		return Cone{}, ErrDegenerate
	}
	if axis.IsZero() || refDir.IsZero() {
		return Cone{}, ErrZeroVector
	}
	axis = axis.Normalize()
	refDir = refDir.Normalize()
	if abs(axis.Dot(refDir)) > Tolerance {
		return Cone{}, ErrDegenerate
	}
	return Cone{Apex: apex, Axis: axis, RefDir: refDir, HalfAngle: halfAngle}, nil
}

func (c Cone) binormal() Vec3 { return c.Axis.Cross(c.RefDir) }

// Evaluate implements Surface.
func (c Cone) Evaluate(u, v float64) Point3 {
	b := c.binormal()
	r := v * math.Tan(c.HalfAngle)
	radial := c.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u))).Scale(r)
	return c.Apex.Add(c.Axis.Scale(v)).Add(radial)
}

// Normal implements Surface: perpendicular to the local generator
// line, tilted away from the axis by HalfAngle.
func (c Cone) Normal(u, v float64) Vec3 {
	b := c.binormal()
	radial := c.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u)))
	n := radial.Scale(math.Cos(c.HalfAngle)).Sub(c.Axis.Scale(math.Sin(c.HalfAngle)))
	return n.Normalize()
}

// Domain implements Surface: u wraps a full turn, v ranges over
// [0, +inf) from the apex.
func (c Cone) Domain() SurfaceDomain {
	return SurfaceDomain{0, 2 * math.Pi, 0, math.Inf(1)}
}

// Inverse implements InvertibleSurface. Returns ErrDegenerate at the
// apex itself, where u is undefined.
func (c Cone) Inverse(p Point3) (u, v float64, err error) {
	dp := p.Sub(c.Apex)
	v = dp.Dot(c.Axis)
	radial := dp.Sub(c.Axis.Scale(v))
	if radial.IsZero() {
		return 0, v, ErrDegenerate
	}
	b := c.binormal()
	u = math.Atan2(radial.Dot(b), radial.Dot(c.RefDir))
	if u < 0 {
		u += 2 * math.Pi
	}
	return u, v, nil
}
