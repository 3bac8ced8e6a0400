package geom

import "math"

// Cylinder is a right circular cylindrical surface: Evaluate(u, v) =
// Origin + v*Axis + Radius*(cos(u)*RefDir + sin(u)*Binormal), u in
// [0, 2*pi), v unbounded along the axis.
type Cylinder struct {
	Origin Point3
	Axis   Vec3 // unit axis direction
	RefDir Vec3 // unit reference direction at u=0, perpendicular to Axis
	Radius float64
}

// NewCylinder builds a Cylinder. Returns ErrDegenerate if radius is
// non-positive, ErrZeroVector if axis or refDir is degenerate, and
// ErrDegenerate if they are not perpendicular within Tolerance.
func NewCylinder(origin Point3, axis, refDir Vec3, radius float64) (Cylinder, error) {
	if radius <= Tolerance {
		return Cylinder{}, ErrDegenerate
	}
	if axis.IsZero() || refDir.IsZero() {
		return Cylinder{}, ErrZeroVector
	}
	axis = axis.Normalize()
	refDir = refDir.Normalize()
	if abs(axis.Dot(refDir)) > Tolerance {
		return Cylinder{}, ErrDegenerate
	}
	return Cylinder{Origin: origin, Axis: axis, RefDir: refDir, Radius: radius}, nil
}

func (c Cylinder) binormal() Vec3 { return c.Axis.Cross(c.RefDir) }

// Evaluate implements Surface.
func (c Cylinder) Evaluate(u, v float64) Point3 {
	b := c.binormal()
	radial := c.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u))).Scale(c.Radius)
	return c.Origin.Add(c.Axis.Scale(v)).Add(radial)
}

// Normal implements Surface: the outward radial direction, independent of v.
func (c Cylinder) Normal(u, v float64) Vec3 {
	b := c.binormal()
	return c.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u))).Normalize()
}

// Domain implements Surface: u wraps a full turn, v is unbounded.
func (c Cylinder) Domain() SurfaceDomain {
	return SurfaceDomain{0, 2 * math.Pi, math.Inf(-1), math.Inf(1)}
}

// Inverse implements InvertibleSurface.
func (c Cylinder) Inverse(p Point3) (u, v float64, err error) {
	dp := p.Sub(c.Origin)
	v = dp.Dot(c.Axis)
	radial := dp.Sub(c.Axis.Scale(v))
	b := c.binormal()
	u = math.Atan2(radial.Dot(b), radial.Dot(c.RefDir))
	if u < 0 {
		u += 2 * math.Pi
	}
	return u, v, nil
}
