package geom

import "math"

// Sphere is a full spherical surface parameterized by longitude u in
// [0, 2*pi) around Axis and latitude v in [-pi/2, pi/2] from the
// equator plane (RefDir, Axis x RefDir) up to the pole at +Axis.
type Sphere struct {
	Center Point3
	Axis   Vec3 // unit polar axis, toward the v = +pi/2 pole
	RefDir Vec3 // unit equatorial reference direction, u = 0
	Radius float64
}

// NewSphere builds a Sphere. Returns ErrDegenerate if radius is
// non-positive, ErrZeroVector if axis or refDir is degenerate, and
// ErrDegenerate if they are not perpendicular within Tolerance.
func NewSphere(center Point3, axis, refDir Vec3, radius float64) (Sphere, error) {
	if radius <= Tolerance {
		return Sphere{}, ErrDegenerate
	}
	if axis.IsZero() || refDir.IsZero() {
		return Sphere{}, ErrZeroVector
	}
	axis = axis.Normalize()
	refDir = refDir.Normalize()
	if abs(axis.Dot(refDir)) > Tolerance {
		return Sphere{}, ErrDegenerate
	}
	return Sphere{Center: center, Axis: axis, RefDir: refDir, Radius: radius}, nil
}

func (s Sphere) binormal() Vec3 { return s.Axis.Cross(s.RefDir) }

// Evaluate implements Surface.
func (s Sphere) Evaluate(u, v float64) Point3 {
	b := s.binormal()
	equatorial := s.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u)))
	dir := equatorial.Scale(math.Cos(v)).Add(s.Axis.Scale(math.Sin(v)))
	return s.Center.Add(dir.Scale(s.Radius))
}

// Normal implements Surface: the outward radial direction, identical
// in shape to Evaluate's direction term since a sphere's normal always
// points away from its center.
func (s Sphere) Normal(u, v float64) Vec3 {
	b := s.binormal()
	equatorial := s.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u)))
	return equatorial.Scale(math.Cos(v)).Add(s.Axis.Scale(math.Sin(v))).Normalize()
}

// Domain implements Surface.
func (s Sphere) Domain() SurfaceDomain {
	return SurfaceDomain{0, 2 * math.Pi, -math.Pi / 2, math.Pi / 2}
}

// Inverse implements InvertibleSurface. Returns ErrDegenerate at
// either pole, where u is undefined.
func (s Sphere) Inverse(p Point3) (u, v float64, err error) {
	dp := p.Sub(s.Center)
	r := dp.Norm()
	if r < Tolerance {
		return 0, 0, ErrDegenerate
	}
	dir := dp.Scale(1 / r)
	v = math.Asin(clampUnit(dir.Dot(s.Axis)))
	equatorial := dir.Sub(s.Axis.Scale(dir.Dot(s.Axis)))
	if equatorial.IsZero() {
		return 0, v, ErrDegenerate
	}
	b := s.binormal()
	u = math.Atan2(equatorial.Dot(b), equatorial.Dot(s.RefDir))
	if u < 0 {
		u += 2 * math.Pi
	}
	return u, v, nil
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
