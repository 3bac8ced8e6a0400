package geom

import "math"

// Torus is a ring surface: Evaluate(u, v) sweeps a tube of MinorRadius
// around a circle of MajorRadius centered at Center in the
// (RefDir, Binormal) plane, u indexing position around the major
// circle and v indexing position around the minor tube cross-section.
type Torus struct {
	Center      Point3
	Axis        Vec3 // unit axis of revolution
	RefDir      Vec3 // unit reference direction, u = 0
	MajorRadius float64
	MinorRadius float64
}

// NewTorus builds a Torus. Returns ErrDegenerate if either radius is
// non-positive or MinorRadius >= MajorRadius (self-intersecting tube),
// ErrZeroVector if axis or refDir is degenerate, and ErrDegenerate if
// they are not perpendicular within Tolerance.
func NewTorus(center Point3, axis, refDir Vec3, majorRadius, minorRadius float64) (Torus, error) {
	if majorRadius <= Tolerance || minorRadius <= Tolerance || minorRadius >= majorRadius {
		return Torus{}, ErrDegenerate
	}
	if axis.IsZero() || refDir.IsZero() {
		return Torus{}, ErrZeroVector
	}
	axis = axis.Normalize()
	refDir = refDir.Normalize()
	if abs(axis.Dot(refDir)) > Tolerance {
		return Torus{}, ErrDegenerate
	}
	return Torus{Center: center, Axis: axis, RefDir: refDir, MajorRadius: majorRadius, MinorRadius: minorRadius}, nil
}

func (t Torus) binormal() Vec3 { return t.Axis.Cross(t.RefDir) }

// ringCenter returns the point on the major circle at angle u.
func (t Torus) ringCenter(u float64) (Point3, Vec3) {
	b := t.binormal()
	radial := t.RefDir.Scale(math.Cos(u)).Add(b.Scale(math.Sin(u)))
	return t.Center.Add(radial.Scale(t.MajorRadius)), radial
}

// Evaluate implements Surface.
func (t Torus) Evaluate(u, v float64) Point3 {
	ring, radial := t.ringCenter(u)
	tube := radial.Scale(math.Cos(v)).Add(t.Axis.Scale(math.Sin(v)))
	return ring.Add(tube.Scale(t.MinorRadius))
}

// Normal implements Surface.
func (t Torus) Normal(u, v float64) Vec3 {
	_, radial := t.ringCenter(u)
	return radial.Scale(math.Cos(v)).Add(t.Axis.Scale(math.Sin(v))).Normalize()
}

// Domain implements Surface: both parameters wrap a full turn.
func (t Torus) Domain() SurfaceDomain {
	return SurfaceDomain{0, 2 * math.Pi, 0, 2 * math.Pi}
}

// Inverse implements InvertibleSurface.
func (t Torus) Inverse(p Point3) (u, v float64, err error) {
	dp := p.Sub(t.Center)
	axial := dp.Dot(t.Axis)
	equatorial := dp.Sub(t.Axis.Scale(axial))
	if equatorial.IsZero() {
		return 0, 0, ErrDegenerate
	}
	b := t.binormal()
	u = math.Atan2(equatorial.Dot(b), equatorial.Dot(t.RefDir))
	if u < 0 {
		u += 2 * math.Pi
	}
	_, radial := t.ringCenter(u)
	ringDist := equatorial.Norm() - t.MajorRadius
	v = math.Atan2(axial, ringDist)
	_ = radial
	if v < 0 {
		v += 2 * math.Pi
	}
	return u, v, nil
}
