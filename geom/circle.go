package geom

import "math"

// Circle is a full closed circular curve: Evaluate(t) = Center +
// r*cos(t)*RefDir + r*sin(t)*Binormal, t in [0, 2*pi). Distinct from
// Arc because a closed curve has no start/end vertex for wire
// continuity purposes.
type Circle struct {
	Center Point3
	Radius float64
	Axis   Vec3
	RefDir Vec3
}

// NewCircle builds a Circle with the same validation as NewArc.
func NewCircle(center Point3, radius float64, axis, refDir Vec3) (Circle, error) {
	if radius <= Tolerance {
		return Circle{}, ErrDegenerate
	}
	if axis.IsZero() || refDir.IsZero() {
		return Circle{}, ErrZeroVector
	}
	axis = axis.Normalize()
	refDir = refDir.Normalize()
	if abs(axis.Dot(refDir)) > Tolerance {
		return Circle{}, ErrDegenerate
	}
	return Circle{Center: center, Radius: radius, Axis: axis, RefDir: refDir}, nil
}

func (c Circle) binormal() Vec3 { return c.Axis.Cross(c.RefDir) }

// Evaluate implements Curve.
func (c Circle) Evaluate(t float64) Point3 {
	b := c.binormal()
	radial := c.RefDir.Scale(math.Cos(t)).Add(b.Scale(math.Sin(t)))
	return c.Center.Add(radial.Scale(c.Radius))
}

// Tangent implements Curve.
func (c Circle) Tangent(t float64) Vec3 {
	b := c.binormal()
	d := c.RefDir.Scale(-math.Sin(t)).Add(b.Scale(math.Cos(t)))
	return d.Normalize()
}

// Domain implements Curve.
func (c Circle) Domain() CurveDomain { return CurveDomain{0, 2 * math.Pi} }

// Inverse implements InvertibleCurve.
func (c Circle) Inverse(p Point3) (float64, error) {
	dp := p.Sub(c.Center)
	b := c.binormal()
	t := math.Atan2(dp.Dot(b), dp.Dot(c.RefDir))
	if t < 0 {
		t += 2 * math.Pi
	}
	return t, nil
}

// Length returns the circumference.
func (c Circle) Length() float64 { return 2 * math.Pi * c.Radius }
