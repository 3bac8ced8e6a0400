package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneRoundTrip(t *testing.T) {
	p, err := NewPlane(Point3{1, 2, 3}, Vec3{0, 0, 1})
	require.NoError(t, err)

	pt := p.Evaluate(2, -1)
	assert.InDelta(t, 0, p.SignedDistance(pt), Tolerance)

	u, v, err := p.Inverse(pt)
	require.NoError(t, err)
	assert.InDelta(t, 2, u, Tolerance)
	assert.InDelta(t, -1, v, Tolerance)
}

func TestNewPlaneZeroNormal(t *testing.T) {
	_, err := NewPlane(Point3{}, Vec3{})
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestCylinderRoundTrip(t *testing.T) {
	c, err := NewCylinder(Point3{0, 0, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 4)
	require.NoError(t, err)

	for _, uv := range [][2]float64{{0, 0}, {1.2, 3}, {math.Pi, -2}} {
		p := c.Evaluate(uv[0], uv[1])
		assert.InDelta(t, 4, p.Sub(Point3{0, 0, p.Z}).Norm(), 1e-9)
		u, v, err := c.Inverse(p)
		require.NoError(t, err)
		assert.InDelta(t, uv[1], v, 1e-9)
		assert.InDelta(t, math.Mod(uv[0]+2*math.Pi, 2*math.Pi), math.Mod(u+2*math.Pi, 2*math.Pi), 1e-9)
	}
}

func TestNewCylinderDegenerate(t *testing.T) {
	_, err := NewCylinder(Point3{}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, -1)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestConeApexAndInverse(t *testing.T) {
	c, err := NewCone(Point3{0, 0, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, math.Pi/4)
	require.NoError(t, err)

	p := c.Evaluate(1.0, 5)
	u, v, err := c.Inverse(p)
	require.NoError(t, err)
	assert.InDelta(t, 5, v, 1e-9)
	assert.InDelta(t, 1.0, u, 1e-9)

	_, _, err = c.Inverse(Point3{0, 0, 0})
	assert.ErrorIs(t, err, ErrDegenerate, "apex has no well-defined u")
}

func TestNewConeBadHalfAngle(t *testing.T) {
	_, err := NewCone(Point3{}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, math.Pi/2)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = NewCone(Point3{}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 0)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestSphereRoundTripAndPoles(t *testing.T) {
	s, err := NewSphere(Point3{1, 1, 1}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 3)
	require.NoError(t, err)

	for _, uv := range [][2]float64{{0, 0}, {1.1, 0.4}, {4, -1.0}} {
		p := s.Evaluate(uv[0], uv[1])
		assert.InDelta(t, 3, p.Distance(s.Center), 1e-9)
		u, v, err := s.Inverse(p)
		require.NoError(t, err)
		assert.InDelta(t, uv[1], v, 1e-9)
		assert.InDelta(t, math.Mod(uv[0]+2*math.Pi, 2*math.Pi), math.Mod(u+2*math.Pi, 2*math.Pi), 1e-9)
	}

	pole := s.Evaluate(0, math.Pi/2)
	_, _, err = s.Inverse(pole)
	assert.ErrorIs(t, err, ErrDegenerate, "pole has no well-defined longitude")
}

func TestNewSphereDegenerate(t *testing.T) {
	_, err := NewSphere(Point3{}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 0)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestTorusSurfaceLiesAtExpectedDistance(t *testing.T) {
	tr, err := NewTorus(Point3{}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 5, 1.5)
	require.NoError(t, err)

	p := tr.Evaluate(0.9, 2.3)
	ring, _ := tr.ringCenter(0.9)
	assert.InDelta(t, 1.5, p.Distance(ring), 1e-9)
}

func TestNewTorusMinorExceedsMajor(t *testing.T) {
	_, err := NewTorus(Point3{}, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 2, 3)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestIntersectPlanePlane(t *testing.T) {
	a, err := NewPlane(Point3{0, 0, 0}, Vec3{0, 0, 1})
	require.NoError(t, err)
	b, err := NewPlane(Point3{0, 0, 0}, Vec3{1, 0, 0})
	require.NoError(t, err)

	line, err := IntersectPlanePlane(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, a.SignedDistance(line.Origin), 1e-9)
	assert.InDelta(t, 0, b.SignedDistance(line.Origin), 1e-9)
	assert.InDelta(t, 1, abs(line.Dir.Normalize().Dot(Vec3{0, 1, 0})), 1e-9)
}

func TestIntersectPlanePlaneParallel(t *testing.T) {
	a, err := NewPlane(Point3{0, 0, 0}, Vec3{0, 0, 1})
	require.NoError(t, err)
	b, err := NewPlane(Point3{0, 0, 5}, Vec3{0, 0, 1})
	require.NoError(t, err)

	_, err = IntersectPlanePlane(a, b)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestIntersectLinePlane(t *testing.T) {
	l, err := NewLine(Point3{0, 0, -5}, Vec3{0, 0, 1}, -100, 100)
	require.NoError(t, err)
	p, err := NewPlane(Point3{0, 0, 2}, Vec3{0, 0, 1})
	require.NoError(t, err)

	tt, err := IntersectLinePlane(l, p)
	require.NoError(t, err)
	assert.InDelta(t, 7, tt, 1e-9)
}

func TestClosestPointOnPlane(t *testing.T) {
	plane, err := NewPlane(Point3{0, 0, 0}, Vec3{0, 0, 1})
	require.NoError(t, err)
	cp := ClosestPointOnPlane(Point3{3, 4, 9}, plane)
	assert.True(t, cp.ApproxEqual(Point3{3, 4, 0}))
}
