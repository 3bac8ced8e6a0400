package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineEvaluateAndInverse(t *testing.T) {
	l, err := NewLine(Point3{0, 0, 0}, Vec3{1, 0, 0}, 0, 5)
	require.NoError(t, err)

	p := l.Evaluate(3)
	assert.InDelta(t, 3, p.X, Tolerance)

	back, err := l.Inverse(p)
	require.NoError(t, err)
	assert.InDelta(t, 3, back, Tolerance)

	assert.InDelta(t, 5, l.Length(), Tolerance)
}

func TestNewLineZeroDirection(t *testing.T) {
	_, err := NewLine(Point3{}, Vec3{}, 0, 1)
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestArcRoundTrip(t *testing.T) {
	a, err := NewArc(Point3{0, 0, 0}, 2, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 0, math.Pi)
	require.NoError(t, err)

	p := a.Evaluate(math.Pi / 2)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)

	tt, err := a.Inverse(p)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, tt, 1e-9)
	assert.InDelta(t, 2*math.Pi, 2*a.Length()/a.Radius, 1e-9)
}

func TestNewArcDegenerate(t *testing.T) {
	_, err := NewArc(Point3{}, 0, Vec3{0, 0, 1}, Vec3{1, 0, 0}, 0, math.Pi)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = NewArc(Point3{}, 1, Vec3{1, 0, 0}, Vec3{1, 0, 0}, 0, math.Pi)
	assert.ErrorIs(t, err, ErrDegenerate, "axis and refDir must be perpendicular")
}

func TestCircleClosedDomain(t *testing.T) {
	c, err := NewCircle(Point3{1, 1, 1}, 3, Vec3{0, 0, 1}, Vec3{1, 0, 0})
	require.NoError(t, err)
	d := c.Domain()
	assert.Equal(t, 0.0, d.TMin)
	assert.InDelta(t, 2*math.Pi, d.TMax, 1e-12)
	assert.InDelta(t, 2*math.Pi*3, c.Length(), 1e-9)

	p := c.Evaluate(0)
	assert.True(t, p.ApproxEqual(Point3{4, 1, 1}))
}

func TestEllipseInverseExact(t *testing.T) {
	e, err := NewEllipse(Point3{}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, 5, 2)
	require.NoError(t, err)

	for _, tt := range []float64{0, 0.7, math.Pi / 2, 2.1, 5.5} {
		p := e.Evaluate(tt)
		got, err := e.Inverse(p)
		require.NoError(t, err)
		assert.InDelta(t, tt, got, 1e-6)
	}
}

func TestNewEllipseDegenerate(t *testing.T) {
	_, err := NewEllipse(Point3{}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, 1, 2)
	assert.ErrorIs(t, err, ErrDegenerate, "semi-minor must not exceed semi-major")
}

func TestBSplineClampedEndpoints(t *testing.T) {
	pts := []Point3{{0, 0, 0}, {1, 2, 0}, {2, 2, 0}, {3, 0, 0}}
	knots := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	b, err := NewBSpline(3, pts, knots)
	require.NoError(t, err)

	d := b.Domain()
	assert.True(t, b.Evaluate(d.TMin).ApproxEqual(pts[0]))
	assert.True(t, b.Evaluate(d.TMax).ApproxEqual(pts[len(pts)-1]))
}

func TestBSplineInverseApprox(t *testing.T) {
	pts := []Point3{{0, 0, 0}, {1, 3, 0}, {4, 3, 0}, {5, 0, 0}}
	knots := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	b, err := NewBSpline(3, pts, knots)
	require.NoError(t, err)

	p := b.Evaluate(0.37)
	got, err := b.Inverse(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.37, got, 1e-4)
}

func TestNewBSplineBadKnotVector(t *testing.T) {
	pts := []Point3{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}}
	_, err := NewBSpline(2, pts, []float64{0, 0, 1, 1})
	assert.ErrorIs(t, err, ErrDegenerate, "knot vector length must match controlPts+degree+1")
}
