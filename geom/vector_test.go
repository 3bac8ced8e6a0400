package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, a.Cross(b))
	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, 1.0, a.Norm())
	assert.True(t, a.Add(b).ApproxEqual(Vec3{1, 1, 0}))
}

func TestVec3NormalizeZero(t *testing.T) {
	z := Vec3{}
	assert.True(t, z.IsZero())
	assert.Equal(t, z, z.Normalize())
}

func TestPoint3Lerp(t *testing.T) {
	p := Point3{0, 0, 0}
	q := Point3{10, 0, 0}
	assert.True(t, p.Lerp(q, 0.25).ApproxEqual(Point3{2.5, 0, 0}))
}

func TestVec2PerpAndCross(t *testing.T) {
	v := Vec2{1, 0}
	assert.Equal(t, Vec2{0, 1}, v.Perp())
	assert.Equal(t, 1.0, v.Cross(Vec2{0, 1}))
}
