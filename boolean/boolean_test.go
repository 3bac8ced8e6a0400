package boolean

import (
	"math"
	"testing"

	"github.com/brepkit/kernel/construct"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTableUnion(t *testing.T) {
	assert.Equal(t, Keep, Select(SourceA, Outside, OpUnion))
	assert.Equal(t, Discard, Select(SourceA, Inside, OpUnion))
	assert.Equal(t, Keep, Select(SourceA, OnBoundary, OpUnion))
	assert.Equal(t, Keep, Select(SourceB, Outside, OpUnion))
	assert.Equal(t, Discard, Select(SourceB, Inside, OpUnion))
	assert.Equal(t, Discard, Select(SourceB, OnBoundary, OpUnion))
}

func TestSelectTableSubtract(t *testing.T) {
	assert.Equal(t, Keep, Select(SourceA, Outside, OpSubtract))
	assert.Equal(t, Discard, Select(SourceA, Inside, OpSubtract))
	assert.Equal(t, Keep, Select(SourceA, OnBoundary, OpSubtract))
	assert.Equal(t, Discard, Select(SourceB, Outside, OpSubtract))
	assert.Equal(t, KeepFlipped, Select(SourceB, Inside, OpSubtract))
	assert.Equal(t, Discard, Select(SourceB, OnBoundary, OpSubtract))
}

func TestSelectTableIntersect(t *testing.T) {
	assert.Equal(t, Discard, Select(SourceA, Outside, OpIntersect))
	assert.Equal(t, Keep, Select(SourceA, Inside, OpIntersect))
	assert.Equal(t, Keep, Select(SourceA, OnBoundary, OpIntersect))
	assert.Equal(t, Discard, Select(SourceB, Outside, OpIntersect))
	assert.Equal(t, Keep, Select(SourceB, Inside, OpIntersect))
	assert.Equal(t, Discard, Select(SourceB, OnBoundary, OpIntersect))
}

func box(t *testing.T, store *topo.Store, origin geom.Point3, dx, dy, dz float64) topo.SolidId {
	t.Helper()
	sid, err := construct.NewMakeBox(origin, dx, dy, dz).Execute(store)
	require.NoError(t, err)
	return sid
}

// solidVolume computes |volume| via the divergence-theorem tetrahedral
// sum over each planar face's outer wire, fan-triangulated from its
// first vertex. Only exercised here against boolean results built
// entirely from planar faces.
func solidVolume(t *testing.T, store *topo.Store, sid topo.SolidId) float64 {
	t.Helper()
	s, err := store.Solid(sid)
	require.NoError(t, err)
	total := 0.0
	shells := append([]topo.ShellId{s.Outer}, s.Voids...)
	for _, shid := range shells {
		sh, err := store.Shell(shid)
		require.NoError(t, err)
		for _, fid := range sh.Faces {
			f, err := store.Face(fid)
			require.NoError(t, err)
			pts, err := wireVertices3D(store, f.Outer)
			require.NoError(t, err)
			if len(pts) < 3 {
				continue
			}
			sign := 1.0
			if !f.SameSense {
				sign = -1.0
			}
			v0 := pts[0].Vec()
			for i := 1; i < len(pts)-1; i++ {
				vi := pts[i].Vec()
				vi1 := pts[i+1].Vec()
				total += sign * v0.Dot(vi.Cross(vi1)) / 6
			}
		}
	}
	return math.Abs(total)
}

func TestIntersectOverlappingBoxes(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 4, 4, 3)
	b := box(t, store, geom.Point3{X: 2, Y: 2, Z: 1}, 4, 4, 4)

	result, err := Intersect(store, a, b)
	require.NoError(t, err)

	vol := solidVolume(t, store, result)
	assert.InDelta(t, 2*2*2, vol, 1e-6)
}

func TestUnionDisjointBoxesSumsVolume(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 2, 2, 2)
	b := box(t, store, geom.Point3{X: 10, Y: 0, Z: 0}, 2, 2, 2)

	result, err := Union(store, a, b)
	require.NoError(t, err)

	vol := solidVolume(t, store, result)
	assert.InDelta(t, 8+8, vol, 1e-6)
}

func TestSubtractOverlappingBoxes(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 6, 6, 4)
	b := box(t, store, geom.Point3{X: 1.5, Y: 1.5, Z: -0.5}, 3, 3, 5)

	result, err := Subtract(store, a, b)
	require.NoError(t, err)

	vol := solidVolume(t, store, result)
	assert.InDelta(t, 6*6*4-3*3*4, vol, 1e-6)
}

func TestSelfUnionIsIdempotent(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 2, 2, 2)

	result, err := Union(store, a, a)
	require.NoError(t, err)
	assert.Equal(t, a, result)
}

func TestSelfSubtractIsEmpty(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 2, 2, 2)

	result, err := Subtract(store, a, a)
	require.NoError(t, err)
	sol, err := store.Solid(result)
	require.NoError(t, err)
	sh, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Empty(t, sh.Faces)
}

func TestClassifyBoxCenterIsInside(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 4, 4, 4)
	class, err := Classify(store, geom.Point3{X: 2, Y: 2, Z: 2}, a)
	require.NoError(t, err)
	assert.Equal(t, Inside, class)
}

func TestClassifyFarPointIsOutside(t *testing.T) {
	store := topo.NewStore()
	a := box(t, store, geom.Point3{}, 4, 4, 4)
	class, err := Classify(store, geom.Point3{X: 100, Y: 100, Z: 100}, a)
	require.NoError(t, err)
	assert.Equal(t, Outside, class)
}
