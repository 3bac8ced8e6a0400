package edit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepkit/kernel/construct"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

func boxTopFace(t *testing.T, store *topo.Store, sid topo.SolidId, z float64) topo.FaceId {
	t.Helper()
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	for _, fid := range shell.Faces {
		f, err := store.Face(fid)
		require.NoError(t, err)
		plane, ok := f.Surface.(geom.Plane)
		if !ok {
			continue
		}
		if math.Abs(plane.Origin.Z-z) < 1e-6 {
			return fid
		}
	}
	t.Fatalf("no face found at z=%v", z)
	return topo.FaceId{}
}

func TestFaceOffsetPlaneTranslatesAlongNormal(t *testing.T) {
	store := topo.NewStore()
	sid, err := construct.NewMakeBox(geom.Point3{}, 2, 2, 2).Execute(store)
	require.NoError(t, err)
	top := boxTopFace(t, store, sid, 2)

	newFid, err := NewFaceOffset(top, 1).Execute(store)
	require.NoError(t, err)

	f, err := store.Face(newFid)
	require.NoError(t, err)
	plane, ok := f.Surface.(geom.Plane)
	require.True(t, ok)
	assert.InDelta(t, 3, plane.Origin.Z, 1e-9)
}

func TestFaceOffsetCylinderGrowsRadius(t *testing.T) {
	store := topo.NewStore()
	cyl := geom.Cylinder{Origin: geom.Point3{}, Axis: geom.Vec3{Z: 1}, RefDir: geom.Vec3{X: 1}, Radius: 2}
	fid, wid := buildCylinderFace(t, store, cyl)
	_ = wid

	newFid, err := NewFaceOffset(fid, 0.5).Execute(store)
	require.NoError(t, err)
	f, err := store.Face(newFid)
	require.NoError(t, err)
	newCyl, ok := f.Surface.(geom.Cylinder)
	require.True(t, ok)
	assert.InDelta(t, 2.5, newCyl.Radius, 1e-9)
}

// buildCylinderFace builds a minimal single-face cylinder patch for
// FaceOffset tests, with a closed rectangular parameter-space wire
// lifted onto the cylinder by hand (bypassing construct, which has no
// bare-cylinder-patch builder).
func buildCylinderFace(t *testing.T, store *topo.Store, cyl geom.Cylinder) (topo.FaceId, topo.WireId) {
	t.Helper()
	us := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	zs := []float64{0, 1}
	pts := []geom.Point3{
		cyl.Evaluate(us[0], zs[0]),
		cyl.Evaluate(us[1], zs[0]),
		cyl.Evaluate(us[1], zs[1]),
		cyl.Evaluate(us[0], zs[1]),
	}
	verts := make([]topo.VertexId, len(pts))
	for i, p := range pts {
		verts[i] = store.AddVertex(topo.Vertex{Point: p})
	}
	oes := make([]topo.OrientedEdge, len(pts))
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		line, err := geom.NewLine(a, b.Sub(a), 0, 1)
		require.NoError(t, err)
		eid := store.AddEdge(topo.Edge{Curve: line, Start: verts[i], End: verts[(i+1)%len(pts)]})
		oes[i] = topo.OrientedEdge{Edge: eid}
	}
	wid := store.AddWire(topo.Wire{Edges: oes})
	fid := store.AddFace(topo.Face{Surface: cyl, Outer: wid, SameSense: true})
	return fid, wid
}

func TestThickenFaceProducesClosedSolid(t *testing.T) {
	store := topo.NewStore()
	wid, err := construct.NewMakeWire([]geom.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}, true).Execute(store)
	require.NoError(t, err)
	fid, err := construct.NewMakeFace(wid, nil).Execute(store)
	require.NoError(t, err)

	sid, err := NewThickenFace(fid, 0.5).Execute(store)
	require.NoError(t, err)

	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 6)
	assert.NoError(t, store.ValidateShellClosed(shell))
}

func TestShellAddsSixFaceVoid(t *testing.T) {
	store := topo.NewStore()
	sid, err := construct.NewMakeBox(geom.Point3{}, 10, 10, 10).Execute(store)
	require.NoError(t, err)

	hollow, err := NewShell(sid, 1).Execute(store)
	require.NoError(t, err)

	sol, err := store.Solid(hollow)
	require.NoError(t, err)
	require.Len(t, sol.Voids, 1)

	voidShell, err := store.Shell(sol.Voids[0])
	require.NoError(t, err)
	assert.Len(t, voidShell.Faces, 6)
}

func TestSplitAxisAlignedBoxInHalf(t *testing.T) {
	store := topo.NewStore()
	sid, err := construct.NewMakeBox(geom.Point3{}, 4, 4, 4).Execute(store)
	require.NoError(t, err)

	pos, neg, err := NewSplit(sid, geom.Point3{X: 0, Y: 0, Z: 2}, geom.Vec3{Z: 1}).Execute(store)
	require.NoError(t, err)

	for _, sid := range []topo.SolidId{pos, neg} {
		sol, err := store.Solid(sid)
		require.NoError(t, err)
		shell, err := store.Shell(sol.Outer)
		require.NoError(t, err)
		assert.NoError(t, store.ValidateShellClosed(shell))
	}
}

func TestSplitRejectsZeroNormal(t *testing.T) {
	store := topo.NewStore()
	sid, err := construct.NewMakeBox(geom.Point3{}, 2, 2, 2).Execute(store)
	require.NoError(t, err)

	_, _, err = NewSplit(sid, geom.Point3{}, geom.Vec3{}).Execute(store)
	assert.Error(t, err)
}
