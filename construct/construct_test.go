package construct

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

func squarePoints(side float64) []geom.Point3 {
	return []geom.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: side, Y: 0, Z: 0},
		{X: side, Y: side, Z: 0},
		{X: 0, Y: side, Z: 0},
	}
}

func TestMakeWireClosedSquare(t *testing.T) {
	store := topo.NewStore()
	wid, err := NewMakeWire(squarePoints(2), true).Execute(store)
	require.NoError(t, err)
	w, err := store.Wire(wid)
	require.NoError(t, err)
	assert.Len(t, w.Edges, 4)
	assert.NoError(t, store.ValidateWireClosed(w))
}

func TestMakeWireTooFewPoints(t *testing.T) {
	store := topo.NewStore()
	_, err := NewMakeWire([]geom.Point3{{X: 0}, {X: 1}}, true).Execute(store)
	assert.Error(t, err)
}

func TestMakeFaceSquare(t *testing.T) {
	store := topo.NewStore()
	wid, err := NewMakeWire(squarePoints(2), true).Execute(store)
	require.NoError(t, err)
	fid, err := NewMakeFace(wid, nil).Execute(store)
	require.NoError(t, err)
	f, err := store.Face(fid)
	require.NoError(t, err)
	plane, ok := f.Surface.(geom.Plane)
	require.True(t, ok)
	assert.InDelta(t, 1.0, math.Abs(plane.Normal(0, 0).Z), 1e-9)
}

func TestExtrudeSquareToBox(t *testing.T) {
	store := topo.NewStore()
	wid, err := NewMakeWire(squarePoints(2), true).Execute(store)
	require.NoError(t, err)
	fid, err := NewMakeFace(wid, nil).Execute(store)
	require.NoError(t, err)

	sid, err := NewExtrude(fid, geom.Vec3{Z: 3}).Execute(store)
	require.NoError(t, err)

	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 6)
	assert.NoError(t, store.ValidateShellClosed(shell))
	assert.NoError(t, store.ValidateShellOrientation(shell))
}

func TestMakeBoxVolumeFaceCount(t *testing.T) {
	store := topo.NewStore()
	sid, err := NewMakeBox(geom.Point3{}, 1, 2, 3).Execute(store)
	require.NoError(t, err)
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 6)
	assert.NoError(t, store.ValidateShellClosed(shell))
}

func TestMakeBoxRejectsNonPositiveExtent(t *testing.T) {
	store := topo.NewStore()
	_, err := NewMakeBox(geom.Point3{}, 0, 1, 1).Execute(store)
	assert.Error(t, err)
}

func TestMakeCylinderThreeFaces(t *testing.T) {
	store := topo.NewStore()
	sid, err := NewMakeCylinder(geom.Point3{}, geom.Vec3{Z: 1}, 1.5, 4).Execute(store)
	require.NoError(t, err)
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 3)
	assert.NoError(t, store.ValidateShellClosed(shell))

	var sawCylinder bool
	for _, fid := range shell.Faces {
		f, err := store.Face(fid)
		require.NoError(t, err)
		switch s := f.Surface.(type) {
		case geom.Cylinder:
			sawCylinder = true
			assert.InDelta(t, 1.5, s.Radius, 1e-9)
		case geom.Plane:
		default:
			t.Fatalf("unexpected surface type %T", s)
		}
	}
	assert.True(t, sawCylinder)
}

func TestMakeConePointedTwoFaces(t *testing.T) {
	store := topo.NewStore()
	sid, err := NewMakeCone(geom.Point3{}, geom.Vec3{Z: 1}, 2, 0, 5).Execute(store)
	require.NoError(t, err)
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 2)

	var sawCone bool
	for _, fid := range shell.Faces {
		f, err := store.Face(fid)
		require.NoError(t, err)
		if c, ok := f.Surface.(geom.Cone); ok {
			sawCone = true
			expected := math.Atan2(2, 5)
			assert.InDelta(t, expected, c.HalfAngle, 1e-9)
		}
	}
	assert.True(t, sawCone)
}

func TestMakeConeFrustumThreeFaces(t *testing.T) {
	store := topo.NewStore()
	sid, err := NewMakeCone(geom.Point3{}, geom.Vec3{Z: 1}, 2, 1, 4).Execute(store)
	require.NoError(t, err)
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 3)
}

func TestMakeConeRejectsEqualRadii(t *testing.T) {
	store := topo.NewStore()
	_, err := NewMakeCone(geom.Point3{}, geom.Vec3{Z: 1}, 2, 2, 4).Execute(store)
	assert.Error(t, err)
}

func TestMakeSphereTwoFaces(t *testing.T) {
	store := topo.NewStore()
	sid, err := NewMakeSphere(geom.Point3{}, geom.Vec3{Z: 1}, 2).Execute(store)
	require.NoError(t, err)
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 2)

	for _, fid := range shell.Faces {
		f, err := store.Face(fid)
		require.NoError(t, err)
		sphere, ok := f.Surface.(geom.Sphere)
		require.True(t, ok)
		assert.InDelta(t, 2.0, sphere.Radius, 1e-9)
	}
}

func TestRevolveTriangleToCone(t *testing.T) {
	store := topo.NewStore()
	profile := []geom.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}
	wid, err := NewMakeWire(profile, true).Execute(store)
	require.NoError(t, err)
	fid, err := NewMakeFace(wid, nil).Execute(store)
	require.NoError(t, err)

	sid, err := NewRevolve(fid, geom.Point3{}, geom.Vec3{Z: 1}).Execute(store)
	require.NoError(t, err)
	sol, err := store.Solid(sid)
	require.NoError(t, err)
	shell, err := store.Shell(sol.Outer)
	require.NoError(t, err)
	assert.Len(t, shell.Faces, 2)
}

func TestExtrudeRejectsCurvedProfile(t *testing.T) {
	store := topo.NewStore()
	a := store.AddVertex(topo.Vertex{Point: geom.Point3{X: 0}})
	b := store.AddVertex(topo.Vertex{Point: geom.Point3{X: 1}})

	line, err := geom.NewLine(geom.Point3{X: 0}, geom.Vec3{X: 1}, 0, 1)
	require.NoError(t, err)
	lineEdge := store.AddEdge(topo.Edge{Curve: line, Start: a, End: b})

	circle, err := geom.NewCircle(geom.Point3{}, 1, geom.Vec3{Z: 1}, geom.Vec3{X: 1})
	require.NoError(t, err)
	circleEdge := store.AddEdge(topo.Edge{Curve: circle, Start: b, End: a})

	wid := store.AddWire(topo.Wire{Edges: []topo.OrientedEdge{{Edge: lineEdge}, {Edge: circleEdge}}})
	plane, err := geom.NewPlane(geom.Point3{}, geom.Vec3{Z: 1})
	require.NoError(t, err)
	fid := store.AddFace(topo.Face{Surface: plane, Outer: wid, SameSense: true})

	_, err = NewExtrude(fid, geom.Vec3{Z: 1}).Execute(store)
	assert.ErrorIs(t, err, ErrNonLinearProfile)
}

func TestExtrudeRejectsZeroVector(t *testing.T) {
	store := topo.NewStore()
	wid, err := NewMakeWire(squarePoints(1), true).Execute(store)
	require.NoError(t, err)
	fid, err := NewMakeFace(wid, nil).Execute(store)
	require.NoError(t, err)

	_, err = NewExtrude(fid, geom.Vec3{}).Execute(store)
	assert.ErrorIs(t, err, ErrDegenerateSweep)
}
