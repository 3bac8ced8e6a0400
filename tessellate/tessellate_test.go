package tessellate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepkit/kernel/construct"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

func TestTessellateCurveStraightLineUsesMinSegments(t *testing.T) {
	store := topo.NewStore()
	a := store.AddVertex(topo.Vertex{Point: geom.Point3{}})
	b := store.AddVertex(topo.Vertex{Point: geom.Point3{X: 10}})
	line, err := geom.NewLine(geom.Point3{}, geom.Vec3{X: 1}, 0, 10)
	require.NoError(t, err)
	eid := store.AddEdge(topo.Edge{Curve: line, Start: a, End: b})

	poly, err := NewTessellateCurve(eid, DefaultParams()).Execute(store)
	require.NoError(t, err)
	assert.Len(t, poly.Points, DefaultParams().MinSegments+1)
	assert.True(t, poly.Points[0].ApproxEqual(geom.Point3{}))
	assert.True(t, poly.Points[len(poly.Points)-1].ApproxEqual(geom.Point3{X: 10}))
}

func TestTessellateCurveArcRefinesBeyondMinSegments(t *testing.T) {
	store := topo.NewStore()
	arc, err := geom.NewArc(geom.Point3{}, 5, geom.Vec3{Z: 1}, geom.Vec3{X: 1}, 0, math.Pi)
	require.NoError(t, err)
	a := store.AddVertex(topo.Vertex{Point: arc.Evaluate(0)})
	b := store.AddVertex(topo.Vertex{Point: arc.Evaluate(math.Pi)})
	eid := store.AddEdge(topo.Edge{Curve: arc, Start: a, End: b})

	params := Params{Tolerance: 0.001, MinSegments: 4, MaxSegments: 256}
	poly, err := NewTessellateCurve(eid, params).Execute(store)
	require.NoError(t, err)
	assert.Greater(t, len(poly.Points), params.MinSegments+1)
}

func TestTessellateFaceSquareProducesTwoTriangles(t *testing.T) {
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

	mesh, err := NewTessellateFace(fid, DefaultParams()).Execute(store)
	require.NoError(t, err)
	// Each straight edge is sampled into MinSegments segments; the
	// samples between the corners stay in the mesh but bound no triangle.
	assert.Len(t, mesh.Vertices, 4*DefaultParams().MinSegments)
	assert.Len(t, mesh.Indices, 2)

	for _, n := range mesh.Normals {
		assert.InDelta(t, 1.0, math.Abs(n.Z), 1e-9)
	}
}

func TestTessellateSolidBoxHasTwelveTriangles(t *testing.T) {
	store := topo.NewStore()
	sid, err := construct.NewMakeBox(geom.Point3{}, 2, 3, 4).Execute(store)
	require.NoError(t, err)

	mesh, err := NewTessellateSolid(sid, DefaultParams()).Execute(store)
	require.NoError(t, err)
	assert.Len(t, mesh.Indices, 12)
}

func TestMergeHolesKeepsOuterVertexCount(t *testing.T) {
	outer := []geom.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	hole := []geom.Point2{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}}

	merged := mergeHoles(outer, [][]geom.Point2{hole})
	assert.Len(t, merged, len(outer)+len(hole)+2)

	tris, err := triangulate(merged)
	require.NoError(t, err)
	assert.NotEmpty(t, tris)
}
