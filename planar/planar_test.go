package planar

import (
	"testing"

	"github.com/brepkit/kernel/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentIntersectCrossing(t *testing.T) {
	p, t1, t2, ok := SegmentIntersect(
		geom.Point2{X: 0, Y: 0}, geom.Point2{X: 2, Y: 2},
		geom.Point2{X: 0, Y: 2}, geom.Point2{X: 2, Y: 0},
	)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
	assert.InDelta(t, 0.5, t1, 1e-9)
	assert.InDelta(t, 0.5, t2, 1e-9)
}

func TestSegmentIntersectParallelNoHit(t *testing.T) {
	_, _, _, ok := SegmentIntersect(
		geom.Point2{X: 0, Y: 0}, geom.Point2{X: 1, Y: 0},
		geom.Point2{X: 0, Y: 1}, geom.Point2{X: 1, Y: 1},
	)
	assert.False(t, ok)
}

func TestSegmentIntersectOutOfRange(t *testing.T) {
	_, _, _, ok := SegmentIntersect(
		geom.Point2{X: 0, Y: 0}, geom.Point2{X: 1, Y: 1},
		geom.Point2{X: 5, Y: 0}, geom.Point2{X: 5, Y: 1},
	)
	assert.False(t, ok)
}

func TestPolygonAreaCCWSquare(t *testing.T) {
	square := []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.InDelta(t, 1.0, PolygonArea(square), 1e-9)
}

func TestPolygonAreaCWIsNegative(t *testing.T) {
	square := []geom.Point2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	assert.InDelta(t, -1.0, PolygonArea(square), 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	square := []geom.Point2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	assert.True(t, PointInPolygon(geom.Point2{X: 2, Y: 2}, square))
	assert.False(t, PointInPolygon(geom.Point2{X: 10, Y: 10}, square))
}

func TestPolylineOffsetSquareGrowsArea(t *testing.T) {
	square := []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	// A negative distance offsets to the right of each edge, which is
	// outward for this counter-clockwise square.
	out, err := PolylineOffset2D(square, -0.5, true, JoinMiter)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Greater(t, PolygonArea(out), PolygonArea(square))
}

func TestPolylineOffsetTooFewPoints(t *testing.T) {
	_, err := PolylineOffset2D([]geom.Point2{{X: 0, Y: 0}}, 1, false, JoinMiter)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestPolylineOffsetZeroDistance(t *testing.T) {
	_, err := PolylineOffset2D([]geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}}, 0, false, JoinMiter)
	assert.ErrorIs(t, err, ErrZeroOffset)
}

func TestWallOutlineStraightSegment(t *testing.T) {
	// An open centerline's two rims run parallel and never meet, so
	// each comes back as its own traced component: no junction exists
	// to merge them into a single closed footprint.
	centerline := Centerline{Points: []geom.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	polygons, err := WallOutline2D([]Centerline{centerline}, 0.2)
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	outer, inner := polygons[0], polygons[1]
	require.Len(t, outer, 2)
	require.Len(t, inner, 2)
	assert.InDelta(t, 0.2, outer[0].Y, 1e-9)
	assert.InDelta(t, -0.2, inner[0].Y, 1e-9)
}

func TestWallOutlineClosedSquare(t *testing.T) {
	square := []geom.Point2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	centerline := Centerline{Points: square, Closed: true}
	polygons, err := WallOutline2D([]Centerline{centerline}, 0.4)
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	outer, inner := polygons[0], polygons[1]
	assert.Greater(t, len(outer), 2)
	assert.Greater(t, len(inner), 2)
	assert.Greater(t, PolygonArea(outer), PolygonArea(square))
	assert.Less(t, PolygonArea(inner), PolygonArea(square))
}

func TestWallOutlineJunctionMergesTwoCenterlines(t *testing.T) {
	perimeter := Centerline{
		Points: []geom.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Closed: true,
	}
	partition := Centerline{
		Points: []geom.Point2{{X: 5, Y: 10}, {X: 5, Y: 5}},
	}
	polygons, err := WallOutline2D([]Centerline{perimeter, partition}, 0.4)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(polygons), 1)
	outer := polygons[0]
	assert.GreaterOrEqual(t, len(outer), 4)
	assert.Greater(t, PolygonArea(outer), PolygonArea(perimeter.Points))
}

func TestWallOutlineRejectsEmptyCenterlineSet(t *testing.T) {
	_, err := WallOutline2D(nil, 0.2)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestResolveSelfIntersectionsBowtie(t *testing.T) {
	bowtie := []geom.Point2{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	resolved, err := resolveSelfIntersections(bowtie)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(resolved), 3)
}
