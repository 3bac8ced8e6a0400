package planar

import "github.com/brepkit/kernel/geom"

// JoinKind selects how PolylineOffset2D bridges the gap the offset
// opens up at a convex corner.
type JoinKind int

const (
	// JoinMiter extends both adjoining offset edges until they cross,
	// producing a sharp corner. Falls back to JoinBevel if the edges
	// are (near) parallel, since a miter intersection is then undefined.
	JoinMiter JoinKind = iota
	// JoinBevel connects the two adjoining offset edges' endpoints
	// directly, producing a flat cut corner.
	JoinBevel
)

// PolylineOffset2D returns the polyline traced at perpendicular
// distance from poly: positive distance offsets to the left of each
// edge's direction (geom.Vec2.Perp's convention), negative to the
// right. closed treats poly as a closed loop (wrapping the last edge
// to the first vertex); otherwise the first and last points are
// offset along their single adjoining edge only, with no joint logic.
//
// Returns ErrTooFewPoints if poly has fewer than 2 points, ErrZeroOffset
// if |distance| < geom.Tolerance.
func PolylineOffset2D(poly []geom.Point2, distance float64, closed bool, join JoinKind) ([]geom.Point2, error) {
	if len(poly) < 2 {
		return nil, ErrTooFewPoints
	}
	if abs2(distance) < geom.Tolerance {
		return nil, ErrZeroOffset
	}

	n := len(poly)
	numEdges := n - 1
	if closed {
		numEdges = n
	}

	// Each edge i runs poly[i] -> poly[(i+1)%n]; its offset line is
	// shifted by distance along the edge direction's left normal.
	type offsetEdge struct {
		a, b geom.Point2
		dir  geom.Vec2
	}
	edges := make([]offsetEdge, numEdges)
	for i := 0; i < numEdges; i++ {
		a, b := poly[i], poly[(i+1)%n]
		dir := b.Sub(a).Normalize()
		shift := dir.Perp().Scale(distance)
		edges[i] = offsetEdge{a: a.Add(shift), b: b.Add(shift), dir: dir}
	}

	if !closed {
		out := make([]geom.Point2, 0, n)
		out = append(out, edges[0].a)
		for i := 0; i < numEdges-1; i++ {
			joint, ok := joinEdges(edges[i].a, edges[i].dir, edges[i].b, edges[i+1].a, edges[i+1].dir, join)
			if !ok {
				out = append(out, edges[i].b, edges[i+1].a)
				continue
			}
			out = append(out, joint)
		}
		out = append(out, edges[numEdges-1].b)
		return out, nil
	}

	out := make([]geom.Point2, 0, n)
	for i := 0; i < numEdges; i++ {
		prev := edges[(i-1+numEdges)%numEdges]
		cur := edges[i]
		joint, ok := joinEdges(prev.a, prev.dir, prev.b, cur.a, cur.dir, join)
		if !ok {
			out = append(out, prev.b)
			continue
		}
		out = append(out, joint)
	}
	return out, nil
}

// joinEdges computes the corner point between an edge ending at
// (prevEnd, direction prevDir) and the next edge starting at
// (nextStart, direction nextDir). For JoinMiter it intersects the two
// offset lines; for JoinBevel (or when a miter has no solution) it
// reports ok = false so the caller inserts both endpoints directly.
func joinEdges(_ geom.Point2, prevDir geom.Vec2, prevEnd geom.Point2, nextStart geom.Point2, nextDir geom.Vec2, join JoinKind) (geom.Point2, bool) {
	if join == JoinBevel {
		return geom.Point2{}, false
	}
	pt, _, ok := LineIntersect(prevEnd, prevDir, nextStart, nextDir)
	return pt, ok
}
