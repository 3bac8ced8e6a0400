package planar

import "github.com/brepkit/kernel/geom"

// Centerline is one polyline input to WallOutline2D: a path traced
// along a wall's middle, plus whether it closes on itself (a room
// perimeter) or ends open (a partition butting into another wall).
type Centerline struct {
	Points []geom.Point2
	Closed bool
}

// WallOutline2D turns a set of centerlines sharing a uniform wall
// half-thickness into the footprint's boundary polygon(s), in four
// phases:
//
//  1. Raw offset: each centerline is independently offset by
//     +/- halfThickness with a mitered join (PolylineOffset2D), giving
//     every centerline its own pair of rims.
//  2. Junction handling: every centerline's rims (both sides), across
//     every centerline, are split at their mutual crossing points
//     (splitRimCrossings) and fed as edges into one shared planar
//     graph (junction.go); a face-trace walk over each connected
//     component then extracts that component's boundary. Splitting
//     first means two centerlines meeting mid-segment — not just at a
//     shared endpoint — still land on a common graph vertex, so the
//     walk passes from one centerline's rim onto another's at a T,
//     cross, Y, or reversed-branch junction instead of leaving
//     separate crossing raw lines — this is the polygon-union step
//     spec.md §4.5 phase 2 describes. Rims that never meet or cross
//     anything else (a lone closed centerline's outer and inner rims
//     are concentric and never touch) fall into their own components
//     and so stay as separate output polygons, rather than being
//     forced through a single whole-graph walk that would silently
//     keep only one of them.
//  3. Miter clipping: any offset vertex farther than 4*halfThickness
//     from its source centerline vertex is pulled back to that
//     distance before phase 2 runs, preventing acute corners from
//     producing unbounded spikes.
//  4. Self-intersection resolution (bounded at 100 iterations) runs
//     independently on every component's traced boundary.
//
// Each returned polygon is one traced component: for a single closed
// centerline this is the familiar (outer, inner) pair; for centerlines
// that meet, the components straddling the junction come back already
// merged into one boundary.
func WallOutline2D(centerlines []Centerline, halfThickness float64) (polygons [][]geom.Point2, err error) {
	if len(centerlines) == 0 {
		return nil, ErrTooFewPoints
	}
	if halfThickness <= geom.Tolerance {
		return nil, ErrZeroOffset
	}
	h := halfThickness

	var allSegs [][2]geom.Point2

	for _, cl := range centerlines {
		if len(cl.Points) < 2 {
			return nil, ErrTooFewPoints
		}

		// The left (+) side of a counter-clockwise loop is its interior.
		side := h
		if cl.Closed && PolygonArea(cl.Points) > 0 {
			side = -h
		}
		rawOuter, err := PolylineOffset2D(cl.Points, side, cl.Closed, JoinMiter)
		if err != nil {
			return nil, err
		}
		rawInner, err := PolylineOffset2D(cl.Points, -side, cl.Closed, JoinMiter)
		if err != nil {
			return nil, err
		}

		clippedOuter := clipMiterSpikes(rawOuter, cl.Points, 4*h)
		clippedInner := clipMiterSpikes(rawInner, cl.Points, 4*h)

		allSegs = append(allSegs, rimSegments(clippedOuter, cl.Closed)...)
		allSegs = append(allSegs, rimSegments(clippedInner, cl.Closed)...)
	}

	g := newJunctionGraph()
	for _, seg := range splitRimCrossings(allSegs) {
		g.addSegment(seg[0], seg[1])
	}

	loops := g.traceAllLoops()
	if len(loops) == 0 {
		return nil, ErrSelfIntersectionUnresolved
	}
	for _, loop := range loops {
		resolved, err := resolveSelfIntersections(loop)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, resolved)
	}
	return polygons, nil
}

// clipMiterSpikes pulls back any offset vertex farther than maxDist
// from its corresponding centerline vertex. Only applies when offset
// and centerline have matching lengths (true whenever every joint in
// PolylineOffset2D resolved as a miter rather than falling back to a
// bevel); otherwise the index correspondence is lost and the offset is
// returned unclipped.
func clipMiterSpikes(offset, centerline []geom.Point2, maxDist float64) []geom.Point2 {
	if len(offset) != len(centerline) {
		return offset
	}
	out := make([]geom.Point2, len(offset))
	for i, p := range offset {
		c := centerline[i]
		if p.Distance(c) > maxDist {
			dir := p.Sub(c).Normalize()
			out[i] = c.Add(dir.Scale(maxDist))
		} else {
			out[i] = p
		}
	}
	return out
}

// resolveSelfIntersections repeatedly finds the first pair of
// non-adjacent edges i < j in a closed polyline that cross and splices
// out the loop between them (the vertices after edge i up to and
// including the start of edge j, whether or not that side is the
// smaller one), until no
// crossing remains. If 100 iterations do not converge, the best-so-far
// polygon is returned rather than an error — a deliberate make-progress
// choice for an interactive modeling kernel; the non-convergent case is
// not reported.
func resolveSelfIntersections(poly []geom.Point2) ([]geom.Point2, error) {
	cur := append([]geom.Point2(nil), poly...)
	for iter := 0; iter < 100; iter++ {
		i, j, pt, found := firstSelfIntersection(cur)
		if !found {
			return cur, nil
		}
		cur = spliceOutLoop(cur, i, j, pt)
	}
	return cur, nil
}

func firstSelfIntersection(poly []geom.Point2) (i, j int, pt geom.Point2, found bool) {
	n := len(poly)
	for a := 0; a < n; a++ {
		a1, a2 := poly[a], poly[(a+1)%n]
		for b := a + 2; b < n; b++ {
			if a == 0 && b == n-1 {
				continue // adjacent wrap-around edges always share a vertex
			}
			b1, b2 := poly[b], poly[(b+1)%n]
			if p, _, _, ok := SegmentIntersect(a1, a2, b1, b2); ok {
				return a, b, p, true
			}
		}
	}
	return 0, 0, geom.Point2{}, false
}

func spliceOutLoop(poly []geom.Point2, i, j int, pt geom.Point2) []geom.Point2 {
	out := make([]geom.Point2, 0, len(poly))
	out = append(out, poly[:i+1]...)
	out = append(out, pt)
	out = append(out, poly[j+1:]...)
	return out
}
