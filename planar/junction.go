package planar

import (
	"math"

	"github.com/brepkit/kernel/geom"
)

// junction.go adapts the teacher's depth-first traversal (dfs.DFS) from
// a graph-of-IDs walk into a face-trace walk over a planar straight-line
// graph: instead of visiting arbitrary unvisited neighbors, it always
// continues along the directed edge making the sharpest right turn at
// the arrival vertex — the standard rule for extracting the outer
// boundary of the union of overlapping offset segments at a wall
// junction. The recursive/visited-set shape is carried over from
// dfsWalker.traverse; only the neighbor-selection step changes.

// halfEdge is one directed traversal of a raw offset segment.
type halfEdge struct {
	from, to int
}

// junctionGraph indexes a set of undirected segments (given as point
// pairs) by rounded vertex position so that near-coincident endpoints
// from independently offset edges merge into a single node, the way
// two wall segments meeting at a corner share an offset-line crossing.
type junctionGraph struct {
	points []geom.Point2
	index  map[[2]int64]int
	out    map[int][]halfEdge // outgoing half-edges per vertex
}

func newJunctionGraph() *junctionGraph {
	return &junctionGraph{index: make(map[[2]int64]int), out: make(map[int][]halfEdge)}
}

func quantize(p geom.Point2) [2]int64 {
	const grid = 1e6
	return [2]int64{int64(math.Round(p.X * grid)), int64(math.Round(p.Y * grid))}
}

func (g *junctionGraph) vertex(p geom.Point2) int {
	key := quantize(p)
	if idx, ok := g.index[key]; ok {
		return idx
	}
	idx := len(g.points)
	g.points = append(g.points, p)
	g.index[key] = idx
	return idx
}

func (g *junctionGraph) addSegment(a, b geom.Point2) {
	va, vb := g.vertex(a), g.vertex(b)
	if va == vb {
		return
	}
	g.out[va] = append(g.out[va], halfEdge{va, vb})
	g.out[vb] = append(g.out[vb], halfEdge{vb, va})
}

// rimSegments turns one offset rim into its consecutive edge
// segments, wrapping last-to-first when closed is true.
func rimSegments(rim []geom.Point2, closed bool) [][2]geom.Point2 {
	n := len(rim)
	if n < 2 {
		return nil
	}
	edges := n - 1
	if closed {
		edges = n
	}
	segs := make([][2]geom.Point2, edges)
	for i := 0; i < edges; i++ {
		segs[i] = [2]geom.Point2{rim[i], rim[(i+1)%n]}
	}
	return segs
}

// splitRimCrossings splits every pair of segments (typically drawn
// from different centerlines' rims) that cross at an interior point
// into four segments meeting at that point, repeating until no
// crossing remains or 100 passes are spent (the same iteration cap
// resolveSelfIntersections uses, for the same make-progress reason).
// This is what actually merges two centerlines meeting mid-segment —
// e.g. a partition's rim crossing a perimeter wall's rim at a T
// junction — into shared graph vertices; addSegment's quantized-vertex
// matching alone only merges rims that already share an endpoint.
// Segment pairs that already share an endpoint are left alone: that
// shared point is already a common graph vertex.
func splitRimCrossings(segs [][2]geom.Point2) [][2]geom.Point2 {
	cur := append([][2]geom.Point2(nil), segs...)
	for iter := 0; iter < 100; iter++ {
		splitAt := -1
		var splitJ int
		var splitPt geom.Point2
		for i := 0; i < len(cur) && splitAt < 0; i++ {
			for j := i + 1; j < len(cur); j++ {
				a1, a2 := cur[i][0], cur[i][1]
				b1, b2 := cur[j][0], cur[j][1]
				if a1.ApproxEqual(b1) || a1.ApproxEqual(b2) || a2.ApproxEqual(b1) || a2.ApproxEqual(b2) {
					continue
				}
				p, t, u, ok := SegmentIntersect(a1, a2, b1, b2)
				if !ok || t < geom.Tolerance || t > 1-geom.Tolerance || u < geom.Tolerance || u > 1-geom.Tolerance {
					continue
				}
				splitAt, splitJ, splitPt = i, j, p
				break
			}
		}
		if splitAt < 0 {
			return cur
		}
		i, j := splitAt, splitJ
		a1, a2 := cur[i][0], cur[i][1]
		b1, b2 := cur[j][0], cur[j][1]
		cur[i] = [2]geom.Point2{a1, splitPt}
		cur[j] = [2]geom.Point2{b1, splitPt}
		cur = append(cur, [2]geom.Point2{splitPt, a2}, [2]geom.Point2{splitPt, b2})
	}
	return cur
}

// traceAllLoops partitions the graph into connected components — one
// per group of segments that share or cross a vertex — and traces
// each independently with traceFrom, so that distinct, non-touching
// rims (e.g. a lone closed centerline's outer rim and its own inner
// rim, which are concentric and never meet) come back as separate
// polygons instead of one walk silently picking only the leftmost
// component and discarding the rest.
func (g *junctionGraph) traceAllLoops() [][]geom.Point2 {
	var loops [][]geom.Point2
	for _, comp := range g.components() {
		start := g.leftmostIn(comp)
		if loop := g.traceFrom(start); len(loop) >= 2 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// components groups vertex indices into connected components by
// undirected reachability over out's half-edges.
func (g *junctionGraph) components() [][]int {
	seen := make([]bool, len(g.points))
	var comps [][]int
	for i := range g.points {
		if seen[i] {
			continue
		}
		var comp []int
		stack := []int{i}
		seen[i] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for _, e := range g.out[v] {
				if !seen[e.to] {
					seen[e.to] = true
					stack = append(stack, e.to)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// traceFrom walks the face-trace rule starting from start, always
// taking the next half-edge making the smallest clockwise turn
// relative to the edge just arrived on. It mirrors dfsWalker's
// mark-visited-then-recurse shape, except the graph is directed
// half-edges rather than vertex IDs and "neighbor choice" is by angle
// instead of by arbitrary adjacency order.
func (g *junctionGraph) traceFrom(start int) []geom.Point2 {
	if len(g.points) == 0 {
		return nil
	}
	visited := make(map[halfEdge]bool)

	// From start, the edge going most downward/rightward (smallest
	// polar angle measured from straight down) begins the loop in a
	// consistent, deterministic direction.
	firstEdge := g.pickStartEdge(start)
	if firstEdge.from == 0 && firstEdge.to == 0 {
		return nil
	}

	loop := []geom.Point2{g.points[start]}
	cur := firstEdge
	for i := 0; i < len(g.points)*4+8; i++ {
		visited[cur] = true
		loop = append(loop, g.points[cur.to])
		next, ok := g.nextHalfEdge(cur, visited)
		if !ok {
			break
		}
		cur = next
		if cur.to == start {
			break
		}
	}
	return loop
}

// leftmostIn returns the member of comp (a slice of vertex indices)
// with the smallest X, breaking ties by smallest Y — guaranteed to lie
// on that component's own outer boundary.
func (g *junctionGraph) leftmostIn(comp []int) int {
	best := comp[0]
	for _, i := range comp[1:] {
		p, bp := g.points[i], g.points[best]
		if p.X < bp.X || (p.X == bp.X && p.Y < bp.Y) {
			best = i
		}
	}
	return best
}

func (g *junctionGraph) pickStartEdge(v int) halfEdge {
	edges := g.out[v]
	if len(edges) == 0 {
		return halfEdge{}
	}
	best := edges[0]
	bestAngle := polarAngle(g.points[v], g.points[best.to])
	for _, e := range edges[1:] {
		a := polarAngle(g.points[v], g.points[e.to])
		if a < bestAngle {
			bestAngle = a
			best = e
		}
	}
	return best
}

// nextHalfEdge picks, among the unvisited half-edges leaving cur.to,
// the one that turns least to the right (clockwise) relative to the
// reverse of cur — the face-trace rule that keeps the walk on the
// outer boundary of the union.
func (g *junctionGraph) nextHalfEdge(cur halfEdge, visited map[halfEdge]bool) (halfEdge, bool) {
	incoming := polarAngle(g.points[cur.to], g.points[cur.from])
	candidates := g.out[cur.to]
	var best halfEdge
	bestTurn := math.Inf(1)
	found := false
	for _, e := range candidates {
		if e.to == cur.from || visited[e] {
			continue
		}
		out := polarAngle(g.points[cur.to], g.points[e.to])
		turn := math.Mod(incoming-out+2*math.Pi, 2*math.Pi)
		if turn < bestTurn {
			bestTurn = turn
			best = e
			found = true
		}
	}
	return best, found
}

func polarAngle(from, to geom.Point2) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}
