package tessellate

import (
	"math"

	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/planar"
)

// mergeHoles stitches each hole into outer with a zero-width bridge
// connecting the hole's vertex nearest to outer to that outer vertex,
// producing a single simple polygon ear-clipping can triangulate.
// This is the standard bridge-seam technique for polygons with holes;
// a hole wound the same way as outer is reversed before it is spliced.
// It assumes holes do not overlap and each bridge does not cross
// another hole, true for the well-separated boundaries construct/edit
// produce.
func mergeHoles(outer []geom.Point2, holes [][]geom.Point2) []geom.Point2 {
	merged := append([]geom.Point2(nil), outer...)
	for _, hole := range holes {
		if len(hole) < 3 {
			continue
		}
		if (planar.PolygonArea(hole) > 0) == (planar.PolygonArea(merged) > 0) {
			rev := make([]geom.Point2, len(hole))
			for i, p := range hole {
				rev[len(hole)-1-i] = p
			}
			hole = rev
		}
		bi, hj := nearestBridge(merged, hole)
		merged = spliceHole(merged, hole, bi, hj)
	}
	return merged
}

func nearestBridge(outer, hole []geom.Point2) (outerIdx, holeIdx int) {
	best := math.Inf(1)
	for i, o := range outer {
		for j, h := range hole {
			d := o.Sub(h).Norm()
			if d < best {
				best = d
				outerIdx, holeIdx = i, j
			}
		}
	}
	return outerIdx, holeIdx
}

// spliceHole inserts hole into outer at outerIdx via a bridge through
// hole[holeIdx], walking the hole once around and back through the
// bridge point so the result stays a single closed loop.
func spliceHole(outer, hole []geom.Point2, outerIdx, holeIdx int) []geom.Point2 {
	n := len(hole)
	loop := make([]geom.Point2, 0, n+1)
	for k := 0; k <= n; k++ {
		loop = append(loop, hole[(holeIdx+k)%n])
	}

	out := make([]geom.Point2, 0, len(outer)+len(loop)+1)
	out = append(out, outer[:outerIdx+1]...)
	out = append(out, loop...)
	out = append(out, outer[outerIdx]) // return to the bridge point
	out = append(out, outer[outerIdx+1:]...)
	return out
}

// triangulate ear-clips a simple polygon (no holes; use mergeHoles
// first) into triangles indexing poly. Reverses a clockwise input so
// every ear test runs against a consistent counter-clockwise winding.
// A vertex in the middle of a straight run is dropped before ears are
// clipped, so no triangle references it.
func triangulate(poly []geom.Point2) ([][3]int, error) {
	n := len(poly)
	if n < 3 {
		return nil, ErrDegeneratePolygon
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if planar.PolygonArea(poly) < 0 {
		reverseInts(idx)
	}

	var tris [][3]int
	for len(idx) > 3 {
		straight := -1
		for i := range idx {
			a, b, c := poly[idx[(i-1+len(idx))%len(idx)]], poly[idx[i]], poly[idx[(i+1)%len(idx)]]
			ab, bc := b.Sub(a), c.Sub(b)
			if math.Abs(ab.X*bc.Y-ab.Y*bc.X) <= geom.Tolerance*ab.Norm()*bc.Norm() && ab.Dot(bc) > 0 {
				straight = i
				break
			}
		}
		if straight >= 0 {
			idx = append(idx[:straight], idx[straight+1:]...)
			continue
		}
		earFound := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isConvex(poly[prev], poly[cur], poly[next]) {
				continue
			}
			if anyVertexInside(poly, idx, prev, cur, next) {
				continue
			}
			tris = append(tris, [3]int{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			return nil, ErrDegeneratePolygon
		}
	}
	tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	return tris, nil
}

func isConvex(a, b, c geom.Point2) bool {
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	return cross > 0
}

func anyVertexInside(poly []geom.Point2, idx []int, prev, cur, next int) bool {
	tri := []geom.Point2{poly[prev], poly[cur], poly[next]}
	for _, i := range idx {
		if i == prev || i == cur || i == next {
			continue
		}
		if planar.PointInPolygon(poly[i], tri) {
			return true
		}
	}
	return false
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
