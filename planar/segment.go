package planar

import "github.com/brepkit/kernel/geom"

// SegmentIntersect finds the crossing of segments p1-p2 and q1-q2, if
// any, reporting the parameter along each (0 at the first endpoint, 1
// at the second). ok is false if the segments are parallel or the
// crossing falls outside either segment's [0, 1] range.
func SegmentIntersect(p1, p2, q1, q2 geom.Point2) (pt geom.Point2, t, u float64, ok bool) {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)
	rhs := q1.Sub(p1)
	t, u, solved := solve2x2(d1, d2, rhs)
	if !solved {
		return geom.Point2{}, 0, 0, false
	}
	if t < -geom.Tolerance || t > 1+geom.Tolerance || u < -geom.Tolerance || u > 1+geom.Tolerance {
		return geom.Point2{}, 0, 0, false
	}
	return p1.Add(d1.Scale(t)), t, u, true
}

// LineIntersect finds the crossing of the unbounded lines through
// (p1, d1-direction) and (q1, d2-direction). Unlike SegmentIntersect,
// t and u are not restricted to [0, 1]. ok is false if the lines are
// parallel.
func LineIntersect(p1 geom.Point2, d1 geom.Vec2, q1 geom.Point2, d2 geom.Vec2) (pt geom.Point2, t float64, ok bool) {
	rhs := q1.Sub(p1)
	t, _, solved := solve2x2(d1, d2, rhs)
	if !solved {
		return geom.Point2{}, 0, false
	}
	return p1.Add(d1.Scale(t)), t, true
}

// solve2x2 solves [d1 -d2] * [t u]^T = rhs, i.e. p1 + t*d1 == q1 + u*d2.
func solve2x2(d1, d2, rhs geom.Vec2) (t, u float64, ok bool) {
	det := d1.X*(-d2.Y) - (-d2.X)*d1.Y
	if abs2(det) < 1e-12 {
		return 0, 0, false
	}
	t = (rhs.X*(-d2.Y) - (-d2.X)*rhs.Y) / det
	u = (d1.X*rhs.Y - d1.Y*rhs.X) / det
	return t, u, true
}

func abs2(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
