package boolean

import "github.com/brepkit/kernel/geom"

// halfspace3D is the outward-facing half-space carved out by one
// planar face of a solid: points p with N.Dot(p-O) <= 0 lie inside it.
type halfspace3D struct {
	N geom.Vec3
	O geom.Point3
}

// linear2D is a halfspace3D reduced to an affine function of another
// face's own (u, v) coordinates: a*u + b*v + c <= 0 means inside.
type linear2D struct {
	a, b, c float64
}

func (h halfspace3D) project(plane geom.Plane) linear2D {
	return linear2D{
		a: h.N.Dot(plane.U),
		b: h.N.Dot(plane.V),
		c: h.N.Dot(plane.Origin.Sub(h.O)),
	}
}

func (l linear2D) dist(p geom.Point2) float64 { return l.a*p.X + l.b*p.Y + l.c }

// clipHalf runs Sutherland-Hodgman clipping of a closed polygon against
// one linear half-plane, keeping the inside (dist <= Tolerance) or the
// outside (dist > Tolerance) half.
func clipHalf(poly []geom.Point2, l linear2D, keepInside bool) []geom.Point2 {
	n := len(poly)
	if n == 0 {
		return nil
	}
	in := func(d float64) bool {
		if keepInside {
			return d <= geom.Tolerance
		}
		return d > geom.Tolerance
	}
	var out []geom.Point2
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		dCur := l.dist(cur)
		dPrev := l.dist(prev)
		curIn := in(dCur)
		prevIn := in(dPrev)
		if curIn {
			if !prevIn {
				out = append(out, edgeCrossing(prev, cur, dPrev, dCur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, edgeCrossing(prev, cur, dPrev, dCur))
		}
	}
	return out
}

func edgeCrossing(p, q geom.Point2, dp, dq float64) geom.Point2 {
	t := dp / (dp - dq)
	return geom.Point2{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
}

// splitAgainstConvex walks poly through the half-spaces of hs in
// sequence, returning the portion that lies inside all of them
// (exact for a convex opposite solid) together with, for each
// half-space in turn, the portion carved away by failing that
// half-space alone while still satisfying the earlier ones. The
// outside pieces collectively tile poly minus the inside result.
func splitAgainstConvex(poly []geom.Point2, plane geom.Plane, hs []halfspace3D) (inside []geom.Point2, outside [][]geom.Point2) {
	remaining := poly
	for _, h := range hs {
		if len(remaining) < 3 {
			remaining = nil
			break
		}
		l := h.project(plane)
		in := clipHalf(remaining, l, true)
		out := clipHalf(remaining, l, false)
		if len(out) >= 3 {
			outside = append(outside, out)
		}
		remaining = in
	}
	if len(remaining) >= 3 {
		inside = remaining
	}
	return inside, outside
}
