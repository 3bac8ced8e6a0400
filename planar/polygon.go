package planar

import "github.com/brepkit/kernel/geom"

// PolygonArea returns the signed area of a closed polygon given as an
// open vertex list (the edge from the last point back to the first is
// implied). Positive for counter-clockwise winding, negative for
// clockwise.
func PolygonArea(poly []geom.Point2) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// PointInPolygon reports whether pt lies inside poly (a closed,
// possibly non-convex polygon given as an open vertex list) using the
// winding-number test. Points exactly on the boundary may report
// either true or false depending on floating-point rounding.
func PointInPolygon(pt geom.Point2, poly []geom.Point2) bool {
	winding := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && isLeft(a, b, pt) > 0 {
				winding++
			}
		} else {
			if b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// isLeft returns > 0 if pt is left of the line a->b, < 0 if right, 0 if on it.
func isLeft(a, b, pt geom.Point2) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}
