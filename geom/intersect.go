package geom

import "math"

// IntersectPlanePlane computes the line of intersection of two
// planes, returned as a Line with an unconstrained domain
// (TMin = -Inf, TMax = +Inf). Returns ErrDegenerate if the planes are
// parallel (including coincident).
func IntersectPlanePlane(a, b Plane) (Line, error) {
	na, nb := a.normal(), b.normal()
	dir := na.Cross(nb)
	if dir.Norm() < Tolerance {
		return Line{}, ErrDegenerate
	}
	dir = dir.Normalize()

	// Solve for a point on both planes: minimize distance to the origin
	// of plane a subject to lying on both planes, via a 3x3 system that
	// pins the point's component along `dir` to that of a's origin.
	da := na.Dot(a.Origin.Vec())
	db := nb.Dot(b.Origin.Vec())
	m := [3][3]float64{
		{na.X, na.Y, na.Z},
		{nb.X, nb.Y, nb.Z},
		{dir.X, dir.Y, dir.Z},
	}
	rhs := [3]float64{da, db, dir.Dot(a.Origin.Vec())}
	x, err := solve3(m, rhs)
	if err != nil {
		return Line{}, ErrDegenerate
	}
	origin := Point3{x[0], x[1], x[2]}
	return Line{Origin: origin, Dir: dir, domain: CurveDomain{math.Inf(-1), math.Inf(1)}}, nil
}

// IntersectLinePlane computes the point where a Line crosses a Plane,
// returning the line parameter t at the crossing. Returns
// ErrDegenerate if the line is parallel to the plane (including lying
// within it).
func IntersectLinePlane(l Line, p Plane) (t float64, err error) {
	n := p.normal()
	denom := n.Dot(l.Dir)
	if abs(denom) < Tolerance {
		return 0, ErrDegenerate
	}
	t = n.Dot(p.Origin.Sub(l.Origin)) / denom
	return t, nil
}

// ClosestPointOnPlane projects p orthogonally onto plane.
func ClosestPointOnPlane(p Point3, plane Plane) Point3 {
	d := plane.SignedDistance(p)
	return p.Add(plane.normal().Scale(-d))
}
