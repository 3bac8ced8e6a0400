package boolean

import (
	"math"

	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/planar"
	"github.com/brepkit/kernel/tessellate"
	"github.com/brepkit/kernel/topo"
)

// castDir is a fixed, deliberately non-axis-aligned ray direction used
// by Classify so a ray cast against an axis-aligned box never grazes a
// face edge-on.
var castDir = geom.Vec3{X: 1, Y: 0.33, Z: 0.27}.Normalize()

// Classify reports whether point lies inside, outside, or on the
// boundary of solid, by a parity ray cast against solid's faces.
// Planar faces are cast against analytically (exact); faces bound to
// a curved surface participate via their tessellated triangles, per
// spec.md §1 ("curved edges participate via their tessellated
// polylines for classification"). Parity is correct regardless of
// which face a crossing belongs to, so triangulating a curved face
// into several hits (e.g. a ray piercing both sides of a cylinder's
// wall) still counts each crossing of the solid's boundary once.
func Classify(store *topo.Store, point geom.Point3, solid topo.SolidId) (Classification, error) {
	const name = "Classify"
	s, err := store.Solid(solid)
	if err != nil {
		return Outside, errs.Wrap(name, errs.NotFound, "solid", err)
	}
	shells := append([]topo.ShellId{s.Outer}, s.Voids...)

	count := 0
	for _, shid := range shells {
		sh, err := store.Shell(shid)
		if err != nil {
			return Outside, errs.Wrap(name, errs.NotFound, "shell", err)
		}
		for _, fid := range sh.Faces {
			f, err := store.Face(fid)
			if err != nil {
				return Outside, errs.Wrap(name, errs.NotFound, "face", err)
			}
			if plane, ok := f.Surface.(geom.Plane); ok {
				onBoundary, hit, err := classifyPlanarFace(store, f, plane, point)
				if err != nil {
					return Outside, err
				}
				if onBoundary {
					return OnBoundary, nil
				}
				if hit {
					count++
				}
				continue
			}

			onBoundary, hits, err := classifyCurvedFace(store, f, fid, point)
			if err != nil {
				return Outside, err
			}
			if onBoundary {
				return OnBoundary, nil
			}
			count += hits
		}
	}
	if count%2 == 1 {
		return Inside, nil
	}
	return Outside, nil
}

// classifyPlanarFace tests point against one Plane-bound face: exact
// on-plane containment, and an analytic ray/plane intersection
// clipped to the face's own boundary in parameter space.
func classifyPlanarFace(store *topo.Store, f topo.Face, plane geom.Plane, point geom.Point3) (onBoundary, hit bool, err error) {
	d := plane.SignedDistance(point)
	if math.Abs(d) <= geom.Tolerance {
		u, v, _ := plane.Inverse(point)
		poly, err := facePolygon2D(store, f, plane)
		if err != nil {
			return false, false, err
		}
		return planar.PointInPolygon(geom.Point2{X: u, Y: v}, poly), false, nil
	}
	n := plane.Normal(0, 0)
	denom := n.Dot(castDir)
	if math.Abs(denom) < geom.Tolerance {
		return false, false, nil
	}
	t := plane.Origin.Sub(point).Dot(n) / denom
	if t <= geom.Tolerance {
		return false, false, nil
	}
	hitPt := point.Add(castDir.Scale(t))
	u, v, _ := plane.Inverse(hitPt)
	poly, err := facePolygon2D(store, f, plane)
	if err != nil {
		return false, false, err
	}
	return false, planar.PointInPolygon(geom.Point2{X: u, Y: v}, poly), nil
}

// classifyCurvedFace tests point against a face bound to a curved
// surface (Cylinder, Cone, Sphere, Torus): on-boundary by projecting
// point onto the surface via Inverse/Evaluate, and ray crossings by
// tessellating the face and testing each triangle with the same
// castDir ray used for planar faces.
func classifyCurvedFace(store *topo.Store, f topo.Face, fid topo.FaceId, point geom.Point3) (onBoundary bool, hits int, err error) {
	invertible, ok := f.Surface.(geom.InvertibleSurface)
	if !ok {
		return false, 0, nil
	}
	if u, v, ierr := invertible.Inverse(point); ierr == nil {
		proj := invertible.Evaluate(u, v)
		if point.Sub(proj).Norm() <= geom.Tolerance {
			poly, perr := facePolygon2D(store, f, invertible)
			if perr != nil {
				return false, 0, perr
			}
			if planar.PointInPolygon(geom.Point2{X: u, Y: v}, poly) {
				return true, 0, nil
			}
		}
	}

	mesh, terr := tessellate.NewTessellateFace(fid, tessellate.DefaultParams()).Execute(store)
	if terr != nil {
		return false, 0, terr
	}
	for _, tri := range mesh.Indices {
		a, b, c := mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]]
		if t, ok := rayTriangleIntersect(point, castDir, a, b, c); ok && t > geom.Tolerance {
			hits++
		}
	}
	return false, hits, nil
}

// rayTriangleIntersect implements the Möller-Trumbore test: returns
// the ray parameter t of the intersection of the ray origin+t*dir
// with triangle (a, b, c), and whether the ray's line crosses the
// triangle; t may be negative, so callers check that it lies ahead of
// origin.
func rayTriangleIntersect(origin geom.Point3, dir geom.Vec3, a, b, c geom.Point3) (t float64, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < geom.Tolerance {
		return 0, false
	}
	invDet := 1 / det
	tvec := origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < -geom.Tolerance || u > 1+geom.Tolerance {
		return 0, false
	}
	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * invDet
	if v < -geom.Tolerance || u+v > 1+geom.Tolerance {
		return 0, false
	}
	t = e2.Dot(qvec) * invDet
	return t, true
}
