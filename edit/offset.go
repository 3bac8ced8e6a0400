package edit

import (
	"math"

	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// offsetSurface returns the surface obtained by displacing surface by
// distance along its outward normal (sameSense gives the current
// outward direction for a Plane; for curved surfaces distance is a
// signed change in radius, positive growing outward).
func offsetSurface(surface geom.Surface, sameSense bool, distance float64) (geom.Surface, error) {
	switch s := surface.(type) {
	case geom.Plane:
		n := s.Normal(0, 0)
		if !sameSense {
			n = n.Neg()
		}
		return geom.Plane{Origin: s.Origin.Add(n.Scale(distance)), U: s.U, V: s.V}, nil
	case geom.Cylinder:
		r := s.Radius + distance
		if r <= geom.Tolerance {
			return nil, ErrDegenerateOffset
		}
		return geom.Cylinder{Origin: s.Origin, Axis: s.Axis, RefDir: s.RefDir, Radius: r}, nil
	case geom.Sphere:
		r := s.Radius + distance
		if r <= geom.Tolerance {
			return nil, ErrDegenerateOffset
		}
		return geom.Sphere{Center: s.Center, Axis: s.Axis, RefDir: s.RefDir, Radius: r}, nil
	case geom.Cone:
		shift := -distance / math.Sin(s.HalfAngle)
		return geom.Cone{Apex: s.Apex.Add(s.Axis.Scale(shift)), Axis: s.Axis, RefDir: s.RefDir, HalfAngle: s.HalfAngle}, nil
	case geom.Torus:
		r := s.MinorRadius + distance
		if r <= geom.Tolerance || r >= s.MajorRadius {
			return nil, ErrDegenerateOffset
		}
		return geom.Torus{Center: s.Center, Axis: s.Axis, RefDir: s.RefDir, MajorRadius: s.MajorRadius, MinorRadius: r}, nil
	default:
		return nil, ErrUnsupportedSurface
	}
}

// offsetDirection returns the unit direction a boundary point p on
// surface should move along for a positive (outward-growing) offset.
func offsetDirection(surface geom.Surface, sameSense bool, p geom.Point3) (geom.Vec3, error) {
	switch s := surface.(type) {
	case geom.Plane:
		n := s.Normal(0, 0)
		if !sameSense {
			n = n.Neg()
		}
		return n, nil
	case geom.Cylinder:
		return radialDirection(p, s.Origin, s.Axis)
	case geom.Cone:
		return radialDirection(p, s.Apex, s.Axis)
	case geom.Sphere:
		d := p.Sub(s.Center)
		if d.IsZero() {
			return geom.Vec3{}, ErrDegenerateOffset
		}
		return d.Normalize(), nil
	case geom.Torus:
		u, v, err := s.Inverse(p)
		if err != nil {
			return geom.Vec3{}, err
		}
		return s.Normal(u, v), nil
	default:
		return geom.Vec3{}, ErrUnsupportedSurface
	}
}

// radialDirection returns the unit direction from the axis (through
// axisPoint, along axis) out to p, perpendicular to axis.
func radialDirection(p, axisPoint geom.Point3, axis geom.Vec3) (geom.Vec3, error) {
	dp := p.Sub(axisPoint)
	foot := axisPoint.Add(axis.Scale(dp.Dot(axis)))
	radial := p.Sub(foot)
	if radial.IsZero() {
		return geom.Vec3{}, ErrDegenerateOffset
	}
	return radial.Normalize(), nil
}

// wirePoints3D collects a wire's vertex points, in traversal order.
func wirePoints3D(store *topo.Store, wid topo.WireId) ([]geom.Point3, error) {
	w, err := store.Wire(wid)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point3, 0, len(w.Edges))
	for _, oe := range w.Edges {
		e, err := store.Edge(oe.Edge)
		if err != nil {
			return nil, err
		}
		v, err := store.Vertex(oe.StartVertex(e))
		if err != nil {
			return nil, err
		}
		pts = append(pts, v.Point)
	}
	return pts, nil
}

// offsetWirePoints offsets every point of a closed wire along its own
// surface-relative offset direction by distance.
func offsetWirePoints(store *topo.Store, wid topo.WireId, surface geom.Surface, sameSense bool, distance float64) ([]geom.Point3, error) {
	pts, err := wirePoints3D(store, wid)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Point3, len(pts))
	for i, p := range pts {
		dir, err := offsetDirection(surface, sameSense, p)
		if err != nil {
			return nil, err
		}
		out[i] = p.Add(dir.Scale(distance))
	}
	return out, nil
}

// buildStraightWire builds a closed wire through pts connected by
// straight edges, one new vertex and edge per point.
func buildStraightWire(store *topo.Store, pts []geom.Point3) (topo.WireId, error) {
	n := len(pts)
	verts := make([]topo.VertexId, n)
	for i, p := range pts {
		verts[i] = store.AddVertex(topo.Vertex{Point: p})
	}
	oes := make([]topo.OrientedEdge, n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dir := b.Sub(a)
		if dir.IsZero() {
			return topo.WireId{}, ErrDegenerateOffset
		}
		line, err := geom.NewLine(a, dir, 0, 1)
		if err != nil {
			return topo.WireId{}, err
		}
		eid := store.AddEdge(topo.Edge{Curve: line, Start: verts[i], End: verts[(i+1)%n]})
		oes[i] = topo.OrientedEdge{Edge: eid}
	}
	return store.AddWire(topo.Wire{Edges: oes}), nil
}

// planeFromPoints fits a plane to a coplanar point loop via Newell's
// method, used for the small flat rim quads FaceOffset-derived
// operations build between an original and offset boundary.
func planeFromPoints(points []geom.Point3) (geom.Plane, error) {
	if len(points) < 3 {
		return geom.Plane{}, geom.ErrDegenerate
	}
	n := len(points)
	var normal, centroid geom.Vec3
	for i := 0; i < n; i++ {
		cur, next := points[i], points[(i+1)%n]
		normal.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		normal.Y += (cur.Z - next.Z) * (cur.X + next.X)
		normal.Z += (cur.X - next.X) * (cur.Y + next.Y)
		centroid = centroid.Add(cur.Vec())
	}
	if normal.Norm() < geom.Tolerance {
		return geom.Plane{}, geom.ErrDegenerate
	}
	origin := geom.Point3{X: centroid.X / float64(n), Y: centroid.Y / float64(n), Z: centroid.Z / float64(n)}
	return geom.NewPlane(origin, normal)
}
