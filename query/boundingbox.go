package query

import (
	"math"

	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max geom.Point3
}

// BoundingBox computes the AABB of every vertex reachable from a
// solid's outer shell and void shells. Not conservative for curved
// surfaces: only vertex positions are used, so the part of a curved
// face that bulges between its vertices can lie outside the box.
type BoundingBox struct {
	Solid topo.SolidId
}

// NewBoundingBox builds a BoundingBox query.
func NewBoundingBox(solid topo.SolidId) BoundingBox {
	return BoundingBox{Solid: solid}
}

// Execute returns the solid's bounding box.
func (q BoundingBox) Execute(store *topo.Store) (Box, error) {
	const name = "BoundingBox"

	s, err := store.Solid(q.Solid)
	if err != nil {
		return Box{}, errs.Wrap(name, errs.NotFound, "solid", err)
	}

	min := geom.Point3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := geom.Point3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	found := false

	shells := append([]topo.ShellId{s.Outer}, s.Voids...)
	for _, shid := range shells {
		sh, err := store.Shell(shid)
		if err != nil {
			return Box{}, errs.Wrap(name, errs.NotFound, "shell", err)
		}
		for _, fid := range sh.Faces {
			f, err := store.Face(fid)
			if err != nil {
				return Box{}, errs.Wrap(name, errs.NotFound, "face", err)
			}
			wires := append([]topo.WireId{f.Outer}, f.Inners...)
			for _, wid := range wires {
				pts, err := wirePoints(store, wid)
				if err != nil {
					return Box{}, errs.Wrap(name, errs.NotFound, "wire", err)
				}
				for _, p := range pts {
					found = true
					min = geom.Point3{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
					max = geom.Point3{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
				}
			}
		}
	}
	if !found {
		return Box{}, errs.Wrap(name, errs.Failed, "solid has no vertices", topo.ErrEmptyWire)
	}
	return Box{Min: min, Max: max}, nil
}

// wirePoints collects a wire's vertex points in traversal order.
func wirePoints(store *topo.Store, wid topo.WireId) ([]geom.Point3, error) {
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
