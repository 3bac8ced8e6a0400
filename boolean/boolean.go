package boolean

import (
	"github.com/brepkit/kernel/errs"
	"github.com/brepkit/kernel/geom"
	"github.com/brepkit/kernel/topo"
)

// Union returns the solid occupying the space covered by a, by b, or by both.
func Union(store *topo.Store, a, b topo.SolidId) (topo.SolidId, error) {
	return run(store, a, b, OpUnion)
}

// Subtract returns the solid occupying a's space with b's space removed.
func Subtract(store *topo.Store, a, b topo.SolidId) (topo.SolidId, error) {
	return run(store, a, b, OpSubtract)
}

// Intersect returns the solid occupying the space common to both a and b.
func Intersect(store *topo.Store, a, b topo.SolidId) (topo.SolidId, error) {
	return run(store, a, b, OpIntersect)
}

// run executes the split/classify/select/assemble pipeline for op.
//
// Planar faces are split directly against the opposite solid's
// half-spaces (exact when the opposite solid is convex); curved faces
// are classified whole by a single ray cast from their centroid and
// kept or discarded as a unit, never split. a == b (the same SolidId
// in the same store) is special-cased: re-deriving a self-intersection
// through the generic pipeline is both wasted work and numerically
// fragile, since every face is then exactly coincident with its own
// opposite half-space.
func run(store *topo.Store, a, b topo.SolidId, op Op) (topo.SolidId, error) {
	name := op.String()
	if a == b {
		switch op {
		case OpUnion, OpIntersect:
			return a, nil
		default: // OpSubtract: a solid minus itself is empty
			empty := store.AddShell(topo.Shell{})
			return store.AddSolid(topo.Solid{Outer: empty}), nil
		}
	}

	solidA, err := store.Solid(a)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "operand A", err)
	}
	solidB, err := store.Solid(b)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.NotFound, "operand B", err)
	}

	planarA, curvedA, err := partitionFaces(store, solidA)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "partitioning A", err)
	}
	planarB, curvedB, err := partitionFaces(store, solidB)
	if err != nil {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "partitioning B", err)
	}

	hsA := halfspacesFor(store, planarA)
	hsB := halfspacesFor(store, planarB)

	var kept []topo.FaceId

	for _, fid := range planarA {
		if err := splitAndSelect(store, fid, hsB, SourceA, op, &kept); err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "splitting A face", err)
		}
	}
	for _, fid := range planarB {
		if err := splitAndSelect(store, fid, hsA, SourceB, op, &kept); err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "splitting B face", err)
		}
	}

	for _, fid := range curvedA {
		if err := classifyAndSelectWhole(store, fid, b, SourceA, op, &kept); err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "classifying A face", err)
		}
	}
	for _, fid := range curvedB {
		if err := classifyAndSelectWhole(store, fid, a, SourceB, op, &kept); err != nil {
			return topo.SolidId{}, errs.Wrap(name, errs.Failed, "classifying B face", err)
		}
	}

	if len(kept) == 0 {
		return topo.SolidId{}, errs.Wrap(name, errs.Failed, "no surviving faces", ErrEmptyResult)
	}

	shell := store.AddShell(topo.Shell{Faces: kept})
	return store.AddSolid(topo.Solid{Outer: shell}), nil
}

// partitionFaces splits a solid's faces (outer shell plus any void
// shells) into those bound to a Plane and those bound to a curved
// surface.
func partitionFaces(store *topo.Store, s topo.Solid) (planarFaces, curvedFaces []topo.FaceId, err error) {
	shells := append([]topo.ShellId{s.Outer}, s.Voids...)
	for _, shid := range shells {
		sh, err := store.Shell(shid)
		if err != nil {
			return nil, nil, err
		}
		for _, fid := range sh.Faces {
			f, err := store.Face(fid)
			if err != nil {
				return nil, nil, err
			}
			if _, ok := f.Surface.(geom.Plane); ok {
				planarFaces = append(planarFaces, fid)
			} else {
				curvedFaces = append(curvedFaces, fid)
			}
		}
	}
	return planarFaces, curvedFaces, nil
}

// halfspacesFor builds one halfspace3D per planar face, oriented along
// the face's true outward normal (respecting SameSense).
func halfspacesFor(store *topo.Store, faces []topo.FaceId) []halfspace3D {
	hs := make([]halfspace3D, 0, len(faces))
	for _, fid := range faces {
		f, err := store.Face(fid)
		if err != nil {
			continue
		}
		plane, ok := f.Surface.(geom.Plane)
		if !ok {
			continue
		}
		n := plane.Normal(0, 0)
		if !f.SameSense {
			n = n.Neg()
		}
		hs = append(hs, halfspace3D{N: n, O: plane.Origin})
	}
	return hs
}

// splitAndSelect clips face against the opposite solid's half-spaces,
// decides each resulting fragment's fate via Select, and appends
// surviving faces (flipped where the table demands it) to kept.
func splitAndSelect(store *topo.Store, fid topo.FaceId, hs []halfspace3D, source Source, op Op, kept *[]topo.FaceId) error {
	f, err := store.Face(fid)
	if err != nil {
		return err
	}
	plane := f.Surface.(geom.Plane)
	poly, err := facePolygon2D(store, f, plane)
	if err != nil {
		return err
	}

	if len(hs) == 0 {
		// Nothing to clip against: the whole face is outside the
		// (empty) opposite solid.
		return applyDecision(store, poly, plane, f.SameSense, source, Outside, op, kept)
	}

	inside, outside := splitAgainstConvex(poly, plane, hs)
	if inside != nil {
		if err := applyDecision(store, inside, plane, f.SameSense, source, Inside, op, kept); err != nil {
			return err
		}
	}
	for _, pc := range outside {
		if err := applyDecision(store, pc, plane, f.SameSense, source, Outside, op, kept); err != nil {
			return err
		}
	}
	return nil
}

func applyDecision(store *topo.Store, poly2D []geom.Point2, plane geom.Plane, sameSense bool, source Source, class Classification, op Op, kept *[]topo.FaceId) error {
	decision := Select(source, class, op)
	if decision == Discard {
		return nil
	}
	fid, ok, err := buildPlanarFace(store, plane, sameSense, poly2D)
	if err != nil || !ok {
		return err
	}
	if decision == KeepFlipped {
		flipped, err := flipFace(store, fid)
		if err != nil {
			return err
		}
		fid = flipped
	}
	*kept = append(*kept, fid)
	return nil
}

// classifyAndSelectWhole handles a curved face as a single
// all-or-nothing fragment, ray-cast against opposite.
func classifyAndSelectWhole(store *topo.Store, fid topo.FaceId, opposite topo.SolidId, source Source, op Op, kept *[]topo.FaceId) error {
	f, err := store.Face(fid)
	if err != nil {
		return err
	}
	centroid, err := faceCentroid(store, f)
	if err != nil {
		return err
	}
	class, err := Classify(store, centroid, opposite)
	if err != nil {
		return err
	}
	decision := Select(source, class, op)
	switch decision {
	case Discard:
		return nil
	case Keep:
		*kept = append(*kept, fid)
	case KeepFlipped:
		flipped, err := flipFace(store, fid)
		if err != nil {
			return err
		}
		*kept = append(*kept, flipped)
	}
	return nil
}
