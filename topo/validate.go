package topo

// ValidateWireContinuous checks that consecutive oriented edges in w
// share a vertex (the end vertex of one equals the start vertex of
// the next). Returns ErrEmptyWire if w has no edges, ErrEntityNotFound
// if an edge Id does not resolve, ErrWireNotContinuous on a gap.
func (s *Store) ValidateWireContinuous(w Wire) error {
	if len(w.Edges) == 0 {
		return ErrEmptyWire
	}
	prevEnd, err := s.orientedEnd(w.Edges[0])
	if err != nil {
		return err
	}
	for i := 1; i < len(w.Edges); i++ {
		start, err := s.orientedStart(w.Edges[i])
		if err != nil {
			return err
		}
		if start != prevEnd {
			return ErrWireNotContinuous
		}
		prevEnd, err = s.orientedEnd(w.Edges[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateWireClosed checks continuity (see ValidateWireContinuous)
// and additionally that the wire returns to its starting vertex.
// Returns ErrWireNotClosed if it does not.
func (s *Store) ValidateWireClosed(w Wire) error {
	if err := s.ValidateWireContinuous(w); err != nil {
		return err
	}
	start, err := s.orientedStart(w.Edges[0])
	if err != nil {
		return err
	}
	end, err := s.orientedEnd(w.Edges[len(w.Edges)-1])
	if err != nil {
		return err
	}
	if start != end {
		return ErrWireNotClosed
	}
	return nil
}

func (s *Store) orientedStart(oe OrientedEdge) (VertexId, error) {
	e, err := s.Edge(oe.Edge)
	if err != nil {
		return VertexId{}, err
	}
	return oe.StartVertex(e), nil
}

func (s *Store) orientedEnd(oe OrientedEdge) (VertexId, error) {
	e, err := s.Edge(oe.Edge)
	if err != nil {
		return VertexId{}, err
	}
	return oe.EndVertex(e), nil
}

// edgeUseCount counts how many (face, wire, oriented-edge) instances
// of each underlying EdgeId appear across a shell's faces, ignoring
// orientation — a closed manifold shell uses every edge exactly twice
// (once per adjoining face).
func (s *Store) edgeUseCount(sh Shell) (map[EdgeId]int, error) {
	counts := make(map[EdgeId]int)
	for _, fid := range sh.Faces {
		f, err := s.Face(fid)
		if err != nil {
			return nil, err
		}
		wireIds := append([]WireId{f.Outer}, f.Inners...)
		for _, wid := range wireIds {
			w, err := s.Wire(wid)
			if err != nil {
				return nil, err
			}
			for _, oe := range w.Edges {
				counts[oe.Edge]++
			}
		}
	}
	return counts, nil
}

// ValidateShellClosed checks that a shell is manifold-closed: every
// edge referenced by its faces' wires is referenced exactly twice.
// Returns ErrShellNotClosed otherwise.
func (s *Store) ValidateShellClosed(sh Shell) error {
	counts, err := s.edgeUseCount(sh)
	if err != nil {
		return err
	}
	for _, c := range counts {
		if c != 2 {
			return ErrShellNotClosed
		}
	}
	return nil
}

// ValidateShellOrientation checks that wherever two faces of a shell
// share an edge, they traverse it in opposite senses — the standard
// manifold-consistency rule that keeps all face normals pointing
// outward (or all inward) together. Returns ErrOrientationInconsistent
// otherwise.
func (s *Store) ValidateShellOrientation(sh Shell) error {
	type use struct {
		face     FaceId
		reversed bool
	}
	uses := make(map[EdgeId][]use)
	for _, fid := range sh.Faces {
		f, err := s.Face(fid)
		if err != nil {
			return err
		}
		wireIds := append([]WireId{f.Outer}, f.Inners...)
		for _, wid := range wireIds {
			w, err := s.Wire(wid)
			if err != nil {
				return err
			}
			for _, oe := range w.Edges {
				uses[oe.Edge] = append(uses[oe.Edge], use{fid, oe.Reversed})
			}
		}
	}
	for _, us := range uses {
		if len(us) != 2 {
			continue // closure is checked separately by ValidateShellClosed
		}
		if us[0].reversed == us[1].reversed {
			return ErrOrientationInconsistent
		}
	}
	return nil
}
