package topo

// Store is a single-threaded arena of topology entities. Each kind of
// entity lives in its own slice, indexed by the Id's n field minus
// one; adding an entity never invalidates a previously minted Id.
//
// Store is not safe for concurrent use (unlike the teacher graph this
// layer is adapted from, which guards its tables with per-concern
// sync.RWMutex locks) — the kernel's operations are synchronous
// single-threaded transformations of one Store.
type Store struct {
	vertices []Vertex
	edges    []Edge
	wires    []Wire
	faces    []Face
	shells   []Shell
	solids   []Solid
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// AddVertex inserts v and returns its new Id.
func (s *Store) AddVertex(v Vertex) VertexId {
	s.vertices = append(s.vertices, v)
	return VertexId{id{kindVertex, uint64(len(s.vertices))}}
}

// Vertex returns the Vertex named by id. Returns ErrEntityNotFound if
// id does not resolve to an entry in this Store.
func (s *Store) Vertex(vid VertexId) (Vertex, error) {
	if vid.n == 0 || vid.n > uint64(len(s.vertices)) {
		return Vertex{}, ErrEntityNotFound
	}
	return s.vertices[vid.n-1], nil
}

// AddEdge inserts e and returns its new Id.
func (s *Store) AddEdge(e Edge) EdgeId {
	s.edges = append(s.edges, e)
	return EdgeId{id{kindEdge, uint64(len(s.edges))}}
}

// Edge returns the Edge named by id.
func (s *Store) Edge(eid EdgeId) (Edge, error) {
	if eid.n == 0 || eid.n > uint64(len(s.edges)) {
		return Edge{}, ErrEntityNotFound
	}
	return s.edges[eid.n-1], nil
}

// AddWire inserts w and returns its new Id.
func (s *Store) AddWire(w Wire) WireId {
	s.wires = append(s.wires, w)
	return WireId{id{kindWire, uint64(len(s.wires))}}
}

// Wire returns the Wire named by id.
func (s *Store) Wire(wid WireId) (Wire, error) {
	if wid.n == 0 || wid.n > uint64(len(s.wires)) {
		return Wire{}, ErrEntityNotFound
	}
	return s.wires[wid.n-1], nil
}

// AddFace inserts f and returns its new Id.
func (s *Store) AddFace(f Face) FaceId {
	s.faces = append(s.faces, f)
	return FaceId{id{kindFace, uint64(len(s.faces))}}
}

// Face returns the Face named by id.
func (s *Store) Face(fid FaceId) (Face, error) {
	if fid.n == 0 || fid.n > uint64(len(s.faces)) {
		return Face{}, ErrEntityNotFound
	}
	return s.faces[fid.n-1], nil
}

// AddShell inserts sh and returns its new Id.
func (s *Store) AddShell(sh Shell) ShellId {
	s.shells = append(s.shells, sh)
	return ShellId{id{kindShell, uint64(len(s.shells))}}
}

// Shell returns the Shell named by id.
func (s *Store) Shell(shid ShellId) (Shell, error) {
	if shid.n == 0 || shid.n > uint64(len(s.shells)) {
		return Shell{}, ErrEntityNotFound
	}
	return s.shells[shid.n-1], nil
}

// AddSolid inserts sol and returns its new Id.
func (s *Store) AddSolid(sol Solid) SolidId {
	s.solids = append(s.solids, sol)
	return SolidId{id{kindSolid, uint64(len(s.solids))}}
}

// Solid returns the Solid named by id.
func (s *Store) Solid(solid SolidId) (Solid, error) {
	if solid.n == 0 || solid.n > uint64(len(s.solids)) {
		return Solid{}, ErrEntityNotFound
	}
	return s.solids[solid.n-1], nil
}

// FaceIds returns every FaceId currently in the Store, in insertion
// order, so a caller can walk all faces without tracking its own
// registry.
func (s *Store) FaceIds() []FaceId {
	out := make([]FaceId, len(s.faces))
	for i := range s.faces {
		out[i] = FaceId{id{kindFace, uint64(i + 1)}}
	}
	return out
}
