package topo

import "fmt"

// kind tags an Id with the entity table it indexes, so a VertexId
// value can never be accepted where a FaceId is expected even though
// both are, underneath, a kind byte plus a uint64 index.
type kind byte

const (
	kindVertex kind = iota + 1
	kindEdge
	kindWire
	kindFace
	kindShell
	kindSolid
)

func (k kind) String() string {
	switch k {
	case kindVertex:
		return "Vertex"
	case kindEdge:
		return "Edge"
	case kindWire:
		return "Wire"
	case kindFace:
		return "Face"
	case kindShell:
		return "Shell"
	case kindSolid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// id is the common representation shared by every typed Id below. It
// is comparable, so typed Ids are valid map keys.
type id struct {
	k kind
	n uint64
}

func (i id) String() string { return fmt.Sprintf("%s#%d", i.k, i.n) }

// VertexId identifies a Vertex within a Store.
type VertexId struct{ id }

// EdgeId identifies an Edge within a Store.
type EdgeId struct{ id }

// WireId identifies a Wire within a Store.
type WireId struct{ id }

// FaceId identifies a Face within a Store.
type FaceId struct{ id }

// ShellId identifies a Shell within a Store.
type ShellId struct{ id }

// SolidId identifies a Solid within a Store.
type SolidId struct{ id }
