package topo

import (
	"testing"

	"github.com/brepkit/kernel/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T, s *Store) Wire {
	t.Helper()
	p := [4]geom.Point3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	var v [4]VertexId
	for i, pt := range p {
		v[i] = s.AddVertex(Vertex{Point: pt})
	}
	var oe []OrientedEdge
	for i := 0; i < 4; i++ {
		from, to := v[i], v[(i+1)%4]
		vf, _ := s.Vertex(from)
		vt, _ := s.Vertex(to)
		line, err := geom.NewLine(vf.Point, vt.Point.Sub(vf.Point), 0, 1)
		require.NoError(t, err)
		eid := s.AddEdge(Edge{Curve: line, Start: from, End: to})
		oe = append(oe, OrientedEdge{Edge: eid})
	}
	return Wire{Edges: oe}
}

func TestVertexAddAndLookup(t *testing.T) {
	s := NewStore()
	id := s.AddVertex(Vertex{Point: geom.Point3{X: 1, Y: 2, Z: 3}})
	v, err := s.Vertex(id)
	require.NoError(t, err)
	assert.Equal(t, geom.Point3{X: 1, Y: 2, Z: 3}, v.Point)
}

func TestVertexLookupMissing(t *testing.T) {
	s := NewStore()
	_, err := s.Vertex(VertexId{id{kindVertex, 99}})
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestValidateWireClosedSquare(t *testing.T) {
	s := NewStore()
	w := square(t, s)
	assert.NoError(t, s.ValidateWireClosed(w))
}

func TestValidateWireNotContinuous(t *testing.T) {
	s := NewStore()
	w := square(t, s)
	w.Edges[2], w.Edges[1] = w.Edges[1], w.Edges[2]
	assert.ErrorIs(t, s.ValidateWireContinuous(w), ErrWireNotContinuous)
}

func TestValidateWireEmpty(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.ValidateWireContinuous(Wire{}), ErrEmptyWire)
}

func TestValidateShellClosedUnitCube(t *testing.T) {
	s := NewStore()
	sh, _ := unitCubeShell(t, s)
	assert.NoError(t, s.ValidateShellClosed(sh))
	assert.NoError(t, s.ValidateShellOrientation(sh))
}

// unitCubeShell builds a minimal closed, consistently oriented shell:
// six square faces sharing edges pairwise with opposite senses.
func unitCubeShell(t *testing.T, s *Store) (Shell, SolidId) {
	t.Helper()
	pts := [8]geom.Point3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	var v [8]VertexId
	for i, p := range pts {
		v[i] = s.AddVertex(Vertex{Point: p})
	}
	edgeCache := make(map[[2]int]EdgeId)
	line := func(a, b int) (EdgeId, bool) {
		if eid, ok := edgeCache[[2]int{a, b}]; ok {
			return eid, false
		}
		if eid, ok := edgeCache[[2]int{b, a}]; ok {
			return eid, true
		}
		l, err := geom.NewLine(pts[a], pts[b].Sub(pts[a]), 0, 1)
		require.NoError(t, err)
		eid := s.AddEdge(Edge{Curve: l, Start: v[a], End: v[b]})
		edgeCache[[2]int{a, b}] = eid
		return eid, false
	}
	faceLoop := func(idx ...int) Face {
		var oes []OrientedEdge
		for i := range idx {
			a, b := idx[i], idx[(i+1)%len(idx)]
			eid, rev := line(a, b)
			oes = append(oes, OrientedEdge{Edge: eid, Reversed: rev})
		}
		wid := s.AddWire(Wire{Edges: oes})
		n := pts[idx[1]].Sub(pts[idx[0]]).Cross(pts[idx[2]].Sub(pts[idx[1]]))
		pl, err := geom.NewPlane(pts[idx[0]], n)
		require.NoError(t, err)
		return Face{Surface: pl, Outer: wid, SameSense: true}
	}

	faces := [][]int{
		{0, 3, 2, 1}, // bottom, normal -Z
		{4, 5, 6, 7}, // top, normal +Z
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
	var faceIds []FaceId
	for _, idx := range faces {
		faceIds = append(faceIds, s.AddFace(faceLoop(idx...)))
	}
	sh := Shell{Faces: faceIds}
	shid := s.AddShell(sh)
	solid := s.AddSolid(Solid{Outer: shid})
	return sh, solid
}
