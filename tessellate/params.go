package tessellate

import "github.com/brepkit/kernel/geom"

// Params controls tessellation quality.
type Params struct {
	// Tolerance is the maximum allowed chord-to-curve deviation.
	Tolerance float64
	// MinSegments and MaxSegments bound a curve's sampled segment count.
	MinSegments, MaxSegments int
}

// DefaultParams matches the reference tolerance and segment bounds.
func DefaultParams() Params {
	return Params{Tolerance: 0.01, MinSegments: 4, MaxSegments: 256}
}

// Polyline is an ordered 3D point approximation of a curve.
type Polyline struct {
	Points []geom.Point3
}

// TriangleMesh is a triangle approximation of one or more surfaces.
// UVs are in the source surface's parameter space and may exceed
// [0, 1]; Indices and Normals/UVs/Vertices are parallel by vertex
// index (Indices[i] names three positions into Vertices/Normals/UVs).
type TriangleMesh struct {
	Vertices []geom.Point3
	Normals  []geom.Vec3
	UVs      []geom.Point2
	Indices  [][3]int
}

// Append concatenates other's vertices/normals/uvs/triangles onto m,
// offsetting other's indices by m's current vertex count.
func (m *TriangleMesh) Append(other TriangleMesh) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	for _, tri := range other.Indices {
		m.Indices = append(m.Indices, [3]int{tri[0] + offset, tri[1] + offset, tri[2] + offset})
	}
}
