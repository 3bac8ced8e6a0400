package tessellate

import "errors"

var (
	// ErrUnsupportedSurface is returned by TessellateFace for a surface
	// kind with no triangulation implemented.
	ErrUnsupportedSurface = errors.New("tessellate: surface kind not supported")
	// ErrDegeneratePolygon is returned when a face's sampled boundary
	// has fewer than three distinct points, or ear-clipping cannot find
	// a valid ear in a polygon that still has vertices left.
	ErrDegeneratePolygon = errors.New("tessellate: polygon has no valid ears")
)
