package edit

import "errors"

var (
	// ErrUnsupportedSurface is returned by FaceOffset/ThickenFace/Shell
	// when a face's surface is not one of Plane, Cylinder, Cone,
	// Sphere, or Torus.
	ErrUnsupportedSurface = errors.New("edit: surface kind not supported")
	// ErrDegenerateOffset is returned when an offset would collapse a
	// curved surface to zero or negative radius, or when a boundary
	// point lies exactly on the axis/center an offset direction is
	// measured from.
	ErrDegenerateOffset = errors.New("edit: offset distance produces a degenerate surface")
	// ErrZeroNormal is returned by Split when the cutting plane's
	// normal is the zero vector.
	ErrZeroNormal = errors.New("edit: split normal must be non-zero")
)
