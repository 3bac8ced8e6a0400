package geom

// SurfaceDomain bounds a surface's (u, v) parameter rectangle. A
// negative-infinity/positive-infinity bound (used by Plane) means the
// surface is unbounded in that parameter.
type SurfaceDomain struct {
	UMin, UMax float64
	VMin, VMax float64
}

// Surface is implemented by every analytic surface variant: Plane,
// Cylinder, Cone, Sphere, Torus. The set is closed — callers type
// switch exhaustively rather than registering new variants.
type Surface interface {
	Evaluate(u, v float64) Point3
	Normal(u, v float64) Vec3
	Domain() SurfaceDomain
}

// InvertibleSurface is a Surface that can recover (u, v) from a point
// known to lie on it (within Tolerance).
type InvertibleSurface interface {
	Surface
	Inverse(p Point3) (u, v float64, err error)
}
