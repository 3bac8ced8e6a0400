// Package geom is the analytic geometry layer of the kernel.
//
// It provides the numeric primitives (Vec3, Point3, Vec2, Point2), the
// global Tolerance used as the equality/degeneracy threshold throughout
// the kernel, the curve variants (Line, Arc, Circle, Ellipse, BSpline)
// and surface variants (Plane, Cylinder, Cone, Sphere, Torus), and a
// small fixed-size linear solver used by intersection and inverse code.
//
// Every curve implements Curve: Evaluate, Tangent, Domain and, where a
// closed form exists, Inverse. Every surface implements Surface:
// Evaluate, Normal, Domain and Inverse. Both sets are closed (no plugin
// registration) so callers can type-switch exhaustively.
package geom
