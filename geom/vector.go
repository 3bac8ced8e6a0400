package geom

import "math"

// Tolerance is the single global linear equality/degeneracy threshold
// used throughout the kernel. It is adequate for models at unit-meter
// scale; scaling a model beyond roughly ±1e6 units may require
// re-tuning this constant at the source.
const Tolerance = 1e-9

// Vec3 is a 3D direction/displacement vector.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a 3D position. Kept distinct from Vec3 so that
// point-minus-point yields a Vec3 and point-plus-vector yields a Point3,
// matching the analytic-geometry layer's arithmetic throughout.
type Point3 struct {
	X, Y, Z float64
}

// NewVec3 constructs a Vec3 from components.
func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// NewPoint3 constructs a Point3 from components.
func NewPoint3(x, y, z float64) Point3 { return Point3{x, y, z} }

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar (inner) product v.w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the vector cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. Panics-free: returns the
// zero vector unchanged if its norm is below Tolerance; callers that
// require a genuine unit direction must check length themselves (the
// curve/surface constructors do, returning ErrZeroVector).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n < Tolerance {
		return v
	}
	return v.Scale(1 / n)
}

// IsZero reports whether v has length below Tolerance.
func (v Vec3) IsZero() bool { return v.Norm() < Tolerance }

// ApproxEqual reports whether v and w differ by less than Tolerance.
func (v Vec3) ApproxEqual(w Vec3) bool { return v.Sub(w).Norm() < Tolerance }

// Add returns p translated by v.
func (p Point3) Add(v Vec3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Sub returns the displacement from q to p, i.e. p-q.
func (p Point3) Sub(q Point3) Vec3 { return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Vec returns p as a Vec3 rooted at the origin (used by coordinate-free
// determinant/volume formulas).
func (p Point3) Vec() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 { return p.Sub(q).Norm() }

// ApproxEqual reports whether p and q are within Tolerance of each other.
func (p Point3) ApproxEqual(q Point3) bool { return p.Distance(q) < Tolerance }

// Lerp returns the point at parameter t along the segment p->q
// (t=0 -> p, t=1 -> q).
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return p.Add(q.Sub(p).Scale(t))
}

// Vec2 is a 2D direction/displacement vector used by the planar layer.
type Vec2 struct {
	X, Y float64
}

// Point2 is a 2D position.
type Point2 struct {
	X, Y float64
}

// NewVec2 constructs a Vec2 from components.
func NewVec2(x, y float64) Vec2 { return Vec2{x, y} }

// NewPoint2 constructs a Point2 from components.
func NewPoint2(x, y float64) Point2 { return Point2{x, y} }

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the scalar product v.w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar (z-component) cross product v x w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length, or v unchanged if it is
// shorter than Tolerance.
func (v Vec2) Normalize() Vec2 {
	n := v.Norm()
	if n < Tolerance {
		return v
	}
	return v.Scale(1 / n)
}

// Perp returns v rotated +90 degrees (left normal).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Add returns p translated by v.
func (p Point2) Add(v Vec2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }

// Sub returns the displacement from q to p.
func (p Point2) Sub(q Point2) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

// Distance returns the Euclidean distance between p and q.
func (p Point2) Distance(q Point2) float64 { return p.Sub(q).Norm() }

// ApproxEqual reports whether p and q are within Tolerance of each other.
func (p Point2) ApproxEqual(q Point2) bool { return p.Distance(q) < Tolerance }
