// Package math3d provides the vector and matrix primitives for the facet renderer.
//
// Vectors are homogeneous row vectors and are multiplied on the left of a
// matrix (v * M), so composed transforms apply left to right.
package math3d

import "math"

// Vec3H is a 3D vector with a homogeneous W component.
// Points carry W = 1; W only changes through matrix multiplication
// and is consumed by the perspective divide.
type Vec3H struct {
	X, Y, Z, W float64
}

// Point creates a Vec3H with W = 1.
func Point(x, y, z float64) Vec3H {
	return Vec3H{x, y, z, 1}
}

// Zero returns the origin point.
func Zero() Vec3H {
	return Vec3H{W: 1}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3H {
	return Vec3H{0, 1, 0, 1}
}

// Add returns a + b. The result is a point (W = 1).
func (a Vec3H) Add(b Vec3H) Vec3H {
	return Vec3H{a.X + b.X, a.Y + b.Y, a.Z + b.Z, 1}
}

// Sub returns a - b. The result is a point (W = 1).
func (a Vec3H) Sub(b Vec3H) Vec3H {
	return Vec3H{a.X - b.X, a.Y - b.Y, a.Z - b.Z, 1}
}

// Scale returns a * s.
func (a Vec3H) Scale(s float64) Vec3H {
	return Vec3H{a.X * s, a.Y * s, a.Z * s, 1}
}

// Div returns a / s. No guard is applied; callers divide by a known non-zero value.
func (a Vec3H) Div(s float64) Vec3H {
	return Vec3H{a.X / s, a.Y / s, a.Z / s, 1}
}

// Dot returns the dot product of the XYZ parts.
func (a Vec3H) Dot(b Vec3H) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3H) Cross(b Vec3H) Vec3H {
	return Vec3H{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		1,
	}
}

// Len returns the length of the XYZ part.
func (a Vec3H) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns the unit vector in the same direction.
//
// A zero-length vector is returned unchanged.
func (a Vec3H) Normalize() Vec3H {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

// Negate returns -a.
func (a Vec3H) Negate() Vec3H {
	return Vec3H{-a.X, -a.Y, -a.Z, 1}
}

// Lerp returns the point a + (b-a)*t.
func (a Vec3H) Lerp(b Vec3H, t float64) Vec3H {
	return a.Add(b.Sub(a).Scale(t))
}

// PerspectiveDivide divides X, Y and Z by W. W must be non-zero.
func (a Vec3H) PerspectiveDivide() Vec3H {
	return a.Div(a.W)
}

// Transform returns the row vector a multiplied by m (a * m).
func (a Vec3H) Transform(m Mat4) Vec3H {
	return m.MulVec(a)
}

// Min returns the component-wise minimum.
func (a Vec3H) Min(b Vec3H) Vec3H {
	return Vec3H{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z), 1}
}

// Max returns the component-wise maximum.
func (a Vec3H) Max(b Vec3H) Vec3H {
	return Vec3H{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z), 1}
}
