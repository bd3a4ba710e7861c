package math3

import (
	math "github.com/chewxy/math32"
)

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4D homogeneous vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns the element-wise sum of p and q.
func Add(p, q Vec3) Vec3 {
	return Vec3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the element-wise difference p - q.
func Sub(p, q Vec3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by f.
func Scale(f float32, p Vec3) Vec3 {
	return Vec3{X: f * p.X, Y: f * p.Y, Z: f * p.Z}
}

// Dot returns the dot product of p and q.
func Dot(p, q Vec3) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func Cross(p, q Vec3) Vec3 {
	return Vec3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
func Norm(p Vec3) float32 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Norm2 returns the squared Euclidean length of p.
func Norm2(p Vec3) float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Unit returns p normalized to unit length.
// The zero vector is returned unchanged.
func Unit(p Vec3) Vec3 {
	n := Norm(p)
	if n == 0 {
		return p
	}
	return Scale(1/n, p)
}

// Neg returns p with all components negated.
func Neg(p Vec3) Vec3 {
	return Vec3{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Reflect returns the reflection of incident vector i about the unit normal n.
func Reflect(i, n Vec3) Vec3 {
	return Sub(i, Scale(2*Dot(i, n), n))
}

// EqualVec3 reports whether a and b match within tolerance per component.
func EqualVec3(a, b Vec3, tolerance float32) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// Vec3FromVec4 drops the W component of v.
func Vec3FromVec4(v Vec4) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec4FromVec3 extends v with the given W component.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Add4 returns the element-wise sum of two 4D vectors.
func Add4(p, q Vec4) Vec4 {
	return Vec4{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z, W: p.W + q.W}
}

// Sub4 returns the element-wise difference p - q of two 4D vectors.
func Sub4(p, q Vec4) Vec4 {
	return Vec4{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z, W: p.W - q.W}
}

// Scale4 returns p scaled by f.
func Scale4(f float32, p Vec4) Vec4 {
	return Vec4{X: f * p.X, Y: f * p.Y, Z: f * p.Z, W: f * p.W}
}

// Lerp4 linearly interpolates between a and b by t in [0, 1].
func Lerp4(a, b Vec4, t float32) Vec4 {
	return Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}
