// Package math3 implements the 3D vector and matrix arithmetic used by
// the pixelforge rendering pipeline: 3- and 4-component float32 vectors
// and row-major 4x4 matrices with the usual projective builders
// (Frustum, Ortho, LookAt).
//
// All types are small values meant to be passed and returned by value.
package math3

import (
	math "github.com/chewxy/math32"
)

// Clamp returns v limited to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math.Max(lo, math.Min(hi, v))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / math.Pi)
}
