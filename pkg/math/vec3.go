// Package math provides the small vector and scalar helpers shared by the
// lighting and camera engines.
package math

import "math"

// Vec3 is a 3D vector, used for light directions handed to the renderer.
type Vec3 struct {
	X, Y, Z float32
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
