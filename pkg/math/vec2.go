package math

import "math"

// Vec2 is a 2D vector, used for texture coordinates and lattice gradients.
type Vec2 struct {
	X, Y float32
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}
