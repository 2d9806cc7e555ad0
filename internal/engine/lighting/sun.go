// Package lighting computes the scene light for each frame.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitLight is a white point light circling the scene above the river.
type OrbitLight struct {
	Radius float32 // horizontal orbit radius
	Height float32
	Rate   float32 // radians per second
	Color  mgl32.Vec3
}

// DefaultOrbitLight circles 5 units out, 8 units up, once every 63 seconds.
func DefaultOrbitLight() OrbitLight {
	return OrbitLight{
		Radius: 5,
		Height: 8,
		Rate:   0.1,
		Color:  mgl32.Vec3{1, 1, 1},
	}
}

// Position returns the light position after t seconds.
func (l OrbitLight) Position(t float32) mgl32.Vec3 {
	a := float64(t * l.Rate)
	return mgl32.Vec3{
		l.Radius * float32(math.Cos(a)),
		l.Height,
		l.Radius * float32(math.Sin(a)),
	}
}
