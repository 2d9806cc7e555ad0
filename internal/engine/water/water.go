// Package water provides the river surface geometry and its wave clock.
package water

import (
	gomath "math"

	"github.com/riverview3d/riverside/internal/engine/geometry"
	"github.com/riverview3d/riverside/internal/engine/terrain"
)

// Default river surface dimensions.
const (
	DefaultWidth     = 7.8
	DefaultLength    = 19.8
	DefaultSegmentsX = 20
	DefaultSegmentsZ = 40
	DefaultLevel     = 0.01
)

// Surface keeps the water animation clock. Wave displacement itself happens
// in the water vertex shader, driven by Time.
type Surface struct {
	time float32
}

// Update advances the clock. It never decreases.
func (s *Surface) Update(deltaTime float32) {
	if deltaTime > 0 {
		s.time += deltaTime
	}
}

// Time returns the accumulated seconds.
func (s *Surface) Time() float32 {
	return s.time
}

// BuildSurface returns a flat grid at y=level with segX x segZ cells.
// The grid is dense so the shader has vertices to displace.
func BuildSurface(width, length float32, segX, segZ int, level float32) geometry.Buffer {
	hf := terrain.NewHeightField(segX+1, segZ+1, terrain.Flat(float64(level)))
	return terrain.BuildMesh(hf, width, length, terrain.MeshOptions{UVRepeat: 4}).Buffer
}

// WaveHeight returns the ripple offset at (x, z) and time t. The water
// vertex shader evaluates the same sum so floating objects track the
// rendered surface.
func WaveHeight(x, z, t float32) float32 {
	fx, fz, ft := float64(x), float64(z), float64(t)
	return float32(gomath.Sin(fx*3+ft*1.5)*0.02 +
		gomath.Cos(fz*2+ft)*0.015 +
		gomath.Sin(fx*5+fz*3+ft*2)*0.01)
}

// MaxWaveHeight bounds |WaveHeight|.
const MaxWaveHeight = 0.02 + 0.015 + 0.01

// RockAngle returns the roll, in degrees, of a hull riding the waves at z.
func RockAngle(z, t float32) float32 {
	return float32(gomath.Cos(float64(z)*2+float64(t)*1.5)) * 3
}
