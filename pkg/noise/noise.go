// Package noise implements deterministic 2D lattice gradient noise with
// fractal and ridged octave sums.
package noise

import (
	gomath "math"
	"math/rand/v2"

	"github.com/riverview3d/riverside/pkg/math"
)

// Lattice hash multipliers. Each lattice point seeds its own PRNG with
// ix*hashX + iy*hashY so gradients never depend on sampling order.
const (
	hashX = 1619
	hashY = 31337
)

// Generator produces gradient noise for a fixed seed.
// The zero value is usable and equivalent to New(0).
type Generator struct {
	seed int64
}

// New creates a generator. Two generators with the same seed return
// identical values for identical inputs.
func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Seed returns the generator seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Octaves configures a fractal sum.
type Octaves struct {
	Count       int
	Persistence float64 // amplitude multiplier per octave
	Lacunarity  float64 // frequency multiplier per octave
}

// DefaultOctaves matches the terrain generator defaults.
func DefaultOctaves() Octaves {
	return Octaves{Count: 4, Persistence: 0.5, Lacunarity: 2.0}
}

// RidgeOptions configures a ridged sum.
type RidgeOptions struct {
	Count      int
	Lacunarity float64
	Gain       float64
	Offset     float64
}

// DefaultRidge matches the mountain generator defaults.
func DefaultRidge() RidgeOptions {
	return RidgeOptions{Count: 4, Lacunarity: 2.0, Gain: 0.5, Offset: 1.0}
}

func (g *Generator) gradient(ix, iy int) (float64, float64) {
	src := rand.NewPCG(uint64(int64(ix*hashX+iy*hashY)), uint64(g.seed))
	angle := rand.New(src).Float64() * 2 * gomath.Pi
	return gomath.Cos(angle), gomath.Sin(angle)
}

// Gradient returns the unit gradient assigned to lattice point (ix, iy).
func (g *Generator) Gradient(ix, iy int) math.Vec2 {
	gx, gy := g.gradient(ix, iy)
	return math.Vec2{X: float32(gx), Y: float32(gy)}
}

func (g *Generator) dotGrid(ix, iy int, x, y float64) float64 {
	gx, gy := g.gradient(ix, iy)
	return (x-float64(ix))*gx + (y-float64(iy))*gy
}

// Noise2D returns lattice gradient noise at (x, y). Corner contributions are
// blended with linear weights, so the result stays within [-1, 1] and is
// exactly zero on lattice points.
func (g *Generator) Noise2D(x, y float64) float64 {
	x0 := int(gomath.Floor(x))
	y0 := int(gomath.Floor(y))
	x1, y1 := x0+1, y0+1

	sx := x - float64(x0)
	sy := y - float64(y0)

	top := lerp(g.dotGrid(x0, y0, x, y), g.dotGrid(x1, y0, x, y), sx)
	bottom := lerp(g.dotGrid(x0, y1, x, y), g.dotGrid(x1, y1, x, y), sx)
	return lerp(top, bottom, sy)
}

// Fractal sums o.Count octaves of Noise2D and normalizes by the total
// amplitude, keeping the result within [-1, 1].
func (g *Generator) Fractal(x, y float64, o Octaves) float64 {
	if o.Count < 1 {
		return 0
	}

	var value, total float64
	amplitude, frequency := 1.0, 1.0
	for range o.Count {
		value += g.Noise2D(x*frequency, y*frequency) * amplitude
		total += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}
	return value / total
}

// Ridge returns ridged multifractal noise. Each octave is folded around
// o.Offset and squared, and weighted by the previous octave so ridgelines
// sharpen. The result lies within [0, Offset^2].
func (g *Generator) Ridge(x, y float64, o RidgeOptions) float64 {
	if o.Count < 1 {
		return 0
	}

	var result, total float64
	amplitude, frequency, weight := 0.5, 1.0, 1.0
	for range o.Count {
		n := o.Offset - gomath.Abs(g.Noise2D(x*frequency, y*frequency))
		n *= n
		n *= weight

		weight = clamp(n*o.Gain, 0, 1)

		result += n * amplitude
		total += amplitude
		amplitude *= o.Gain
		frequency *= o.Lacunarity
	}
	return result / total
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}
