package terrain

import (
	gomath "math"

	"github.com/riverview3d/riverside/pkg/math"
	"github.com/riverview3d/riverside/pkg/noise"
)

// HeightFunc returns an elevation for normalized grid coordinates
// nx, nz in [-1, 1].
type HeightFunc func(nx, nz float64) float64

// NewHeightField samples fn over a width x depth grid. Both dimensions are
// raised to at least 2 so the field always spans one cell.
func NewHeightField(width, depth int, fn HeightFunc) *HeightField {
	width = max(width, 2)
	depth = max(depth, 2)

	heights := make([][]float32, width)
	for x := range width {
		heights[x] = make([]float32, depth)
		nx := 2*float64(x)/float64(width-1) - 1
		for z := range depth {
			nz := 2*float64(z)/float64(depth-1) - 1
			heights[x][z] = float32(fn(nx, nz))
		}
	}

	return &HeightField{heights: heights, width: width, depth: depth}
}

// Flat returns a HeightFunc with a constant elevation.
func Flat(level float64) HeightFunc {
	return func(_, _ float64) float64 { return level }
}

// Peak is a single mountain summit in normalized coordinates.
type Peak struct {
	X, Z      float64
	Strength  float64
	Sharpness float64 // falloff exponent; larger is pointier
}

// DefaultPeaks is the three-summit range behind the river.
func DefaultPeaks() []Peak {
	return []Peak{
		{X: 0, Z: 0, Strength: 1.0, Sharpness: 2.5},
		{X: -0.3, Z: -0.2, Strength: 0.8, Sharpness: 2.0},
		{X: 0.25, Z: -0.3, Strength: 0.7, Sharpness: 3.0},
	}
}

// PeakField superimposes peaks, each contributing
// max(0, 1-1.5d)^sharpness * strength at distance d, adds a small positive
// ripple, and scales the sum by maxHeight.
func PeakField(peaks []Peak, ripple bool, maxHeight float64) HeightFunc {
	return func(nx, nz float64) float64 {
		var h float64
		for _, p := range peaks {
			d := gomath.Hypot(nx-p.X, nz-p.Z)
			falloff := gomath.Max(0, 1-d*1.5)
			h += gomath.Pow(falloff, p.Sharpness) * p.Strength
		}
		if ripple {
			h += gomath.Max(0, gomath.Sin(nx*5)*gomath.Cos(nz*5)*0.1)
		}
		return h * maxHeight
	}
}

// NoiseField samples fractal noise at scale lattice cells across the grid.
func NoiseField(gen *noise.Generator, scale float64, o noise.Octaves, amplitude float64) HeightFunc {
	return func(nx, nz float64) float64 {
		return gen.Fractal(nx*scale, nz*scale, o) * amplitude
	}
}

// RidgeField samples ridged noise for sharp crest lines.
func RidgeField(gen *noise.Generator, scale float64, o noise.RidgeOptions, amplitude float64) HeightFunc {
	return func(nx, nz float64) float64 {
		return gen.Ridge(nx*scale, nz*scale, o) * amplitude
	}
}

// Sum adds the elevations of several sources.
func Sum(fns ...HeightFunc) HeightFunc {
	return func(nx, nz float64) float64 {
		var h float64
		for _, fn := range fns {
			h += fn(nx, nz)
		}
		return h
	}
}

// CarveChannel flattens a river bed at bedLevel wherever the normalized x
// lies within halfWidth of centerX. Banks within another halfWidth blend
// linearly back to fn.
func CarveChannel(fn HeightFunc, centerX, halfWidth, bedLevel float64) HeightFunc {
	return func(nx, nz float64) float64 {
		d := gomath.Abs(nx - centerX)
		h := fn(nx, nz)
		switch {
		case d <= halfWidth:
			return bedLevel
		case d < 2*halfWidth:
			t := (d - halfWidth) / halfWidth
			return bedLevel + (h-bedLevel)*t
		}
		return h
	}
}

// Sample returns the bilinearly interpolated height at fractional grid
// coordinates. Coordinates outside the grid are clamped to its edge.
func (h *HeightField) Sample(gx, gz float32) float32 {
	gx = math.Clamp(gx, 0, float32(h.width-1))
	gz = math.Clamp(gz, 0, float32(h.depth-1))

	cellX := min(int(gx), h.width-2)
	cellZ := min(int(gz), h.depth-2)

	fracX := gx - float32(cellX)
	fracZ := gz - float32(cellZ)

	// South edge (lower Z) then north edge, then lerp across Z.
	south := math.Lerp(h.heights[cellX][cellZ], h.heights[cellX+1][cellZ], fracX)
	north := math.Lerp(h.heights[cellX][cellZ+1], h.heights[cellX+1][cellZ+1], fracX)
	return math.Lerp(south, north, fracZ)
}

// Patch places a height field on a world-space footprint centred on the
// origin.
type Patch struct {
	Field *HeightField
	SizeX float32
	SizeZ float32
}

// HeightAt returns the interpolated surface height at a local position.
func (p Patch) HeightAt(x, z float32) float32 {
	gx := (x/p.SizeX + 0.5) * float32(p.Field.width-1)
	gz := (z/p.SizeZ + 0.5) * float32(p.Field.depth-1)
	return p.Field.Sample(gx, gz)
}

// Mesh builds the patch surface.
func (p Patch) Mesh(opts MeshOptions) *Mesh {
	return BuildMesh(p.Field, p.SizeX, p.SizeZ, opts)
}
