// Package terrain generates height fields and turns them into grid meshes.
package terrain

import "github.com/riverview3d/riverside/internal/engine/geometry"

// HeightField is an immutable grid of elevations indexed [x][z].
// Its dimensions are fixed at construction.
type HeightField struct {
	heights [][]float32
	width   int
	depth   int
}

// Width returns the number of samples along X.
func (h *HeightField) Width() int { return h.width }

// Depth returns the number of samples along Z.
func (h *HeightField) Depth() int { return h.depth }

// At returns the sample at grid cell (x, z).
func (h *HeightField) At(x, z int) float32 { return h.heights[x][z] }

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh holds a built terrain surface ready for GPU upload.
type Mesh struct {
	Buffer geometry.Buffer
	Bounds Bounds
}

// NormalMode selects how terrain vertex normals are produced.
type NormalMode int

const (
	// NormalsUp gives every vertex a constant +Y normal. Cheap and flat-lit;
	// the default.
	NormalsUp NormalMode = iota
	// NormalsFace uses each triangle's slope normal.
	NormalsFace
	// NormalsSmooth averages face normals at shared grid points.
	NormalsSmooth
)

// MeshOptions configures BuildMesh.
type MeshOptions struct {
	Normals  NormalMode
	UVRepeat float32 // texture tiles across the whole patch; 0 means 1
}
