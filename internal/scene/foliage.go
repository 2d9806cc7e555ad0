package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/geometry"
)

// HeightSource reports ground height. *Ground satisfies it.
type HeightSource interface {
	HeightAt(x, z float32) float32
}

// TreeTier is one cone of a Christmas tree.
type TreeTier struct {
	Radius, Height float32
	Y              float32
	Color          mgl32.Vec3
}

// ForestConfig describes the tree shape and where trees stand.
type ForestConfig struct {
	Positions    []mgl32.Vec2 // x, z
	Tiers        []TreeTier
	ConeSegments int
	TrunkRadius  float32
	TrunkHeight  float32
	TrunkColor   mgl32.Vec3
}

// DefaultForestConfig plants five three-tier trees around the house.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Positions: []mgl32.Vec2{{6, 2}, {7, -1}, {4, 3}, {5.5, -2.5}, {3.5, -1.5}},
		Tiers: []TreeTier{
			{Radius: 0.6, Height: 0.8, Y: 0, Color: mgl32.Vec3{0.2, 0.7, 0.2}},
			{Radius: 0.4, Height: 0.6, Y: 0.6, Color: mgl32.Vec3{0.15, 0.65, 0.15}},
			{Radius: 0.25, Height: 0.4, Y: 1.1, Color: mgl32.Vec3{0.1, 0.6, 0.1}},
		},
		ConeSegments: 16,
		TrunkRadius:  0.08,
		TrunkHeight:  0.3,
		TrunkColor:   mgl32.Vec3{0.5, 0.3, 0.1},
	}
}

// Forest is a group of Christmas trees sharing one set of meshes. Each tree
// stands on its trunk, so the lowest cone starts TrunkHeight above ground.
type Forest struct {
	static
}

// NewForest plants the trees on ground.
func NewForest(cfg ForestConfig, ground HeightSource, lib *assets.Library) *Forest {
	f := &Forest{static{layer: LayerFoliage}}

	cones := make([]string, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		cones[i] = coneMesh(lib, t.Radius, t.Height, cfg.ConeSegments)
	}
	lib.Mesh(MeshTrunk, func() geometry.Buffer {
		return geometry.Cylinder(geometry.CylinderOptions{
			Radius:   cfg.TrunkRadius,
			Height:   cfg.TrunkHeight,
			Segments: 6,
		})
	})

	for _, p := range cfg.Positions {
		base := mgl32.Vec3{p[0], ground.HeightAt(p[0], p[1]) + cfg.TrunkHeight, p[1]}
		f.add(MeshTrunk, mgl32.Translate3D(base[0], base[1]-cfg.TrunkHeight/2, base[2]), Solid(cfg.TrunkColor))
		for i, t := range cfg.Tiers {
			f.add(cones[i], mgl32.Translate3D(base[0], base[1]+t.Y, base[2]), Textured(t.Color, TexTree))
		}
	}
	return f
}

// LogConfig places one fallen log.
type LogConfig struct {
	X, Z float32
	Yaw  float32
}

// DefaultLogs scatters logs at the forest edge.
func DefaultLogs() []LogConfig {
	return []LogConfig{
		{X: 6.5, Z: 0.8, Yaw: 20},
		{X: 4.2, Z: -3.2, Yaw: 75},
		{X: 7.5, Z: 2.8, Yaw: -30},
	}
}

const (
	logRadius = 0.08
	logLength = 1.2
)

// Logs are Y-axis cylinders laid on their side.
type Logs struct {
	static
}

// NewLogs places logs on ground.
func NewLogs(logs []LogConfig, ground HeightSource, lib *assets.Library) *Logs {
	lib.Mesh(MeshLog, func() geometry.Buffer {
		return geometry.Cylinder(geometry.CylinderOptions{Radius: logRadius, Height: logLength, Segments: 16})
	})

	l := &Logs{static{layer: LayerFoliage}}
	lying := mgl32.HomogRotate3DZ(mgl32.DegToRad(90))
	for _, c := range logs {
		y := ground.HeightAt(c.X, c.Z) + logRadius
		model := transform(mgl32.Vec3{c.X, y, c.Z}, c.Yaw, mgl32.Vec3{1, 1, 1}).Mul4(lying)
		l.add(MeshLog, model, Textured(mgl32.Vec3{0.5, 0.35, 0.15}, TexLog))
	}
	return l
}
