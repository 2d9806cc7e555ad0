package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/geometry"
	"github.com/riverview3d/riverside/internal/engine/terrain"
	"github.com/riverview3d/riverside/internal/engine/water"
	"github.com/riverview3d/riverside/pkg/noise"
)

// MountainConfig shapes the mountain range.
type MountainConfig struct {
	Position  mgl32.Vec3
	Grid      int
	Size      float32
	MaxHeight float64
	Peaks     []terrain.Peak
	Ripple    bool
	// Ridge adds ridged noise of this height on top of the peaks.
	Ridge   float64
	Normals terrain.NormalMode
}

// DefaultMountainConfig is the three-summit range behind the bridge.
func DefaultMountainConfig() MountainConfig {
	return MountainConfig{
		Position:  mgl32.Vec3{8, -0.2, -16},
		Grid:      40,
		Size:      12,
		MaxHeight: 8,
		Peaks:     terrain.DefaultPeaks(),
		Ripple:    true,
	}
}

// Mountains is a height-field mesh shaded with the hill texture.
type Mountains struct {
	static
	patch terrain.Patch
}

// NewMountains builds the range. gen feeds the optional ridge detail.
func NewMountains(cfg MountainConfig, gen *noise.Generator, lib *assets.Library) *Mountains {
	fn := terrain.PeakField(cfg.Peaks, cfg.Ripple, cfg.MaxHeight)
	if cfg.Ridge > 0 {
		fn = terrain.Sum(fn, terrain.RidgeField(gen, 3, noise.DefaultRidge(), cfg.Ridge))
	}
	m := &Mountains{
		static: static{layer: LayerMountains},
		patch: terrain.Patch{
			Field: terrain.NewHeightField(cfg.Grid, cfg.Grid, fn),
			SizeX: cfg.Size,
			SizeZ: cfg.Size,
		},
	}

	const key = "mountains"
	lib.Mesh(key, func() geometry.Buffer {
		return m.patch.Mesh(terrain.MeshOptions{Normals: cfg.Normals}).Buffer
	})
	m.add(key, mgl32.Translate3D(cfg.Position[0], cfg.Position[1], cfg.Position[2]),
		Textured(mgl32.Vec3{0.6, 0.5, 0.3}, TexHill))
	return m
}

// Patch returns the underlying height patch.
func (m *Mountains) Patch() terrain.Patch { return m.patch }

// GroundConfig shapes the valley floor and its river bed.
type GroundConfig struct {
	Y      float32
	Size   float32
	Grid   int
	Noise  float64 // height of the rolling detail
	Scale  float64 // noise lattice cells across the patch
	RiverX float32 // world x of the river centre
	// RiverHalfWidth is half the carved bed width in world units.
	RiverHalfWidth float32
	RiverBed       float64
	Normals        terrain.NormalMode
}

// DefaultGroundConfig is a 20x20 meadow with the river at x=-3.
func DefaultGroundConfig() GroundConfig {
	return GroundConfig{
		Y:              -0.1,
		Size:           20,
		Grid:           64,
		Noise:          0.08,
		Scale:          6,
		RiverX:         -3,
		RiverHalfWidth: water.DefaultWidth / 2,
		RiverBed:       -0.3,
	}
}

// Ground is the grass surface. Foliage uses HeightAt to sit on it.
type Ground struct {
	static
	cfg   GroundConfig
	patch terrain.Patch
}

// NewGround builds the meadow with a carved river channel.
func NewGround(cfg GroundConfig, gen *noise.Generator, lib *assets.Library) *Ground {
	half := float64(cfg.Size) / 2
	fn := terrain.CarveChannel(
		terrain.NoiseField(gen, cfg.Scale, noise.DefaultOctaves(), cfg.Noise),
		float64(cfg.RiverX)/half,
		float64(cfg.RiverHalfWidth)/half,
		cfg.RiverBed,
	)

	g := &Ground{
		static: static{layer: LayerGround},
		cfg:    cfg,
		patch: terrain.Patch{
			Field: terrain.NewHeightField(cfg.Grid, cfg.Grid, fn),
			SizeX: cfg.Size,
			SizeZ: cfg.Size,
		},
	}

	const key = "ground"
	lib.Mesh(key, func() geometry.Buffer {
		return g.patch.Mesh(terrain.MeshOptions{Normals: cfg.Normals, UVRepeat: 8}).Buffer
	})
	g.add(key, mgl32.Translate3D(0, cfg.Y, 0), Textured(mgl32.Vec3{0.2, 0.8, 0.2}, TexGrass))
	return g
}

// HeightAt returns the world-space ground height at (x, z).
func (g *Ground) HeightAt(x, z float32) float32 {
	return g.cfg.Y + g.patch.HeightAt(x, z)
}

// WaterConfig places the river surface.
type WaterConfig struct {
	X         float32
	Width     float32
	Length    float32
	SegmentsX int
	SegmentsZ int
	Level     float32
	Color     mgl32.Vec3
	Alpha     float32
}

// DefaultWaterConfig matches the carved river bed.
func DefaultWaterConfig() WaterConfig {
	return WaterConfig{
		X:         -3,
		Width:     water.DefaultWidth,
		Length:    water.DefaultLength,
		SegmentsX: water.DefaultSegmentsX,
		SegmentsZ: water.DefaultSegmentsZ,
		Level:     water.DefaultLevel,
		Color:     mgl32.Vec3{0, 0.5, 1},
		Alpha:     0.8,
	}
}

// Water is the animated river. Its clock drives the wave shader and the
// ship's motion.
type Water struct {
	cfg     WaterConfig
	surface *water.Surface
}

// NewWater builds the surface grid.
func NewWater(cfg WaterConfig, lib *assets.Library) *Water {
	lib.Mesh("water", func() geometry.Buffer {
		return water.BuildSurface(cfg.Width, cfg.Length, cfg.SegmentsX, cfg.SegmentsZ, cfg.Level)
	})
	return &Water{cfg: cfg, surface: &water.Surface{}}
}

func (w *Water) Layer() Layer { return LayerWater }

// Surface returns the shared water clock.
func (w *Water) Surface() *water.Surface { return w.surface }

func (w *Water) Update(dt float32) {
	w.surface.Update(dt)
}

func (w *Water) Draw(d Drawer) {
	d.Draw(DrawCall{
		Mesh:  "water",
		Model: mgl32.Translate3D(w.cfg.X, 0, 0),
		Material: Material{
			Color:  w.cfg.Color,
			Alpha:  w.cfg.Alpha,
			Blend:  BlendAlpha,
			Shader: ShaderWater,
		},
	})
}

// Road is the asphalt strip the road cars drive on.
type Road struct {
	static
}

// NewRoad lays the road along z at x=2.
func NewRoad(lib *assets.Library) *Road {
	r := &Road{static{layer: LayerStructures}}
	key := planeMesh(lib, 15, 1)
	r.add(key, transform(mgl32.Vec3{2, 0.01, 0}, 0, mgl32.Vec3{0.5, 1, 1.5}), Solid(gray(0.3)))
	return r
}
