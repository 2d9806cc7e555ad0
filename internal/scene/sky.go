package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/riverview3d/riverside/internal/assets"
)

// CloudConfig controls how the cloud bank is scattered.
type CloudConfig struct {
	Count int
	Seed  uint64
	// Spawn volume.
	Min, Max mgl32.Vec3
	// Scale and drift speed ranges.
	MinScale, MaxScale float32
	MinSpeed, MaxSpeed float32
	Track              Track
}

// DefaultCloudConfig scatters eight clouds high above the valley.
func DefaultCloudConfig() CloudConfig {
	return CloudConfig{
		Count:    8,
		Seed:     42,
		Min:      mgl32.Vec3{-25, 12, -15},
		Max:      mgl32.Vec3{25, 18, 10},
		MinScale: 1,
		MaxScale: 2.5,
		MinSpeed: 0.5,
		MaxSpeed: 1.5,
		Track:    Track{Min: -30, Max: 30},
	}
}

// Cloud is one drifting puff cluster.
type Cloud struct {
	Position mgl32.Vec3
	Scale    float32
	Speed    float32
}

// CloudBank drifts clouds along x, wrapping them around the sky.
type CloudBank struct {
	cfg    CloudConfig
	clouds []Cloud
}

// NewCloudBank scatters clouds deterministically from cfg.Seed.
func NewCloudBank(cfg CloudConfig, lib *assets.Library) *CloudBank {
	lib.Mesh(MeshCloud, CloudMesh)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	uniform := func(lo, hi float32) float32 {
		return lo + rng.Float32()*(hi-lo)
	}

	b := &CloudBank{cfg: cfg, clouds: make([]Cloud, cfg.Count)}
	for i := range b.clouds {
		b.clouds[i] = Cloud{
			Position: mgl32.Vec3{
				uniform(cfg.Min[0], cfg.Max[0]),
				uniform(cfg.Min[1], cfg.Max[1]),
				uniform(cfg.Min[2], cfg.Max[2]),
			},
			Scale: uniform(cfg.MinScale, cfg.MaxScale),
			Speed: uniform(cfg.MinSpeed, cfg.MaxSpeed),
		}
	}
	return b
}

func (b *CloudBank) Layer() Layer { return LayerSky }

// Clouds returns the current cloud states.
func (b *CloudBank) Clouds() []Cloud { return b.clouds }

func (b *CloudBank) Update(dt float32) {
	for i := range b.clouds {
		c := &b.clouds[i]
		c.Position[0] = b.cfg.Track.Advance(c.Position[0], c.Speed, dt)
	}
}

func (b *CloudBank) Draw(d Drawer) {
	m := Material{Color: gray(1), Texture: TexCloud, Alpha: 1, Blend: BlendAdditive}
	for _, c := range b.clouds {
		model := mgl32.Translate3D(c.Position[0], c.Position[1], c.Position[2]).
			Mul4(mgl32.Scale3D(c.Scale, c.Scale*0.7, c.Scale*0.8))
		d.Draw(DrawCall{Mesh: MeshCloud, Model: model, Material: m})
	}
}
