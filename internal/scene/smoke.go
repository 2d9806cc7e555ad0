package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/particles"
)

// Smoke draws a particle emitter as blended cubes.
type Smoke struct {
	sys *particles.System
}

// NewSmoke creates a smoke column. rng may be nil for a time-seeded source.
func NewSmoke(cfg particles.Config, rng *rand.Rand, lib *assets.Library) *Smoke {
	cubeMesh(lib)
	return &Smoke{sys: particles.New(cfg, rng)}
}

func (s *Smoke) Layer() Layer { return LayerParticles }

// System exposes the underlying emitter.
func (s *Smoke) System() *particles.System { return s.sys }

func (s *Smoke) Update(dt float32) {
	s.sys.Update(dt)
}

func (s *Smoke) Draw(d Drawer) {
	s.sys.Each(func(p *particles.Particle) {
		model := mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2]).
			Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
		d.Draw(DrawCall{
			Mesh:  MeshCube,
			Model: model,
			Material: Material{
				Color:   gray(1),
				Texture: TexCloud,
				Alpha:   p.Alpha(),
				Blend:   BlendAdditive,
			},
		})
	})
}
