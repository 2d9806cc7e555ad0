// Package particles implements a bounded smoke emitter.
package particles

import (
	gomath "math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Capacity is the maximum number of live particles.
const Capacity = 100

// Particle is one smoke puff.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Age      float32
	Lifetime float32
	Scale    float32
}

// Alive reports whether the particle is still within its lifetime.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// Alpha ramps in linearly over the first 10% of life and out over the
// remaining 90%.
func (p *Particle) Alpha() float32 {
	if p.Lifetime <= 0 {
		return 0
	}
	t := p.Age / p.Lifetime
	switch {
	case t <= 0 || t >= 1:
		return 0
	case t < 0.1:
		return t / 0.1
	}
	return 1 - (t-0.1)/0.9
}

// Config holds emitter parameters.
type Config struct {
	Origin       mgl32.Vec3
	Rate         float32 // particles per second
	Lifetime     float32
	InitialScale float32
	Growth       float32 // scale per second
	Buoyancy     float32 // upward acceleration
	Damping      float32 // velocity multiplier per update
	Spread       float32 // spawn offset on x and z
	Drift        float32 // lateral velocity range
	RiseMin      float32
	RiseMax      float32
}

// DefaultConfig returns chimney smoke settings.
func DefaultConfig(origin mgl32.Vec3) Config {
	return Config{
		Origin:       origin,
		Rate:         8,
		Lifetime:     2.5,
		InitialScale: 0.15,
		Growth:       0.1,
		Buoyancy:     0.5,
		Damping:      0.95,
		Spread:       0.15,
		Drift:        0.3,
		RiseMin:      1.2,
		RiseMax:      1.8,
	}
}

// System is a fixed-capacity ring of particles. When full, spawning
// overwrites the oldest particle.
type System struct {
	cfg  Config
	rng  *rand.Rand
	ring [Capacity]Particle
	head int // index of the oldest particle
	n    int
	acc  float32
}

// New creates an emitter. rng may be nil, in which case a time-seeded
// source is used.
func New(cfg Config, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &System{cfg: cfg, rng: rng}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return s.n
}

// Each calls fn for every live particle, oldest first.
func (s *System) Each(fn func(p *Particle)) {
	for i := range s.n {
		fn(&s.ring[(s.head+i)%Capacity])
	}
}

// Update emits new particles for the elapsed time, then advances and
// retires the live ones.
func (s *System) Update(dt float32) {
	if s.cfg.Rate > 0 {
		s.acc += dt
		count := int(gomath.Floor(float64(s.acc * s.cfg.Rate)))
		if count > 0 {
			s.acc -= float32(count) / s.cfg.Rate
			for range count {
				s.Spawn()
			}
		}
	}

	s.Each(func(p *Particle) {
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Velocity[1] += s.cfg.Buoyancy * dt
		p.Velocity = p.Velocity.Mul(s.cfg.Damping)
		p.Scale += s.cfg.Growth * dt
		p.Age += dt
	})

	s.compact()
}

// Spawn adds one particle at the origin with a randomized offset and
// velocity. If the ring is full the oldest particle is evicted.
func (s *System) Spawn() {
	p := Particle{
		Position: s.cfg.Origin.Add(mgl32.Vec3{
			s.spread(s.cfg.Spread),
			0,
			s.spread(s.cfg.Spread),
		}),
		Velocity: mgl32.Vec3{
			s.spread(s.cfg.Drift),
			s.cfg.RiseMin + s.rng.Float32()*(s.cfg.RiseMax-s.cfg.RiseMin),
			s.spread(s.cfg.Drift),
		},
		Lifetime: s.cfg.Lifetime,
		Scale:    s.cfg.InitialScale,
	}
	s.push(p)
}

func (s *System) spread(r float32) float32 {
	return (s.rng.Float32()*2 - 1) * r
}

func (s *System) push(p Particle) {
	if s.n == Capacity {
		s.ring[s.head] = p
		s.head = (s.head + 1) % Capacity
		return
	}
	s.ring[(s.head+s.n)%Capacity] = p
	s.n++
}

// compact drops dead particles while keeping the survivors in age order.
func (s *System) compact() {
	kept := 0
	for i := range s.n {
		p := s.ring[(s.head+i)%Capacity]
		if !p.Alive() {
			continue
		}
		s.ring[(s.head+kept)%Capacity] = p
		kept++
	}
	s.n = kept
}
