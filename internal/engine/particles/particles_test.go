package particles

import (
	gomath "math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestSystem(cfg Config) *System {
	return New(cfg, rand.New(rand.NewPCG(1, 2)))
}

func TestAlphaRamp(t *testing.T) {
	tests := []struct {
		age  float32
		want float32
	}{
		{0, 0},
		{0.125, 0.5},
		{0.25, 1},
		{1.375, 0.5},
		{2.5, 0},
		{3, 0},
	}

	for _, tt := range tests {
		p := Particle{Age: tt.age, Lifetime: 2.5}
		if got := p.Alpha(); gomath.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("Alpha() at age %v = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestEmissionRate(t *testing.T) {
	s := newTestSystem(DefaultConfig(mgl32.Vec3{5, 1.8, 0}))

	// 8 particles per second; a quarter second yields two.
	s.Update(0.25)
	if s.Len() != 2 {
		t.Fatalf("Len() after 0.25s = %d, want 2", s.Len())
	}

	// The remainder carries over between frames.
	for range 10 {
		s.Update(0.0625)
	}
	if s.Len() != 7 {
		t.Errorf("Len() after 0.875s = %d, want 7", s.Len())
	}
}

func TestSpawnRanges(t *testing.T) {
	origin := mgl32.Vec3{5, 1.8, 0}
	cfg := DefaultConfig(origin)
	s := newTestSystem(cfg)
	for range 50 {
		s.Spawn()
	}

	s.Each(func(p *Particle) {
		off := p.Position.Sub(origin)
		if abs(off[0]) > cfg.Spread || abs(off[2]) > cfg.Spread || off[1] != 0 {
			t.Errorf("spawn offset %v outside spread", off)
		}
		if abs(p.Velocity[0]) > cfg.Drift || abs(p.Velocity[2]) > cfg.Drift {
			t.Errorf("lateral velocity %v outside drift", p.Velocity)
		}
		if p.Velocity[1] < cfg.RiseMin || p.Velocity[1] > cfg.RiseMax {
			t.Errorf("rise velocity %v outside [%v, %v]", p.Velocity[1], cfg.RiseMin, cfg.RiseMax)
		}
		if p.Scale != cfg.InitialScale || p.Lifetime != cfg.Lifetime {
			t.Errorf("particle %+v has wrong initial scale or lifetime", p)
		}
	})
}

func TestParticleKinematics(t *testing.T) {
	cfg := DefaultConfig(mgl32.Vec3{})
	cfg.Rate = 0
	s := newTestSystem(cfg)
	s.push(Particle{Velocity: mgl32.Vec3{0, 1, 0}, Lifetime: 2.5, Scale: 0.15})

	s.Update(0.1)

	var p Particle
	s.Each(func(q *Particle) { p = *q })

	if got := p.Position[1]; abs(got-0.1) > 1e-6 {
		t.Errorf("y = %v, want 0.1", got)
	}
	if want := float32((1 + 0.5*0.1) * 0.95); abs(p.Velocity[1]-want) > 1e-6 {
		t.Errorf("vy = %v, want %v", p.Velocity[1], want)
	}
	if abs(p.Scale-0.16) > 1e-6 {
		t.Errorf("scale = %v, want 0.16", p.Scale)
	}
	if abs(p.Age-0.1) > 1e-6 {
		t.Errorf("age = %v, want 0.1", p.Age)
	}
}

func TestRemovedAtLifetime(t *testing.T) {
	cfg := DefaultConfig(mgl32.Vec3{})
	cfg.Rate = 0
	s := newTestSystem(cfg)
	s.push(Particle{Lifetime: 1, Age: 0.5})

	s.Update(0.25)
	if s.Len() != 1 {
		t.Fatalf("particle removed early: Len() = %d", s.Len())
	}
	s.Update(0.25)
	if s.Len() != 0 {
		t.Errorf("particle with age == lifetime still live: Len() = %d", s.Len())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	cfg := DefaultConfig(mgl32.Vec3{})
	cfg.Rate = 0
	s := newTestSystem(cfg)

	// Tag each particle through its lifetime so eviction order is visible.
	for i := range Capacity + 25 {
		s.push(Particle{Lifetime: float32(1000 + i)})
	}
	if s.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", s.Len(), Capacity)
	}

	var first, last float32
	i := 0
	s.Each(func(p *Particle) {
		if i == 0 {
			first = p.Lifetime
		}
		last = p.Lifetime
		i++
	})
	if first != 1025 {
		t.Errorf("oldest surviving particle = %v, want 1025", first)
	}
	if last != float32(1000+Capacity+24) {
		t.Errorf("newest particle = %v, want %v", last, 1000+Capacity+24)
	}
}

func TestBurstNeverExceedsCapacity(t *testing.T) {
	cfg := DefaultConfig(mgl32.Vec3{})
	cfg.Rate = 1000
	s := newTestSystem(cfg)
	for range 5 {
		s.Update(0.5)
		if s.Len() > Capacity {
			t.Fatalf("Len() = %d exceeds capacity", s.Len())
		}
	}
	if s.Len() != Capacity {
		t.Errorf("Len() after burst = %d, want %d", s.Len(), Capacity)
	}
}

func abs(v float32) float32 {
	return float32(gomath.Abs(float64(v)))
}
