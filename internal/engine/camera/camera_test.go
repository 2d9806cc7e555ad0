package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func nearVec(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestPitchClamp(t *testing.T) {
	tests := []struct {
		name string
		dy   float32
		want float32
	}{
		{"up", 10000, MaxPitch},
		{"down", -10000, -MaxPitch},
		{"small", 50, -15 + 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			c.Look(0, tt.dy)
			if !near(c.Pitch(), tt.want) {
				t.Errorf("Pitch() = %v, want %v", c.Pitch(), tt.want)
			}
		})
	}
}

func TestZoomClamp(t *testing.T) {
	c := New(DefaultConfig())

	c.Scroll(-10)
	if c.Zoom() != MaxZoom {
		t.Errorf("Zoom() after scrolling out = %v, want %v", c.Zoom(), MaxZoom)
	}
	c.Scroll(30)
	if c.Zoom() != 15 {
		t.Errorf("Zoom() = %v, want 15", c.Zoom())
	}
	c.Scroll(100)
	if c.Zoom() != MinZoom {
		t.Errorf("Zoom() after scrolling in = %v, want %v", c.Zoom(), MinZoom)
	}
}

func TestNewClampsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pitch = 120
	cfg.Zoom = 90
	c := New(cfg)
	if c.Pitch() != MaxPitch || c.Zoom() != MaxZoom {
		t.Errorf("New() pitch = %v, zoom = %v; want clamped", c.Pitch(), c.Zoom())
	}
}

func TestBasisOrthonormal(t *testing.T) {
	c := New(DefaultConfig())
	for _, look := range [][2]float32{{0, 0}, {300, 200}, {-1234, -5000}, {77, 900}} {
		c.Look(look[0], look[1])
		f, r, u := c.Front(), c.Right(), c.Up()
		for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
			if !near(v.Len(), 1) {
				t.Errorf("%s length = %v, want 1", name, v.Len())
			}
		}
		if !near(f.Dot(r), 0) || !near(f.Dot(u), 0) || !near(r.Dot(u), 0) {
			t.Errorf("basis not orthogonal: f=%v r=%v u=%v", f, r, u)
		}
		if u[1] <= 0 {
			t.Errorf("up vector %v points below the horizon", u)
		}
	}
}

func TestFrontFromAngles(t *testing.T) {
	c := New(Config{Yaw: -90, Pitch: 0, Speed: 1, Sensitivity: 0.1, Zoom: 45})
	want := mgl32.Vec3{0, 0, -1}
	if !nearVec(c.Front(), want) {
		t.Errorf("Front() = %v, want %v", c.Front(), want)
	}
}

func TestMove(t *testing.T) {
	c := New(Config{Yaw: -90, Pitch: 0, Speed: 5, Sensitivity: 0.1, Zoom: 45})

	c.Move(Forward, 1)
	if !nearVec(c.Position, mgl32.Vec3{0, 0, -5}) {
		t.Errorf("after forward Position = %v", c.Position)
	}
	c.Move(Right, 0.2)
	if !nearVec(c.Position, mgl32.Vec3{1, 0, -5}) {
		t.Errorf("after right Position = %v", c.Position)
	}
	c.Move(Up, 0.4)
	c.Move(Down, 0.2)
	if !nearVec(c.Position, mgl32.Vec3{1, 1, -5}) {
		t.Errorf("after up/down Position = %v", c.Position)
	}
	c.Move(Backward, 1)
	c.Move(Left, 0.2)
	if !nearVec(c.Position, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("after backward/left Position = %v", c.Position)
	}
}

func TestViewMatrixLooksForward(t *testing.T) {
	c := New(DefaultConfig())
	// A point straight ahead lands on the view -Z axis.
	ahead := c.Position.Add(c.Front().Mul(10))
	p := c.ViewMatrix().Mul4x1(ahead.Vec4(1))
	if !near(p[0], 0) || !near(p[1], 0) || !near(p[2], -10) {
		t.Errorf("view-space point = %v, want (0, 0, -10)", p)
	}
}
