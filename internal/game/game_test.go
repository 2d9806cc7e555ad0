package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/riverview3d/riverside/internal/engine/camera"
	"github.com/riverview3d/riverside/internal/engine/input"
	"github.com/riverview3d/riverside/internal/engine/lighting"
	"github.com/riverview3d/riverside/internal/engine/water"
)

func newCamera() *camera.FlyCamera {
	cfg := camera.DefaultConfig()
	cfg.Position = mgl32.Vec3{}
	return camera.New(cfg)
}

func TestMoveKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   sdl.Scancode
		check func(before, after mgl32.Vec3, cam *camera.FlyCamera) bool
	}{
		{"forward", sdl.SCANCODE_W, func(b, a mgl32.Vec3, c *camera.FlyCamera) bool {
			return a.Sub(b).Dot(c.Front()) > 0
		}},
		{"backward", sdl.SCANCODE_S, func(b, a mgl32.Vec3, c *camera.FlyCamera) bool {
			return a.Sub(b).Dot(c.Front()) < 0
		}},
		{"left", sdl.SCANCODE_A, func(b, a mgl32.Vec3, c *camera.FlyCamera) bool {
			return a.Sub(b).Dot(c.Right()) < 0
		}},
		{"right", sdl.SCANCODE_D, func(b, a mgl32.Vec3, c *camera.FlyCamera) bool {
			return a.Sub(b).Dot(c.Right()) > 0
		}},
		{"up", sdl.SCANCODE_SPACE, func(b, a mgl32.Vec3, _ *camera.FlyCamera) bool {
			return a.Y() > b.Y()
		}},
		{"down", sdl.SCANCODE_LSHIFT, func(b, a mgl32.Vec3, _ *camera.FlyCamera) bool {
			return a.Y() < b.Y()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera()
			s := input.NewState()
			s.KeyDown(tt.key, false)

			before := cam.Position
			applyControls(cam, s, 0.1)
			if !tt.check(before, cam.Position, cam) {
				t.Errorf("%s moved camera from %v to %v", tt.name, before, cam.Position)
			}
		})
	}
}

func TestIdleInputLeavesCamera(t *testing.T) {
	cam := newCamera()
	pos, yaw, zoom := cam.Position, cam.Yaw(), cam.Zoom()

	applyControls(cam, input.NewState(), 0.5)

	if cam.Position != pos || cam.Yaw() != yaw || cam.Zoom() != zoom {
		t.Error("camera changed without input")
	}
}

func TestMouseLookAndScroll(t *testing.T) {
	cam := newCamera()
	yaw, pitch, zoom := cam.Yaw(), cam.Pitch(), cam.Zoom()

	s := input.NewState()
	s.MouseMotion(10, -20) // right and up
	s.Wheel(2)
	applyControls(cam, s, 0.016)

	if cam.Yaw() <= yaw {
		t.Errorf("yaw %g should increase from %g", cam.Yaw(), yaw)
	}
	if cam.Pitch() <= pitch {
		t.Errorf("pitch %g should increase when the mouse moves up", cam.Pitch())
	}
	if cam.Zoom() != zoom-2 {
		t.Errorf("zoom = %g, want %g", cam.Zoom(), zoom-2)
	}
}

func TestFrameContext(t *testing.T) {
	cam := newCamera()
	light := lighting.DefaultOrbitLight()

	var surf water.Surface
	surf.Update(1)
	surf.Update(2)

	fc := frameContext(cam, light, &surf, 1.5, 0.1, 100)

	if fc.Time != 3 || fc.Time != surf.Time() {
		t.Errorf("time = %g, want the surface clock %g", fc.Time, surf.Time())
	}
	if fc.ViewPos != cam.Position {
		t.Errorf("view pos = %v, want %v", fc.ViewPos, cam.Position)
	}
	if fc.LightPos != light.Position(3) {
		t.Errorf("light pos = %v, want %v", fc.LightPos, light.Position(3))
	}
	if fc.LightColor != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("light colour = %v, want white", fc.LightColor)
	}
	if fc.View != cam.ViewMatrix() {
		t.Error("view matrix mismatch")
	}
}

func TestFPSCounter(t *testing.T) {
	var f fpsCounter
	for i := range 3 {
		if _, ok := f.tick(0.3); ok {
			t.Fatalf("reported after %d ticks", i+1)
		}
	}
	rate, ok := f.tick(0.3)
	if !ok {
		t.Fatal("expected a report once a second elapsed")
	}
	if rate < 3.3 || rate > 3.4 {
		t.Errorf("fps = %g, want 4/1.2", rate)
	}
	if _, ok := f.tick(0.3); ok {
		t.Error("counter should reset after reporting")
	}
}
