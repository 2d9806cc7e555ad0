package game

import (
	"github.com/riverview3d/riverside/internal/engine/camera"
	"github.com/riverview3d/riverside/internal/engine/lighting"
	"github.com/riverview3d/riverside/internal/engine/water"
	"github.com/riverview3d/riverside/internal/scene"
)

// frameContext gathers the shared uniforms for a frame. Time comes from the
// river surface, which also drives the ship.
func frameContext(cam *camera.FlyCamera, light lighting.OrbitLight, surf *water.Surface, aspect, near, far float32) scene.FrameContext {
	t := surf.Time()
	return scene.FrameContext{
		View:       cam.ViewMatrix(),
		Projection: cam.Projection(aspect, near, far),
		ViewPos:    cam.Position,
		LightPos:   light.Position(t),
		LightColor: light.Color,
		Time:       t,
	}
}

// fpsCounter reports frames per elapsed second once a second has passed.
type fpsCounter struct {
	frames  int
	elapsed float32
}

func (f *fpsCounter) tick(dt float32) (fps float32, ok bool) {
	f.frames++
	f.elapsed += dt
	if f.elapsed < 1 {
		return 0, false
	}
	fps = float32(f.frames) / f.elapsed
	f.frames, f.elapsed = 0, 0
	return fps, true
}
