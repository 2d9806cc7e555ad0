package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/riverview3d/riverside/internal/engine/camera"
	"github.com/riverview3d/riverside/internal/engine/input"
)

// Fly-camera bindings.
var moveKeys = []struct {
	key sdl.Scancode
	dir camera.Direction
}{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
	{sdl.SCANCODE_SPACE, camera.Up},
	{sdl.SCANCODE_LSHIFT, camera.Down},
}

const (
	keyQuit       = sdl.SCANCODE_ESCAPE
	keyScreenshot = sdl.SCANCODE_F12
)

// applyControls moves and turns the camera from one frame of input.
func applyControls(cam *camera.FlyCamera, s *input.State, dt float32) {
	for _, b := range moveKeys {
		if s.Held(b.key) {
			cam.Move(b.dir, dt)
		}
	}
	if s.MouseDX != 0 || s.MouseDY != 0 {
		// SDL reports y growing downward.
		cam.Look(s.MouseDX, -s.MouseDY)
	}
	if s.WheelDY != 0 {
		cam.Scroll(s.WheelDY)
	}
}
