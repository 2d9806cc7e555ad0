package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyHeldAcrossFrames(t *testing.T) {
	s := NewState()

	s.KeyDown(sdl.SCANCODE_W, false)
	if !s.Held(sdl.SCANCODE_W) || !s.Pressed(sdl.SCANCODE_W) {
		t.Fatal("W should be held and pressed on the first frame")
	}

	s.BeginFrame()
	if !s.Held(sdl.SCANCODE_W) {
		t.Error("W should stay held on the next frame")
	}
	if s.Pressed(sdl.SCANCODE_W) {
		t.Error("press should last one frame")
	}

	s.KeyUp(sdl.SCANCODE_W)
	if s.Held(sdl.SCANCODE_W) {
		t.Error("W should be released")
	}
}

func TestRepeatIsNotAPress(t *testing.T) {
	tests := []struct {
		name   string
		first  bool
		repeat bool
		want   bool
	}{
		{"fresh press", false, false, true},
		{"auto repeat", true, true, false},
		{"second down while held", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if tt.first {
				s.KeyDown(sdl.SCANCODE_F12, false)
				s.BeginFrame()
			}
			s.KeyDown(sdl.SCANCODE_F12, tt.repeat)
			if got := s.Pressed(sdl.SCANCODE_F12); got != tt.want {
				t.Errorf("Pressed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMotionAndWheelAccumulate(t *testing.T) {
	s := NewState()
	s.MouseMotion(3, -2)
	s.MouseMotion(4, 1)
	s.Wheel(1)
	s.Wheel(0.5)

	if s.MouseDX != 7 || s.MouseDY != -1 {
		t.Errorf("mouse delta = (%g, %g), want (7, -1)", s.MouseDX, s.MouseDY)
	}
	if s.WheelDY != 1.5 {
		t.Errorf("wheel = %g, want 1.5", s.WheelDY)
	}

	s.BeginFrame()
	if s.MouseDX != 0 || s.MouseDY != 0 || s.WheelDY != 0 {
		t.Error("deltas should reset each frame")
	}
}

func TestResize(t *testing.T) {
	s := NewState()
	s.Resize(640, 480)
	if !s.Resized || s.Width != 640 || s.Height != 480 {
		t.Errorf("unexpected resize state %+v", s)
	}
	s.BeginFrame()
	if s.Resized {
		t.Error("resize flag should reset each frame")
	}
	if s.Width != 640 {
		t.Error("last size should be kept")
	}
}
