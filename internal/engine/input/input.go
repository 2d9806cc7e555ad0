// Package input collects SDL2 events into per-frame fly-camera controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// State is the input seen by one frame. Keys stay held across frames until
// released. Mouse motion, wheel and edge-triggered presses are cleared by
// BeginFrame.
type State struct {
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool

	MouseDX float32
	MouseDY float32
	WheelDY float32

	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// BeginFrame clears everything that only lasts one frame.
func (s *State) BeginFrame() {
	clear(s.pressed)
	s.MouseDX, s.MouseDY, s.WheelDY = 0, 0, 0
	s.Resized = false
}

// KeyDown records a key press. Auto-repeat events keep the key held but do
// not count as a new press.
func (s *State) KeyDown(sc sdl.Scancode, repeat bool) {
	if !repeat && !s.held[sc] {
		s.pressed[sc] = true
	}
	s.held[sc] = true
}

// KeyUp releases a key.
func (s *State) KeyUp(sc sdl.Scancode) {
	delete(s.held, sc)
}

// MouseMotion accumulates a relative mouse move.
func (s *State) MouseMotion(dx, dy int32) {
	s.MouseDX += float32(dx)
	s.MouseDY += float32(dy)
}

// Wheel accumulates vertical scrolling.
func (s *State) Wheel(dy float32) {
	s.WheelDY += dy
}

// Resize records the latest window size.
func (s *State) Resize(w, h int) {
	s.Resized = true
	s.Width, s.Height = w, h
}

// Held reports whether the key is down.
func (s *State) Held(sc sdl.Scancode) bool {
	return s.held[sc]
}

// Pressed reports whether the key went down this frame.
func (s *State) Pressed(sc sdl.Scancode) bool {
	return s.pressed[sc]
}

// Input pumps the SDL event queue into a State.
type Input struct {
	state *State
}

// New creates a new input handler.
func New() *Input {
	return &Input{state: NewState()}
}

// SetRelativeMouse captures the cursor so motion reports deltas.
func (i *Input) SetRelativeMouse(on bool) {
	sdl.SetRelativeMouseMode(on)
}

// Update polls SDL events and returns the state for this frame.
func (i *Input) Update() *State {
	s := i.state
	s.BeginFrame()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.Resize(int(e.Data1), int(e.Data2))
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				s.KeyDown(e.Keysym.Scancode, e.Repeat != 0)
			case sdl.KEYUP:
				s.KeyUp(e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			s.MouseMotion(e.XRel, e.YRel)

		case *sdl.MouseWheelEvent:
			s.Wheel(float32(e.Y))
		}
	}

	return s
}
