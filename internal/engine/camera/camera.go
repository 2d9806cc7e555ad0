// Package camera provides the free-fly camera used to explore the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement request relative to the camera basis.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Pitch and zoom limits, in degrees.
const (
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// Config holds the starting pose and tuning of a FlyCamera.
type Config struct {
	Position    mgl32.Vec3
	Yaw         float32 // degrees; -90 looks down -Z
	Pitch       float32 // degrees
	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse pixel
	Zoom        float32 // vertical field of view, degrees
}

// DefaultConfig frames the river, bridge and house from the west bank.
func DefaultConfig() Config {
	return Config{
		Position:    mgl32.Vec3{-8, 4, 5},
		Yaw:         -60,
		Pitch:       -15,
		Speed:       5,
		Sensitivity: 0.1,
		Zoom:        45,
	}
}

// FlyCamera is an Euler-angle camera. Only yaw, pitch and zoom are
// persisted; the basis is recomputed from the angles on every change.
type FlyCamera struct {
	Position mgl32.Vec3

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	worldUp     mgl32.Vec3
	speed       float32
	sensitivity float32
}

// New creates a camera from cfg. Out-of-range pitch and zoom are clamped.
func New(cfg Config) *FlyCamera {
	c := &FlyCamera{
		Position:    cfg.Position,
		yaw:         cfg.Yaw,
		pitch:       clamp(cfg.Pitch, -MaxPitch, MaxPitch),
		zoom:        clamp(cfg.Zoom, MinZoom, MaxZoom),
		worldUp:     mgl32.Vec3{0, 1, 0},
		speed:       cfg.Speed,
		sensitivity: cfg.Sensitivity,
	}
	c.updateVectors()
	return c
}

// Yaw returns the heading in degrees.
func (c *FlyCamera) Yaw() float32 { return c.yaw }

// Pitch returns the elevation in degrees.
func (c *FlyCamera) Pitch() float32 { return c.pitch }

// Zoom returns the vertical field of view in degrees.
func (c *FlyCamera) Zoom() float32 { return c.zoom }

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *FlyCamera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit up vector of the camera basis.
func (c *FlyCamera) Up() mgl32.Vec3 { return c.up }

// Move translates the camera along its basis for dt seconds.
// Up and Down move along the world up axis.
func (c *FlyCamera) Move(dir Direction, dt float32) {
	v := c.speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(v))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(v))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(v))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(v))
	case Up:
		c.Position = c.Position.Add(c.worldUp.Mul(v))
	case Down:
		c.Position = c.Position.Sub(c.worldUp.Mul(v))
	}
}

// Look turns the camera by a mouse delta in pixels. dy is positive when
// the mouse moves up.
func (c *FlyCamera) Look(dx, dy float32) {
	c.yaw += dx * c.sensitivity
	c.pitch = clamp(c.pitch+dy*c.sensitivity, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// Scroll narrows the field of view for positive dy.
func (c *FlyCamera) Scroll(dy float32) {
	c.zoom = clamp(c.zoom-dy, MinZoom, MaxZoom)
}

// ViewMatrix returns the world-to-camera transform.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Projection returns a perspective matrix using the current zoom.
func (c *FlyCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	c.front = mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
