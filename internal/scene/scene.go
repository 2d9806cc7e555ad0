// Package scene holds the objects of the riverside landscape and the order
// they are drawn in.
//
// Objects never touch GL. Each frame they emit DrawCalls naming a mesh from
// the asset library together with a model matrix and a material, and a
// Drawer turns those into GPU work. Tests record the calls instead.
package scene

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer fixes the draw order. Transparent layers come after the opaque
// geometry they blend over.
type Layer int

const (
	LayerSky Layer = iota
	LayerMountains
	LayerGround
	LayerWater
	LayerStructures
	LayerVehicles
	LayerFoliage
	LayerParticles
)

var layerNames = [...]string{
	LayerSky:        "sky",
	LayerMountains:  "mountains",
	LayerGround:     "ground",
	LayerWater:      "water",
	LayerStructures: "structures",
	LayerVehicles:   "vehicles",
	LayerFoliage:    "foliage",
	LayerParticles:  "particles",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// ShaderKind selects the program a draw call runs with.
type ShaderKind int

const (
	ShaderLit ShaderKind = iota
	ShaderWater
)

// BlendMode selects how a draw call combines with the framebuffer.
type BlendMode int

const (
	BlendOpaque BlendMode = iota
	BlendAlpha
	BlendAdditive
)

// Material describes how a mesh is shaded.
type Material struct {
	Color   mgl32.Vec3
	Texture string // texture name in the asset library, "" for flat colour
	Alpha   float32
	Blend   BlendMode
	Shader  ShaderKind
}

// Solid returns an opaque flat-coloured material.
func Solid(color mgl32.Vec3) Material {
	return Material{Color: color, Alpha: 1}
}

// Textured returns an opaque material tinted by color.
func Textured(color mgl32.Vec3, texture string) Material {
	return Material{Color: color, Texture: texture, Alpha: 1}
}

// DrawCall is one mesh draw.
type DrawCall struct {
	Mesh     string
	Model    mgl32.Mat4
	Material Material
}

// Drawer receives draw calls in order.
type Drawer interface {
	Draw(call DrawCall)
}

// FrameContext carries the per-frame uniforms shared by every draw call.
type FrameContext struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3
	LightPos   mgl32.Vec3
	LightColor mgl32.Vec3
	Time       float32
}

// Object is anything placed in the scene.
type Object interface {
	Layer() Layer
	Update(dt float32)
	Draw(d Drawer)
}

// Scene keeps objects sorted by layer. Objects within a layer keep the order
// they were added in.
type Scene struct {
	objects []Object
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add inserts objects and restores layer order.
func (s *Scene) Add(objs ...Object) {
	s.objects = append(s.objects, objs...)
	slices.SortStableFunc(s.objects, func(a, b Object) int {
		return cmp.Compare(a.Layer(), b.Layer())
	})
}

// Objects returns the objects in draw order.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Update advances every object by dt seconds.
func (s *Scene) Update(dt float32) {
	for _, o := range s.objects {
		o.Update(dt)
	}
}

// Draw emits every object's draw calls in layer order.
func (s *Scene) Draw(d Drawer) {
	for _, o := range s.objects {
		o.Draw(d)
	}
}

// Recorder is a Drawer that keeps every call. It is used by tests and by
// the renderer's frame statistics.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) Draw(call DrawCall) {
	r.Calls = append(r.Calls, call)
}

// Reset drops recorded calls, keeping the backing array.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// static is an object whose draw calls are fixed at construction.
type static struct {
	layer Layer
	calls []DrawCall
}

func (s *static) Layer() Layer { return s.layer }

func (s *static) Update(float32) {}

func (s *static) Draw(d Drawer) {
	for _, c := range s.calls {
		d.Draw(c)
	}
}

func (s *static) add(mesh string, model mgl32.Mat4, m Material) {
	s.calls = append(s.calls, DrawCall{Mesh: mesh, Model: model, Material: m})
}

// Track is a one-dimensional loop. Leaving one end puts a body back at the
// other end exactly, so repeated laps never drift.
type Track struct {
	Min, Max float32
}

// Advance moves pos by speed*dt and wraps it.
func (t Track) Advance(pos, speed, dt float32) float32 {
	pos += speed * dt
	switch {
	case speed > 0 && pos > t.Max:
		return t.Min
	case speed < 0 && pos < t.Min:
		return t.Max
	}
	return pos
}

// transform builds translate * rotateY * scale, the usual model matrix for
// placed props.
func transform(pos mgl32.Vec3, yawDeg float32, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yawDeg))).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// rgb converts 0-255 channel values to a colour.
func rgb(r, g, b float32) mgl32.Vec3 {
	return mgl32.Vec3{r / 255, g / 255, b / 255}
}

func gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}
