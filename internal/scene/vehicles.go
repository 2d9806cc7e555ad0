package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/geometry"
	"github.com/riverview3d/riverside/internal/engine/water"
)

// Wheel dimensions shared by every car.
const (
	WheelRadius   = 0.0875
	WheelWidth    = 0.0625
	WheelSegments = 32

	// spinRadius converts travel into wheel rotation. It is larger than the
	// modelled wheel so the spin stays readable at driving speed.
	spinRadius = 0.35
)

var wheelOffsets = [4]mgl32.Vec3{
	{-0.225, WheelRadius, 0.35},
	{0.225, WheelRadius, 0.35},
	{-0.225, WheelRadius, -0.35},
	{0.225, WheelRadius, -0.35},
}

// Road and bridge tracks.
var (
	RoadTrack   = Track{Min: -15, Max: 15}
	BridgeTrack = Track{Min: -30, Max: 25}
)

// Road lanes by index.
var roadLanes = [2]float32{1.5, 2.5}

// CarConfig places one car.
type CarConfig struct {
	// Lane picks the road lane (0 or 1). Ignored on the bridge.
	Lane int
	// Direction is +1 or -1 along the track axis.
	Direction int
	// Bridge cars drive along x on the bridge deck; road cars along z.
	Bridge bool
	// Start is the initial position along the track axis.
	Start float32
	// Y is the ground height under the wheels; the car origin sits on it.
	Y float32
	// Offset is the fixed cross-track coordinate for bridge cars (z).
	Offset float32
	Color  mgl32.Vec3
}

// DefaultCarColor is the metallic red body tint.
var DefaultCarColor = rgb(200, 20, 20)

// Car is a lofted sedan with four spinning wheels driving a looped track.
type Car struct {
	cfg   CarConfig
	pos   mgl32.Vec3
	speed float32
	spin  float32
	track Track
	axis  int
}

// NewCar creates a car and registers its meshes.
func NewCar(cfg CarConfig, lib *assets.Library) *Car {
	lib.Mesh(MeshSedan, func() geometry.Buffer { return geometry.Hull(sedanSections) })
	lib.Mesh(MeshWheel, func() geometry.Buffer {
		return geometry.Cylinder(geometry.CylinderOptions{
			Radius:   WheelRadius,
			Height:   WheelWidth,
			Segments: WheelSegments,
			Axis:     geometry.AxisX,
		})
	})

	if cfg.Direction >= 0 {
		cfg.Direction = 1
	} else {
		cfg.Direction = -1
	}
	if cfg.Color == (mgl32.Vec3{}) {
		cfg.Color = DefaultCarColor
	}

	c := &Car{cfg: cfg}
	if cfg.Bridge {
		c.speed = 4 * float32(cfg.Direction)
		c.track = BridgeTrack
		c.axis = 0
		c.pos = mgl32.Vec3{cfg.Start, cfg.Y, cfg.Offset}
	} else {
		c.speed = 3 * float32(cfg.Direction)
		c.track = RoadTrack
		c.axis = 2
		c.pos = mgl32.Vec3{roadLanes[cfg.Lane&1], cfg.Y, cfg.Start}
	}
	return c
}

func (c *Car) Layer() Layer { return LayerVehicles }

// Position returns the car origin on the ground.
func (c *Car) Position() mgl32.Vec3 { return c.pos }

// Speed returns the signed speed along the track axis.
func (c *Car) Speed() float32 { return c.speed }

// WheelSpin returns the accumulated wheel rotation in radians.
func (c *Car) WheelSpin() float32 { return c.spin }

func (c *Car) Update(dt float32) {
	c.pos[c.axis] = c.track.Advance(c.pos[c.axis], c.speed, dt)
	c.spin += float32(gomath.Abs(float64(c.speed))) / spinRadius * dt * float32(c.cfg.Direction)
}

// heading is the yaw that points the sedan's nose (+z) along travel.
func (c *Car) heading() float32 {
	var yaw float32
	if c.cfg.Bridge {
		yaw = 90
	}
	if c.cfg.Direction < 0 {
		yaw += 180
	}
	return yaw
}

func (c *Car) Draw(d Drawer) {
	base := mgl32.Translate3D(c.pos[0], c.pos[1], c.pos[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.heading())))

	d.Draw(DrawCall{Mesh: MeshSedan, Model: base, Material: Textured(c.cfg.Color, TexCar)})

	spin := mgl32.HomogRotate3DX(c.spin)
	for _, w := range wheelOffsets {
		model := base.Mul4(mgl32.Translate3D(w[0], w[1], w[2])).Mul4(spin)
		d.Draw(DrawCall{Mesh: MeshWheel, Model: model, Material: Solid(gray(0.2))})
	}
}

// ShipConfig places the ship on the river.
type ShipConfig struct {
	X       float32
	BaseY   float32
	Start   float32
	Speed   float32
	Scale   float32
	Heading float32
	Track   Track
}

// DefaultShipConfig sails down the river at x=-3.
func DefaultShipConfig() ShipConfig {
	return ShipConfig{
		X:       -3,
		BaseY:   0.1,
		Start:   0,
		Speed:   2,
		Scale:   0.4,
		Heading: 180,
		Track:   Track{Min: -20, Max: 20},
	}
}

// Ship rides the water surface, bobbing and rolling with the waves.
type Ship struct {
	cfg   ShipConfig
	z     float32
	bob   float32
	roll  float32
	water *water.Surface
}

// NewShip creates a ship whose motion follows the given water clock.
func NewShip(cfg ShipConfig, surface *water.Surface, lib *assets.Library) *Ship {
	lib.Mesh(MeshShip, ShipMesh)
	s := &Ship{cfg: cfg, z: cfg.Start, water: surface}
	s.float()
	return s
}

func (s *Ship) Layer() Layer { return LayerVehicles }

// Position returns the ship centre including the wave offset.
func (s *Ship) Position() mgl32.Vec3 {
	return mgl32.Vec3{s.cfg.X, s.cfg.BaseY + s.bob, s.z}
}

// Roll returns the current roll in degrees.
func (s *Ship) Roll() float32 { return s.roll }

func (s *Ship) Update(dt float32) {
	s.z = s.cfg.Track.Advance(s.z, s.cfg.Speed, dt)
	s.float()
}

func (s *Ship) float() {
	t := s.water.Time()
	s.bob = water.WaveHeight(s.cfg.X, s.z, t)
	s.roll = water.RockAngle(s.z, t)
}

func (s *Ship) Draw(d Drawer) {
	p := s.Position()
	model := mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.cfg.Heading))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.roll))).
		Mul4(mgl32.Scale3D(s.cfg.Scale, s.cfg.Scale, s.cfg.Scale))
	d.Draw(DrawCall{Mesh: MeshShip, Model: model, Material: Solid(rgb(240, 240, 240))})
}
