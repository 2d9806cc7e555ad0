package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/geometry"
)

// BridgeConfig sizes the suspension bridge.
type BridgeConfig struct {
	CenterX     float32
	Z           float32
	Width       float32
	Length      float32
	DeckY       float32
	TowerHeight float32
	TowerBaseY  float32
	Columns     int
	Stripes     int
}

// DefaultBridgeConfig spans the valley behind the house.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		CenterX:     -3,
		Z:           -8,
		Width:       3,
		Length:      50,
		DeckY:       1.8,
		TowerHeight: 4.5,
		TowerBaseY:  -0.2,
		Columns:     30,
		Stripes:     12,
	}
}

const deckThickness = 0.25

// DeckTop returns the height of the driving surface.
func (c BridgeConfig) DeckTop() float32 {
	return c.DeckY + deckThickness/2
}

// Bridge is built entirely from scaled cubes.
type Bridge struct {
	static
	cfg BridgeConfig
}

// NewBridge lays out towers, cables, suspenders, deck, stripes and railings.
func NewBridge(cfg BridgeConfig, lib *assets.Library) *Bridge {
	cube := cubeMesh(lib)
	b := &Bridge{static: static{layer: LayerStructures}, cfg: cfg}

	box := func(pos, size mgl32.Vec3, color mgl32.Vec3, tex string) {
		m := Solid(color)
		m.Texture = tex
		b.add(cube, transform(pos, 0, size), m)
	}
	sides := [2]float32{-1, 1}
	halfW := cfg.Width / 2
	halfL := cfg.Length / 2

	// Towers.
	towerColor := mgl32.Vec3{0.3, 0.3, 0.35}
	for _, tx := range []float32{cfg.CenterX - cfg.Length/2.5, cfg.CenterX + cfg.Length/2.5} {
		for _, s := range sides {
			box(mgl32.Vec3{tx, cfg.TowerBaseY + cfg.TowerHeight/2, cfg.Z + s*(halfW+0.3)},
				mgl32.Vec3{0.25, cfg.TowerHeight, 0.25}, towerColor, TexColumn)
		}
	}

	// Main cables run level between the tower tops.
	cableTop := cfg.TowerBaseY + cfg.TowerHeight + 0.3
	span := 2 * cfg.Length / 2.5
	cableLen := float32(gomath.Hypot(float64(span), float64(cableTop-cfg.DeckY)))
	for _, s := range sides {
		box(mgl32.Vec3{cfg.CenterX, (cableTop + cfg.DeckY) / 2, cfg.Z + s*(halfW+0.2)},
			mgl32.Vec3{cableLen * 0.95, 0.08, 0.08}, mgl32.Vec3{0.2, 0.2, 0.25}, "")
	}

	// Suspenders follow one sine period along the deck.
	spacing := cfg.Length / float32(cfg.Columns+1)
	base := cableTop - cfg.DeckY
	for i := range cfg.Columns {
		x := cfg.CenterX - halfL + float32(i+1)*spacing
		h := base + float32(gomath.Sin(float64(i)/float64(cfg.Columns)*2*gomath.Pi))*0.4
		for _, s := range sides {
			box(mgl32.Vec3{x, cfg.DeckY + h/2, cfg.Z + s*(halfW+0.2)},
				mgl32.Vec3{0.12, h, 0.12}, mgl32.Vec3{0.25, 0.25, 0.3}, "")
		}
	}

	box(mgl32.Vec3{cfg.CenterX, cfg.DeckY, cfg.Z},
		mgl32.Vec3{cfg.Length, deckThickness, cfg.Width}, mgl32.Vec3{0.35, 0.32, 0.28}, "")

	stripe := cfg.Length / float32(cfg.Stripes)
	for i := range cfg.Stripes {
		x := cfg.CenterX - halfL + float32(i)*stripe + stripe/2
		box(mgl32.Vec3{x, cfg.DeckY + 0.14, cfg.Z}, mgl32.Vec3{stripe * 0.4, 0.01, 0.15}, gray(1), "")
	}

	for _, end := range sides {
		for _, s := range sides {
			box(mgl32.Vec3{cfg.CenterX + end*halfL, cfg.DeckY + 0.4, cfg.Z + s*(halfW+0.1)},
				mgl32.Vec3{0.5, 0.8, 0.15}, mgl32.Vec3{0.4, 0.4, 0.42}, "")
		}
	}
	return b
}

// Config returns the bridge layout.
func (b *Bridge) Config() BridgeConfig { return b.cfg }

// HouseConfig places the house.
type HouseConfig struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees about the house centre
}

// DefaultHouseConfig stands the house between the road and the forest.
func DefaultHouseConfig() HouseConfig {
	return HouseConfig{Position: mgl32.Vec3{5, 0, 0}, Yaw: 270}
}

// House dimensions.
const (
	wallWidth     = 1.2
	wallHeight    = 0.8
	wallDepth     = 1.0
	wallThickness = 0.08
	roofWidth     = 1.5
	roofDepth     = 1.3
	roofHeight    = 0.8
)

var chimneyOffset = mgl32.Vec3{wallWidth/2 - 0.15, wallHeight + 0.5, -0.15}

const chimneyHeight = 0.4

// House is four textured walls, a door, four windows, a chimney and a
// pyramid roof, rotated as one piece.
type House struct {
	static
	cfg   HouseConfig
	frame mgl32.Mat4
}

// NewHouse builds the house and its roof.
func NewHouse(cfg HouseConfig, lib *assets.Library) *House {
	cube := cubeMesh(lib)
	lib.Mesh(MeshRoof, func() geometry.Buffer {
		return geometry.Pyramid(roofWidth, roofDepth, roofHeight)
	})

	h := &House{
		static: static{layer: LayerStructures},
		cfg:    cfg,
		frame:  transform(cfg.Position, cfg.Yaw, mgl32.Vec3{1, 1, 1}),
	}
	part := func(local, size, color mgl32.Vec3, tex string) {
		model := h.frame.Mul4(mgl32.Translate3D(local[0], local[1], local[2])).
			Mul4(mgl32.Scale3D(size[0], size[1], size[2]))
		h.add(cube, model, Textured(color, tex))
	}

	wall := mgl32.Vec3{0.8, 0.7, 0.6}
	for _, s := range []float32{1, -1} {
		part(mgl32.Vec3{0, wallHeight / 2, s * wallDepth / 2}, mgl32.Vec3{wallWidth, wallHeight, wallThickness}, wall, TexWall)
		part(mgl32.Vec3{s * wallWidth / 2, wallHeight / 2, 0}, mgl32.Vec3{wallThickness, wallHeight, wallDepth}, wall, TexWall)
	}

	part(mgl32.Vec3{0, 0.25, wallDepth/2 + 0.04}, mgl32.Vec3{0.25, 0.5, 0.05}, mgl32.Vec3{0.3, 0.15, 0.05}, TexDoor)

	glass := mgl32.Vec3{0.5, 0.8, 1}
	for _, z := range []float32{wallDepth/2 + 0.04, -wallDepth/2 - 0.04} {
		for _, x := range []float32{-0.35, 0.35} {
			part(mgl32.Vec3{x, 0.5, z}, mgl32.Vec3{0.2, 0.2, 0.03}, glass, TexWindow)
		}
	}

	part(chimneyOffset, mgl32.Vec3{0.1, chimneyHeight, 0.1}, gray(0.8), TexColumn)

	h.add(MeshRoof, h.frame.Mul4(mgl32.Translate3D(0, wallHeight, 0)), Textured(mgl32.Vec3{0.6, 0.3, 0.2}, TexRoof))
	return h
}

// ChimneyTop returns the world position smoke should rise from.
func (h *House) ChimneyTop() mgl32.Vec3 {
	top := chimneyOffset.Add(mgl32.Vec3{0, chimneyHeight / 2, 0})
	return mgl32.TransformCoordinate(top, h.frame)
}
