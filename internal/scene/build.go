package scene

import (
	"math/rand/v2"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/particles"
	"github.com/riverview3d/riverside/internal/engine/terrain"
	"github.com/riverview3d/riverside/pkg/noise"
)

// Layout collects every object's configuration.
type Layout struct {
	Seed      int64
	Normals   terrain.NormalMode
	Mountains MountainConfig
	Ground    GroundConfig
	Water     WaterConfig
	Bridge    BridgeConfig
	House     HouseConfig
	Forest    ForestConfig
	Logs      []LogConfig
	Clouds    CloudConfig
	Ship      ShipConfig
	RoadCars  []CarConfig
	// BridgeCars take their height and lane from the bridge.
	BridgeCars []CarConfig
}

// DefaultLayout is the riverside valley.
func DefaultLayout(seed int64) Layout {
	clouds := DefaultCloudConfig()
	clouds.Seed = uint64(seed)
	return Layout{
		Seed:      seed,
		Mountains: DefaultMountainConfig(),
		Ground:    DefaultGroundConfig(),
		Water:     DefaultWaterConfig(),
		Bridge:    DefaultBridgeConfig(),
		House:     DefaultHouseConfig(),
		Forest:    DefaultForestConfig(),
		Logs:      DefaultLogs(),
		Clouds:    clouds,
		Ship:      DefaultShipConfig(),
		RoadCars: []CarConfig{
			{Lane: 0, Direction: 1, Start: -10},
			{Lane: 0, Direction: 1, Start: 2},
			{Lane: 1, Direction: -1, Start: 6},
			{Lane: 1, Direction: -1, Start: -5},
		},
		BridgeCars: []CarConfig{
			{Direction: 1, Start: -20},
			{Direction: -1, Start: 10},
		},
	}
}

// World is a built scene plus handles to the objects other code needs.
type World struct {
	*Scene
	Ground *Ground
	Water  *Water
	House  *House
	Smoke  *Smoke
	Ship   *Ship
	Clouds *CloudBank
	Cars   []*Car
}

// Build creates every object in l, registering meshes and textures in lib.
// rng drives the smoke and may be nil.
func Build(l Layout, lib *assets.Library, rng *rand.Rand) *World {
	RegisterTextures(lib)
	gen := noise.New(l.Seed)

	l.Mountains.Normals = l.Normals
	l.Ground.Normals = l.Normals

	w := &World{Scene: New()}
	w.Ground = NewGround(l.Ground, gen, lib)
	w.Water = NewWater(l.Water, lib)
	w.House = NewHouse(l.House, lib)
	w.Clouds = NewCloudBank(l.Clouds, lib)
	w.Ship = NewShip(l.Ship, w.Water.Surface(), lib)
	w.Smoke = NewSmoke(particles.DefaultConfig(w.House.ChimneyTop()), rng, lib)

	w.Add(
		w.Clouds,
		NewMountains(l.Mountains, gen, lib),
		w.Ground,
		w.Water,
		NewRoad(lib),
		NewBridge(l.Bridge, lib),
		w.House,
		w.Ship,
		NewForest(l.Forest, w.Ground, lib),
		NewLogs(l.Logs, w.Ground, lib),
		w.Smoke,
	)

	for _, c := range l.RoadCars {
		c.Bridge = false
		c.Y = 0.01
		w.Cars = append(w.Cars, NewCar(c, lib))
	}
	for _, c := range l.BridgeCars {
		c.Bridge = true
		c.Y = l.Bridge.DeckTop()
		lane := l.Bridge.Width / 5
		if c.Direction < 0 {
			lane = -lane
		}
		c.Offset = l.Bridge.Z - lane
		w.Cars = append(w.Cars, NewCar(c, lib))
	}
	for _, c := range w.Cars {
		w.Add(c)
	}
	return w
}
