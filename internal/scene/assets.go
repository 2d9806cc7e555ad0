package scene

import (
	"fmt"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/geometry"
	"github.com/riverview3d/riverside/pkg/math"
)

// Mesh keys shared between objects.
const (
	MeshCube  = "cube"
	MeshSedan = "sedan"
	MeshWheel = "wheel"
	MeshShip  = "ship"
	MeshCloud = "cloud"
	MeshRoof  = "roof"
	MeshTrunk = "trunk"
	MeshLog   = "log"
)

// Texture names. Files are resolved under the asset dir.
const (
	TexCar    = "car"
	TexCloud  = "cloud"
	TexColumn = "column"
	TexHill   = "hill"
	TexGrass  = "grass"
	TexWall   = "houseWall"
	TexDoor   = "houseDoor"
	TexWindow = "houseWindow"
	TexRoof   = "houseRoof"
	TexTree   = "christmasTree"
	TexLog    = "log"
)

var textureFiles = map[string]string{
	TexCar:    "car.png",
	TexCloud:  "cloud.png",
	TexColumn: "column.png",
	TexHill:   "hill_texture.png",
	TexGrass:  "grass.png",
	TexWall:   "houseWall.png",
	TexDoor:   "houseDoor.png",
	TexWindow: "houseWindow.png",
	TexRoof:   "houseRoof.png",
	TexTree:   "christmas_tree.png",
	TexLog:    "log.png",
}

// RegisterTextures records the texture files the scene refers to.
func RegisterTextures(lib *assets.Library) {
	for name, file := range textureFiles {
		lib.RegisterTexture(name, file)
	}
}

func cubeMesh(lib *assets.Library) string {
	lib.Mesh(MeshCube, geometry.Cube)
	return MeshCube
}

func coneMesh(lib *assets.Library, radius, height float32, segments int) string {
	key := fmt.Sprintf("cone/%g/%g/%d", radius, height, segments)
	lib.Mesh(key, func() geometry.Buffer {
		return geometry.Cone(radius, height, segments)
	})
	return key
}

func planeMesh(lib *assets.Library, size, uvRepeat float32) string {
	key := fmt.Sprintf("plane/%g/%g", size, uvRepeat)
	lib.Mesh(key, func() geometry.Buffer {
		return geometry.Plane(size, uvRepeat)
	})
	return key
}

// Sedan cross-sections from the front bumper to the rear bumper.
var sedanSections = []geometry.Section{
	{TopWidth: 0.2, TopHeight: 0.1, BottomWidth: 0.2, BottomHeight: 0.05, Z: 0.6},
	{TopWidth: 0.35, TopHeight: 0.175, BottomWidth: 0.4, BottomHeight: 0.05, Z: 0.45},
	{TopWidth: 0.375, TopHeight: 0.2, BottomWidth: 0.425, BottomHeight: 0.05, Z: 0.2},
	{TopWidth: 0.3, TopHeight: 0.325, BottomWidth: 0.425, BottomHeight: 0.05, Z: 0.075},
	{TopWidth: 0.3, TopHeight: 0.325, BottomWidth: 0.425, BottomHeight: 0.05, Z: -0.15},
	{TopWidth: 0.35, TopHeight: 0.225, BottomWidth: 0.425, BottomHeight: 0.05, Z: -0.3},
	{TopWidth: 0.325, TopHeight: 0.2, BottomWidth: 0.4, BottomHeight: 0.075, Z: -0.525},
	{TopWidth: 0.25, TopHeight: 0.125, BottomWidth: 0.25, BottomHeight: 0.075, Z: -0.575},
}

// Ship hull cross-sections from the bow to the stern. The hull spans
// y in [-1, 1] and narrows to a point at the bow.
var shipSections = []geometry.Section{
	{TopWidth: 0.2, TopHeight: 1, BottomWidth: 0.1, BottomHeight: -0.6, Z: -6},
	{TopWidth: 2.2, TopHeight: 1, BottomWidth: 1.4, BottomHeight: -1, Z: -4},
	{TopWidth: 3, TopHeight: 1, BottomWidth: 2.4, BottomHeight: -1, Z: -2},
	{TopWidth: 3, TopHeight: 1, BottomWidth: 2.6, BottomHeight: -1, Z: 4},
	{TopWidth: 2.8, TopHeight: 1, BottomWidth: 2.2, BottomHeight: -0.9, Z: 6},
}

// shipDecks are the superstructure boxes as centre and size.
var shipDecks = [][2]math.Vec3{
	{{X: 0, Y: 1.5, Z: 3}, {X: 2.5, Y: 1, Z: 5}},     // cabin
	{{X: 0, Y: 2.2, Z: 3.5}, {X: 2.2, Y: 0.8, Z: 3}}, // upper cabin
	{{X: 0, Y: 2.5, Z: 1.5}, {X: 2, Y: 0.6, Z: 1.5}}, // bridge
}

// ShipMesh lofts the hull and adds the superstructure.
func ShipMesh() geometry.Buffer {
	b := geometry.Hull(shipSections)
	for _, d := range shipDecks {
		box := geometry.Box(d[1], 2)
		b.Append(box.Translated(d[0]))
	}
	return b
}

// cloudOffsets is the puff formation of a single cloud, in units of 0.3.
var cloudOffsets = [][3]float32{
	{0, 0, 0},
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
	{1, 1, 0}, {-1, 1, 0},
	{1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1},
	{1, 0, -1}, {-1, 0, -1},
}

// CloudMesh returns the 15-cube puff cluster.
func CloudMesh() geometry.Buffer {
	offsets := make([]math.Vec3, len(cloudOffsets))
	for i, o := range cloudOffsets {
		offsets[i] = math.Vec3{X: o[0] * 0.3, Y: o[1] * 0.3, Z: o[2] * 0.3}
	}
	return geometry.Cluster(offsets, math.Vec3{X: 0.3, Y: 0.25, Z: 0.3})
}
