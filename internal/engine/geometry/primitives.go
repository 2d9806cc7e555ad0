package geometry

import "github.com/riverview3d/riverside/pkg/math"

// Cube returns a unit cube centred on the origin with per-face UVs.
func Cube() Buffer {
	return Box(math.Vec3{X: 1, Y: 1, Z: 1}, 1)
}

// Box returns an axis-aligned box of the given size centred on the origin.
// uvRepeat tiles the texture across each face.
func Box(size math.Vec3, uvRepeat float32) Buffer {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	var b Buffer
	// +Z, -Z
	b.quad(math.Vec3{X: -hx, Y: -hy, Z: hz}, math.Vec3{X: hx, Y: -hy, Z: hz}, math.Vec3{X: hx, Y: hy, Z: hz}, math.Vec3{X: -hx, Y: hy, Z: hz}, math.Vec3{Z: 1}, uvRepeat)
	b.quad(math.Vec3{X: hx, Y: -hy, Z: -hz}, math.Vec3{X: -hx, Y: -hy, Z: -hz}, math.Vec3{X: -hx, Y: hy, Z: -hz}, math.Vec3{X: hx, Y: hy, Z: -hz}, math.Vec3{Z: -1}, uvRepeat)
	// +X, -X
	b.quad(math.Vec3{X: hx, Y: -hy, Z: hz}, math.Vec3{X: hx, Y: -hy, Z: -hz}, math.Vec3{X: hx, Y: hy, Z: -hz}, math.Vec3{X: hx, Y: hy, Z: hz}, math.Vec3{X: 1}, uvRepeat)
	b.quad(math.Vec3{X: -hx, Y: -hy, Z: -hz}, math.Vec3{X: -hx, Y: -hy, Z: hz}, math.Vec3{X: -hx, Y: hy, Z: hz}, math.Vec3{X: -hx, Y: hy, Z: -hz}, math.Vec3{X: -1}, uvRepeat)
	// +Y, -Y
	b.quad(math.Vec3{X: -hx, Y: hy, Z: hz}, math.Vec3{X: hx, Y: hy, Z: hz}, math.Vec3{X: hx, Y: hy, Z: -hz}, math.Vec3{X: -hx, Y: hy, Z: -hz}, math.Vec3{Y: 1}, uvRepeat)
	b.quad(math.Vec3{X: -hx, Y: -hy, Z: -hz}, math.Vec3{X: hx, Y: -hy, Z: -hz}, math.Vec3{X: hx, Y: -hy, Z: hz}, math.Vec3{X: -hx, Y: -hy, Z: hz}, math.Vec3{Y: -1}, uvRepeat)
	return b
}

// Plane returns a flat square in the XZ plane facing +Y.
func Plane(size, uvRepeat float32) Buffer {
	h := size / 2
	var b Buffer
	b.quad(
		math.Vec3{X: -h, Z: h},
		math.Vec3{X: h, Z: h},
		math.Vec3{X: h, Z: -h},
		math.Vec3{X: -h, Z: -h},
		math.Up, uvRepeat,
	)
	return b
}

// Pyramid returns a four-sided roof with its base on y=0 and apex at height.
// The base is left open.
func Pyramid(width, depth, height float32) Buffer {
	hw, hd := width/2, depth/2
	fl := math.Vec3{X: -hw, Z: hd}
	fr := math.Vec3{X: hw, Z: hd}
	br := math.Vec3{X: hw, Z: -hd}
	bl := math.Vec3{X: -hw, Z: -hd}
	peak := math.Vec3{Y: height}

	uv0 := math.Vec2{X: 0, Y: 0}
	uv1 := math.Vec2{X: 1, Y: 0}
	uvPeak := math.Vec2{X: 0.5, Y: 1}

	var b Buffer
	for _, edge := range [][2]math.Vec3{{fl, fr}, {fr, br}, {br, bl}, {bl, fl}} {
		b.flatTri(edge[0], edge[1], peak, FaceNormal(edge[0], edge[1], peak), uv0, uv1, uvPeak)
	}
	return b
}

// Cluster merges boxes with the given half extents centred at each offset.
// Clouds are built as clusters of small cubes.
func Cluster(offsets []math.Vec3, halfExtent math.Vec3) Buffer {
	var b Buffer
	box := Box(halfExtent.Scale(2), 1)
	for _, off := range offsets {
		b.Append(box.Translated(off))
	}
	return b
}
