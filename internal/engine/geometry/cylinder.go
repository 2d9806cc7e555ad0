package geometry

import (
	gomath "math"

	"github.com/riverview3d/riverside/pkg/math"
)

// Axis selects the long axis of a cylinder.
type Axis int

const (
	AxisY Axis = iota // logs, trunks, pillars
	AxisX             // wheels
)

// CylinderOptions configures Cylinder.
type CylinderOptions struct {
	Radius   float32
	Height   float32 // length along the axis
	Segments int     // radial divisions, at least 3
	Axis     Axis
}

// Cylinder builds a closed cylinder centred on the origin.
// It emits N triangles per cap and 2N for the side, 4N in total.
// Side normals are radial; cap normals point along the axis.
func Cylinder(opts CylinderOptions) Buffer {
	n := minSegments(opts.Segments)
	r := opts.Radius
	half := opts.Height / 2

	ring := func(i int) (math.Vec3, math.Vec3) {
		a := 2 * gomath.Pi * float64(i) / float64(n)
		c, s := float32(gomath.Cos(a)), float32(gomath.Sin(a))
		return math.Vec3{X: r * c, Z: r * s}, math.Vec3{X: c, Z: s}
	}

	top := math.Vec3{Y: half}
	bottom := math.Vec3{Y: -half}
	center := math.Vec2{X: 0.5, Y: 0.5}

	var b Buffer
	for i := range n {
		p0, n0 := ring(i)
		p1, n1 := ring(i + 1)

		uv0 := math.Vec2{X: 0.5 + 0.5*n0.X, Y: 0.5 + 0.5*n0.Z}
		uv1 := math.Vec2{X: 0.5 + 0.5*n1.X, Y: 0.5 + 0.5*n1.Z}

		// Caps: bottom winds p0->p1, top winds p1->p0 so both face outward.
		b.flatTri(bottom, p0.Add(bottom), p1.Add(bottom), math.Up.Neg(), center, uv0, uv1)
		b.flatTri(top, p1.Add(top), p0.Add(top), math.Up, center, uv1, uv0)

		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)
		b0 := Vertex{Position: p0.Add(bottom), Normal: n0, TexCoord: math.Vec2{X: u0, Y: 0}}
		t0 := Vertex{Position: p0.Add(top), Normal: n0, TexCoord: math.Vec2{X: u0, Y: 1}}
		b1 := Vertex{Position: p1.Add(bottom), Normal: n1, TexCoord: math.Vec2{X: u1, Y: 0}}
		t1 := Vertex{Position: p1.Add(top), Normal: n1, TexCoord: math.Vec2{X: u1, Y: 1}}
		b.tri(b0, t0, b1)
		b.tri(b1, t0, t1)
	}

	if opts.Axis == AxisX {
		b.rotateYToX()
	}
	return b
}

// rotateYToX maps the Y axis onto X with the cyclic permutation
// (x, y, z) -> (y, z, x). It is a proper rotation, so winding is preserved.
func (b *Buffer) rotateYToX() {
	perm := func(v math.Vec3) math.Vec3 { return math.Vec3{X: v.Y, Y: v.Z, Z: v.X} }
	for i := range b.Vertices {
		b.Vertices[i].Position = perm(b.Vertices[i].Position)
		b.Vertices[i].Normal = perm(b.Vertices[i].Normal)
	}
}
