package geometry

import (
	gomath "math"

	"github.com/riverview3d/riverside/pkg/math"
)

// Cone builds a cone with its base on y=0 and apex at height.
// The base is a fan facing -Y; each lateral face takes the normalized cross
// product of its two slant edges, wound so it points away from the axis.
func Cone(radius, height float32, segments int) Buffer {
	n := minSegments(segments)
	peak := math.Vec3{Y: height}
	center := math.Vec3{}

	point := func(i int) math.Vec3 {
		a := 2 * gomath.Pi * float64(i) / float64(n)
		return math.Vec3{X: radius * float32(gomath.Cos(a)), Z: radius * float32(gomath.Sin(a))}
	}

	var b Buffer
	for i := range n {
		p0 := point(i)
		p1 := point(i + 1)

		b.flatTri(center, p0, p1, math.Up.Neg(),
			math.Vec2{X: 0.5, Y: 0.5},
			math.Vec2{X: 0.5 + 0.5*p0.X/radius, Y: 0.5 + 0.5*p0.Z/radius},
			math.Vec2{X: 0.5 + 0.5*p1.X/radius, Y: 0.5 + 0.5*p1.Z/radius},
		)

		side := p1.Sub(peak).Cross(p0.Sub(peak)).Normalize()
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)
		b.flatTri(peak, p1, p0, side,
			math.Vec2{X: (u0 + u1) / 2, Y: 1},
			math.Vec2{X: u1, Y: 0},
			math.Vec2{X: u0, Y: 0},
		)
	}
	return b
}
