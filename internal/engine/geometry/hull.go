package geometry

import "github.com/riverview3d/riverside/pkg/math"

// Section is one cross-section of a lofted hull. Widths are full widths
// centred on x=0; heights are absolute y values; Z places the section along
// the hull.
type Section struct {
	TopWidth     float32
	TopHeight    float32
	BottomWidth  float32
	BottomHeight float32
	Z            float32
}

func (s Section) corners() (tl, tr, br, bl math.Vec3) {
	tl = math.Vec3{X: -s.TopWidth / 2, Y: s.TopHeight, Z: s.Z}
	tr = math.Vec3{X: s.TopWidth / 2, Y: s.TopHeight, Z: s.Z}
	br = math.Vec3{X: s.BottomWidth / 2, Y: s.BottomHeight, Z: s.Z}
	bl = math.Vec3{X: -s.BottomWidth / 2, Y: s.BottomHeight, Z: s.Z}
	return
}

func (s Section) midHeight() float32 {
	return (s.TopHeight + s.BottomHeight) / 2
}

// Hull lofts a closed body through sections in order. Consecutive sections
// are joined by top, right, bottom and left quads, and the first and last
// sections are capped. Sections may run toward +Z or -Z.
//
// Neighbouring sections generally differ in size, so side quads are not
// planar. Each quad gets one normal from the cross product of its diagonals,
// flipped if needed so it points away from the hull centre line, and its
// winding is made to agree. The result has 8*(len-1)+4 triangles.
func Hull(sections []Section) Buffer {
	var b Buffer
	if len(sections) < 2 {
		return b
	}

	for i := 0; i < len(sections)-1; i++ {
		cur, next := sections[i], sections[i+1]
		ctl, ctr, cbr, cbl := cur.corners()
		ntl, ntr, nbr, nbl := next.corners()

		mid := (cur.midHeight() + next.midHeight()) / 2
		faces := [4][4]math.Vec3{
			{ctl, ctr, ntr, ntl}, // top
			{ctr, cbr, nbr, ntr}, // right
			{cbr, cbl, nbl, nbr}, // bottom
			{cbl, ctl, ntl, nbl}, // left
		}
		for _, f := range faces {
			c := math.Centroid(f[0], f[1], f[2], f[3])
			outward := c.Sub(math.Vec3{Y: mid, Z: c.Z})
			b.orientedQuad(f, outward)
		}
	}

	first, second := sections[0], sections[1]
	last, beforeLast := sections[len(sections)-1], sections[len(sections)-2]
	b.capSection(first, math.Vec3{Z: math.Sign(first.Z - second.Z)})
	b.capSection(last, math.Vec3{Z: math.Sign(last.Z - beforeLast.Z)})
	return b
}

func (b *Buffer) capSection(s Section, outward math.Vec3) {
	tl, tr, br, bl := s.corners()
	b.orientedQuad([4]math.Vec3{tl, tr, br, bl}, outward)
}

// orientedQuad emits q with a normal facing the outward hint.
func (b *Buffer) orientedQuad(q [4]math.Vec3, outward math.Vec3) {
	n := q[2].Sub(q[0]).Cross(q[3].Sub(q[1])).Normalize()
	if n.Dot(outward) < 0 {
		q[1], q[3] = q[3], q[1]
		n = n.Neg()
	}
	b.quad(q[0], q[1], q[2], q[3], n, 1)
}
