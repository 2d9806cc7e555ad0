// Package geometry builds procedural triangle meshes as flat vertex buffers.
//
// Every builder is a pure function: the same parameters always produce the
// same Buffer, and nothing is cached at package level.
package geometry

import "github.com/riverview3d/riverside/pkg/math"

// FloatsPerVertex is the interleaved layout uploaded to the GPU:
// position (3), normal (3), texture coordinate (2).
const FloatsPerVertex = 8

// Vertex represents a mesh vertex with all attributes.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Buffer is a non-indexed triangle list.
type Buffer struct {
	Vertices []Vertex
}

// TriangleCount returns the number of triangles in the buffer.
func (b *Buffer) TriangleCount() int {
	return len(b.Vertices) / 3
}

// Floats packs the buffer into the interleaved GPU layout.
func (b *Buffer) Floats() []float32 {
	out := make([]float32, 0, len(b.Vertices)*FloatsPerVertex)
	for _, v := range b.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.TexCoord.X, v.TexCoord.Y,
		)
	}
	return out
}

// Triangle returns the three vertices of triangle i.
func (b *Buffer) Triangle(i int) [3]Vertex {
	return [3]Vertex{b.Vertices[3*i], b.Vertices[3*i+1], b.Vertices[3*i+2]}
}

// Append adds the vertices of other to b.
func (b *Buffer) Append(other Buffer) {
	b.Vertices = append(b.Vertices, other.Vertices...)
}

// Translated returns a copy of b moved by offset.
func (b *Buffer) Translated(offset math.Vec3) Buffer {
	out := Buffer{Vertices: make([]Vertex, len(b.Vertices))}
	for i, v := range b.Vertices {
		v.Position = v.Position.Add(offset)
		out.Vertices[i] = v
	}
	return out
}

func (b *Buffer) tri(a, c, d Vertex) {
	b.Vertices = append(b.Vertices, a, c, d)
}

// flatTri appends a triangle that shares one face normal.
func (b *Buffer) flatTri(p0, p1, p2 math.Vec3, n math.Vec3, uv0, uv1, uv2 math.Vec2) {
	b.tri(
		Vertex{Position: p0, Normal: n, TexCoord: uv0},
		Vertex{Position: p1, Normal: n, TexCoord: uv1},
		Vertex{Position: p2, Normal: n, TexCoord: uv2},
	)
}

// quad appends corners p0..p3 (counter-clockwise seen from the side n
// points to) as triangles p0-p1-p2 and p0-p2-p3.
func (b *Buffer) quad(p0, p1, p2, p3, n math.Vec3, uvRepeat float32) {
	uv0 := math.Vec2{X: 0, Y: 0}
	uv1 := math.Vec2{X: uvRepeat, Y: 0}
	uv2 := math.Vec2{X: uvRepeat, Y: uvRepeat}
	uv3 := math.Vec2{X: 0, Y: uvRepeat}
	b.flatTri(p0, p1, p2, n, uv0, uv1, uv2)
	b.flatTri(p0, p2, p3, n, uv0, uv2, uv3)
}

// FaceNormal returns the unit normal of the counter-clockwise triangle a, b, c.
func FaceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func minSegments(n int) int {
	if n < 3 {
		return 3
	}
	return n
}
