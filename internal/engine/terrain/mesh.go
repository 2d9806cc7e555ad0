package terrain

import (
	"github.com/riverview3d/riverside/internal/engine/geometry"
	"github.com/riverview3d/riverside/pkg/math"
)

// BuildMesh emits two triangles per grid cell over a sizeX x sizeZ footprint
// centred on the origin. Each vertex takes its height straight from the
// field and its UV from the normalized grid index.
func BuildMesh(hf *HeightField, sizeX, sizeZ float32, opts MeshOptions) *Mesh {
	repeat := opts.UVRepeat
	if repeat == 0 {
		repeat = 1
	}

	w, d := hf.width, hf.depth
	vertex := func(x, z int) geometry.Vertex {
		u := float32(x) / float32(w-1)
		v := float32(z) / float32(d-1)
		return geometry.Vertex{
			Position: math.Vec3{
				X: (u - 0.5) * sizeX,
				Y: hf.heights[x][z],
				Z: (v - 0.5) * sizeZ,
			},
			Normal:   math.Up,
			TexCoord: math.Vec2{X: u * repeat, Y: v * repeat},
		}
	}

	mesh := &Mesh{
		Buffer: geometry.Buffer{Vertices: make([]geometry.Vertex, 0, (w-1)*(d-1)*6)},
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for x := range w - 1 {
		for z := range d - 1 {
			a := vertex(x, z)
			b := vertex(x+1, z)
			c := vertex(x+1, z+1)
			e := vertex(x, z+1)

			// Counter-clockwise seen from above.
			for _, tri := range [2][3]geometry.Vertex{{a, e, c}, {a, c, b}} {
				if opts.Normals != NormalsUp {
					n := geometry.FaceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
					for i := range tri {
						tri[i].Normal = n
					}
				}
				for _, v := range tri {
					updateBounds(&mesh.Bounds, v.Position)
				}
				mesh.Buffer.Vertices = append(mesh.Buffer.Vertices, tri[:]...)
			}
		}
	}

	if opts.Normals == NormalsSmooth {
		geometry.SmoothNormals(mesh.Buffer.Vertices)
	}

	return mesh
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min[0] = min(b.Min[0], p.X)
	b.Min[1] = min(b.Min[1], p.Y)
	b.Min[2] = min(b.Min[2], p.Z)
	b.Max[0] = max(b.Max[0], p.X)
	b.Max[1] = max(b.Max[1], p.Y)
	b.Max[2] = max(b.Max[2], p.Z)
}
