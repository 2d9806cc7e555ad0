package geometry

import "github.com/riverview3d/riverside/pkg/math"

// SmoothNormals averages normals at shared vertex positions, removing the
// hard edges between adjacent flat-shaded faces.
func SmoothNormals(vertices []Vertex) {
	const epsilon float32 = 0.001

	// Group vertices by quantized position for O(n) lookup
	posMap := make(map[[3]int32][]int)
	for i := range vertices {
		p := vertices[i].Position
		key := [3]int32{
			int32(p.X / epsilon),
			int32(p.Y / epsilon),
			int32(p.Z / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, indices := range posMap {
		if len(indices) < 2 {
			continue
		}

		var sum math.Vec3
		for _, idx := range indices {
			sum = sum.Add(vertices[idx].Normal)
		}

		avg := sum.Normalize()
		if avg == (math.Vec3{}) {
			avg = math.Up
		}
		for _, idx := range indices {
			vertices[idx].Normal = avg
		}
	}
}
