package geometry

import (
	gomath "math"
	"testing"

	"github.com/riverview3d/riverside/pkg/math"
)

const eps = 1e-4

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func isUnit(v math.Vec3) bool {
	return near(v.Length(), 1)
}

// windingAgrees reports whether the triangle's geometric orientation matches
// its stored normal.
func windingAgrees(tri [3]Vertex) bool {
	geo := tri[1].Position.Sub(tri[0].Position).Cross(tri[2].Position.Sub(tri[0].Position))
	return geo.Dot(tri[0].Normal) > 0
}

func TestCylinderTriangleCount(t *testing.T) {
	for _, segments := range []int{3, 8, 16, 32} {
		b := Cylinder(CylinderOptions{Radius: 1, Height: 2, Segments: segments})
		if got, want := b.TriangleCount(), 4*segments; got != want {
			t.Errorf("Cylinder(%d).TriangleCount() = %d, want %d", segments, got, want)
		}
	}
}

func TestCylinderMinimumSegments(t *testing.T) {
	b := Cylinder(CylinderOptions{Radius: 1, Height: 1, Segments: 0})
	if got := b.TriangleCount(); got != 12 {
		t.Errorf("Cylinder(0).TriangleCount() = %d, want 12", got)
	}
}

func TestCylinderNormals(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		dir  math.Vec3
	}{
		{"y axis", AxisY, math.Vec3{Y: 1}},
		{"x axis", AxisX, math.Vec3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Cylinder(CylinderOptions{Radius: 0.0875, Height: 0.0625, Segments: 32, Axis: tt.axis})
			sides := 0
			for i := range b.TriangleCount() {
				tri := b.Triangle(i)
				for _, v := range tri {
					if !isUnit(v.Normal) {
						t.Fatalf("triangle %d normal %v is not unit length", i, v.Normal)
					}
				}
				if !windingAgrees(tri) {
					t.Errorf("triangle %d winding disagrees with its normal", i)
				}

				axial := tri[0].Normal.Dot(tt.dir)
				if near(axial, 0) {
					sides++
					// Tread normals point away from the axis.
					radial := tri[0].Position.Sub(tt.dir.Scale(tri[0].Position.Dot(tt.dir)))
					if radial.Dot(tri[0].Normal) <= 0 {
						t.Errorf("side triangle %d normal points inward", i)
					}
					continue
				}
				if !near(absf(axial), 1) {
					t.Errorf("triangle %d normal %v is neither radial nor axial", i, tri[0].Normal)
				}
			}
			if sides != 64 {
				t.Errorf("side triangles = %d, want 64", sides)
			}
		})
	}
}

func absf(v float32) float32 {
	return float32(gomath.Abs(float64(v)))
}

func TestConeNormals(t *testing.T) {
	b := Cone(0.6, 0.8, 16)
	if got := b.TriangleCount(); got != 32 {
		t.Fatalf("Cone.TriangleCount() = %d, want 32", got)
	}

	for i := range b.TriangleCount() {
		tri := b.Triangle(i)
		n := tri[0].Normal
		if !isUnit(n) {
			t.Fatalf("triangle %d normal %v is not unit length", i, n)
		}
		if !windingAgrees(tri) {
			t.Errorf("triangle %d winding disagrees with its normal", i)
		}
		if n == math.Up.Neg() {
			continue
		}
		c := math.Centroid(tri[0].Position, tri[1].Position, tri[2].Position)
		if n.Y <= 0 {
			t.Errorf("lateral triangle %d normal %v should tilt upward", i, n)
		}
		if (math.Vec3{X: c.X, Z: c.Z}).Dot(n) <= 0 {
			t.Errorf("lateral triangle %d normal %v points toward the axis", i, n)
		}
	}
}

func sedan() []Section {
	return []Section{
		{0.2, 0.1, 0.2, 0.05, 0.6},
		{0.35, 0.175, 0.4, 0.05, 0.45},
		{0.375, 0.2, 0.425, 0.05, 0.2},
		{0.3, 0.325, 0.425, 0.05, 0.075},
		{0.3, 0.325, 0.425, 0.05, -0.15},
		{0.35, 0.225, 0.425, 0.05, -0.3},
		{0.325, 0.2, 0.4, 0.075, -0.525},
		{0.25, 0.125, 0.25, 0.075, -0.575},
	}
}

func TestHullTriangleCount(t *testing.T) {
	s := sedan()
	b := Hull(s)
	if got, want := b.TriangleCount(), 8*(len(s)-1)+4; got != want {
		t.Errorf("Hull.TriangleCount() = %d, want %d", got, want)
	}
}

func TestHullTooFewSections(t *testing.T) {
	b := Hull(sedan()[:1])
	if b.TriangleCount() != 0 {
		t.Errorf("Hull with one section produced %d triangles", b.TriangleCount())
	}
}

func TestHullOrientation(t *testing.T) {
	forward := sedan()
	backward := make([]Section, len(forward))
	for i, s := range forward {
		backward[len(forward)-1-i] = s
	}

	for name, sections := range map[string][]Section{"front to back": forward, "back to front": backward} {
		t.Run(name, func(t *testing.T) {
			b := Hull(sections)
			for i := range b.TriangleCount() {
				tri := b.Triangle(i)
				if !isUnit(tri[0].Normal) {
					t.Fatalf("triangle %d normal %v is not unit length", i, tri[0].Normal)
				}
				if !windingAgrees(tri) {
					t.Errorf("triangle %d winding disagrees with its normal", i)
				}
			}
		})
	}
}

func TestHullBoxNormalsOutward(t *testing.T) {
	// Two identical rectangular sections make a box; every face normal must
	// point away from the box centre.
	b := Hull([]Section{
		{TopWidth: 2, TopHeight: 1, BottomWidth: 2, BottomHeight: -1, Z: 1},
		{TopWidth: 2, TopHeight: 1, BottomWidth: 2, BottomHeight: -1, Z: -1},
	})
	if b.TriangleCount() != 12 {
		t.Fatalf("box hull triangles = %d, want 12", b.TriangleCount())
	}
	for i := range b.TriangleCount() {
		tri := b.Triangle(i)
		c := math.Centroid(tri[0].Position, tri[1].Position, tri[2].Position)
		if c.Dot(tri[0].Normal) <= 0 {
			t.Errorf("triangle %d normal %v points inward (centroid %v)", i, tri[0].Normal, c)
		}
	}
}

func TestBoxFacesOutward(t *testing.T) {
	b := Box(math.Vec3{X: 3, Y: 2, Z: 8}, 4)
	if b.TriangleCount() != 12 {
		t.Fatalf("Box.TriangleCount() = %d, want 12", b.TriangleCount())
	}
	for i := range b.TriangleCount() {
		tri := b.Triangle(i)
		if !windingAgrees(tri) {
			t.Errorf("triangle %d winding disagrees with its normal", i)
		}
		c := math.Centroid(tri[0].Position, tri[1].Position, tri[2].Position)
		if c.Dot(tri[0].Normal) <= 0 {
			t.Errorf("triangle %d normal points inward", i)
		}
	}
}

func TestPyramidAndPlane(t *testing.T) {
	roof := Pyramid(1.5, 1.3, 0.8)
	if roof.TriangleCount() != 4 {
		t.Fatalf("Pyramid.TriangleCount() = %d, want 4", roof.TriangleCount())
	}
	for i := range roof.TriangleCount() {
		if n := roof.Triangle(i)[0].Normal; n.Y <= 0 {
			t.Errorf("roof face %d normal %v should face upward", i, n)
		}
	}

	plane := Plane(15, 2)
	for _, v := range plane.Vertices {
		if v.Normal != math.Up || v.Position.Y != 0 {
			t.Errorf("plane vertex %+v is not flat and facing up", v)
		}
	}
}

func TestClusterOffsets(t *testing.T) {
	offsets := []math.Vec3{{}, {X: 1}, {Y: 2}}
	b := Cluster(offsets, math.Vec3{X: 0.3, Y: 0.25, Z: 0.3})
	if got, want := b.TriangleCount(), 12*len(offsets); got != want {
		t.Errorf("Cluster.TriangleCount() = %d, want %d", got, want)
	}
	maxY := float32(-1)
	for _, v := range b.Vertices {
		maxY = max(maxY, v.Position.Y)
	}
	if !near(maxY, 2.25) {
		t.Errorf("cluster top = %v, want 2.25", maxY)
	}
}

func TestFloatsLayout(t *testing.T) {
	b := Cube()
	f := b.Floats()
	if len(f) != len(b.Vertices)*FloatsPerVertex {
		t.Fatalf("Floats() len = %d, want %d", len(f), len(b.Vertices)*FloatsPerVertex)
	}
	v := b.Vertices[5]
	got := f[5*FloatsPerVertex : 6*FloatsPerVertex]
	want := []float32{v.Position.X, v.Position.Y, v.Position.Z, v.Normal.X, v.Normal.Y, v.Normal.Z, v.TexCoord.X, v.TexCoord.Y}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Floats()[%d] = %v, want %v", 5*FloatsPerVertex+i, got[i], want[i])
		}
	}
}

func TestTranslatedCopies(t *testing.T) {
	src := Cube()
	moved := src.Translated(math.Vec3{X: 2, Y: -1})

	if len(moved.Vertices) != len(src.Vertices) {
		t.Fatalf("vertex count = %d, want %d", len(moved.Vertices), len(src.Vertices))
	}
	for i := range src.Vertices {
		want := src.Vertices[i].Position.Add(math.Vec3{X: 2, Y: -1})
		if moved.Vertices[i].Position != want {
			t.Fatalf("vertex %d = %v, want %v", i, moved.Vertices[i].Position, want)
		}
		if moved.Vertices[i].Normal != src.Vertices[i].Normal {
			t.Fatalf("vertex %d normal changed", i)
		}
	}
	if src.Vertices[0].Position.X > 0.5 {
		t.Error("Translated modified the source buffer")
	}
}
