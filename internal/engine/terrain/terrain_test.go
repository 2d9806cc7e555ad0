package terrain

import (
	gomath "math"
	"testing"

	"github.com/riverview3d/riverside/pkg/math"
	"github.com/riverview3d/riverside/pkg/noise"
)

func TestBuildMeshTriangleCount(t *testing.T) {
	tests := []struct {
		w, d int
	}{
		{2, 2},
		{3, 7},
		{40, 40},
		{20, 40},
	}

	for _, tt := range tests {
		hf := NewHeightField(tt.w, tt.d, Flat(0))
		m := BuildMesh(hf, 10, 10, MeshOptions{})
		if got, want := m.Buffer.TriangleCount(), 2*(tt.w-1)*(tt.d-1); got != want {
			t.Errorf("%dx%d: TriangleCount() = %d, want %d", tt.w, tt.d, got, want)
		}
	}
}

func TestNewHeightFieldMinimumSize(t *testing.T) {
	hf := NewHeightField(0, 1, Flat(1))
	if hf.Width() != 2 || hf.Depth() != 2 {
		t.Errorf("size = %dx%d, want 2x2", hf.Width(), hf.Depth())
	}
}

func TestMeshHeightRoundTrip(t *testing.T) {
	fn := PeakField(DefaultPeaks(), true, 8)
	hf := NewHeightField(40, 40, fn)
	const size = 12
	m := BuildMesh(hf, size, size, MeshOptions{})

	for _, v := range m.Buffer.Vertices {
		// Recover the grid index from the vertex position.
		gx := int(gomath.Round(float64((v.Position.X/size + 0.5) * 39)))
		gz := int(gomath.Round(float64((v.Position.Z/size + 0.5) * 39)))
		if want := hf.At(gx, gz); v.Position.Y != want {
			t.Fatalf("vertex at grid (%d, %d) y = %v, want %v", gx, gz, v.Position.Y, want)
		}

		nx := 2*float64(gx)/39 - 1
		nz := 2*float64(gz)/39 - 1
		if want := float32(fn(nx, nz)); v.Position.Y != want {
			t.Fatalf("vertex at grid (%d, %d) y = %v, sampled %v", gx, gz, v.Position.Y, want)
		}
	}
}

func TestMeshUVs(t *testing.T) {
	hf := NewHeightField(5, 3, Flat(0))
	m := BuildMesh(hf, 4, 2, MeshOptions{UVRepeat: 2})
	for _, v := range m.Buffer.Vertices {
		if v.TexCoord.X < 0 || v.TexCoord.X > 2 || v.TexCoord.Y < 0 || v.TexCoord.Y > 2 {
			t.Errorf("UV %v outside [0, 2]", v.TexCoord)
		}
	}
	if m.Bounds.Min[0] != -2 || m.Bounds.Max[0] != 2 || m.Bounds.Min[2] != -1 || m.Bounds.Max[2] != 1 {
		t.Errorf("bounds = %+v, want x in [-2, 2], z in [-1, 1]", m.Bounds)
	}
}

func TestMeshNormals(t *testing.T) {
	tests := []struct {
		name string
		mode NormalMode
	}{
		{"up", NormalsUp},
		{"face", NormalsFace},
		{"smooth", NormalsSmooth},
	}

	for _, tt := range tests {
		t.Run(tt.name+" flat", func(t *testing.T) {
			// Zero-height terrain is valid and always faces up.
			m := BuildMesh(NewHeightField(6, 6, Flat(0)), 5, 5, MeshOptions{Normals: tt.mode})
			for i, v := range m.Buffer.Vertices {
				if gomath.Abs(float64(v.Normal.Sub(math.Up).Length())) > 1e-5 {
					t.Fatalf("vertex %d normal = %v, want up", i, v.Normal)
				}
			}
		})

		t.Run(tt.name+" peaks", func(t *testing.T) {
			m := BuildMesh(NewHeightField(20, 20, PeakField(DefaultPeaks(), false, 8)), 12, 12, MeshOptions{Normals: tt.mode})
			tilted := false
			for i, v := range m.Buffer.Vertices {
				if v.Normal.Y <= 0 {
					t.Fatalf("vertex %d normal %v faces downward", i, v.Normal)
				}
				if v.Normal.Y < 0.999 {
					tilted = true
				}
			}
			if tt.mode == NormalsUp && tilted {
				t.Error("up mode produced tilted normals")
			}
			if tt.mode != NormalsUp && !tilted {
				t.Error("slope modes produced only vertical normals on a mountain")
			}
		})
	}
}

func TestPeakField(t *testing.T) {
	single := PeakField(DefaultPeaks()[:1], false, 8)
	if got := single(0, 0); gomath.Abs(got-8) > 1e-9 {
		t.Errorf("summit height = %v, want 8", got)
	}

	fn := PeakField(DefaultPeaks(), false, 8)
	if got := fn(0, 0); got <= 8 {
		t.Errorf("overlapping peaks height = %v, want above 8", got)
	}
	if got := fn(1, 1); got != 0 {
		t.Errorf("corner height = %v, want 0", got)
	}

	rippled := PeakField(nil, true, 1)
	for _, p := range [][2]float64{{0.1, 0.1}, {-0.7, 0.3}, {0.9, -0.9}} {
		if v := rippled(p[0], p[1]); v < 0 || v > 0.1 {
			t.Errorf("ripple(%v) = %v, want within [0, 0.1]", p, v)
		}
	}
}

func TestCarveChannel(t *testing.T) {
	fn := CarveChannel(Flat(1), -0.3, 0.2, -0.5)

	tests := []struct {
		nx   float64
		want float64
	}{
		{-0.3, -0.5},
		{-0.15, -0.5},
		{0.2, 1},
		{-0.6, 0.25},
	}
	for _, tt := range tests {
		if got := fn(tt.nx, 0); gomath.Abs(got-tt.want) > 1e-9 {
			t.Errorf("carved(%v) = %v, want %v", tt.nx, got, tt.want)
		}
	}
}

func TestSum(t *testing.T) {
	fn := Sum(Flat(1), Flat(0.5), func(nx, _ float64) float64 { return nx })
	if got := fn(0.25, 0); gomath.Abs(got-1.75) > 1e-9 {
		t.Errorf("Sum = %v, want 1.75", got)
	}
	if got := Sum()(0, 0); got != 0 {
		t.Errorf("empty Sum = %v, want 0", got)
	}
}

func TestRidgeFieldRange(t *testing.T) {
	hf := NewHeightField(12, 12, RidgeField(noise.New(3), 3, noise.DefaultRidge(), 2))
	for x := range 12 {
		for z := range 12 {
			if v := hf.At(x, z); v < 0 || v > 2 {
				t.Fatalf("ridge sample (%d, %d) = %v outside [0, 2]", x, z, v)
			}
		}
	}
}

func TestNoiseFieldDeterministic(t *testing.T) {
	a := NewHeightField(16, 16, NoiseField(noise.New(42), 4, noise.DefaultOctaves(), 2))
	b := NewHeightField(16, 16, NoiseField(noise.New(42), 4, noise.DefaultOctaves(), 2))
	for x := range 16 {
		for z := range 16 {
			if a.At(x, z) != b.At(x, z) {
				t.Fatalf("sample (%d, %d) differs: %v vs %v", x, z, a.At(x, z), b.At(x, z))
			}
			if v := a.At(x, z); v < -2 || v > 2 {
				t.Fatalf("sample (%d, %d) = %v outside amplitude", x, z, v)
			}
		}
	}

	r := NewHeightField(8, 8, RidgeField(noise.New(42), 3, noise.DefaultRidge(), 5))
	if r.At(3, 3) < 0 {
		t.Errorf("ridge sample = %v, want non-negative", r.At(3, 3))
	}
}

func TestPatchHeightAt(t *testing.T) {
	// Height rises linearly along x from -1 to 1.
	hf := NewHeightField(11, 11, func(nx, _ float64) float64 { return nx })
	p := Patch{Field: hf, SizeX: 20, SizeZ: 20}

	tests := []struct {
		x, z, want float32
	}{
		{0, 0, 0},
		{-10, 3, -1},
		{10, -3, 1},
		{5, 0, 0.5},
		{3.3, 1.7, 0.33},
		{50, 0, 1}, // clamped to the edge
	}
	for _, tt := range tests {
		if got := p.HeightAt(tt.x, tt.z); gomath.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("HeightAt(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}
