package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Puff generates a soft white blob with a noisy edge, used for cloud and
// smoke sprites when no texture file is available. Alpha falls off with
// distance from the centre and is broken up by simplex noise.
func Puff(size int, seed int64) *image.RGBA {
	size = max(size, 2)
	n := opensimplex.NewNormalized(seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	half := float64(size-1) / 2
	for y := range size {
		for x := range size {
			dx := (float64(x) - half) / half
			dy := (float64(y) - half) / half
			d := math.Sqrt(dx*dx + dy*dy)

			edge := 0.75 + 0.25*fbm(n, dx*2, dy*2, 3)
			a := 1 - smoothstep(edge*0.6, edge, d)
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)})
		}
	}
	return img
}

// Grass generates a tileable-looking mottled green used for the ground when
// its texture file is missing.
func Grass(size int, seed int64) *image.RGBA {
	size = max(size, 2)
	n := opensimplex.NewNormalized(seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := range size {
		for x := range size {
			v := fbm(n, float64(x)/16, float64(y)/16, 4)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(40 + 40*v),
				G: uint8(110 + 80*v),
				B: uint8(30 + 30*v),
				A: 255,
			})
		}
	}
	return img
}

// fbm sums octaves of normalized simplex noise, returning a value in [0, 1].
func fbm(n opensimplex.Noise, x, y float64, octaves int) float64 {
	var total, norm float64
	amp, freq := 1.0, 1.0
	for range octaves {
		total += n.Eval2(x*freq, y*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return total / norm
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := math.Max(0, math.Min(1, (x-edge0)/(edge1-edge0)))
	return t * t * (3 - 2*t)
}
