package pixelart

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DiscSize is the side of the placeholder disc surface.
const DiscSize = 96

// Disc draws a disc of radius 0.48*size centered on a size x size surface.
// Each interior pixel has the given hue at 70% saturation and a lightness
// between 45% and 90% derived from its coordinates and seed. Pixels outside
// the radius stay transparent. The output depends only on the arguments.
func Disc(hue int, seed float64, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := float64(size) * 0.48

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if math.Sqrt(dx*dx+dy*dy) > radius {
				continue
			}
			img.Set(x, y, discColor(hue, seed, x, y))
		}
	}
	return img
}

// DiscLightness returns the lightness percentage for pixel (x, y).
func DiscLightness(seed float64, x, y int) int {
	n := 0.13*float64(x) + 0.17*float64(y)
	t := math.Abs(math.Sin(n * 9999 * seed))
	return 45 + int(math.Floor(t*45))
}

func discColor(hue int, seed float64, x, y int) colorful.Color {
	l := DiscLightness(seed, x, y)
	return colorful.Hsl(float64(hue), 0.7, float64(l)/100).Clamped()
}
