// Package pixelart draws pixel-art bitmaps at integer scales without
// smoothing, and generates the procedural disc placeholders.
package pixelart

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Sizing selects how a source is scaled. An explicit Scale >= 1 wins;
// otherwise TargetWidth > 0 derives the nearest integer scale; otherwise 1.
type Sizing struct {
	Scale       int
	TargetWidth float64
}

// ResolveScale returns the integer scale for a source of the given width.
func ResolveScale(s Sizing, srcWidth int) int {
	if s.Scale >= 1 {
		return s.Scale
	}
	if s.TargetWidth > 0 && srcWidth > 0 {
		return max(1, int(math.Round(s.TargetWidth/float64(srcWidth))))
	}
	return 1
}

// Upscale draws src onto a new surface scale times larger in each
// dimension using nearest-neighbor sampling, so every source pixel
// becomes a scale x scale block.
func Upscale(src image.Image, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Render resolves the scale for src and upscales it.
func Render(src image.Image, s Sizing) *image.NRGBA {
	return Upscale(src, ResolveScale(s, src.Bounds().Dx()))
}
