package style

import (
	goimage "image"
	"image/draw"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	xdraw "golang.org/x/image/draw"
)

// ScaleImage scales an image to fit within maxWidth x maxHeight while preserving aspect ratio.
// Returns an ebiten.Image suitable for display.
// Scaling is done on CPU to avoid creating large temporary GPU textures.
// Use it for photographic art such as the logo; pixel art goes through pixelart.Render.
func ScaleImage(src goimage.Image, maxWidth, maxHeight int) *ebiten.Image {
	bounds := src.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	scale := min(float64(maxWidth)/float64(srcWidth), float64(maxHeight)/float64(srcHeight))

	newWidth := max(int(float64(srcWidth)*scale), 1)
	newHeight := max(int(float64(srcHeight)*scale), 1)

	dstRect := goimage.Rect(0, 0, newWidth, newHeight)
	scaled := goimage.NewRGBA(dstRect)
	xdraw.ApproxBiLinear.Scale(scaled, dstRect, src, bounds, draw.Over, nil)

	return ebiten.NewImageFromImage(scaled)
}

// EffectiveScale applies the responsive breakpoint to a gallery scale factor:
// below ResponsiveBreakpoint logical pixels of window width the scale is
// halved, never below 1.
func EffectiveScale(scale, windowWidth int) int {
	if scale < 1 {
		scale = 1
	}
	if windowWidth > 0 && windowWidth < ResponsiveBreakpoint {
		return max(1, scale/2)
	}
	return scale
}

// PixelScale converts a logical integer scale to a physical one for the
// current DPI, keeping it an integer so pixel art stays crisp.
func PixelScale(logical int) int {
	return max(1, int(math.Round(float64(logical)*dpiScale)))
}

// EaseOutCubic maps linear progress t in [0, 1] to a decelerating curve.
func EaseOutCubic(t float64) float64 {
	t = max(0, min(1, t))
	u := 1 - t
	return 1 - u*u*u
}

// TruncateStart truncates a string from the start, keeping the end portion.
// Returns the truncated string and whether truncation occurred.
// Useful for file paths where the end (filename) is most relevant.
func TruncateStart(s string, maxLen int) (string, bool) {
	if len(s) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return s[len(s)-maxLen:], true
	}
	return "..." + s[len(s)-maxLen+3:], true
}

// TruncateToWidth truncates a string to fit within a given pixel width using actual font measurement.
// Returns the truncated string (with "..." suffix if truncated) and whether truncation occurred.
// Uses binary search on rune boundaries for efficiency with proportional fonts.
func TruncateToWidth(s string, face text.Face, maxWidth float64) (string, bool) {
	if s == "" {
		return s, false
	}
	w, _ := text.Measure(s, face, 0)
	if w <= maxWidth {
		return s, false
	}

	ellipsis := "..."
	ellipsisW, _ := text.Measure(ellipsis, face, 0)
	if ellipsisW > maxWidth {
		return ellipsis, true
	}

	lo, hi := 0, utf8.RuneCountInString(s)
	best := 0

	for lo <= hi {
		mid := (lo + hi) / 2
		cw, _ := text.Measure(truncateRunes(s, mid)+ellipsis, face, 0)
		if cw <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == 0 {
		return ellipsis, true
	}
	return truncateRunes(s, best) + ellipsis, true
}

// truncateRunes returns the first n runes of s as a string.
func truncateRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			break
		}
		i += size
	}
	return s[:i]
}
