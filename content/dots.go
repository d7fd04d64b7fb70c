package content

import (
	"fmt"
	"slices"
)

// NumThumbs is the number of dot images shipped in the asset pack.
const NumThumbs = 41

// Image sizes used on the poster.
const (
	HeroDotWidth   = 48
	BottomDotWidth = 64
)

// TopDotIDs are the dots shown in the hero row.
var TopDotIDs = []int{1, 2, 3, 4, 5, 6, 7, 8}

// DesiredBottomIDs are the preferred dots for the sweepstakes row.
var DesiredBottomIDs = []int{10, 11, 12}

// LogoCandidates are tried in order for the header logo.
var LogoCandidates = []string{"/logo.png", "/logo.PNG", "/logo.webp"}

// ThumbPath returns the asset name for dot id.
func ThumbPath(id int) string {
	return fmt.Sprintf("/dots/%d.png", id)
}

// Thumbs returns the asset names of every dot, /dots/1.png through
// /dots/41.png.
func Thumbs() []string {
	out := make([]string, NumThumbs)
	for i := range out {
		out[i] = ThumbPath(i + 1)
	}
	return out
}

// PlaceholderDot parameterizes a procedural disc.
type PlaceholderDot struct {
	ID   int
	Hue  int
	Seed float64
}

// PlaceholderDots returns the 24 deterministic placeholder discs used when
// no dot images are available.
func PlaceholderDots() []PlaceholderDot {
	out := make([]PlaceholderDot, 24)
	for i := range out {
		out[i] = PlaceholderDot{
			ID:   i + 1,
			Hue:  (i * 137) % 360,
			Seed: float64((i*9301)%233280) / 233280,
		}
	}
	return out
}

// BottomIDs picks len(desired) ids for the sweepstakes row that do not
// repeat the hero row. Desired ids in 1..total that are not in top are
// kept in order; the rest are filled with the lowest unused ids.
func BottomIDs(top, desired []int, total int) []int {
	result := make([]int, 0, len(desired))
	for _, id := range desired {
		if !slices.Contains(top, id) && id >= 1 && id <= total {
			result = append(result, id)
		}
	}
	for i := 1; i <= total && len(result) < len(desired); i++ {
		if !slices.Contains(top, i) && !slices.Contains(result, i) {
			result = append(result, i)
		}
	}
	return result
}
