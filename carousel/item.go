package carousel

import "math/rand/v2"

// Item is one card in the strip. It is either an ImageItem or a ProceduralItem.
type Item interface {
	isItem()
}

// ImageItem references a bitmap asset by path.
type ImageItem struct {
	Source string
}

// ProceduralItem is a synthetic disc used when no real images are configured.
type ProceduralItem struct {
	Hue  int     // 0-359
	Seed float64 // 0.0-1.0
}

func (ImageItem) isItem()      {}
func (ProceduralItem) isItem() {}

// Shuffle returns a shuffled copy of items. The input slice is not modified.
// A nil r uses the global source.
func Shuffle(items []Item, r *rand.Rand) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r == nil {
		rand.Shuffle(len(out), swap)
	} else {
		r.Shuffle(len(out), swap)
	}
	return out
}

// LoopSequence returns base followed by itself.
func LoopSequence(base []Item) []Item {
	out := make([]Item, 0, 2*len(base))
	out = append(out, base...)
	return append(out, base...)
}

// ImageItems wraps a list of asset paths.
func ImageItems(sources []string) []Item {
	items := make([]Item, len(sources))
	for i, s := range sources {
		items[i] = ImageItem{Source: s}
	}
	return items
}
