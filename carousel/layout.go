package carousel

import "time"

// Viewport is a snapshot of the scrolling strip, in pixels.
type Viewport struct {
	Width       float64 // visible width
	ScrollLeft  float64 // current offset
	ScrollWidth float64 // total content width
}

// MaxScroll returns the largest valid offset. It is <= 0 when the content fits.
func (v Viewport) MaxScroll() float64 {
	return v.ScrollWidth - v.Width
}

// LayoutProvider measures the rendered strip. Each method reports false
// when the layout is not available yet (before first paint, or after teardown).
type LayoutProvider interface {
	MeasureFirstItemWidth() (float64, bool)
	MeasureGap() (float64, bool)
	MeasureViewport() (Viewport, bool)
}

// Scroller moves the strip. With smooth false the move is instant.
type Scroller interface {
	ScrollTo(offset float64, smooth bool)
}

// Scheduler runs fn every d until the returned stop func is called.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// ResizeNotifier calls fn whenever the viewport changes size.
type ResizeNotifier interface {
	OnResize(fn func()) (remove func())
}
