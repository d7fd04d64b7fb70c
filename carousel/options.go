package carousel

import "time"

// Defaults for Options. Card geometry adds CardPadding around the scaled
// native item, and FallbackGap is used when the track gap cannot be measured.
const (
	DefaultAutoAdvanceInterval = 1800 * time.Millisecond
	DefaultNativeItemWidth     = 10
	DefaultNativeItemHeight    = 14
	DefaultScaleFactor         = 12

	CardPadding = 16
	FallbackGap = 12
)

// Options configures a Carousel. Zero fields take the defaults above.
type Options struct {
	AutoAdvanceInterval  time.Duration
	RespectReducedMotion bool
	NativeItemWidth      int
	NativeItemHeight     int
	ScaleFactor          int
}

// DefaultOptions returns the options used by the poster.
func DefaultOptions() Options {
	return Options{
		AutoAdvanceInterval: DefaultAutoAdvanceInterval,
		NativeItemWidth:     DefaultNativeItemWidth,
		NativeItemHeight:    DefaultNativeItemHeight,
		ScaleFactor:         DefaultScaleFactor,
	}
}

func (o Options) withDefaults() Options {
	if o.AutoAdvanceInterval <= 0 {
		o.AutoAdvanceInterval = DefaultAutoAdvanceInterval
	}
	if o.NativeItemWidth <= 0 {
		o.NativeItemWidth = DefaultNativeItemWidth
	}
	if o.NativeItemHeight <= 0 {
		o.NativeItemHeight = DefaultNativeItemHeight
	}
	if o.ScaleFactor <= 0 {
		o.ScaleFactor = DefaultScaleFactor
	}
	return o
}

// CardWidth is the nominal card width in logical pixels.
func (o Options) CardWidth() int {
	o = o.withDefaults()
	return o.NativeItemWidth*o.ScaleFactor + CardPadding
}

// CardHeight is the nominal card height in logical pixels.
func (o Options) CardHeight() int {
	o = o.withDefaults()
	return o.NativeItemHeight*o.ScaleFactor + CardPadding
}

// NominalStep is the step used before layout can be measured.
func (o Options) NominalStep() float64 {
	return float64(o.CardWidth() + FallbackGap)
}
