package style

import "time"

// Base constants (unexported) - these are the logical-pixel reference values.
// The corresponding exported vars are recalculated by SetDPIScale.
const (
	baseDefaultPadding      = 16
	baseDefaultSpacing      = 16
	baseSmallSpacing        = 8
	baseTinySpacing         = 4
	baseLargeSpacing        = 24
	baseSectionSpacing      = 40
	baseScrollbarWidth      = 20
	baseButtonPaddingSmall  = 8
	baseButtonPaddingMedium = 12
	baseContentMaxWidth     = 960

	// Overlay (notification)
	baseOverlayPadding = 12
	baseOverlayMargin  = 8

	// Gallery strip
	baseGalleryGap          = 12
	baseGalleryTrackPadding = 12
	baseCardPadding         = 16
	baseCardBorder          = 2

	// Header
	baseLogoHeight = 36
	basePulseDot   = 10

	// Facts grid
	baseFactMinWidth = 150

	// Font-dependent base values (at 14pt, scale = 1.0)
	baseFactHeight       = 64
	baseMaxLargeFontSize = 48
)

// ResponsiveBreakpoint is the logical window width below which the gallery
// renders its cards at half scale.
const ResponsiveBreakpoint = 720

// Layout vars used across screens - DPI-scaled at runtime via SetDPIScale.
var (
	DefaultPadding = baseDefaultPadding
	DefaultSpacing = baseDefaultSpacing
	SmallSpacing   = baseSmallSpacing
	TinySpacing    = baseTinySpacing
	LargeSpacing   = baseLargeSpacing
	SectionSpacing = baseSectionSpacing

	ScrollbarWidth = baseScrollbarWidth

	ButtonPaddingSmall  = baseButtonPaddingSmall
	ButtonPaddingMedium = baseButtonPaddingMedium

	// ContentMaxWidth caps the width of paragraph text
	ContentMaxWidth = baseContentMaxWidth
)

// Gallery vars
var (
	GalleryGap          = baseGalleryGap
	GalleryTrackPadding = baseGalleryTrackPadding
	CardPadding         = baseCardPadding
	CardBorder          = baseCardBorder
)

// Header vars
var (
	LogoHeight = baseLogoHeight
	PulseDot   = basePulseDot
)

// Facts grid vars
var FactMinWidth = baseFactMinWidth

// Font-dependent layout value (updated by ApplyFontSize)
var FactHeight = baseFactHeight

// Overlay vars (notification)
var (
	OverlayPadding = baseOverlayPadding
	OverlayMargin  = baseOverlayMargin
)

// Gamepad navigation timing constants
const (
	NavInitialDelay  = 400 * time.Millisecond // Delay before repeat starts
	NavStartInterval = 200 * time.Millisecond // Initial repeat interval
	NavMinInterval   = 25 * time.Millisecond  // Fastest repeat (cap)
	NavAcceleration  = 20 * time.Millisecond  // Speed increase per repeat
)

// Animation timing
const (
	SmoothScrollDuration = 350 * time.Millisecond
	PulsePeriod          = 1500 * time.Millisecond
	NotificationDuration = 3 * time.Second
)

// Mouse wheel scroll sensitivity
const (
	ScrollWheelSensitivity = 0.05
)
