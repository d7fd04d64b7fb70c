package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version  int           `json:"version"`
	Theme    string        `json:"theme"`    // Theme name: "Default", "Dark", "Light", "Retro"
	FontSize int           `json:"fontSize"` // 10-32, default 14
	Language string        `json:"language"` // "en" or "es"
	Window   WindowConfig  `json:"window"`
	Gallery  GalleryConfig `json:"gallery"`
}

// WindowConfig contains window position and size
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	X          *int `json:"x,omitempty"` // nil = OS decides position
	Y          *int `json:"y,omitempty"`
	Fullscreen bool `json:"fullscreen"`
}

// GalleryConfig contains the carousel and image settings
type GalleryConfig struct {
	AssetPath             string `json:"assetPath,omitempty"` // folder or archive holding dots/ and logo; empty = none
	AutoAdvanceIntervalMs int    `json:"autoAdvanceIntervalMs"`
	RespectReducedMotion  bool   `json:"respectReducedMotion"`
	NativeItemWidth       int    `json:"nativeItemWidth"`  // source pixel width of a dot
	NativeItemHeight      int    `json:"nativeItemHeight"` // source pixel height of a dot
	ScaleFactor           int    `json:"scaleFactor"`      // integer upscale of gallery cards
}

// Window size limits in logical pixels.
const (
	MinWindowWidth  = 480
	MinWindowHeight = 360
)

// Gallery limits.
const (
	MinAutoAdvanceMs = 500
	MaxAutoAdvanceMs = 60000
	MinScaleFactor   = 1
	MaxScaleFactor   = 32
)

// FontSizePresets lists the available font size options
var FontSizePresets = []int{10, 12, 14, 16, 18, 20, 24, 28, 32}

// ValidFontSize returns the nearest valid preset font size.
func ValidFontSize(size int) int {
	best := FontSizePresets[0]
	for _, p := range FontSizePresets {
		if abs(p-size) < abs(best-size) {
			best = p
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Theme:    "Default",
		FontSize: 14,
		Language: "en",
		Window: WindowConfig{
			Width:  1100,
			Height: 760,
			X:      nil,
			Y:      nil,
		},
		Gallery: GalleryConfig{
			AutoAdvanceIntervalMs: 1800,
			RespectReducedMotion:  false,
			NativeItemWidth:       10,
			NativeItemHeight:      14,
			ScaleFactor:           12,
		},
	}
}
