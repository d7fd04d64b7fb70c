package storage

import (
	"encoding/json"
	"fmt"
	"slices"
)

// validLanguages are the accepted values of Config.Language.
var validLanguages = []string{"en", "es"}

// detectPresentKeys unmarshals JSON bytes to determine which config keys
// are explicitly present in the file. Returns a flat set of dotted-path keys
// (e.g., "gallery.scaleFactor", "window.width"). Only checks non-omitempty
// fields that have validation rules.
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return present
	}

	for _, k := range []string{"version", "theme", "fontSize", "language"} {
		if _, ok := raw[k]; ok {
			present[k] = true
		}
	}

	nested := map[string][]string{
		"window":  {"width", "height"},
		"gallery": {"autoAdvanceIntervalMs", "respectReducedMotion", "nativeItemWidth", "nativeItemHeight", "scaleFactor"},
	}
	for section, keys := range nested {
		sectionRaw, ok := raw[section]
		if !ok {
			continue
		}
		var fields map[string]json.RawMessage
		if json.Unmarshal(sectionRaw, &fields) != nil {
			continue
		}
		for _, k := range keys {
			if _, ok := fields[k]; ok {
				present[section+"."+k] = true
			}
		}
	}

	return present
}

// ApplyMissingDefaults sets default values for config fields that are absent
// from the JSON file. Only truly missing fields get defaults, preserving
// intentional zero values so validation can report them.
func ApplyMissingDefaults(config *Config, presentKeys map[string]bool) {
	defaults := DefaultConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["theme"] {
		config.Theme = defaults.Theme
	}
	if !presentKeys["fontSize"] {
		config.FontSize = defaults.FontSize
	}
	if !presentKeys["language"] {
		config.Language = defaults.Language
	}
	if !presentKeys["window.width"] {
		config.Window.Width = defaults.Window.Width
	}
	if !presentKeys["window.height"] {
		config.Window.Height = defaults.Window.Height
	}
	if !presentKeys["gallery.autoAdvanceIntervalMs"] {
		config.Gallery.AutoAdvanceIntervalMs = defaults.Gallery.AutoAdvanceIntervalMs
	}
	if !presentKeys["gallery.respectReducedMotion"] {
		config.Gallery.RespectReducedMotion = defaults.Gallery.RespectReducedMotion
	}
	if !presentKeys["gallery.nativeItemWidth"] {
		config.Gallery.NativeItemWidth = defaults.Gallery.NativeItemWidth
	}
	if !presentKeys["gallery.nativeItemHeight"] {
		config.Gallery.NativeItemHeight = defaults.Gallery.NativeItemHeight
	}
	if !presentKeys["gallery.scaleFactor"] {
		config.Gallery.ScaleFactor = defaults.Gallery.ScaleFactor
	}
}

// ValidateConfig checks all config fields against valid ranges and returns
// human-readable error descriptions. An empty slice means the config is valid.
// validThemes should be the list of known theme names.
func ValidateConfig(config *Config, validThemes []string) []string {
	var errors []string

	if config.Version != 1 {
		errors = append(errors, fmt.Sprintf("version: %d (valid: 1)", config.Version))
	}
	if !slices.Contains(validThemes, config.Theme) {
		errors = append(errors, fmt.Sprintf("theme: %q (valid: %v)", config.Theme, validThemes))
	}
	if !slices.Contains(FontSizePresets, config.FontSize) {
		errors = append(errors, fmt.Sprintf("fontSize: %d (valid: %v)", config.FontSize, FontSizePresets))
	}
	if !slices.Contains(validLanguages, config.Language) {
		errors = append(errors, fmt.Sprintf("language: %q (valid: \"en\", \"es\")", config.Language))
	}
	if config.Window.Width < MinWindowWidth {
		errors = append(errors, fmt.Sprintf("window.width: %d (valid: >= %d)", config.Window.Width, MinWindowWidth))
	}
	if config.Window.Height < MinWindowHeight {
		errors = append(errors, fmt.Sprintf("window.height: %d (valid: >= %d)", config.Window.Height, MinWindowHeight))
	}

	g := config.Gallery
	if g.AutoAdvanceIntervalMs < MinAutoAdvanceMs || g.AutoAdvanceIntervalMs > MaxAutoAdvanceMs {
		errors = append(errors, fmt.Sprintf("gallery.autoAdvanceIntervalMs: %d (valid: %d-%d)", g.AutoAdvanceIntervalMs, MinAutoAdvanceMs, MaxAutoAdvanceMs))
	}
	if g.NativeItemWidth < 1 {
		errors = append(errors, fmt.Sprintf("gallery.nativeItemWidth: %d (valid: >= 1)", g.NativeItemWidth))
	}
	if g.NativeItemHeight < 1 {
		errors = append(errors, fmt.Sprintf("gallery.nativeItemHeight: %d (valid: >= 1)", g.NativeItemHeight))
	}
	if g.ScaleFactor < MinScaleFactor || g.ScaleFactor > MaxScaleFactor {
		errors = append(errors, fmt.Sprintf("gallery.scaleFactor: %d (valid: %d-%d)", g.ScaleFactor, MinScaleFactor, MaxScaleFactor))
	}

	return errors
}

// CorrectConfig resets any invalid fields to their defaults from DefaultConfig().
// Valid fields are preserved. validThemes should be the list of known theme names.
func CorrectConfig(config *Config, validThemes []string) *Config {
	defaults := DefaultConfig()

	if config.Version != 1 {
		config.Version = defaults.Version
	}
	if !slices.Contains(validThemes, config.Theme) {
		config.Theme = defaults.Theme
	}
	if !slices.Contains(FontSizePresets, config.FontSize) {
		config.FontSize = defaults.FontSize
	}
	if !slices.Contains(validLanguages, config.Language) {
		config.Language = defaults.Language
	}
	if config.Window.Width < MinWindowWidth {
		config.Window.Width = defaults.Window.Width
	}
	if config.Window.Height < MinWindowHeight {
		config.Window.Height = defaults.Window.Height
	}

	g := &config.Gallery
	if g.AutoAdvanceIntervalMs < MinAutoAdvanceMs || g.AutoAdvanceIntervalMs > MaxAutoAdvanceMs {
		g.AutoAdvanceIntervalMs = defaults.Gallery.AutoAdvanceIntervalMs
	}
	if g.NativeItemWidth < 1 {
		g.NativeItemWidth = defaults.Gallery.NativeItemWidth
	}
	if g.NativeItemHeight < 1 {
		g.NativeItemHeight = defaults.Gallery.NativeItemHeight
	}
	if g.ScaleFactor < MinScaleFactor || g.ScaleFactor > MaxScaleFactor {
		g.ScaleFactor = defaults.Gallery.ScaleFactor
	}

	return config
}
