package style

import (
	"bytes"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background        = color.NRGBA{0x0b, 0x0b, 0x0f, 0xff}
	Surface           = color.NRGBA{0x17, 0x17, 0x1f, 0xff}
	Primary           = color.NRGBA{0xf7, 0x93, 0x1a, 0xff} // Bitcoin orange
	PrimaryHover      = color.NRGBA{0xff, 0xa9, 0x40, 0xff}
	Text              = color.NRGBA{0xf5, 0xf5, 0xf5, 0xff}
	TextOnPrimary     = color.NRGBA{0x0b, 0x0b, 0x0f, 0xff}
	TextSecondary     = color.NRGBA{0x9a, 0x9a, 0xa6, 0xff}
	Accent            = color.NRGBA{0xf7, 0x93, 0x1a, 0xff}
	Border            = color.NRGBA{0x2a, 0x2a, 0x36, 0xff}
	OverlayBackground = color.NRGBA{0x0b, 0x0b, 0x0f, 0xff} // alpha applied per use
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name              string
	Background        color.NRGBA
	Surface           color.NRGBA
	Primary           color.NRGBA
	PrimaryHover      color.NRGBA
	Text              color.NRGBA
	TextOnPrimary     color.NRGBA
	TextSecondary     color.NRGBA
	Accent            color.NRGBA
	Border            color.NRGBA
	OverlayBackground color.NRGBA
}

// Predefined themes
var (
	ThemeDefault = Theme{
		Name:              "Default",
		Background:        color.NRGBA{0x0b, 0x0b, 0x0f, 0xff},
		Surface:           color.NRGBA{0x17, 0x17, 0x1f, 0xff},
		Primary:           color.NRGBA{0xf7, 0x93, 0x1a, 0xff},
		PrimaryHover:      color.NRGBA{0xff, 0xa9, 0x40, 0xff},
		Text:              color.NRGBA{0xf5, 0xf5, 0xf5, 0xff},
		TextOnPrimary:     color.NRGBA{0x0b, 0x0b, 0x0f, 0xff},
		TextSecondary:     color.NRGBA{0x9a, 0x9a, 0xa6, 0xff},
		Accent:            color.NRGBA{0xf7, 0x93, 0x1a, 0xff},
		Border:            color.NRGBA{0x2a, 0x2a, 0x36, 0xff},
		OverlayBackground: color.NRGBA{0x0b, 0x0b, 0x0f, 0xff},
	}

	ThemeDark = Theme{
		Name:              "Dark",
		Background:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		Surface:           color.NRGBA{0x12, 0x12, 0x12, 0xff},
		Primary:           color.NRGBA{0x1e, 0x40, 0x7a, 0xff},
		PrimaryHover:      color.NRGBA{0x2a, 0x50, 0x8a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextOnPrimary:     color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x88, 0x88, 0x88, 0xff},
		Accent:            color.NRGBA{0x00, 0xc8, 0x53, 0xff},
		Border:            color.NRGBA{0x2a, 0x2a, 0x2a, 0xff},
		OverlayBackground: color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
	}

	ThemeLight = Theme{
		Name:              "Light",
		Background:        color.NRGBA{0xfa, 0xf7, 0xf2, 0xff}, // Paper
		Surface:           color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Primary:           color.NRGBA{0xe0, 0x7b, 0x00, 0xff},
		PrimaryHover:      color.NRGBA{0xf0, 0x8b, 0x10, 0xff},
		Text:              color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		TextOnPrimary:     color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x66, 0x66, 0x66, 0xff},
		Accent:            color.NRGBA{0xc0, 0x5a, 0x00, 0xff},
		Border:            color.NRGBA{0xdd, 0xd6, 0xcc, 0xff},
		OverlayBackground: color.NRGBA{0xfa, 0xf7, 0xf2, 0xff},
	}

	ThemeRetro = Theme{
		Name:              "Retro",
		Background:        color.NRGBA{0x1c, 0x1c, 0x1c, 0xff}, // Charcoal
		Surface:           color.NRGBA{0x28, 0x28, 0x28, 0xff},
		Primary:           color.NRGBA{0x8b, 0x00, 0x00, 0xff}, // Dark red
		PrimaryHover:      color.NRGBA{0xab, 0x20, 0x20, 0xff},
		Text:              color.NRGBA{0xd0, 0xd0, 0xd0, 0xff},
		TextOnPrimary:     color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x80, 0x80, 0x80, 0xff},
		Accent:            color.NRGBA{0x00, 0xaa, 0x00, 0xff},
		Border:            color.NRGBA{0x3c, 0x3c, 0x3c, 0xff},
		OverlayBackground: color.NRGBA{0x1c, 0x1c, 0x1c, 0xff},
	}

	ThemeHighContrast = Theme{
		Name:              "High Contrast",
		Background:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		Surface:           color.NRGBA{0x40, 0x40, 0x40, 0xff},
		Primary:           color.NRGBA{0xff, 0xff, 0x00, 0xff},
		PrimaryHover:      color.NRGBA{0xff, 0xff, 0x80, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextOnPrimary:     color.NRGBA{0x00, 0x00, 0x00, 0xff},
		TextSecondary:     color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		Accent:            color.NRGBA{0xff, 0xff, 0x00, 0xff},
		Border:            color.NRGBA{0x66, 0x66, 0x66, 0xff},
		OverlayBackground: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	// AvailableThemes lists all themes for UI selection
	AvailableThemes = []Theme{ThemeDefault, ThemeDark, ThemeLight, ThemeRetro, ThemeHighContrast}

	// CurrentThemeName tracks the active theme name
	CurrentThemeName = "Default"
)

// ThemeNames returns the list of valid theme name strings.
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns theme by name, or ThemeDefault if not found
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// IsValidThemeName returns true if the name matches a known theme
func IsValidThemeName(name string) bool {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ApplyTheme updates package-level color variables from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextOnPrimary = theme.TextOnPrimary
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Border = theme.Border
	OverlayBackground = theme.OverlayBackground
	CurrentThemeName = theme.Name
}

// ApplyThemeByName applies theme by name with fallback to Default
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}

// Mix blends a toward b in CIE Lab space. t is clamped to [0, 1].
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = max(0, min(1, t))
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{r, g, bl, uint8(alpha + 0.5)}
}

// currentFontSize is the current font size in points (default 14)
var currentFontSize float64 = 14

// dpiScale is the device pixel ratio (1.0 on non-retina, 2.0 on retina)
var dpiScale float64 = 1.0

// DPIScale returns the current device scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px converts a logical pixel value to physical pixels using the current DPI scale.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// PxFont converts a logical pixel value to physical pixels scaled by both DPI and font size.
func PxFont(logical int) int {
	return int(float64(logical) * FontScale() * dpiScale)
}

// SetDPIScale sets the DPI scale factor and recalculates all spatial vars.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	DefaultPadding = Px(baseDefaultPadding)
	DefaultSpacing = Px(baseDefaultSpacing)
	SmallSpacing = Px(baseSmallSpacing)
	TinySpacing = Px(baseTinySpacing)
	LargeSpacing = Px(baseLargeSpacing)
	SectionSpacing = Px(baseSectionSpacing)
	ScrollbarWidth = Px(baseScrollbarWidth)
	ButtonPaddingSmall = Px(baseButtonPaddingSmall)
	ButtonPaddingMedium = Px(baseButtonPaddingMedium)
	ContentMaxWidth = Px(baseContentMaxWidth)
	OverlayPadding = Px(baseOverlayPadding)
	OverlayMargin = Px(baseOverlayMargin)
	GalleryGap = Px(baseGalleryGap)
	GalleryTrackPadding = Px(baseGalleryTrackPadding)
	CardPadding = Px(baseCardPadding)
	CardBorder = Px(baseCardBorder)
	LogoHeight = Px(baseLogoHeight)
	PulseDot = Px(basePulseDot)
	FactMinWidth = Px(baseFactMinWidth)

	// Font-dependent vars also incorporate DPI scale
	ApplyFontSize(int(currentFontSize))
}

// sharedFontSource is the cached TrueType font source shared by all regular faces
var sharedFontSource *text.GoTextFaceSource

// boldFontSource backs the heading faces
var boldFontSource *text.GoTextFaceSource

// fontFace is the cached font face
var fontFace text.Face

// largeFontFace is the cached large font face for headings
var largeFontFace *text.GoTextFace

// loadFontSource loads the shared GoTextFaceSource from goregular.TTF (once)
func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Error("failed to load font source", "err", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// loadBoldFontSource loads gobold.TTF (once), falling back to the regular source
func loadBoldFontSource() *text.GoTextFaceSource {
	if boldFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			log.Warn("failed to load bold font source", "err", err)
			return loadFontSource()
		}
		boldFontSource = source
	}
	return boldFontSource
}

// FontFace returns the font face to use for UI text
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   currentFontSize * dpiScale,
		}
	}
	return &fontFace
}

// LargeFontFace returns the bold heading face, twice the body size capped at 48pt
func LargeFontFace() *text.GoTextFace {
	if largeFontFace == nil {
		source := loadBoldFontSource()
		if source == nil {
			return nil
		}
		largeFontFace = &text.GoTextFace{
			Source: source,
			Size:   largeSize(currentFontSize) * dpiScale,
		}
	}
	return largeFontFace
}

// HeadingFace returns LargeFontFace as a text.Face pointer for ebitenui widgets.
// The pointer is stable across font size changes.
func HeadingFace() *text.Face {
	if headingFace == nil {
		if f := LargeFontFace(); f != nil {
			headingFace = f
		} else {
			return FontFace()
		}
	}
	return &headingFace
}

var headingFace text.Face

func largeSize(s float64) float64 {
	return min(s*2, baseMaxLargeFontSize)
}

// FontScale returns the current font scale factor relative to the base size (14pt).
func FontScale() float64 {
	return currentFontSize / 14.0
}

// ApplyFontSize sets the font size and recalculates all font-dependent layout values.
func ApplyFontSize(size int) {
	s := float64(size)
	currentFontSize = s

	// Replace faces in place: live widgets hold pointers to the package vars.
	if source := loadFontSource(); source != nil {
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   s * dpiScale,
		}
	}
	if source := loadBoldFontSource(); source != nil {
		largeFontFace = &text.GoTextFace{
			Source: source,
			Size:   largeSize(s) * dpiScale,
		}
		headingFace = largeFontFace
	}

	FactHeight = int(baseFactHeight * FontScale() * dpiScale)
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(Mix(Surface, Primary, 0.35)),
		Pressed:  image.NewNineSliceColor(Border),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a prominent button image set
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// LinkButtonImage is a transparent button that only highlights on hover
func LinkButtonImage() *widget.ButtonImage {
	transparent := color.NRGBA{}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(transparent),
		Hover:    image.NewNineSliceColor(Mix(Background, Surface, 0.8)),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(transparent),
	}
}

// SliderButtonImage creates a slider handle button image
func SliderButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}

// PrimaryButtonTextColor returns text colors readable on Primary
func PrimaryButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     TextOnPrimary,
		Disabled: TextSecondary,
	}
}

// LinkTextColor returns accent-colored text for link buttons
func LinkTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Accent,
		Disabled: TextSecondary,
	}
}
