package style

import (
	"image/color"
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	for _, name := range []string{"Default", "Dark", "Light", "Retro", "High Contrast"} {
		t.Run(name, func(t *testing.T) {
			if got := GetThemeByName(name).Name; got != name {
				t.Errorf("GetThemeByName(%q).Name = %q", name, got)
			}
		})
	}

	for _, name := range []string{"", "Nonexistent", "default"} {
		if got := GetThemeByName(name).Name; got != "Default" {
			t.Errorf("GetThemeByName(%q).Name = %q, want Default", name, got)
		}
	}
}

func TestIsValidThemeName(t *testing.T) {
	for _, name := range ThemeNames() {
		if !IsValidThemeName(name) {
			t.Errorf("IsValidThemeName(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "Nonexistent", "default", "DARK", "Pink"} {
		if IsValidThemeName(name) {
			t.Errorf("IsValidThemeName(%q) = true, want false", name)
		}
	}
}

func TestApplyTheme(t *testing.T) {
	orig := CurrentThemeName
	defer ApplyThemeByName(orig)

	ApplyTheme(ThemeLight)

	checks := map[string][2]color.NRGBA{
		"Background":    {Background, ThemeLight.Background},
		"Surface":       {Surface, ThemeLight.Surface},
		"Primary":       {Primary, ThemeLight.Primary},
		"Text":          {Text, ThemeLight.Text},
		"TextOnPrimary": {TextOnPrimary, ThemeLight.TextOnPrimary},
		"Accent":        {Accent, ThemeLight.Accent},
		"Border":        {Border, ThemeLight.Border},
	}
	for name, pair := range checks {
		if pair[0] != pair[1] {
			t.Errorf("%s not updated after ApplyTheme", name)
		}
	}
	if CurrentThemeName != "Light" {
		t.Errorf("CurrentThemeName = %q, want Light", CurrentThemeName)
	}

	ApplyThemeByName("DoesNotExist")
	if CurrentThemeName != "Default" {
		t.Errorf("CurrentThemeName = %q, want Default for unknown theme", CurrentThemeName)
	}
}

func TestAvailableThemesNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, theme := range AvailableThemes {
		if seen[theme.Name] {
			t.Errorf("duplicate theme name in AvailableThemes: %q", theme.Name)
		}
		seen[theme.Name] = true
	}
}

func TestThemeColorsOpaque(t *testing.T) {
	for _, theme := range AvailableThemes {
		t.Run(theme.Name, func(t *testing.T) {
			colors := map[string]uint8{
				"Background":        theme.Background.A,
				"Surface":           theme.Surface.A,
				"Primary":           theme.Primary.A,
				"PrimaryHover":      theme.PrimaryHover.A,
				"Text":              theme.Text.A,
				"TextOnPrimary":     theme.TextOnPrimary.A,
				"TextSecondary":     theme.TextSecondary.A,
				"Accent":            theme.Accent.A,
				"Border":            theme.Border.A,
				"OverlayBackground": theme.OverlayBackground.A,
			}
			for name, alpha := range colors {
				if alpha != 0xff {
					t.Errorf("%s.%s alpha = 0x%02x, want 0xff", theme.Name, name, alpha)
				}
			}
		})
	}
}

func TestMix(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 0xff}
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}

	if got := Mix(black, white, 0); got != black {
		t.Errorf("Mix at 0 = %v, want %v", got, black)
	}
	if got := Mix(black, white, 1); got != white {
		t.Errorf("Mix at 1 = %v, want %v", got, white)
	}
	if got := Mix(black, white, 5); got != white {
		t.Errorf("Mix clamps t above 1, got %v", got)
	}

	mid := Mix(black, white, 0.5)
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("gray blend should stay neutral, got %v", mid)
	}
	if mid.R < 0x60 || mid.R > 0xa0 {
		t.Errorf("midpoint out of range: %v", mid)
	}

	fade := Mix(color.NRGBA{0xff, 0, 0, 0}, color.NRGBA{0xff, 0, 0, 0xff}, 0.5)
	if fade.A != 0x80 {
		t.Errorf("alpha should interpolate linearly, got 0x%02x", fade.A)
	}
}

func TestSetDPIScale(t *testing.T) {
	defer SetDPIScale(1)

	SetDPIScale(2)
	if DPIScale() != 2 {
		t.Fatalf("DPIScale = %v, want 2", DPIScale())
	}
	if GalleryGap != 24 || CardPadding != 32 || DefaultPadding != 32 {
		t.Errorf("spatial vars not rescaled: gap %d card %d pad %d", GalleryGap, CardPadding, DefaultPadding)
	}
	if Px(10) != 20 {
		t.Errorf("Px(10) = %d, want 20", Px(10))
	}

	SetDPIScale(0.5)
	if DPIScale() != 1 {
		t.Errorf("scale below 1 should clamp, got %v", DPIScale())
	}
	if GalleryGap != baseGalleryGap {
		t.Errorf("GalleryGap = %d, want %d", GalleryGap, baseGalleryGap)
	}
}
