package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/hobby-tracker/internal/config"
)

// HobbyTheme is the app theme: dark by default, with larger touch-friendly
// sizing than the Fyne default.
type HobbyTheme struct {
	mode config.ThemeMode
}

// NewHobbyTheme creates a theme that forces the variant selected by mode.
// ThemeSystem keeps whatever variant the platform asks for.
func NewHobbyTheme(mode config.ThemeMode) fyne.Theme {
	return &HobbyTheme{mode: mode}
}

// Variant maps the configured mode to a Fyne variant, falling back to the
// requested one for ThemeSystem.
func (t *HobbyTheme) Variant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case config.ThemeDark:
		return theme.VariantDark
	case config.ThemeLight:
		return theme.VariantLight
	}
	return requested
}

// Color returns theme colors
func (t *HobbyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.Variant(variant)

	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNamePrimary:
		return color.RGBA{R: 10, G: 132, B: 255, A: 255} // Blue submit button
	case theme.ColorNameDisabledButton:
		return color.RGBA{R: 142, G: 142, B: 147, A: 255} // Gray while the name is out of bounds
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 25, G: 25, B: 25, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 44, G: 44, B: 46, A: 255}
		}
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *HobbyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *HobbyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *HobbyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameInputRadius:
		return 5 // Rounded text field
	case theme.SizeNameSelectionRadius:
		return 10 // Rounded submit button
	}

	return theme.DefaultTheme().Size(name)
}
