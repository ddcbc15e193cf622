package config

import (
	"fyne.io/fyne/v2"
)

// ThemeMode selects the color variant
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyThemeMode     = "theme_mode"
	KeyConfirmDelete = "confirm_delete"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultThemeMode     = ThemeDark
	DefaultConfirmDelete = true
)

// Settings manages application configuration. Hobbies themselves are never
// written here; only presentation preferences are persisted.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetThemeMode returns the configured theme mode
func (s *Settings) GetThemeMode() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyThemeMode))
	if !mode.Valid() {
		s.SetThemeMode(DefaultThemeMode)
		return DefaultThemeMode
	}
	return mode
}

// SetThemeMode sets the theme mode; unknown modes fall back to the default
func (s *Settings) SetThemeMode(mode ThemeMode) {
	if !mode.Valid() {
		mode = DefaultThemeMode
	}
	s.app.Preferences().SetString(KeyThemeMode, string(mode))
}

// GetConfirmDelete returns whether removals ask for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether removals ask for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetThemeModeOptions returns available theme modes
func (s *Settings) GetThemeModeOptions() []ThemeMode {
	return []ThemeMode{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return LanguageOptions()
}

// LanguageOptions maps language codes to display names
func LanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Valid reports whether m is a known theme mode
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
