package ui

import (
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hobby-tracker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// Display label <-> language code
	languageCodes  map[string]string
	languageLabels map[string]string

	// UI components
	languageSelect *widget.Select
	themeSelect    *widget.Select
	confirmCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences have been written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:       settings,
		window:         window,
		localization:   localization,
		onSaved:        onSaved,
		languageCodes:  make(map[string]string),
		languageLabels: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	codes := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		codes = append(codes, code)
		sd.languageCodes[label] = code
		sd.languageLabels[code] = label
	}
	sort.Strings(codes)

	languageOptions := make([]string, 0, len(codes))
	for _, code := range codes {
		languageOptions = append(languageOptions, sd.languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Theme selection
	themeOptions := []string{}
	for _, mode := range sd.settings.GetThemeModeOptions() {
		themeOptions = append(themeOptions, string(mode))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.confirmCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmBeforeDelete), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewSeparator(),
		sd.confirmCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeMode()))
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDelete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	// Save theme mode
	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeMode(config.ThemeMode(sd.themeSelect.Selected))
	}

	sd.settings.SetConfirmDelete(sd.confirmCheck.Checked)

	log.Printf("Settings saved: language=%s theme=%s confirm_delete=%t",
		sd.settings.GetLanguage(), sd.settings.GetThemeMode(), sd.settings.GetConfirmDelete())

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
