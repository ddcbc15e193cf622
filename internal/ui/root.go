package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hobby-tracker/internal/config"
	"github.com/ytget/hobby-tracker/internal/model"
	"github.com/ytget/hobby-tracker/internal/tracker"
)

// RootUI represents the main UI structure: the hobby list home screen and
// navigation to the add screen.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        tracker.HobbyStore
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI

	// Last snapshot received from the store, in display order
	hobbies []model.Hobby

	// Hobby IDs marked for batch deletion
	selected map[string]bool

	subscription tracker.SubscriptionID

	// UI components
	titleText    *widget.RichText
	titleSegment *widget.TextSegment
	addBtn       *widget.Button
	deleteBtn    *widget.Button
	settingsBtn  *widget.Button
	hobbyList    *widget.List
	emptyLabel   *widget.Label
	homeContent  fyne.CanvasObject
	addView      *AddView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store tracker.HobbyStore, palette []string, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        store,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
		hobbies:      store.Hobbies(),
		selected:     make(map[string]bool),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(palette)

	// Set up callback for list updates
	ui.subscription = store.Subscribe(ui.onHobbiesChanged)

	log.Printf("RootUI initialized with %d hobbies", len(ui.hobbies))
	return ui
}

// Close detaches the UI from the store
func (ui *RootUI) Close() {
	ui.store.Unsubscribe(ui.subscription)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(palette []string) {
	// Create menu
	ui.createMenu()

	ui.titleText, ui.titleSegment = newTitleText(ui.localization.GetText(KeyAppTitle))

	// Create toolbar buttons
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.deleteBtn = widget.NewButton(IconDelete, ui.onDeleteSelected)
	ui.deleteBtn.Importance = widget.DangerImportance

	ui.addBtn = widget.NewButton(IconAdd, ui.showAdd)
	ui.addBtn.Importance = widget.HighImportance

	topPanel := container.NewBorder(
		nil,
		nil,
		ui.settingsBtn,
		container.NewHBox(ui.deleteBtn, ui.addBtn),
		ui.titleText,
	)

	// Create hobby list
	ui.hobbyList = widget.NewList(
		func() int {
			return len(ui.hobbies)
		},
		func() fyne.CanvasObject { return ui.createHobbyItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHobbyItem(id, obj) },
	)
	// Tapping a row toggles it for deletion
	ui.hobbyList.OnSelected = func(id widget.ListItemID) {
		ui.toggleSelection(id)
		ui.hobbyList.Unselect(id)
	}

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyEmptyList))
	ui.emptyLabel.Importance = widget.LowImportance

	ui.homeContent = container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewStack(ui.hobbyList, container.NewCenter(ui.emptyLabel)),
	)

	// Create add screen
	ui.addView = NewAddView(ui.window, ui.store, palette, ui.localization, ui.mobileUI)
	ui.addView.SetCallbacks(ui.showHome, nil)

	ui.updateHomeState()
	ui.showHome()

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// newTitleText creates a centered heading
func newTitleText(text string) (*widget.RichText, *widget.TextSegment) {
	style := widget.RichTextStyleHeading
	style.Alignment = fyne.TextAlignCenter

	segment := &widget.TextSegment{Style: style, Text: text}
	return widget.NewRichText(segment), segment
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	title := ui.localization.GetText(KeyAppTitle)
	ui.window.SetTitle(title)
	ui.titleSegment.Text = title
	ui.titleText.Refresh()

	ui.emptyLabel.SetText(ui.localization.GetText(KeyEmptyList))
	ui.addView.refreshTexts()
	ui.hobbyList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved preferences to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewHobbyTheme(ui.settings.GetThemeMode()))
	ui.refreshUITexts()
	ui.createMenu()
}

// showHome switches the window to the hobby list
func (ui *RootUI) showHome() {
	ui.window.SetContent(ui.homeContent)
}

// showAdd switches the window to the add screen
func (ui *RootUI) showAdd() {
	ui.window.SetContent(ui.addView.Content())
	ui.window.Canvas().Focus(ui.addView.nameEntry)
}

// createHobbyItem creates a new hobby row widget
func (ui *RootUI) createHobbyItem() fyne.CanvasObject {
	row := NewHobbyRow()
	row.SetCallbacks(ui.onSwipeDelete)
	return row
}

// updateHobbyItem updates a hobby row with current data
func (ui *RootUI) updateHobbyItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.hobbies) {
		return
	}

	hobby := ui.hobbies[id]
	if row, ok := item.(*HobbyRow); ok {
		row.Update(id, hobby, ui.selected[hobby.ID])
	}
}

// onHobbiesChanged receives store notifications
func (ui *RootUI) onHobbiesChanged(hobbies []model.Hobby) {
	ui.hobbies = hobbies

	// Drop selections for hobbies that no longer exist
	present := make(map[string]bool, len(hobbies))
	for _, h := range hobbies {
		present[h.ID] = true
	}
	for id := range ui.selected {
		if !present[id] {
			delete(ui.selected, id)
		}
	}

	ui.updateHomeState()
}

// updateHomeState syncs list, empty text and delete button with the data
func (ui *RootUI) updateHomeState() {
	if len(ui.hobbies) == 0 {
		ui.hobbyList.Hide()
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
		ui.hobbyList.Show()
	}

	if len(ui.selected) > 0 {
		ui.deleteBtn.Enable()
	} else {
		ui.deleteBtn.Disable()
	}

	ui.hobbyList.Refresh()
}

// toggleSelection marks or unmarks the row at index for deletion
func (ui *RootUI) toggleSelection(index int) {
	if index < 0 || index >= len(ui.hobbies) {
		return
	}

	id := ui.hobbies[index].ID
	if ui.selected[id] {
		delete(ui.selected, id)
	} else {
		ui.selected[id] = true
	}
	ui.updateHomeState()
}

// selectedIndexes returns the positions of the marked rows
func (ui *RootUI) selectedIndexes() []int {
	var indexes []int
	for i, h := range ui.hobbies {
		if ui.selected[h.ID] {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// onDeleteSelected handles the delete toolbar button
func (ui *RootUI) onDeleteSelected() {
	ui.requestDelete(ui.selectedIndexes())
}

// onSwipeDelete handles a swipe-left on a row
func (ui *RootUI) onSwipeDelete(index int) {
	ui.requestDelete([]int{index})
}

// requestDelete asks for confirmation (if enabled) and removes the rows
func (ui *RootUI) requestDelete(indexes []int) {
	var targets []model.Hobby
	for _, index := range indexes {
		if index >= 0 && index < len(ui.hobbies) {
			targets = append(targets, ui.hobbies[index])
		}
	}
	if len(targets) == 0 {
		return
	}

	// Remember ids, not positions: the list may change while the dialog is open
	ids := make([]string, len(targets))
	for i, h := range targets {
		ids[i] = h.ID
	}

	if !ui.settings.GetConfirmDelete() {
		ui.deleteHobbies(ids)
		return
	}

	var message string
	if len(targets) == 1 {
		message = fmt.Sprintf(ui.localization.GetText(KeyConfirmDeleteOne), targets[0].DisplayText())
	} else {
		message = fmt.Sprintf(ui.localization.GetText(KeyConfirmDeleteMany), len(targets))
	}

	confirm := dialog.NewConfirm(ui.localization.GetText(KeyConfirmDeleteTitle), message, func(confirmed bool) {
		if confirmed {
			ui.deleteHobbies(ids)
		}
	}, ui.window)
	confirm.SetConfirmText(ui.localization.GetText(KeyDelete))
	confirm.SetDismissText(ui.localization.GetText(KeyCancel))
	confirm.Show()
}

// deleteHobbies removes the hobbies with the given ids at their current positions
func (ui *RootUI) deleteHobbies(ids []string) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var positions []int
	for i, h := range ui.store.Hobbies() {
		if wanted[h.ID] {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return
	}

	removed, err := ui.store.RemoveHobbies(positions)
	if err != nil {
		log.Printf("Error removing hobbies at %v: %v", positions, err)
		if errors.Is(err, tracker.ErrIndexOutOfRange) || errors.Is(err, tracker.ErrReentrantMutation) {
			dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyListChanged), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("Removed %d hobbies from list", len(removed))
}
