package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hobby-tracker/internal/form"
	"github.com/ytget/hobby-tracker/internal/model"
	"github.com/ytget/hobby-tracker/internal/tracker"
)

// AddView is the add-hobby screen. The candidate name and emoji live in a
// form.Draft owned by the view; the store only sees them on submit.
type AddView struct {
	window       fyne.Window
	store        tracker.HobbyStore
	localization *Localization

	draft form.Draft

	// UI components
	titleLabel        *widget.Label
	backBtn           *widget.Button
	nameEntry         *widget.Entry
	emojiLabel        *widget.Label
	emojiPicker       *EmojiPicker
	hintLabel         *widget.Label
	submitBtn         *widget.Button
	notificationLabel *widget.Label
	content           fyne.CanvasObject

	// Callbacks
	onBack  func()
	onAdded func(model.Hobby)
}

// NewAddView creates the add screen
func NewAddView(window fyne.Window, store tracker.HobbyStore, palette []string, localization *Localization, mobileUI *MobileUI) *AddView {
	v := &AddView{
		window:       window,
		store:        store,
		localization: localization,
	}

	v.createUI(palette, mobileUI)
	v.updateSubmitState()
	return v
}

// SetCallbacks sets the navigation callbacks
func (v *AddView) SetCallbacks(onBack func(), onAdded func(model.Hobby)) {
	v.onBack = onBack
	v.onAdded = onAdded
}

// Content returns the screen content
func (v *AddView) Content() fyne.CanvasObject {
	return v.content
}

// Draft returns a copy of the current candidate input
func (v *AddView) Draft() form.Draft {
	return v.draft
}

// createUI creates the add screen UI
func (v *AddView) createUI(palette []string, mobileUI *MobileUI) {
	v.titleLabel = widget.NewLabelWithStyle(v.localization.GetText(KeyAddHobby), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	v.backBtn = widget.NewButton(IconBack+" "+v.localization.GetText(KeyBack), func() {
		if v.onBack != nil {
			v.onBack()
		}
	})
	v.backBtn.Importance = widget.LowImportance

	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetPlaceHolder(v.localization.GetText(KeyEnterHobbyName))
	v.nameEntry.OnChanged = v.onNameChanged
	// Submit when user presses Enter in the name field
	v.nameEntry.OnSubmitted = func(string) {
		if v.draft.CanSubmit() {
			v.onSubmit()
		}
	}

	v.emojiLabel = widget.NewLabel(v.localization.GetText(KeySelectEmoji))
	v.emojiPicker = NewEmojiPicker(palette, mobileUI.EmojiPickerColumns())
	v.emojiPicker.OnChanged = v.onEmojiChanged

	v.hintLabel = widget.NewLabel(v.localization.GetText(KeyNameLengthHint))
	v.hintLabel.Importance = widget.LowImportance

	v.submitBtn = widget.NewButton(v.localization.GetText(KeySubmit), v.onSubmit)
	v.submitBtn.Importance = widget.HighImportance

	v.notificationLabel = widget.NewLabel("")
	v.notificationLabel.Hide()

	header := container.NewBorder(nil, nil, v.backBtn, nil, v.titleLabel)

	padding := mobileUI.GetMobilePadding()
	body := container.NewVBox(
		v.nameEntry,
		v.hintLabel,
		v.emojiLabel,
		v.emojiPicker,
		layout.NewSpacer(),
		container.NewCenter(v.submitBtn),
		v.notificationLabel,
	)

	v.content = container.NewBorder(
		header, // top
		nil,    // bottom
		nil,    // left
		nil,    // right
		container.NewVScroll(container.New(layout.NewCustomPaddedLayout(padding, padding, padding, padding), body)),
	)
}

// refreshTexts updates all texts with the current language
func (v *AddView) refreshTexts() {
	v.titleLabel.SetText(v.localization.GetText(KeyAddHobby))
	v.backBtn.SetText(IconBack + " " + v.localization.GetText(KeyBack))
	v.nameEntry.SetPlaceHolder(v.localization.GetText(KeyEnterHobbyName))
	v.emojiLabel.SetText(v.localization.GetText(KeySelectEmoji))
	v.submitBtn.SetText(v.localization.GetText(KeySubmit))
	v.updateSubmitState()
}

// onNameChanged keeps the draft in sync and gates the submit button
func (v *AddView) onNameChanged(text string) {
	v.draft.Name = text
	v.hideNotification()
	v.updateSubmitState()
}

// onEmojiChanged keeps the draft in sync with the picker
func (v *AddView) onEmojiChanged(emoji string) {
	v.draft.Emoji = emoji
}

// updateSubmitState enables submit only for names of 3-16 characters. A
// name already on the list is flagged in the hint but can still be
// submitted, which reports the duplicate.
func (v *AddView) updateSubmitState() {
	hint := v.localization.GetText(KeyNameLengthHint)

	switch {
	case v.draft.CanSubmit() && v.store.Contains(v.draft.Name):
		v.submitBtn.Enable()
		hint = v.localization.GetText(KeyHobbyExists)
		v.hintLabel.Importance = widget.WarningImportance
	case v.draft.CanSubmit():
		v.submitBtn.Enable()
		v.hintLabel.Importance = widget.LowImportance
	case v.draft.Name != "":
		v.submitBtn.Disable()
		v.hintLabel.Importance = widget.WarningImportance
	default:
		v.submitBtn.Disable()
		v.hintLabel.Importance = widget.LowImportance
	}

	v.hintLabel.SetText(hint)
}

// onSubmit hands the draft to the store
func (v *AddView) onSubmit() {
	hobby, err := v.draft.Submit(v.store)
	if err != nil {
		v.handleSubmitError(err)
		return
	}

	log.Printf("Hobby submitted from add screen: ID=%s, Name=%s", hobby.ID, hobby.Name)

	// Draft is already reset; clear the widgets to match
	v.nameEntry.SetText("")
	v.emojiPicker.Clear()
	v.updateSubmitState()
	v.showNotification(v.localization.GetText(KeyHobbyAdded))

	if v.onAdded != nil {
		v.onAdded(hobby)
	}
}

// handleSubmitError reports a rejected submit; the input is left as typed
func (v *AddView) handleSubmitError(err error) {
	switch {
	case errors.Is(err, tracker.ErrDuplicateName):
		message := v.localization.GetText(KeyHobbyExists)
		v.showNotification(message)
		dialog.ShowInformation(v.localization.GetText(KeyError), message, v.window)
	case errors.Is(err, form.ErrNameLength):
		// Button should have been disabled; resync it
		v.updateSubmitState()
	default:
		log.Printf("Error adding hobby %q: %v", v.draft.Name, err)
		v.showNotification(v.localization.GetText(KeyError) + ": " + err.Error())
		dialog.ShowError(err, v.window)
	}
}

// showNotification displays a message under the submit button
func (v *AddView) showNotification(message string) {
	v.notificationLabel.SetText(message)
	v.notificationLabel.Show()
}

// hideNotification hides the message under the submit button
func (v *AddView) hideNotification() {
	v.notificationLabel.Hide()
}
