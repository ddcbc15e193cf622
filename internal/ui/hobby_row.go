package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hobby-tracker/internal/model"
)

// HobbyRow renders one list row: emoji, name and a selection mark. On touch
// devices a left swipe over the row requests its deletion.
type HobbyRow struct {
	widget.BaseWidget

	hobby    model.Hobby
	index    int
	selected bool

	// UI components
	emojiLabel *widget.Label
	nameLabel  *widget.Label
	markLabel  *widget.Label

	gestures *GestureHandler

	// Callbacks
	onSwipeDelete func(index int)
}

// NewHobbyRow creates a new hobby row widget
func NewHobbyRow() *HobbyRow {
	r := &HobbyRow{index: -1}
	r.ExtendBaseWidget(r)
	r.gestures = NewGestureHandler(r.onGesture)
	r.createUI()
	return r
}

// SetCallbacks sets the action callbacks
func (r *HobbyRow) SetCallbacks(onSwipeDelete func(index int)) {
	r.onSwipeDelete = onSwipeDelete
}

// Update shows hobby at list position index
func (r *HobbyRow) Update(index int, hobby model.Hobby, selected bool) {
	r.index = index
	r.hobby = hobby
	r.selected = selected

	r.emojiLabel.SetText(hobby.Emoji)
	r.nameLabel.SetText(hobby.Name)
	if selected {
		r.markLabel.SetText(IconCheck)
	} else {
		r.markLabel.SetText("")
	}
}

// Hobby returns the hobby currently shown
func (r *HobbyRow) Hobby() model.Hobby {
	return r.hobby
}

// createUI creates the UI components
func (r *HobbyRow) createUI() {
	r.emojiLabel = widget.NewLabel("")
	r.emojiLabel.Alignment = fyne.TextAlignCenter

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.markLabel = widget.NewLabel("")
	r.markLabel.Importance = widget.HighImportance
}

// CreateRenderer creates the widget renderer
func (r *HobbyRow) CreateRenderer() fyne.WidgetRenderer {
	// Fixed-width emoji column so names line up
	emojiCell := canvas.NewRectangle(color.Transparent)
	emojiCell.SetMinSize(fyne.NewSize(EmojiLabelWidth, RowMinHeight))
	left := container.NewStack(emojiCell, r.emojiLabel)

	content := container.NewBorder(nil, nil, left, r.markLabel, r.nameLabel)
	return widget.NewSimpleRenderer(content)
}

// TouchDown handles touch down events
func (r *HobbyRow) TouchDown(event *mobile.TouchEvent) {
	r.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (r *HobbyRow) TouchUp(event *mobile.TouchEvent) {
	r.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (r *HobbyRow) TouchCancel(event *mobile.TouchEvent) {
	r.gestures.TouchCancel(event)
}

// onGesture maps a left swipe to a delete request
func (r *HobbyRow) onGesture(gesture GestureType) {
	if gesture != GestureSwipeLeft || r.hobby.IsZero() {
		return
	}

	log.Printf("Swipe-delete requested for row %d (%s)", r.index, r.hobby.DisplayText())
	if r.onSwipeDelete != nil {
		r.onSwipeDelete(r.index)
	}
}
