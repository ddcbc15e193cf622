package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// EmojiPicker is a single-choice grid over a fixed emoji palette. Nothing is
// selected initially; the store substitutes its default glyph in that case.
type EmojiPicker struct {
	widget.BaseWidget

	palette  []string
	selected string
	buttons  []*widget.Button
	grid     *fyne.Container

	// OnChanged is called with the new selection ("" when cleared)
	OnChanged func(emoji string)
}

// NewEmojiPicker creates a picker laid out in the given number of columns
func NewEmojiPicker(palette []string, columns int) *EmojiPicker {
	if columns < 1 {
		columns = 1
	}

	p := &EmojiPicker{
		palette: append([]string(nil), palette...),
	}
	p.ExtendBaseWidget(p)

	p.buttons = make([]*widget.Button, len(p.palette))
	cells := make([]fyne.CanvasObject, len(p.palette))
	for i, emoji := range p.palette {
		glyph := emoji // Capture for closure
		btn := widget.NewButton(glyph, func() {
			p.SetSelected(glyph)
		})
		btn.Importance = widget.LowImportance
		p.buttons[i] = btn
		cells[i] = btn
	}
	p.grid = container.NewGridWithColumns(columns, cells...)

	return p
}

// Palette returns the glyphs offered by the picker
func (p *EmojiPicker) Palette() []string {
	return append([]string(nil), p.palette...)
}

// Selected returns the selected glyph or "" when none is selected
func (p *EmojiPicker) Selected() string {
	return p.selected
}

// SetSelected selects emoji. Glyphs outside the palette are ignored; ""
// clears the selection.
func (p *EmojiPicker) SetSelected(emoji string) {
	if emoji != "" && p.indexOf(emoji) < 0 {
		return
	}
	if emoji == p.selected {
		return
	}

	p.selected = emoji
	p.updateButtons()

	if p.OnChanged != nil {
		p.OnChanged(emoji)
	}
}

// Clear removes the selection
func (p *EmojiPicker) Clear() {
	p.SetSelected("")
}

// CreateRenderer creates the widget renderer
func (p *EmojiPicker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.grid)
}

func (p *EmojiPicker) indexOf(emoji string) int {
	for i, candidate := range p.palette {
		if candidate == emoji {
			return i
		}
	}
	return -1
}

// updateButtons highlights the selected glyph
func (p *EmojiPicker) updateButtons() {
	for i, btn := range p.buttons {
		if p.palette[i] == p.selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}
