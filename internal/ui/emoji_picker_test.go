package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

var testPalette = []string{"🏀", "🏓", "✈️", "🎨", "🎧"}

func TestEmojiPicker_NoSelectionByDefault(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewEmojiPicker(testPalette, EmojiPickerColumns)

	if p.Selected() != "" {
		t.Errorf("Expected no selection, got %q", p.Selected())
	}
	if len(p.buttons) != len(testPalette) {
		t.Fatalf("Expected %d buttons, got %d", len(testPalette), len(p.buttons))
	}
	for i, btn := range p.buttons {
		if btn.Text != testPalette[i] {
			t.Errorf("Button %d text = %q, expected %q", i, btn.Text, testPalette[i])
		}
	}
}

func TestEmojiPicker_TapSelects(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewEmojiPicker(testPalette, EmojiPickerColumns)
	var changes []string
	p.OnChanged = func(emoji string) { changes = append(changes, emoji) }

	test.Tap(p.buttons[3])
	if p.Selected() != "🎨" {
		t.Errorf("Expected 🎨 selected, got %q", p.Selected())
	}
	if p.buttons[3].Importance != widget.HighImportance {
		t.Error("Selected button should be highlighted")
	}

	// Re-tapping the selected glyph is not a change
	test.Tap(p.buttons[3])

	test.Tap(p.buttons[0])
	if p.buttons[3].Importance != widget.LowImportance {
		t.Error("Previously selected button should no longer be highlighted")
	}

	if len(changes) != 2 || changes[0] != "🎨" || changes[1] != "🏀" {
		t.Errorf("Unexpected change notifications: %v", changes)
	}
}

func TestEmojiPicker_SetSelected(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewEmojiPicker(testPalette, EmojiPickerColumns)
	calls := 0
	p.OnChanged = func(string) { calls++ }

	p.SetSelected("🦄")
	if p.Selected() != "" || calls != 0 {
		t.Errorf("Glyph outside the palette should be ignored, selected=%q calls=%d", p.Selected(), calls)
	}

	p.SetSelected("🎧")
	p.Clear()
	if p.Selected() != "" {
		t.Errorf("Clear should drop the selection, got %q", p.Selected())
	}
	if calls != 2 {
		t.Errorf("Expected 2 change notifications, got %d", calls)
	}
}

func TestEmojiPicker_PaletteIsCopied(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	palette := append([]string(nil), testPalette...)
	p := NewEmojiPicker(palette, 0)

	palette[0] = "x"
	got := p.Palette()
	got[1] = "y"

	if p.Palette()[0] != "🏀" || p.Palette()[1] != "🏓" {
		t.Errorf("Picker palette should not alias caller slices: %v", p.Palette())
	}
}
