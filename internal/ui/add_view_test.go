package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/hobby-tracker/internal/catalog"
	"github.com/ytget/hobby-tracker/internal/form"
	"github.com/ytget/hobby-tracker/internal/model"
	"github.com/ytget/hobby-tracker/internal/tracker"
)

func newTestAddView(t *testing.T) (*AddView, *tracker.Service, fyne.Window) {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	cat := catalog.Default()
	store := tracker.NewServiceFromCatalog(cat)
	v := NewAddView(w, store, cat.PaletteCopy(), NewLocalization(), NewMobileUI(a))
	w.SetContent(v.Content())

	return v, store, w
}

func TestAddView_SubmitGate(t *testing.T) {
	v, _, _ := newTestAddView(t)

	if !v.submitBtn.Disabled() {
		t.Error("Submit should be disabled for an empty name")
	}

	cases := []struct {
		name    string
		enabled bool
	}{
		{"ab", false},
		{"abc", true},
		{"Painting", true},
		{strings.Repeat("a", 16), true},
		{strings.Repeat("a", 17), false},
		{"🎨🎨🎨", true},
	}

	for _, c := range cases {
		v.nameEntry.SetText(c.name)
		if v.submitBtn.Disabled() == c.enabled {
			t.Errorf("Submit enabled=%v for %q, expected %v", !v.submitBtn.Disabled(), c.name, c.enabled)
		}
		if v.Draft().Name != c.name {
			t.Errorf("Draft name = %q, expected %q", v.Draft().Name, c.name)
		}
	}
}

func TestAddView_SubmitAddsAndClears(t *testing.T) {
	v, store, _ := newTestAddView(t)

	var added model.Hobby
	v.SetCallbacks(nil, func(h model.Hobby) { added = h })

	v.nameEntry.SetText("Painting")
	v.emojiPicker.SetSelected("🎨")
	test.Tap(v.submitBtn)

	if store.Len() != 11 {
		t.Fatalf("Expected 11 hobbies, got %d", store.Len())
	}

	last, _ := store.Hobby(10)
	if last.Name != "Painting" || last.Emoji != "🎨" {
		t.Errorf("Unexpected hobby appended: %+v", last)
	}
	if added.ID != last.ID {
		t.Errorf("onAdded got %+v, expected %+v", added, last)
	}

	if v.nameEntry.Text != "" {
		t.Errorf("Name entry should be cleared, got %q", v.nameEntry.Text)
	}
	if v.emojiPicker.Selected() != "" {
		t.Errorf("Emoji selection should be cleared, got %q", v.emojiPicker.Selected())
	}
	if v.Draft() != (form.Draft{}) {
		t.Errorf("Draft should be reset, got %+v", v.Draft())
	}
	if !v.submitBtn.Disabled() {
		t.Error("Submit should be disabled after the input is cleared")
	}
	if !v.notificationLabel.Visible() || v.notificationLabel.Text != v.localization.GetText(KeyHobbyAdded) {
		t.Errorf("Expected added notification, got %q", v.notificationLabel.Text)
	}
}

func TestAddView_DefaultEmoji(t *testing.T) {
	v, store, _ := newTestAddView(t)

	v.nameEntry.SetText("Knitting")
	test.Tap(v.submitBtn)

	last, ok := store.Hobby(store.Len() - 1)
	if !ok || last.Name != "Knitting" {
		t.Fatalf("Expected Knitting appended, got %+v", last)
	}
	if last.Emoji != "🏀" {
		t.Errorf("Expected default emoji 🏀, got %q", last.Emoji)
	}
}

func TestAddView_DuplicateKeepsInput(t *testing.T) {
	v, store, w := newTestAddView(t)

	v.nameEntry.SetText("reading")
	v.emojiPicker.SetSelected("🎧")
	test.Tap(v.submitBtn)

	if store.Len() != 10 {
		t.Errorf("Duplicate should not be added, have %d hobbies", store.Len())
	}
	if v.nameEntry.Text != "reading" {
		t.Errorf("Name entry should keep its text, got %q", v.nameEntry.Text)
	}
	if v.emojiPicker.Selected() != "🎧" {
		t.Errorf("Emoji selection should be kept, got %q", v.emojiPicker.Selected())
	}
	if v.notificationLabel.Text != "Hobby already exists." {
		t.Errorf("Expected duplicate notification, got %q", v.notificationLabel.Text)
	}
	if w.Canvas().Overlays().Top() == nil {
		t.Error("Expected an error dialog")
	}

	// Editing the name hides the message again
	v.nameEntry.SetText("reading2")
	if v.notificationLabel.Visible() {
		t.Error("Notification should be hidden after editing")
	}
}

func TestAddView_Back(t *testing.T) {
	v, _, _ := newTestAddView(t)

	back := false
	v.SetCallbacks(func() { back = true }, nil)

	test.Tap(v.backBtn)
	if !back {
		t.Error("Back button should call onBack")
	}
}

func TestAddView_RefreshTexts(t *testing.T) {
	v, _, _ := newTestAddView(t)

	v.localization.SetLanguage("pt")
	v.refreshTexts()

	if v.submitBtn.Text != v.localization.GetText(KeySubmit) {
		t.Errorf("Submit text = %q, expected %q", v.submitBtn.Text, v.localization.GetText(KeySubmit))
	}
	if v.titleLabel.Text != v.localization.GetText(KeyAddHobby) {
		t.Errorf("Title = %q, expected %q", v.titleLabel.Text, v.localization.GetText(KeyAddHobby))
	}
}

func TestAddView_FlagsExistingName(t *testing.T) {
	v, _, _ := newTestAddView(t)

	v.nameEntry.SetText("READING")
	if v.hintLabel.Text != "Hobby already exists." {
		t.Errorf("Hint = %q, expected duplicate warning", v.hintLabel.Text)
	}
	if v.submitBtn.Disabled() {
		t.Error("Submit stays enabled so the duplicate can be reported")
	}

	v.nameEntry.SetText("Reading list")
	if v.hintLabel.Text != v.localization.GetText(KeyNameLengthHint) {
		t.Errorf("Hint = %q, expected length hint", v.hintLabel.Text)
	}
}
