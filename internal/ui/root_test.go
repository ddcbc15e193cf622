package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/hobby-tracker/internal/catalog"
	"github.com/ytget/hobby-tracker/internal/config"
	"github.com/ytget/hobby-tracker/internal/tracker"
)

func newTestRootUI(t *testing.T) (*RootUI, *tracker.Service, fyne.Window) {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	cat := catalog.Default()
	store := tracker.NewServiceFromCatalog(cat)
	ui := NewRootUI(w, a, store, cat.PaletteCopy(), config.NewSettings(a))
	t.Cleanup(ui.Close)

	return ui, store, w
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _, w := newTestRootUI(t)

	if got := ui.hobbyList.Length(); got != 10 {
		t.Errorf("Expected 10 rows, got %d", got)
	}
	if ui.emptyLabel.Visible() {
		t.Error("Empty text should be hidden when hobbies exist")
	}
	if !ui.deleteBtn.Disabled() {
		t.Error("Delete should be disabled with no selection")
	}
	if w.Content() != ui.homeContent {
		t.Error("Window should show the home screen")
	}
	if w.Title() != "Hobby Tracker" {
		t.Errorf("Window title = %q", w.Title())
	}
	if ui.titleSegment.Text != "Hobby Tracker" {
		t.Errorf("Title = %q", ui.titleSegment.Text)
	}
}

func TestRootUI_RowsRenderStoreData(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	row := ui.createHobbyItem().(*HobbyRow)
	ui.updateHobbyItem(2, row)
	if row.Hobby().Name != "Running" || row.emojiLabel.Text != "🏃" {
		t.Errorf("Row 2 shows %+v", row.Hobby())
	}

	// Out of range positions leave the row alone
	ui.updateHobbyItem(42, row)
	if row.Hobby().Name != "Running" {
		t.Errorf("Row should be unchanged, shows %+v", row.Hobby())
	}
}

func TestRootUI_RefreshesOnStoreChanges(t *testing.T) {
	ui, store, _ := newTestRootUI(t)

	if _, err := store.AddHobby("Painting", "🎨"); err != nil {
		t.Fatalf("AddHobby: %v", err)
	}
	if got := ui.hobbyList.Length(); got != 11 {
		t.Errorf("Expected 11 rows after add, got %d", got)
	}
	if ui.hobbies[10].Name != "Painting" {
		t.Errorf("Expected Painting last, got %+v", ui.hobbies[10])
	}

	all := make([]int, store.Len())
	for i := range all {
		all[i] = i
	}
	if _, err := store.RemoveHobbies(all); err != nil {
		t.Fatalf("RemoveHobbies: %v", err)
	}

	if !ui.emptyLabel.Visible() {
		t.Error("Empty text should be shown for an empty list")
	}
	if ui.emptyLabel.Text != "Add a Hobby using the '+' Button" {
		t.Errorf("Empty text = %q", ui.emptyLabel.Text)
	}
	if ui.hobbyList.Visible() {
		t.Error("List should be hidden for an empty list")
	}
}

func TestRootUI_ToggleSelection(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	ui.hobbyList.Select(1)
	if !ui.selected[ui.hobbies[1].ID] {
		t.Fatal("Row 1 should be marked")
	}
	if ui.deleteBtn.Disabled() {
		t.Error("Delete should be enabled with a selection")
	}

	ui.hobbyList.Select(1)
	if len(ui.selected) != 0 {
		t.Errorf("Second tap should unmark the row, selected=%v", ui.selected)
	}
	if !ui.deleteBtn.Disabled() {
		t.Error("Delete should be disabled again")
	}
}

func TestRootUI_DeleteSelectedWithoutConfirm(t *testing.T) {
	ui, store, _ := newTestRootUI(t)
	ui.settings.SetConfirmDelete(false)

	ui.toggleSelection(0)
	ui.toggleSelection(2)
	test.Tap(ui.deleteBtn)

	if store.Len() != 8 {
		t.Fatalf("Expected 8 hobbies, got %d", store.Len())
	}
	if store.Contains("Reading") || store.Contains("Running") {
		t.Error("Selected hobbies should be removed")
	}

	first, _ := store.Hobby(0)
	second, _ := store.Hobby(1)
	if first.Name != "Cooking" || second.Name != "Gaming" {
		t.Errorf("Survivors out of order: %s, %s", first.Name, second.Name)
	}

	if len(ui.selected) != 0 {
		t.Errorf("Selection should be cleared, got %v", ui.selected)
	}
	if !ui.deleteBtn.Disabled() {
		t.Error("Delete should be disabled after removal")
	}
}

func TestRootUI_DeleteAsksForConfirmation(t *testing.T) {
	ui, store, w := newTestRootUI(t)

	ui.onSwipeDelete(0)

	if store.Len() != 10 {
		t.Errorf("Nothing should be removed before confirmation, have %d", store.Len())
	}
	if w.Canvas().Overlays().Top() == nil {
		t.Error("Expected a confirmation dialog")
	}
}

func TestRootUI_SwipeDeleteWithoutConfirm(t *testing.T) {
	ui, store, _ := newTestRootUI(t)
	ui.settings.SetConfirmDelete(false)

	ui.onSwipeDelete(9)
	if store.Len() != 9 || store.Contains("Bird Watching") {
		t.Errorf("Expected Bird Watching removed, have %d hobbies", store.Len())
	}

	// Out of range positions are ignored
	ui.onSwipeDelete(42)
	if store.Len() != 9 {
		t.Errorf("Out of range delete changed the list: %d", store.Len())
	}
}

func TestRootUI_DeleteFollowsIDs(t *testing.T) {
	ui, store, _ := newTestRootUI(t)

	gaming := ui.hobbies[3].ID

	// List shifts while a confirmation would be open
	if _, err := store.RemoveHobby(0); err != nil {
		t.Fatalf("RemoveHobby: %v", err)
	}

	ui.deleteHobbies([]string{gaming})
	if store.Contains("Gaming") {
		t.Error("Gaming should be removed at its new position")
	}
	if store.Len() != 8 {
		t.Errorf("Expected 8 hobbies, got %d", store.Len())
	}

	// Already removed ids are a no-op
	ui.deleteHobbies([]string{gaming})
	if store.Len() != 8 {
		t.Errorf("Stale id changed the list: %d", store.Len())
	}
}

func TestRootUI_Navigation(t *testing.T) {
	ui, _, w := newTestRootUI(t)

	test.Tap(ui.addBtn)
	if w.Content() != ui.addView.Content() {
		t.Fatal("Add button should open the add screen")
	}

	test.Tap(ui.addView.backBtn)
	if w.Content() != ui.homeContent {
		t.Error("Back button should return to the home screen")
	}
}

func TestRootUI_AddedHobbyAppearsOnHome(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	ui.showAdd()
	ui.addView.nameEntry.SetText("Painting")
	test.Tap(ui.addView.submitBtn)
	test.Tap(ui.addView.backBtn)

	if got := ui.hobbyList.Length(); got != 11 {
		t.Fatalf("Expected 11 rows, got %d", got)
	}
	if ui.hobbies[10].Name != "Painting" {
		t.Errorf("Expected Painting last, got %+v", ui.hobbies[10])
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, w := newTestRootUI(t)

	ui.onLanguageChange("ru")

	if ui.settings.GetLanguage() != "ru" {
		t.Errorf("Language should be persisted, got %q", ui.settings.GetLanguage())
	}
	expected := ui.localization.GetText(KeyAppTitle)
	if w.Title() != expected || ui.titleSegment.Text != expected {
		t.Errorf("Title = %q / %q, expected %q", w.Title(), ui.titleSegment.Text, expected)
	}
	if ui.addView.submitBtn.Text != ui.localization.GetText(KeySubmit) {
		t.Errorf("Add screen should be refreshed, submit = %q", ui.addView.submitBtn.Text)
	}
}

func TestRootUI_SettingsSavedAppliesTheme(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	ui.settings.SetThemeMode(config.ThemeLight)
	ui.onSettingsSaved()

	th, ok := ui.app.Settings().Theme().(*HobbyTheme)
	if !ok {
		t.Fatalf("Expected *HobbyTheme, got %T", ui.app.Settings().Theme())
	}
	if th.mode != config.ThemeLight {
		t.Errorf("Theme mode = %s, expected %s", th.mode, config.ThemeLight)
	}
}

func TestRootUI_CloseUnsubscribes(t *testing.T) {
	ui, store, _ := newTestRootUI(t)

	ui.Close()
	if _, err := store.AddHobby("Painting", ""); err != nil {
		t.Fatalf("AddHobby: %v", err)
	}

	if len(ui.hobbies) != 10 {
		t.Errorf("Closed UI should not receive updates, has %d hobbies", len(ui.hobbies))
	}
}
