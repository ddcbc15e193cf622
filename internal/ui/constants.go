package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconBack     = "‹"
	IconDelete   = "🗑️"
	IconLanguage = "🌐"
	IconCheck    = "✓"
)

// Layout sizing (hobby rows / dialogs)
const (
	// Touch target minimum height (iOS/Android guidelines)
	RowMinHeight float32 = 44

	EmojiLabelWidth float32 = 40

	// Title text
	TitleTextSize float32 = 24

	// Settings dialog
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

// Emoji picker grid columns
const (
	EmojiPickerColumns       = 5
	MobileEmojiPickerColumns = 4
)
