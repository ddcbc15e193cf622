package ui

// Package ui contains the Fyne-based user interface for the application.
// It renders the hobby list, the add screen with its emoji picker, and the
// settings dialog, and forwards every mutation to the tracker store. All UI
// strings are localized via Localization.
