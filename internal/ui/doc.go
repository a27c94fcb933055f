package ui

// Package ui contains the Fyne-based single-screen user interface. It binds the
// search field to the search controller, renders the controller's view state
// (tip, error banner, spinner, meal cards, empty state) and hosts the settings
// dialog. All UI strings are localized via Localization.
