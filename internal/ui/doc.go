package ui

// Package ui contains the Fyne-based user interface: the swipable card
// widget, the card stack that owns it, and the demo shell with settings
// and deck reloading. All UI strings are localized via Localization.
