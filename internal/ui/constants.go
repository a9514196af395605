package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "↻"
	IconLeft     = "✗"
	IconRight    = "♥"
	IconEmpty    = "∅"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CardsLeftFormat    = "%d"
)

// Layout sizing
const (
	StackPadding    float32 = 16
	ToolbarSpacing  float32 = 8
	StatusMinWidth  float32 = 200
	SettingsDialogW float32 = 420
	SettingsDialogH float32 = 320
)

// Window defaults
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640
)
