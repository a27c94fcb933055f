package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
)

// Text fragments
const (
	TipSampleIDs = "52772, 52802, 52844, 52977, 53013"
)

// Layout sizing (MealCard / lists)
const (
	MealImageHeight float32 = 192
	MealImageWidth  float32 = 320

	EmptyStateImageSize float32 = 128

	// Touch target minimum sizes (iOS/Android guidelines)
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 88
)
