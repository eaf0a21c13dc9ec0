package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Card template
const (
	CardInsetTop    float32 = 16
	CardInsetBottom float32 = 8 // half of the side inset
	CardInsetLeft   float32 = 16
	CardInsetRight  float32 = 16
)

// Navigation bar sizing
const (
	NavigationBarHeight float32 = 56
	NavigationTitleSize float32 = 20
)

// Side panel sizing
const (
	SidePanelWidth float32 = 240
	EdgeSwipeWidth float32 = 16
)

// Detail screen sizing
const (
	DetailImageHeight float32 = 260
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)
