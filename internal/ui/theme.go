package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Feed-specific theme tokens
const (
	ColorNameNavigationBar  fyne.ThemeColorName = "feedNavigationBar"
	ColorNameOnPrimary      fyne.ThemeColorName = "feedOnPrimary"
	ColorNameFeedBackground fyne.ThemeColorName = "feedBackground"
	ColorNameCardBackground fyne.ThemeColorName = "feedCardBackground"
	ColorNameCardTitle      fyne.ThemeColorName = "feedCardTitle"
	ColorNameCardDetail     fyne.ThemeColorName = "feedCardDetail"

	SizeNameCardTitle  fyne.ThemeSizeName = "feedCardTitle"
	SizeNameCardRadius fyne.ThemeSizeName = "feedCardRadius"
)

// Material palette
var (
	materialBlueBase     = color.NRGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	materialWhite        = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	materialGreyLighten4 = color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}
	materialGreyDarken2  = color.NRGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xFF}
	materialGreyDarken4  = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}
	materialGreyDarken3  = color.NRGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xFF}
	materialGreyLighten2 = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	materialNearBlack    = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
)

// ThemeProvider answers read-only color and size token queries
type ThemeProvider interface {
	ColorToken(name fyne.ThemeColorName) color.Color
	SizeToken(name fyne.ThemeSizeName) float32
}

// FeedTheme is the Material-styled theme used by the feed
type FeedTheme struct {
	variant fyne.ThemeVariant
}

// NewFeedTheme creates a feed theme whose token queries resolve against the light variant
func NewFeedTheme() *FeedTheme {
	return &FeedTheme{variant: theme.VariantLight}
}

// ColorToken returns the color for name in the theme's token variant
func (t *FeedTheme) ColorToken(name fyne.ThemeColorName) color.Color {
	return t.Color(name, t.variant)
}

// SizeToken returns the size for name
func (t *FeedTheme) SizeToken(name fyne.ThemeSizeName) float32 {
	return t.Size(name)
}

// Color returns theme colors
func (t *FeedTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case ColorNameNavigationBar, theme.ColorNamePrimary:
		return materialBlueBase
	case ColorNameOnPrimary:
		return materialWhite
	case ColorNameFeedBackground:
		if dark {
			return materialNearBlack
		}
		return materialGreyLighten4
	case ColorNameCardBackground:
		if dark {
			return materialGreyDarken3
		}
		return materialWhite
	case ColorNameCardTitle:
		if dark {
			return materialWhite
		}
		return materialGreyDarken4
	case ColorNameCardDetail:
		if dark {
			return materialGreyLighten2
		}
		return materialGreyDarken2
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *FeedTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FeedTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *FeedTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameCardTitle:
		return 18
	case SizeNameCardRadius:
		return 2
	case theme.SizeNameText:
		return 14
	}

	return theme.DefaultTheme().Size(name)
}
