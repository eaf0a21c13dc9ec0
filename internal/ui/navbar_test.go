package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestNavigationBar_SetStyleIsIdempotent(t *testing.T) {
	test.NewApp()
	bar := NewNavigationBar(nil)
	style := BarStyle{
		Background: color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
		Tint:       color.White,
	}

	bar.SetStyle(style)
	first := bar.background.FillColor
	bar.SetStyle(style)

	assert.Equal(t, style, bar.Style())
	assert.Equal(t, first, bar.background.FillColor)
}

func TestNavigationBar_NilBackgroundIsTransparent(t *testing.T) {
	test.NewApp()
	bar := NewNavigationBar(nil)

	bar.SetStyle(BarStyle{})

	assert.Equal(t, color.Transparent, bar.background.FillColor)
}

func TestNavigationBar_TintAppliesToTextTitle(t *testing.T) {
	test.NewApp()
	bar := NewNavigationBar(nil)
	title := canvas.NewText("Recipes", color.Black)

	bar.SetStyle(BarStyle{Tint: color.White})
	bar.SetItem(NavigationItem{Title: title}, false)

	assert.Equal(t, color.White, title.Color)
}

func TestNavigationBar_SetItem(t *testing.T) {
	test.NewApp()
	bar := NewNavigationBar(nil)
	left := widget.NewButton("menu", nil)
	right := widget.NewButton("search", nil)

	bar.SetItem(NavigationItem{
		Title: widget.NewLabel("title"),
		Left:  []fyne.CanvasObject{left},
		Right: []fyne.CanvasObject{right},
	}, true)

	assert.True(t, bar.BackVisible())
	assert.Equal(t, []fyne.CanvasObject{left}, bar.leftSlot.Objects)
	assert.Equal(t, []fyne.CanvasObject{right}, bar.rightSlot.Objects)

	bar.SetItem(NavigationItem{}, false)
	assert.False(t, bar.BackVisible())
	assert.Empty(t, bar.titleSlot.Objects)
}

func TestNavigationBar_BackCallsHandler(t *testing.T) {
	test.NewApp()
	backs := 0
	bar := NewNavigationBar(func() { backs++ })
	bar.SetItem(NavigationItem{}, true)

	test.Tap(bar.backBtn)

	assert.Equal(t, 1, backs)
}

func TestNavigationBar_MinHeight(t *testing.T) {
	test.NewApp()
	bar := NewNavigationBar(nil)

	assert.GreaterOrEqual(t, bar.MinSize().Height, float32(NavigationBarHeight))
}
