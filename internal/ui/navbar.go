package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BarStyle is the visual state of the navigation bar
type BarStyle struct {
	Background color.Color
	Tint       color.Color
}

// BarStyler applies a style to a navigation bar
type BarStyler interface {
	SetStyle(style BarStyle)
}

// NavigationItem holds the controls a screen places in the navigation bar
type NavigationItem struct {
	Title fyne.CanvasObject
	Left  []fyne.CanvasObject
	Right []fyne.CanvasObject
}

// NavigationBar is the bar shared by every screen of the shell
type NavigationBar struct {
	widget.BaseWidget

	background *canvas.Rectangle
	backBtn    *widget.Button
	titleSlot  *fyne.Container
	leftSlot   *fyne.Container
	rightSlot  *fyne.Container

	item  NavigationItem
	style BarStyle
}

// NewNavigationBar creates a navigation bar whose back button calls onBack
func NewNavigationBar(onBack func()) *NavigationBar {
	b := &NavigationBar{
		background: canvas.NewRectangle(color.Transparent),
		titleSlot:  container.NewStack(),
		leftSlot:   container.NewHBox(),
		rightSlot:  container.NewHBox(),
	}
	b.backBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if onBack != nil {
			onBack()
		}
	})
	b.backBtn.Importance = widget.LowImportance
	b.backBtn.Hide()
	b.background.SetMinSize(fyne.NewSize(0, NavigationBarHeight))

	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *NavigationBar) CreateRenderer() fyne.WidgetRenderer {
	left := container.NewHBox(b.backBtn, b.leftSlot)
	bar := container.NewBorder(nil, nil, left, b.rightSlot, container.NewPadded(b.titleSlot))
	return widget.NewSimpleRenderer(container.NewStack(b.background, bar))
}

// SetItem replaces the bar's controls; showBack toggles the back button
func (b *NavigationBar) SetItem(item NavigationItem, showBack bool) {
	b.item = item

	b.titleSlot.Objects = nil
	if item.Title != nil {
		b.titleSlot.Objects = []fyne.CanvasObject{item.Title}
	}
	b.leftSlot.Objects = item.Left
	b.rightSlot.Objects = item.Right

	if showBack {
		b.backBtn.Show()
	} else {
		b.backBtn.Hide()
	}

	b.applyTint()
	b.titleSlot.Refresh()
	b.leftSlot.Refresh()
	b.rightSlot.Refresh()
}

// Item returns the controls currently shown
func (b *NavigationBar) Item() NavigationItem {
	return b.item
}

// BackVisible reports whether the back button is shown
func (b *NavigationBar) BackVisible() bool {
	return b.backBtn.Visible()
}

// SetStyle assigns the bar background and tint.
// Styles are assigned, never blended, so repeated calls are idempotent.
func (b *NavigationBar) SetStyle(style BarStyle) {
	b.style = style
	if style.Background != nil {
		b.background.FillColor = style.Background
	} else {
		b.background.FillColor = color.Transparent
	}
	b.background.Refresh()
	b.applyTint()
}

// Style returns the last applied style
func (b *NavigationBar) Style() BarStyle {
	return b.style
}

// applyTint colors text titles with the style's tint
func (b *NavigationBar) applyTint() {
	if b.style.Tint == nil {
		return
	}
	if title, ok := b.item.Title.(*canvas.Text); ok {
		title.Color = b.style.Tint
		title.Refresh()
	}
}
