package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MenuEntry is one row of the side menu
type MenuEntry struct {
	Label  string
	Icon   fyne.Resource
	Action func()
}

// NewSideMenu creates the left panel content from entries
func NewSideMenu(heading string, entries ...MenuEntry) fyne.CanvasObject {
	title := widget.NewLabel(heading)
	title.TextStyle = fyne.TextStyle{Bold: true}

	items := container.NewVBox(title, widget.NewSeparator())
	for _, entry := range entries {
		btn := widget.NewButtonWithIcon(entry.Label, entry.Icon, entry.Action)
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		items.Add(btn)
	}
	return container.NewVScroll(items)
}
