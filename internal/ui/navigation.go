package ui

import "fyne.io/fyne/v2"

// Screen is a unit of content the shell can show
type Screen interface {
	Title() string
	Content() fyne.CanvasObject
}

// Appearer is implemented by screens that re-assert state whenever they become visible
type Appearer interface {
	OnAppear()
}

// Resizer is implemented by screens that react to viewport size changes
type Resizer interface {
	OnLayoutSizeChange(size fyne.Size)
}

// NavigationItemProvider is implemented by screens that contribute navigation bar controls
type NavigationItemProvider interface {
	NavigationItem() NavigationItem
}

// SideNavigator controls the collapsible left panel
type SideNavigator interface {
	ToggleLeftPanel()
	SetEnabled(enabled bool)
}

// Navigator manages the screen stack and modal presentation
type Navigator interface {
	Push(screen Screen)
	Pop()
	Present(screen Screen)
	Dismiss()
}

// Dispatcher runs fn on the UI goroutine
type Dispatcher func(fn func())
