package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/recipes-feed/internal/assets"
	"github.com/ytget/recipes-feed/internal/config"
	"github.com/ytget/recipes-feed/internal/model"
	"github.com/ytget/recipes-feed/internal/thumbnail"
	"github.com/ytget/recipes-feed/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.recipes-feed"
	AppIcon = "VeganPieAbove"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	log.Printf("Recipes Feed v%s starting...", version)

	myApp := app.NewWithID(AppID)

	feedTheme := ui.NewFeedTheme()
	myApp.Settings().SetTheme(feedTheme)

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	bundle := assets.NewBundle()
	if icon, err := bundle.Resource(AppIcon); err != nil {
		log.Printf("failed to load app icon: %v", err)
	} else {
		myApp.SetIcon(icon)
	}
	thumbs := thumbnail.NewService(bundle, settings.GetMaxParallelDecodes())

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, feedTheme, model.DemoFeed(), thumbs)
	defer root.Close()

	// Show and run
	myWindow.ShowAndRun()
}
