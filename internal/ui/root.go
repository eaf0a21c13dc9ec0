package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/recipes-feed/internal/config"
	"github.com/ytget/recipes-feed/internal/model"
	"github.com/ytget/recipes-feed/internal/thumbnail"
)

// RootUI wires the shell, the feed and its collaborators into a window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	theme        ThemeProvider
	thumbs       thumbnail.Renderer
	feed         *model.Feed

	shell      *Shell
	sideMenu   fyne.CanvasObject
	feedScreen *FeedScreen
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, th ThemeProvider, feed *model.Feed, thumbs thumbnail.Renderer) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		theme:        th,
		thumbs:       thumbs,
		feed:         feed,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.shell = NewShell(ui.window)
	ui.refreshSideMenu()

	ui.feedScreen = NewFeedScreen(FeedDeps{
		Feed:         ui.feed,
		Side:         ui.shell,
		Nav:          ui.shell,
		Bar:          ui.shell.Bar(),
		Theme:        ui.theme,
		Thumbnails:   ui.thumbs,
		Settings:     ui.settings,
		Localization: ui.localization,
		NewDetail:    ui.newDetailScreen,
		NewSearch:    ui.newSearchScreen,
	})
	ui.shell.SetRoot(ui.feedScreen)

	log.Printf("UI setup completed successfully")
}

// Shell returns the navigation shell
func (ui *RootUI) Shell() *Shell {
	return ui.shell
}

// FeedScreen returns the root feed screen
func (ui *RootUI) FeedScreen() *FeedScreen {
	return ui.feedScreen
}

// Close stops background work started by the UI and waits for it
func (ui *RootUI) Close() {
	ui.feedScreen.Close()
	ui.thumbs.Wait()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// refreshSideMenu rebuilds the left panel in the current language
func (ui *RootUI) refreshSideMenu() {
	ui.sideMenu = ui.createSideMenu()
	ui.shell.SetLeftPanel(ui.sideMenu)
}

// createSideMenu builds the left panel entries
func (ui *RootUI) createSideMenu() fyne.CanvasObject {
	return NewSideMenu(
		ui.localization.GetText(KeyAppTitle),
		MenuEntry{
			Label:  ui.localization.GetText(KeyFeed),
			Icon:   theme.HomeIcon(),
			Action: ui.shell.ToggleLeftPanel,
		},
		MenuEntry{
			Label:  ui.localization.GetText(KeySettings),
			Icon:   theme.SettingsIcon(),
			Action: ui.onShowSettings,
		},
	)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menus to update labels and checkmarks
	ui.createMenu()
	ui.refreshSideMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.feedScreen.RefreshTexts()
	ui.shell.RefreshNavigationItem()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies a language picked in the settings dialog
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.refreshSideMenu()
}

func (ui *RootUI) newDetailScreen(item model.FeedItem) Screen {
	return NewDetailScreen(item, DetailDeps{
		Side:       ui.shell,
		Bar:        ui.shell.Bar(),
		Theme:      ui.theme,
		Thumbnails: ui.thumbs,
	})
}

func (ui *RootUI) newSearchScreen() Screen {
	return NewSearchScreen(SearchDeps{
		Feed:         ui.feed,
		Nav:          ui.shell,
		Localization: ui.localization,
		NewDetail:    ui.newDetailScreen,
	})
}
