package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipes-feed/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect    *widget.Select
	stalePolicySelect *widget.Select
	maxParallelEntry  *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Stale thumbnail policy
	policyOptions := []string{}
	for _, policy := range sd.settings.GetStalePolicyOptions() {
		policyOptions = append(policyOptions, string(policy))
	}
	sd.stalePolicySelect = widget.NewSelect(policyOptions, nil)

	// Decode pool size
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder(strconv.Itoa(config.MinParallelDecodes) + "-" + strconv.Itoa(config.MaxParallelDecodes))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyStalePolicy)+":"),
		sd.stalePolicySelect,

		widget.NewLabel(sd.localization.GetText(KeyMaxParallel)+":"),
		sd.maxParallelEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.stalePolicySelect.SetSelected(string(sd.settings.GetStalePolicy()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDecodes()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.stalePolicySelect.Selected != "" {
		sd.settings.SetStalePolicy(config.StalePolicy(sd.stalePolicySelect.Selected))
	}

	poolChanged := sd.saveMaxParallel()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if poolChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// saveMaxParallel stores the typed pool size and reports whether the stored value changed
func (sd *SettingsDialog) saveMaxParallel() bool {
	text := sd.maxParallelEntry.Text
	if text == "" {
		return false
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return false
	}

	before := sd.settings.GetMaxParallelDecodes()
	sd.settings.SetMaxParallelDecodes(value)
	return sd.settings.GetMaxParallelDecodes() != before
}
