package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/recipes-feed/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *int) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("")
	t.Cleanup(window.Close)

	saves := 0
	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saves++ })
	sd.loadCurrentSettings()
	return sd, settings, &saves
}

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	assert.Equal(t, settings.GetLanguage(), sd.languageSelect.Selected)
	assert.Equal(t, string(config.StaleDiscard), sd.stalePolicySelect.Selected)
	assert.Equal(t, "2", sd.maxParallelEntry.Text)
}

func TestSettingsDialog_SaveWritesSettings(t *testing.T) {
	sd, settings, saves := newTestSettingsDialog(t)

	sd.languageSelect.SetSelected("pt")
	sd.stalePolicySelect.SetSelected(string(config.StaleApply))
	sd.maxParallelEntry.SetText("4")
	sd.onSave(true)

	assert.Equal(t, "pt", settings.GetLanguage())
	assert.Equal(t, config.StaleApply, settings.GetStalePolicy())
	assert.Equal(t, 4, settings.GetMaxParallelDecodes())
	assert.Equal(t, 1, *saves)
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	sd, settings, saves := newTestSettingsDialog(t)

	sd.stalePolicySelect.SetSelected(string(config.StaleApply))
	sd.onSave(false)

	assert.Equal(t, config.StaleDiscard, settings.GetStalePolicy())
	assert.Zero(t, *saves)
}

func TestSettingsDialog_InvalidNumberIgnored(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	sd.maxParallelEntry.SetText("many")
	sd.onSave(true)

	assert.Equal(t, config.DefaultMaxParallelDecodes, settings.GetMaxParallelDecodes())
}

func TestSettingsDialog_PoolChangeReportedAfterClamping(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	settings.SetMaxParallelDecodes(config.MaxParallelDecodes)

	sd.maxParallelEntry.SetText("100")
	assert.False(t, sd.saveMaxParallel(), "clamped value equals the stored one")

	sd.maxParallelEntry.SetText("3")
	assert.True(t, sd.saveMaxParallel())
	assert.Equal(t, 3, settings.GetMaxParallelDecodes())

	sd.maxParallelEntry.SetText("")
	assert.False(t, sd.saveMaxParallel())
}
