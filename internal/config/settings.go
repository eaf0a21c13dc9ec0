package config

import (
	"fyne.io/fyne/v2"
)

// StalePolicy decides what happens to a thumbnail that finishes rendering
// after its cell has been recycled for another item
type StalePolicy string

const (
	// StaleDiscard drops results whose cell generation has moved on
	StaleDiscard StalePolicy = "discard"

	// StaleApply paints every result as it arrives, even into recycled cells
	StaleApply StalePolicy = "apply"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage           = "app_language"
	KeyStalePolicy        = "stale_thumbnail_policy"
	KeyMaxParallelDecodes = "max_parallel_decodes"
	KeyToolbarSwitch      = "toolbar_switch"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultStalePolicy        = StaleDiscard
	DefaultMaxParallelDecodes = 2
	DefaultToolbarSwitch      = false
)

// Bounds for the decode pool
const (
	MinParallelDecodes = 1
	MaxParallelDecodes = 8
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetStalePolicy returns how late thumbnails are handled
func (s *Settings) GetStalePolicy() StalePolicy {
	policy := StalePolicy(s.app.Preferences().String(KeyStalePolicy))
	if !policy.Valid() {
		s.SetStalePolicy(DefaultStalePolicy)
		return DefaultStalePolicy
	}
	return policy
}

// SetStalePolicy sets how late thumbnails are handled; unknown values fall back to the default
func (s *Settings) SetStalePolicy(policy StalePolicy) {
	if !policy.Valid() {
		policy = DefaultStalePolicy
	}
	s.app.Preferences().SetString(KeyStalePolicy, string(policy))
}

// GetStalePolicyOptions returns available stale policies
func (s *Settings) GetStalePolicyOptions() []StalePolicy {
	return []StalePolicy{StaleDiscard, StaleApply}
}

// Valid reports whether p is a known policy
func (p StalePolicy) Valid() bool {
	return p == StaleDiscard || p == StaleApply
}

// GetMaxParallelDecodes returns the size of the thumbnail decode pool
func (s *Settings) GetMaxParallelDecodes() int {
	value := s.app.Preferences().Int(KeyMaxParallelDecodes)
	if value <= 0 {
		s.SetMaxParallelDecodes(DefaultMaxParallelDecodes)
		return DefaultMaxParallelDecodes
	}
	return value
}

// SetMaxParallelDecodes sets the size of the thumbnail decode pool
func (s *Settings) SetMaxParallelDecodes(count int) {
	if count < MinParallelDecodes {
		count = MinParallelDecodes
	}
	if count > MaxParallelDecodes {
		count = MaxParallelDecodes
	}
	s.app.Preferences().SetInt(KeyMaxParallelDecodes, count)
}

// GetToolbarSwitch returns the persisted state of the navigation bar switch
func (s *Settings) GetToolbarSwitch() bool {
	return s.app.Preferences().BoolWithFallback(KeyToolbarSwitch, DefaultToolbarSwitch)
}

// SetToolbarSwitch persists the navigation bar switch state
func (s *Settings) SetToolbarSwitch(on bool) {
	s.app.Preferences().SetBool(KeyToolbarSwitch, on)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
