package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFeedTitle         = "feed_title"
	KeyFeed              = "feed"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"
	KeyNoResults         = "no_results"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyStalePolicy       = "stale_policy"
	KeyMaxParallel       = "max_parallel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Recipes Feed",
		KeyFeedTitle:         "Recipes",
		KeyFeed:              "Feed",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeySearch:            "Search",
		KeySearchPlaceholder: "Search recipes",
		KeyNoResults:         "No matching recipes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyStalePolicy:       "Late thumbnails",
		KeyMaxParallel:       "Parallel image decodes",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Decode pool size applies after restart",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Лента рецептов",
		KeyFeedTitle:         "Рецепты",
		KeyFeed:              "Лента",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeySearch:            "Поиск",
		KeySearchPlaceholder: "Искать рецепты",
		KeyNoResults:         "Ничего не найдено",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyStalePolicy:       "Запоздавшие миниатюры",
		KeyMaxParallel:       "Параллельных декодирований",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Размер пула применится после перезапуска",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Feed de Receitas",
		KeyFeedTitle:         "Receitas",
		KeyFeed:              "Feed",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeySearch:            "Buscar",
		KeySearchPlaceholder: "Buscar receitas",
		KeyNoResults:         "Nenhuma receita encontrada",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyStalePolicy:       "Miniaturas atrasadas",
		KeyMaxParallel:       "Decodificações paralelas",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "O tamanho do pool vale após reiniciar",
	}
}
