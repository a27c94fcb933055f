package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyAppSubtitle   = "app_subtitle"
	KeyTipLabel      = "tip_label"
	KeyTipText       = "tip_text"
	KeySearch        = "search"
	KeySearchHint    = "search_hint"
	KeySearching     = "searching"
	KeyResults       = "results"
	KeyIngredients   = "ingredients"
	KeyInstructions  = "instructions"
	KeyWatchVideo    = "watch_video"
	KeyViewSource    = "view_source"
	KeyEmptyState    = "empty_state"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyAPIBaseURL    = "api_base_url"
	KeyAPIBaseURLEnv = "api_base_url_env"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
	KeyInvalidURL    = "invalid_url"
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
		KeyAppTitle:      "Meal Finder",
		KeyAppSubtitle:   "Discover delicious recipes",
		KeyTipLabel:      "Tip:",
		KeyTipText:       "Try these valid meal IDs:",
		KeySearch:        "Search",
		KeySearchHint:    "Search for meals...",
		KeySearching:     "Searching for meals...",
		KeyResults:       "Results",
		KeyIngredients:   "Ingredients",
		KeyInstructions:  "Instructions",
		KeyWatchVideo:    "Watch Video",
		KeyViewSource:    "View Source",
		KeyEmptyState:    "Search for delicious meals",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyAPIBaseURL:    "API Base URL",
		KeyAPIBaseURLEnv: "Set by MEALFINDER_API_BASE_URL",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeyInvalidURL:    "Invalid URL",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Поиск блюд",
		KeyAppSubtitle:   "Откройте для себя вкусные рецепты",
		KeyTipLabel:      "Подсказка:",
		KeyTipText:       "Попробуйте эти ID блюд:",
		KeySearch:        "Найти",
		KeySearchHint:    "Поиск блюд...",
		KeySearching:     "Ищем блюда...",
		KeyResults:       "Результаты",
		KeyIngredients:   "Ингредиенты",
		KeyInstructions:  "Приготовление",
		KeyWatchVideo:    "Смотреть видео",
		KeyViewSource:    "Источник",
		KeyEmptyState:    "Найдите вкусные блюда",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyAPIBaseURL:    "Адрес API",
		KeyAPIBaseURLEnv: "Задан через MEALFINDER_API_BASE_URL",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyInvalidURL:    "Неверный URL",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Buscador de Refeições",
		KeyAppSubtitle:   "Descubra receitas deliciosas",
		KeyTipLabel:      "Dica:",
		KeyTipText:       "Experimente estes IDs válidos:",
		KeySearch:        "Buscar",
		KeySearchHint:    "Buscar refeições...",
		KeySearching:     "Buscando refeições...",
		KeyResults:       "Resultados",
		KeyIngredients:   "Ingredientes",
		KeyInstructions:  "Modo de preparo",
		KeyWatchVideo:    "Assistir vídeo",
		KeyViewSource:    "Ver fonte",
		KeyEmptyState:    "Busque refeições deliciosas",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyAPIBaseURL:    "URL base da API",
		KeyAPIBaseURLEnv: "Definido por MEALFINDER_API_BASE_URL",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyInvalidURL:    "URL inválida",
	}
}
