package config

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/asaskevich/govalidator"

	"github.com/ytget/meal-finder/internal/mealdb"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage   = "app_language"
	KeyAPIBaseURL = "api_base_url"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultAPIBaseURL = mealdb.DefaultBaseURL
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, env Env) *Settings {
	return &Settings{app: app, env: env}
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAPIBaseURL returns the lookup API base URL. The environment wins over
// the stored preference.
func (s *Settings) GetAPIBaseURL() string {
	if s.env.APIBaseURL != "" {
		return s.env.APIBaseURL
	}
	base := s.app.Preferences().String(KeyAPIBaseURL)
	if base == "" {
		return DefaultAPIBaseURL
	}
	return base
}

// SetAPIBaseURL stores the lookup API base URL. An empty value restores the default.
func (s *Settings) SetAPIBaseURL(base string) error {
	base = strings.TrimSpace(base)
	if base == "" {
		s.app.Preferences().RemoveValue(KeyAPIBaseURL)
		return nil
	}
	if !govalidator.IsRequestURL(base) {
		return fmt.Errorf("invalid API base URL: %q", base)
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, base)
	return nil
}

// IsAPIBaseURLOverridden reports whether the environment pins the base URL
func (s *Settings) IsAPIBaseURLOverridden() bool {
	return s.env.APIBaseURL != ""
}

// ClientConfig returns the lookup client configuration
func (s *Settings) ClientConfig() mealdb.Config {
	cfg := s.env.ClientConfig()
	cfg.BaseURL = s.GetAPIBaseURL()
	return cfg
}
