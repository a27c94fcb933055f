package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ytget/meal-finder/internal/mealdb"
)

// Env holds environment overrides. Values set here win over stored preferences.
type Env struct {
	APIBaseURL  string        `env:"MEALFINDER_API_BASE_URL"`
	HTTPTimeout time.Duration `env:"MEALFINDER_HTTP_TIMEOUT" envDefault:"0s"`
	DevLogs     bool          `env:"MEALFINDER_DEV_LOGS" envDefault:"true"`
	UserAgent   string        `env:"MEALFINDER_USER_AGENT"`
}

// LoadEnv parses environment variables into Env
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// ClientConfig returns the lookup client configuration from the environment alone
func (e Env) ClientConfig() mealdb.Config {
	return mealdb.Config{
		BaseURL:   e.APIBaseURL,
		Timeout:   e.HTTPTimeout,
		UserAgent: e.UserAgent,
	}
}
