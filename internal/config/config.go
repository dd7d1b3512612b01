package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration, loaded from the environment.
type Config struct {
	Env     string `env:"LESSONHUB_ENV" envDefault:"development"`
	Addr    string `env:"LESSONHUB_ADDR" envDefault:":8080"`
	DBPath  string `env:"LESSONHUB_DB_PATH" envDefault:"lessonhub.db"`
	BaseURL string `env:"LESSONHUB_BASE_URL" envDefault:"http://localhost:8080"`

	// Email goes through Resend when an API key is set, otherwise a
	// logging no-op sender is used.
	ResendAPIKey string `env:"LESSONHUB_RESEND_API_KEY"`
	EmailFrom    string `env:"LESSONHUB_EMAIL_FROM" envDefault:"LessonHub <noreply@lessonhub.example>"`

	// Social posts go to this webhook when set, otherwise a logging
	// no-op poster is used.
	SocialWebhookURL string `env:"LESSONHUB_SOCIAL_WEBHOOK_URL"`
}

// Load parses configuration from environment variables.
// PRE: none
// POST: Returns a Config with defaults applied for unset variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
