package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"atum/internal/backend"
	"atum/internal/database"
	"atum/internal/utils"
)

const (
	EnvAPIBaseURL      = "ATUM_API_BASE_URL"
	EnvNotificationTTL = "ATUM_NOTIFICATION_TTL"
	EnvDBPath          = "ATUM_DB_PATH"
)

// Config holds process-level settings. Values persisted in app settings may
// override APIBaseURL once the database is open.
type Config struct {
	APIBaseURL      string        `validate:"required,url"`
	NotificationTTL time.Duration `validate:"gt=0"`
	DBPath          string        `validate:"required"`
}

func Default() Config {
	return Config{
		APIBaseURL:      backend.DefaultBaseURL,
		NotificationTTL: 3 * time.Second,
		DBPath:          database.GetDefaultDBPath(),
	}
}

// Load reads a .env file from the project root when present, then applies
// environment overrides on top of the defaults.
func Load() (*Config, error) {
	_ = utils.LoadEnv()
	return FromEnv(os.Getenv)
}

// FromEnv builds a validated Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvAPIBaseURL)); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(getenv(EnvNotificationTTL)); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvNotificationTTL, err)
		}
		cfg.NotificationTTL = ttl
	}
	if v := strings.TrimSpace(getenv(EnvDBPath)); v != "" {
		cfg.DBPath = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}
