package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service's runtime configuration, environment-only.
type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	// VerificationCode is the static code step one accepts. The default
	// exists for development convenience; deployments override it.
	VerificationCode string `env:"KEYSTEP_VERIFICATION_CODE" envDefault:"123456"`

	// Artifact lifetimes. Expiry is always mint time plus the TTL.
	VerificationTTL time.Duration `env:"KEYSTEP_VERIFICATION_TTL" envDefault:"5m"`
	CredentialTTL   time.Duration `env:"KEYSTEP_CREDENTIAL_TTL" envDefault:"5m"`
	SessionTTL      time.Duration `env:"KEYSTEP_SESSION_TTL" envDefault:"30m"`

	ReaperInterval      time.Duration `env:"KEYSTEP_REAPER_INTERVAL" envDefault:"30s"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
