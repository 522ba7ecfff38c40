// Package config loads service configuration from the environment and
// the optional settings-defaults file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env       string `env:"LOG_MODE" envDefault:"development"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// PairPasscodeHash is a bcrypt hash of the clinic passcode. When unset
	// the plaintext PairPasscode is hashed at startup (development only).
	PairPasscodeHash string        `env:"PAIR_PASSCODE_HASH"`
	PairPasscode     string        `env:"PAIR_PASSCODE" envDefault:"0000"`
	JWTSecretKey     string        `env:"JWT_SECRET_KEY" envDefault:"defaultsecret"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"12h"`

	SettingsDefaultsPath string `env:"SETTINGS_DEFAULTS_PATH"`
	ReconcileOnStart     bool   `env:"RECONCILE_ON_START" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`

	OtelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OtelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1.0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
