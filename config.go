package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every external setting. STORE_URL and STORE_KEY are required;
// everything else has a sensible default.
type Config struct {
	StoreURL string `env:"STORE_URL"`
	StoreKey string `env:"STORE_KEY"`

	Port          string        `env:"PORT" env-default:"8081"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT" env-default:"10s"`

	// Business constants, configurable rather than hardcoded.
	MaxCaseAmount     int64   `env:"MAX_CASE_AMOUNT" env-default:"10000000"`
	CreditCardFeeRate float64 `env:"CREDIT_CARD_FEE_RATE" env-default:"1.015"`

	UploadBase  string `env:"UPLOAD_BASE" env-default:"uploads"`
	ImportDir   string `env:"IMPORT_DIR"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

// loadConfig reads configuration from the environment. Missing store settings
// are a fatal configuration error; the message tells the operator what to set.
func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if cfg.StoreURL == "" || cfg.StoreKey == "" {
		return Config{}, fmt.Errorf(
			"missing store configuration: set STORE_URL to the Postgres endpoint " +
				"(e.g. postgres://postgres@db.example.com:5432/cases) and STORE_KEY " +
				"to its access key; put them in the environment or a local .env file")
	}
	return cfg, nil
}

// DSN combines the store endpoint and access key into a Postgres DSN.
func (c Config) DSN() (string, error) {
	u, err := url.Parse(c.StoreURL)
	if err != nil {
		return "", fmt.Errorf("invalid STORE_URL: %w", err)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.StoreKey)
	return u.String(), nil
}
