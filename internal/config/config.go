// Package config loads service configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds everything the service needs to start.
type Config struct {
	Addr   string `toml:"addr"`
	WebDir string `toml:"web_dir"`

	// DatabaseURL empty means the in-memory store (dev and tests only).
	DatabaseURL string `toml:"database_url"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	Environment   string `toml:"environment"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	SentryDSN     string `toml:"sentry_dsn"`

	// advice provider
	AdviceBaseURL string `toml:"advice_base_url"`
	AdviceAPIKey  string `toml:"advice_api_key"`
	AdviceModel   string `toml:"advice_model"`

	// SSO (optional)
	OIDCEnabled      bool   `toml:"oidc_enabled"`
	OIDCIssuer       string `toml:"oidc_issuer"`
	OIDCClientID     string `toml:"oidc_client_id"`
	OIDCClientSecret string `toml:"oidc_client_secret"`
	OIDCRedirectURL  string `toml:"oidc_redirect_url"`
}

// Toml is the on-disk layout: one section per environment.
type Toml struct {
	Development *Config
	Production  *Config
}

// Get selects the section for an environment name.
func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path, picks the env section and applies
// environment variable overrides. An empty path yields a default config
// built from env vars alone.
func Load(path, env string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		var t Toml
		if _, err := toml.DecodeFile(path, &t); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		section, err := t.Get(env)
		if err != nil {
			return nil, err
		}
		if section != nil {
			cfg = section
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Addr:          ":8080",
		WebDir:        "web",
		LogLevel:      "info",
		LogToStdout:   true,
		Environment:   "development",
		AdviceBaseURL: "https://generativelanguage.googleapis.com",
		AdviceModel:   "gemini-2.5-flash",
	}
}

func applyEnvOverrides(cfg *Config) {
	cfg.Addr = env("ADDR", cfg.Addr)
	cfg.WebDir = env("WEB_DIR", cfg.WebDir)
	cfg.DatabaseURL = env("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = env("LOG_LEVEL", cfg.LogLevel)
	cfg.LogsPath = env("LOGS_PATH", cfg.LogsPath)
	cfg.SentryDSN = env("SENTRY_DSN", cfg.SentryDSN)
	cfg.AdviceBaseURL = env("ADVICE_BASE_URL", cfg.AdviceBaseURL)
	cfg.AdviceAPIKey = env("ADVICE_API_KEY", cfg.AdviceAPIKey)
	cfg.AdviceModel = env("ADVICE_MODEL", cfg.AdviceModel)
	cfg.OIDCIssuer = env("OIDC_ISSUER", cfg.OIDCIssuer)
	cfg.OIDCClientID = env("OIDC_CLIENT_ID", cfg.OIDCClientID)
	cfg.OIDCClientSecret = env("OIDC_CLIENT_SECRET", cfg.OIDCClientSecret)
	cfg.OIDCRedirectURL = env("OIDC_REDIRECT_URL", cfg.OIDCRedirectURL)
	if cfg.SentryDSN != "" {
		cfg.SentryEnabled = true
	}
	if cfg.OIDCIssuer != "" && cfg.OIDCClientID != "" {
		cfg.OIDCEnabled = true
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
