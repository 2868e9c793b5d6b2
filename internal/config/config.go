// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Amadeus AmadeusConfig
	Session SessionConfig
	Cache   CacheConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// AmadeusConfig holds the flight provider's API settings.
type AmadeusConfig struct {
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"30s"`
	RateLimit    float64       `env:"AMADEUS_RATE_LIMIT" envDefault:"10"`
	ResultLimit  int           `env:"AMADEUS_RESULT_LIMIT" envDefault:"100"`
}

// SessionConfig holds search-session lifecycle settings.
type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	FetchTimeout  time.Duration `env:"SESSION_FETCH_TIMEOUT" envDefault:"35s"`
}

// CacheConfig holds result-cache settings. RedisAddr is optional; when empty
// the in-memory cache is used.
type CacheConfig struct {
	TTL       time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	RedisAddr string        `env:"CACHE_REDIS_ADDR"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Amadeus.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL must not be empty")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}
	if cfg.Amadeus.RateLimit <= 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT must be positive")
	}
	if cfg.Amadeus.ResultLimit < 1 || cfg.Amadeus.ResultLimit > 250 {
		return fmt.Errorf("AMADEUS_RESULT_LIMIT must be between 1 and 250, got %d", cfg.Amadeus.ResultLimit)
	}

	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if cfg.Session.FetchTimeout <= cfg.Amadeus.Timeout {
		return fmt.Errorf("SESSION_FETCH_TIMEOUT (%s) should be greater than AMADEUS_TIMEOUT (%s)",
			cfg.Session.FetchTimeout, cfg.Amadeus.Timeout)
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// Real provider credentials are only required outside development, so a
	// fresh checkout can boot against the fallback paths.
	if !cfg.IsDevelopment() && (cfg.Amadeus.ClientID == "" || cfg.Amadeus.ClientSecret == "") {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required when APP_ENV=%s", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
