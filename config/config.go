package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	TokenTTL    time.Duration
}

// Load reads configuration from a .env file (when present) and the
// process environment. Environment variables win over .env values.
func Load() (*Config, error) {
	// A missing .env file is fine in production.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        os.Getenv("PORT"),
		TokenTTL:    time.Hour,
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = d
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on configuration the process cannot run without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("you must set your 'DATABASE_URL' environment variable")
	}
	if c.JWTSecret == "" {
		return errors.New("you must set your 'JWT_SECRET' environment variable")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	return nil
}
