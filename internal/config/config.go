// Package config loads application configuration from environment
// variables into a single Config struct shared across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Port string
	Env  string // "development", "production", "testing"

	// MySQL connection. DSN wins when set; otherwise it is built from parts.
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis cache. Optional: empty Addr disables caching.
	RedisAddr     string
	RedisPassword string

	// JWT signing secret
	JWTSecret string

	// Cron spec for the product-count reconciler.
	ReconcileSchedule string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBDSN:      os.Getenv("DB_DSN"),
		DBHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DBPort:     envOrDefault("MYSQL_PORT", "3306"),
		DBUser:     envOrDefault("MYSQL_USER", "storefront"),
		DBPassword: envOrDefault("MYSQL_PASSWORD", "changeme"),
		DBName:     envOrDefault("MYSQL_DB", "storefront"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: envOrDefault("JWT_SECRET", "dev-only-secret-change-me"),

		ReconcileSchedule: envOrDefault("RECONCILE_SCHEDULE", "@every 1h"),
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == "dev-only-secret-change-me" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		if cfg.DBDSN == "" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("MYSQL_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the MySQL connection string.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
