// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Storage backend names for StoreConfig.Backend.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
	StoreBackendSQL    = "sql"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	AccessLock AccessLockConfig
	Advisor    AdvisorConfig
	Email      EmailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StoreConfig selects and configures the key-value storage backend.
type StoreConfig struct {
	// Backend is one of "memory", "redis" or "sql".
	Backend string

	// RedisURL configures the redis backend.
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// DatabaseURL configures the sql backend. A postgres:// URL selects the
	// Postgres driver; anything else is treated as a SQLite file path.
	DatabaseURL string
}

// AccessLockConfig holds the optional single-user passcode lock settings.
// With an empty PasscodeHash the lock is disabled and the API is open.
type AccessLockConfig struct {
	PasscodeHash string
	JWTSecret    string
	TokenExpiry  time.Duration
}

// AdvisorConfig holds the optional AI advisor settings. An empty APIKey
// disables the advisor.
type AdvisorConfig struct {
	APIKey string
}

// EmailConfig holds email report configuration. An empty ResendAPIKey or
// Recipient disables reporting.
type EmailConfig struct {
	ResendAPIKey string
	FromName     string
	FromEmail    string
	Recipient    string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			Backend:       getEnv("KV_BACKEND", StoreBackendSQL),
			RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			DatabaseURL:   getEnv("DATABASE_URL", "finance-dashboard.db"),
		},
		AccessLock: AccessLockConfig{
			PasscodeHash: getEnv("DASHBOARD_PASSCODE_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
			TokenExpiry:  getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		Advisor: AdvisorConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromName:     getEnv("RESEND_FROM_NAME", "Finance Dashboard"),
			FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			Recipient:    getEnv("REPORT_RECIPIENT", ""),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
