package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lumacart/lumacart/pkg/jwtx"
)

// Config is the full environment-derived configuration. It is read once at
// startup; nothing re-reads the environment after boot.
type Config struct {
	Issuer    string // Issuer claim for tokens (default: lumacart-auth)
	JWTSecret string // Required: HS256 signing secret, at least 32 bytes

	DatabaseFile string // Path to SQLite database file (default: ./auth.db)

	AccessTokenTTL   time.Duration // Access token lifetime (default: 24h)
	RefreshTokenTTL  time.Duration // Refresh token lifetime (default: 168h)
	RememberTokenTTL time.Duration // Remember-me token lifetime (default: 720h)
	DeletionTokenTTL time.Duration // Deletion confirmation window (default: 24h)
	BcryptCost       int           // Bcrypt cost factor (default: 12)

	CORSOrigins []string // Allowed CORS origins (default: *)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

const defaultBcryptCost = 12

func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:    getEnvOrDefault("AUTH_ISSUER", "lumacart-auth"),
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),

		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),

		AccessTokenTTL:   getEnvDurationOrDefault("AUTH_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:  getEnvDurationOrDefault("AUTH_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		RememberTokenTTL: getEnvDurationOrDefault("AUTH_REMEMBER_TOKEN_TTL", 30*24*time.Hour),
		DeletionTokenTTL: getEnvDurationOrDefault("AUTH_DELETION_TOKEN_TTL", 24*time.Hour),
		BcryptCost:       getEnvIntOrDefault("AUTH_BCRYPT_COST", defaultBcryptCost),

		CORSOrigins: splitAndTrim(getEnvOrDefault("CORS_ORIGIN", "*")),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < jwtx.MinSecretBytes {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET must be at least %d bytes", jwtx.MinSecretBytes)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
