package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultAccessTokenTTL is used when ACCESS_TOKEN_EXPIRE_MINUTES is not set.
const DefaultAccessTokenTTL = 30 * time.Minute

// ErrMissingJWTSecret is returned when no signing secret is configured.
// The process must not serve requests without one.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	JWTSecret      string
	AccessTokenTTL time.Duration
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults. The JWT
// signing secret has no default: a missing secret is a fatal
// configuration error, never a per-request one.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/movielist?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:      secret,
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
