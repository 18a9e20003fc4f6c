package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, DefaultAccessTokenTTL, cfg.AccessTokenTTL)
}

func TestLoad_SwaggerHost(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SWAGGER_HOST", "api.example.com")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "api.example.com", cfg.SwaggerHost)
}

func TestLoad_TokenTTLOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
}
