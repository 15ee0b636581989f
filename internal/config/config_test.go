package config_test

import (
	"testing"
	"time"

	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT",
		"JWT_SECRET", "JWT_EXPIRY_HOURS", "BCRYPT_COST",
		"DEMO_EMAIL", "DEMO_PASSWORD", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "student@medquiz.test", cfg.DemoEmail)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("BCRYPT_COST", "10")

	cfg := config.Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestLoad_ParsesAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ,")

	cfg := config.Load()

	assert.Equal(t, []string{
		"https://app.example.com",
		"https://staging.example.com",
	}, cfg.AllowedOrigins)
}
