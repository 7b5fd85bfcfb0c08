// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",
		"BCRYPT_COST": "12",
		"LOG_LEVEL":   "warn",

		"JWT_SECRET":         "jwt_secret",
		"JWT_ISSUER":         "test_issuer",
		"JWT_EXPIRY_SECONDS": "3600",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"DATABASE_URL":            "postgres://localhost/db",
		"DATABASE_USERNAME":       "user",
		"DATABASE_PASSWORD":       "pass",
		"DATABASE_MAX_OPEN_CONNS": "5",
		"DATABASE_AUTO_MIGRATE":   "true",

		"NANO_BANANA_API_KEY":        "key",
		"NANO_BANANA_API_URL":        "http://model.local/generate",
		"NANO_BANANA_TIMEOUT":        "15s",
		"NANO_BANANA_SURFACE_ERRORS": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, int64(3600), cfg.Auth.TokenExpirySeconds)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration())

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "user", cfg.Storage.DB.Username)
	assert.Equal(t, "pass", cfg.Storage.DB.Password)
	assert.Equal(t, 5, cfg.Storage.DB.MaxOpenConns)
	assert.True(t, cfg.Storage.DB.AutoMigrate)

	assert.Equal(t, "key", cfg.Synthesizer.APIKey)
	assert.Equal(t, "http://model.local/generate", cfg.Synthesizer.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Synthesizer.Timeout)
	assert.True(t, cfg.Synthesizer.SurfaceErrors)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"JWT_SECRET":     "jwt_secret",
		"SERVER_ADDRESS": "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Empty(t, cfg.Auth.TokenIssuer)
	assert.Zero(t, cfg.Auth.TokenExpirySeconds)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others untouched
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Synthesizer{}, cfg.Synthesizer)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NANO_BANANA_TIMEOUT": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	setEnvVars(t, map[string]string{
		"JWT_EXPIRY_SECONDS": "one day",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	})

	t.Run("empty path is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(""))
	})

	t.Run("values are loaded without overriding the environment", func(t *testing.T) {
		clearEnvVars(t)
		setEnvVars(t, map[string]string{"JWT_ISSUER": "from-env"})

		p := filepath.Join(t.TempDir(), "test.env")
		body := "NANO_BANANA_API_KEY=from-file\nJWT_ISSUER=from-file\n"
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

		require.NoError(t, loadEnvFile(p))

		assert.Equal(t, "from-file", os.Getenv("NANO_BANANA_API_KEY"))
		assert.Equal(t, "from-env", os.Getenv("JWT_ISSUER"))
	})
}

// Helpers

var configEnvKeys = []string{
	"CONFIG", "ENV_FILE",
	"APP_VERSION", "BCRYPT_COST", "LOG_LEVEL",
	"JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRY_SECONDS",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"DATABASE_URL", "DATABASE_USERNAME", "DATABASE_PASSWORD",
	"DATABASE_MAX_OPEN_CONNS", "DATABASE_AUTO_MIGRATE",
	"NANO_BANANA_API_KEY", "NANO_BANANA_API_URL",
	"NANO_BANANA_TIMEOUT", "NANO_BANANA_SURFACE_ERRORS",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
	}
}

// clearEnvVars unsets every configuration variable and restores the previous
// values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		prev, ok := os.LookupEnv(k)
		_ = os.Unsetenv(k)
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}
