// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// brand-snap server. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the password hashing cost.
	App App

	// Auth holds bearer token parameters.
	Auth Auth

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server

	// Synthesizer holds the settings of the external image generation
	// endpoint.
	Synthesizer Synthesizer

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// BcryptCost is the adaptive cost parameter of password hashing.
	// Env: BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is the minimum zerolog level emitted (debug, info, warn...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the token issuer parameters.
type Auth struct {
	// TokenSignKey is the secret used to sign and verify bearer tokens.
	// Tokens survive a restart only when this value is persistent.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenExpirySeconds is the lifetime of an issued token in seconds.
	// Env: JWT_EXPIRY_SECONDS
	TokenExpirySeconds int64 `env:"JWT_EXPIRY_SECONDS"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every authenticated request.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`
}

// TokenDuration returns the token lifetime as a [time.Duration].
func (a Auth) TokenDuration() time.Duration {
	return time.Duration(a.TokenExpirySeconds) * time.Second
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. A postgres:// URL selects PostgreSQL;
	// sqlite://, file: or :memory: select SQLite.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// Username overrides the user part of a PostgreSQL DSN.
	// Env: DATABASE_USERNAME
	Username string `env:"DATABASE_USERNAME"`

	// Password overrides the password part of a PostgreSQL DSN.
	// Env: DATABASE_PASSWORD
	Password string `env:"DATABASE_PASSWORD"`

	// MaxOpenConns bounds the shared connection pool.
	// Env: DATABASE_MAX_OPEN_CONNS
	MaxOpenConns int `env:"DATABASE_MAX_OPEN_CONNS"`

	// AutoMigrate applies the embedded schema migrations at startup.
	// Env: DATABASE_AUTO_MIGRATE
	AutoMigrate bool `env:"DATABASE_AUTO_MIGRATE"`
}

// ConnectionString returns the DSN with Username and Password applied.
// Only URL-shaped DSNs are rewritten; anything else is returned unchanged.
func (db DB) ConnectionString() (string, error) {
	if db.Username == "" && db.Password == "" {
		return db.DSN, nil
	}
	if !strings.HasPrefix(db.DSN, "postgres://") && !strings.HasPrefix(db.DSN, "postgresql://") {
		return db.DSN, nil
	}

	u, err := url.Parse(db.DSN)
	if err != nil {
		return "", fmt.Errorf("error parsing database url: %w", err)
	}

	username := db.Username
	if username == "" && u.User != nil {
		username = u.User.Username()
	}
	password := db.Password
	if password == "" && u.User != nil {
		password, _ = u.User.Password()
	}

	if password == "" {
		u.User = url.User(username)
	} else {
		u.User = url.UserPassword(username, password)
	}

	return u.String(), nil
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. It must leave room for the
	// synthesizer timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Synthesizer holds the settings of the external multimodal endpoint.
type Synthesizer struct {
	// APIKey is forwarded as the x-goog-api-key header. Required.
	// Env: NANO_BANANA_API_KEY
	APIKey string `env:"NANO_BANANA_API_KEY"`

	// Endpoint is the generateContent URL of the image model.
	// Env: NANO_BANANA_API_URL
	Endpoint string `env:"NANO_BANANA_API_URL"`

	// Timeout bounds a single synthesis call.
	// Env: NANO_BANANA_TIMEOUT
	Timeout time.Duration `env:"NANO_BANANA_TIMEOUT"`

	// SurfaceErrors makes synthesis failures fail the request with 502
	// instead of storing the placeholder image.
	// Env: NANO_BANANA_SURFACE_ERRORS
	SurfaceErrors bool `env:"NANO_BANANA_SURFACE_ERRORS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables (after loading the optional dotenv file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
