// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the consent
// server. It is populated by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, retention and scan settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the CMS platform OAuth client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by /api/version when no build version was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenTTL is the lifetime of a visitor token.
	// Env: APP_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// ConsentTTL is how long a consent record is kept. It also sets the
	// Max-Age of the consent cookies.
	// Env: APP_CONSENT_TTL
	ConsentTTL time.Duration `env:"CONSENT_TTL"`

	// ScriptCategoryTTL is how long saved script categories are kept.
	// Env: APP_SCRIPT_CATEGORY_TTL
	ScriptCategoryTTL time.Duration `env:"SCRIPT_CATEGORY_TTL"`

	// SiteTTL is how long site credentials obtained by authorization are kept.
	// Env: APP_SITE_TTL
	SiteTTL time.Duration `env:"SITE_TTL"`

	// ScanPageSize is the number of keys fetched per page during scans.
	// Env: APP_SCAN_PAGE_SIZE
	ScanPageSize int `env:"SCAN_PAGE_SIZE"`

	// ScanMaxPages caps the number of pages read by one scan.
	// Env: APP_SCAN_MAX_PAGES
	ScanMaxPages int `env:"SCAN_MAX_PAGES"`

	// AllowedOrigins lists the origins allowed by CORS. "*" allows any.
	// Env: APP_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage selects the key-value backend.
type Storage struct {
	// Backend is one of "memory", "postgres" or "s3".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// S3 holds the object storage settings.
	S3 S3 `envPrefix:"S3_"`
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// S3 holds settings for the S3-compatible backend.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Prefix    string `env:"PREFIX"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter configures the CMS platform client used by the OAuth callback.
type Adapter struct {
	// BaseURL is the CMS API root.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ClientID and ClientSecret are the OAuth application credentials.
	// Env: ADAPTER_CLIENT_ID, ADAPTER_CLIENT_SECRET
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// RequestTimeout bounds each outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker intervals.
type Workers struct {
	// SweepInterval is how often expired entries are purged.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// IndexBackfillInterval is how often missing site indexes are rebuilt.
	// Env: WORKERS_INDEX_BACKFILL_INTERVAL
	IndexBackfillInterval time.Duration `env:"INDEX_BACKFILL_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
