package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for notesync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the cloud object-store endpoint settings and the bearer
	// credential used by the sync client.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds scheduler cadence settings: debounce windows and the global
	// minimum interval between reconciliation passes.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds settings for the development object-store server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds the cloud object-store connection settings used by the client.
type Remote struct {
	// Address is the base URL of the object store, e.g. "http://localhost:8080".
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s"). Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer credential supplied by the external auth
	// collaborator. An empty token makes the engine skip sync passes rather
	// than fail. Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used by the local store
	// (e.g. "~/.notesync/notesync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds scheduler cadence settings. Zero values fall back to the
// scheduler defaults (2s focus debounce, 5s data debounce, 30s minimum
// interval).
type Sync struct {
	// FocusDebounce is the delay after an app-foreground trigger before a
	// pass is dispatched. Env: SYNC_FOCUS_DEBOUNCE
	FocusDebounce time.Duration `env:"FOCUS_DEBOUNCE"`

	// DataDebounce is the delay after a local data mutation before a pass is
	// dispatched, batching rapid edits. Env: SYNC_DATA_DEBOUNCE
	DataDebounce time.Duration `env:"DATA_DEBOUNCE"`

	// MinInterval is the global throttle between reconciliation passes.
	// Env: SYNC_MIN_INTERVAL
	MinInterval time.Duration `env:"MIN_INTERVAL"`
}

// Server holds network and auth settings for the development object store.
type Server struct {
	// HTTPAddress is the TCP address the devstore listens on, in
	// "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey is the secret used to verify bearer tokens. Must be kept
	// confidential. Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of accepted tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
