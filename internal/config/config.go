// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the delivery
// board. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and credential settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Ingest holds the upload pipeline settings.
	Ingest Ingest `envPrefix:"INGEST_"`

	// Report holds the dashboard aggregation settings.
	Report Report `envPrefix:"REPORT_"`

	// Adapter holds the settings of the command-line client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control password
// digests and the session token lifecycle.
type App struct {
	// PasswordHashKey is the HMAC key for profile password digests. When
	// empty, digests are plain SHA-256 so databases written by earlier
	// tooling keep working.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the secret used to sign session tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver selects the backend: "sqlite" (default) or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file path or the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of one request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize is the largest accepted upload body in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Ingest holds the settings of the upload pipeline.
type Ingest struct {
	// ReplaceScope is "batch_months" (default) or "selected_month".
	// Env: INGEST_REPLACE_SCOPE
	ReplaceScope string `env:"REPLACE_SCOPE"`

	// IgnoredCollaborator is the collaborator name hidden from every report.
	// Env: INGEST_IGNORED_COLLABORATOR
	IgnoredCollaborator string `env:"IGNORED_COLLABORATOR"`

	// DefaultCollaborator fills rows without a collaborator.
	// Env: INGEST_DEFAULT_COLLABORATOR
	DefaultCollaborator string `env:"DEFAULT_COLLABORATOR"`

	// DefaultTask fills rows without a task.
	// Env: INGEST_DEFAULT_TASK
	DefaultTask string `env:"DEFAULT_TASK"`

	// ColumnAliases adds accepted header spellings per logical column
	// (delivery_date, collaborator, task, status, department).
	// Env: INGEST_COLUMN_ALIASES ("task=TAREFA|OBRIGACAO;status=SITUACAO")
	ColumnAliases map[string][]string `env:"COLUMN_ALIASES"`
}

// Report holds dashboard aggregation settings.
type Report struct {
	// TopTasks is the length of the task frequency table.
	// Env: REPORT_TOP_TASKS
	TopTasks int `env:"TOP_TASKS"`
}

// Adapter holds the settings the command-line client uses to reach the
// server.
type Adapter struct {
	// HTTPAddress is the base address of the server, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenFile is where the client keeps the current session token.
	// Env: ADAPTER_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields still empty after merging.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
