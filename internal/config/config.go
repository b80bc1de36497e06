// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the server configuration. Each section maps to an
// environment variable prefix; JSON and flag names are listed in json.go and
// flags.go.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is read from CONFIG or -c/-config.
	JSONFilePath string `env:"CONFIG"`
}

// App configures token issuance, password hashing and logging.
type App struct {
	// TokenSignKey is the HMAC secret for bearer tokens, at least 32 bytes.
	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"`
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	PasswordHashing PasswordHashing `envPrefix:"ARGON_"`

	LogLevel string `env:"LOG_LEVEL"`
	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`
}

// PasswordHashing holds the argon2id cost parameters. Memory is in KiB,
// KeyLen and SaltLen in bytes.
type PasswordHashing struct {
	Time    uint32 `env:"TIME"`
	Memory  uint32 `env:"MEMORY"`
	Threads uint8  `env:"THREADS"`
	KeyLen  uint32 `env:"KEY_LEN"`
	SaltLen uint32 `env:"SALT_LEN"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB selects the repository backend by DSN:
//
//	""  or "memory"           in-process maps
//	postgres://user@host/db   PostgreSQL
//	sqlite://notes.db         SQLite, also any path ending in ".db"
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Server configures the listeners. An empty GRPCAddress disables the gRPC
// health endpoint.
type Server struct {
	HTTPAddress     string        `env:"ADDRESS"`
	GRPCAddress     string        `env:"GRPC_ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter configures the CLI's connection to a notes server. HTTPAddress
// may omit the scheme. An empty SessionFile selects session.json under the
// user config directory.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	SessionFile    string        `env:"SESSION_FILE"`
}

// GetStructuredConfig merges defaults, the environment, flags and the JSON
// file in that order, a later source overriding non-zero fields, and then
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
