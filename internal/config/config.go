// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-cert-registry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the public base URL
	// used to mint metadata URIs and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// metadata store backing and the certificate file directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Ledger holds the registry ledger connection settings. All fields
	// are optional; when the group is empty the service runs in offline
	// mode and answers verifications from the local store only.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PublicBaseURL is the externally reachable base URL of the metadata
	// server, without a trailing slash (e.g. "http://localhost:3000").
	// It is used to construct metadata URIs and file links.
	// Env: APP_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all persistence backends used by the
// application.
type Storage struct {
	// DB holds the metadata store settings. An empty DSN selects the
	// in-memory backing.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for uploaded
	// certificate bytes.
	Files Files `envPrefix:"FILES_"`
}

// DB holds settings for the SQL metadata store backing.
type DB struct {
	// DSN selects and configures the backing database. A "postgres://"
	// URI opens PostgreSQL via the pgx driver; any other non-empty value
	// is treated as a SQLite file path. Empty selects the in-memory
	// store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// RejectDuplicateHashes makes the store refuse a second record with a
	// certificate hash that is already present. Off by default: the
	// ledger, not the store, is the authority on hash uniqueness, and
	// re-uploading before an on-chain commit is allowed.
	// Env: STORAGE_DB_REJECT_DUPLICATE_HASHES
	RejectDuplicateHashes bool `env:"REJECT_DUPLICATE_HASHES"`
}

// Files holds file-system settings for the certificate byte store.
type Files struct {
	// CertificateDir is the directory where uploaded certificate files
	// are stored and served from. Created on startup when missing.
	// Env: STORAGE_FILES_CERTIFICATE_DIR
	CertificateDir string `env:"CERTIFICATE_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Ledger holds connection settings for the on-chain certificate registry.
type Ledger struct {
	// RPCURL is the JSON-RPC endpoint of the chain node
	// (e.g. "https://rpc-amoy.polygon.technology").
	// Env: LEDGER_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ContractAddress is the 0x-prefixed address of the deployed
	// certificate registry contract.
	// Env: LEDGER_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// PrivateKey is the hex-encoded signing key of the issuer account.
	// Required only for issuance; read-only verification works without
	// it. Must be kept confidential.
	// Env: LEDGER_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// ChainID is the EIP-155 chain identifier used to sign issuance
	// transactions (e.g. 80002 for Polygon Amoy).
	// Env: LEDGER_CHAIN_ID
	ChainID int64 `env:"CHAIN_ID"`
}

// Enabled reports whether enough ledger settings are present to create a
// ledger client.
func (l Ledger) Enabled() bool {
	return l.RPCURL != "" && l.ContractAddress != ""
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AuditInterval defines how often the ledger/metadata audit worker
	// runs. Zero disables the worker.
	// Env: WORKERS_AUDIT_INTERVAL
	AuditInterval time.Duration `env:"AUDIT_INTERVAL"`
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
