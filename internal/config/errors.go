package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a public base URL that is not an absolute http URL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLedgerConfigs indicates an incomplete or malformed ledger
	// group (for example, a contract address without an RPC URL, a
	// malformed contract address, or a signing key without a chain id).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidClientConfigs indicates invalid CLI client settings
	// (for example, a missing metadata server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
