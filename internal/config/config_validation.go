// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - App.PublicBaseURL, when set, must parse as an absolute http(s) URL.
//   - Ledger.ContractAddress, when set, must look like a 0x-prefixed
//     20-byte hex address.
//   - A contract address without an RPC URL (or vice versa) is rejected:
//     the ledger group is either complete enough to dial or fully absent.
//   - A configured private key requires ChainID > 0 to sign transactions.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PublicBaseURL != "" {
		parsed, err := url.Parse(cfg.App.PublicBaseURL)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return ErrInvalidAppConfigs
		}
	}

	hasRPC := cfg.Ledger.RPCURL != ""
	hasContract := cfg.Ledger.ContractAddress != ""
	if hasRPC != hasContract {
		return ErrInvalidLedgerConfigs
	}

	if hasContract && !isHexAddress(cfg.Ledger.ContractAddress) {
		return ErrInvalidLedgerConfigs
	}

	if cfg.Ledger.PrivateKey != "" && cfg.Ledger.ChainID <= 0 {
		return ErrInvalidLedgerConfigs
	}

	return nil
}

// isHexAddress reports whether s is a 0x-prefixed 40-hex-digit string.
// Kept local so the config package does not depend on the ledger stack.
func isHexAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) != 42 {
		return false
	}

	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
