package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig is the configuration of the certctl command-line client.
// Unlike the server config it is loaded from environment variables only;
// per-command flags are parsed by the CLI itself.
type ClientConfig struct {
	// ServerURL is the base URL of the metadata server
	// (e.g. "http://localhost:3000").
	// Env: CERTCTL_SERVER_URL
	ServerURL string `env:"CERTCTL_SERVER_URL"`

	// RequestTimeout is the default timeout for outbound requests to the
	// metadata server and the ledger.
	// Env: CERTCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CERTCTL_REQUEST_TIMEOUT"`

	// Ledger holds the optional registry ledger settings. When absent,
	// ledger-touching commands (issue, info, on-chain verify) are
	// unavailable and verification falls back to the server API.
	Ledger Ledger `envPrefix:"LEDGER_"`
}

// GetClientConfig loads and validates the certctl configuration from the
// environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:3000"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	hasRPC := cfg.Ledger.RPCURL != ""
	hasContract := cfg.Ledger.ContractAddress != ""
	if hasRPC != hasContract {
		return ErrInvalidLedgerConfigs
	}

	if hasContract && !isHexAddress(cfg.Ledger.ContractAddress) {
		return ErrInvalidLedgerConfigs
	}

	return nil
}
