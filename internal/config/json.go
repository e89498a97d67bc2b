package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for decoding from a JSON
// file. Durations are accepted as either numbers (nanoseconds) or strings
// like "30s".
type StructuredJSONConfig struct {
	App struct {
		PublicBaseURL string `json:"public_base_url"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN                   string `json:"dsn"`
			RejectDuplicateHashes bool   `json:"reject_duplicate_hashes"`
		} `json:"db,omitempty"`

		Files struct {
			CertificateDir string `json:"certificate_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Ledger struct {
		RPCURL          string `json:"rpc_url"`
		ContractAddress string `json:"contract_address"`
		PrivateKey      string `json:"private_key"`
		ChainID         int64  `json:"chain_id"`
	} `json:"ledger,omitempty"`

	Workers struct {
		AuditInterval Duration `json:"audit_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PublicBaseURL: jsonCfg.App.PublicBaseURL,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:                   jsonCfg.Storage.DB.DSN,
				RejectDuplicateHashes: jsonCfg.Storage.DB.RejectDuplicateHashes,
			},
			Files: Files{
				CertificateDir: jsonCfg.Storage.Files.CertificateDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Ledger: Ledger{
			RPCURL:          jsonCfg.Ledger.RPCURL,
			ContractAddress: jsonCfg.Ledger.ContractAddress,
			PrivateKey:      jsonCfg.Ledger.PrivateKey,
			ChainID:         jsonCfg.Ledger.ChainID,
		},
		Workers: Workers{
			AuditInterval: time.Duration(jsonCfg.Workers.AuditInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
