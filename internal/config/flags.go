package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-base-url public base URL used in metadata URIs
//	-f certificate file storage directory
//	-d database DSN (postgres URI or sqlite path)
//	-reject-duplicates refuse duplicate certificate hashes in the store
//	-ledger-rpc registry ledger JSON-RPC endpoint
//	-contract registry contract address
//	-private-key issuer signing key (hex)
//	-chain-id EIP-155 chain id
//	-audit-interval ledger/metadata audit period (e.g., "10m"; 0 disables)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var publicBaseURL string
	var certificateDir string
	var databaseDSN string
	var rejectDuplicates bool
	var ledgerRPC string
	var contractAddress string
	var privateKey string
	var chainID int64
	var auditInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&publicBaseURL, "base-url", "", "Public base URL for metadata URIs")
	flag.StringVar(&certificateDir, "f", "", "Certificate file storage directory")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.BoolVar(&rejectDuplicates, "reject-duplicates", false, "Reject duplicate certificate hashes in the store")
	flag.StringVar(&ledgerRPC, "ledger-rpc", "", "Registry ledger JSON-RPC endpoint")
	flag.StringVar(&contractAddress, "contract", "", "Registry contract address")
	flag.StringVar(&privateKey, "private-key", "", "Issuer signing key (hex)")
	flag.Int64Var(&chainID, "chain-id", 0, "EIP-155 chain id")
	flag.DurationVar(&auditInterval, "audit-interval", 0, "Audit worker period (e.g., 10m; 0 disables)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PublicBaseURL: publicBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN:                   databaseDSN,
				RejectDuplicateHashes: rejectDuplicates,
			},
			Files: Files{
				CertificateDir: certificateDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Ledger: Ledger{
			RPCURL:          ledgerRPC,
			ContractAddress: contractAddress,
			PrivateKey:      privateKey,
			ChainID:         chainID,
		},
		Workers: Workers{
			AuditInterval: auditInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
