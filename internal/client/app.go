package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

var errLedgerNotConfigured = errors.New("no ledger configured: set LEDGER_RPC_URL and LEDGER_CONTRACT_ADDRESS")

// App is the certctl runtime: a thin REST client for the metadata server
// plus an optional direct ledger connection for issuance and on-chain
// inspection.
type App struct {
	http     *utils.HTTPClient
	registry ledger.Registry

	out    io.Writer
	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	httpClient := utils.NewHTTPClient()
	httpClient.SetBaseURL(cfg.ServerURL)
	httpClient.SetTimeout(cfg.RequestTimeout)

	var registry ledger.Registry
	if cfg.Ledger.Enabled() {
		var err error
		registry, err = ledger.NewRegistryClient(ctx, cfg.Ledger, log)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		http:     httpClient,
		registry: registry,
		out:      os.Stdout,
		logger:   log,
	}, nil
}

// Upload sends the file at path to the metadata server and prints the
// assigned id, hash, and metadata URI.
func (a *App) Upload(ctx context.Context, path string) error {
	result, err := a.upload(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "uploaded %s\n", path)
	fmt.Fprintf(a.out, "  id:           %d\n", result.TokenID)
	fmt.Fprintf(a.out, "  hash:         %s\n", result.CertificateHash)
	fmt.Fprintf(a.out, "  metadata URI: %s\n", result.MetadataURI)
	fmt.Fprintf(a.out, "  stored file:  %s\n", result.FilePath)

	return nil
}

func (a *App) upload(ctx context.Context, path string) (models.UploadResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	var result models.UploadResponse
	var apiErr models.ErrorResponse

	resp, err := a.http.R().
		SetContext(ctx).
		SetFileReader("certificate", filepath.Base(path), bytes.NewReader(data)).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/upload-certificate")
	if err != nil {
		return models.UploadResponse{}, err
	}
	if resp.IsError() {
		return models.UploadResponse{}, serverError(resp.StatusCode(), apiErr)
	}

	return result, nil
}

// Issue registers hash on the ledger for recipient with metadataURI as the
// token's metadata locator. Requires a configured signing key.
func (a *App) Issue(ctx context.Context, recipient, hash, metadataURI string) error {
	if a.registry == nil {
		return errLedgerNotConfigured
	}

	certHash, err := utils.HashToBytes32(hash)
	if err != nil {
		return err
	}

	result, err := a.registry.IssueCertificate(ctx, recipient, certHash, metadataURI)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "issued to %s\n", recipient)
	fmt.Fprintf(a.out, "  tx: %s\n", result.TxHash)
	if result.TokenIDKnown {
		fmt.Fprintf(a.out, "  token id: %d\n", result.TokenID)
	} else {
		fmt.Fprintln(a.out, "  token id: unknown (no issuance event in receipt)")
	}

	return nil
}

// IssueFile uploads the file at path to the metadata server, then issues a
// certificate for it on the ledger using the hash and metadata URI the
// server assigned. Requires a configured signing key.
func (a *App) IssueFile(ctx context.Context, path, recipient string) error {
	if a.registry == nil {
		return errLedgerNotConfigured
	}

	result, err := a.upload(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "uploaded %s\n", path)
	fmt.Fprintf(a.out, "  id:   %d\n", result.TokenID)
	fmt.Fprintf(a.out, "  hash: %s\n", result.CertificateHash)

	return a.Issue(ctx, recipient, result.CertificateHash, result.MetadataURI)
}

// VerifyFile hashes the file at path locally and verifies the digest.
func (a *App) VerifyFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	hash := utils.HashBytes(data)
	fmt.Fprintf(a.out, "hash of %s: %s\n", path, hash)

	return a.Verify(ctx, hash)
}

// Verify checks hash against the ledger when one is configured, otherwise
// against the server's verification endpoint.
func (a *App) Verify(ctx context.Context, hash string) error {
	if a.registry != nil {
		return a.verifyOnLedger(ctx, hash)
	}
	return a.verifyOnServer(ctx, hash)
}

func (a *App) verifyOnLedger(ctx context.Context, hash string) error {
	certHash, err := utils.HashToBytes32(hash)
	if err != nil {
		return err
	}

	valid, tokenID, err := a.registry.VerifyCertificate(ctx, certHash)
	if err != nil {
		return err
	}

	if !valid || tokenID == 0 {
		fmt.Fprintln(a.out, "INVALID: certificate not found on the ledger")
		return nil
	}

	fmt.Fprintf(a.out, "VALID: token id %d\n", tokenID)

	var metadata models.TokenMetadata
	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&metadata).
		Get(fmt.Sprintf("/api/metadata/%d", tokenID))
	if err != nil || resp.IsError() {
		// Ledger validity stands on its own; missing metadata is reported
		// but never downgrades the answer.
		fmt.Fprintln(a.out, "  metadata: unavailable")
		return nil
	}

	printMetadata(a.out, metadata)
	return nil
}

func (a *App) verifyOnServer(ctx context.Context, hash string) error {
	var result models.VerifyResponse
	var apiErr models.ErrorResponse

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/verify/" + utils.NormalizeHash(hash))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return serverError(resp.StatusCode(), apiErr)
	}

	if !result.Valid {
		if result.Message != "" {
			fmt.Fprintf(a.out, "INVALID: %s\n", result.Message)
		} else {
			fmt.Fprintln(a.out, "INVALID")
		}
		return nil
	}

	fmt.Fprintf(a.out, "VALID: token id %d\n", result.TokenID)
	if result.Metadata != nil {
		printMetadata(a.out, *result.Metadata)
	}

	return nil
}

// List prints every certificate known to the metadata server.
func (a *App) List(ctx context.Context) error {
	var entries []models.CertificateListEntry
	var apiErr models.ErrorResponse

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&entries).
		SetError(&apiErr).
		Get("/api/certificates")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return serverError(resp.StatusCode(), apiErr)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "no certificates")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(a.out, "%d\t%s\t%s\n", entry.TokenID, entry.Name, entry.CertificateHash)
	}

	return nil
}

// Health prints the server's health summary.
func (a *App) Health(ctx context.Context) error {
	var result models.HealthResponse
	var apiErr models.ErrorResponse

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return serverError(resp.StatusCode(), apiErr)
	}

	fmt.Fprintf(a.out, "status: %s\n", result.Status)
	fmt.Fprintf(a.out, "certificates: %d\n", result.CertificatesCount)
	fmt.Fprintf(a.out, "timestamp: %s\n", result.Timestamp)

	return nil
}

// Info prints the registry contract's identity and certificate count.
func (a *App) Info(ctx context.Context) error {
	if a.registry == nil {
		return errLedgerNotConfigured
	}

	info, err := a.registry.ContractInfo(ctx)
	if err != nil {
		return err
	}

	total, err := a.registry.TotalCertificates(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "contract: %s (%s)\n", info.Name, info.Symbol)
	fmt.Fprintf(a.out, "owner: %s\n", info.Owner)
	fmt.Fprintf(a.out, "issued certificates: %d\n", total)

	return nil
}

// Inspect prints the full on-chain view of one token.
func (a *App) Inspect(ctx context.Context, tokenID int64) error {
	if a.registry == nil {
		return errLedgerNotConfigured
	}

	certificate, err := a.registry.CertificateInfo(ctx, tokenID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "token id: %d\n", certificate.TokenID)
	fmt.Fprintf(a.out, "hash: %s\n", certificate.CertificateHash)
	fmt.Fprintf(a.out, "owner: %s\n", certificate.Owner)
	fmt.Fprintf(a.out, "metadata URI: %s\n", certificate.MetadataURI)
	fmt.Fprintf(a.out, "valid: %t\n", certificate.Valid)

	return nil
}

func printMetadata(out io.Writer, metadata models.TokenMetadata) {
	fmt.Fprintf(out, "  name: %s\n", metadata.Name)
	fmt.Fprintf(out, "  hash: %s\n", metadata.CertificateHash)
	fmt.Fprintf(out, "  file: %s\n", metadata.FilePath)
	for _, attribute := range metadata.Attributes {
		fmt.Fprintf(out, "  %s: %v\n", attribute.TraitType, attribute.Value)
	}
}

func serverError(status int, apiErr models.ErrorResponse) error {
	if apiErr.Error != "" {
		return fmt.Errorf("server returned %d: %s", status, apiErr.Error)
	}
	return fmt.Errorf("server returned %d", status)
}
