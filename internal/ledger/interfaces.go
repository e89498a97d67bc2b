package ledger

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

// Registry is the application's view of the on-chain certificate registry.
//
// All token ids are int64: the registry assigns them sequentially and the
// demo scale never approaches the int64 range.
type Registry interface {
	// IssueCertificate registers certHash for recipient with metadataURI
	// as the on-chain metadata pointer, waits for the transaction to be
	// mined, and returns the assigned token id recovered from the
	// issuance event. When the event cannot be found in the receipt the
	// result carries TokenIDKnown=false with TokenID=0, a degraded
	// success the caller must not treat as a failure.
	//
	// Requires a configured signing key; see [ErrSignerNotConfigured].
	IssueCertificate(ctx context.Context, recipient string, certHash [32]byte, metadataURI string) (models.IssueResult, error)

	// VerifyCertificate reports whether certHash is certified and, if so,
	// under which token id.
	VerifyCertificate(ctx context.Context, certHash [32]byte) (valid bool, tokenID int64, err error)

	// CertificateHash returns the content hash registered under tokenID.
	CertificateHash(ctx context.Context, tokenID int64) ([32]byte, error)

	// TokenURI returns the metadata pointer registered under tokenID.
	TokenURI(ctx context.Context, tokenID int64) (string, error)

	// OwnerOf returns the address holding tokenID.
	OwnerOf(ctx context.Context, tokenID int64) (string, error)

	// TotalCertificates returns the number of certificates ever issued.
	TotalCertificates(ctx context.Context) (int64, error)

	// ContractInfo returns the registry contract's name, symbol, and
	// owner address.
	ContractInfo(ctx context.Context) (models.ContractInfo, error)

	// CertificateInfo bundles the full on-chain view of one token.
	CertificateInfo(ctx context.Context, tokenID int64) (models.OnChainCertificate, error)

	// CanIssue reports whether a signing key is configured, i.e. whether
	// IssueCertificate can be called at all.
	CanIssue() bool
}
