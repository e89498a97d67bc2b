// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadResult is returned by the upload orchestration once the file bytes
// are persisted and the metadata record is stored.
type UploadResult struct {
	// ID is the store-assigned certificate identifier.
	ID int64 `json:"id"`

	// CertificateHash is the digest computed over the persisted bytes.
	CertificateHash string `json:"certificate_hash"`

	// MetadataURI resolves to the stored metadata record.
	MetadataURI string `json:"metadata_uri"`

	// FileReference is the generated storage filename.
	FileReference string `json:"file_reference"`
}

// IssueResult is the outcome of a successful issuance transaction.
type IssueResult struct {
	// TokenID is the ledger-assigned token identifier extracted from the
	// issuance event. Zero when TokenIDKnown is false.
	TokenID int64 `json:"token_id"`

	// TokenIDKnown reports whether the issuance event was found in the
	// transaction receipt. When false the certificate was issued but the
	// assigned token id could not be recovered. A degraded success, not
	// a failure.
	TokenIDKnown bool `json:"token_id_known"`

	// TxHash is the hash of the confirmed issuance transaction.
	TxHash string `json:"tx_hash"`
}

// VerificationResult is the composite outcome of a certificate lookup.
// A missing certificate is reported as Valid=false with no error.
type VerificationResult struct {
	// Valid reports what the registry ledger (or, in offline mode, the
	// local store) says about the hash.
	Valid bool `json:"valid"`

	// TokenID is the ledger-assigned token id. Zero when Valid is false.
	TokenID int64 `json:"token_id,omitempty"`

	// Metadata is the off-chain record for the certificate. It may be nil
	// even when Valid is true, if the metadata fetch failed; Message then
	// carries the diagnostic.
	Metadata *TokenMetadata `json:"metadata,omitempty"`

	// Message carries a human-readable note for not-found results and for
	// degraded metadata lookups.
	Message string `json:"message,omitempty"`
}
