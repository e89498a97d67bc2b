package models

import (
	"fmt"
	"time"
)

// CertificateRecord is the off-chain descriptive record of one uploaded
// certificate. It is created exactly once at upload time and never mutated
// or deleted afterwards.
type CertificateRecord struct {
	// ID is the store-assigned certificate identifier. Identifiers start
	// at 1, grow by insertion order, and are never reused.
	ID int64 `json:"id"`

	// CertificateHash is the 0x-prefixed keccak-256 digest of the stored
	// file bytes. It is the key by which the registry ledger identifies
	// the certificate.
	CertificateHash string `json:"certificate_hash"`

	// DisplayName is the human-readable name, e.g. "Certificate #12".
	DisplayName string `json:"display_name"`

	// Description is a short presentational summary mentioning the hash.
	Description string `json:"description"`

	// FileReference is the generated filename under which the uploaded
	// bytes are retrievable from the file storage.
	FileReference string `json:"file_reference"`

	// SourceFileName is the filename declared by the uploader.
	SourceFileName string `json:"source_file_name"`

	// SourceFileSize is the size of the uploaded payload in bytes.
	SourceFileSize int64 `json:"source_file_size"`

	// UploadedAt is the UTC time the record was created.
	UploadedAt time.Time `json:"uploaded_at"`

	// MetadataURI is the externally resolvable locator of this record.
	// It is the value registered on-chain at issuance time.
	MetadataURI string `json:"metadata_uri"`
}

// TokenMetadata renders the record in the ERC-721 token metadata shape
// served by GET /api/metadata/{tokenId}. baseURL is the public base URL of
// the metadata server, without a trailing slash.
func (r CertificateRecord) TokenMetadata(baseURL string) TokenMetadata {
	return TokenMetadata{
		Name:        r.DisplayName,
		Description: r.Description,
		Image:       fmt.Sprintf("%s/files/%s", baseURL, r.FileReference),
		Attributes: []TokenAttribute{
			{TraitType: "Certificate Hash", Value: r.CertificateHash},
			{TraitType: "File Name", Value: r.SourceFileName},
			{TraitType: "File Size", Value: r.SourceFileSize},
			{TraitType: "Upload Date", Value: r.UploadedAt.Format(time.RFC3339)},
		},
		ExternalURL:     r.MetadataURI,
		CertificateHash: r.CertificateHash,
		FilePath:        r.FileReference,
	}
}

// TokenMetadata is the ERC-721 style metadata JSON document describing one
// certificate token.
type TokenMetadata struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Image           string           `json:"image"`
	Attributes      []TokenAttribute `json:"attributes"`
	ExternalURL     string           `json:"external_url"`
	CertificateHash string           `json:"certificate_hash"`
	FilePath        string           `json:"file_path"`
}

// TokenAttribute is a single trait entry of [TokenMetadata].
type TokenAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}
