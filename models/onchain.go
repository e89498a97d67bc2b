package models

// OnChainCertificate bundles the on-chain view of one issued certificate as
// read back from the registry ledger. The ledger owns this data; the
// application only ever reads it.
type OnChainCertificate struct {
	// TokenID is the ledger-assigned token identifier.
	TokenID int64 `json:"token_id"`

	// CertificateHash is the 0x-prefixed content digest the token was
	// issued for. The ledger enforces its uniqueness.
	CertificateHash string `json:"certificate_hash"`

	// Owner is the address holding the token.
	Owner string `json:"owner"`

	// MetadataURI is the off-chain metadata pointer supplied at issuance.
	MetadataURI string `json:"metadata_uri"`

	// Valid reports whether the ledger currently recognises the hash.
	Valid bool `json:"valid"`
}

// ContractInfo describes the registry contract itself.
type ContractInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Owner  string `json:"owner"`
}
