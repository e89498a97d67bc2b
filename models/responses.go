package models

// UploadResponse is the wire format of POST /api/upload-certificate.
// The TokenID field carries the off-chain record identifier; the name is
// kept for compatibility with existing clients of the metadata server.
type UploadResponse struct {
	Success         bool   `json:"success"`
	TokenID         int64  `json:"tokenId"`
	CertificateHash string `json:"certificateHash"`
	MetadataURI     string `json:"metadataURI"`
	FilePath        string `json:"filePath"`
}

// VerifyResponse is the wire format of GET /api/verify/{hash}.
type VerifyResponse struct {
	Valid    bool           `json:"valid"`
	TokenID  int64          `json:"tokenId,omitempty"`
	Metadata *TokenMetadata `json:"metadata,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// CertificateListEntry is one element of the GET /api/certificates response:
// the token metadata document together with its identifier.
type CertificateListEntry struct {
	TokenID int64 `json:"tokenId"`
	TokenMetadata
}

// HealthResponse is the wire format of GET /api/health.
type HealthResponse struct {
	Status            string `json:"status"`
	Timestamp         string `json:"timestamp"`
	CertificatesCount int64  `json:"certificatesCount"`
}

// ErrorResponse is the uniform error envelope of the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
