package service

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

type CertificateService interface {
	UploadCertificate(ctx context.Context, request models.UploadRequest) (models.UploadResult, error)

	Metadata(ctx context.Context, id int64) (models.TokenMetadata, error)
	ListCertificates(ctx context.Context) ([]models.CertificateListEntry, error)
	Count(ctx context.Context) (int64, error)

	CertificateFile(ctx context.Context, name string) ([]byte, error)
}

type IssueService interface {
	IssueCertificate(ctx context.Context, recipient string, hash string, metadataURI string) (models.IssueResult, error)
}

type VerifyService interface {
	VerifyCertificate(ctx context.Context, hash string) (models.VerificationResult, error)
}
