package http

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/models"
)

var errBoom = errors.New("boom")

// ─────────────────────────────────────────────
// Mock: service.CertificateService
// ─────────────────────────────────────────────

type mockCertificateService struct {
	uploadFn func(ctx context.Context, request models.UploadRequest) (models.UploadResult, error)
	metaFn   func(ctx context.Context, id int64) (models.TokenMetadata, error)
	listFn   func(ctx context.Context) ([]models.CertificateListEntry, error)
	countFn  func(ctx context.Context) (int64, error)
	fileFn   func(ctx context.Context, name string) ([]byte, error)
}

func (m *mockCertificateService) UploadCertificate(ctx context.Context, request models.UploadRequest) (models.UploadResult, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, request)
	}
	return models.UploadResult{}, nil
}

func (m *mockCertificateService) Metadata(ctx context.Context, id int64) (models.TokenMetadata, error) {
	if m.metaFn != nil {
		return m.metaFn(ctx, id)
	}
	return models.TokenMetadata{}, nil
}

func (m *mockCertificateService) ListCertificates(ctx context.Context) ([]models.CertificateListEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.CertificateListEntry{}, nil
}

func (m *mockCertificateService) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockCertificateService) CertificateFile(ctx context.Context, name string) ([]byte, error) {
	if m.fileFn != nil {
		return m.fileFn(ctx, name)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.IssueService / service.VerifyService
// ─────────────────────────────────────────────

type mockIssueService struct {
	issueFn func(ctx context.Context, recipient, hash, metadataURI string) (models.IssueResult, error)
}

func (m *mockIssueService) IssueCertificate(ctx context.Context, recipient, hash, metadataURI string) (models.IssueResult, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, recipient, hash, metadataURI)
	}
	return models.IssueResult{}, nil
}

type mockVerifyService struct {
	verifyFn func(ctx context.Context, hash string) (models.VerificationResult, error)
}

func (m *mockVerifyService) VerifyCertificate(ctx context.Context, hash string) (models.VerificationResult, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, hash)
	}
	return models.VerificationResult{}, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestHandler(certificates *mockCertificateService, issue *mockIssueService, verify *mockVerifyService) *Handler {
	if certificates == nil {
		certificates = &mockCertificateService{}
	}
	if issue == nil {
		issue = &mockIssueService{}
	}
	if verify == nil {
		verify = &mockVerifyService{}
	}

	return NewHandler(&service.Services{
		CertificateService: certificates,
		IssueService:       issue,
		VerifyService:      verify,
	}, logger.Nop())
}
