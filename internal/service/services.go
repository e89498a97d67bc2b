package service

import (
	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/store"
)

type Services struct {
	CertificateService CertificateService
	IssueService       IssueService
	VerifyService      VerifyService
}

// NewServices wires the service layer. registry may be nil: the server then
// runs in offline mode, issuance is refused and verification falls back to
// the local metadata store.
func NewServices(storages store.Storages, registry ledger.Registry, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	certificates := NewCertificateService(storages.Certificates, storages.Files, cfg.App, logger)

	return &Services{
		CertificateService: certificates,
		IssueService:       NewIssueService(registry, logger),
		VerifyService:      NewVerifyService(storages.Certificates, registry, cfg.App, logger),
	}
}
