package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

type verifyService struct {
	certificates store.CertificateRepository
	registry     ledger.Registry

	publicBaseURL string

	logger *logger.Logger
}

func NewVerifyService(certificates store.CertificateRepository, registry ledger.Registry, cfg config.App, logger *logger.Logger) VerifyService {
	return &verifyService{
		certificates:  certificates,
		registry:      registry,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        logger,
	}
}

// VerifyCertificate looks the hash up on the ledger, then resolves the
// matching metadata record. Ledger validity and metadata availability are
// reported independently: a confirmed certificate whose record cannot be
// fetched is still Valid, with a diagnostic message instead of metadata.
// Without a configured ledger the local store answers alone.
func (s *verifyService) VerifyCertificate(ctx context.Context, hash string) (models.VerificationResult, error) {
	log := logger.FromContext(ctx)

	normalized := utils.NormalizeHash(hash)
	certHash, err := utils.HashToBytes32(normalized)
	if err != nil {
		return models.VerificationResult{}, ErrInvalidHashProvided
	}

	if s.registry == nil {
		return s.verifyOffline(ctx, normalized)
	}

	valid, tokenID, err := s.registry.VerifyCertificate(ctx, certHash)
	if err != nil {
		log.Err(err).Str("func", "*verifyService.VerifyCertificate").Msg("ledger lookup failed")
		return models.VerificationResult{}, err
	}

	if !valid || tokenID == 0 {
		return models.VerificationResult{
			Valid:   false,
			Message: "Certificate not found on blockchain",
		}, nil
	}

	result := models.VerificationResult{Valid: true, TokenID: tokenID}

	record, err := s.certificates.Get(ctx, tokenID)
	if err != nil {
		log.Warn().
			Err(err).
			Int64("token_id", tokenID).
			Msg("certificate confirmed on ledger but metadata lookup failed")
		result.Message = fmt.Sprintf("certificate is valid, but its metadata could not be retrieved: %v", err)
		return result, nil
	}

	metadata := record.TokenMetadata(s.publicBaseURL)
	result.Metadata = &metadata

	return result, nil
}

// verifyOffline reproduces the metadata-server-only behavior: the local
// store is the sole authority on whether the hash is known.
func (s *verifyService) verifyOffline(ctx context.Context, hash string) (models.VerificationResult, error) {
	record, err := s.certificates.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrCertificateNotFound) {
			return models.VerificationResult{
				Valid:   false,
				Message: "Certificate not found",
			}, nil
		}
		return models.VerificationResult{}, err
	}

	metadata := record.TokenMetadata(s.publicBaseURL)

	return models.VerificationResult{
		Valid:    true,
		TokenID:  record.ID,
		Metadata: &metadata,
	}, nil
}
