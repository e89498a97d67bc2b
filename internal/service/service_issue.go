package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

type issueService struct {
	registry ledger.Registry

	logger *logger.Logger
}

func NewIssueService(registry ledger.Registry, logger *logger.Logger) IssueService {
	return &issueService{
		registry: registry,
		logger:   logger,
	}
}

// IssueCertificate registers hash on the ledger for recipient. One attempt,
// terminal result; retrying is the caller's decision.
func (s *issueService) IssueCertificate(ctx context.Context, recipient string, hash string, metadataURI string) (models.IssueResult, error) {
	log := logger.FromContext(ctx)

	if s.registry == nil || !s.registry.CanIssue() {
		return models.IssueResult{}, ErrLedgerNotConfigured
	}
	if !common.IsHexAddress(recipient) {
		return models.IssueResult{}, ErrInvalidRecipientProvided
	}

	certHash, err := utils.HashToBytes32(hash)
	if err != nil {
		return models.IssueResult{}, ErrInvalidHashProvided
	}

	result, err := s.registry.IssueCertificate(ctx, recipient, certHash, metadataURI)
	if err != nil {
		log.Err(err).Str("func", "*issueService.IssueCertificate").Msg("issuance failed")
		return models.IssueResult{}, err
	}

	log.Info().
		Int64("token_id", result.TokenID).
		Bool("token_id_known", result.TokenIDKnown).
		Str("tx", result.TxHash).
		Msg("certificate issued")

	return result, nil
}
