package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
)

// auditWorker periodically cross-checks the local metadata store against the
// registry ledger: every stored hash is looked up on-chain and confirmed
// certificates have their on-chain metadata URI compared with the stored
// one. Findings are logged only; records are never mutated.
type auditWorker struct {
	certificates store.CertificateRepository
	registry     ledger.Registry
	interval     time.Duration

	ctx    context.Context
	logger *logger.Logger
}

// NewAuditWorker builds the audit worker. A non-positive interval disables
// it: Run becomes a no-op.
func NewAuditWorker(ctx context.Context, certificates store.CertificateRepository, registry ledger.Registry, interval time.Duration, logger *logger.Logger) Worker {
	return &auditWorker{
		certificates: certificates,
		registry:     registry,
		interval:     interval,
		ctx:          ctx,
		logger:       logger,
	}
}

// Run starts the audit loop in a background goroutine. The loop exits when
// the worker's context is cancelled.
func (w *auditWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("audit worker disabled: no interval configured")
		return
	}

	go func() {
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-t.C:
				w.audit(w.ctx)
			}
		}
	}()
}

func (w *auditWorker) audit(ctx context.Context) {
	log := w.logger.With().Str("func", "*auditWorker.audit").Logger()

	records, err := w.certificates.List(ctx)
	if err != nil {
		log.Err(err).Msg("error listing certificates for audit")
		return
	}

	var issued, unissued, mismatched int
	for _, record := range records {
		certHash, err := utils.HashToBytes32(record.CertificateHash)
		if err != nil {
			log.Err(err).Int64("certificate_id", record.ID).Msg("stored hash is malformed")
			continue
		}

		valid, tokenID, err := w.registry.VerifyCertificate(ctx, certHash)
		if err != nil {
			log.Err(err).Int64("certificate_id", record.ID).Msg("ledger lookup failed; aborting audit pass")
			return
		}

		if !valid || tokenID == 0 {
			unissued++
			continue
		}
		issued++

		uri, err := w.registry.TokenURI(ctx, tokenID)
		if err != nil {
			log.Err(err).Int64("token_id", tokenID).Msg("error fetching on-chain token URI")
			continue
		}
		if uri != record.MetadataURI {
			mismatched++
			log.Warn().
				Int64("certificate_id", record.ID).
				Int64("token_id", tokenID).
				Str("stored_uri", record.MetadataURI).
				Str("onchain_uri", uri).
				Msg("metadata URI mismatch between store and ledger")
		}
	}

	log.Info().
		Int("total", len(records)).
		Int("issued", issued).
		Int("unissued", unissued).
		Int("mismatched", mismatched).
		Msg("audit pass finished")
}
