package store

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
)

// Storages aggregates every persistence backend used by the application.
type Storages struct {
	Certificates CertificateRepository
	Files        CertificateFileStorage
}

// NewStorages constructs all storage backends from cfg.
//
// The metadata backing is chosen by the DSN: empty selects the in-memory
// repository (records do not survive a restart, the documented demo
// default), anything else opens the SQL repository via [NewConnect].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	files, err := NewCertificateFileStorage(cfg.Files.CertificateDir, log)
	if err != nil {
		return nil, err
	}

	var certificates CertificateRepository
	if cfg.DB.DSN == "" {
		certificates = NewMemoryCertificateRepository(cfg.DB.RejectDuplicateHashes, log)
	} else {
		db, dbErr := NewConnect(ctx, cfg.DB, log)
		if dbErr != nil {
			return nil, dbErr
		}
		if idxErr := ensureHashUniqueIndex(ctx, db, cfg.DB.RejectDuplicateHashes); idxErr != nil {
			return nil, idxErr
		}
		certificates = NewSQLCertificateRepository(db, cfg.DB.RejectDuplicateHashes, log)
	}

	return &Storages{
		Certificates: certificates,
		Files:        files,
	}, nil
}
