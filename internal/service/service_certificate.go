package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

type certificateService struct {
	certificates store.CertificateRepository
	files        store.CertificateFileStorage

	publicBaseURL string

	logger *logger.Logger
}

func NewCertificateService(certificates store.CertificateRepository, files store.CertificateFileStorage, cfg config.App, logger *logger.Logger) CertificateService {
	return &certificateService{
		certificates:  certificates,
		files:         files,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        logger,
	}
}

// UploadCertificate persists the uploaded bytes, hashes the persisted copy
// and stores the metadata record.
//
// The hash is computed over the bytes read back from the file store, not
// over the request payload, so the digest always reflects what is actually
// on disk. The record's id-derived fields use the next sequential id;
// because records are never deleted this matches the id Save assigns.
func (s *certificateService) UploadCertificate(ctx context.Context, request models.UploadRequest) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if len(request.Data) == 0 {
		return models.UploadResult{}, ErrNoFileProvided
	}

	fileName, err := s.files.Save(ctx, request.FileName, request.Data)
	if err != nil {
		log.Err(err).Str("func", "*certificateService.UploadCertificate").Msg("error persisting certificate file")
		return models.UploadResult{}, err
	}

	stored, err := s.files.Read(ctx, fileName)
	if err != nil {
		log.Err(err).Str("func", "*certificateService.UploadCertificate").Msg("error reading back persisted file")
		return models.UploadResult{}, err
	}
	hash := utils.HashBytes(stored)

	count, err := s.certificates.Count(ctx)
	if err != nil {
		return models.UploadResult{}, err
	}
	nextID := count + 1

	record := models.CertificateRecord{
		CertificateHash: hash,
		DisplayName:     fmt.Sprintf("Certificate #%d", nextID),
		Description:     fmt.Sprintf("Certificate of completion with hash %s", hash),
		FileReference:   fileName,
		SourceFileName:  request.FileName,
		SourceFileSize:  int64(len(request.Data)),
		UploadedAt:      time.Now().UTC(),
		MetadataURI:     fmt.Sprintf("%s/api/metadata/%d", s.publicBaseURL, nextID),
	}

	id, err := s.certificates.Save(ctx, record)
	if err != nil {
		return models.UploadResult{}, err
	}

	log.Info().
		Int64("certificate_id", id).
		Str("certificate_hash", hash).
		Msg("certificate uploaded")

	return models.UploadResult{
		ID:              id,
		CertificateHash: hash,
		MetadataURI:     fmt.Sprintf("%s/api/metadata/%d", s.publicBaseURL, id),
		FileReference:   fileName,
	}, nil
}

func (s *certificateService) Metadata(ctx context.Context, id int64) (models.TokenMetadata, error) {
	record, err := s.certificates.Get(ctx, id)
	if err != nil {
		return models.TokenMetadata{}, err
	}

	return record.TokenMetadata(s.publicBaseURL), nil
}

func (s *certificateService) ListCertificates(ctx context.Context) ([]models.CertificateListEntry, error) {
	records, err := s.certificates.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CertificateListEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, models.CertificateListEntry{
			TokenID:       record.ID,
			TokenMetadata: record.TokenMetadata(s.publicBaseURL),
		})
	}

	return entries, nil
}

func (s *certificateService) Count(ctx context.Context) (int64, error) {
	return s.certificates.Count(ctx)
}

func (s *certificateService) CertificateFile(ctx context.Context, name string) ([]byte, error) {
	return s.files.Read(ctx, name)
}
