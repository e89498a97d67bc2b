package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
)

// certificateFileStorage is the disk-backed implementation of
// [CertificateFileStorage]. Uploaded bytes are written under the configured
// directory with a generated name of the form
//
//	certificate-<unix-nano>-<uuid><ext>
//
// The timestamp keeps names roughly sortable by upload time; the UUID
// guarantees that two concurrent uploads never collide.
type certificateFileStorage struct {
	dir     string
	uuidGen *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewCertificateFileStorage constructs a disk-backed file storage rooted at
// dir, creating the directory when it does not exist.
func NewCertificateFileStorage(dir string, logger *logger.Logger) (CertificateFileStorage, error) {
	if dir == "" {
		dir = "certificates"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewCertificateFileStorage").Str("dir", dir).Msg("failed to create certificate directory")
		return nil, fmt.Errorf("failed to create certificate directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("certificate file storage ready")
	return &certificateFileStorage{
		dir:     dir,
		uuidGen: utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func (s *certificateFileStorage) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	name := s.generateName(originalName)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).
			Str("func", "*certificateFileStorage.Save").
			Str("file", name).
			Msg("failed to write certificate file")
		return "", fmt.Errorf("failed to write certificate file: %w", err)
	}

	return name, nil
}

func (s *certificateFileStorage) Read(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	// filepath.Base strips any directory components a caller might smuggle
	// into the storage name.
	path := filepath.Join(s.dir, filepath.Base(name))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		log.Err(err).
			Str("func", "*certificateFileStorage.Read").
			Str("file", name).
			Msg("failed to read certificate file")
		return nil, fmt.Errorf("failed to read certificate file: %w", err)
	}

	return data, nil
}

func (s *certificateFileStorage) generateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("certificate-%d-%s%s", time.Now().UnixNano(), s.uuidGen.Generate(), ext)
}
