package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
)

// memoryCertificateRepository is the in-memory implementation of
// [CertificateRepository], suitable for the demo workload and for tests.
// Records live for the lifetime of the process and are lost on restart;
// that is intentional, not an oversight.
//
// A single RWMutex guards the map. This serializes individual operations but
// gives no atomicity across calls: a caller doing FindByHash followed by
// Save can still race another upload of the same content.
type memoryCertificateRepository struct {
	mu               sync.RWMutex
	nextID           int64
	records          map[int64]models.CertificateRecord
	rejectDuplicates bool

	logger *logger.Logger
}

// NewMemoryCertificateRepository constructs an empty in-memory metadata
// store. When rejectDuplicates is true, Save refuses records whose hash is
// already present.
func NewMemoryCertificateRepository(rejectDuplicates bool, logger *logger.Logger) CertificateRepository {
	logger.Debug().Msg("creating in-memory certificate repository")
	return &memoryCertificateRepository{
		nextID:           1,
		records:          make(map[int64]models.CertificateRecord),
		rejectDuplicates: rejectDuplicates,
		logger:           logger,
	}
}

func (m *memoryCertificateRepository) Save(ctx context.Context, record models.CertificateRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rejectDuplicates {
		for id := int64(1); id < m.nextID; id++ {
			if existing, ok := m.records[id]; ok && existing.CertificateHash == record.CertificateHash {
				return 0, ErrDuplicateHash
			}
		}
	}

	record.ID = m.nextID
	m.records[record.ID] = record
	m.nextID++

	return record.ID, nil
}

func (m *memoryCertificateRepository) Get(ctx context.Context, id int64) (models.CertificateRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return models.CertificateRecord{}, ErrCertificateNotFound
	}

	return record, nil
}

// FindByHash scans records in id order and returns the first match, so a
// re-uploaded document always resolves to its earliest record.
func (m *memoryCertificateRepository) FindByHash(ctx context.Context, hash string) (models.CertificateRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id := int64(1); id < m.nextID; id++ {
		if record, ok := m.records[id]; ok && record.CertificateHash == hash {
			return record, nil
		}
	}

	return models.CertificateRecord{}, ErrCertificateNotFound
}

func (m *memoryCertificateRepository) List(ctx context.Context) ([]models.CertificateRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.CertificateRecord, 0, len(m.records))
	for id := int64(1); id < m.nextID; id++ {
		if record, ok := m.records[id]; ok {
			records = append(records, record)
		}
	}

	return records, nil
}

func (m *memoryCertificateRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.records)), nil
}
