package store

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

// CertificateRepository is the metadata store: an append-only mapping from a
// sequential certificate identifier to its off-chain record.
//
// Identifiers are assigned by Save in insertion order starting at 1 and are
// never reused. Records are never updated or deleted. Implementations offer
// no atomicity across calls; two interleaved Save operations may be assigned
// ids in completion order rather than submission order.
type CertificateRepository interface {
	// Save assigns the next sequential id to record, inserts it, and
	// returns the assigned id. When the repository was created with the
	// duplicate-reject policy, a record whose hash is already present is
	// refused with [ErrDuplicateHash].
	Save(ctx context.Context, record models.CertificateRecord) (int64, error)

	// Get returns the record stored under id, or [ErrCertificateNotFound].
	Get(ctx context.Context, id int64) (models.CertificateRecord, error)

	// FindByHash returns the first record (in id order) whose
	// CertificateHash equals hash, or [ErrCertificateNotFound].
	FindByHash(ctx context.Context, hash string) (models.CertificateRecord, error)

	// List returns all records in ascending id order. Re-querying
	// re-scans the current state.
	List(ctx context.Context) ([]models.CertificateRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}

// CertificateFileStorage persists raw uploaded certificate bytes and serves
// them back by their generated storage name.
type CertificateFileStorage interface {
	// Save writes data under a unique generated name derived from
	// originalName's extension and returns that name. Concurrent saves
	// never collide.
	Save(ctx context.Context, originalName string, data []byte) (string, error)

	// Read returns the bytes previously stored under name, or
	// [ErrFileNotFound].
	Read(ctx context.Context, name string) ([]byte, error)
}
