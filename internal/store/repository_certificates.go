package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
)

const certificatesTable = "certificates"

// hashUniqueIndexName is the database-level duplicate-hash guard. It exists
// only while the reject policy is on; see [ensureHashUniqueIndex].
const hashUniqueIndexName = "uq_certificates_hash"

var certificateColumns = []string{
	"id",
	"certificate_hash",
	"display_name",
	"description",
	"file_reference",
	"source_file_name",
	"source_file_size",
	"uploaded_at",
	"metadata_uri",
}

// sqlCertificateRepository is the SQL-backed implementation of
// [CertificateRepository]. It works against PostgreSQL and SQLite through
// the shared [*DB] handle, building queries with squirrel in the placeholder
// format of the active driver.
//
// Identifier assignment mirrors the in-memory store: Save reads the current
// maximum id and inserts max+1. The two statements are not wrapped in a
// transaction; the store offers no atomicity across interleaved operations
// and the schema's primary key turns a lost race into a driver error rather
// than silent corruption.
type sqlCertificateRepository struct {
	db               *DB
	builder          sq.StatementBuilderType
	rejectDuplicates bool
	logger           *logger.Logger
}

// NewSQLCertificateRepository constructs a [CertificateRepository] backed by
// the provided database connection and logger.
func NewSQLCertificateRepository(db *DB, rejectDuplicates bool, logger *logger.Logger) CertificateRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating sql certificate repository")

	return &sqlCertificateRepository{
		db:               db,
		builder:          sq.StatementBuilder.PlaceholderFormat(placeholderFormat(db.driver)),
		rejectDuplicates: rejectDuplicates,
		logger:           logger,
	}
}

func placeholderFormat(driver string) sq.PlaceholderFormat {
	if driver == driverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// ensureHashUniqueIndex keeps the database-level duplicate guard in step
// with the reject policy: the unique index is created when the policy is on
// and dropped when it is off, so FindByHash pre-checks are a fast path and
// the index is the authority under concurrent saves. Both statements are
// idempotent on PostgreSQL and SQLite. Creation fails if the table already
// holds duplicate hashes; that surfaces at startup, not on a later save.
func ensureHashUniqueIndex(ctx context.Context, db *DB, reject bool) error {
	stmt := "DROP INDEX IF EXISTS " + hashUniqueIndexName
	if reject {
		stmt = "CREATE UNIQUE INDEX IF NOT EXISTS " + hashUniqueIndexName +
			" ON " + certificatesTable + " (certificate_hash)"
	}

	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sqlCertificateRepository) Save(ctx context.Context, record models.CertificateRecord) (int64, error) {
	log := logger.FromContext(ctx)

	if r.rejectDuplicates {
		if _, err := r.FindByHash(ctx, record.CertificateHash); err == nil {
			return 0, ErrDuplicateHash
		} else if !errors.Is(err, ErrCertificateNotFound) {
			return 0, err
		}
	}

	nextID, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}
	record.ID = nextID

	query, args, err := r.builder.
		Insert(certificatesTable).
		Columns(certificateColumns...).
		Values(
			record.ID,
			record.CertificateHash,
			record.DisplayName,
			record.Description,
			record.FileReference,
			record.SourceFileName,
			record.SourceFileSize,
			record.UploadedAt,
			record.MetadataURI,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.Save").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCertificateRepository.Save").
			Str("certificate_hash", record.CertificateHash).
			Msg("failed to insert certificate record")

		if isHashUniqueViolation(err) {
			return 0, ErrDuplicateHash
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil && affected == 0 {
		return 0, ErrCertificateNotSaved
	}

	return record.ID, nil
}

func (r *sqlCertificateRepository) Get(ctx context.Context, id int64) (models.CertificateRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(certificateColumns...).
		From(certificatesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.Get").Msg("failed to build select query")
		return models.CertificateRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, query, args...)
}

func (r *sqlCertificateRepository) FindByHash(ctx context.Context, hash string) (models.CertificateRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(certificateColumns...).
		From(certificatesTable).
		Where(sq.Eq{"certificate_hash": hash}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.FindByHash").Msg("failed to build select query")
		return models.CertificateRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, query, args...)
}

func (r *sqlCertificateRepository) List(ctx context.Context) ([]models.CertificateRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(certificateColumns...).
		From(certificatesTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.List").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.List").Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CertificateRecord, 0, 50)
	for rows.Next() {
		record, scanErr := scanCertificate(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "sqlCertificateRepository.List").Msg("failed to scan certificate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "sqlCertificateRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *sqlCertificateRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("COUNT(*)").
		From(certificatesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.Count").Msg("failed to count certificates")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// nextID returns max(id)+1 of the certificates table, starting at 1 for an
// empty table.
func (r *sqlCertificateRepository) nextID(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("COALESCE(MAX(id), 0) + 1").
		From(certificatesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "sqlCertificateRepository.nextID").Msg("failed to determine next certificate id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *sqlCertificateRepository) scanOne(ctx context.Context, query string, args ...any) (models.CertificateRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	record, err := scanCertificate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CertificateRecord{}, ErrCertificateNotFound
		}
		log.Err(err).Str("func", "sqlCertificateRepository.scanOne").Msg("failed to scan certificate row")
		return models.CertificateRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// rowScanner lets scanCertificate work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertificate(row rowScanner) (models.CertificateRecord, error) {
	var record models.CertificateRecord
	err := row.Scan(
		&record.ID,
		&record.CertificateHash,
		&record.DisplayName,
		&record.Description,
		&record.FileReference,
		&record.SourceFileName,
		&record.SourceFileSize,
		&record.UploadedAt,
		&record.MetadataURI,
	)
	return record, err
}
