package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names accepted by [NewConnect]. The pgx stdlib driver serves
// "postgres://" DSNs; everything else is treated as a SQLite file path.
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps the shared *sql.DB handle together with the driver it was opened
// with, so repositories can pick the matching placeholder format and
// duplicate-error classification.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens the metadata database described by cfg.DSN, pings it, and
// applies pending migrations.
//
// The driver is derived from the DSN: "postgres://" or "postgresql://" URIs
// open PostgreSQL via pgx; any other value is passed to the SQLite driver as
// a file path (":memory:" works for throwaway databases).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := driverForDSN(cfg.DSN)

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// SQLite tolerates a single writer only.
	if driver == driverSQLite {
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the embedded goose migrations for this database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func driverForDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return driverPostgres
	}
	return driverSQLite
}
