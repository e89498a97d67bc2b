package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isHashUniqueViolation reports whether err is the backing database
// rejecting a duplicate certificate hash, regardless of driver. A unique
// violation on any other constraint (the id primary key after a lost
// max+1 race) is not a duplicate hash and must not be reported as one.
//
// PostgreSQL reports SQLSTATE 23505 with the violated constraint's name;
// SQLite reports a constraint-class error whose message names the column.
func isHashUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == hashUniqueIndexName
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique &&
			strings.Contains(err.Error(), "certificate_hash")
	}

	return false
}
