// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCertificateNotFound is returned when a lookup by id or by hash
	// matches no stored record. A missing certificate is an expected
	// outcome of verification, not a fault.
	ErrCertificateNotFound = errors.New("certificate was not found")

	// ErrDuplicateHash is returned by Save when the duplicate-reject
	// policy is enabled and a record with the same certificate hash
	// already exists in the store.
	ErrDuplicateHash = errors.New("certificate hash already stored")

	// ErrCertificateNotSaved is returned when an INSERT completes without
	// error but the number of affected rows is zero, indicating that no
	// record was actually persisted.
	ErrCertificateNotSaved = errors.New("certificate record was not saved")

	// ErrFileNotFound is returned by the file storage when no file exists
	// under the requested storage name.
	ErrFileNotFound = errors.New("certificate file was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan certificate row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan certificate rows")
)
