// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned by point lookups when no record carries
	// the requested id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrCredentialsNotFound is returned by [CredentialStorage.Load] when no
	// login pair has been stored yet.
	ErrCredentialsNotFound = errors.New("credentials were not found")

	// ErrUnsupportedDriver is returned when the configured storage driver is
	// neither SQLite nor PostgreSQL.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrForeignPhotoPath is returned by [PhotoStorage.Remove] for paths
	// outside the photo directory.
	ErrForeignPhotoPath = errors.New("photo is outside the photo directory")

	// ErrUnsupportedSearchField is returned when a lookup names a column
	// that cannot be searched.
	ErrUnsupportedSearchField = errors.New("unsupported search field")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a record fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
