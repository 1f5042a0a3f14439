// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned when a settings key has never been written.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrEntityNotFound is returned when no local row exists for the
	// requested kind and id.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrUnknownKind is returned when an operation targets an entity kind
	// that has no local table.
	ErrUnknownKind = errors.New("entity kind has no local table")

	// ErrInvalidOperation is returned when a mutation fails validation before
	// it reaches the database.
	ErrInvalidOperation = errors.New("invalid mutation operation")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to iterate rows")

	// ErrEncodingColumn is returned when a value cannot be encoded into or
	// decoded from its column representation.
	ErrEncodingColumn = errors.New("failed to encode column value")
)
