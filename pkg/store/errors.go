package store

import "errors"

var (
	// ErrTxDone is returned when a finished transaction is used again.
	ErrTxDone = errors.New("store: transaction has already been committed or rolled back")

	// ErrEmptyConflictTarget is returned by BulkUpsert when no target columns are given.
	ErrEmptyConflictTarget = errors.New("store: upsert requires at least one conflict target column")

	// ErrMissingConflictColumn is returned when a row lacks a conflict target column.
	ErrMissingConflictColumn = errors.New("store: row is missing a conflict target column")
)
