// Package store defines the narrow record-store client that batch
// consumption writes through. Implementations live in sub-packages.
package store

import (
	"context"
	"sort"
)

// Row is one record's column values.
type Row map[string]any

// Columns returns the row's column names in sorted order.
func (r Row) Columns() []string {
	columns := make([]string, 0, len(r))
	for column := range r {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

type Store interface {
	// Begin opens a transaction. Everything a batch writes goes through the
	// returned Tx and becomes visible only on Commit.
	Begin(ctx context.Context) (Tx, error)
	// IsTransientConflict reports whether err is a deadlock or serialization
	// failure after which the whole transaction may simply be re-run.
	IsTransientConflict(err error) bool
}

type Tx interface {
	// BulkUpsert inserts rows, updating every non-target column of rows whose
	// conflictTarget columns match an existing record.
	BulkUpsert(ctx context.Context, table string, rows []Row, conflictTarget []string) error
	// BulkInsert inserts rows without conflict resolution.
	BulkInsert(ctx context.Context, table string, rows []Row) error
	// BulkDelete removes every record whose column value is one of values.
	BulkDelete(ctx context.Context, table string, column string, values []any) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
