// Package memory is an in-process store.Store. Writes are recorded by the
// transaction and applied atomically on commit, which makes it suitable for
// tests and for local runs without a database.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/csmap"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

// ErrConflict is the transient write conflict reported by this store.
var ErrConflict = errors.New("memory: write conflict")

type OperationType string

const (
	OperationUpsert OperationType = "upsert"
	OperationInsert OperationType = "insert"
	OperationDelete OperationType = "delete"
	OperationCommit OperationType = "commit"
)

// Operation describes a single call made against a transaction.
type Operation struct {
	Type           OperationType
	Table          string
	Rows           []store.Row
	ConflictTarget []string
	Column         string
	Values         []any
}

// FaultFunc is consulted before every operation; a non-nil error fails it.
type FaultFunc func(op Operation) error

type Store struct {
	tables    *csmap.ConcurrentSwissMap[string, []store.Row]
	commitMu  sync.Mutex
	fault     FaultFunc
	commits   atomic.Int64
	rollbacks atomic.Int64
	begins    atomic.Int64
}

func New() *Store {
	return &Store{tables: csmap.Create[string, []store.Row](0)}
}

// WithFault installs f and returns the store.
func (s *Store) WithFault(f FaultFunc) *Store {
	s.fault = f
	return s
}

func (s *Store) Begin(_ context.Context) (store.Tx, error) {
	s.begins.Add(1)
	return &tx{store: s}, nil
}

func (s *Store) IsTransientConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// Rows returns a copy of the committed rows of table.
func (s *Store) Rows(table string) []store.Row {
	rows, _ := s.tables.Load(table)
	return copyRows(rows)
}

// Find returns the first committed row of table whose column equals value.
func (s *Store) Find(table, column string, value any) (store.Row, bool) {
	rows, _ := s.tables.Load(table)
	for _, row := range rows {
		if v, ok := row[column]; ok && fmt.Sprint(v) == fmt.Sprint(value) {
			return copyRow(row), true
		}
	}
	return nil, false
}

// Seed replaces the committed rows of table.
func (s *Store) Seed(table string, rows ...store.Row) {
	s.tables.Store(table, copyRows(rows))
}

func (s *Store) Begins() int64    { return s.begins.Load() }
func (s *Store) Commits() int64   { return s.commits.Load() }
func (s *Store) Rollbacks() int64 { return s.rollbacks.Load() }

type tx struct {
	store *Store
	ops   []Operation
	done  bool
}

func (t *tx) BulkUpsert(_ context.Context, table string, rows []store.Row, conflictTarget []string) error {
	if len(conflictTarget) == 0 {
		return store.ErrEmptyConflictTarget
	}
	for _, row := range rows {
		for _, column := range conflictTarget {
			if _, ok := row[column]; !ok {
				return fmt.Errorf("%w: %s", store.ErrMissingConflictColumn, column)
			}
		}
	}
	return t.record(Operation{Type: OperationUpsert, Table: table, Rows: copyRows(rows), ConflictTarget: conflictTarget})
}

func (t *tx) BulkInsert(_ context.Context, table string, rows []store.Row) error {
	return t.record(Operation{Type: OperationInsert, Table: table, Rows: copyRows(rows)})
}

func (t *tx) BulkDelete(_ context.Context, table, column string, values []any) error {
	return t.record(Operation{Type: OperationDelete, Table: table, Column: column, Values: append([]any(nil), values...)})
}

func (t *tx) record(op Operation) error {
	if t.done {
		return store.ErrTxDone
	}
	if t.store.fault != nil {
		if err := t.store.fault(op); err != nil {
			return err
		}
	}
	t.ops = append(t.ops, op)
	return nil
}

func (t *tx) Commit(_ context.Context) error {
	if t.done {
		return store.ErrTxDone
	}
	if t.store.fault != nil {
		if err := t.store.fault(Operation{Type: OperationCommit}); err != nil {
			return err
		}
	}
	t.done = true

	t.store.commitMu.Lock()
	defer t.store.commitMu.Unlock()

	working := make(map[string][]store.Row)
	for _, op := range t.ops {
		rows, ok := working[op.Table]
		if !ok {
			committed, _ := t.store.tables.Load(op.Table)
			rows = copyRows(committed)
		}
		working[op.Table] = apply(rows, op)
	}
	for table, rows := range working {
		t.store.tables.Store(table, rows)
	}
	t.store.commits.Add(1)
	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.ops = nil
	t.store.rollbacks.Add(1)
	return nil
}

func apply(rows []store.Row, op Operation) []store.Row {
	switch op.Type {
	case OperationInsert:
		return append(rows, op.Rows...)
	case OperationUpsert:
		for _, incoming := range op.Rows {
			target := identity(incoming, op.ConflictTarget)
			replaced := false
			for i, existing := range rows {
				if identity(existing, op.ConflictTarget) == target {
					rows[i] = incoming
					replaced = true
					break
				}
			}
			if !replaced {
				rows = append(rows, incoming)
			}
		}
		return rows
	case OperationDelete:
		deleted := make(map[string]struct{}, len(op.Values))
		for _, v := range op.Values {
			deleted[fmt.Sprint(v)] = struct{}{}
		}
		kept := rows[:0]
		for _, row := range rows {
			if v, ok := row[op.Column]; ok {
				if _, hit := deleted[fmt.Sprint(v)]; hit {
					continue
				}
			}
			kept = append(kept, row)
		}
		return kept
	default:
		return rows
	}
}

func identity(row store.Row, columns []string) string {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, column+"="+fmt.Sprint(row[column]))
	}
	return strings.Join(parts, "\x00")
}

func copyRows(rows []store.Row) []store.Row {
	if rows == nil {
		return nil
	}
	result := make([]store.Row, 0, len(rows))
	for _, row := range rows {
		result = append(result, copyRow(row))
	}
	return result
}

func copyRow(row store.Row) store.Row {
	result := make(store.Row, len(row))
	for k, v := range row {
		result[k] = v
	}
	return result
}
