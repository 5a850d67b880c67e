// Package postgres implements store.Store on a pgx connection pool using
// multi-row INSERT ... ON CONFLICT upserts and ANY($1) deletes.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

const (
	sqlStateDeadlockDetected     = "40P01"
	sqlStateSerializationFailure = "40001"
)

var errNotConnected = errors.New("store is not connected")

// pool is satisfied by *pgxpool.Pool and can be mocked for testing.
type pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type Store struct {
	conn pool
	opts *options
}

func New(opts ...Option) *Store {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Store{opts: o}
}

func (s *Store) Connect(ctx context.Context) error {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}

	if err := s.opts.validate(); err != nil {
		return fmt.Errorf("invalid Postgres store configuration: %w", err)
	}

	config, err := pgxpool.ParseConfig(s.opts.connectionString())
	if err != nil {
		return fmt.Errorf("failed to parse Postgres connection string: %w", err)
	}

	if s.opts.poolMaxConnections != nil {
		config.MaxConns = *s.opts.poolMaxConnections
	}

	if s.opts.poolMinConnections != nil {
		config.MinConns = *s.opts.poolMinConnections
	}

	if s.opts.poolMaxConnectionLifetime != nil {
		config.MaxConnLifetime = *s.opts.poolMaxConnectionLifetime
	}

	if s.opts.poolMaxConnectionIdleTime != nil {
		config.MaxConnIdleTime = *s.opts.poolMaxConnectionIdleTime
	}

	conn, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create Postgres connection pool: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping Postgres: %w", err)
	}

	s.conn = conn

	return nil
}

func (s *Store) Close() {
	if s.conn == nil {
		return
	}
	s.conn.Close()
	s.conn = nil
}

func (s *Store) Begin(ctx context.Context) (store.Tx, error) {
	if s.conn == nil {
		return nil, errNotConnected
	}

	pgTx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin Postgres transaction: %w", err)
	}

	return &tx{tx: pgTx, opts: s.opts}, nil
}

// IsTransientConflict reports deadlock_detected and serialization_failure.
func (s *Store) IsTransientConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateDeadlockDetected || pgErr.Code == sqlStateSerializationFailure
}

type tx struct {
	tx   pgx.Tx
	opts *options
}

func (t *tx) BulkUpsert(ctx context.Context, table string, rows []store.Row, conflictTarget []string) error {
	if len(conflictTarget) == 0 {
		return store.ErrEmptyConflictTarget
	}
	return t.insert(ctx, table, rows, conflictTarget)
}

func (t *tx) BulkInsert(ctx context.Context, table string, rows []store.Row) error {
	return t.insert(ctx, table, rows, nil)
}

func (t *tx) insert(ctx context.Context, table string, rows []store.Row, conflictTarget []string) error {
	if len(rows) == 0 {
		return nil
	}
	if err := validateIdentifier("table", table); err != nil {
		return err
	}
	for _, column := range conflictTarget {
		if err := validateIdentifier("column", column); err != nil {
			return err
		}
	}

	for _, group := range groupByColumns(rows) {
		for _, column := range group.columns {
			if err := validateIdentifier("column", column); err != nil {
				return err
			}
		}
		if err := requireColumns(group.columns, conflictTarget); err != nil {
			return err
		}
		size := t.opts.rowsPerStatement(len(group.columns))
		for start := 0; start < len(group.rows); start += size {
			end := min(start+size, len(group.rows))
			sql, args := buildInsertSQL(table, group.columns, group.rows[start:end], conflictTarget)
			if _, err := t.tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("failed to write %d rows to %s: %w", end-start, table, err)
			}
		}
	}

	return nil
}

func (t *tx) BulkDelete(ctx context.Context, table, column string, values []any) error {
	if len(values) == 0 {
		return nil
	}
	if err := validateIdentifier("table", table); err != nil {
		return err
	}
	if err := validateIdentifier("column", column); err != nil {
		return err
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", quoteIdentifier(table), quoteIdentifier(column))

	normalized := make([]any, 0, len(values))
	for _, v := range values {
		normalized = append(normalized, store.NormalizeValue(v))
	}

	if _, err := t.tx.Exec(ctx, sql, normalized); err != nil {
		return fmt.Errorf("failed to delete %d rows from %s: %w", len(values), table, err)
	}

	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return store.ErrTxDone
		}
		return fmt.Errorf("failed to commit Postgres transaction: %w", err)
	}
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to roll back Postgres transaction: %w", err)
	}
	return nil
}

type columnGroup struct {
	columns []string
	rows    []store.Row
}

// groupByColumns splits rows by column set, keeping first-seen order, so a
// single statement never writes NULL into a column a row did not carry.
func groupByColumns(rows []store.Row) []*columnGroup {
	var groups []*columnGroup
	index := make(map[string]*columnGroup)
	for _, row := range rows {
		columns := row.Columns()
		signature := strings.Join(columns, ",")
		group, ok := index[signature]
		if !ok {
			group = &columnGroup{columns: columns}
			index[signature] = group
			groups = append(groups, group)
		}
		group.rows = append(group.rows, row)
	}
	return groups
}

func requireColumns(columns, required []string) error {
	present := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		present[column] = struct{}{}
	}
	for _, column := range required {
		if _, ok := present[column]; !ok {
			return fmt.Errorf("%w: %s", store.ErrMissingConflictColumn, column)
		}
	}
	return nil
}

func buildInsertSQL(table string, columns []string, rows []store.Row, conflictTarget []string) (string, []any) {
	quoted := make([]string, 0, len(columns))
	for _, column := range columns {
		quoted = append(quoted, quoteIdentifier(column))
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(quoteIdentifier(table))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(quoted, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j, column := range columns {
			if j > 0 {
				sb.WriteString(", ")
			}
			args = append(args, store.NormalizeValue(row[column]))
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(len(args)))
		}
		sb.WriteString(")")
	}

	if len(conflictTarget) > 0 {
		target := make(map[string]struct{}, len(conflictTarget))
		quotedTarget := make([]string, 0, len(conflictTarget))
		for _, column := range conflictTarget {
			target[column] = struct{}{}
			quotedTarget = append(quotedTarget, quoteIdentifier(column))
		}

		var updates []string
		for _, column := range columns {
			if _, ok := target[column]; ok {
				continue
			}
			q := quoteIdentifier(column)
			updates = append(updates, q+" = EXCLUDED."+q)
		}

		sb.WriteString(" ON CONFLICT (")
		sb.WriteString(strings.Join(quotedTarget, ", "))
		if len(updates) == 0 {
			sb.WriteString(") DO NOTHING")
		} else {
			sb.WriteString(") DO UPDATE SET ")
			sb.WriteString(strings.Join(updates, ", "))
		}
	}

	return sb.String(), args
}

func quoteIdentifier(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
