package internal

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

const (
	defaultDeadlockRetryCount     = 2
	defaultDeadlockInitialBackoff = 100 * time.Millisecond
	defaultDeadlockMaxBackoff     = 1 * time.Second
)

// deadlockRetry runs a unit of work in one store transaction and re-runs all
// of it when the store reports a transient write conflict.
type deadlockRetry struct {
	store          store.Store
	instrumenter   Instrumenter
	retryCount     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

func newDeadlockRetry(s store.Store, instrumenter Instrumenter, retryCount int, initialBackoff, maxBackoff time.Duration) *deadlockRetry {
	return &deadlockRetry{
		store:          s,
		instrumenter:   instrumenter,
		retryCount:     retryCount,
		initialBackoff: initialBackoff,
		maxBackoff:     maxBackoff,
	}
}

func (d *deadlockRetry) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.initialBackoff
	b.MaxInterval = d.maxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(d.retryCount)), ctx)
}

// wrap executes fn inside a transaction. Contexts cancelled during a backoff
// wait stop further attempts; a running attempt is never interrupted here.
func (d *deadlockRetry) wrap(ctx context.Context, tags []string, fn func(ctx context.Context, tx store.Tx) error) error {
	attempts := 0
	var lastErr error

	operation := func() error {
		attempts++
		lastErr = d.attempt(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !d.store.IsTransientConflict(lastErr) {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}

	notify := func(err error, wait time.Duration) {
		remaining := d.retryCount - attempts + 1
		logger.Warnf("Deadlock encountered when trying to execute query. Retrying in %s. %d attempt(s) remaining, err: %s", wait, remaining, err.Error())
		d.instrumenter.Increment(ctx, DeadlockMetric, tags)
	}

	err := backoff.RetryNotify(operation, d.newBackOff(ctx), notify)
	if err == nil {
		return nil
	}
	if lastErr != nil && d.store.IsTransientConflict(lastErr) {
		return newTransientConflictErr(lastErr, attempts)
	}
	return err
}

func (d *deadlockRetry) attempt(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	tx, err := d.store.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		d.rollback(ctx, tx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		d.rollback(ctx, tx)
		return err
	}
	return nil
}

func (d *deadlockRetry) rollback(ctx context.Context, tx store.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.Errorf("transaction rollback err: %s", err.Error())
	}
}
