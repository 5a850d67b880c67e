package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store/memory"
)

var testTags = []string{"topic:widgets"}

func Test_DeadlockRetry_ShouldCommitOnSuccess(t *testing.T) {
	// Given
	ctx := context.Background()
	s := memory.New()
	retry := newDeadlockRetry(s, NoopInstrumenter{}, 2, time.Millisecond, time.Millisecond)

	// When
	err := retry.wrap(ctx, testTags, func(ctx context.Context, tx store.Tx) error {
		return tx.BulkUpsert(ctx, "widgets", []store.Row{{"id": "A"}}, []string{"id"})
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Begins())
	assert.Equal(t, int64(1), s.Commits())
	assert.Len(t, s.Rows("widgets"), 1)
}

func Test_DeadlockRetry_ShouldRetryWholeUnitOnConflict(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	// Given
	ctx := context.Background()
	failures := 2
	s := memory.New().WithFault(func(op memory.Operation) error {
		if op.Type == memory.OperationCommit && failures > 0 {
			failures--
			return memory.ErrConflict
		}
		return nil
	})
	instrumenter := NewMockInstrumenter(controller)
	instrumenter.EXPECT().Increment(gomock.Any(), DeadlockMetric, testTags).Times(2)
	retry := newDeadlockRetry(s, instrumenter, 2, time.Millisecond, time.Millisecond)
	calls := 0

	// When
	err := retry.wrap(ctx, testTags, func(ctx context.Context, tx store.Tx) error {
		calls++
		return tx.BulkUpsert(ctx, "widgets", []store.Row{{"id": "A", "n": calls}}, []string{"id"})
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, int64(1), s.Commits())
	assert.Equal(t, int64(2), s.Rollbacks())
	assert.Equal(t, []store.Row{{"id": "A", "n": 3}}, s.Rows("widgets"))
}

func Test_DeadlockRetry_ShouldFailAfterRetriesAreExhausted(t *testing.T) {
	ctx := context.Background()
	s := memory.New().WithFault(func(op memory.Operation) error {
		if op.Type == memory.OperationUpsert {
			return memory.ErrConflict
		}
		return nil
	})
	retry := newDeadlockRetry(s, NoopInstrumenter{}, 2, time.Millisecond, time.Millisecond)
	calls := 0

	err := retry.wrap(ctx, testTags, func(ctx context.Context, tx store.Tx) error {
		calls++
		return tx.BulkUpsert(ctx, "widgets", []store.Row{{"id": "A"}}, []string{"id"})
	})

	assert.Equal(t, 3, calls)
	assert.True(t, IsTransientWriteConflict(err))
	assert.ErrorIs(t, err, memory.ErrConflict)
	assert.Equal(t, int64(3), s.Rollbacks())
	assert.Empty(t, s.Rows("widgets"))
}

func Test_DeadlockRetry_ShouldNotRetryOtherErrors(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	ctx := context.Background()
	storeErr := errors.New("constraint violation")
	tx := NewMockTx(controller)
	s := NewMockStore(controller)
	s.EXPECT().Begin(ctx).Return(tx, nil).Times(1)
	s.EXPECT().IsTransientConflict(storeErr).Return(false).AnyTimes()
	tx.EXPECT().Rollback(ctx).Return(nil).Times(1)
	retry := newDeadlockRetry(s, NoopInstrumenter{}, 2, time.Millisecond, time.Millisecond)

	err := retry.wrap(ctx, testTags, func(context.Context, store.Tx) error {
		return storeErr
	})

	assert.Same(t, storeErr, err)
}

func Test_DeadlockRetry_ShouldNotRetryWhenDisabled(t *testing.T) {
	ctx := context.Background()
	s := memory.New().WithFault(func(op memory.Operation) error {
		if op.Type == memory.OperationCommit {
			return memory.ErrConflict
		}
		return nil
	})
	retry := newDeadlockRetry(s, NoopInstrumenter{}, 0, time.Millisecond, time.Millisecond)

	err := retry.wrap(ctx, testTags, func(context.Context, store.Tx) error { return nil })

	assert.True(t, IsTransientWriteConflict(err))
	assert.Equal(t, int64(1), s.Begins())
}

func Test_DeadlockRetry_ShouldReturnBeginError(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	ctx := context.Background()
	beginErr := errors.New("connection refused")
	s := NewMockStore(controller)
	s.EXPECT().Begin(ctx).Return(nil, beginErr)
	s.EXPECT().IsTransientConflict(beginErr).Return(false).AnyTimes()
	retry := newDeadlockRetry(s, NoopInstrumenter{}, 2, time.Millisecond, time.Millisecond)

	err := retry.wrap(ctx, testTags, func(context.Context, store.Tx) error {
		t.Fatal("unit of work must not run without a transaction")
		return nil
	})

	assert.Same(t, beginErr, err)
}

func Test_DeadlockRetry_ShouldStopWaitingWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := memory.New().WithFault(func(op memory.Operation) error {
		if op.Type == memory.OperationCommit {
			cancel()
			return memory.ErrConflict
		}
		return nil
	})
	retry := newDeadlockRetry(s, NoopInstrumenter{}, 5, time.Hour, time.Hour)

	err := retry.wrap(ctx, testTags, func(context.Context, store.Tx) error { return nil })

	assert.True(t, IsTransientWriteConflict(err))
	assert.Equal(t, int64(1), s.Begins())
}
