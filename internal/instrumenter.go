package internal

import (
	"context"
	"strings"
	"time"

	"github.com/aykanferhat/go-kafka-record-sink/common"
)

type EndFunc = common.EndFunc

const (
	ConsumeBatchEvent = "ar_consumer.consume_batch"
	DeadlockMetric    = "deadlock"
)

// Instrumenter observes batch consumption. It never alters its outcome.
type Instrumenter interface {
	Start(ctx context.Context, event string, tags []string) (context.Context, EndFunc)
	OnError(ctx context.Context, event string, tags []string, err error)
	Increment(ctx context.Context, metric string, tags []string)
}

type NoopInstrumenter struct{}

func (NoopInstrumenter) Start(ctx context.Context, _ string, _ []string) (context.Context, EndFunc) {
	return ctx, func() {}
}

func (NoopInstrumenter) OnError(context.Context, string, []string, error) {}

func (NoopInstrumenter) Increment(context.Context, string, []string) {}

// LogInstrumenter reports events through the package logger.
type LogInstrumenter struct{}

func (LogInstrumenter) Start(ctx context.Context, event string, tags []string) (context.Context, EndFunc) {
	started := time.Now()
	batchID := common.GetFromContext[string](ctx, common.BatchID)
	logger.Debugf("%s started, batchId: %s, tags: %s", event, batchID, strings.Join(tags, ","))
	return ctx, func() {
		logger.Debugf("%s finished in %s, batchId: %s, tags: %s", event, time.Since(started), batchID, strings.Join(tags, ","))
	}
}

func (LogInstrumenter) OnError(ctx context.Context, event string, tags []string, err error) {
	batchID := common.GetFromContext[string](ctx, common.BatchID)
	logger.Errorf("%s failed, batchId: %s, tags: %s, err: %s", event, batchID, strings.Join(tags, ","), err.Error())
}

func (LogInstrumenter) Increment(ctx context.Context, metric string, tags []string) {
	batchID := common.GetFromContext[string](ctx, common.BatchID)
	logger.Infof("%s incremented, batchId: %s, tags: %s", metric, batchID, strings.Join(tags, ","))
}

type multiInstrumenter []Instrumenter

// NewMultiInstrumenter fans events out to every instrumenter in order.
func NewMultiInstrumenter(instrumenters ...Instrumenter) Instrumenter {
	switch len(instrumenters) {
	case 0:
		return NoopInstrumenter{}
	case 1:
		return instrumenters[0]
	default:
		return multiInstrumenter(instrumenters)
	}
}

func (m multiInstrumenter) Start(ctx context.Context, event string, tags []string) (context.Context, EndFunc) {
	endFunctions := make([]EndFunc, 0, len(m))
	for _, instrumenter := range m {
		var endFunc EndFunc
		ctx, endFunc = instrumenter.Start(ctx, event, tags)
		endFunctions = append(endFunctions, endFunc)
	}
	return ctx, func() {
		for i := len(endFunctions) - 1; i >= 0; i-- {
			endFunctions[i]()
		}
	}
}

func (m multiInstrumenter) OnError(ctx context.Context, event string, tags []string, err error) {
	for _, instrumenter := range m {
		instrumenter.OnError(ctx, event, tags, err)
	}
}

func (m multiInstrumenter) Increment(ctx context.Context, metric string, tags []string) {
	for _, instrumenter := range m {
		instrumenter.Increment(ctx, metric, tags)
	}
}
