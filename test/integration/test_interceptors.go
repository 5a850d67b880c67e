package integration

import (
	"context"
	"sync/atomic"

	recordsink "github.com/aykanferhat/go-kafka-record-sink"
)

type countingErrorInterceptor struct {
	errors atomic.Int64
}

func (c *countingErrorInterceptor) OnError(context.Context, []*recordsink.ConsumerMessage, error) {
	c.errors.Add(1)
}

func (c *countingErrorInterceptor) count() int64 {
	return c.errors.Load()
}
