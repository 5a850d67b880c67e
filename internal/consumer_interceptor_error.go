package internal

import (
	"context"
)

// BatchErrorInterceptor is called after every failed attempt of a batch,
// before it is redelivered.
type BatchErrorInterceptor interface {
	OnError(ctx context.Context, messages []*ConsumerMessage, err error)
}
