package internal

import (
	"context"
)

type BatchInterceptor interface {
	OnConsume(ctx context.Context, messages []*ConsumerMessage) context.Context
}
