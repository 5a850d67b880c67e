package internal

import (
	"context"
)

// BatchConsumer applies a decoded batch. *BatchConsumption implements it.
type BatchConsumer interface {
	ConsumeBatch(ctx context.Context, payloads []Payload, metadata BatchMetadata) error
}
