package internal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// processBatch runs one attempt of a batch bounded by maxProcessingTime. It
// returns only once the attempt has finished, so attempts never overlap; the
// store sees the cancelled context and rolls the transaction back.
func processBatch(ctx context.Context, consumer BatchConsumer, payloads []Payload, metadata BatchMetadata, maxProcessingTime time.Duration) error {
	contextWithTimeout, cancel := context.WithTimeout(ctx, maxProcessingTime)
	defer cancel()
	err := consumer.ConsumeBatch(contextWithTimeout, payloads, metadata)
	if err != nil && ctx.Err() == nil && errors.Is(contextWithTimeout.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("batch was not applied within %s: %w", maxProcessingTime, err)
	}
	return err
}

func getKey(topic string, partition int32) string {
	return fmt.Sprintf("%s_%d", topic, partition)
}
