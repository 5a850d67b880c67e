package internal

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-uuid"

	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

// batchMessageListener buffers the messages of one claimed partition and
// applies them as batches, in offset order, one batch at a time.
type batchMessageListener struct {
	processedMessageListener     ProcessedMessageListener
	processBufferedMessageTicker *time.Ticker
	initializedContext           ConsumerGroupInitializeContext
	topic                        string
	processMessages              []*ConsumerMessage
	partition                    int32
}

func newBatchMessageListener(
	topic string,
	partition int32,
	initializedContext ConsumerGroupInitializeContext,
	processedMessageListener ProcessedMessageListener,
) *batchMessageListener {
	return &batchMessageListener{
		topic:                    topic,
		partition:                partition,
		initializedContext:       initializedContext,
		processedMessageListener: processedMessageListener,
		processMessages:          make([]*ConsumerMessage, 0, initializedContext.ConsumerGroupConfig.BatchSize),
	}
}

// Listen returns when messageChan is closed or ctx is done. Buffered messages
// that were never applied are dropped; their offsets are not committed, so
// the next owner of the partition receives them again.
func (listener *batchMessageListener) Listen(ctx context.Context, messageChan <-chan *kafka.ConsumerMessage, onMessage func(*ConsumerMessage)) {
	config := listener.initializedContext.ConsumerGroupConfig
	listener.processBufferedMessageTicker = time.NewTicker(config.ConsumeBatchListenerLatency)
	defer listener.processBufferedMessageTicker.Stop()
	for {
		select {
		case msg, ok := <-messageChan:
			if !ok {
				return
			}
			message := &ConsumerMessage{ConsumerMessage: msg, GroupID: config.GroupID}
			if onMessage != nil {
				onMessage(message)
			}
			listener.processMessages = append(listener.processMessages, message)
			if config.BatchSize > len(listener.processMessages) {
				continue
			}
			listener.processBufferedMessageTicker.Reset(config.ConsumeBatchListenerLatency)
			listener.processBufferedMessages(ctx)
		case <-listener.processBufferedMessageTicker.C:
			if len(listener.processMessages) == 0 {
				continue
			}
			listener.processBufferedMessages(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// processBufferedMessages redelivers the buffered batch until it is applied
// or ctx is done. Offsets are marked only for an applied batch.
func (listener *batchMessageListener) processBufferedMessages(ctx context.Context) {
	messages := listener.processMessages
	listener.processMessages = make([]*ConsumerMessage, 0, listener.initializedContext.ConsumerGroupConfig.BatchSize)

	batchID, _ := uuid.GenerateUUID()
	batchCtx := listener.batchContext(ctx, batchID, messages)
	batchCtx = listener.Intercept(batchCtx, messages)

	started := time.Now()
	attempts := 0
	operation := func() error {
		attempts++
		return listener.consume(batchCtx, messages)
	}
	notify := func(err error, wait time.Duration) {
		if isPoisonBatch(err) {
			logger.Errorf("poison batch, partition is stalled until it is fixed, redelivering in %s, batchId: %s, topic: %s, partition: %d, offset: %d, attempt: %d, err: %s",
				wait, batchID, listener.topic, listener.partition, messages[0].Offset, attempts, err.Error())
			return
		}
		logger.Errorf("batch failed, redelivering in %s, batchId: %s, topic: %s, partition: %d, offset: %d, attempt: %d, err: %s",
			wait, batchID, listener.topic, listener.partition, messages[0].Offset, attempts, err.Error())
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(listener.newBackOff(), ctx), notify); err != nil {
		logger.Warnf("batch abandoned, batchId: %s, topic: %s, partition: %d, offset: %d, attempts: %d, err: %s",
			batchID, listener.topic, listener.partition, messages[0].Offset, attempts, err.Error())
		return
	}
	listener.processedMessageListener.Publish(newProcessedBatch(batchID, messages, attempts, time.Since(started)))
}

func (listener *batchMessageListener) consume(ctx context.Context, messages []*ConsumerMessage) error {
	payloads, metadata, err := toBatch(messages)
	if err == nil {
		err = processBatch(ctx, listener.initializedContext.BatchConsumer, payloads, metadata, listener.initializedContext.ConsumerGroupConfig.MaxProcessingTime)
	}
	if err != nil {
		for _, interceptor := range listener.initializedContext.BatchErrorInterceptors {
			interceptor.OnError(ctx, messages, err)
		}
	}
	return err
}

// isPoisonBatch reports whether redelivering the batch unchanged cannot succeed.
func isPoisonBatch(err error) bool {
	return IsDecodeError(err) || IsConfigurationError(err)
}

func (listener *batchMessageListener) newBackOff() backoff.BackOff {
	config := listener.initializedContext.ConsumerGroupConfig
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = config.FailedBatchBackoff
	b.MaxInterval = config.FailedBatchMaxBackoff
	b.MaxElapsedTime = 0
	return b
}

func (listener *batchMessageListener) Intercept(ctx context.Context, messages []*ConsumerMessage) context.Context {
	for _, interceptor := range listener.initializedContext.BatchInterceptors {
		ctx = interceptor.OnConsume(ctx, messages)
	}
	return ctx
}

func (listener *batchMessageListener) batchContext(ctx context.Context, batchID string, messages []*ConsumerMessage) context.Context {
	ctx = common.AddToContext(ctx, common.GroupID, listener.initializedContext.ConsumerGroupConfig.GroupID)
	ctx = common.AddToContext(ctx, common.Topic, listener.topic)
	ctx = common.AddToContext(ctx, common.Partition, listener.partition)
	ctx = common.AddToContext(ctx, common.BatchID, batchID)
	ctx = common.AddToContext(ctx, common.BatchSize, len(messages))
	return common.AddToContext(ctx, common.MessageConsumedTimestamp, messages[len(messages)-1].Timestamp)
}
