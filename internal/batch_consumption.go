package internal

import (
	"context"

	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

// BatchMetadata accompanies a batch of payloads. Keys[i] is the encoded key
// of payloads[i].
type BatchMetadata struct {
	Topic string
	Keys  [][]byte
}

// BatchConsumption applies batches of decoded messages to a record store,
// one transaction per batch.
type BatchConsumption struct {
	config       *BatchConsumerConfig
	resolver     *KeyResolver
	writer       *bulkWriter
	retry        *deadlockRetry
	instrumenter Instrumenter
}

type BatchConsumptionOption func(*batchConsumptionOptions)

type batchConsumptionOptions struct {
	extractor    AttributeExtractor
	instrumenter Instrumenter
	keyDecoder   KeyDecoder
}

func WithAttributeExtractor(extractor AttributeExtractor) BatchConsumptionOption {
	return func(o *batchConsumptionOptions) {
		o.extractor = extractor
	}
}

func WithInstrumenter(instrumenter Instrumenter) BatchConsumptionOption {
	return func(o *batchConsumptionOptions) {
		o.instrumenter = instrumenter
	}
}

// WithKeyDecoder replaces the decoder selected by the config.
func WithKeyDecoder(decoder KeyDecoder) BatchConsumptionOption {
	return func(o *batchConsumptionOptions) {
		o.keyDecoder = decoder
	}
}

func NewBatchConsumption(config *BatchConsumerConfig, s store.Store, opts ...BatchConsumptionOption) (*BatchConsumption, error) {
	if config == nil {
		return nil, newConfigurationErr("batch consumer config is required")
	}
	if s == nil {
		return nil, newConfigurationErr("record store is required, sink: %s", config.Name)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	o := &batchConsumptionOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.extractor == nil {
		o.extractor = DefaultAttributeExtractor{FieldColumns: config.FieldColumnMap()}
	}
	if o.instrumenter == nil {
		o.instrumenter = NoopInstrumenter{}
	}
	if o.keyDecoder == nil {
		decoder, err := NewKeyDecoder(config)
		if err != nil {
			return nil, err
		}
		o.keyDecoder = decoder
	}

	return &BatchConsumption{
		config:       config,
		resolver:     NewKeyResolver(o.keyDecoder, config.PrimaryKey, config.KeyColumnMap(), config.AbsentKeyPolicy),
		writer:       newBulkWriter(config.Table, config.PrimaryKey, o.extractor),
		retry:        newDeadlockRetry(s, o.instrumenter, config.DeadlockRetryCount, config.DeadlockInitialBackoff, config.DeadlockMaxBackoff),
		instrumenter: o.instrumenter,
	}, nil
}

// ConsumeBatch applies the batch atomically. A nil error means the batch is
// durable and its offsets may be committed.
func (b *BatchConsumption) ConsumeBatch(ctx context.Context, payloads []Payload, metadata BatchMetadata) error {
	tags := []string{common.Tag("topic", metadata.Topic)}
	ctx, endFunc := b.instrumenter.Start(ctx, ConsumeBatchEvent, tags)
	defer endFunc()

	if err := b.consumeBatch(ctx, tags, payloads, metadata); err != nil {
		b.instrumenter.OnError(ctx, ConsumeBatchEvent, tags, err)
		return err
	}
	return nil
}

func (b *BatchConsumption) consumeBatch(ctx context.Context, tags []string, payloads []Payload, metadata BatchMetadata) error {
	if len(payloads) != len(metadata.Keys) {
		return newConfigurationErr("batch has %d payloads but %d keys, topic: %s", len(payloads), len(metadata.Keys), metadata.Topic)
	}
	if len(payloads) == 0 {
		return nil
	}

	messages := make([]*Message, 0, len(payloads))
	for i, payload := range payloads {
		messages = append(messages, NewMessage(payload, metadata.Keys[i]))
	}

	var resolved []*ResolvedMessage
	if b.config.NoKeys {
		resolved = Unresolved(messages)
	} else {
		var err error
		if resolved, err = b.resolver.Resolve(messages); err != nil {
			return err
		}
	}

	return b.retry.wrap(ctx, tags, func(ctx context.Context, tx store.Tx) error {
		if b.config.NoKeys {
			return b.writer.updateDatabase(ctx, tx, resolved)
		}
		if b.config.Compacted {
			return b.writer.updateDatabase(ctx, tx, CompactMessages(resolved, b.resolver.Policy()))
		}
		return b.uncompactedUpdate(ctx, tx, resolved)
	})
}

func (b *BatchConsumption) uncompactedUpdate(ctx context.Context, tx store.Tx, messages []*ResolvedMessage) error {
	for _, slice := range SliceMessages(messages) {
		if err := b.writer.updateDatabase(ctx, tx, slice); err != nil {
			return err
		}
	}
	return nil
}

// RecordKey exposes key resolution for callers that need the store identity
// of an encoded key.
func (b *BatchConsumption) RecordKey(key []byte) (LogicalKey, error) {
	return b.resolver.RecordKey(key)
}

func (b *BatchConsumption) Config() *BatchConsumerConfig {
	return b.config
}
