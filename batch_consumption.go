package recordsink

import (
	"github.com/aykanferhat/go-kafka-record-sink/internal"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

type (
	Payload                = internal.Payload
	BatchMetadata          = internal.BatchMetadata
	BatchConsumption       = internal.BatchConsumption
	BatchConsumptionOption = internal.BatchConsumptionOption
	LogicalKey             = internal.LogicalKey
	KeyDecoder             = internal.KeyDecoder
	KeyDecoderFunc         = internal.KeyDecoderFunc
	AttributeExtractor     = internal.AttributeExtractor
	AttributeExtractorFunc = internal.AttributeExtractorFunc
	Row                    = store.Row
	Store                  = store.Store
)

const (
	PlainKeyDecoder      = internal.PlainKeyDecoderType
	JSONKeyDecoder       = internal.JSONKeyDecoderType
	FieldKeyDecoder      = internal.FieldKeyDecoderType
	AbsentKeyIndependent = internal.AbsentKeyIndependent
	AbsentKeyShared      = internal.AbsentKeyShared
)

// NewBatchConsumption applies batches to s without a Kafka consumer, for
// callers that already own their consume loop.
func NewBatchConsumption(config *BatchConsumerConfig, s Store, opts ...BatchConsumptionOption) (*BatchConsumption, error) {
	return internal.NewBatchConsumption(config, s, opts...)
}

func WithAttributeExtractor(extractor AttributeExtractor) BatchConsumptionOption {
	return internal.WithAttributeExtractor(extractor)
}

func WithKeyDecoder(decoder KeyDecoder) BatchConsumptionOption {
	return internal.WithKeyDecoder(decoder)
}

func WithInstrumenter(instrumenter Instrumenter) BatchConsumptionOption {
	return internal.WithInstrumenter(instrumenter)
}
