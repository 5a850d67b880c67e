package internal

import "github.com/aykanferhat/go-kafka-record-sink/pkg/store"

// ConsumerGroupSinks binds a consumer group config to the record store its
// batches are written to. Nil optional fields use the defaults.
type ConsumerGroupSinks struct {
	Store                  store.Store
	AttributeExtractor     AttributeExtractor
	KeyDecoder             KeyDecoder
	Instrumenter           Instrumenter
	BatchErrorInterceptors []BatchErrorInterceptor
	ConfigName             string
	BatchInterceptors      []BatchInterceptor
}

func (s *ConsumerGroupSinks) BatchConsumptionOptions() []BatchConsumptionOption {
	var opts []BatchConsumptionOption
	if s.AttributeExtractor != nil {
		opts = append(opts, WithAttributeExtractor(s.AttributeExtractor))
	}
	if s.KeyDecoder != nil {
		opts = append(opts, WithKeyDecoder(s.KeyDecoder))
	}
	if s.Instrumenter != nil {
		opts = append(opts, WithInstrumenter(s.Instrumenter))
	}
	return opts
}
