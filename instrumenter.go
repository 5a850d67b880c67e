package recordsink

import (
	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/internal"
)

type (
	EndFunc          = common.EndFunc
	Instrumenter     = internal.Instrumenter
	NoopInstrumenter = internal.NoopInstrumenter
	LogInstrumenter  = internal.LogInstrumenter
)

func NewMultiInstrumenter(instrumenters ...Instrumenter) Instrumenter {
	return internal.NewMultiInstrumenter(instrumenters...)
}
