package kafka

import (
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/message"
)

type (
	ConsumerMessage = message.ConsumerMessage
	Header          = message.Header
)
