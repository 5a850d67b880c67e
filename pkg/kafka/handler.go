package kafka

import "github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/handler"

type (
	MessageHandler        = handler.MessageHandler
	ConsumerStatusHandler = handler.ConsumerStatusHandler
	CommitMessageFunc     = handler.CommitMessageFunc
)
