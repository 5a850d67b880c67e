package handler

import (
	"context"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/message"
)

type (
	// MessageHandler consumes one claimed partition. ctx is cancelled when the
	// claim is revoked and messageChan is closed after that.
	MessageHandler        = func(ctx context.Context, topic string, partition int32, messageChan <-chan *message.ConsumerMessage, commitFunc CommitMessageFunc)
	ConsumerStatusHandler = func(topic string, partition int32, status bool)
	CommitMessageFunc     func(topic string, partition int32, offset int64)
)
