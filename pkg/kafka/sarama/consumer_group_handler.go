package sarama

import (
	"github.com/IBM/sarama"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/handler"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/message"
)

type consumerGroupCoreHandler struct {
	messageHandler        handler.MessageHandler
	consumerStatusHandler handler.ConsumerStatusHandler
}

func NewConsumerGroupHandler(messageHandler handler.MessageHandler, consumerStatusHandler handler.ConsumerStatusHandler) ConsumerGroupHandler {
	return &consumerGroupCoreHandler{
		messageHandler:        messageHandler,
		consumerStatusHandler: consumerStatusHandler,
	}
}

func (handler *consumerGroupCoreHandler) Setup(session sarama.ConsumerGroupSession) error {
	for topic, partitions := range session.Claims() {
		for _, partition := range partitions {
			handler.consumerStatusHandler(topic, partition, true)
		}
	}
	return nil
}

// ConsumeClaim returns only after the partition handler has returned, so a
// batch in flight is never marked on a session that has already ended.
func (handler *consumerGroupCoreHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	messagesChan := make(chan *message.ConsumerMessage)
	handled := make(chan struct{})
	commitFunc := func(topic string, partition int32, offset int64) {
		session.MarkOffset(topic, partition, offset+1, "")
	}
	go func() {
		defer close(handled)
		handler.messageHandler(ctx, claim.Topic(), claim.Partition(), messagesChan, commitFunc)
	}()
	defer func() {
		close(messagesChan)
		<-handled
	}()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if msg == nil {
				continue
			}
			select {
			case messagesChan <- toConsumerMessage(msg):
			case <-ctx.Done():
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (handler *consumerGroupCoreHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	for topic, partitions := range session.Claims() {
		for _, partition := range partitions {
			handler.consumerStatusHandler(topic, partition, false)
		}
	}
	return nil
}

func toConsumerMessage(msg *sarama.ConsumerMessage) *message.ConsumerMessage {
	headers := make([]message.Header, 0, len(msg.Headers))
	for _, hdr := range msg.Headers {
		if hdr == nil {
			continue
		}
		headers = append(headers, message.Header{Key: hdr.Key, Value: hdr.Value})
	}
	return &message.ConsumerMessage{
		Headers:   headers,
		Timestamp: msg.Timestamp,
		Key:       msg.Key,
		Value:     msg.Value,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}
}
