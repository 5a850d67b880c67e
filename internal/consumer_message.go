package internal

import (
	"github.com/aykanferhat/go-kafka-record-sink/pkg/json"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

type ConsumerMessage struct {
	*kafka.ConsumerMessage
	GroupID string
}

// decodePayload decodes a JSON object value. An empty value is a tombstone.
func decodePayload(message *ConsumerMessage) (Payload, error) {
	if len(message.Value) == 0 {
		return nil, nil
	}
	decoded, err := json.UnmarshalAny(message.Value)
	if err != nil {
		return nil, newDecodeErr(err, "payload could not be decoded, topic: %s, partition: %d, offset: %d", message.Topic, message.Partition, message.Offset)
	}
	if decoded == nil {
		return nil, nil
	}
	payload, ok := decoded.(map[string]any)
	if !ok {
		return nil, newDecodeErr(nil, "payload is not a JSON object, topic: %s, partition: %d, offset: %d", message.Topic, message.Partition, message.Offset)
	}
	return payload, nil
}

// toBatch decodes messages of a single partition into the payloads and
// metadata of one batch, preserving their order.
func toBatch(messages []*ConsumerMessage) ([]Payload, BatchMetadata, error) {
	payloads := make([]Payload, 0, len(messages))
	metadata := BatchMetadata{Keys: make([][]byte, 0, len(messages))}
	for _, message := range messages {
		payload, err := decodePayload(message)
		if err != nil {
			return nil, BatchMetadata{}, err
		}
		payloads = append(payloads, payload)
		metadata.Keys = append(metadata.Keys, message.Key)
	}
	if len(messages) > 0 {
		metadata.Topic = messages[0].Topic
	}
	return payloads, metadata, nil
}

func lastOffset(messages []*ConsumerMessage) int64 {
	offset := int64(-1)
	for _, message := range messages {
		if message.Offset > offset {
			offset = message.Offset
		}
	}
	return offset
}
