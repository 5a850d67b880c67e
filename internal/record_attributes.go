package internal

import (
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

// AttributeExtractor builds the column values of a live message. Returning
// false drops the message from the upsert set.
type AttributeExtractor interface {
	RecordAttributes(payload Payload, key []byte) (store.Row, bool)
}

type AttributeExtractorFunc func(payload Payload, key []byte) (store.Row, bool)

func (f AttributeExtractorFunc) RecordAttributes(payload Payload, key []byte) (store.Row, bool) {
	return f(payload, key)
}

// DefaultAttributeExtractor copies the payload, renaming fields that appear
// in FieldColumns.
type DefaultAttributeExtractor struct {
	FieldColumns map[string]string
}

func (e DefaultAttributeExtractor) RecordAttributes(payload Payload, _ []byte) (store.Row, bool) {
	row := make(store.Row, len(payload))
	for field, value := range payload {
		if column, ok := e.FieldColumns[field]; ok {
			row[column] = value
			continue
		}
		row[field] = value
	}
	return row, true
}
