package internal

import (
	"github.com/aykanferhat/go-kafka-record-sink/pkg/json"
)

type KeyDecoderType string

const (
	PlainKeyDecoderType KeyDecoderType = "plain"
	JSONKeyDecoderType  KeyDecoderType = "json"
	FieldKeyDecoderType KeyDecoderType = "field"
)

// KeyDecoder turns encoded key bytes into nil (absent), a scalar, or a
// map[string]any of components.
type KeyDecoder interface {
	DecodeKey(key []byte) (any, error)
}

type KeyDecoderFunc func(key []byte) (any, error)

func (f KeyDecoderFunc) DecodeKey(key []byte) (any, error) {
	return f(key)
}

// PlainKeyDecoder uses the key bytes as a string.
type PlainKeyDecoder struct{}

func (PlainKeyDecoder) DecodeKey(key []byte) (any, error) {
	if len(key) == 0 {
		return nil, nil
	}
	return string(key), nil
}

// JSONKeyDecoder decodes JSON objects and scalars. Numbers stay json.Number.
type JSONKeyDecoder struct{}

func (JSONKeyDecoder) DecodeKey(key []byte) (any, error) {
	value, err := json.UnmarshalAny(key)
	if err != nil {
		return nil, err
	}
	switch value.(type) {
	case []any:
		return nil, NewErr("array keys are not supported")
	default:
		return value, nil
	}
}

// FieldKeyDecoder decodes a JSON object key and keeps a single field of it.
type FieldKeyDecoder struct {
	Field string
}

func (d FieldKeyDecoder) DecodeKey(key []byte) (any, error) {
	value, err := json.UnmarshalAny(key)
	if err != nil || value == nil {
		return nil, err
	}
	object, ok := value.(map[string]any)
	if !ok {
		return nil, NewErrWithArgs("key is not an object, cannot read field %s", d.Field)
	}
	return object[d.Field], nil
}

func NewKeyDecoder(config *BatchConsumerConfig) (KeyDecoder, error) {
	switch config.KeyDecoder {
	case PlainKeyDecoderType:
		return PlainKeyDecoder{}, nil
	case JSONKeyDecoderType, "":
		return JSONKeyDecoder{}, nil
	case FieldKeyDecoderType:
		if len(config.KeyField) == 0 {
			return nil, newConfigurationErr("key decoder %s requires 'keyField', sink: %s", config.KeyDecoder, config.Name)
		}
		return FieldKeyDecoder{Field: config.KeyField}, nil
	default:
		return nil, newConfigurationErr("unknown key decoder %s, sink: %s", config.KeyDecoder, config.Name)
	}
}
