package json

import (
	"bytes"

	"github.com/json-iterator/go"
)

var customJSON = NewJSON()

func Marshal(obj interface{}) ([]byte, error) {
	return customJSON.Marshal(obj)
}

func Unmarshal(data []byte, obj interface{}) error {
	return customJSON.Unmarshal(data, obj)
}

// UnmarshalAny decodes data into a generic value. Numbers are kept as
// json.Number, objects become map[string]any.
func UnmarshalAny(data []byte) (any, error) {
	return customJSON.UnmarshalAny(data)
}

type JSON struct {
	iter jsoniter.API
}

func NewJSON() *JSON {
	return &JSON{
		iter: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			UseNumber:              true,
		}.Froze(),
	}
}

func (j *JSON) Unmarshal(data []byte, obj interface{}) error {
	return j.iter.Unmarshal(data, obj)
}

func (j *JSON) Marshal(obj interface{}) ([]byte, error) {
	return j.iter.Marshal(obj)
}

func (j *JSON) UnmarshalAny(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var value any
	if err := j.iter.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}
