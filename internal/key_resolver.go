package internal

import (
	"strconv"
)

type AbsentKeyPolicy string

const (
	// AbsentKeyIndependent treats every message without a key as unrelated
	// to every other message.
	AbsentKeyIndependent AbsentKeyPolicy = "independent"
	// AbsentKeyShared treats all messages without a key as the same record.
	AbsentKeyShared AbsentKeyPolicy = "shared"
)

const absentIdentity = "\x00absent"

type KeyResolver struct {
	decoder    KeyDecoder
	keyColumns map[string]string
	primaryKey string
	policy     AbsentKeyPolicy
}

func NewKeyResolver(decoder KeyDecoder, primaryKey string, keyColumns map[string]string, policy AbsentKeyPolicy) *KeyResolver {
	if len(policy) == 0 {
		policy = AbsentKeyIndependent
	}
	return &KeyResolver{
		decoder:    decoder,
		keyColumns: keyColumns,
		primaryKey: primaryKey,
		policy:     policy,
	}
}

// RecordKey decodes key into the attributes identifying its record: nothing
// for an absent key, mapped components for a composite key, and the primary
// key for a scalar.
func (r *KeyResolver) RecordKey(key []byte) (LogicalKey, error) {
	if len(key) == 0 {
		return LogicalKey{}, nil
	}
	decoded, err := r.decoder.DecodeKey(key)
	if err != nil {
		return nil, newDecodeErr(err, "failed to decode key %q", key)
	}
	switch value := decoded.(type) {
	case nil:
		return LogicalKey{}, nil
	case map[string]any:
		logicalKey := make(LogicalKey, len(value))
		for component, v := range value {
			switch v.(type) {
			case map[string]any, []any:
				return nil, newDecodeErr(nil, "key component %s of %q is not a scalar", component, key)
			}
			column, ok := r.keyColumns[component]
			if !ok {
				column = component
			}
			logicalKey[column] = v
		}
		return logicalKey, nil
	default:
		return LogicalKey{r.primaryKey: value}, nil
	}
}

// Resolve resolves every message key. The first decode failure aborts.
func (r *KeyResolver) Resolve(messages []*Message) ([]*ResolvedMessage, error) {
	resolved := make([]*ResolvedMessage, 0, len(messages))
	for i, message := range messages {
		logicalKey, err := r.RecordKey(message.Key)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, &ResolvedMessage{
			Message:    message,
			LogicalKey: logicalKey,
			Identity:   r.identity(logicalKey, i),
		})
	}
	return resolved, nil
}

// Unresolved wraps messages without decoding their keys; used when key
// resolution is disabled.
func Unresolved(messages []*Message) []*ResolvedMessage {
	resolved := make([]*ResolvedMessage, 0, len(messages))
	for i, message := range messages {
		resolved = append(resolved, &ResolvedMessage{
			Message:    message,
			LogicalKey: LogicalKey{},
			Identity:   absentIdentity + "#" + strconv.Itoa(i),
		})
	}
	return resolved
}

func (r *KeyResolver) identity(logicalKey LogicalKey, index int) string {
	if len(logicalKey) > 0 {
		return logicalKey.Identity()
	}
	if r.policy == AbsentKeyShared {
		return absentIdentity
	}
	return absentIdentity + "#" + strconv.Itoa(index)
}

func (r *KeyResolver) Policy() AbsentKeyPolicy {
	return r.policy
}
