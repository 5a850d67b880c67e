package internal

// Payload is a decoded message value keyed by field name. A nil or empty
// payload is a tombstone.
type Payload = map[string]any

type Message struct {
	Payload Payload
	Key     []byte
}

func NewMessage(payload Payload, key []byte) *Message {
	return &Message{Payload: payload, Key: key}
}

// IsTombstone reports whether the message asks for its record to be deleted.
func (m *Message) IsTombstone() bool {
	return len(m.Payload) == 0
}

// ResolvedMessage is a message together with the store identity of its key.
type ResolvedMessage struct {
	*Message
	LogicalKey LogicalKey
	// Identity groups messages for slicing and compaction.
	Identity string
}

func (m *ResolvedMessage) HasAbsentKey() bool {
	return len(m.LogicalKey) == 0
}
