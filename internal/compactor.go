package internal

import "slices"

// CompactMessages keeps the last message of every identity, in the order of
// those last occurrences. A batch whose first message has no key is returned
// as is unless absent keys are shared.
func CompactMessages(messages []*ResolvedMessage, policy AbsentKeyPolicy) []*ResolvedMessage {
	if len(messages) == 0 {
		return messages
	}
	if messages[0].HasAbsentKey() && policy != AbsentKeyShared {
		return messages
	}

	seen := make(map[string]struct{}, len(messages))
	compacted := make([]*ResolvedMessage, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		if _, ok := seen[messages[i].Identity]; ok {
			continue
		}
		seen[messages[i].Identity] = struct{}{}
		compacted = append(compacted, messages[i])
	}
	slices.Reverse(compacted)
	return compacted
}
