package internal

// SliceMessages splits messages into ordered slices in which every identity
// appears at most once. The n-th occurrence of an identity lands in slice n,
// which is exactly where first-fit placement puts it and yields the fewest
// slices that keep per-key order.
func SliceMessages(messages []*ResolvedMessage) [][]*ResolvedMessage {
	var slices [][]*ResolvedMessage
	occurrences := make(map[string]int, len(messages))
	for _, message := range messages {
		index := occurrences[message.Identity]
		occurrences[message.Identity] = index + 1
		if index == len(slices) {
			slices = append(slices, nil)
		}
		slices[index] = append(slices[index], message)
	}
	return slices
}
