package internal

import (
	"time"
)

type processedBatch struct {
	GroupID        string
	BatchID        string
	Topic          string
	Partition      int32
	FirstOffset    int64
	LastOffset     int64
	Size           int
	Attempts       int
	ProcessingTime time.Duration
}

func newProcessedBatch(batchID string, messages []*ConsumerMessage, attempts int, processingTime time.Duration) *processedBatch {
	batch := &processedBatch{
		BatchID:        batchID,
		Size:           len(messages),
		Attempts:       attempts,
		ProcessingTime: processingTime,
		LastOffset:     lastOffset(messages),
	}
	if len(messages) > 0 {
		batch.GroupID = messages[0].GroupID
		batch.Topic = messages[0].Topic
		batch.Partition = messages[0].Partition
		batch.FirstOffset = messages[0].Offset
	}
	return batch
}
