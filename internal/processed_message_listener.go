package internal

import (
	"sync"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

// ProcessedMessageListener marks the offsets of applied batches of one
// partition. Offsets only move forward.
type ProcessedMessageListener interface {
	Publish(batch *processedBatch)
	LastCommittedOffset() int64
}

type processedMessageListener struct {
	commitMessageFunc   kafka.CommitMessageFunc
	mutex               *sync.Mutex
	topic               string
	lastCommittedOffset int64
	partition           int32
}

func NewProcessedMessageListener(topic string, partition int32, commitMessageFunc kafka.CommitMessageFunc) ProcessedMessageListener {
	return &processedMessageListener{
		topic:               topic,
		partition:           partition,
		commitMessageFunc:   commitMessageFunc,
		mutex:               &sync.Mutex{},
		lastCommittedOffset: -1,
	}
}

func (listener *processedMessageListener) Publish(batch *processedBatch) {
	listener.mutex.Lock()
	defer listener.mutex.Unlock()
	if batch.Size == 0 || batch.LastOffset <= listener.lastCommittedOffset {
		return
	}
	listener.commitMessageFunc(listener.topic, listener.partition, batch.LastOffset)
	listener.lastCommittedOffset = batch.LastOffset
	logger.Debugf("batch committed, batchId: %s, topic: %s, partition: %d, offsets: %d-%d, size: %d, attempts: %d, took: %s",
		batch.BatchID, batch.Topic, batch.Partition, batch.FirstOffset, batch.LastOffset, batch.Size, batch.Attempts, batch.ProcessingTime)
}

// LastCommittedOffset returns -1 until the first batch of the claim is applied.
func (listener *processedMessageListener) LastCommittedOffset() int64 {
	listener.mutex.Lock()
	defer listener.mutex.Unlock()
	return listener.lastCommittedOffset
}
