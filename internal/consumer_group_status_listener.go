package internal

import (
	"sync"
	"time"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/csmap"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

type Status string

const (
	AssignedTopicPartition   Status = "ASSIGNED_TOPIC_PARTITION"
	StartedListening         Status = "STARTED_LISTENING"
	ListenedMessage          Status = "LISTENED_MESSAGE"
	StoppedListening         Status = "STOPPED_LISTENING"
	UnassignedTopicPartition Status = "UNASSIGNED_TOPIC_PARTITION"
)

const statusPollInterval = 100 * time.Millisecond

type ConsumerGroupStatus struct {
	Time      time.Time
	Topic     string
	Status    Status
	Offset    int64
	Partition int32
}

func (t ConsumerGroupStatus) IsStarted() bool {
	return t.Status == StartedListening || t.Status == ListenedMessage
}

// ConsumerGroupStatusListener tracks the status of every partition claimed
// by a consumer group.
type ConsumerGroupStatusListener struct {
	consumerGroupStatusMap *csmap.ConcurrentSwissMap[string, *ConsumerGroupStatus]
	startedChan            chan struct{}
	stoppedChan            chan struct{}
	startedOnce            *sync.Once
	stoppedOnce            *sync.Once
}

func newConsumerGroupStatusListener() *ConsumerGroupStatusListener {
	return &ConsumerGroupStatusListener{
		consumerGroupStatusMap: csmap.Create[string, *ConsumerGroupStatus](0),
		startedChan:            make(chan struct{}),
		stoppedChan:            make(chan struct{}),
		startedOnce:            &sync.Once{},
		stoppedOnce:            &sync.Once{},
	}
}

func (listener *ConsumerGroupStatusListener) Listen(status *ConsumerGroupStatus) {
	listener.consumerGroupStatusMap.Store(getKey(status.Topic, status.Partition), status)
}

func (listener *ConsumerGroupStatusListener) Change(topic string, partition int32, offset int64, status Status) {
	listener.Listen(&ConsumerGroupStatus{
		Time:      time.Now(),
		Topic:     topic,
		Status:    status,
		Offset:    offset,
		Partition: partition,
	})
}

func (listener *ConsumerGroupStatusListener) Statuses() map[string]*ConsumerGroupStatus {
	return listener.consumerGroupStatusMap.Snapshot()
}

// WaitConsumerStart blocks until at least one partition is claimed and every
// claimed partition is listening.
func (listener *ConsumerGroupStatusListener) WaitConsumerStart() {
	<-listener.startedChan
}

// WaitConsumerStop blocks until no partition is listening.
func (listener *ConsumerGroupStatusListener) WaitConsumerStop() {
	<-listener.stoppedChan
}

func (listener *ConsumerGroupStatusListener) HandleConsumerGroupStatus() kafka.ConsumerStatusHandler {
	return func(topic string, partition int32, status bool) {
		s := UnassignedTopicPartition
		if status {
			s = AssignedTopicPartition
		}
		listener.Change(topic, partition, -2, s)
	}
}

func (listener *ConsumerGroupStatusListener) allStarted() bool {
	listening, pending := 0, 0
	listener.consumerGroupStatusMap.Range(func(_ string, status *ConsumerGroupStatus) bool {
		switch {
		case status.IsStarted():
			listening++
		case status.Status == AssignedTopicPartition:
			pending++
		}
		return false
	})
	return listening > 0 && pending == 0
}

func (listener *ConsumerGroupStatusListener) allStopped() bool {
	stopped := true
	listener.consumerGroupStatusMap.Range(func(_ string, status *ConsumerGroupStatus) bool {
		if status.IsStarted() {
			stopped = false
			return true
		}
		return false
	})
	return stopped
}

func (listener *ConsumerGroupStatusListener) listenConsumerStart() {
	listener.poll(listener.allStarted, listener.startedOnce, listener.startedChan)
}

func (listener *ConsumerGroupStatusListener) listenConsumerStop() {
	listener.poll(listener.allStopped, listener.stoppedOnce, listener.stoppedChan)
}

func (listener *ConsumerGroupStatusListener) poll(condition func() bool, once *sync.Once, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(statusPollInterval)
		defer ticker.Stop()
		for {
			if condition() {
				once.Do(func() { close(done) })
				return
			}
			<-ticker.C
		}
	}()
}
