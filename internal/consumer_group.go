package internal

import (
	"context"
	"time"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/csmap"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

type ConsumerGroup interface {
	GetGroupID() string
	Subscribe(ctx context.Context) error
	Unsubscribe()
	// GetLastCommittedOffset returns -1 for a partition without an applied batch.
	GetLastCommittedOffset(topic string, partition int32) int64
	WaitConsumerStart()
	WaitConsumerStop()
}

type consumerGroup struct {
	cg                          kafka.ConsumerGroup
	processedMessageListeners   *csmap.ConcurrentSwissMap[string, ProcessedMessageListener]
	consumerGroupStatusListener *ConsumerGroupStatusListener
	newKafkaConsumerGroup       func(*kafka.ClusterConfig, *kafka.ConsumerGroupConfig, kafka.MessageHandler, kafka.ConsumerStatusHandler, Logger) (kafka.ConsumerGroup, error)
	initializedContext          ConsumerGroupInitializeContext
}

type ConsumerGroupInitializeContext struct {
	ClusterConfig          *ClusterConfig
	ConsumerGroupConfig    *ConsumerGroupConfig
	BatchConsumer          BatchConsumer
	BatchInterceptors      []BatchInterceptor
	BatchErrorInterceptors []BatchErrorInterceptor
}

func NewConsumerGroup(initializedContext ConsumerGroupInitializeContext) ConsumerGroup {
	return &consumerGroup{
		initializedContext:          initializedContext,
		processedMessageListeners:   csmap.Create[string, ProcessedMessageListener](0),
		consumerGroupStatusListener: newConsumerGroupStatusListener(),
		newKafkaConsumerGroup:       kafka.NewConsumerGroup,
	}
}

// Handle returns the partition handler: one batch listener per claim.
func (c *consumerGroup) Handle() kafka.MessageHandler {
	return func(ctx context.Context, topic string, partition int32, messageChan <-chan *kafka.ConsumerMessage, commitFunc kafka.CommitMessageFunc) {
		processedMessageListener := NewProcessedMessageListener(topic, partition, commitFunc)
		c.processedMessageListeners.Store(getKey(topic, partition), processedMessageListener)
		c.consumerGroupStatusListener.Change(topic, partition, -1, StartedListening)
		defer func() {
			c.consumerGroupStatusListener.Change(topic, partition, processedMessageListener.LastCommittedOffset(), StoppedListening)
		}()

		listener := newBatchMessageListener(topic, partition, c.initializedContext, processedMessageListener)
		listener.Listen(ctx, messageChan, func(message *ConsumerMessage) {
			c.consumerGroupStatusListener.Listen(&ConsumerGroupStatus{Topic: topic, Partition: partition, Status: ListenedMessage, Time: time.Now(), Offset: message.Offset})
		})
	}
}

func (c *consumerGroup) GetGroupID() string {
	return c.initializedContext.ConsumerGroupConfig.GroupID
}

func (c *consumerGroup) Subscribe(ctx context.Context) error {
	cg, err := c.newKafkaConsumerGroup(
		mapToClusterConfig(c.initializedContext.ClusterConfig),
		mapToConsumerGroupConfig(c.initializedContext.ConsumerGroupConfig),
		c.Handle(),
		c.consumerGroupStatusListener.HandleConsumerGroupStatus(),
		logger,
	)
	if err != nil {
		return err
	}
	if err := cg.Subscribe(ctx); err != nil {
		logger.Errorf("consumerGroup Subscribe err: %s", err.Error())
		return err
	}
	c.consumerGroupStatusListener.listenConsumerStart()
	c.cg = cg
	return nil
}

func (c *consumerGroup) Unsubscribe() {
	if c.cg == nil {
		return
	}
	if err := c.cg.Unsubscribe(); err != nil {
		logger.Errorf("consumerGroup Unsubscribe err: %s", err.Error())
	}
	c.consumerGroupStatusListener.listenConsumerStop()
}

func (c *consumerGroup) GetLastCommittedOffset(topic string, partition int32) int64 {
	if processedMessageListener, exists := c.processedMessageListeners.Load(getKey(topic, partition)); exists {
		return processedMessageListener.LastCommittedOffset()
	}
	return -1
}

func (c *consumerGroup) WaitConsumerStart() {
	c.consumerGroupStatusListener.WaitConsumerStart()
}

func (c *consumerGroup) WaitConsumerStop() {
	c.consumerGroupStatusListener.WaitConsumerStop()
}
