package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

func newTestConsumerGroup(batchConsumer BatchConsumer, kafkaConsumerGroup kafka.ConsumerGroup) (*consumerGroup, *kafkaConsumerGroupArgs) {
	args := &kafkaConsumerGroupArgs{}
	cg := NewConsumerGroup(ConsumerGroupInitializeContext{
		ClusterConfig:       testClusterConfigMap()["cluster"],
		ConsumerGroupConfig: testConsumerGroupConfig(1, time.Hour),
		BatchConsumer:       batchConsumer,
	}).(*consumerGroup)
	cg.newKafkaConsumerGroup = func(cluster *kafka.ClusterConfig, group *kafka.ConsumerGroupConfig, handler kafka.MessageHandler, statusHandler kafka.ConsumerStatusHandler, _ Logger) (kafka.ConsumerGroup, error) {
		args.cluster, args.group, args.handler, args.statusHandler = cluster, group, handler, statusHandler
		return kafkaConsumerGroup, nil
	}
	return cg, args
}

type kafkaConsumerGroupArgs struct {
	cluster       *kafka.ClusterConfig
	group         *kafka.ConsumerGroupConfig
	handler       kafka.MessageHandler
	statusHandler kafka.ConsumerStatusHandler
}

func Test_ConsumerGroup_ShouldSubscribeWithMappedConfigs(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	// Given
	kafkaConsumerGroup := NewMockKafkaConsumerGroup(controller)
	kafkaConsumerGroup.EXPECT().Subscribe(gomock.Any()).Return(nil).Times(1)
	kafkaConsumerGroup.EXPECT().Unsubscribe().Return(nil).Times(1)
	cg, args := newTestConsumerGroup(NewMockBatchConsumer(controller), kafkaConsumerGroup)

	// When
	err := cg.Subscribe(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, groupID, cg.GetGroupID())
	assert.Equal(t, []string{topic}, args.group.Topics)
	assert.Equal(t, "record-sink", args.cluster.ClientID)
	cg.Unsubscribe()
	waitForSignal(t, cg.WaitConsumerStop)
}

func Test_ConsumerGroup_ShouldReturnSubscribeError(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	// Given
	subscribeErr := errors.New("kafka: client has run out of available brokers")
	kafkaConsumerGroup := NewMockKafkaConsumerGroup(controller)
	kafkaConsumerGroup.EXPECT().Subscribe(gomock.Any()).Return(subscribeErr).Times(1)
	cg, _ := newTestConsumerGroup(NewMockBatchConsumer(controller), kafkaConsumerGroup)

	// When
	err := cg.Subscribe(context.Background())

	// Then
	assert.ErrorIs(t, err, subscribeErr)
	cg.Unsubscribe()
}

func Test_ConsumerGroup_ShouldTrackClaimedPartition(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	// Given
	batchConsumer := NewMockBatchConsumer(controller)
	batchConsumer.EXPECT().ConsumeBatch(gomock.Any(), gomock.Len(1), gomock.Any()).Return(nil).Times(2)
	kafkaConsumerGroup := NewMockKafkaConsumerGroup(controller)
	kafkaConsumerGroup.EXPECT().Subscribe(gomock.Any()).Return(nil)
	cg, args := newTestConsumerGroup(batchConsumer, kafkaConsumerGroup)
	require.NoError(t, cg.Subscribe(context.Background()))
	assert.Equal(t, int64(-1), cg.GetLastCommittedOffset(topic, 0))

	args.statusHandler(topic, 0, true)
	commits := newCommittedOffsets()
	messageChan := make(chan *kafka.ConsumerMessage)
	done := make(chan struct{})
	go func() {
		defer close(done)
		args.handler(context.Background(), topic, 0, messageChan, commits.commit)
	}()

	// When
	messageChan <- generateTestKafkaMessage(20, "A", `{"v":1}`)
	waitForSignal(t, cg.WaitConsumerStart)
	messageChan <- generateTestKafkaMessage(21, "B", `{"v":2}`)
	close(messageChan)
	waitFor(t, done)

	// Then
	assert.Equal(t, []int64{20, 21}, commits.get())
	assert.Equal(t, int64(21), cg.GetLastCommittedOffset(topic, 0))
	status := cg.consumerGroupStatusListener.Statuses()[getKey(topic, 0)]
	assert.Equal(t, StoppedListening, status.Status)
	assert.Equal(t, int64(21), status.Offset)
}
