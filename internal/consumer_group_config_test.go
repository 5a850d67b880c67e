package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

func Test_ConsumerGroupConfigMap_ShouldApplyDefaults(t *testing.T) {
	// Given
	configs := ConsumerGroupConfigMap{
		"widgets": {GroupID: groupID, Name: topic, Cluster: "cluster"},
	}

	// When
	config, err := configs.GetConfigWithDefault("Widgets")

	// Then
	require.NoError(t, err)
	assert.Equal(t, &ConsumerGroupConfig{
		GroupID:                     groupID,
		Name:                        topic,
		Cluster:                     "cluster",
		Sink:                        "Widgets",
		OffsetInitial:               OffsetNewest,
		FetchMaxBytes:               common.MB,
		BatchSize:                   100,
		ConsumeBatchListenerLatency: 3 * time.Second,
		MaxProcessingTime:           30 * time.Second,
		FailedBatchBackoff:          time.Second,
		FailedBatchMaxBackoff:       time.Minute,
		SessionTimeout:              10 * time.Second,
		RebalanceTimeout:            60 * time.Second,
		HeartbeatInterval:           3 * time.Second,
	}, config)
	assert.Equal(t, []string{topic}, config.GetTopics())
}

func Test_ConsumerGroupConfigMap_ShouldKeepConfiguredValues(t *testing.T) {
	// Given
	configs := ConsumerGroupConfigMap{
		"widgets": {
			GroupID:               groupID,
			Name:                  topic,
			Sink:                  "widget-table",
			BatchSize:             500,
			OffsetInitial:         OffsetOldest,
			FailedBatchBackoff:    10 * time.Second,
			FailedBatchMaxBackoff: time.Second,
		},
	}

	// When
	config, err := configs.GetConfigWithDefault("widgets")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "widget-table", config.Sink)
	assert.Equal(t, 500, config.BatchSize)
	assert.Equal(t, OffsetOldest, config.OffsetInitial)
	assert.Equal(t, 10*time.Second, config.FailedBatchMaxBackoff)
}

func Test_ConsumerGroupConfigMap_ShouldReturnConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config *ConsumerGroupConfig
	}{
		{name: "groupId", config: &ConsumerGroupConfig{Name: topic}},
		{name: "name", config: &ConsumerGroupConfig{GroupID: groupID}},
		{name: "batchSize", config: &ConsumerGroupConfig{GroupID: groupID, Name: topic, BatchSize: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConsumerGroupConfigMap{"widgets": tt.config}.GetConfigWithDefault("widgets")

			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
			assert.Contains(t, err.Error(), "'"+tt.name+"'")
		})
	}

	_, err := ConsumerGroupConfigMap{}.GetConfigWithDefault("widgets")
	assert.True(t, IsConfigurationError(err))
}

func Test_MapToConsumerGroupConfig(t *testing.T) {
	// Given
	config, err := ConsumerGroupConfigMap{"widgets": {GroupID: groupID, Name: topic}}.GetConfigWithDefault("widgets")
	require.NoError(t, err)

	// When
	result := mapToConsumerGroupConfig(config)

	// Then
	assert.Equal(t, &kafka.ConsumerGroupConfig{
		GroupID:           groupID,
		Topics:            []string{topic},
		MaxProcessingTime: 30 * time.Second,
		FetchMaxBytes:     common.MB,
		OffsetInitial:     kafka.OffsetNewest,
		SessionTimeout:    10 * time.Second,
		RebalanceTimeout:  60 * time.Second,
		HeartbeatInterval: 3 * time.Second,
	}, result)
}
