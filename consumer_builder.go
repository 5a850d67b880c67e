package recordsink

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aykanferhat/go-kafka-record-sink/internal"
)

type (
	ConsumerGroup                = internal.ConsumerGroup
	ConsumerGroupSinks           = internal.ConsumerGroupSinks
	ConsumerMessage              = internal.ConsumerMessage
	BatchConsumer                = internal.BatchConsumer
	BatchInterceptor             = internal.BatchInterceptor
	BatchErrorInterceptor        = internal.BatchErrorInterceptor
	TopicPartitionStatus         = internal.ConsumerGroupStatus
	TopicPartitionStatusListener = internal.ConsumerGroupStatusListener
)

type ConsumerBuilder struct {
	clusterConfigMap       ClusterConfigMap
	consumerConfigMap      ConsumerGroupConfigMap
	batchConsumerConfigMap BatchConsumerConfigMap
	sinksList              []*ConsumerGroupSinks
	batchInterceptors      []BatchInterceptor
	batchErrorInterceptors []BatchErrorInterceptor
	newConsumerGroup       func(internal.ConsumerGroupInitializeContext) ConsumerGroup
}

func NewConsumerBuilder(
	clusterConfigMap ClusterConfigMap,
	consumerConfigMap ConsumerGroupConfigMap,
	batchConsumerConfigMap BatchConsumerConfigMap,
	sinksList []*ConsumerGroupSinks,
) *ConsumerBuilder {
	return &ConsumerBuilder{
		clusterConfigMap:       clusterConfigMap,
		consumerConfigMap:      consumerConfigMap,
		batchConsumerConfigMap: batchConsumerConfigMap,
		sinksList:              sinksList,
		batchInterceptors:      []BatchInterceptor{},
		batchErrorInterceptors: []BatchErrorInterceptor{},
		newConsumerGroup:       internal.NewConsumerGroup,
	}
}

// Interceptor runs for every batch of every consumer group, before the
// interceptors of its ConsumerGroupSinks.
func (c *ConsumerBuilder) Interceptor(batchInterceptor BatchInterceptor) *ConsumerBuilder {
	c.batchInterceptors = append(c.batchInterceptors, batchInterceptor)
	return c
}

func (c *ConsumerBuilder) Interceptors(batchInterceptors []BatchInterceptor) *ConsumerBuilder {
	c.batchInterceptors = append(c.batchInterceptors, batchInterceptors...)
	return c
}

func (c *ConsumerBuilder) ErrorInterceptor(batchErrorInterceptor BatchErrorInterceptor) *ConsumerBuilder {
	c.batchErrorInterceptors = append(c.batchErrorInterceptors, batchErrorInterceptor)
	return c
}

func (c *ConsumerBuilder) Log(l Logger) *ConsumerBuilder {
	internal.SetLogger(l)
	return c
}

// Initialize validates every config, builds one batch consumption per sink
// and subscribes the consumer groups. Groups are keyed by group id.
func (c *ConsumerBuilder) Initialize(ctx context.Context) (map[string]ConsumerGroup, error) {
	consumerGroups := make([]ConsumerGroup, 0, len(c.sinksList))
	for _, sinks := range c.sinksList {
		initializedContext, err := c.initializeContext(sinks)
		if err != nil {
			return nil, err
		}
		consumerGroups = append(consumerGroups, c.newConsumerGroup(initializedContext))
	}

	// Consumer groups keep ctx for their lifetime, so it is passed as is.
	var g errgroup.Group
	for _, consumerGroup := range consumerGroups {
		g.Go(func() error {
			return consumerGroup.Subscribe(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		for _, consumerGroup := range consumerGroups {
			consumerGroup.Unsubscribe()
		}
		return nil, err
	}

	consumerGroupMap := make(map[string]ConsumerGroup, len(consumerGroups))
	for _, consumerGroup := range consumerGroups {
		consumerGroupMap[consumerGroup.GetGroupID()] = consumerGroup
	}
	return consumerGroupMap, nil
}

func (c *ConsumerBuilder) initializeContext(sinks *ConsumerGroupSinks) (internal.ConsumerGroupInitializeContext, error) {
	consumerGroupConfig, err := c.consumerConfigMap.GetConfigWithDefault(sinks.ConfigName)
	if err != nil {
		return internal.ConsumerGroupInitializeContext{}, err
	}
	clusterConfig, err := c.clusterConfigMap.GetConfigWithDefault(consumerGroupConfig.Cluster)
	if err != nil {
		return internal.ConsumerGroupInitializeContext{}, err
	}
	batchConsumerConfig, err := c.batchConsumerConfigMap.GetConfigWithDefault(consumerGroupConfig.Sink)
	if err != nil {
		return internal.ConsumerGroupInitializeContext{}, err
	}
	batchConsumption, err := internal.NewBatchConsumption(batchConsumerConfig, sinks.Store, sinks.BatchConsumptionOptions()...)
	if err != nil {
		return internal.ConsumerGroupInitializeContext{}, err
	}
	interceptors := append(append([]BatchInterceptor{}, c.batchInterceptors...), sinks.BatchInterceptors...)
	errorInterceptors := append(append([]BatchErrorInterceptor{}, c.batchErrorInterceptors...), sinks.BatchErrorInterceptors...)
	return internal.ConsumerGroupInitializeContext{
		ClusterConfig:          clusterConfig,
		ConsumerGroupConfig:    consumerGroupConfig,
		BatchConsumer:          batchConsumption,
		BatchInterceptors:      interceptors,
		BatchErrorInterceptors: errorInterceptors,
	}, nil
}
