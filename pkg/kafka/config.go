package kafka

import "github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/config"

type (
	ClusterConfig       = config.ClusterConfig
	ConsumerGroupConfig = config.ConsumerGroupConfig
	OffsetInitial       = config.OffsetInitial
)

var (
	OffsetNewest = config.OffsetNewest
	OffsetOldest = config.OffsetOldest
)
