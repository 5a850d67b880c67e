package recordsink

import (
	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/internal"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/viper"
)

type (
	ClusterConfig          = internal.ClusterConfig
	Auth                   = internal.Auth
	ClusterConfigMap       = internal.ClusterConfigMap
	ConsumerGroupConfig    = internal.ConsumerGroupConfig
	ConsumerGroupConfigMap = internal.ConsumerGroupConfigMap
	OffsetInitial          = internal.OffsetInitial
	BatchConsumerConfig    = internal.BatchConsumerConfig
	BatchConsumerConfigMap = internal.BatchConsumerConfigMap
	ColumnMapping          = internal.ColumnMapping
	KeyDecoderType         = internal.KeyDecoderType
	AbsentKeyPolicy        = internal.AbsentKeyPolicy
	ContextKey             = common.ContextKey
)

var (
	OffsetNewest = internal.OffsetNewest
	OffsetOldest = internal.OffsetOldest
)

func ReadKafkaClusterConfigWithProfile(kafkaConfigPath string, profile string) (ClusterConfigMap, error) {
	var conf map[string]*ClusterConfig
	if err := viper.ReadFileWithProfile(profile, &conf, kafkaConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadKafkaClusterConfig(kafkaConfigPath string) (ClusterConfigMap, error) {
	var conf map[string]*ClusterConfig
	if err := viper.ReadFile(&conf, kafkaConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadKafkaConsumerGroupConfig(kafkaConsumerConfigPath string) (ConsumerGroupConfigMap, error) {
	var conf map[string]*ConsumerGroupConfig
	if err := viper.ReadFile(&conf, kafkaConsumerConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

// ReadBatchConsumerConfig reads the sink configs, keyed by sink name.
func ReadBatchConsumerConfig(batchConsumerConfigPath string) (BatchConsumerConfigMap, error) {
	var conf map[string]*BatchConsumerConfig
	if err := viper.ReadFile(&conf, batchConsumerConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadBatchConsumerConfigWithProfile(batchConsumerConfigPath string, profile string) (BatchConsumerConfigMap, error) {
	var conf map[string]*BatchConsumerConfig
	if err := viper.ReadFileWithProfile(profile, &conf, batchConsumerConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}
