package kafka

import (
	"context"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/sarama"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/log"
)

type ConsumerGroup interface {
	Subscribe(ctx context.Context) error
	Unsubscribe() error
}

func NewConsumerGroup(
	clusterConfig *ClusterConfig,
	consumerGroupConfig *ConsumerGroupConfig,
	messageHandler MessageHandler,
	consumerStatusHandler ConsumerStatusHandler,
	logger log.Logger,
) (ConsumerGroup, error) {
	cg, err := sarama.NewConsumerGroup(clusterConfig, consumerGroupConfig, messageHandler, consumerStatusHandler, logger)
	if err != nil {
		return nil, err
	}
	return cg, nil
}

func NewAuthConfig(username, password string, certificates []string) *config.Auth {
	return &config.Auth{
		Username:     username,
		Password:     password,
		Certificates: certificates,
	}
}
