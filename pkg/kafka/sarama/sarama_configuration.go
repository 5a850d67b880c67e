package sarama

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/log"
)

func NewSaramaConfig(clusterConfig *config.ClusterConfig, consumerGroupConfig *config.ConsumerGroupConfig, logger log.Logger) (*sarama.Config, error) {
	if len(clusterConfig.ClientID) == 0 {
		return nil, errors.New("clientId is empty in kafka config")
	}
	if consumerGroupConfig == nil {
		return nil, errors.New("consumer group config is required")
	}
	if logger != nil && strings.EqualFold(logger.Lvl(), log.DEBUG) {
		sarama.Logger = logger
	}
	saramaConfig := sarama.NewConfig()

	if err := setMetadataConfig(saramaConfig, clusterConfig.ClientID, clusterConfig.Version); err != nil {
		return nil, err
	}
	if clusterConfig.Auth != nil {
		if err := addAuthToConfig(saramaConfig, clusterConfig); err != nil {
			return nil, err
		}
	}
	offsetInitialIndex, err := getSaramaOffsetInitialIndex(consumerGroupConfig.OffsetInitial)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = offsetInitialIndex
	saramaConfig.Consumer.Group.Session.Timeout = consumerGroupConfig.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = consumerGroupConfig.HeartbeatInterval
	saramaConfig.Consumer.MaxProcessingTime = consumerGroupConfig.MaxProcessingTime
	saramaConfig.Consumer.Fetch.Default = int32(common.ResolveUnionIntOrStringValue(consumerGroupConfig.FetchMaxBytes))
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategySticky()}
	saramaConfig.Consumer.Group.Rebalance.Timeout = consumerGroupConfig.RebalanceTimeout
	// only offsets of applied batches are marked, so auto commit never
	// commits past a failed batch
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
	return saramaConfig, nil
}

func setMetadataConfig(saramaConfig *sarama.Config, clientID string, version string) error {
	v, err := sarama.ParseKafkaVersion(version)
	if err != nil {
		return err
	}
	saramaConfig.ChannelBufferSize = 256
	saramaConfig.ApiVersionsRequest = true
	saramaConfig.Version = v
	saramaConfig.ClientID = clientID

	saramaConfig.Metadata.Retry.Max = 1
	saramaConfig.Metadata.Retry.Backoff = 10 * time.Second
	saramaConfig.Metadata.Full = false

	saramaConfig.Net.ReadTimeout = 3 * time.Minute
	saramaConfig.Net.DialTimeout = 3 * time.Minute
	saramaConfig.Net.WriteTimeout = 3 * time.Minute
	return nil
}

func addAuthToConfig(config *sarama.Config, clusterConfig *config.ClusterConfig) error {
	config.Net.SASL.Enable = true
	config.Net.SASL.User = clusterConfig.Auth.Username
	config.Net.SASL.Password = clusterConfig.Auth.Password
	config.Net.SASL.Handshake = true
	config.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient { return &xDGSCRAMClient{HashGeneratorFcn: sHA512} }
	config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
	config.Net.TLS.Enable = true
	tlsConfiguration, err := createTLSConfiguration(clusterConfig)
	if err != nil {
		return err
	}
	config.Net.TLS.Config = tlsConfiguration
	return nil
}

func createTLSConfiguration(clusterConfig *config.ClusterConfig) (*tls.Config, error) {
	caCertPool := x509.NewCertPool()
	for _, certificate := range clusterConfig.Auth.Certificates {
		caCert, err := os.ReadFile(certificate)
		if err != nil {
			return nil, err
		}
		caCertPool.AppendCertsFromPEM(caCert)
	}
	return &tls.Config{RootCAs: caCertPool, MinVersion: tls.VersionTLS12}, nil
}

func getSaramaOffsetInitialIndex(i config.OffsetInitial) (int64, error) {
	switch i {
	case config.OffsetNewest:
		return sarama.OffsetNewest, nil
	case config.OffsetOldest:
		return sarama.OffsetOldest, nil
	default:
		return 0, errors.New("OffsetInitial value not match, it should be newest or oldest")
	}
}
