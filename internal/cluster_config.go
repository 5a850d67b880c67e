package internal

import (
	"strings"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

type ClusterConfig struct {
	ClusterName string `json:"-"`
	Auth        *Auth  `json:"auth"`
	ClientID    string `json:"clientId"`
	Brokers     string `json:"brokers"`
	Version     string `json:"version"`
}

func (config *ClusterConfig) GetBrokers() []string {
	return strings.Split(strings.ReplaceAll(config.Brokers, " ", ""), ",")
}

type Auth struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	Certificates []string `json:"certificates"`
}

type ClusterConfigMap map[string]*ClusterConfig

func (c ClusterConfigMap) GetConfigWithDefault(name string) (*ClusterConfig, error) {
	cc, exists := c[strings.ToLower(name)]
	if !exists {
		return nil, newConfigurationErr("cluster config not found: %s", name)
	}
	cc.ClusterName = name
	if err := validateClusterConfig(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

func validateClusterConfig(clusterConfig *ClusterConfig) error {
	if len(clusterConfig.Brokers) == 0 {
		return newConfigurationErr("cluster config 'brokers' is required, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.Version) == 0 {
		return newConfigurationErr("cluster configs 'version' is required, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.ClientID) == 0 {
		return newConfigurationErr("cluster config 'clientId' is required, cluster: %s", clusterConfig.ClusterName)
	}
	return nil
}

func (c ClusterConfigMap) SetAuth(cluster, username, password string, certificatePaths []string) error {
	clusterConfig, err := c.GetConfigWithDefault(cluster)
	if err != nil {
		return err
	}
	if clusterConfig.Auth != nil {
		clusterConfig.Auth.Username = username
		clusterConfig.Auth.Password = password
		clusterConfig.Auth.Certificates = certificatePaths
		return nil
	}
	clusterConfig.Auth = &Auth{
		Username:     username,
		Password:     password,
		Certificates: certificatePaths,
	}
	return nil
}

func mapToClusterConfig(clusterConfig *ClusterConfig) *kafka.ClusterConfig {
	c := &kafka.ClusterConfig{
		Brokers:  clusterConfig.GetBrokers(),
		Version:  clusterConfig.Version,
		ClientID: clusterConfig.ClientID,
	}
	if clusterConfig.Auth != nil {
		c.Auth = kafka.NewAuthConfig(clusterConfig.Auth.Username, clusterConfig.Auth.Password, clusterConfig.Auth.Certificates)
	}
	return c
}

func mapToConsumerGroupConfig(consumerGroupConfig *ConsumerGroupConfig) *kafka.ConsumerGroupConfig {
	return &kafka.ConsumerGroupConfig{
		GroupID:           consumerGroupConfig.GroupID,
		Topics:            consumerGroupConfig.GetTopics(),
		MaxProcessingTime: consumerGroupConfig.MaxProcessingTime,
		FetchMaxBytes:     consumerGroupConfig.FetchMaxBytes,
		OffsetInitial:     consumerGroupConfig.OffsetInitial,
		SessionTimeout:    consumerGroupConfig.SessionTimeout,
		RebalanceTimeout:  consumerGroupConfig.RebalanceTimeout,
		HeartbeatInterval: consumerGroupConfig.HeartbeatInterval,
	}
}
