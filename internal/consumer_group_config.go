package internal

import (
	"strings"
	"time"

	"github.com/aykanferhat/go-kafka-record-sink/common"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/kafka"
)

type ConsumerGroupConfig struct {
	GroupID                     string        `json:"groupId"`
	OffsetInitial               OffsetInitial `json:"offsetInitial"`
	Cluster                     string        `json:"cluster"`
	Name                        string        `json:"name"`
	Sink                        string        `json:"sink"`
	FetchMaxBytes               string        `json:"fetchMaxBytes"`
	BatchSize                   int           `json:"batchSize"`
	ConsumeBatchListenerLatency time.Duration `json:"consumeBatchListenerLatency"`
	MaxProcessingTime           time.Duration `json:"maxProcessingTime"`
	FailedBatchBackoff          time.Duration `json:"failedBatchBackoff"`
	FailedBatchMaxBackoff       time.Duration `json:"failedBatchMaxBackoff"`
	RebalanceTimeout            time.Duration `json:"rebalanceTimeout"`
	HeartbeatInterval           time.Duration `json:"heartbeatInterval"`
	SessionTimeout              time.Duration `json:"sessionTimeout"`
}

type OffsetInitial = kafka.OffsetInitial

var (
	OffsetNewest = kafka.OffsetNewest
	OffsetOldest = kafka.OffsetOldest
)

func (c *ConsumerGroupConfig) GetTopics() []string {
	return []string{c.Name}
}

type ConsumerGroupConfigMap map[string]*ConsumerGroupConfig

func (c ConsumerGroupConfigMap) GetConfigWithDefault(name string) (*ConsumerGroupConfig, error) {
	cc, exists := c[strings.ToLower(name)]
	if !exists {
		return nil, newConfigurationErr("config not found: %s", name)
	}
	if len(cc.GroupID) == 0 {
		return nil, newConfigurationErr("consumer topic config 'groupId' is required, config name: %s", name)
	}
	if len(cc.Name) == 0 {
		return nil, newConfigurationErr("consumer topic config 'name' is required, config name: %s", name)
	}
	if cc.BatchSize < 0 {
		return nil, newConfigurationErr("consumer topic config 'batchSize' cannot be negative, config name: %s", name)
	}
	if len(cc.Sink) == 0 {
		cc.Sink = name
	}
	if len(cc.FetchMaxBytes) == 0 {
		cc.FetchMaxBytes = common.MB
	}
	if cc.BatchSize == 0 {
		cc.BatchSize = 100
	}
	if cc.ConsumeBatchListenerLatency == 0 {
		cc.ConsumeBatchListenerLatency = 3 * time.Second
	}
	if cc.MaxProcessingTime == 0 {
		cc.MaxProcessingTime = 30 * time.Second
	}
	if cc.FailedBatchBackoff == 0 {
		cc.FailedBatchBackoff = 1 * time.Second
	}
	if cc.FailedBatchMaxBackoff == 0 {
		cc.FailedBatchMaxBackoff = 1 * time.Minute
	}
	if cc.FailedBatchMaxBackoff < cc.FailedBatchBackoff {
		cc.FailedBatchMaxBackoff = cc.FailedBatchBackoff
	}
	if len(cc.OffsetInitial) == 0 {
		cc.OffsetInitial = OffsetNewest
	}
	if cc.SessionTimeout == 0 {
		cc.SessionTimeout = 10 * time.Second
	}
	if cc.RebalanceTimeout == 0 {
		cc.RebalanceTimeout = 60 * time.Second
	}
	if cc.HeartbeatInterval == 0 {
		cc.HeartbeatInterval = 3 * time.Second
	}
	return cc, nil
}
