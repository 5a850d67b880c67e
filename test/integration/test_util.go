package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	containerKafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	containerPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gotest.tools/v3/assert"

	recordsink "github.com/aykanferhat/go-kafka-record-sink"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store/postgres"
)

const (
	clusterName    = "cluster"
	topic          = "widgets.0"
	groupID        = "record-sink.widgets.0"
	totalPartition = int32(1)
)

type testCluster struct {
	kafkaContainer    *containerKafka.KafkaContainer
	postgresContainer *containerPostgres.PostgresContainer
	pool              *pgxpool.Pool
	store             *postgres.Store
	brokers           []string
}

func startTestCluster(ctx context.Context, t *testing.T, schema string) *testCluster {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test needs docker")
	}

	kafkaContainer, err := containerKafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		containerKafka.WithClusterID("test-cluster"),
	)
	assert.NilError(t, err)
	brokers, err := kafkaContainer.Brokers(ctx)
	assert.NilError(t, err)

	postgresContainer, err := containerPostgres.Run(ctx, "postgres:16-alpine",
		containerPostgres.WithDatabase("records"),
		containerPostgres.WithUsername("sink"),
		containerPostgres.WithPassword("sink"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	assert.NilError(t, err)
	connString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	assert.NilError(t, err)

	pool, err := pgxpool.New(ctx, connString)
	assert.NilError(t, err)
	_, err = pool.Exec(ctx, schema)
	assert.NilError(t, err)

	s := postgres.New(postgres.WithConnectionString(connString))
	assert.NilError(t, s.Connect(ctx))

	cluster := &testCluster{
		kafkaContainer:    kafkaContainer,
		postgresContainer: postgresContainer,
		pool:              pool,
		store:             s,
		brokers:           brokers,
	}
	t.Cleanup(func() {
		cluster.store.Close()
		cluster.pool.Close()
		_ = cluster.kafkaContainer.Terminate(context.Background())
		_ = cluster.postgresContainer.Terminate(context.Background())
	})
	assert.NilError(t, createTopic(brokers, topic, totalPartition))
	return cluster
}

func (c *testCluster) clusterConfigs() recordsink.ClusterConfigMap {
	return recordsink.ClusterConfigMap{
		clusterName: {
			ClientID: "record-sink-integration",
			Brokers:  strings.Join(c.brokers, ","),
			Version:  "3.5.0",
		},
	}
}

func (c *testCluster) subscribe(
	ctx context.Context,
	t *testing.T,
	consumerConfigs recordsink.ConsumerGroupConfigMap,
	batchConsumerConfigs recordsink.BatchConsumerConfigMap,
	sinksList []*recordsink.ConsumerGroupSinks,
) map[string]recordsink.ConsumerGroup {
	t.Helper()
	consumerGroups, err := recordsink.NewConsumerBuilder(c.clusterConfigs(), consumerConfigs, batchConsumerConfigs, sinksList).
		Log(recordsink.NewConsoleLogger(recordsink.LogLevelInfo)).
		Initialize(ctx)
	assert.NilError(t, err)
	t.Cleanup(func() {
		for _, consumerGroup := range consumerGroups {
			consumerGroup.Unsubscribe()
			consumerGroup.WaitConsumerStop()
		}
	})

	startedChan := make(chan struct{})
	go func() {
		for _, consumerGroup := range consumerGroups {
			consumerGroup.WaitConsumerStart()
		}
		close(startedChan)
	}()
	select {
	case <-startedChan:
	case <-time.After(2 * time.Minute):
		t.Fatal("consumer groups did not start")
	}
	return consumerGroups
}

func (c *testCluster) produce(t *testing.T, messages ...*sarama.ProducerMessage) {
	t.Helper()
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	producer, err := sarama.NewSyncProducer(c.brokers, config)
	assert.NilError(t, err)
	defer producer.Close()
	assert.NilError(t, producer.SendMessages(messages))
}

func newProducerMessage(key, value string) *sarama.ProducerMessage {
	message := &sarama.ProducerMessage{Topic: topic, Key: sarama.StringEncoder(key)}
	if value != "" {
		message.Value = sarama.StringEncoder(value)
	}
	return message
}

func createTopic(brokers []string, topic string, partition int32) error {
	config := sarama.NewConfig()
	admin, err := sarama.NewClusterAdmin(brokers, config)
	if err != nil {
		return err
	}
	defer admin.Close()
	return admin.CreateTopic(topic, &sarama.TopicDetail{NumPartitions: partition, ReplicationFactor: 1}, false)
}
