package kafka

import (
	"errors"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers       = errors.New("kafka: at least one broker is required")
	ErrTopicRequired   = errors.New("kafka: topic is required")
	ErrGroupIDRequired = errors.New("kafka: group ID is required")
	ErrNotInitialized  = errors.New("kafka: producer is not initialized")
)

// Config holds configuration for a Kafka producer bound to one topic.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for a Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type consumerImpl struct {
	group sarama.ConsumerGroup
}
