package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Topic() string
	Close() error
	HealthCheck() error
}

// IConsumer wraps sarama.ConsumerGroup.
type IConsumer interface {
	// ConsumeWithContext blocks until ctx is cancelled, rejoining the group after each rebalance.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

// NewProducer creates a new Kafka sync producer.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewConsumer creates a new Kafka consumer group.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}

// NewProducerFromSarama wraps an existing sarama producer. Used with sarama/mocks in tests.
func NewProducerFromSarama(p sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: p, topic: topic}
}
