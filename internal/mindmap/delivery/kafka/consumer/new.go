package consumer

import (
	"fmt"

	"mindmap-srv/config"
	"mindmap-srv/internal/mindmap"
	kafkaDelivery "mindmap-srv/internal/mindmap/delivery/kafka"
	pkgKafka "mindmap-srv/pkg/kafka"
	"mindmap-srv/pkg/log"
)

// Config holds the configuration for the mindmap consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     mindmap.UseCase
}

// Consumer manages Kafka consumer groups for the mindmap domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          mindmap.UseCase

	transcriptGroup pkgKafka.IConsumer
}

// New creates a new mindmap consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.KafkaConfig.ConsumerTopic == "" {
		cfg.KafkaConfig.ConsumerTopic = kafkaDelivery.TopicTranscriptCompleted
	}
	if cfg.KafkaConfig.GroupID == "" {
		cfg.KafkaConfig.GroupID = kafkaDelivery.GroupIDTranscriptCompleted
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.transcriptGroup != nil {
		if err := c.transcriptGroup.Close(); err != nil {
			return fmt.Errorf("failed to close transcript group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, groupID, err)
	}
	return group, nil
}
