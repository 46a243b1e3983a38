package consumer

import (
	"context"
	"fmt"
	"time"

	"mindmap-srv/internal/mindmap"
	mindmapConsumer "mindmap-srv/internal/mindmap/delivery/kafka/consumer"
	kafkaProducer "mindmap-srv/internal/mindmap/delivery/kafka/producer"
	mindmapRabbit "mindmap-srv/internal/mindmap/delivery/rabbitmq"
	mindmapPostgre "mindmap-srv/internal/mindmap/repository/postgre"
	mindmapQdrant "mindmap-srv/internal/mindmap/repository/qdrant"
	mindmapRedis "mindmap-srv/internal/mindmap/repository/redis"
	mindmapUsecase "mindmap-srv/internal/mindmap/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	mindmapConsumer *mindmapConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	cfg := srv.config

	repo := mindmapPostgre.New(srv.postgresDB, srv.l)
	cache := mindmapRedis.New(srv.redisClient, srv.l, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	vector := mindmapQdrant.New(srv.qdrantClient, srv.l, cfg.Qdrant.Collection, cfg.Qdrant.VectorSize)
	producer := kafkaProducer.New(srv.l, srv.kafkaProducer)

	var notifier mindmap.Notifier
	if srv.rabbitConn != nil {
		n, err := mindmapRabbit.New(srv.l, srv.rabbitConn, mindmapRabbit.Config{
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create mindmap notifier: %w", err)
		}
		notifier = n
	}

	uc := mindmapUsecase.New(srv.l, repo, cache, vector, srv.minioClient, producer, notifier, mindmapUsecase.NewOptions(cfg))

	cons, err := mindmapConsumer.New(mindmapConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: cfg.Kafka,
		UseCase:     uc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mindmap consumer: %w", err)
	}

	srv.l.Infof(ctx, "Mindmap domain initialized")

	return &domainConsumers{
		mindmapConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.mindmapConsumer.ConsumeTranscriptCompleted(ctx); err != nil {
		return fmt.Errorf("failed to start mindmap consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.mindmapConsumer != nil {
		if err := consumers.mindmapConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing mindmap consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
