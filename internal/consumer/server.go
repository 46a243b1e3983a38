package consumer

import (
	"context"
	"database/sql"

	"mindmap-srv/config"
	pkgKafka "mindmap-srv/pkg/kafka"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/minio"
	"mindmap-srv/pkg/qdrant"
	pkgRabbit "mindmap-srv/pkg/rabbitmq"
	"mindmap-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	qdrantClient  qdrant.IQdrant
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Notification (optional)
	rabbitConn pkgRabbit.IRabbitMQ
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	QdrantClient  qdrant.IQdrant
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Notification (optional)
	RabbitConn pkgRabbit.IRabbitMQ
}

// Run starts the consumer server and blocks until context is cancelled.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
