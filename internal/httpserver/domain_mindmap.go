package httpserver

import (
	"context"
	"fmt"
	"time"

	"mindmap-srv/internal/mindmap"
	kafkaProducer "mindmap-srv/internal/mindmap/delivery/kafka/producer"
	mindmapRabbit "mindmap-srv/internal/mindmap/delivery/rabbitmq"
	mindmapPostgre "mindmap-srv/internal/mindmap/repository/postgre"
	mindmapQdrant "mindmap-srv/internal/mindmap/repository/qdrant"
	mindmapRedis "mindmap-srv/internal/mindmap/repository/redis"
	mindmapUsecase "mindmap-srv/internal/mindmap/usecase"
)

func (srv *HTTPServer) setupMindmapDomain(ctx context.Context) (mindmap.UseCase, error) {
	cfg := srv.config

	repo := mindmapPostgre.New(srv.postgresDB, srv.l)
	cache := mindmapRedis.New(srv.redisClient, srv.l, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	vector := mindmapQdrant.New(srv.qdrantClient, srv.l, cfg.Qdrant.Collection, cfg.Qdrant.VectorSize)

	var producer mindmap.Producer
	if srv.kafkaProducer != nil {
		producer = kafkaProducer.New(srv.l, srv.kafkaProducer)
	}

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

	srv.l.Infof(ctx, "Mindmap domain initialized (kafka=%t, rabbitmq=%t)", producer != nil, notifier != nil)
	return uc, nil
}
