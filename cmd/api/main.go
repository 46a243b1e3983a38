package main

import (
	"context"
	"fmt"
	"time"

	"mindmap-srv/config"
	configKafka "mindmap-srv/config/kafka"
	configMinio "mindmap-srv/config/minio"
	configPostgre "mindmap-srv/config/postgre"
	configQdrant "mindmap-srv/config/qdrant"
	configRabbit "mindmap-srv/config/rabbitmq"
	configRedis "mindmap-srv/config/redis"
	_ "mindmap-srv/docs" // Import swagger docs
	"mindmap-srv/internal/httpserver"
	"mindmap-srv/pkg/encrypter"
	pkgJWT "mindmap-srv/pkg/jwt"
	pkgKafka "mindmap-srv/pkg/kafka"
	"mindmap-srv/pkg/log"
	pkgRabbit "mindmap-srv/pkg/rabbitmq"
)

// @title       SMAP Mind Map Service API
// @description Builds hierarchical mind maps from video transcripts.
// @version     1
// @host        mindmap-srv.tantai.dev
// @schemes     https
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name smap_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
//
// @securityDefinitions.apikey ServiceKey
// @in header
// @name X-Service-Key
// @description Encrypted "service:key" pair for internal callers.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Qdrant
	qdrantClient, err := configQdrant.Connect(ctx, cfg.Qdrant)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Qdrant: ", err)
		return
	}
	defer configQdrant.Disconnect()
	logger.Infof(ctx, "Qdrant connected successfully to %s:%d", cfg.Qdrant.Host, cfg.Qdrant.Port)

	// 7. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 8. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if p, err := configKafka.ConnectProducer(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
	} else {
		kafkaProducer = p
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.ProducerTopic)
	}

	// 9. Initialize RabbitMQ (optional)
	var rabbitConn pkgRabbit.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		conn, err := configRabbit.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
		} else {
			rabbitConn = conn
			defer configRabbit.Disconnect()
			logger.Infof(ctx, "RabbitMQ connected, exchange %s", cfg.RabbitMQ.Exchange)
		}
	}

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Infrastructure clients
		RedisClient:  redisClient,
		QdrantClient: qdrantClient,
		MinIOClient:  minioClient,

		// Messaging
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
