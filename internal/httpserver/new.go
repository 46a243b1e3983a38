package httpserver

import (
	"database/sql"
	"errors"

	"mindmap-srv/config"
	"mindmap-srv/pkg/encrypter"
	pkgKafka "mindmap-srv/pkg/kafka"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/minio"
	pkgQdrant "mindmap-srv/pkg/qdrant"
	pkgRabbit "mindmap-srv/pkg/rabbitmq"
	pkgRedis "mindmap-srv/pkg/redis"
	"mindmap-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure clients
	redisClient  pkgRedis.IRedis
	qdrantClient pkgQdrant.IQdrant
	minioClient  minio.MinIO

	// Messaging (optional)
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure clients
	RedisClient  pkgRedis.IRedis
	QdrantClient pkgQdrant.IQdrant
	MinIOClient  minio.MinIO

	// Messaging (optional)
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbit.IRabbitMQ

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB: cfg.PostgresDB,

		redisClient:  cfg.RedisClient,
		qdrantClient: cfg.QdrantClient,
		minioClient:  cfg.MinIOClient,

		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.qdrantClient == nil {
		return errors.New("qdrantClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// kafkaProducer and rabbitConn are optional
	return nil
}
