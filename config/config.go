package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - mind map nodes
	Postgres PostgresConfig

	// Redis - mind map cache
	Redis RedisConfig

	// MinIO - transcript objects and exports
	MinIO MinIOConfig

	// Qdrant - node keyword vectors
	Qdrant QdrantConfig

	// Kafka - transcript.completed in, mindmap.generated out
	Kafka KafkaConfig

	// RabbitMQ - mindmap.events notifications
	RabbitMQ RabbitMQConfig

	// JWT - Authentication
	JWT            JWTConfig
	Cookie         CookieConfig
	Encrypter      EncrypterConfig
	InternalConfig InternalConfig

	// Analysis - pipeline defaults
	Analysis AnalysisConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka.
type KafkaConfig struct {
	Brokers       []string
	ConsumerTopic string
	ProducerTopic string
	GroupID       string
}

// RabbitMQConfig is the configuration for RabbitMQ. Notifications are skipped when URL is empty.
type RabbitMQConfig struct {
	URL                 string
	Exchange            string
	RoutingKey          string
	RetryWithoutTimeout bool
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL int // in seconds
}

// MinIOConfig is the configuration for MinIO.
type MinIOConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	UseSSL           bool
	Region           string
	Bucket           string
	TranscriptBucket string
	ExportPrefix     string
	PresignExpiry    int // in seconds
}

// QdrantConfig is the configuration for Qdrant.
type QdrantConfig struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Timeout    int // in seconds
	Collection string
	VectorSize int
	Distance   string
}

// CookieConfig configures the auth cookie the Auth middleware reads the token from.
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite string
	MaxAge   int
	Name     string
}

// JWTConfig is used to verify tokens. This service does not issue tokens outside of tooling.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// EncrypterConfig is the configuration for the encrypter.
type EncrypterConfig struct {
	Key string
}

// InternalConfig is the configuration for internal service authentication.
type InternalConfig struct {
	// ServiceKeys maps service name to a bcrypt hash (or plain key) accepted in X-Service-Key.
	ServiceKeys map[string]string
}

// AnalysisConfig holds the pipeline defaults applied to every generation.
type AnalysisConfig struct {
	UseMock             bool
	Seed                int64
	ImportanceThreshold float64
	ConfidenceThreshold float64
	MaxDepth            int
	Dedup               bool
	MaxConcurrency      int
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("mindmap-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/mindmap/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.CacheTTL = viper.GetInt("redis.cache_ttl")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.TranscriptBucket = viper.GetString("minio.transcript_bucket")
	cfg.MinIO.ExportPrefix = viper.GetString("minio.export_prefix")
	cfg.MinIO.PresignExpiry = viper.GetInt("minio.presign_expiry")

	// Qdrant
	cfg.Qdrant.Host = viper.GetString("qdrant.host")
	cfg.Qdrant.Port = viper.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = viper.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = viper.GetInt("qdrant.timeout")
	cfg.Qdrant.Collection = viper.GetString("qdrant.collection")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Qdrant.Distance = viper.GetString("qdrant.distance")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.ConsumerTopic = viper.GetString("kafka.consumer_topic")
	cfg.Kafka.ProducerTopic = viper.GetString("kafka.producer_topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// RabbitMQ
	cfg.RabbitMQ.URL = viper.GetString("rabbitmq.url")
	cfg.RabbitMQ.Exchange = viper.GetString("rabbitmq.exchange")
	cfg.RabbitMQ.RoutingKey = viper.GetString("rabbitmq.routing_key")
	cfg.RabbitMQ.RetryWithoutTimeout = viper.GetBool("rabbitmq.retry_without_timeout")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Cookie
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.SameSite = viper.GetString("cookie.samesite")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Internal service keys
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, key := range viper.GetStringMapString("internal.service_keys") {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Analysis
	cfg.Analysis.UseMock = viper.GetBool("analysis.use_mock")
	cfg.Analysis.Seed = viper.GetInt64("analysis.seed")
	cfg.Analysis.ImportanceThreshold = viper.GetFloat64("analysis.importance_threshold")
	cfg.Analysis.ConfidenceThreshold = viper.GetFloat64("analysis.confidence_threshold")
	cfg.Analysis.MaxDepth = viper.GetInt("analysis.max_depth")
	cfg.Analysis.Dedup = viper.GetBool("analysis.dedup")
	cfg.Analysis.MaxConcurrency = viper.GetInt("analysis.max_concurrency")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "mindmap")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.cache_ttl", 3600)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "mindmap-exports")
	viper.SetDefault("minio.transcript_bucket", "transcripts")
	viper.SetDefault("minio.export_prefix", "mindmaps")
	viper.SetDefault("minio.presign_expiry", 3600)

	// 4. Qdrant
	viper.SetDefault("qdrant.host", "localhost")
	viper.SetDefault("qdrant.port", 6334)
	viper.SetDefault("qdrant.use_tls", false)
	viper.SetDefault("qdrant.timeout", 30)
	viper.SetDefault("qdrant.collection", "mindmap_nodes")
	viper.SetDefault("qdrant.vector_size", 256)
	viper.SetDefault("qdrant.distance", "cosine")

	// 5. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.consumer_topic", "transcript.completed")
	viper.SetDefault("kafka.producer_topic", "mindmap.generated")
	viper.SetDefault("kafka.group_id", "mindmap-srv-transcripts")

	// 6. RabbitMQ
	viper.SetDefault("rabbitmq.url", "")
	viper.SetDefault("rabbitmq.exchange", "mindmap.events")
	viper.SetDefault("rabbitmq.routing_key", "mindmap.generated")
	viper.SetDefault("rabbitmq.retry_without_timeout", false)

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "smap-auth-service")
	viper.SetDefault("jwt.audience", []string{"mindmap-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Cookie
	viper.SetDefault("cookie.domain", ".smap.com")
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.samesite", "Lax")
	viper.SetDefault("cookie.max_age", 28800)
	viper.SetDefault("cookie.name", "smap_auth_token")

	// Analysis
	viper.SetDefault("analysis.use_mock", false)
	viper.SetDefault("analysis.seed", 0)
	viper.SetDefault("analysis.importance_threshold", 0.4)
	viper.SetDefault("analysis.confidence_threshold", 0.6)
	viper.SetDefault("analysis.max_depth", 4)
	viper.SetDefault("analysis.dedup", false)
	viper.SetDefault("analysis.max_concurrency", 8)
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be greater than 0")
	}

	// Validate Encrypter
	if cfg.Encrypter.Key == "" {
		return fmt.Errorf("encrypter.key is required")
	}
	if len(cfg.Encrypter.Key) < 32 {
		return fmt.Errorf("encrypter.key must be at least 32 characters for security")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Qdrant Configuration
	if cfg.Qdrant.Host == "" {
		return fmt.Errorf("qdrant.host is required")
	}
	if cfg.Qdrant.Port == 0 {
		return fmt.Errorf("qdrant.port is required")
	}
	if cfg.Qdrant.Collection == "" {
		return fmt.Errorf("qdrant.collection is required")
	}
	if cfg.Qdrant.VectorSize <= 0 {
		return fmt.Errorf("qdrant.vector_size must be greater than 0")
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	// Validate Kafka Configuration
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must have at least one value")
	}
	if cfg.Kafka.ConsumerTopic == "" || cfg.Kafka.ProducerTopic == "" {
		return fmt.Errorf("kafka.consumer_topic and kafka.producer_topic are required")
	}

	// Validate Cookie Configuration
	if cfg.Cookie.Name == "" {
		return fmt.Errorf("cookie.name is required")
	}

	// Validate Analysis Configuration
	if cfg.Analysis.ImportanceThreshold < 0 || cfg.Analysis.ImportanceThreshold > 1 {
		return fmt.Errorf("analysis.importance_threshold must be between 0 and 1")
	}
	if cfg.Analysis.ConfidenceThreshold < 0 || cfg.Analysis.ConfidenceThreshold > 1 {
		return fmt.Errorf("analysis.confidence_threshold must be between 0 and 1")
	}
	if cfg.Analysis.MaxDepth < 1 || cfg.Analysis.MaxDepth > 10 {
		return fmt.Errorf("analysis.max_depth must be between 1 and 10")
	}

	return nil
}
