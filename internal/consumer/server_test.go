package consumer

import (
	"database/sql"
	"testing"

	"mindmap-srv/config"
	pkgKafka "mindmap-srv/pkg/kafka"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/minio"
	"mindmap-srv/pkg/qdrant"
	"mindmap-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct{ redis.IRedis }
type fakeQdrant struct{ qdrant.IQdrant }
type fakeMinIO struct{ minio.MinIO }
type fakeProducer struct{ pkgKafka.IProducer }

func validConfig() Config {
	return Config{
		Logger:        log.NewNop(),
		Config:        &config.Config{Kafka: config.KafkaConfig{Brokers: []string{"localhost:9092"}}},
		RedisClient:   fakeRedis{},
		QdrantClient:  fakeQdrant{},
		PostgresDB:    &sql.DB{},
		MinIOClient:   fakeMinIO{},
		KafkaProducer: fakeProducer{},
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	cases := map[string]func(*Config){
		"logger is required":         func(c *Config) { c.Logger = nil },
		"config is required":         func(c *Config) { c.Config = nil },
		"kafka brokers are required": func(c *Config) { c.Config = &config.Config{} },
		"redis client is required":   func(c *Config) { c.RedisClient = nil },
		"qdrant client is required":  func(c *Config) { c.QdrantClient = nil },
		"postgres db is required":    func(c *Config) { c.PostgresDB = nil },
		"minio client is required":   func(c *Config) { c.MinIOClient = nil },
		"kafka producer is required": func(c *Config) { c.KafkaProducer = nil },
	}
	for want, mutate := range cases {
		t.Run(want, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			_, err := New(cfg)
			assert.EqualError(t, err, want)
		})
	}
}

func TestNewRabbitMQIsOptional(t *testing.T) {
	srv, err := New(validConfig())
	require.NoError(t, err)
	assert.Nil(t, srv.rabbitConn)
}
