package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_Validation(t *testing.T) {
	_, err := NewProducer(Config{Topic: "t"})
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewProducer(Config{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrTopicRequired)
}

func TestNewConsumer_Validation(t *testing.T) {
	_, err := NewConsumer(ConsumerConfig{GroupID: "g"})
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewConsumer(ConsumerConfig{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrGroupIDRequired)
}

func TestProducer_Publish(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mp := mocks.NewSyncProducer(t, cfg)
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"video_id":"v1"}` {
			return assert.AnError
		}
		return nil
	})

	p := NewProducerFromSarama(mp, "mindmap.generated")
	require.NoError(t, p.Publish([]byte("v1"), []byte(`{"video_id":"v1"}`)))
	assert.Equal(t, "mindmap.generated", p.Topic())
	assert.NoError(t, p.HealthCheck())
	require.NoError(t, p.Close())
}

func TestProducer_NotInitialized(t *testing.T) {
	p := &producerImpl{topic: "t"}
	assert.ErrorIs(t, p.Publish(nil, nil), ErrNotInitialized)
	assert.ErrorIs(t, p.HealthCheck(), ErrNotInitialized)
	assert.NoError(t, p.Close())
}
