package consumer

import (
	"context"
	"testing"

	"mindmap-srv/config"
	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	kafkaDelivery "mindmap-srv/internal/mindmap/delivery/kafka"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/scope"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	mindmap.UseCase
	calls  []mindmap.GenerateInput
	system bool
	err    error
}

func (f *fakeUseCase) Generate(ctx context.Context, ip mindmap.GenerateInput) (mindmap.GenerateOutput, error) {
	f.calls = append(f.calls, ip)
	f.system = scope.GetScopeFromContext(ctx).IsSystem()
	return mindmap.GenerateOutput{}, f.err
}

func newTestConsumer(t *testing.T, uc mindmap.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	require.NoError(t, err)
	return c
}

func TestHandleTranscriptCompletedMessage(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		ucErr   error
		calls   int
		wantErr bool
	}{
		{"valid", `{"video_id":"vid1","transcript_object":"vid1.srt","language":"en","content_type":"news"}`, nil, 1, false},
		{"malformed json is skipped", `{"video_id":`, nil, 0, false},
		{"missing object is skipped", `{"video_id":"vid1"}`, nil, 0, false},
		{"unsafe video id is skipped", `{"video_id":"../vid1","transcript_object":"x.json"}`, nil, 0, false},
		{"permanent failure is skipped", `{"video_id":"vid1","transcript_object":"x.json"}`, mindmap.ErrTranscriptNotFound, 1, false},
		{"transient failure is retried", `{"video_id":"vid1","transcript_object":"x.json"}`, mindmap.ErrPersistFailed, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			c := newTestConsumer(t, uc)

			err := c.handleTranscriptCompletedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(tt.value)})
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.ucErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, uc.calls, tt.calls)
			if tt.calls > 0 {
				assert.True(t, uc.system)
			}
		})
	}
}

func TestToGenerateInput(t *testing.T) {
	ip := toGenerateInput(kafkaMessage("News"))
	require.NotNil(t, ip.Overrides.ContentType)
	assert.Equal(t, analysis.ContentTypeNews, *ip.Overrides.ContentType)

	ip = toGenerateInput(kafkaMessage("unknown"))
	assert.Nil(t, ip.Overrides.ContentType)
}

func TestNewDefaults(t *testing.T) {
	c := newTestConsumer(t, &fakeUseCase{})
	assert.Equal(t, "transcript.completed", c.kafkaConfig.ConsumerTopic)
	assert.Equal(t, "mindmap-srv-transcripts", c.kafkaConfig.GroupID)

	_, err := New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}})
	assert.Error(t, err)
}

func kafkaMessage(contentType string) kafkaDelivery.TranscriptCompletedMessage {
	return kafkaDelivery.TranscriptCompletedMessage{VideoID: "vid1", TranscriptObject: "vid1.json", ContentType: contentType}
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	marked []int64
}

func (s *fakeSession) Context() context.Context { return context.Background() }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	ch chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

func newFakeClaim(values ...string) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for i, v := range values {
		ch <- &sarama.ConsumerMessage{Offset: int64(i), Value: []byte(v)}
	}
	close(ch)
	return &fakeClaim{ch: ch}
}

func TestConsumeClaim(t *testing.T) {
	retryBackoff = 0
	valid := `{"video_id":"vid1","transcript_object":"vid1.json"}`

	t.Run("marks handled and skipped messages", func(t *testing.T) {
		h := &transcriptCompletedHandler{consumer: newTestConsumer(t, &fakeUseCase{})}
		sess := &fakeSession{}

		require.NoError(t, h.ConsumeClaim(sess, newFakeClaim(valid, `{"video_id":`, valid)))
		assert.Equal(t, []int64{0, 1, 2}, sess.marked)
	})

	t.Run("transient failure stops before marking", func(t *testing.T) {
		uc := &fakeUseCase{err: mindmap.ErrPersistFailed}
		h := &transcriptCompletedHandler{consumer: newTestConsumer(t, uc)}
		sess := &fakeSession{}

		err := h.ConsumeClaim(sess, newFakeClaim(valid, valid))
		assert.ErrorIs(t, err, mindmap.ErrPersistFailed)
		assert.Empty(t, sess.marked)
		assert.Len(t, uc.calls, 1)
	})
}
