package consumer

import (
	"time"

	"github.com/IBM/sarama"
)

// retryBackoff delays the session restart after a transient failure.
var retryBackoff = 2 * time.Second

type transcriptCompletedHandler struct {
	consumer *Consumer
}

func (h *transcriptCompletedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *transcriptCompletedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only once it was handled or skipped.
// A transient failure ends the claim without marking, so the group resumes at that message.
func (h *transcriptCompletedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handleTranscriptCompletedMessage(ctx, msg); err != nil {
			h.consumer.l.Errorf(ctx, "mindmap.delivery.kafka.consumer.ConsumeClaim: Failed to process offset %d, retrying: %v", msg.Offset, err)
			select {
			case <-ctx.Done():
			case <-time.After(retryBackoff):
			}
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
