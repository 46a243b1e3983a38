package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"mindmap-srv/internal/mindmap"
	kafkaDelivery "mindmap-srv/internal/mindmap/delivery/kafka"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/scope"
	"mindmap-srv/pkg/util"
)

// handleTranscriptCompletedMessage decodes the message and delegates to Generate under the system scope.
// Returning nil marks the message; malformed or permanently invalid messages are skipped that way.
func (c *Consumer) handleTranscriptCompletedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Infof(ctx, "mindmap.delivery.kafka.consumer.handleTranscriptCompletedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.TranscriptCompletedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "mindmap.delivery.kafka.consumer.handleTranscriptCompletedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	// 2. Validate format only
	if message.VideoID == "" || message.TranscriptObject == "" {
		c.l.Warnf(ctx, "mindmap.delivery.kafka.consumer.handleTranscriptCompletedMessage: Missing video_id or transcript_object (skipping)")
		return nil
	}
	if err := util.IsVideoID(message.VideoID); err != nil {
		c.l.Warnf(ctx, "mindmap.delivery.kafka.consumer.handleTranscriptCompletedMessage: %v %q (skipping)", err, message.VideoID)
		return nil
	}

	// 3. System scope
	ctx = scope.SetScopeToContext(ctx, model.SystemScope())

	// 4. Usecase
	output, err := c.uc.Generate(ctx, toGenerateInput(message))
	if err != nil {
		if isPermanent(err) {
			c.l.Warnf(ctx, "mindmap.delivery.kafka.consumer.handleTranscriptCompletedMessage: Skipping %s: %v", message.VideoID, err)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "mindmap.delivery.kafka.consumer.handleTranscriptCompletedMessage: Mind map for %s ready: nodes=%d, reused=%t",
		message.VideoID, len(output.MindMap.Nodes), output.Reused)
	return nil
}

// isPermanent reports errors that retrying the same message cannot fix.
func isPermanent(err error) bool {
	for _, target := range []error{
		mindmap.ErrInvalidVideoID,
		mindmap.ErrInvalidConfig,
		mindmap.ErrInvalidTranscript,
		mindmap.ErrEmptyTranscript,
		mindmap.ErrTranscriptNotFound,
		mindmap.ErrTranscriptParseFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
