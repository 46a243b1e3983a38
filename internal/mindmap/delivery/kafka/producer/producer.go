package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"mindmap-srv/internal/mindmap"
	kafkaDelivery "mindmap-srv/internal/mindmap/delivery/kafka"
)

// PublishGenerated publishes a mindmap.generated event keyed by video id
func (p *implProducer) PublishGenerated(ctx context.Context, evt mindmap.GeneratedEvent) error {
	msg := kafkaDelivery.MindMapGeneratedMessage{
		VideoID:         evt.VideoID,
		NodesCount:      evt.NodesCount,
		ConfidenceScore: evt.ConfidenceScore,
		ContentType:     string(evt.ContentType),
		ProcessingTime:  evt.ProcessingTime,
		GeneratedAt:     evt.GeneratedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal mindmap generated event: %w", err)
	}

	if err := p.producer.Publish([]byte(evt.VideoID), body); err != nil {
		return fmt.Errorf("failed to publish mindmap generated event: %w", err)
	}

	p.l.Infof(ctx, "Published %s for video %s (%d nodes)", p.producer.Topic(), evt.VideoID, evt.NodesCount)
	return nil
}
