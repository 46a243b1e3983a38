package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"mindmap-srv/internal/mindmap"
	pkgRabbit "mindmap-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (n *implNotifier) NotifyGenerated(ctx context.Context, evt mindmap.GeneratedEvent) error {
	body, err := json.Marshal(GeneratedNotification{
		Event:           n.routingKey,
		VideoID:         evt.VideoID,
		NodesCount:      evt.NodesCount,
		ConfidenceScore: evt.ConfidenceScore,
		ContentType:     string(evt.ContentType),
		GeneratedAt:     evt.GeneratedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   n.exchange,
		RoutingKey: n.routingKey,
		Msg: pkgRabbit.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    evt.VideoID,
			Timestamp:    evt.GeneratedAt,
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.l.Debugf(ctx, "mindmap.delivery.rabbitmq.NotifyGenerated: Published %s for %s", n.routingKey, evt.VideoID)
	return nil
}
