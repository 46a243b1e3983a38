package consumer

import (
	"context"
)

// ConsumeTranscriptCompleted starts consuming transcript.completed messages. It returns once the group is running.
func (c *Consumer) ConsumeTranscriptCompleted(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.kafkaConfig.GroupID)
	if err != nil {
		return err
	}
	c.transcriptGroup = group

	handler := &transcriptCompletedHandler{consumer: c}
	topic := c.kafkaConfig.ConsumerTopic

	go func() {
		if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
			c.l.Errorf(ctx, "mindmap.delivery.kafka.consumer.ConsumeTranscriptCompleted: Consumer error: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "mindmap.delivery.kafka.consumer.ConsumeTranscriptCompleted: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as %s", topic, c.kafkaConfig.GroupID)
	return nil
}
