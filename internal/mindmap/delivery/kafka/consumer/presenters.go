package consumer

import (
	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	kafkaDelivery "mindmap-srv/internal/mindmap/delivery/kafka"
)

// toGenerateInput maps the Kafka message to usecase input. Unknown content types fall back to the transcript default.
func toGenerateInput(m kafkaDelivery.TranscriptCompletedMessage) mindmap.GenerateInput {
	ip := mindmap.GenerateInput{
		VideoID:          m.VideoID,
		TranscriptObject: m.TranscriptObject,
		Language:         m.Language,
		Duration:         m.Duration,
		Force:            m.Force,
	}
	if ct, ok := analysis.ParseContentType(m.ContentType); ok {
		ip.Overrides.ContentType = &ct
	}
	return ip
}
