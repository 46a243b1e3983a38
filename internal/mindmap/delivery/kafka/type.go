package kafka

import (
	"time"
)

const (
	TopicTranscriptCompleted   = "transcript.completed"
	GroupIDTranscriptCompleted = "mindmap-srv-transcripts"
	TopicMindMapGenerated      = "mindmap.generated"
)

// TranscriptCompletedMessage - Kafka message for transcript.completed
type TranscriptCompletedMessage struct {
	VideoID          string  `json:"video_id"`
	TranscriptObject string  `json:"transcript_object"`
	Language         string  `json:"language,omitempty"`
	Duration         float64 `json:"duration,omitempty"`
	ContentType      string  `json:"content_type,omitempty"`
	Force            bool    `json:"force,omitempty"`
}

// MindMapGeneratedMessage - Kafka message for mindmap.generated
type MindMapGeneratedMessage struct {
	VideoID         string    `json:"video_id"`
	NodesCount      int       `json:"nodes_count"`
	ConfidenceScore float64   `json:"confidence_score"`
	ContentType     string    `json:"content_type"`
	ProcessingTime  float64   `json:"processing_time"`
	GeneratedAt     time.Time `json:"generated_at"`
}
