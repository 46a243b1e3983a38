package rabbitmq

import "time"

const (
	DefaultExchange   = "mindmap.events"
	DefaultRoutingKey = "mindmap.generated"
	contentTypeJSON   = "application/json"
)

// GeneratedNotification - Body published on the mindmap.events exchange
type GeneratedNotification struct {
	Event           string    `json:"event"`
	VideoID         string    `json:"video_id"`
	NodesCount      int       `json:"nodes_count"`
	ConfidenceScore float64   `json:"confidence_score"`
	ContentType     string    `json:"content_type"`
	GeneratedAt     time.Time `json:"generated_at"`
}
