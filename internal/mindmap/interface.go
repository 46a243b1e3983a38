package mindmap

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, ip GenerateInput) (GenerateOutput, error)
	Get(ctx context.Context, videoID string) (MindMapView, error)
	Delete(ctx context.Context, videoID string) error
	List(ctx context.Context, ip ListInput) (ListOutput, error)
	ExtractTopics(ctx context.Context, ip ExtractTopicsInput) (ExtractTopicsOutput, error)
	Summarize(ctx context.Context, ip SummarizeInput) (SummarizeOutput, error)
	Estimate(ctx context.Context, ip EstimateInput) (EstimateOutput, error)
	Status(ctx context.Context) StatusOutput
	Search(ctx context.Context, ip SearchInput) (SearchOutput, error)
	Export(ctx context.Context, ip ExportInput) (ExportOutput, error)
}

// Producer publishes mind map events to Kafka.
type Producer interface {
	PublishGenerated(ctx context.Context, evt GeneratedEvent) error
}

// Notifier pushes mind map notifications to RabbitMQ.
type Notifier interface {
	NotifyGenerated(ctx context.Context, evt GeneratedEvent) error
}
