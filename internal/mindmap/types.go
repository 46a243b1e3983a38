package mindmap

import (
	"time"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/paginator"
)

// ============================================
// UseCase Input/Output Types
// ============================================

// ConfigOverrides are applied on top of analysis.DefaultConfigForTranscript. Nil fields keep the default.
type ConfigOverrides struct {
	ContentType         *analysis.ContentType
	MaxDepth            *int
	Language            *string
	ImportanceThreshold *float64
	ConfidenceThreshold *float64
	Dedup               *bool
}

// GenerateInput carries either inline Segments or a TranscriptObject key in MinIO.
type GenerateInput struct {
	VideoID          string
	Segments         []analysis.TranscriptSegment
	TranscriptObject string
	Language         string
	Duration         float64
	Overrides        ConfigOverrides
	UseMock          *bool
	Seed             *int64
	Force            bool
}

type GenerateOutput struct {
	MindMap          MindMapView
	AnalysisMetadata map[string]any
	ProcessingTime   float64
	AnalyzerName     string
	// Reused is set when a stored mind map was returned instead of running the analysis.
	Reused bool
}

// MindMapView is a persisted mind map. Node IDs are row ids and parent links point at row ids.
type MindMapView struct {
	VideoID         string               `json:"video_id" yaml:"video_id"`
	Nodes           []analysis.Node      `json:"nodes" yaml:"nodes"`
	ContentType     analysis.ContentType `json:"content_type" yaml:"content_type"`
	ConfidenceScore float64              `json:"confidence_score" yaml:"confidence_score"`
	Statistics      analysis.Statistics  `json:"statistics" yaml:"statistics"`
	UpdatedAt       time.Time            `json:"updated_at" yaml:"updated_at"`
}

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	MindMaps  []model.MindMapSummary
	Paginator paginator.Paginator
}

type ExtractTopicsInput struct {
	Content   string
	MaxTopics int
	UseMock   *bool
}

type ExtractTopicsOutput struct {
	Topics   []string
	Keywords []string
}

type SummarizeInput struct {
	Content   string
	MaxLength int
	UseMock   *bool
}

type SummarizeOutput struct {
	Summary        string
	OriginalLength int
	SummaryLength  int
}

type EstimateInput struct {
	SegmentsCount int
	Duration      float64
	UseMock       *bool
}

type EstimateOutput struct {
	SegmentsCount    int
	Duration         float64
	UsingMock        bool
	EstimatedSeconds float64
}

type StatusOutput struct {
	ServiceName           string
	UsingMock             bool
	AnalyzerType          string
	Features              map[string]bool
	SupportedContentTypes []analysis.ContentType
	MaxDepth              int
	Version               string
}

type SearchInput struct {
	Query   string
	VideoID string
	Limit   int
}

type SearchResult struct {
	NodeID         string
	VideoID        string
	Content        string
	NodeType       analysis.NodeType
	Depth          int
	Keywords       []string
	TimestampStart float64
	TimestampEnd   float64
	Score          float32
}

type SearchOutput struct {
	Query   string
	Results []SearchResult
}

type ExportInput struct {
	VideoID string
	Format  string
}

type ExportOutput struct {
	VideoID    string
	ObjectName string
	Format     string
	Size       int64
	URL        string
	ExpiresAt  time.Time
}

// ============================================
// Event Types
// ============================================

// GeneratedEvent is published after a mind map is persisted.
type GeneratedEvent struct {
	VideoID         string
	NodesCount      int
	ConfidenceScore float64
	ContentType     analysis.ContentType
	ProcessingTime  float64
	GeneratedAt     time.Time
}
