package model

import "time"

// MindMapNode is one row of mindmap_nodes. ParentID references another row's ID.
type MindMapNode struct {
	ID               string       `json:"id"`
	VideoID          string       `json:"video_id"`
	NodeKey          string       `json:"node_key"`
	ParentID         *string      `json:"parent_id"`
	Content          string       `json:"content"`
	Summary          string       `json:"summary"`
	TimestampStart   float64      `json:"timestamp_start"`
	TimestampEnd     float64      `json:"timestamp_end"`
	NodeType         string       `json:"node_type"`
	Depth            int          `json:"depth"`
	Keywords         []string     `json:"keywords"`
	PositionX        float64      `json:"position_x"`
	PositionY        float64      `json:"position_y"`
	Confidence       *float64     `json:"confidence"`
	Importance       *float64     `json:"importance"`
	WordCount        *int         `json:"word_count"`
	AnalysisMetadata NodeMetadata `json:"analysis_metadata"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// NodeMetadata is stored as JSONB alongside every node.
type NodeMetadata struct {
	AnalysisVersion string  `json:"analysis_version"`
	ContentType     string  `json:"content_type"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// MindMapSummary is one aggregated row per video.
type MindMapSummary struct {
	VideoID         string
	NodesCount      int
	ConfidenceScore float64
	ContentType     string
	UpdatedAt       time.Time
}
