package repository

import (
	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/model"
)

// ReplaceNodesOptions - Options for ReplaceNodes. Node parents reference other node IDs in the same list.
type ReplaceNodesOptions struct {
	VideoID  string
	Nodes    []analysis.Node
	Metadata model.NodeMetadata
}

// GetSummariesOptions - Options for GetSummaries (with pagination)
type GetSummariesOptions struct {
	Limit  int64
	Offset int64
	Page   int
}

// SearchOptions - Options for vector Search
type SearchOptions struct {
	Query   string
	VideoID string // optional filter
	Limit   uint64
}

// SearchHit - One scored node returned by Search
type SearchHit struct {
	NodeID         string
	VideoID        string
	Content        string
	NodeType       string
	Depth          int
	Keywords       []string
	TimestampStart float64
	TimestampEnd   float64
	Score          float32
}
