package repository

import (
	"context"

	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	NodeRepository
}

// NodeRepository - Operations for the mindmap_nodes table
type NodeRepository interface {
	// ReplaceNodes deletes the video's nodes and inserts the new ones in one transaction.
	ReplaceNodes(ctx context.Context, opt ReplaceNodesOptions) ([]model.MindMapNode, error)
	ListNodes(ctx context.Context, videoID string) ([]model.MindMapNode, error)
	DeleteNodes(ctx context.Context, videoID string) (int64, error)
	GetSummaries(ctx context.Context, opt GetSummariesOptions) ([]model.MindMapSummary, paginator.Paginator, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetNodes(ctx context.Context, videoID string) ([]model.MindMapNode, error)
	SetNodes(ctx context.Context, videoID string, nodes []model.MindMapNode) error
	DeleteNodes(ctx context.Context, videoID string) error
}

//go:generate mockery --name VectorRepository
type VectorRepository interface {
	UpsertNodes(ctx context.Context, nodes []model.MindMapNode) error
	DeleteByVideo(ctx context.Context, videoID string) error
	Search(ctx context.Context, opt SearchOptions) ([]SearchHit, error)
}
