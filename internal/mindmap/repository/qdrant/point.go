package qdrant

import (
	"context"
	"strings"

	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
	pkgQdrant "mindmap-srv/pkg/qdrant"
)

const (
	payloadVideoID   = "video_id"
	payloadContent   = "content"
	payloadNodeType  = "node_type"
	payloadDepth     = "depth"
	payloadKeywords  = "keywords"
	payloadTimeStart = "timestamp_start"
	payloadTimeEnd   = "timestamp_end"
)

func (r *implVectorRepository) UpsertNodes(ctx context.Context, nodes []model.MindMapNode) error {
	if len(nodes) == 0 {
		return nil
	}

	points := make([]pkgQdrant.Point, 0, len(nodes))
	for _, n := range nodes {
		points = append(points, r.toPoint(n))
	}

	if err := r.client.UpsertPoints(ctx, r.collection, points); err != nil {
		r.l.Errorf(ctx, "mindmap.repository.qdrant.UpsertNodes: Failed to upsert %d points: %v", len(points), err)
		return repository.ErrFailedToIndex
	}
	return nil
}

func (r *implVectorRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	filter := pkgQdrant.MatchKeyword(map[string]string{payloadVideoID: videoID})
	if err := r.client.DeleteByFilter(ctx, r.collection, filter); err != nil {
		r.l.Errorf(ctx, "mindmap.repository.qdrant.DeleteByVideo: Failed to delete points for %s: %v", videoID, err)
		return repository.ErrFailedToDeleteIdx
	}
	return nil
}

func (r *implVectorRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]repository.SearchHit, error) {
	if strings.TrimSpace(opt.Query) == "" {
		return nil, repository.ErrInvalidInput
	}

	vector := r.vectorizer.Vectorize(opt.Query)

	var (
		results []pkgQdrant.SearchResult
		err     error
	)
	if opt.VideoID != "" {
		filter := pkgQdrant.MatchKeyword(map[string]string{payloadVideoID: opt.VideoID})
		results, err = r.client.SearchWithFilter(ctx, r.collection, vector, opt.Limit, filter)
	} else {
		results, err = r.client.Search(ctx, r.collection, vector, opt.Limit)
	}
	if err != nil {
		r.l.Errorf(ctx, "mindmap.repository.qdrant.Search: Failed to search %s: %v", r.collection, err)
		return nil, repository.ErrFailedToSearch
	}

	hits := make([]repository.SearchHit, 0, len(results))
	for _, res := range results {
		hits = append(hits, toSearchHit(res))
	}
	return hits, nil
}

// toPoint - The point id is the row id, so regenerating a map overwrites nothing it should keep
func (r *implVectorRepository) toPoint(n model.MindMapNode) pkgQdrant.Point {
	keywords := make([]any, 0, len(n.Keywords))
	for _, k := range n.Keywords {
		keywords = append(keywords, k)
	}
	return pkgQdrant.Point{
		ID:     n.ID,
		Vector: r.vectorizer.Vectorize(n.Content + " " + n.Summary + " " + strings.Join(n.Keywords, " ")),
		Payload: map[string]any{
			payloadVideoID:   n.VideoID,
			payloadContent:   n.Content,
			payloadNodeType:  n.NodeType,
			payloadDepth:     int64(n.Depth),
			payloadKeywords:  keywords,
			payloadTimeStart: n.TimestampStart,
			payloadTimeEnd:   n.TimestampEnd,
		},
	}
}

func toSearchHit(res pkgQdrant.SearchResult) repository.SearchHit {
	hit := repository.SearchHit{NodeID: res.ID, Score: res.Score}
	p := res.Payload
	hit.VideoID, _ = p[payloadVideoID].(string)
	hit.Content, _ = p[payloadContent].(string)
	hit.NodeType, _ = p[payloadNodeType].(string)
	if d, ok := p[payloadDepth].(int64); ok {
		hit.Depth = int(d)
	}
	hit.TimestampStart = toFloat(p[payloadTimeStart])
	hit.TimestampEnd = toFloat(p[payloadTimeEnd])
	if list, ok := p[payloadKeywords].([]any); ok {
		hit.Keywords = make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				hit.Keywords = append(hit.Keywords, s)
			}
		}
	}
	return hit
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	}
	return 0
}
