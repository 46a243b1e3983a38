package redis

import (
	"context"
	"encoding/json"

	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
	pkgRedis "mindmap-srv/pkg/redis"
)

func (r *implCacheRepository) GetNodes(ctx context.Context, videoID string) ([]model.MindMapNode, error) {
	raw, err := r.redis.Get(ctx, cacheKey(videoID))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Warnf(ctx, "mindmap.repository.redis.GetNodes: Failed to read cache for %s: %v", videoID, err)
		return nil, err
	}

	var nodes []model.MindMapNode
	if err := json.Unmarshal([]byte(raw), &nodes); err != nil {
		r.l.Warnf(ctx, "mindmap.repository.redis.GetNodes: Corrupted cache entry for %s: %v", videoID, err)
		_ = r.redis.Delete(ctx, cacheKey(videoID))
		return nil, repository.ErrCacheMiss
	}
	return nodes, nil
}

func (r *implCacheRepository) SetNodes(ctx context.Context, videoID string, nodes []model.MindMapNode) error {
	data, err := json.Marshal(nodes)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, cacheKey(videoID), data, r.ttl); err != nil {
		r.l.Warnf(ctx, "mindmap.repository.redis.SetNodes: Failed to cache nodes for %s: %v", videoID, err)
		return err
	}
	return nil
}

func (r *implCacheRepository) DeleteNodes(ctx context.Context, videoID string) error {
	if err := r.redis.Delete(ctx, cacheKey(videoID)); err != nil {
		r.l.Warnf(ctx, "mindmap.repository.redis.DeleteNodes: Failed to invalidate cache for %s: %v", videoID, err)
		return err
	}
	return nil
}
