package usecase

import (
	"context"
	"errors"
	"strings"

	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
)

// Get - Load a stored mind map, cache first
func (uc *implUseCase) Get(ctx context.Context, videoID string) (mindmap.MindMapView, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return mindmap.MindMapView{}, mindmap.ErrInvalidVideoID
	}

	rows, err := uc.loadNodes(ctx, videoID)
	if err != nil {
		return mindmap.MindMapView{}, err
	}
	if len(rows) == 0 {
		return mindmap.MindMapView{}, mindmap.ErrMindMapNotFound
	}
	return toView(videoID, rows), nil
}

func (uc *implUseCase) loadNodes(ctx context.Context, videoID string) ([]model.MindMapNode, error) {
	if uc.cache != nil {
		rows, err := uc.cache.GetNodes(ctx, videoID)
		if err == nil && len(rows) > 0 {
			return rows, nil
		}
		if err != nil && !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "mindmap.usecase.loadNodes: Cache unavailable for %s: %v", videoID, err)
		}
	}

	rows, err := uc.repo.ListNodes(ctx, videoID)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.loadNodes: Failed to list nodes for %s: %v", videoID, err)
		return nil, err
	}
	if len(rows) > 0 {
		uc.refreshCache(ctx, videoID, rows)
	}
	return rows, nil
}
