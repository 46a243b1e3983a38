package usecase

import (
	"context"
	"strings"

	"mindmap-srv/internal/mindmap"
)

// Delete - Remove a mind map from Postgres, the cache and the search index
func (uc *implUseCase) Delete(ctx context.Context, videoID string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return mindmap.ErrInvalidVideoID
	}

	deleted, err := uc.repo.DeleteNodes(ctx, videoID)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Delete: Failed to delete nodes for %s: %v", videoID, err)
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteNodes(ctx, videoID); err != nil {
			uc.l.Warnf(ctx, "mindmap.usecase.Delete: Failed to invalidate cache for %s: %v", videoID, err)
		}
	}
	if uc.vector != nil {
		if err := uc.vector.DeleteByVideo(ctx, videoID); err != nil {
			uc.l.Warnf(ctx, "mindmap.usecase.Delete: Failed to delete index for %s: %v", videoID, err)
		}
	}

	if deleted == 0 {
		return mindmap.ErrMindMapNotFound
	}

	uc.l.Infof(ctx, "mindmap.usecase.Delete: Deleted %d nodes for %s", deleted, videoID)
	return nil
}
