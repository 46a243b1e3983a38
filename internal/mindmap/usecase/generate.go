package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
)

// Generate - Analyze a transcript and persist the resulting mind map
func (uc *implUseCase) Generate(ctx context.Context, ip mindmap.GenerateInput) (mindmap.GenerateOutput, error) {
	startTime := time.Now()

	ip.VideoID = strings.TrimSpace(ip.VideoID)
	if ip.VideoID == "" {
		return mindmap.GenerateOutput{}, mindmap.ErrInvalidVideoID
	}

	// Step 1: Reuse the stored map unless forced
	if !ip.Force {
		view, err := uc.Get(ctx, ip.VideoID)
		if err == nil {
			return mindmap.GenerateOutput{
				MindMap:        view,
				ProcessingTime: time.Since(startTime).Seconds(),
				Reused:         true,
			}, nil
		}
		if !errors.Is(err, mindmap.ErrMindMapNotFound) {
			return mindmap.GenerateOutput{}, err
		}
	}

	// Step 2: Transcript from the request or MinIO
	transcript, err := uc.buildTranscript(ctx, ip)
	if err != nil {
		return mindmap.GenerateOutput{}, err
	}

	// Step 3: Effective config
	cfg, err := uc.buildConfig(transcript, ip.Overrides)
	if err != nil {
		uc.l.Warnf(ctx, "mindmap.usecase.Generate: Invalid config for %s: %v", ip.VideoID, err)
		return mindmap.GenerateOutput{}, mindmap.ErrInvalidConfig
	}

	// Step 4: Run the analyzer
	analyzer, err := uc.newAnalyzer(cfg, uc.useMock(ip.UseMock), uc.seed(ip.Seed))
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Generate: Failed to build analyzer: %v", err)
		return mindmap.GenerateOutput{}, mapAnalysisError(err)
	}

	mm, err := analyzer.Analyze(ctx, transcript)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Generate: Analysis failed for %s: %v", ip.VideoID, err)
		return mindmap.GenerateOutput{}, mapAnalysisError(err)
	}

	// Step 5: Persist, replacing any previous map
	rows, err := uc.repo.ReplaceNodes(ctx, repository.ReplaceNodesOptions{
		VideoID:  ip.VideoID,
		Nodes:    mm.Nodes,
		Metadata: metadataFor(mm),
	})
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Generate: Failed to persist nodes for %s: %v", ip.VideoID, err)
		return mindmap.GenerateOutput{}, mindmap.ErrPersistFailed
	}

	// Step 6: Refresh cache and search index (best effort)
	uc.refreshCache(ctx, ip.VideoID, rows)
	uc.reindex(ctx, ip.VideoID, rows)

	view := toView(ip.VideoID, rows)
	processingTime := time.Since(startTime).Seconds()

	// Step 7: Announce (best effort)
	uc.announce(ctx, mindmap.GeneratedEvent{
		VideoID:         ip.VideoID,
		NodesCount:      len(rows),
		ConfidenceScore: mm.ConfidenceScore,
		ContentType:     mm.ContentType,
		ProcessingTime:  processingTime,
		GeneratedAt:     uc.now(),
	})

	uc.l.Infof(ctx, "mindmap.usecase.Generate: Generated %d nodes for %s with %s in %.2fs",
		len(rows), ip.VideoID, analyzer.Name(), processingTime)

	return mindmap.GenerateOutput{
		MindMap:          view,
		AnalysisMetadata: mm.AnalysisMetadata,
		ProcessingTime:   processingTime,
		AnalyzerName:     analyzer.Name(),
	}, nil
}

func (uc *implUseCase) refreshCache(ctx context.Context, videoID string, rows []model.MindMapNode) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetNodes(ctx, videoID, rows); err != nil {
		uc.l.Warnf(ctx, "mindmap.usecase.refreshCache: Failed to cache %s: %v", videoID, err)
	}
}

func (uc *implUseCase) reindex(ctx context.Context, videoID string, rows []model.MindMapNode) {
	if uc.vector == nil {
		return
	}
	if err := uc.vector.DeleteByVideo(ctx, videoID); err != nil {
		uc.l.Warnf(ctx, "mindmap.usecase.reindex: Failed to clear index for %s: %v", videoID, err)
	}
	if err := uc.vector.UpsertNodes(ctx, rows); err != nil {
		uc.l.Warnf(ctx, "mindmap.usecase.reindex: Failed to index %s: %v", videoID, err)
	}
}

func (uc *implUseCase) announce(ctx context.Context, evt mindmap.GeneratedEvent) {
	if uc.producer != nil {
		if err := uc.producer.PublishGenerated(ctx, evt); err != nil {
			uc.l.Warnf(ctx, "mindmap.usecase.announce: Failed to publish event for %s: %v", evt.VideoID, err)
		}
	}
	if uc.notifier != nil {
		if err := uc.notifier.NotifyGenerated(ctx, evt); err != nil {
			uc.l.Warnf(ctx, "mindmap.usecase.announce: Failed to notify for %s: %v", evt.VideoID, err)
		}
	}
}
