package usecase

import (
	"errors"
	"path"
	"strings"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/model"
)

// buildConfig - Transcript defaults, then service settings, then request overrides
func (uc *implUseCase) buildConfig(t analysis.Transcript, ov mindmap.ConfigOverrides) (analysis.Config, error) {
	cfg := analysis.DefaultConfigForTranscript(t)

	svc := uc.opts.Analysis
	if svc.ImportanceThreshold > 0 {
		cfg.ImportanceThreshold = svc.ImportanceThreshold
	}
	if svc.ConfidenceThreshold > 0 {
		cfg.ConfidenceThreshold = svc.ConfidenceThreshold
	}
	if svc.MaxDepth > 0 {
		cfg.MaxDepth = svc.MaxDepth
	}
	cfg.Dedup = svc.Dedup
	cfg.MaxConcurrency = svc.MaxConcurrency

	if ov.ContentType != nil {
		cfg.ContentType = *ov.ContentType
	}
	if ov.MaxDepth != nil {
		cfg.MaxDepth = *ov.MaxDepth
	}
	if ov.Language != nil && *ov.Language != "" {
		cfg.Language = *ov.Language
	}
	if ov.ImportanceThreshold != nil {
		cfg.ImportanceThreshold = *ov.ImportanceThreshold
	}
	if ov.ConfidenceThreshold != nil {
		cfg.ConfidenceThreshold = *ov.ConfidenceThreshold
	}
	if ov.Dedup != nil {
		cfg.Dedup = *ov.Dedup
	}

	if err := cfg.Validate(); err != nil {
		return analysis.Config{}, err
	}
	return cfg, nil
}

func (uc *implUseCase) useMock(override *bool) bool {
	if override != nil {
		return *override
	}
	return uc.opts.Analysis.UseMock
}

func (uc *implUseCase) seed(override *int64) int64 {
	if override != nil {
		return *override
	}
	return uc.opts.Analysis.Seed
}

// textAnalyzer - Analyzer for free text operations, built from the service defaults
func (uc *implUseCase) textAnalyzer(useMock *bool) (analysis.Analyzer, error) {
	cfg, err := uc.buildConfig(analysis.Transcript{}, mindmap.ConfigOverrides{})
	if err != nil {
		return nil, err
	}
	return uc.newAnalyzer(cfg, uc.useMock(useMock), uc.seed(nil))
}

// mapAnalysisError - Translate a ContentAnalysisError into a domain error
func mapAnalysisError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidConfig):
		return mindmap.ErrInvalidConfig
	case errors.Is(err, analysis.ErrInvalidTranscript):
		return mindmap.ErrInvalidTranscript
	default:
		return mindmap.ErrAnalysisFailed
	}
}

// toView - Rows to a mind map view. Row ids become node ids and children are derived from parent links.
func toView(videoID string, rows []model.MindMapNode) mindmap.MindMapView {
	view := mindmap.MindMapView{VideoID: videoID, Nodes: make([]analysis.Node, 0, len(rows))}

	index := make(map[string]int, len(rows))
	for _, r := range rows {
		index[r.ID] = len(view.Nodes)
		view.Nodes = append(view.Nodes, analysis.Node{
			ID:             r.ID,
			VideoID:        r.VideoID,
			ParentNodeID:   r.ParentID,
			Content:        r.Content,
			Summary:        r.Summary,
			TimestampStart: r.TimestampStart,
			TimestampEnd:   r.TimestampEnd,
			NodeType:       analysis.NodeType(r.NodeType),
			Depth:          r.Depth,
			Keywords:       r.Keywords,
			PositionX:      r.PositionX,
			PositionY:      r.PositionY,
			Confidence:     r.Confidence,
			Importance:     r.Importance,
			WordCount:      r.WordCount,
			Children:       []string{},
		})
		if r.UpdatedAt.After(view.UpdatedAt) {
			view.UpdatedAt = r.UpdatedAt
		}
	}

	for _, r := range rows {
		if r.ParentID == nil {
			continue
		}
		if i, ok := index[*r.ParentID]; ok {
			view.Nodes[i].Children = append(view.Nodes[i].Children, r.ID)
		}
	}

	if len(rows) > 0 {
		meta := rows[0].AnalysisMetadata
		view.ContentType = analysis.ContentType(meta.ContentType)
		view.ConfidenceScore = meta.ConfidenceScore
	}
	view.Statistics = analysis.ComputeStatistics(view.Nodes)
	return view
}

func metadataFor(mm analysis.MindMap) model.NodeMetadata {
	version, _ := mm.AnalysisMetadata["analyzer_version"].(string)
	return model.NodeMetadata{
		AnalysisVersion: version,
		ContentType:     string(mm.ContentType),
		ConfidenceScore: mm.ConfidenceScore,
	}
}

func exportObjectName(prefix, videoID, format string) string {
	return path.Join(prefix, videoID+"."+format)
}

func isSRT(objectName string) bool {
	return strings.EqualFold(path.Ext(objectName), ".srt")
}
