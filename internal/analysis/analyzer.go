package analysis

import (
	"context"
	"fmt"
	"time"
)

const (
	AnalyzerVersion = "1.0.0"
	AnalyzerName    = "ContentAnalyzer"
)

type implAnalyzer struct {
	cfg       Config
	tokenizer Tokenizer
	tagger    POSTagger
	idGen     IDGenerator
	layout    Layout
}

// New returns the frequency based analyzer. The config is validated up front.
func New(cfg Config, opts ...Option) (Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	return &implAnalyzer{
		cfg:       cfg,
		tokenizer: o.tokenizer,
		tagger:    o.tagger,
		idGen:     o.idGen,
		layout:    o.layout,
	}, nil
}

func (a *implAnalyzer) Config() Config { return a.cfg }
func (a *implAnalyzer) Name() string   { return AnalyzerName }

func (a *implAnalyzer) Analyze(ctx context.Context, t Transcript) (mm MindMap, err error) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			mm, err = MindMap{}, wrapError(fmt.Errorf("%v", r))
		}
	}()

	if err := validateTranscript(t); err != nil {
		return MindMap{}, err
	}

	// Step 1: clean and filter
	prepared := preprocess(t.Segments)

	// Step 2: per segment analysis
	segments, err := a.analyzeSegments(ctx, prepared)
	if err != nil {
		return MindMap{}, wrapError(err)
	}

	// Step 3: main topics
	hierarchy := a.extractHierarchy(segments)

	// Step 4: tree, then positions
	nodes := a.layout.Apply(a.buildTree(t.VideoID, segments, hierarchy))

	return MindMap{
		VideoID:     t.VideoID,
		Nodes:       nodes,
		ContentType: a.cfg.contentType(),
		AnalysisMetadata: map[string]any{
			"segments_count":   len(segments),
			"topics_count":     len(hierarchy),
			"nodes_count":      len(nodes),
			"max_depth":        maxDepth(nodes),
			"language":         languageOf(t, a.cfg),
			"analyzer_version": AnalyzerVersion,
			"dedup":            a.cfg.Dedup,
		},
		TotalDuration:   totalDuration(t),
		ProcessingTime:  time.Since(started).Seconds(),
		ConfidenceScore: AggregateConfidence(nodes),
	}, nil
}

// validateTranscript rejects inputs that would break node invariants downstream.
func validateTranscript(t Transcript) error {
	if t.VideoID == "" {
		return newError(CodeInvalidTranscript, "video_id is required")
	}
	for i, s := range t.Segments {
		if !isFinite(s.StartTime) || !isFinite(s.EndTime) {
			return newError(CodeInvalidTranscript, "segment %d: timestamps must be finite", i)
		}
		if s.EndTime < s.StartTime {
			return newError(CodeInvalidTranscript, "segment %d: end_time must not precede start_time", i)
		}
		if s.Confidence != nil && (!isFinite(*s.Confidence) || *s.Confidence < 0 || *s.Confidence > 1) {
			return newError(CodeInvalidTranscript, "segment %d: confidence must be between 0 and 1", i)
		}
	}
	return nil
}

func languageOf(t Transcript, cfg Config) string {
	switch {
	case t.Language != "":
		return t.Language
	case cfg.Language != "":
		return cfg.Language
	}
	return DefaultLanguage
}

func totalDuration(t Transcript) float64 {
	if t.Duration > 0 {
		return t.Duration
	}
	return t.MaxEndTime()
}
