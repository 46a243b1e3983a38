package analysis

import "context"

// Analyzer turns a transcript into a mind map.
// Implementations are safe for concurrent use.
type Analyzer interface {
	// Analyze runs the whole pipeline. Errors are always *ContentAnalysisError.
	Analyze(ctx context.Context, t Transcript) (MindMap, error)
	// ExtractTopics returns up to limit topics, 5 when limit is not positive.
	ExtractTopics(content string, limit int) []string
	// ExtractKeywords returns up to max keywords, 10 when max is not positive.
	ExtractKeywords(content string, max int) []string
	GenerateSummary(content string, maxLength int) string
	Config() Config
	Name() string
}

// NewFromConfig returns the mock analyzer when useMock is set, the heuristic one otherwise.
func NewFromConfig(cfg Config, useMock bool, seed int64, opts ...Option) (Analyzer, error) {
	if useMock {
		return NewMock(cfg, seed, opts...)
	}
	return New(cfg, opts...)
}
