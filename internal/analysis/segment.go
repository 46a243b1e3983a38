package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultSegmentConfidence = 0.8
	placeholderImportance    = 0.5
)

// ComputeImportance scores a segment from its length, confidence and duration. Result is in [0,1].
func ComputeImportance(s ContentSegment) float64 {
	score := 0.3*math.Min(float64(s.WordCount)/100.0, 1.0) +
		0.4*s.Confidence +
		0.3*math.Min(s.Duration()/60.0, 1.0)
	return clamp01(score)
}

// WithImportance returns a copy of s carrying the given importance.
func (s ContentSegment) WithImportance(v float64) ContentSegment {
	s.Importance = v
	return s
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (a *implAnalyzer) newContentSegment(index int, p preparedSegment) ContentSegment {
	confidence := DefaultSegmentConfidence
	if p.source.Confidence != nil {
		confidence = *p.source.Confidence
	}

	return ContentSegment{
		ID:             fmt.Sprintf("seg_%d", index),
		Content:        p.text,
		TimestampStart: p.source.StartTime,
		TimestampEnd:   p.source.EndTime,
		Topics:         a.ExtractTopics(p.text, TopicsPerSegment),
		Keywords:       a.ExtractKeywords(p.text, DefaultMaxKeywords),
		Summary:        a.GenerateSummary(p.text, DefaultSummaryLimit),
		Importance:     placeholderImportance,
		Confidence:     confidence,
		WordCount:      len(strings.Fields(p.text)),
	}
}

// analyzeSegments builds and finalizes every segment. Workers write into their own index so the
// result keeps the input order whatever the concurrency.
func (a *implAnalyzer) analyzeSegments(ctx context.Context, prepared []preparedSegment) ([]ContentSegment, error) {
	out := make([]ContentSegment, len(prepared))

	limit := a.cfg.MaxConcurrency
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range prepared {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("segment %d: %v", i, r)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}

			seg := a.newContentSegment(i, p)
			out[i] = seg.WithImportance(ComputeImportance(seg))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
