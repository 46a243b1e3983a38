package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
)

// ExtractTopics - Topics and keywords from free text
func (uc *implUseCase) ExtractTopics(ctx context.Context, ip mindmap.ExtractTopicsInput) (mindmap.ExtractTopicsOutput, error) {
	if strings.TrimSpace(ip.Content) == "" {
		return mindmap.ExtractTopicsOutput{}, mindmap.ErrEmptyContent
	}
	if ip.MaxTopics == 0 {
		ip.MaxTopics = mindmap.DefaultMaxTopics
	}
	if ip.MaxTopics < mindmap.MinMaxTopics || ip.MaxTopics > mindmap.MaxMaxTopics {
		return mindmap.ExtractTopicsOutput{}, mindmap.ErrInvalidMaxTopics
	}

	a, err := uc.textAnalyzer(ip.UseMock)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.ExtractTopics: Failed to build analyzer: %v", err)
		return mindmap.ExtractTopicsOutput{}, mapAnalysisError(err)
	}

	return mindmap.ExtractTopicsOutput{
		Topics:   a.ExtractTopics(ip.Content, ip.MaxTopics),
		Keywords: a.ExtractKeywords(ip.Content, 0),
	}, nil
}

// Summarize - Extractive summary of free text
func (uc *implUseCase) Summarize(ctx context.Context, ip mindmap.SummarizeInput) (mindmap.SummarizeOutput, error) {
	if strings.TrimSpace(ip.Content) == "" {
		return mindmap.SummarizeOutput{}, mindmap.ErrEmptyContent
	}
	if ip.MaxLength == 0 {
		ip.MaxLength = mindmap.DefaultSummaryLength
	}
	if ip.MaxLength < mindmap.MinSummaryLength || ip.MaxLength > mindmap.MaxSummaryLength {
		return mindmap.SummarizeOutput{}, mindmap.ErrInvalidMaxLength
	}

	a, err := uc.textAnalyzer(ip.UseMock)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Summarize: Failed to build analyzer: %v", err)
		return mindmap.SummarizeOutput{}, mapAnalysisError(err)
	}

	summary := a.GenerateSummary(ip.Content, ip.MaxLength)
	return mindmap.SummarizeOutput{
		Summary:        summary,
		OriginalLength: utf8.RuneCountInString(ip.Content),
		SummaryLength:  utf8.RuneCountInString(summary),
	}, nil
}

// Estimate - Expected analysis time for a transcript of the given size
func (uc *implUseCase) Estimate(ctx context.Context, ip mindmap.EstimateInput) (mindmap.EstimateOutput, error) {
	if ip.SegmentsCount < 0 {
		ip.SegmentsCount = 0
	}
	if ip.Duration < 0 {
		ip.Duration = 0
	}
	mock := uc.useMock(ip.UseMock)

	return mindmap.EstimateOutput{
		SegmentsCount:    ip.SegmentsCount,
		Duration:         ip.Duration,
		UsingMock:        mock,
		EstimatedSeconds: analysis.EstimateProcessingTime(ip.SegmentsCount, ip.Duration, mock),
	}, nil
}

// Status - Static service description
func (uc *implUseCase) Status(ctx context.Context) mindmap.StatusOutput {
	analyzerType := analysis.AnalyzerName
	if uc.opts.Analysis.UseMock {
		analyzerType = analysis.MockAnalyzerName
	}

	features := make(map[string]bool, len(mindmap.Features))
	for k, v := range mindmap.Features {
		features[k] = v
	}

	return mindmap.StatusOutput{
		ServiceName:           mindmap.ServiceName,
		UsingMock:             uc.opts.Analysis.UseMock,
		AnalyzerType:          analyzerType,
		Features:              features,
		SupportedContentTypes: append([]analysis.ContentType(nil), analysis.ContentTypes...),
		MaxDepth:              analysis.MaxMaxDepth,
		Version:               mindmap.ServiceVersion,
	}
}
