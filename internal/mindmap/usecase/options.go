package usecase

import (
	"time"

	"mindmap-srv/config"
)

// NewOptions maps service configuration onto usecase options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Analysis: AnalysisOptions{
			UseMock:             cfg.Analysis.UseMock,
			Seed:                cfg.Analysis.Seed,
			ImportanceThreshold: cfg.Analysis.ImportanceThreshold,
			ConfidenceThreshold: cfg.Analysis.ConfidenceThreshold,
			MaxDepth:            cfg.Analysis.MaxDepth,
			Dedup:               cfg.Analysis.Dedup,
			MaxConcurrency:      cfg.Analysis.MaxConcurrency,
		},
		TranscriptBucket: cfg.MinIO.TranscriptBucket,
		ExportBucket:     cfg.MinIO.Bucket,
		ExportPrefix:     cfg.MinIO.ExportPrefix,
		PresignExpiry:    time.Duration(cfg.MinIO.PresignExpiry) * time.Second,
	}
}
