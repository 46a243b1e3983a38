package usecase

import (
	"time"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/minio"
)

const (
	defaultExportBucket     = "mindmap-exports"
	defaultTranscriptBucket = "transcripts"
	defaultExportPrefix     = "mindmaps"
	defaultPresignExpiry    = time.Hour
)

// AnalysisOptions are the service wide analysis settings applied before request overrides.
type AnalysisOptions struct {
	UseMock             bool
	Seed                int64
	ImportanceThreshold float64
	ConfidenceThreshold float64
	MaxDepth            int
	Dedup               bool
	MaxConcurrency      int
}

// Options holds configuration for the mindmap usecase.
type Options struct {
	Analysis         AnalysisOptions
	TranscriptBucket string
	ExportBucket     string
	ExportPrefix     string
	PresignExpiry    time.Duration
}

// AnalyzerFactory builds the analyzer for one run.
type AnalyzerFactory func(cfg analysis.Config, useMock bool, seed int64) (analysis.Analyzer, error)

type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	cache       repository.CacheRepository
	vector      repository.VectorRepository
	minio       minio.MinIO
	producer    mindmap.Producer
	notifier    mindmap.Notifier
	opts        Options
	newAnalyzer AnalyzerFactory
	now         func() time.Time
}

// New creates a new mindmap UseCase. producer and notifier may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	cache repository.CacheRepository,
	vector repository.VectorRepository,
	minioClient minio.MinIO,
	producer mindmap.Producer,
	notifier mindmap.Notifier,
	opts Options,
) mindmap.UseCase {
	if opts.TranscriptBucket == "" {
		opts.TranscriptBucket = defaultTranscriptBucket
	}
	if opts.ExportBucket == "" {
		opts.ExportBucket = defaultExportBucket
	}
	if opts.ExportPrefix == "" {
		opts.ExportPrefix = defaultExportPrefix
	}
	if opts.PresignExpiry <= 0 {
		opts.PresignExpiry = defaultPresignExpiry
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		cache:    cache,
		vector:   vector,
		minio:    minioClient,
		producer: producer,
		notifier: notifier,
		opts:     opts,
		newAnalyzer: func(cfg analysis.Config, useMock bool, seed int64) (analysis.Analyzer, error) {
			return analysis.NewFromConfig(cfg, useMock, seed)
		},
		now: time.Now,
	}
}
