package usecase

import (
	"context"
	"io"
	"strings"

	"mindmap-srv/internal/analysis"
	"mindmap-srv/internal/mindmap"
	"mindmap-srv/pkg/minio"
)

// buildTranscript - Inline segments win over a MinIO transcript object
func (uc *implUseCase) buildTranscript(ctx context.Context, ip mindmap.GenerateInput) (analysis.Transcript, error) {
	t := analysis.Transcript{
		VideoID:  ip.VideoID,
		Segments: ip.Segments,
		Language: ip.Language,
		Duration: ip.Duration,
	}

	if len(t.Segments) == 0 && strings.TrimSpace(ip.TranscriptObject) != "" {
		loaded, err := uc.loadTranscript(ctx, ip.TranscriptObject)
		if err != nil {
			return analysis.Transcript{}, err
		}
		t.Segments = loaded.Segments
		if t.Language == "" {
			t.Language = loaded.Language
		}
		if t.Duration <= 0 {
			t.Duration = loaded.Duration
		}
	}

	if len(t.Segments) == 0 {
		return analysis.Transcript{}, mindmap.ErrEmptyTranscript
	}
	if t.Duration <= 0 {
		t.Duration = t.MaxEndTime()
	}
	return t, nil
}

// loadTranscript - Download a transcript from the transcript bucket and decode it as SRT or JSON
func (uc *implUseCase) loadTranscript(ctx context.Context, objectName string) (analysis.Transcript, error) {
	exists, err := uc.minio.FileExists(ctx, uc.opts.TranscriptBucket, objectName)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.loadTranscript: Failed to stat %s: %v", objectName, err)
		return analysis.Transcript{}, mindmap.ErrTranscriptDownloadFailed
	}
	if !exists {
		return analysis.Transcript{}, mindmap.ErrTranscriptNotFound
	}

	reader, _, err := uc.minio.DownloadFile(ctx, &minio.DownloadRequest{
		BucketName: uc.opts.TranscriptBucket,
		ObjectName: objectName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.loadTranscript: Failed to download %s: %v", objectName, err)
		return analysis.Transcript{}, mindmap.ErrTranscriptDownloadFailed
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.loadTranscript: Failed to read %s: %v", objectName, err)
		return analysis.Transcript{}, mindmap.ErrTranscriptDownloadFailed
	}

	if isSRT(objectName) {
		segments, err := analysis.ParseSRT(data)
		if err != nil {
			uc.l.Errorf(ctx, "mindmap.usecase.loadTranscript: Failed to parse SRT %s: %v", objectName, err)
			return analysis.Transcript{}, mindmap.ErrTranscriptParseFailed
		}
		return analysis.Transcript{Segments: segments}, nil
	}

	t, err := analysis.ParseTranscriptJSON(data)
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.loadTranscript: Failed to parse JSON %s: %v", objectName, err)
		return analysis.Transcript{}, mindmap.ErrTranscriptParseFailed
	}
	return t, nil
}
