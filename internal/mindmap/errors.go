package mindmap

import "errors"

var (
	ErrMindMapNotFound          = errors.New("mindmap: mind map not found")
	ErrInvalidVideoID           = errors.New("mindmap: invalid video id")
	ErrInvalidConfig            = errors.New("mindmap: invalid analysis config")
	ErrInvalidTranscript        = errors.New("mindmap: invalid transcript")
	ErrEmptyTranscript          = errors.New("mindmap: transcript has no segments")
	ErrTranscriptNotFound       = errors.New("mindmap: transcript object not found")
	ErrTranscriptDownloadFailed = errors.New("mindmap: transcript download failed")
	ErrTranscriptParseFailed    = errors.New("mindmap: transcript parse failed")
	ErrAnalysisFailed           = errors.New("mindmap: analysis failed")
	ErrPersistFailed            = errors.New("mindmap: persist failed")
	ErrInvalidMaxTopics         = errors.New("mindmap: max_topics must be between 1 and 50")
	ErrInvalidMaxLength         = errors.New("mindmap: max_length must be between 10 and 500")
	ErrEmptyContent             = errors.New("mindmap: content is required")
	ErrEmptyQuery               = errors.New("mindmap: query is required")
	ErrSearchFailed             = errors.New("mindmap: search failed")
	ErrExportFailed             = errors.New("mindmap: export failed")
	ErrInvalidExportFormat      = errors.New("mindmap: export format must be json or yaml")
)
