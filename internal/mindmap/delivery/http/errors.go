package http

import (
	"errors"
	"net/http"

	"mindmap-srv/internal/mindmap"
	pkgErrors "mindmap-srv/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errMindMapNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Mind map not found")
	errInvalidVideoID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid video_id")
	errInvalidConfig       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid analysis configuration")
	errInvalidTranscript   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid transcript")
	errEmptyTranscript     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transcript has no segments")
	errTranscriptNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "Transcript object not found")
	errTranscriptDownload  = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to download transcript")
	errTranscriptParse     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Failed to parse transcript")
	errAnalysisFailed      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Analysis failed")
	errPersistFailed       = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to store mind map")
	errInvalidMaxTopics    = pkgErrors.NewHTTPError(http.StatusBadRequest, "max_topics must be between 1 and 50")
	errInvalidMaxLength    = pkgErrors.NewHTTPError(http.StatusBadRequest, "max_length must be between 10 and 500")
	errEmptyContent        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Content is required")
	errEmptyQuery          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Query is required")
	errSearchFailed        = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Search failed")
	errExportFailed        = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Export failed")
	errInvalidExportFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "Export format must be json or yaml")
	errInvalidContentType  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid content_type")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, mindmap.ErrMindMapNotFound):
		return errMindMapNotFound
	case errors.Is(err, mindmap.ErrInvalidVideoID):
		return errInvalidVideoID
	case errors.Is(err, mindmap.ErrInvalidConfig):
		return errInvalidConfig
	case errors.Is(err, mindmap.ErrInvalidTranscript):
		return errInvalidTranscript
	case errors.Is(err, mindmap.ErrEmptyTranscript):
		return errEmptyTranscript
	case errors.Is(err, mindmap.ErrTranscriptNotFound):
		return errTranscriptNotFound
	case errors.Is(err, mindmap.ErrTranscriptDownloadFailed):
		return errTranscriptDownload
	case errors.Is(err, mindmap.ErrTranscriptParseFailed):
		return errTranscriptParse
	case errors.Is(err, mindmap.ErrAnalysisFailed):
		return errAnalysisFailed
	case errors.Is(err, mindmap.ErrPersistFailed):
		return errPersistFailed
	case errors.Is(err, mindmap.ErrInvalidMaxTopics):
		return errInvalidMaxTopics
	case errors.Is(err, mindmap.ErrInvalidMaxLength):
		return errInvalidMaxLength
	case errors.Is(err, mindmap.ErrEmptyContent):
		return errEmptyContent
	case errors.Is(err, mindmap.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, mindmap.ErrSearchFailed):
		return errSearchFailed
	case errors.Is(err, mindmap.ErrExportFailed):
		return errExportFailed
	case errors.Is(err, mindmap.ErrInvalidExportFormat):
		return errInvalidExportFormat
	default:
		return err
	}
}
