package analysis

import "fmt"

const (
	CodeAnalysisError     = "ANALYSIS_ERROR"
	CodeConfigError       = "CONFIG_ERROR"
	CodeInvalidTranscript = "INVALID_TRANSCRIPT"
)

// ContentAnalysisError is the only error kind returned by the analyzers.
type ContentAnalysisError struct {
	Message string
	Code    string
	Err     error
}

var (
	// ErrAnalysisFailed matches any ContentAnalysisError with CodeAnalysisError through errors.Is.
	ErrAnalysisFailed    = &ContentAnalysisError{Code: CodeAnalysisError}
	ErrInvalidConfig     = &ContentAnalysisError{Code: CodeConfigError}
	ErrInvalidTranscript = &ContentAnalysisError{Code: CodeInvalidTranscript}
)

func newError(code, format string, args ...any) *ContentAnalysisError {
	return &ContentAnalysisError{Message: fmt.Sprintf(format, args...), Code: code}
}

func wrapError(err error) *ContentAnalysisError {
	return &ContentAnalysisError{
		Message: fmt.Sprintf("Analysis failed: %v", err),
		Code:    CodeAnalysisError,
		Err:     err,
	}
}

func (e *ContentAnalysisError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ContentAnalysisError) Unwrap() error {
	return e.Err
}

// Is compares by code so callers can match sentinel values.
func (e *ContentAnalysisError) Is(target error) bool {
	t, ok := target.(*ContentAnalysisError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
