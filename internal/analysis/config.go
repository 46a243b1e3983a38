package analysis

import "math"

const (
	MinMaxDepth = 1
	MaxMaxDepth = 10

	DefaultLanguage = "en"
	DefaultLLMModel = "gpt-3.5-turbo"

	shortVideoSeconds = 300
	longVideoSeconds  = 3600
)

// Config drives one analysis run.
//
// MinSegmentDuration and MaxSegmentDuration are advisory. UseLLM and LLMModel are reserved.
// ConfidenceThreshold is only read by the mock analyzer.
type Config struct {
	MaxDepth            int         `json:"max_depth" yaml:"max_depth"`
	MinSegmentDuration  float64     `json:"min_segment_duration" yaml:"min_segment_duration"`
	MaxSegmentDuration  float64     `json:"max_segment_duration" yaml:"max_segment_duration"`
	ContentType         ContentType `json:"content_type" yaml:"content_type"`
	Language            string      `json:"language" yaml:"language"`
	UseLLM              bool        `json:"use_llm" yaml:"use_llm"`
	LLMModel            string      `json:"llm_model" yaml:"llm_model"`
	ConfidenceThreshold float64     `json:"confidence_threshold" yaml:"confidence_threshold"`
	ImportanceThreshold float64     `json:"importance_threshold" yaml:"importance_threshold"`

	// Dedup keeps one detail node per segment, under the first topic that claims it.
	Dedup bool `json:"dedup" yaml:"dedup"`
	// MaxConcurrency bounds segment analysis workers. Zero or less means sequential.
	MaxConcurrency int `json:"max_concurrency" yaml:"max_concurrency"`
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:            4,
		MinSegmentDuration:  10.0,
		MaxSegmentDuration:  300.0,
		ContentType:         ContentTypeEducational,
		Language:            DefaultLanguage,
		UseLLM:              true,
		LLMModel:            DefaultLLMModel,
		ConfidenceThreshold: 0.7,
		ImportanceThreshold: 0.5,
	}
}

// DefaultConfigForTranscript guesses the content type from the video length and uses the
// more permissive thresholds applied to automatically triggered runs.
func DefaultConfigForTranscript(t Transcript) Config {
	cfg := DefaultConfig()

	switch {
	case t.Duration < shortVideoSeconds:
		cfg.ContentType = ContentTypeTutorial
	case t.Duration > longVideoSeconds:
		cfg.ContentType = ContentTypeDiscussion
	}

	if t.Language != "" {
		cfg.Language = t.Language
	}
	cfg.UseLLM = false
	cfg.ConfidenceThreshold = 0.6
	cfg.ImportanceThreshold = 0.4
	return cfg
}

// Validate returns a ContentAnalysisError with CodeConfigError on the first invalid field.
func (c Config) Validate() error {
	if c.MaxDepth < MinMaxDepth || c.MaxDepth > MaxMaxDepth {
		return newError(CodeConfigError, "Invalid max_depth: must be between %d and %d", MinMaxDepth, MaxMaxDepth)
	}
	if !isFinite(c.MinSegmentDuration) || c.MinSegmentDuration <= 0 {
		return newError(CodeConfigError, "Invalid min_segment_duration: must be positive")
	}
	if !isFinite(c.MaxSegmentDuration) {
		return newError(CodeConfigError, "Invalid max_segment_duration: must be finite")
	}
	if !isFinite(c.ConfidenceThreshold) || c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return newError(CodeConfigError, "Invalid confidence_threshold: must be between 0 and 1")
	}
	if !isFinite(c.ImportanceThreshold) {
		return newError(CodeConfigError, "Invalid importance_threshold: must be finite")
	}
	if c.ContentType != "" {
		if _, ok := ParseContentType(string(c.ContentType)); !ok {
			return newError(CodeConfigError, "Invalid content_type: %s", c.ContentType)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Config) contentType() ContentType {
	if c.ContentType == "" {
		return ContentTypeEducational
	}
	return c.ContentType
}
