package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"default", func(*Config) {}, ""},
		{"depth too low", func(c *Config) { c.MaxDepth = 0 }, "Invalid max_depth: must be between 1 and 10"},
		{"depth too high", func(c *Config) { c.MaxDepth = 11 }, "Invalid max_depth: must be between 1 and 10"},
		{"depth upper bound", func(c *Config) { c.MaxDepth = 10 }, ""},
		{"min duration", func(c *Config) { c.MinSegmentDuration = 0 }, "Invalid min_segment_duration: must be positive"},
		{"confidence", func(c *Config) { c.ConfidenceThreshold = 1.2 }, "Invalid confidence_threshold: must be between 0 and 1"},
		{"nan confidence", func(c *Config) { c.ConfidenceThreshold = math.NaN() }, "Invalid confidence_threshold: must be between 0 and 1"},
		{"nan importance", func(c *Config) { c.ImportanceThreshold = math.NaN() }, "Invalid importance_threshold: must be finite"},
		{"infinite importance", func(c *Config) { c.ImportanceThreshold = math.Inf(-1) }, "Invalid importance_threshold: must be finite"},
		{"infinite min duration", func(c *Config) { c.MinSegmentDuration = math.Inf(1) }, "Invalid min_segment_duration: must be positive"},
		{"nan max duration", func(c *Config) { c.MaxSegmentDuration = math.NaN() }, "Invalid max_segment_duration: must be finite"},
		{"content type", func(c *Config) { c.ContentType = "poetry" }, "Invalid content_type: poetry"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.msg == "" {
				assert.NoError(t, err)
				return
			}

			var cae *ContentAnalysisError
			require.ErrorAs(t, err, &cae)
			assert.Equal(t, tc.msg, cae.Message)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.False(t, errors.Is(err, ErrAnalysisFailed))
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 0

	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewMock(cfg, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultConfigForTranscript(t *testing.T) {
	short := DefaultConfigForTranscript(Transcript{Duration: 120, Language: "vi"})
	assert.Equal(t, ContentTypeTutorial, short.ContentType)
	assert.Equal(t, "vi", short.Language)
	assert.Equal(t, 0.4, short.ImportanceThreshold)
	assert.Equal(t, 0.6, short.ConfidenceThreshold)
	assert.False(t, short.UseLLM)

	assert.Equal(t, ContentTypeEducational, DefaultConfigForTranscript(Transcript{Duration: 1200}).ContentType)
	long := DefaultConfigForTranscript(Transcript{Duration: 4000})
	assert.Equal(t, ContentTypeDiscussion, long.ContentType)
	assert.Equal(t, DefaultLanguage, long.Language)
	assert.NoError(t, long.Validate())
}

func TestParseContentType(t *testing.T) {
	ct, ok := ParseContentType(" News ")
	assert.True(t, ok)
	assert.Equal(t, ContentTypeNews, ct)

	_, ok = ParseContentType("vlog")
	assert.False(t, ok)
}

func TestContentAnalysisErrorString(t *testing.T) {
	err := &ContentAnalysisError{Message: "Analysis failed: x", Code: CodeAnalysisError}
	assert.Equal(t, "ANALYSIS_ERROR: Analysis failed: x", err.Error())
	assert.Equal(t, "plain", (&ContentAnalysisError{Message: "plain"}).Error())
}
