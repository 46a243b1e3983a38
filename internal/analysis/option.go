package analysis

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator builds the id of the index-th node of a run.
type IDGenerator func(videoID string, index int) string

// NewNodeID returns "<video>_<index>_<8 random hex chars>".
func NewNodeID(videoID string, index int) string {
	return fmt.Sprintf("%s_%d_%s", videoID, index, uuid.NewString()[:8])
}

type options struct {
	tokenizer Tokenizer
	tagger    POSTagger
	idGen     IDGenerator
	layout    Layout
}

type Option func(*options)

func WithTokenizer(t Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}

// WithPOSTagger enables noun filtering of topics.
func WithPOSTagger(t POSTagger) Option {
	return func(o *options) { o.tagger = t }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) {
		if g != nil {
			o.idGen = g
		}
	}
}

func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

func buildOptions(opts []Option) options {
	o := options{
		tokenizer: RegexTokenizer{},
		idGen:     NewNodeID,
		layout:    DefaultLayout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
