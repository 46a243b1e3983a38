package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T, cfg Config, opts ...Option) *implAnalyzer {
	t.Helper()
	a, err := New(cfg, opts...)
	require.NoError(t, err)
	return a.(*implAnalyzer)
}

func TestExtractTopicsRanking(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	topics := a.ExtractTopics("Kafka brokers replicate kafka partitions; brokers elect leaders. Kafka!", 0)
	assert.Equal(t, []string{"kafka", "brokers", "replicate", "partitions", "elect"}, topics)
}

func TestExtractTopicsDropsStopAndShortWords(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	assert.Empty(t, a.ExtractTopics("we can do it so go on", 0))
	assert.Empty(t, a.ExtractTopics("", 0))
	assert.Equal(t, []string{"rust"}, a.ExtractTopics("Rust is it", 0))
}

type nounSet map[string]bool

func (n nounSet) Nouns(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if n[t] {
			out = append(out, t)
		}
	}
	return out
}

func TestExtractTopicsWithPOSTagger(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig(), WithPOSTagger(nounSet{"database": true, "index": true}))

	topics := a.ExtractTopics("Quickly build the database index, then query the database", 0)
	assert.Equal(t, []string{"database", "index"}, topics)
}

func TestExtractKeywords(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	text := "Go the x2y supercalifragilisticexpialidocious docker docker compose"
	assert.Equal(t, []string{"docker", "compose"}, a.ExtractKeywords(text, 0))
	assert.Equal(t, []string{"docker"}, a.ExtractKeywords(text, 1))
}

func TestGenerateSummary(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	tcs := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"empty", "", 100, ""},
		{"only punctuation", "...", 100, "..."},
		{"single sentence", "No punctuation here at all", 100, "No punctuation here at all"},
		{"best scoring sentence", "Go is fast. Go channels are great. Cats sleep.", 100, "Go channels are great"},
		{"positional boost", "Alpha beta gamma. Delta epsilon zeta.", 100, "Alpha beta gamma"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.GenerateSummary(tc.in, tc.max))
		})
	}
}

func TestGenerateSummaryBound(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	long := strings.Repeat("streaming pipelines ", 40)

	for _, max := range []int{10, 50, 100, 150, 200} {
		for _, text := range []string{long, long + ". " + long, "x"} {
			s := a.GenerateSummary(text, max)
			assert.LessOrEqual(t, utf8.RuneCountInString(s), max)
		}
	}

	s := a.GenerateSummary(long, 50)
	assert.True(t, strings.HasSuffix(s, "..."))
}
