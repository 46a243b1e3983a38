package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs(v string, i int) string {
	return fmt.Sprintf("%s-%d", v, i)
}

func longTranscript(n int) Transcript {
	tr := Transcript{VideoID: "mock1", Duration: float64(n * 20)}
	for i := range n {
		tr.Segments = append(tr.Segments, TranscriptSegment{
			StartTime: float64(i * 20),
			EndTime:   float64((i + 1) * 20),
			Text:      fmt.Sprintf("Segment %d explains distributed consensus. Leaders replicate logs.", i),
		})
	}
	return tr
}

func TestMockIsDeterministicForSeed(t *testing.T) {
	a, err := NewMock(DefaultConfig(), 42, WithIDGenerator(sequentialIDs))
	require.NoError(t, err)
	b, err := NewMock(DefaultConfig(), 42, WithIDGenerator(sequentialIDs))
	require.NoError(t, err)

	tr := longTranscript(20)
	x, err := a.Analyze(context.Background(), tr)
	require.NoError(t, err)
	y, err := b.Analyze(context.Background(), tr)
	require.NoError(t, err)

	assert.Equal(t, x.Nodes, y.Nodes)
	assert.Equal(t, x.ConfidenceScore, y.ConfidenceScore)
	assert.GreaterOrEqual(t, x.ConfidenceScore, 0.75)
	assert.LessOrEqual(t, x.ConfidenceScore, 0.95)
}

func TestMockStructure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentType = ContentTypeReview
	m, err := NewMock(cfg, 7)
	require.NoError(t, err)

	mm, err := m.Analyze(context.Background(), longTranscript(20))
	require.NoError(t, err)
	assertTree(t, mm)

	assert.Equal(t, true, mm.AnalysisMetadata["mock"])
	assert.Equal(t, MockAnalyzerVersion, mm.AnalysisMetadata["analyzer_version"])
	assert.Equal(t, 20, mm.AnalysisMetadata["segments_count"])
	assert.Equal(t, 4, mm.AnalysisMetadata["topics_count"])
	assert.Equal(t, ContentTypeReview, mm.ContentType)

	root := mm.Nodes[0]
	assert.Equal(t, "Mock analysis for review content", root.Content)
	assert.Equal(t, 400.0, root.PositionX)
	assert.Contains(t, root.Keywords, "review")
	assert.Equal(t, 400.0, root.TimestampEnd)

	for _, topic := range mm.NodesByDepth(1) {
		assert.LessOrEqual(t, len(topic.Children), 3)
		assert.NotNil(t, topic.Keywords)
		assert.Empty(t, topic.Keywords)
	}
	for _, d := range mm.NodesByDepth(2) {
		assert.Greater(t, *d.Importance, 0.6)
	}
}

func TestMockTopicKeywordsByContentType(t *testing.T) {
	tcs := map[ContentType]int{
		ContentTypeEducational:   5,
		ContentTypeTutorial:      5,
		ContentTypeEntertainment: 5,
		ContentTypeNews:          0,
		ContentTypeDiscussion:    0,
	}
	for ct, want := range tcs {
		t.Run(string(ct), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ContentType = ct
			m, err := NewMock(cfg, 11)
			require.NoError(t, err)

			mm, err := m.Analyze(context.Background(), longTranscript(10))
			require.NoError(t, err)
			for _, topic := range mm.NodesByDepth(1) {
				assert.Len(t, topic.Keywords, want)
			}
		})
	}
}

func TestMockWithoutSegments(t *testing.T) {
	m, err := NewMock(DefaultConfig(), 1)
	require.NoError(t, err)

	mm, err := m.Analyze(context.Background(), Transcript{VideoID: "none"})
	require.NoError(t, err)
	assertTree(t, mm)

	require.Len(t, mm.Nodes, 4)
	assert.Equal(t, 600.0, mm.Nodes[0].TimestampEnd)
	for _, topic := range mm.NodesByDepth(1) {
		assert.True(t, strings.HasPrefix(topic.Content, "Content related to "))
		assert.Equal(t, 60.0, topic.TimestampEnd)
	}
}

func TestMockTextHelpers(t *testing.T) {
	m, err := NewMock(DefaultConfig(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"general", "content", "topic"}, m.ExtractTopics("a b c", 0))
	assert.Equal(t, []string{"kafka", "topics", "partitions"}, m.ExtractTopics("Kafka topics and partitions scale", 0))
	assert.Equal(t, []string{"kafka", "topics", "scale"}, m.ExtractKeywords("kafka topics and kafka scale", 0))

	assert.Equal(t, "short", m.GenerateSummary("short", 100))
	assert.Equal(t, "First sentence", m.GenerateSummary("First sentence. "+strings.Repeat("x", 200), 100))
	assert.Len(t, m.GenerateSummary(strings.Repeat("y", 200), 50), 50)
}

func TestNewFromConfig(t *testing.T) {
	a, err := NewFromConfig(DefaultConfig(), true, 3)
	require.NoError(t, err)
	assert.Equal(t, MockAnalyzerName, a.Name())

	a, err = NewFromConfig(DefaultConfig(), false, 3)
	require.NoError(t, err)
	assert.Equal(t, AnalyzerName, a.Name())
}
