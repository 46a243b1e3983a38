package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vocabulary = []string{
	"apple", "banana", "cherry", "damson", "elderberry", "feijoa", "guava", "huckleberry",
	"imbe", "jackfruit", "kiwano", "lime", "mango", "nectarine", "olive", "papaya",
	"quince", "raspberry", "satsuma", "tamarind",
}

// assertTree checks the structural invariants every mind map must satisfy.
func assertTree(t *testing.T, mm MindMap) {
	t.Helper()

	pos := make(map[string]int, len(mm.Nodes))
	roots := 0
	for i, n := range mm.Nodes {
		_, dup := pos[n.ID]
		require.False(t, dup, "duplicate id %s", n.ID)
		pos[n.ID] = i

		assert.GreaterOrEqual(t, n.TimestampEnd, n.TimestampStart, n.ID)
		if n.ParentNodeID == nil {
			roots++
			assert.Equal(t, 0, n.Depth)
			continue
		}
		p, ok := pos[*n.ParentNodeID]
		require.True(t, ok, "parent of %s must be created earlier", n.ID)
		assert.Equal(t, mm.Nodes[p].Depth+1, n.Depth)
	}
	assert.Equal(t, 1, roots)

	seen := make(map[string]bool)
	for _, n := range mm.Nodes {
		for _, c := range n.Children {
			require.False(t, seen[c], "child %s listed twice", c)
			seen[c] = true
			child := mm.Nodes[pos[c]]
			require.NotNil(t, child.ParentNodeID)
			assert.Equal(t, n.ID, *child.ParentNodeID)
		}
	}
	assert.Len(t, seen, len(mm.Nodes)-1)
}

func sharedTopicTranscript(n int) Transcript {
	t := Transcript{VideoID: "vid42", Language: "en", Duration: float64(n * 30)}
	for i := range n {
		t.Segments = append(t.Segments, TranscriptSegment{
			StartTime: float64(i * 30),
			EndTime:   float64((i + 1) * 30),
			Text:      fmt.Sprintf("kafka %s %s", vocabulary[2*i], vocabulary[2*i+1]),
		})
	}
	return t
}

func TestAnalyzeTooShortSegment(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	mm, err := a.Analyze(context.Background(), Transcript{
		VideoID:  "v1",
		Segments: []TranscriptSegment{{StartTime: 0, EndTime: 5, Text: "Hi."}},
	})
	require.NoError(t, err)
	assertTree(t, mm)

	require.Len(t, mm.Nodes, 1)
	root := mm.Nodes[0]
	assert.Equal(t, NodeTypeRoot, root.NodeType)
	assert.Equal(t, "Content analysis for video v1", root.Content)
	assert.Equal(t, "Mind map overview with 0 main topics", root.Summary)
	assert.Equal(t, 0.0, root.TimestampEnd)
	assert.Equal(t, []string{"overview", "analysis", "mindmap"}, root.Keywords)
	assert.Equal(t, 0, mm.AnalysisMetadata["segments_count"])
	assert.Equal(t, 0, mm.AnalysisMetadata["topics_count"])
	assert.Equal(t, 1, mm.AnalysisMetadata["nodes_count"])
	assert.Equal(t, 0, mm.AnalysisMetadata["max_depth"])
	assert.InDelta(t, 0.9, mm.ConfidenceScore, 1e-9)
}

func TestAnalyzeNoSegments(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	mm, err := a.Analyze(context.Background(), Transcript{VideoID: "empty"})
	require.NoError(t, err)
	assert.Len(t, mm.Nodes, 1)
	assert.Equal(t, AnalyzerVersion, mm.AnalysisMetadata["analyzer_version"])
	assert.Equal(t, DefaultLanguage, mm.AnalysisMetadata["language"])
}

func TestAnalyzeEverySegmentPasses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImportanceThreshold = 0
	a := newTestAnalyzer(t, cfg)

	tr := Transcript{VideoID: "v2", Duration: 300}
	for i := range 10 {
		tr.Segments = append(tr.Segments, TranscriptSegment{
			StartTime: float64(i * 30),
			EndTime:   float64((i + 1) * 30),
			Text:      vocabulary[2*i] + " " + vocabulary[2*i+1] + " orchard",
		})
	}

	mm, err := a.Analyze(context.Background(), tr)
	require.NoError(t, err)
	assertTree(t, mm)

	st := mm.Statistics()
	assert.Equal(t, 10, st.NodeTypes[NodeTypeTopic])
	assert.Equal(t, 2, mm.AnalysisMetadata["max_depth"])
	assert.Equal(t, 10, mm.AnalysisMetadata["segments_count"])

	// "orchard" is in every segment and ranks first; the other nine topics own one segment each.
	topics := mm.NodesByDepth(1)
	assert.Equal(t, "apple banana orchard", mm.Children(topics[0].ID)[0].Content)
	assert.Len(t, topics[0].Children, 10)
	for _, topic := range topics[1:] {
		assert.Len(t, topic.Children, 1)
	}
	assert.Equal(t, 19, st.NodeTypes[NodeTypeDetail])
	assert.Equal(t, 30, st.TotalNodes)
}

func TestAnalyzeSharedTopicNode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImportanceThreshold = 0
	a := newTestAnalyzer(t, cfg)

	mm, err := a.Analyze(context.Background(), sharedTopicTranscript(10))
	require.NoError(t, err)

	topic := mm.NodesByDepth(1)[0]
	assert.Equal(t, 0.0, topic.TimestampStart)
	assert.Equal(t, 300.0, topic.TimestampEnd)
	assert.Equal(t, 30, *topic.WordCount)
	assert.InDelta(t, 1.0, *topic.Confidence, 1e-9)
	assert.Equal(t, "kafka", topic.Keywords[0])
	assert.LessOrEqual(t, len(topic.Summary), TopicSummaryMax)
	assert.Equal(t, 300.0, mm.Nodes[0].TimestampEnd)
	assert.Equal(t, "Mind map overview with 10 main topics", mm.Nodes[0].Summary)
}

func TestAnalyzeDedup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImportanceThreshold = 0
	cfg.Dedup = true
	a := newTestAnalyzer(t, cfg)

	mm, err := a.Analyze(context.Background(), sharedTopicTranscript(10))
	require.NoError(t, err)
	assertTree(t, mm)

	st := mm.Statistics()
	assert.Equal(t, 10, st.NodeTypes[NodeTypeDetail])
	assert.Len(t, mm.NodesByDepth(1)[0].Children, 10)
	assert.Equal(t, true, mm.AnalysisMetadata["dedup"])
}

func TestAnalyzeImportanceFilter(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	high := 1.0

	tr := sharedTopicTranscript(6)
	tr.Segments[1].Confidence = &high
	tr.Segments[4].Confidence = &high

	mm, err := a.Analyze(context.Background(), tr)
	require.NoError(t, err)
	assertTree(t, mm)

	details := mm.NodesByDepth(2)
	require.NotEmpty(t, details)
	for _, d := range details {
		assert.Greater(t, *d.Importance, a.cfg.ImportanceThreshold)
		assert.Equal(t, 1.0, *d.Confidence)
	}
}

func TestAnalyzeMaxDepthOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	cfg.ImportanceThreshold = 0
	a := newTestAnalyzer(t, cfg)

	mm, err := a.Analyze(context.Background(), sharedTopicTranscript(4))
	require.NoError(t, err)
	assert.Empty(t, mm.NodesByDepth(2))
	assert.Equal(t, 1, mm.AnalysisMetadata["max_depth"])
}

func TestAnalyzeIsRepeatable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImportanceThreshold = 0.3
	cfg.MaxConcurrency = 4
	a := newTestAnalyzer(t, cfg)
	tr := sharedTopicTranscript(8)

	first, err := a.Analyze(context.Background(), tr)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), tr)
	require.NoError(t, err)

	require.Len(t, second.Nodes, len(first.Nodes))
	parentPos := func(mm MindMap, n Node) int {
		if n.ParentNodeID == nil {
			return -1
		}
		for i, c := range mm.Nodes {
			if c.ID == *n.ParentNodeID {
				return i
			}
		}
		return -2
	}
	for i := range first.Nodes {
		x, y := first.Nodes[i], second.Nodes[i]
		assert.Equal(t, x.NodeType, y.NodeType)
		assert.Equal(t, x.Depth, y.Depth)
		assert.Equal(t, x.Content, y.Content)
		assert.Equal(t, x.Summary, y.Summary)
		assert.Equal(t, len(x.Children), len(y.Children))
		assert.Equal(t, parentPos(first, x), parentPos(second, y))
		assert.Equal(t, x.PositionX, y.PositionX)
	}
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
}

func TestAnalyzeInjectedIDs(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig(), WithIDGenerator(func(v string, i int) string {
		return fmt.Sprintf("%s-%d", v, i)
	}))

	mm, err := a.Analyze(context.Background(), sharedTopicTranscript(2))
	require.NoError(t, err)
	assert.Equal(t, "vid42-0", mm.Nodes[0].ID)
	assert.Equal(t, "vid42-1", mm.Nodes[1].ID)
}

func TestDefaultNodeIDFormat(t *testing.T) {
	assert.Regexp(t, `^abc_7_[0-9a-f]{8}$`, NewNodeID("abc", 7))
}

func TestAnalyzeRejectsInvalidTranscript(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	bad := 1.5
	nan := math.NaN()
	inf := math.Inf(1)

	tcs := map[string]Transcript{
		"nan confidence":          {VideoID: "v", Segments: []TranscriptSegment{{EndTime: 5, Text: "long enough text", Confidence: &nan}}},
		"inf confidence":          {VideoID: "v", Segments: []TranscriptSegment{{EndTime: 5, Text: "long enough text", Confidence: &inf}}},
		"nan start":               {VideoID: "v", Segments: []TranscriptSegment{{StartTime: math.NaN(), EndTime: 5, Text: "long enough text"}}},
		"infinite end":            {VideoID: "v", Segments: []TranscriptSegment{{EndTime: math.Inf(1), Text: "long enough text"}}},
		"negative infinite start": {VideoID: "v", Segments: []TranscriptSegment{{StartTime: math.Inf(-1), EndTime: 5, Text: "long enough text"}}},
		"missing video":           {Segments: []TranscriptSegment{{Text: "long enough text"}}},
		"reversed times":          {VideoID: "v", Segments: []TranscriptSegment{{StartTime: 10, EndTime: 5, Text: "long enough text"}}},
		"confidence":              {VideoID: "v", Segments: []TranscriptSegment{{EndTime: 5, Text: "long enough text", Confidence: &bad}}},
	}
	for name, tr := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := a.Analyze(context.Background(), tr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTranscript))

			var cae *ContentAnalysisError
			require.ErrorAs(t, err, &cae)
			assert.Equal(t, CodeInvalidTranscript, cae.Code)
		})
	}
}

func TestAnalyzeCanceledContext(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, sharedTopicTranscript(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

type panicTokenizer struct{}

func (panicTokenizer) Tokenize(string) []string { panic("boom") }

func TestAnalyzeWrapsPanics(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig(), WithTokenizer(panicTokenizer{}))

	_, err := a.Analyze(context.Background(), sharedTopicTranscript(2))
	require.Error(t, err)

	var cae *ContentAnalysisError
	require.ErrorAs(t, err, &cae)
	assert.Equal(t, CodeAnalysisError, cae.Code)
	assert.Contains(t, cae.Message, "Analysis failed")
}

func TestAnalyzeConfidenceRange(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())
	zero, one := 0.0, 1.0

	tr := sharedTopicTranscript(4)
	tr.Segments[0].Confidence = &zero
	tr.Segments[3].Confidence = &one

	mm, err := a.Analyze(context.Background(), tr)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mm.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, mm.ConfidenceScore, 1.0)
}
