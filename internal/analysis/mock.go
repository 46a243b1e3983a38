package analysis

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	MockAnalyzerVersion = "mock-1.0.0"
	MockAnalyzerName    = "MockContentAnalyzer"

	mockDetailImportance = 0.6
	mockDetailsPerTopic  = 3
	mockTopicSummaryMax  = 150
	mockDefaultRootEnd   = 600.0
	mockDefaultTopicEnd  = 60.0
	mockRootWordCount    = 100
)

var mockTopics = map[ContentType][]string{
	ContentTypeEducational: {
		"Introduction", "Basic Concepts", "Key Principles", "Examples",
		"Applications", "Case Studies", "Summary", "Next Steps",
	},
	ContentTypeTutorial: {
		"Getting Started", "Setup", "Step 1", "Step 2", "Step 3",
		"Troubleshooting", "Tips and Tricks", "Conclusion",
	},
	ContentTypeEntertainment: {
		"Opening", "Main Topic", "Discussion", "Reactions",
		"Commentary", "Highlights", "Wrap Up",
	},
	ContentTypeNews: {
		"Headlines", "Breaking News", "Analysis", "Expert Opinion",
		"Background", "Impact", "Updates", "Summary",
	},
	ContentTypeDiscussion: {
		"Introduction", "Main Arguments", "Counterpoints", "Evidence",
		"Examples", "Debate", "Conclusions", "Q&A",
	},
	ContentTypeReview: {
		"Overview", "Features", "Pros", "Cons", "Performance",
		"Comparison", "Verdict", "Recommendation",
	},
}

var mockKeywords = map[ContentType][]string{
	ContentTypeEducational: {
		"learn", "understand", "concept", "principle", "theory", "practice",
		"example", "important", "remember", "key", "fundamental",
	},
	ContentTypeTutorial: {
		"step", "follow", "click", "install", "setup", "configure",
		"run", "execute", "complete", "finish", "done",
	},
	ContentTypeEntertainment: {
		"funny", "amazing", "incredible", "awesome", "interesting",
		"story", "experience", "reaction", "opinion", "think",
	},
}

var mockFallbackTopics = []string{"general", "content", "topic"}

// implMock produces plausible random mind maps. All randomness comes from the seeded source,
// so two mocks with the same seed and the same calls return the same structures.
type implMock struct {
	cfg    Config
	idGen  IDGenerator
	layout Layout

	mu  sync.Mutex
	rng *rand.Rand
}

func NewMock(cfg Config, seed int64, opts ...Option) (Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	return &implMock{
		cfg:    cfg,
		idGen:  o.idGen,
		layout: o.layout,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

func (m *implMock) Config() Config { return m.cfg }
func (m *implMock) Name() string   { return MockAnalyzerName }

func (m *implMock) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*m.rng.Float64()
}

func (m *implMock) sample(items []string, k int) []string {
	k = min(k, len(items))
	out := make([]string, 0, k)
	for _, i := range m.rng.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

func (m *implMock) Analyze(ctx context.Context, t Transcript) (MindMap, error) {
	started := time.Now()
	if err := validateTranscript(t); err != nil {
		return MindMap{}, err
	}
	if err := ctx.Err(); err != nil {
		return MindMap{}, wrapError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	segments := m.segments(t.Segments)
	hierarchy := m.hierarchy(segments)
	nodes := m.layout.Apply(m.buildTree(t.VideoID, segments, hierarchy))

	return MindMap{
		VideoID:     t.VideoID,
		Nodes:       nodes,
		ContentType: m.cfg.contentType(),
		AnalysisMetadata: map[string]any{
			"mock":             true,
			"segments_count":   len(segments),
			"topics_count":     len(hierarchy),
			"nodes_count":      len(nodes),
			"max_depth":        maxDepth(nodes),
			"language":         languageOf(t, m.cfg),
			"analyzer_version": MockAnalyzerVersion,
		},
		TotalDuration:   t.Duration,
		ProcessingTime:  time.Since(started).Seconds(),
		ConfidenceScore: m.uniform(0.75, 0.95),
	}, nil
}

func (m *implMock) segments(raw []TranscriptSegment) []ContentSegment {
	out := make([]ContentSegment, 0, len(raw))
	for i, s := range raw {
		out = append(out, ContentSegment{
			ID:             fmt.Sprintf("mock_seg_%d", i),
			Content:        s.Text,
			TimestampStart: s.StartTime,
			TimestampEnd:   s.EndTime,
			Topics:         m.ExtractTopics(s.Text, 0),
			Keywords:       m.ExtractKeywords(s.Text, 0),
			Summary:        m.GenerateSummary(s.Text, DefaultSummaryLimit),
			Confidence:     m.uniform(0.7, 0.95),
			Importance:     m.uniform(0.3, 0.9),
			WordCount:      len(strings.Fields(s.Text)),
		})
	}
	return out
}

func (m *implMock) hierarchy(segments []ContentSegment) []TopicHierarchy {
	ct := m.cfg.contentType()
	topics, ok := mockTopics[ct]
	if !ok {
		topics = mockTopics[ContentTypeEducational]
	}
	// News, discussion and review have no sample keywords, so their topics carry none.
	keywords := mockKeywords[ct]

	n := min(len(topics), max(3, len(segments)/5))
	selected := m.sample(topics, n)
	groups := groupByTime(segments, n)

	out := make([]TopicHierarchy, 0, n)
	for i, topic := range selected {
		var ids []string
		if i < len(groups) {
			for _, s := range groups[i] {
				ids = append(ids, s.ID)
			}
		}
		out = append(out, TopicHierarchy{
			Topic:      topic,
			Confidence: m.uniform(0.6, 0.9),
			Importance: m.uniform(0.5, 0.8),
			Keywords:   m.sample(keywords, HierarchyKeywords),
			Segments:   ids,
			Subtopics:  []TopicHierarchy{},
		})
	}
	return out
}

// groupByTime cuts segments into n consecutive groups of equal size; the last takes the rest.
func groupByTime(segments []ContentSegment, n int) [][]ContentSegment {
	if len(segments) == 0 || n <= 0 {
		return nil
	}

	per := len(segments) / n
	groups := make([][]ContentSegment, 0, n)
	for i := range n {
		start := i * per
		end := start + per
		if i == n-1 {
			end = len(segments)
		}
		groups = append(groups, segments[start:end])
	}
	return groups
}

func (m *implMock) buildTree(videoID string, segments []ContentSegment, hierarchy []TopicHierarchy) []Node {
	b := newTreeBuilder(videoID, m.idGen)
	ct := m.cfg.contentType()

	byID := make(map[string]ContentSegment, len(segments))
	rootEnd := 0.0
	for _, s := range segments {
		byID[s.ID] = s
		rootEnd = math.Max(rootEnd, s.TimestampEnd)
	}
	if len(segments) == 0 {
		rootEnd = mockDefaultRootEnd
	}

	rootID := b.add(Node{
		Content:        fmt.Sprintf("Mock analysis for %s content", ct),
		Summary:        fmt.Sprintf("Comprehensive mind map with %d main topics covering various aspects of the video content.", len(hierarchy)),
		TimestampStart: 0,
		TimestampEnd:   rootEnd,
		NodeType:       NodeTypeRoot,
		Keywords:       append(append([]string{}, rootKeywords...), string(ct)),
		Confidence:     ptr(rootConfidence),
		Importance:     ptr(rootImportance),
		WordCount:      ptr(mockRootWordCount),
	}, nil)

	for _, h := range hierarchy {
		related := make([]ContentSegment, 0, len(h.Segments))
		for _, id := range h.Segments {
			related = append(related, byID[id])
		}

		contents := make([]string, 0, len(related))
		for _, s := range related {
			contents = append(contents, s.Content)
		}
		content := strings.Join(contents, " ")
		if content == "" {
			content = fmt.Sprintf("Content related to %s - detailed discussion and examples.", h.Topic)
		}

		start, end := 0.0, mockDefaultTopicEnd
		if len(related) > 0 {
			start, end = math.Inf(1), 0
			for _, s := range related {
				start = math.Min(start, s.TimestampStart)
				end = math.Max(end, s.TimestampEnd)
			}
		}

		topicID := b.add(Node{
			Content:        content,
			Summary:        m.GenerateSummary(content, mockTopicSummaryMax),
			TimestampStart: start,
			TimestampEnd:   end,
			NodeType:       NodeTypeTopic,
			Keywords:       h.Keywords,
			Confidence:     ptr(h.Confidence),
			Importance:     ptr(h.Importance),
			WordCount:      ptr(len(strings.Fields(content))),
		}, &rootID)

		if m.cfg.MaxDepth < 2 {
			continue
		}
		added := 0
		for _, s := range related {
			if added == mockDetailsPerTopic {
				break
			}
			if s.Importance <= mockDetailImportance || s.Confidence < m.cfg.ConfidenceThreshold {
				continue
			}
			b.add(detailNode(s), &topicID)
			added++
		}
	}

	return b.nodes
}

// ExtractTopics returns the first long alphabetic words of the text.
func (m *implMock) ExtractTopics(content string, limit int) []string {
	if limit <= 0 {
		limit = 3
	}

	var out []string
	for _, w := range strings.Fields(strings.ToLower(content)) {
		if utf8.RuneCountInString(w) > 4 && isAlpha(w) {
			out = append(out, w)
			if len(out) == limit {
				break
			}
		}
	}
	if len(out) == 0 {
		return append([]string{}, mockFallbackTopics...)
	}
	return out
}

func (m *implMock) ExtractKeywords(content string, max int) []string {
	if max <= 0 {
		max = DefaultMaxKeywords
	}

	seen := make(map[string]bool)
	var out []string
	for _, w := range strings.Fields(strings.ToLower(content)) {
		if utf8.RuneCountInString(w) <= 3 || !isAlpha(w) || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == max {
			break
		}
	}
	return out
}

// GenerateSummary returns the first ". " separated sentence, truncated.
func (m *implMock) GenerateSummary(content string, maxLength int) string {
	if utf8.RuneCountInString(content) <= maxLength {
		return content
	}
	first, _, _ := strings.Cut(content, ". ")
	return truncate(first, maxLength)
}
