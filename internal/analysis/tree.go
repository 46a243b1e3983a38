package analysis

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

var rootKeywords = []string{"overview", "analysis", "mindmap"}

const (
	rootConfidence  = 0.9
	rootImportance  = 1.0
	TopicSummaryMax = 200
)

func ptr[T any](v T) *T {
	return &v
}

// treeBuilder appends nodes in creation order. A parent always exists before its children.
type treeBuilder struct {
	videoID string
	idGen   IDGenerator
	nodes   []Node
	index   map[string]int
}

func newTreeBuilder(videoID string, idGen IDGenerator) *treeBuilder {
	return &treeBuilder{
		videoID: videoID,
		idGen:   idGen,
		index:   make(map[string]int),
	}
}

func (b *treeBuilder) add(n Node, parentID *string) string {
	n.ID = b.idGen(b.videoID, len(b.nodes))
	n.VideoID = b.videoID
	n.ParentNodeID = parentID
	n.Children = []string{}
	if parentID != nil {
		p := b.index[*parentID]
		n.Depth = b.nodes[p].Depth + 1
		b.nodes[p].Children = append(b.nodes[p].Children, n.ID)
	}

	b.index[n.ID] = len(b.nodes)
	b.nodes = append(b.nodes, n)
	return n.ID
}

func (a *implAnalyzer) buildTree(videoID string, segments []ContentSegment, hierarchy []TopicHierarchy) []Node {
	b := newTreeBuilder(videoID, a.idGen)

	byID := make(map[string]ContentSegment, len(segments))
	var maxEnd float64
	for _, s := range segments {
		byID[s.ID] = s
		maxEnd = math.Max(maxEnd, s.TimestampEnd)
	}

	rootContent := fmt.Sprintf("Content analysis for video %s", videoID)
	rootID := b.add(Node{
		Content:        rootContent,
		Summary:        fmt.Sprintf("Mind map overview with %d main topics", len(hierarchy)),
		TimestampStart: 0,
		TimestampEnd:   maxEnd,
		NodeType:       NodeTypeRoot,
		Keywords:       slices.Clone(rootKeywords),
		Confidence:     ptr(rootConfidence),
		Importance:     ptr(rootImportance),
		WordCount:      ptr(len(strings.Fields(rootContent))),
	}, nil)

	used := make(map[string]bool)
	for _, h := range hierarchy {
		related := make([]ContentSegment, 0, len(h.Segments))
		for _, id := range h.Segments {
			if s, ok := byID[id]; ok {
				related = append(related, s)
			}
		}
		if len(related) == 0 {
			continue
		}

		contents := make([]string, 0, len(related))
		start, end, words := math.Inf(1), 0.0, 0
		for _, s := range related {
			contents = append(contents, s.Content)
			start = math.Min(start, s.TimestampStart)
			end = math.Max(end, s.TimestampEnd)
			words += s.WordCount
		}
		content := strings.Join(contents, " ")

		topicID := b.add(Node{
			Content:        content,
			Summary:        a.GenerateSummary(content, TopicSummaryMax),
			TimestampStart: start,
			TimestampEnd:   end,
			NodeType:       NodeTypeTopic,
			Keywords:       slices.Clone(h.Keywords),
			Confidence:     ptr(h.Confidence),
			Importance:     ptr(h.Importance),
			WordCount:      ptr(words),
		}, &rootID)

		if a.cfg.MaxDepth < 2 {
			continue
		}
		for _, s := range related {
			if s.Importance <= a.cfg.ImportanceThreshold {
				continue
			}
			if a.cfg.Dedup && used[s.ID] {
				continue
			}
			used[s.ID] = true
			b.add(detailNode(s), &topicID)
		}
	}

	return b.nodes
}

func detailNode(s ContentSegment) Node {
	return Node{
		Content:        s.Content,
		Summary:        s.Summary,
		TimestampStart: s.TimestampStart,
		TimestampEnd:   s.TimestampEnd,
		NodeType:       NodeTypeDetail,
		Keywords:       slices.Clone(s.Keywords),
		Confidence:     ptr(s.Confidence),
		Importance:     ptr(s.Importance),
		WordCount:      ptr(s.WordCount),
	}
}
