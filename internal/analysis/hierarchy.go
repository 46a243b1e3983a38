package analysis

import "strings"

// MaxMainTopics caps the number of topic nodes.
const MaxMainTopics = 10

func (a *implAnalyzer) extractHierarchy(segments []ContentSegment) []TopicHierarchy {
	var all []string
	related := make(map[string][]int)
	for i, seg := range segments {
		for _, topic := range seg.Topics {
			all = append(all, topic)
			related[topic] = append(related[topic], i)
		}
	}

	counts := make(map[string]int, len(related))
	for _, topic := range all {
		counts[topic]++
	}

	ranked := rankByFrequency(all, MaxMainTopics)
	out := make([]TopicHierarchy, 0, len(ranked))
	for _, topic := range ranked {
		idxs := related[topic]

		ids := make([]string, 0, len(idxs))
		contents := make([]string, 0, len(idxs))
		var importance float64
		for _, i := range idxs {
			ids = append(ids, segments[i].ID)
			contents = append(contents, segments[i].Content)
			importance += segments[i].Importance
		}
		if len(idxs) > 0 {
			importance /= float64(len(idxs))
		}

		out = append(out, TopicHierarchy{
			Topic:      topic,
			Confidence: clamp01(float64(counts[topic]) / float64(len(segments))),
			Importance: importance,
			Keywords:   a.ExtractKeywords(strings.Join(contents, " "), HierarchyKeywords),
			Segments:   ids,
			Subtopics:  []TopicHierarchy{},
		})
	}
	return out
}
