package analysis

import (
	"slices"
	"unicode/utf8"
)

const (
	TopicsPerSegment    = 5
	DefaultMaxKeywords  = 10
	HierarchyKeywords   = 5
	MaxKeywordLength    = 20
	DefaultSummaryLimit = 100
)

// rankByFrequency returns distinct tokens by descending count. Ties keep first-occurrence order.
func rankByFrequency(tokens []string, limit int) []string {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return counts[b] - counts[a]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

func (a *implAnalyzer) ExtractTopics(content string, limit int) []string {
	if limit <= 0 {
		limit = TopicsPerSegment
	}

	words := contentWords(a.tokenizer.Tokenize(content))
	if a.tagger != nil {
		words = a.tagger.Nouns(words)
	}
	return rankByFrequency(words, limit)
}

func (a *implAnalyzer) ExtractKeywords(content string, max int) []string {
	if max <= 0 {
		max = DefaultMaxKeywords
	}

	words := contentWords(a.tokenizer.Tokenize(content))
	kept := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) < MaxKeywordLength && isAlpha(w) {
			kept = append(kept, w)
		}
	}
	return rankByFrequency(kept, max)
}

// GenerateSummary picks the sentence with the highest normalized word-frequency score,
// boosted toward the start of the text, and truncates it to maxLength runes.
func (a *implAnalyzer) GenerateSummary(content string, maxLength int) string {
	sentences := SplitSentences(content)
	switch len(sentences) {
	case 0:
		return truncate(content, maxLength)
	case 1:
		return truncate(sentences[0], maxLength)
	}

	freq := a.wordFrequencies(content)
	best, bestScore := 0, -1.0
	for i, sentence := range sentences {
		var score float64
		for _, w := range a.tokenizer.Tokenize(sentence) {
			score += freq[w]
		}
		score *= 1.0 - float64(i)/float64(len(sentences))*0.3
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return truncate(sentences[best], maxLength)
}

func (a *implAnalyzer) wordFrequencies(content string) map[string]float64 {
	words := contentWords(a.tokenizer.Tokenize(content))
	counts := make(map[string]int, len(words))
	maxCount := 1
	for _, w := range words {
		counts[w]++
		if counts[w] > maxCount {
			maxCount = counts[w]
		}
	}

	freq := make(map[string]float64, len(counts))
	for w, c := range counts {
		freq[w] = float64(c) / float64(maxCount)
	}
	return freq
}
