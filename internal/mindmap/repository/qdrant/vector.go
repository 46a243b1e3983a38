package qdrant

import (
	"math"
	"unicode/utf8"

	"mindmap-srv/internal/analysis"

	"github.com/cespare/xxhash/v2"
)

// Vectorizer maps text to a fixed-size embedding.
type Vectorizer interface {
	Vectorize(text string) []float32
	Size() int
}

// HashingVectorizer embeds text with the signed hashing trick over content words.
// The output is L2-normalized, so cosine and dot distances agree.
type HashingVectorizer struct {
	size      int
	tokenizer analysis.Tokenizer
}

func NewHashingVectorizer(size int) HashingVectorizer {
	return HashingVectorizer{size: size, tokenizer: analysis.RegexTokenizer{}}
}

func (v HashingVectorizer) Size() int { return v.size }

func (v HashingVectorizer) Vectorize(text string) []float32 {
	vec := make([]float32, v.size)
	for _, tok := range v.tokenizer.Tokenize(text) {
		if utf8.RuneCountInString(tok) < 3 || analysis.IsStopWord(tok) {
			continue
		}
		h := xxhash.Sum64String(tok)
		idx := h % uint64(v.size)
		if h&(1<<63) != 0 {
			vec[idx]--
		} else {
			vec[idx]++
		}
	}

	var norm float64
	for _, x := range vec {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}
