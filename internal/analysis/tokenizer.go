package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// POSTagger narrows a token list to nouns. Analyzers fall back to frequency-only ranking without one.
type POSTagger interface {
	Nouns(tokens []string) []string
}

var (
	wordRe     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// RegexTokenizer is the default Tokenizer.
type RegexTokenizer struct{}

func (RegexTokenizer) Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an and are as at be by for from has he in is it its of on that the
		to was were will with you your this they we can could should would have had do does did going
		so now well like just get got`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w is ignored by topic and keyword extraction.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

func isAlpha(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// contentWords drops stop words and tokens of two runes or fewer.
func contentWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsStopWord(t) || utf8.RuneCountInString(t) <= 2 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitSentences splits on runs of . ! ? and drops empty fragments.
func SplitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
