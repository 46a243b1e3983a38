package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSegmentTextLength is the shortest cleaned text kept by the preprocessor.
const MinSegmentTextLength = 10

var fillerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(um|uh|ah|er|hmm|eh)\b`),
	regexp.MustCompile(`(?i)\b(you know|like|basically|actually)\b`),
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`\(.*?\)`),
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func cleanOnce(s string) string {
	s = collapseSpaces(s)
	for _, re := range fillerPatterns {
		s = re.ReplaceAllString(s, " ")
	}
	return collapseSpaces(s)
}

// CleanText removes filler words and bracketed annotations and normalizes whitespace.
// It is applied until the text stops changing, so CleanText(CleanText(s)) == CleanText(s).
func CleanText(s string) string {
	for {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

type preparedSegment struct {
	source TranscriptSegment
	text   string
}

// Preprocess cleans every segment and drops those left shorter than MinSegmentTextLength.
// Order is preserved.
func Preprocess(segments []TranscriptSegment) []TranscriptSegment {
	prepared := preprocess(segments)
	out := make([]TranscriptSegment, 0, len(prepared))
	for _, p := range prepared {
		seg := p.source
		seg.Text = p.text
		out = append(out, seg)
	}
	return out
}

func preprocess(segments []TranscriptSegment) []preparedSegment {
	out := make([]preparedSegment, 0, len(segments))
	for _, seg := range segments {
		cleaned := CleanText(seg.Text)
		if utf8.RuneCountInString(cleaned) < MinSegmentTextLength {
			continue
		}
		out = append(out, preparedSegment{source: seg, text: cleaned})
	}
	return out
}

const ellipsis = "..."

// truncate keeps the result within maxLength runes, ellipsis included.
func truncate(s string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	if maxLength <= len(ellipsis) {
		return string(runes[:maxLength])
	}
	cut := strings.TrimRight(string(runes[:maxLength-len(ellipsis)]), " ")
	return cut + ellipsis
}
