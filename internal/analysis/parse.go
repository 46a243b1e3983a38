package analysis

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseTranscriptJSON accepts a transcript object or a bare array of segments.
func ParseTranscriptJSON(data []byte) (Transcript, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var segments []TranscriptSegment
		if err := json.Unmarshal(data, &segments); err != nil {
			return Transcript{}, fmt.Errorf("decode segments: %w", err)
		}
		return Transcript{Segments: segments}, nil
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return Transcript{}, fmt.Errorf("decode transcript: %w", err)
	}
	return t, nil
}

// ParseSRT reads SubRip cues. Each cue becomes one segment whose lines are joined by a space.
func ParseSRT(data []byte) ([]TranscriptSegment, error) {
	var (
		segments []TranscriptSegment
		current  *TranscriptSegment
		lines    []string
	)

	flush := func() {
		if current != nil && len(lines) > 0 {
			current.Text = strings.Join(lines, " ")
			segments = append(segments, *current)
		}
		current, lines = nil, nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))

		switch {
		case line == "":
			flush()
		case strings.Contains(line, "-->"):
			flush()
			start, end, err := parseSRTRange(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			current = &TranscriptSegment{StartTime: start, EndTime: end}
		case current == nil && isDigits(line):
			// cue number
		case current != nil:
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return segments, nil
}

func parseSRTRange(line string) (float64, float64, error) {
	from, to, _ := strings.Cut(line, "-->")
	start, err := parseSRTTimestamp(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, err
	}
	// Position hints may follow the end timestamp.
	fields := strings.Fields(to)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("missing end timestamp")
	}
	end, err := parseSRTTimestamp(fields[0])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseSRTTimestamp parses HH:MM:SS,mmm (a dot is accepted for the millis separator).
func parseSRTTimestamp(s string) (float64, error) {
	s = strings.Replace(s, ",", ".", 1)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return float64(h*3600+m*60) + sec, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
