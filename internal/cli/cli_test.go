package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mindmap-srv/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var fruits = []string{
	"apple", "banana", "cherry", "damson", "elderberry", "feijoa", "guava", "huckleberry",
	"imbe", "jackfruit", "kiwano", "lime", "mango", "nectarine", "olive", "papaya",
	"quince", "raspberry", "satsuma", "tamarind",
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func orchardTranscript(t *testing.T) string {
	t.Helper()
	tr := analysis.Transcript{Duration: 300}
	for i := range 10 {
		tr.Segments = append(tr.Segments, analysis.TranscriptSegment{
			StartTime: float64(i * 30),
			EndTime:   float64((i + 1) * 30),
			Text:      fruits[2*i] + " " + fruits[2*i+1] + " orchard",
		})
	}
	b, err := json.Marshal(tr)
	require.NoError(t, err)
	return string(b)
}

func TestAnalyzeStats(t *testing.T) {
	p := writeFile(t, "lecture.json", orchardTranscript(t))

	out, err := run(t, "", "analyze", p, "--importance", "0", "--stats")
	require.NoError(t, err)

	var st analysis.Statistics
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 30, st.TotalNodes)
	assert.Equal(t, 1, st.RootNodes)
	assert.Equal(t, 10, st.NodeTypes[analysis.NodeTypeTopic])
}

func TestAnalyzeVideoIDFromFileName(t *testing.T) {
	p := writeFile(t, "lecture.json", orchardTranscript(t))

	out, err := run(t, "", "analyze", p, "--importance", "0")
	require.NoError(t, err)

	var mm analysis.MindMap
	require.NoError(t, json.Unmarshal([]byte(out), &mm))
	assert.Equal(t, "lecture", mm.VideoID)
	assert.Equal(t, "lecture", mm.Nodes[0].VideoID)

	out, err = run(t, "", "analyze", p, "--importance", "0", "--video-id", "vid-7")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &mm))
	assert.Equal(t, "vid-7", mm.VideoID)
}

func TestAnalyzeMockYAMLIsDeterministic(t *testing.T) {
	p := writeFile(t, "talk.json", orchardTranscript(t))

	decode := func() analysis.MindMap {
		out, err := run(t, "", "analyze", p, "--mock", "--seed", "7", "-f", "yaml")
		require.NoError(t, err)
		var mm analysis.MindMap
		require.NoError(t, yaml.Unmarshal([]byte(out), &mm))
		mm.ProcessingTime = 0
		return mm
	}

	first, second := decode(), decode()
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
	assert.Equal(t, "talk", first.VideoID)
	assert.NotEmpty(t, first.Nodes)
}

func TestAnalyzeSRTFromStdin(t *testing.T) {
	var b strings.Builder
	for i := range 10 {
		fmt.Fprintf(&b, "%d\n00:00:%02d,000 --> 00:00:%02d,000\n%s %s orchard\n\n", i+1, i*5, i*5+5, fruits[2*i], fruits[2*i+1])
	}

	out, err := run(t, b.String(), "analyze", "-", "--mock", "--seed", "1")
	require.NoError(t, err)

	var mm analysis.MindMap
	require.NoError(t, json.Unmarshal([]byte(out), &mm))
	assert.Equal(t, "stdin", mm.VideoID)
	assert.Equal(t, 50.0, mm.TotalDuration)
	assert.NotEmpty(t, mm.Nodes)
}

func TestAnalyzeYAMLTranscript(t *testing.T) {
	p := writeFile(t, "notes.yaml", `
video_id: yaml-vid
segments:
  - start_time: 0
    end_time: 30
    text: apple banana orchard
  - start_time: 30
    end_time: 60
    text: cherry damson orchard
`)

	out, err := run(t, "", "analyze", p, "--mock", "--seed", "3")
	require.NoError(t, err)

	var mm analysis.MindMap
	require.NoError(t, json.Unmarshal([]byte(out), &mm))
	assert.Equal(t, "yaml-vid", mm.VideoID)
	assert.Equal(t, 60.0, mm.TotalDuration)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	p := writeFile(t, "lecture.json", orchardTranscript(t))

	_, err := run(t, "", "analyze", p, "--max-depth", "11")
	var cae *analysis.ContentAnalysisError
	require.ErrorAs(t, err, &cae)
	assert.Equal(t, analysis.CodeConfigError, cae.Code)

	_, err = run(t, "", "analyze", p, "--importance", "NaN")
	require.ErrorAs(t, err, &cae)
	assert.Equal(t, analysis.CodeConfigError, cae.Code)

	_, err = run(t, "", "analyze", p, "--content-type", "poetry")
	assert.ErrorContains(t, err, "unknown content type")

	_, err = run(t, "", "analyze", p, "-f", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "", "analyze", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = run(t, "", "analyze")
	assert.Error(t, err)
}

func TestAnalyzeRejectsNonFiniteYAML(t *testing.T) {
	p := writeFile(t, "notes.yaml", `
video_id: yaml-vid
segments:
  - start_time: 0
    end_time: 30
    text: apple banana orchard
    confidence: .nan
`)

	_, err := run(t, "", "analyze", p)
	var cae *analysis.ContentAnalysisError
	require.ErrorAs(t, err, &cae)
	assert.Equal(t, analysis.CodeInvalidTranscript, cae.Code)
}

func TestTopics(t *testing.T) {
	p := writeFile(t, "text.txt", "Kafka brokers replicate partitions. Kafka consumers read partitions in order.")

	out, err := run(t, "", "topics", p, "-n", "2")
	require.NoError(t, err)

	var res topicsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.LessOrEqual(t, len(res.Topics), 2)
	assert.Contains(t, res.Topics, "kafka")

	_, err = run(t, "", "topics", p, "-n", "0")
	assert.ErrorContains(t, err, "limit must be between")

	_, err = run(t, "   ", "topics", "-")
	assert.ErrorContains(t, err, "is empty")
}

func TestSummarize(t *testing.T) {
	text := strings.Repeat("Raft elects a leader and replicates the log to followers. ", 10)

	out, err := run(t, text, "summarize", "-", "--max-length", "40", "-f", "yaml")
	require.NoError(t, err)

	var res summaryOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.LessOrEqual(t, res.SummaryLength, 40)
	assert.Equal(t, len([]rune(strings.TrimSpace(text))), res.OriginalLength)

	_, err = run(t, text, "summarize", "-", "--max-length", "5")
	assert.ErrorContains(t, err, "max-length must be between")
}

func TestEstimate(t *testing.T) {
	out, err := run(t, "", "estimate", "--segments", "10", "--duration", "600")
	require.NoError(t, err)

	var res estimateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 15.0, res.EstimatedSeconds, 1e-9)
	assert.False(t, res.Mock)

	out, err = run(t, "", "estimate", "--segments", "10", "--duration", "600", "--mock")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 3.0, res.EstimatedSeconds, 1e-9)

	p := writeFile(t, "lecture.json", orchardTranscript(t))
	out, err = run(t, "", "estimate", p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 10, res.SegmentCount)
	assert.Equal(t, 300.0, res.Duration)
}

func TestTranscriptFormat(t *testing.T) {
	cases := map[string]struct {
		path string
		data string
		want string
	}{
		"extension wins":  {path: "a.SRT", data: `{}`, want: ".srt"},
		"stdin json":      {path: "-", data: ` {"segments":[]}`, want: ".json"},
		"stdin array":     {path: "-", data: `[]`, want: ".json"},
		"stdin srt":       {path: "-", data: "1\n00:00:01,000 --> 00:00:02,000\nhi\n", want: ".srt"},
		"stdin yaml":      {path: "-", data: "video_id: v\nsegments: []\n", want: ".yaml"},
		"stdin empty":     {path: "-", data: "", want: ".json"},
		"unknown on disk": {path: "t.txt", data: "", want: ".txt"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, transcriptFormat(tc.path, []byte(tc.data)))
		})
	}
}
