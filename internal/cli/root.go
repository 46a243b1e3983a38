// Package cli implements the mindmap command line tool. It runs the analysis pipeline locally
// without any of the service infrastructure.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"mindmap-srv/internal/analysis"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	stdinVideoID = "stdin"
)

var srtCueRe = regexp.MustCompile(`^\d+\s*\r?\n\s*\d{1,2}:\d{2}:\d{2}[,.]\d{1,3}\s*-->`)

type rootOptions struct {
	format string
	mock   bool
	seed   int64
}

// NewRootCmd builds the top-level command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "mindmap",
		Short:         "Build mind maps from video transcripts",
		Long:          "Runs the transcript analysis pipeline on local files. Transcripts may be JSON, YAML or SRT; '-' reads stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown format %q: want json or yaml", opts.format)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format: json or yaml")
	root.PersistentFlags().BoolVar(&opts.mock, "mock", false, "Use the seeded mock analyzer")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for the mock analyzer")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newTopicsCmd(opts),
		newSummarizeCmd(opts),
		newEstimateCmd(opts),
	)
	return root
}

// Execute runs the CLI and prints any error to stderr.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// transcriptFormat picks the decoder from the extension, sniffing the content for stdin.
func transcriptFormat(path string, data []byte) string {
	if path != "-" {
		return strings.ToLower(filepath.Ext(path))
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, trimmed[0] == '{', trimmed[0] == '[':
		return ".json"
	case srtCueRe.Match(trimmed):
		return ".srt"
	default:
		return ".yaml"
	}
}

// loadTranscript decodes .srt, .yaml/.yml and falls back to JSON.
func loadTranscript(cmd *cobra.Command, path string) (analysis.Transcript, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return analysis.Transcript{}, fmt.Errorf("read %s: %w", path, err)
	}

	var t analysis.Transcript
	switch transcriptFormat(path, data) {
	case ".srt":
		segments, err := analysis.ParseSRT(data)
		if err != nil {
			return analysis.Transcript{}, fmt.Errorf("parse %s: %w", path, err)
		}
		t.Segments = segments
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return analysis.Transcript{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		t, err = analysis.ParseTranscriptJSON(data)
		if err != nil {
			return analysis.Transcript{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if t.VideoID == "" {
		t.VideoID = stdinVideoID
		if path != "-" {
			base := filepath.Base(path)
			t.VideoID = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	if t.Duration <= 0 {
		t.Duration = t.MaxEndTime()
	}
	return t, nil
}

func (o *rootOptions) write(w io.Writer, v any) error {
	if o.format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func (o *rootOptions) newAnalyzer(cfg analysis.Config) (analysis.Analyzer, error) {
	return analysis.NewFromConfig(cfg, o.mock, o.seed)
}
