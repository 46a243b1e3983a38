package cli

import (
	"fmt"

	"mindmap-srv/internal/analysis"

	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	videoID     string
	contentType string
	maxDepth    int
	importance  float64
	confidence  float64
	dedup       bool
	concurrency int
	stats       bool
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Generate a mind map from a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.videoID, "video-id", "", "Video ID (default: from the transcript or file name)")
	f.StringVar(&opts.contentType, "content-type", "", "Content type override")
	f.IntVar(&opts.maxDepth, "max-depth", 0, "Maximum tree depth (1-10)")
	f.Float64Var(&opts.importance, "importance", 0, "Importance threshold for topic segments")
	f.Float64Var(&opts.confidence, "confidence", 0, "Confidence threshold (mock analyzer)")
	f.BoolVar(&opts.dedup, "dedup", false, "Attach each segment under one topic only")
	f.IntVar(&opts.concurrency, "concurrency", 0, "Segment analysis workers (0 runs sequentially)")
	f.BoolVar(&opts.stats, "stats", false, "Print node statistics instead of the mind map")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, opts *analyzeOptions, path string) error {
	t, err := loadTranscript(cmd, path)
	if err != nil {
		return err
	}
	if opts.videoID != "" {
		t.VideoID = opts.videoID
	}

	cfg, err := opts.config(cmd, t)
	if err != nil {
		return err
	}

	a, err := root.newAnalyzer(cfg)
	if err != nil {
		return err
	}

	mm, err := a.Analyze(cmd.Context(), t)
	if err != nil {
		return err
	}

	if opts.stats {
		return root.write(cmd.OutOrStdout(), mm.Statistics())
	}
	return root.write(cmd.OutOrStdout(), mm)
}

// config starts from the transcript defaults and applies only the flags that were set.
func (o *analyzeOptions) config(cmd *cobra.Command, t analysis.Transcript) (analysis.Config, error) {
	cfg := analysis.DefaultConfigForTranscript(t)
	f := cmd.Flags()

	if f.Changed("content-type") {
		ct, ok := analysis.ParseContentType(o.contentType)
		if !ok {
			return analysis.Config{}, fmt.Errorf("unknown content type %q", o.contentType)
		}
		cfg.ContentType = ct
	}
	if f.Changed("max-depth") {
		cfg.MaxDepth = o.maxDepth
	}
	if f.Changed("importance") {
		cfg.ImportanceThreshold = o.importance
	}
	if f.Changed("confidence") {
		cfg.ConfidenceThreshold = o.confidence
	}
	cfg.Dedup = o.dedup
	cfg.MaxConcurrency = o.concurrency

	return cfg, cfg.Validate()
}
