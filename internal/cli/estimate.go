package cli

import (
	"fmt"

	"mindmap-srv/internal/analysis"

	"github.com/spf13/cobra"
)

type estimateOutput struct {
	SegmentCount     int     `json:"segment_count" yaml:"segment_count"`
	Duration         float64 `json:"duration" yaml:"duration"`
	Mock             bool    `json:"mock" yaml:"mock"`
	EstimatedSeconds float64 `json:"estimated_seconds" yaml:"estimated_seconds"`
}

func newEstimateCmd(root *rootOptions) *cobra.Command {
	var (
		segments int
		duration float64
	)

	cmd := &cobra.Command{
		Use:   "estimate [transcript]",
		Short: "Estimate processing time for a transcript",
		Long:  "Estimates from a transcript file when one is given, otherwise from --segments and --duration.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				t, err := loadTranscript(cmd, args[0])
				if err != nil {
					return err
				}
				segments = len(t.Segments)
				duration = t.Duration
			}
			if segments < 0 || duration < 0 {
				return fmt.Errorf("segments and duration must not be negative")
			}
			return root.write(cmd.OutOrStdout(), estimateOutput{
				SegmentCount:     segments,
				Duration:         duration,
				Mock:             root.mock,
				EstimatedSeconds: analysis.EstimateProcessingTime(segments, duration, root.mock),
			})
		},
	}
	cmd.Flags().IntVar(&segments, "segments", 0, "Number of transcript segments")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Video duration in seconds")
	return cmd
}
