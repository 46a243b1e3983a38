package cli

import (
	"fmt"
	"strings"

	"mindmap-srv/internal/analysis"

	"github.com/spf13/cobra"
)

const (
	defaultTopicLimit     = 10
	defaultSummaryLength  = 100
	defaultKeywordLimit   = 10
	maxTextCommandLimit   = 50
	maxTextCommandSummary = 500
)

type topicsOutput struct {
	Topics   []string `json:"topics" yaml:"topics"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

type summaryOutput struct {
	Summary        string `json:"summary" yaml:"summary"`
	OriginalLength int    `json:"original_length" yaml:"original_length"`
	SummaryLength  int    `json:"summary_length" yaml:"summary_length"`
}

func newTopicsCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "topics <file>",
		Short: "Extract topics and keywords from plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 || limit > maxTextCommandLimit {
				return fmt.Errorf("limit must be between 1 and %d", maxTextCommandLimit)
			}
			text, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			a, err := root.newAnalyzer(analysis.DefaultConfig())
			if err != nil {
				return err
			}
			return root.write(cmd.OutOrStdout(), topicsOutput{
				Topics:   a.ExtractTopics(text, limit),
				Keywords: a.ExtractKeywords(text, defaultKeywordLimit),
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultTopicLimit, "Maximum number of topics")
	return cmd
}

func newSummarizeCmd(root *rootOptions) *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:   "summarize <file>",
		Short: "Summarize plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLength < 10 || maxLength > maxTextCommandSummary {
				return fmt.Errorf("max-length must be between 10 and %d", maxTextCommandSummary)
			}
			text, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			a, err := root.newAnalyzer(analysis.DefaultConfig())
			if err != nil {
				return err
			}
			summary := a.GenerateSummary(text, maxLength)
			return root.write(cmd.OutOrStdout(), summaryOutput{
				Summary:        summary,
				OriginalLength: len([]rune(text)),
				SummaryLength:  len([]rune(summary)),
			})
		},
	}
	cmd.Flags().IntVar(&maxLength, "max-length", defaultSummaryLength, "Maximum summary length in characters")
	return cmd
}

func readText(cmd *cobra.Command, path string) (string, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return text, nil
}
