package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"redline/internal/improve"
	"redline/internal/pipeline"
)

var correctCmd = &cobra.Command{
	Use:   "correct [text]",
	Short: "Run the correction pipeline over a sentence",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := buildLogger(cfg.LogLevel)

		vocab, _, err := buildVocabulary(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}
		matcher := buildMatcher(vocab, cfg)
		p := buildPipeline(matcher, vocab, cfg, logger)

		res, err := p.Run(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
			res.Improved = improve.ApplyMode(res.Improved, mode)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		rendered, err := r.Render(report(res))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// report formats a pipeline result as markdown for terminal rendering.
func report(res pipeline.Result) string {
	var b strings.Builder
	b.WriteString("# Correction report\n\n")
	fmt.Fprintf(&b, "**Original:** %s\n\n", res.Original)
	fmt.Fprintf(&b, "**Corrected:** %s\n\n", res.Corrected)
	fmt.Fprintf(&b, "**Improved:** %s\n\n", res.Improved)

	if len(res.RulesFired) == 0 {
		b.WriteString("No rules fired.\n")
		return b.String()
	}
	b.WriteString("## Rules fired\n\n")
	b.WriteString("| Rule | Before | After | Reason |\n")
	b.WriteString("|------|--------|-------|--------|\n")
	for _, rec := range res.RulesFired {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", rec.Name, rec.Before, rec.After, rec.Reason)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(correctCmd)
	correctCmd.Flags().Bool("json", false, "Print the raw result as JSON")
	correctCmd.Flags().String("mode", "", "Output mode for the improved text (simple, formal, professional)")
}
