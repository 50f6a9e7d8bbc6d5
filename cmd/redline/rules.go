package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"redline/internal/annotate"
	"redline/internal/fuzzy"
	"redline/internal/lexicon"
	"redline/internal/pipeline"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the correction rules in execution order",
	Run: func(cmd *cobra.Command, args []string) {
		vocab := lexicon.BuiltinVocabulary()
		p := pipeline.New(annotate.NewTagger(), fuzzy.NewMatcher(vocab), vocab)
		for i, name := range p.RuleNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
