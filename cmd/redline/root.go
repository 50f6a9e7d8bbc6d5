package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "redline",
	Short: "Rule-chaining sentence correction service",
	Long: `Redline corrects English sentences with an ordered chain of
heuristic rules (informal language, wordiness, spelling, agreement,
tense, question order) and derives a stylistically improved variant.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
}
