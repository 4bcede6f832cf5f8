package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/travel-eval/internal/report"
)

var analyzeResults string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Re-render the report from an existing results artifact",
	Long:  `Reads a previously written eval_results.json and regenerates the Markdown report and summary without recomputing any scores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := analyzeResults
		if path == "" {
			path = cfg.Results.JSONPath
		}

		rep, err := report.Load(path)
		if err != nil {
			return err
		}

		report.PrintSummary(os.Stdout, rep)
		if err := report.WriteMarkdown(cfg.Results.MarkdownPath, rep); err != nil {
			return err
		}
		fmt.Printf("\nRegenerated %s from %s\n", cfg.Results.MarkdownPath, path)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResults, "results", "", "results artifact to analyze (default: configured json_path)")
	rootCmd.AddCommand(analyzeCmd)
}
