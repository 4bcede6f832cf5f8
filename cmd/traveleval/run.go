package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/travel-eval/internal/eval"
	"github.com/danielpatrickdp/travel-eval/internal/logging"
	"github.com/danielpatrickdp/travel-eval/internal/logstore"
	"github.com/danielpatrickdp/travel-eval/internal/report"
	"github.com/danielpatrickdp/travel-eval/internal/scorer"
	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full evaluation over the logged interactions",
	Long: `Builds test cases from the log store (falling back to the synthetic sample
set when the store is empty), scores every case with every metric, and writes
the JSON artifact and the Markdown report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.All()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			logger.Info("log store is empty, using synthetic sample set")
		}
		cases, err := testcase.Build(entries)
		if err != nil {
			return err
		}

		scorers := scorer.Defaults(scorer.Thresholds{
			AnswerRelevance:   cfg.Thresholds.AnswerRelevance,
			ContentValidation: cfg.Thresholds.ContentValidation,
			QualityRubric:     cfg.Thresholds.QualityRubric,
		})
		rep, err := eval.New(scorers, logger).Run(cases)
		if err != nil {
			return err
		}

		// The report stays printable even when persisting it fails.
		report.PrintSummary(os.Stdout, rep)

		if err := report.WriteJSON(cfg.Results.JSONPath, rep); err != nil {
			return err
		}
		if err := report.WriteMarkdown(cfg.Results.MarkdownPath, rep); err != nil {
			return err
		}

		if err := logging.LogRun(store.DB(), logging.RunRecord{
			RunID:        rep.RunID,
			CaseCount:    rep.Summary.TotalCases,
			PassCount:    rep.Summary.PassCount,
			FailCount:    rep.Summary.FailCount,
			ArtifactPath: cfg.Results.JSONPath,
			CreatedAt:    rep.CreatedAt,
		}); err != nil {
			return err
		}

		fmt.Printf("\nWrote %s and %s\n", cfg.Results.JSONPath, cfg.Results.MarkdownPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
