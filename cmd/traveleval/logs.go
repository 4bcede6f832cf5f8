package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/travel-eval/internal/logging"
	"github.com/danielpatrickdp/travel-eval/internal/logstore"
)

var (
	logsLimit int
	runsLimit int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List recent logged interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		total, err := store.Count()
		if err != nil {
			return err
		}
		if total == 0 {
			fmt.Println("No logged interactions.")
			return nil
		}

		entries, err := store.Recent(logsLimit)
		if err != nil {
			return err
		}

		fmt.Printf("%-20s| %-18s| %-5s| %s\n", "Logged At", "Destination", "Days", "Response")
		for _, e := range entries {
			fmt.Printf("%-20s| %-18s| %-5d| %s\n",
				e.CreatedAt.Format(time.DateTime), e.Destination, e.NumDays, snippet(e.Response, 60))
		}
		fmt.Printf("\nShowing %d of %d interactions\n", len(entries), total)
		return nil
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past evaluation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := logging.ListRuns(store.DB(), runsLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No evaluation runs recorded.")
			return nil
		}

		fmt.Printf("%-20s| %-6s| %-6s| %-6s| %s\n", "Run At", "Cases", "Pass", "Fail", "Artifact")
		for _, r := range records {
			fmt.Printf("%-20s| %-6d| %-6d| %-6d| %s\n",
				r.CreatedAt.Format(time.DateTime), r.CaseCount, r.PassCount, r.FailCount, r.ArtifactPath)
		}
		return nil
	},
}

// snippet truncates s to at most n runes on a single line.
func snippet(s string, n int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	r := []rune(s)
	if len(r) > n {
		return string(r[:n]) + "..."
	}
	return s
}

func init() {
	logsCmd.Flags().IntVar(&logsLimit, "limit", 10, "maximum entries to list")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "maximum runs to list")
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(runsCmd)
}
