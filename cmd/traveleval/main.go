// Command traveleval is the entry point for the travel itinerary agent and
// its evaluation harness.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/travel-eval/internal/config"
)

var (
	cfgPath string
	cfg     config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "traveleval",
	Short: "Travel itinerary agent with a heuristic evaluation harness",
	Long: `traveleval runs a two-stage research/plan pipeline that generates travel
itineraries, logs every interaction, and scores the logged responses against
heuristic quality metrics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		if cfgPath == "" {
			cfg = config.Default()
			return nil
		}
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
