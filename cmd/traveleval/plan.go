package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/danielpatrickdp/travel-eval/internal/agent"
	"github.com/danielpatrickdp/travel-eval/internal/gemini"
	"github.com/danielpatrickdp/travel-eval/internal/logstore"
)

var (
	planDestination string
	planDays        int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an itinerary and log the interaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("create genai client: %w", err)
		}

		opts := []agent.Option{
			agent.WithStore(store),
			agent.WithModelName(cfg.Model.Name),
			agent.WithLogger(logger),
		}
		if cfg.Model.ResearchEnabled {
			opts = append(opts, agent.WithResearcher(gemini.NewGenerator(client, cfg.Model.Name)))
		}
		pipeline := agent.NewPipeline(gemini.NewGenerator(client, cfg.Model.Name), opts...)

		itinerary, err := pipeline.Itinerary(ctx, planDestination, planDays)
		if err != nil {
			return err
		}

		fmt.Println(itinerary)
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planDestination, "destination", "d", "", "travel destination")
	planCmd.Flags().IntVarP(&planDays, "days", "n", 7, "number of days")
	planCmd.MarkFlagRequired("destination")
	rootCmd.AddCommand(planCmd)
}
