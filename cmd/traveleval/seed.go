package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/travel-eval/internal/logstore"
	"github.com/danielpatrickdp/travel-eval/internal/testcase"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Append the synthetic sample interactions to the log store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		cases := testcase.Fallback()
		for _, tc := range cases {
			_, err := store.Append(logstore.Entry{
				Destination:  tc.Destination,
				NumDays:      tc.NumDays,
				Response:     tc.Response,
				MetadataJSON: `{"source":"seed"}`,
			})
			if err != nil {
				return err
			}
		}

		fmt.Printf("Seeded %d sample interactions into %s\n", len(cases), cfg.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
