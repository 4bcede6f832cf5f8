package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/travel-eval/internal/logstore"
)

var importCmd = &cobra.Command{
	Use:   "import <logs.jsonl>",
	Short: "Append interactions from a JSONL log file to the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.ImportJSONL(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d interactions from %s into %s\n", n, args[0], cfg.DBPath)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <logs.jsonl>",
	Short: "Write the full interaction log to a JSONL file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := logstore.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.ExportJSONL(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d interactions to %s\n", n, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
