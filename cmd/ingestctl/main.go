package main

import (
	"fmt"
	"os"

	"github.com/fightpulse/fightpulse-api/cmd/ingestctl/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "ingestctl",
		Short: "Ingestion tool for the FightPulse API",
		Long:  "CLI tool for running scraper batches directly or through the job queue",
	}

	rootCmd.AddCommand(commands.NewIngestCmd())
	rootCmd.AddCommand(commands.NewEnqueueCmd())
	rootCmd.AddCommand(commands.NewMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
