package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fightpulse/fightpulse-api/internal/config"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/fightpulse/fightpulse-api/internal/services/ingestion"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a scraper payload file directly into the database",
		Long:  "Read a JSON payload file and run the full ingestion pipeline against the configured database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(file)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
				}
			}()

			svc := ingestion.NewService(
				database.NewEventRepository(db),
				database.NewFighterRepository(db),
				database.NewFightRepository(db),
				zap.NewNop(),
			)

			summary, err := svc.Ingest(context.Background(), payload)
			if err != nil {
				return fmt.Errorf("ingestion failed: %w", err)
			}

			printSummary(summary)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the JSON payload file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readPayload(path string) (*models.IngestionPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}

	var payload models.IngestionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse payload file: %w", err)
	}

	return &payload, nil
}

func printSummary(summary *models.IngestionSummary) {
	fmt.Printf("Batch type: %s\n", summary.Type)
	fmt.Printf("Total events in payload: %d\n", summary.Total)
	fmt.Printf("Events:   %d created, %d updated\n", summary.Events.Created, summary.Events.Updated)
	fmt.Printf("Fighters: %d created, %d updated\n", summary.Fighters.Created, summary.Fighters.Updated)
	fmt.Printf("Fights:   %d created, %d updated\n", summary.Fights.Created, summary.Fights.Updated)
	if len(summary.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(summary.Errors))
		for _, e := range summary.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
