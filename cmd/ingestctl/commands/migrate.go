package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fightpulse/fightpulse-api/internal/config"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := db.Migrate(context.Background()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println("Schema is up to date")
			return nil
		},
	}
}
