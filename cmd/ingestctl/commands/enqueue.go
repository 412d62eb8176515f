package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fightpulse/fightpulse-api/internal/config"
	"github.com/fightpulse/fightpulse-api/internal/queue"
	"github.com/spf13/cobra"
)

// NewEnqueueCmd creates the enqueue command
func NewEnqueueCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Publish a scraper payload file to the job queue",
		Long:  "Read a JSON payload file and publish it to RabbitMQ for a worker to ingest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(file)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.RabbitMQURL == "" {
				return fmt.Errorf("RABBITMQ_URL is not configured")
			}

			jobQueue, err := queue.NewRabbitMQQueue(cfg.RabbitMQURL)
			if err != nil {
				return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
			}
			defer func() {
				if err := jobQueue.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close queue: %v\n", err)
				}
			}()

			job := queue.NewIngestionJob(payload)
			if err := jobQueue.Enqueue(context.Background(), job); err != nil {
				return fmt.Errorf("failed to enqueue job: %w", err)
			}

			fmt.Printf("Enqueued job %s (%d events)\n", job.ID, len(payload.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the JSON payload file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
