package workers

import (
	"context"
	"fmt"

	"github.com/fightpulse/fightpulse-api/internal/queue"
	"github.com/fightpulse/fightpulse-api/internal/services/ingestion"
	"go.uber.org/zap"
)

// Ingestor processes queued scraper batches through the same ingestion
// service the HTTP endpoint uses.
type Ingestor struct {
	service *ingestion.Service
	logger  *zap.Logger
}

// NewIngestor creates a new ingestor
func NewIngestor(service *ingestion.Service, logger *zap.Logger) *Ingestor {
	return &Ingestor{service: service, logger: logger}
}

// ProcessJob runs one queued batch. A returned error means the job should be
// retried or dead-lettered; a summary with per-record errors is still success.
func (w *Ingestor) ProcessJob(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeIngestionBatch {
		return fmt.Errorf("unexpected job type: %s", job.Type)
	}
	if job.Payload == nil {
		return fmt.Errorf("payload is required for ingestion job")
	}

	summary, err := w.service.Ingest(ctx, job.Payload)
	if err != nil {
		return fmt.Errorf("failed to ingest batch: %w", err)
	}

	w.logger.Info("queued_batch_ingested",
		zap.String("job_id", job.ID.String()),
		zap.String("type", string(summary.Type)),
		zap.Int("total", summary.Total),
		zap.Int("events_created", summary.Events.Created),
		zap.Int("events_updated", summary.Events.Updated),
		zap.Int("error_count", len(summary.Errors)),
	)

	return nil
}

// Run consumes jobs until the context is cancelled. Failed jobs are requeued
// while retries remain, then dead-lettered.
func (w *Ingestor) Run(ctx context.Context, jobQueue queue.JobQueue, prefetch int) error {
	msgs, errs, err := jobQueue.Consume(ctx, prefetch)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case consumeErr, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Error("queue_consume_error", zap.Error(consumeErr))
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handleMessage(ctx, jobQueue, msg)
		}
	}
}

func (w *Ingestor) handleMessage(ctx context.Context, jobQueue queue.JobQueue, msg *queue.Message) {
	job := msg.GetJob()

	if err := w.ProcessJob(ctx, job); err != nil {
		w.logger.Warn("ingestion_job_failed",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount),
			zap.Error(err),
		)

		if job.CanRetry() {
			job.IncrementRetry()
			if ackErr := msg.Ack(); ackErr != nil {
				w.logger.Error("failed_to_ack_message", zap.Error(ackErr))
				return
			}
			if enqErr := jobQueue.Enqueue(ctx, job); enqErr != nil {
				w.logger.Error("failed_to_requeue_job",
					zap.String("job_id", job.ID.String()),
					zap.Error(enqErr),
				)
			}
			return
		}

		// Retries exhausted; nack without requeue routes to the DLQ
		if nackErr := msg.Nack(false); nackErr != nil {
			w.logger.Error("failed_to_nack_message", zap.Error(nackErr))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		w.logger.Error("failed_to_ack_message", zap.Error(err))
	}
}
