package queue

import (
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// JobType represents the type of job
type JobType string

// JobTypeIngestionBatch carries one scraper payload to be ingested.
const JobTypeIngestionBatch JobType = "ingestion_batch"

// Job represents a job in the queue
type Job struct {
	ID         uuid.UUID                `json:"id"`
	Type       JobType                  `json:"type"`
	Payload    *models.IngestionPayload `json:"payload,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	RetryCount int                      `json:"retry_count"`
	MaxRetries int                      `json:"max_retries"`
}

// NewIngestionJob wraps a scraper payload for queued processing
func NewIngestionJob(payload *models.IngestionPayload) *Job {
	return &Job{
		ID:         uuid.New(),
		Type:       JobTypeIngestionBatch,
		Payload:    payload,
		CreatedAt:  time.Now(),
		RetryCount: 0,
		MaxRetries: 3,
	}
}

// CanRetry checks if the job can be retried
func (j *Job) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}

// IncrementRetry increments the retry count
func (j *Job) IncrementRetry() {
	j.RetryCount++
}
