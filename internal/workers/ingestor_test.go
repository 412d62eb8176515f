package workers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/fightpulse/fightpulse-api/internal/queue"
	"github.com/fightpulse/fightpulse-api/internal/services/ingestion"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubEventRepo struct {
	created int
}

func (s *stubEventRepo) GetByURL(_ context.Context, _ string) (*models.Event, error) {
	return nil, fmt.Errorf("event not found: %w", sql.ErrNoRows)
}
func (s *stubEventRepo) GetByNameAndDate(_ context.Context, _ string, _ time.Time) (*models.Event, error) {
	return nil, fmt.Errorf("event not found: %w", sql.ErrNoRows)
}
func (s *stubEventRepo) Create(_ context.Context, _ *models.Event) error {
	s.created++
	return nil
}
func (s *stubEventRepo) Update(_ context.Context, _ *models.Event) error { return nil }

type stubFighterRepo struct{}

func (stubFighterRepo) GetByName(_ context.Context, _, _ string) (*models.Fighter, error) {
	return nil, fmt.Errorf("fighter not found: %w", sql.ErrNoRows)
}
func (stubFighterRepo) Create(_ context.Context, f *models.Fighter) error {
	f.ID = uuid.New()
	return nil
}
func (stubFighterRepo) Update(_ context.Context, _ *models.Fighter) error { return nil }

type stubFightRepo struct{}

func (stubFightRepo) GetByParticipants(_ context.Context, _, _, _ uuid.UUID) (*models.Fight, error) {
	return nil, fmt.Errorf("fight not found: %w", sql.ErrNoRows)
}
func (stubFightRepo) Create(_ context.Context, _ *models.Fight) error { return nil }
func (stubFightRepo) Update(_ context.Context, _ *models.Fight) error { return nil }

func newTestIngestor(events *stubEventRepo) *Ingestor {
	svc := ingestion.NewService(events, stubFighterRepo{}, stubFightRepo{}, zap.NewNop())
	return NewIngestor(svc, zap.NewNop())
}

func TestIngestor_ProcessJob(t *testing.T) {
	t.Parallel()

	events := &stubEventRepo{}
	w := newTestIngestor(events)

	job := queue.NewIngestionJob(&models.IngestionPayload{
		Type: models.IngestionUpcomingEvents,
		Data: []models.ScrapedEvent{{Name: "UFC 311", Date: "January 18, 2025"}},
	})

	if err := w.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob: %v", err)
	}
	if events.created != 1 {
		t.Errorf("events created = %d, want 1", events.created)
	}
}

func TestIngestor_ProcessJob_WrongType(t *testing.T) {
	t.Parallel()

	w := newTestIngestor(&stubEventRepo{})

	job := queue.NewIngestionJob(nil)
	job.Type = "task_analysis"

	if err := w.ProcessJob(context.Background(), job); err == nil {
		t.Fatal("expected error for unknown job type")
	}
}

func TestIngestor_ProcessJob_MissingPayload(t *testing.T) {
	t.Parallel()

	w := newTestIngestor(&stubEventRepo{})

	if err := w.ProcessJob(context.Background(), queue.NewIngestionJob(nil)); err == nil {
		t.Fatal("expected error for missing payload")
	}
}

func TestIngestor_ProcessJob_MalformedPayloadFails(t *testing.T) {
	t.Parallel()

	w := newTestIngestor(&stubEventRepo{})

	job := queue.NewIngestionJob(&models.IngestionPayload{Type: "cancelled_events", Data: []models.ScrapedEvent{}})

	if err := w.ProcessJob(context.Background(), job); err == nil {
		t.Fatal("expected error for invalid feed type")
	}
}
