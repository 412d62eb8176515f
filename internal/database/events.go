package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// EventRepository handles event database operations
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, name, date, location, city, country, venue, banner_url, promotion, is_completed, event_url, created_at, updated_at`

func scanEvent(scanner interface{ Scan(...any) error }) (*models.Event, error) {
	event := &models.Event{}
	err := scanner.Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.City,
		&event.Country,
		&event.Venue,
		&event.BannerURL,
		&event.Promotion,
		&event.IsCompleted,
		&event.EventURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetByURL retrieves an event by its scraper-supplied unique URL
func (r *EventRepository) GetByURL(ctx context.Context, eventURL string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_url = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, eventURL))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event by url: %w", err)
	}

	return event, nil
}

// GetByNameAndDate retrieves an event by the (name, date) fallback natural key
func (r *EventRepository) GetByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE name = $1 AND date = $2 LIMIT 1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, name, date))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event by name and date: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, name, date, location, city, country, venue, banner_url, promotion, is_completed, event_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		event.ID,
		event.Name,
		event.Date,
		event.Location,
		event.City,
		event.Country,
		event.Venue,
		event.BannerURL,
		event.Promotion,
		event.IsCompleted,
		event.EventURL,
		now,
		now,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// Update overwrites an event's mutable fields and refreshes updated_at
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET name = $2, date = $3, location = $4, city = $5, country = $6,
		    venue = $7, banner_url = $8, promotion = $9, is_completed = $10, updated_at = $11
		WHERE id = $1
		RETURNING updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		event.ID,
		event.Name,
		event.Date,
		event.Location,
		event.City,
		event.Country,
		event.Venue,
		event.BannerURL,
		event.Promotion,
		event.IsCompleted,
		now,
	).Scan(&event.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("event not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}
