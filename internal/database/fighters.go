package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// FighterRepository handles fighter database operations
type FighterRepository struct {
	db *DB
}

// NewFighterRepository creates a new fighter repository
func NewFighterRepository(db *DB) *FighterRepository {
	return &FighterRepository{db: db}
}

const fighterColumns = `id, first_name, last_name, nickname, weight_class, country, image_url, wins, losses, draws, no_contests, created_at, updated_at`

func scanFighter(scanner interface{ Scan(...any) error }) (*models.Fighter, error) {
	fighter := &models.Fighter{}
	err := scanner.Scan(
		&fighter.ID,
		&fighter.FirstName,
		&fighter.LastName,
		&fighter.Nickname,
		&fighter.WeightClass,
		&fighter.Country,
		&fighter.ImageURL,
		&fighter.Wins,
		&fighter.Losses,
		&fighter.Draws,
		&fighter.NoContests,
		&fighter.CreatedAt,
		&fighter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fighter, nil
}

// GetByName retrieves a fighter by exact (first_name, last_name) match.
// Names are not unique in the schema; this returns the oldest match, so two
// fighters sharing a name collapse to one row during ingestion. Known
// limitation carried over from the scraper's data model.
func (r *FighterRepository) GetByName(ctx context.Context, firstName, lastName string) (*models.Fighter, error) {
	query := `
		SELECT ` + fighterColumns + `
		FROM fighters
		WHERE first_name = $1 AND last_name = $2
		ORDER BY created_at ASC
		LIMIT 1
	`

	fighter, err := scanFighter(r.db.QueryRowContext(ctx, query, firstName, lastName))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("fighter not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter by name: %w", err)
	}

	return fighter, nil
}

// GetByID retrieves a fighter by ID
func (r *FighterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Fighter, error) {
	query := `SELECT ` + fighterColumns + ` FROM fighters WHERE id = $1`

	fighter, err := scanFighter(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("fighter not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}

	return fighter, nil
}

// Create creates a new fighter
func (r *FighterRepository) Create(ctx context.Context, fighter *models.Fighter) error {
	query := `
		INSERT INTO fighters (id, first_name, last_name, nickname, weight_class, country, image_url, wins, losses, draws, no_contests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		fighter.ID,
		fighter.FirstName,
		fighter.LastName,
		fighter.Nickname,
		fighter.WeightClass,
		fighter.Country,
		fighter.ImageURL,
		fighter.Wins,
		fighter.Losses,
		fighter.Draws,
		fighter.NoContests,
		now,
		now,
	).Scan(&fighter.CreatedAt, &fighter.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fighter: %w", err)
	}

	return nil
}

// Update overwrites a fighter's profile and stat counters
func (r *FighterRepository) Update(ctx context.Context, fighter *models.Fighter) error {
	query := `
		UPDATE fighters
		SET nickname = $2, weight_class = $3, country = $4, image_url = $5,
		    wins = $6, losses = $7, draws = $8, no_contests = $9, updated_at = $10
		WHERE id = $1
		RETURNING updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		fighter.ID,
		fighter.Nickname,
		fighter.WeightClass,
		fighter.Country,
		fighter.ImageURL,
		fighter.Wins,
		fighter.Losses,
		fighter.Draws,
		fighter.NoContests,
		now,
	).Scan(&fighter.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("fighter not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update fighter: %w", err)
	}

	return nil
}
