package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// FightRepository handles fight database operations
type FightRepository struct {
	db *DB
}

// NewFightRepository creates a new fight repository
func NewFightRepository(db *DB) *FightRepository {
	return &FightRepository{db: db}
}

const fightColumns = `id, event_id, fighter_a_id, fighter_b_id, weight_class, is_main_event, is_title_fight, result, result_round, result_method, created_at, updated_at`

func scanFight(scanner interface{ Scan(...any) error }) (*models.Fight, error) {
	fight := &models.Fight{}
	var round sql.NullInt64

	err := scanner.Scan(
		&fight.ID,
		&fight.EventID,
		&fight.FighterAID,
		&fight.FighterBID,
		&fight.WeightClass,
		&fight.IsMainEvent,
		&fight.IsTitleFight,
		&fight.Result,
		&round,
		&fight.ResultMethod,
		&fight.CreatedAt,
		&fight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if round.Valid {
		r := int(round.Int64)
		fight.ResultRound = &r
	}

	return fight, nil
}

// GetByParticipants retrieves a fight by its (event, fighter A, fighter B)
// natural key. The ordering is positional: swapping A and B is a different key.
func (r *FightRepository) GetByParticipants(ctx context.Context, eventID, fighterAID, fighterBID uuid.UUID) (*models.Fight, error) {
	query := `
		SELECT ` + fightColumns + `
		FROM fights
		WHERE event_id = $1 AND fighter_a_id = $2 AND fighter_b_id = $3
	`

	fight, err := scanFight(r.db.QueryRowContext(ctx, query, eventID, fighterAID, fighterBID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("fight not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fight by participants: %w", err)
	}

	return fight, nil
}

// GetByEventID retrieves all fights on an event's card
func (r *FightRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]*models.Fight, error) {
	query := `SELECT ` + fightColumns + ` FROM fights WHERE event_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fights: %w", err)
	}
	defer rows.Close()

	var fights []*models.Fight
	for rows.Next() {
		fight, err := scanFight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fight: %w", err)
		}
		fights = append(fights, fight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fights: %w", err)
	}

	return fights, nil
}

// Create creates a new fight
func (r *FightRepository) Create(ctx context.Context, fight *models.Fight) error {
	query := `
		INSERT INTO fights (id, event_id, fighter_a_id, fighter_b_id, weight_class, is_main_event, is_title_fight, result, result_round, result_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		fight.ID,
		fight.EventID,
		fight.FighterAID,
		fight.FighterBID,
		fight.WeightClass,
		fight.IsMainEvent,
		fight.IsTitleFight,
		fight.Result,
		fight.ResultRound,
		fight.ResultMethod,
		now,
		now,
	).Scan(&fight.CreatedAt, &fight.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fight: %w", err)
	}

	return nil
}

// Update overwrites a fight's mutable fields
func (r *FightRepository) Update(ctx context.Context, fight *models.Fight) error {
	query := `
		UPDATE fights
		SET weight_class = $2, is_main_event = $3, is_title_fight = $4,
		    result = $5, result_round = $6, result_method = $7, updated_at = $8
		WHERE id = $1
		RETURNING updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		fight.ID,
		fight.WeightClass,
		fight.IsMainEvent,
		fight.IsTitleFight,
		fight.Result,
		fight.ResultRound,
		fight.ResultMethod,
		now,
	).Scan(&fight.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("fight not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update fight: %w", err)
	}

	return nil
}
