package database

import (
	"context"
	"fmt"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// FollowRepository handles follow database operations
type FollowRepository struct {
	db *DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts a follow. A duplicate (user, fighter) pair surfaces as an
// apperror with KindConflict so callers can treat it as a no-op.
func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO follows (id, user_id, fighter_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		follow.ID,
		follow.UserID,
		follow.FighterID,
		time.Now(),
	).Scan(&follow.CreatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			return apperror.Conflict("follow", err)
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

// DeleteByPair deletes the follow for (user, fighter) and returns how many
// rows went away. Zero rows is not an error.
func (r *FollowRepository) DeleteByPair(ctx context.Context, userID, fighterID uuid.UUID) (int64, error) {
	query := `DELETE FROM follows WHERE user_id = $1 AND fighter_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, fighterID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// ListByUser returns the user's follows joined with fighter details, most
// recent follow first.
func (r *FollowRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FollowedFighter, error) {
	query := `
		SELECT fo.id, fo.user_id, fo.fighter_id, fo.created_at,
		       f.id, f.first_name, f.last_name, f.nickname, f.weight_class, f.country, f.image_url,
		       f.wins, f.losses, f.draws, f.no_contests, f.created_at, f.updated_at
		FROM follows fo
		JOIN fighters f ON f.id = fo.fighter_id
		WHERE fo.user_id = $1
		ORDER BY fo.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query follows: %w", err)
	}
	defer rows.Close()

	var followed []*models.FollowedFighter
	for rows.Next() {
		item := &models.FollowedFighter{Fighter: &models.Fighter{}}
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.FighterID,
			&item.CreatedAt,
			&item.Fighter.ID,
			&item.Fighter.FirstName,
			&item.Fighter.LastName,
			&item.Fighter.Nickname,
			&item.Fighter.WeightClass,
			&item.Fighter.Country,
			&item.Fighter.ImageURL,
			&item.Fighter.Wins,
			&item.Fighter.Losses,
			&item.Fighter.Draws,
			&item.Fighter.NoContests,
			&item.Fighter.CreatedAt,
			&item.Fighter.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		followed = append(followed, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}

	return followed, nil
}
