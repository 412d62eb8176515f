package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, auth0_id, email, username, profile_pic, email_verified, last_login_at, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Auth0ID,
		&user.Email,
		&user.Username,
		&user.ProfilePic,
		&user.EmailVerified,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}

	return user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, auth0_id, email, username, profile_pic, email_verified, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.ID,
		user.Auth0ID,
		user.Email,
		user.Username,
		user.ProfilePic,
		user.EmailVerified,
		user.LastLoginAt,
		now,
		now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByAuth0ID retrieves a user by the identity provider's subject id
func (r *UserRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth0_id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, auth0ID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by auth0 id: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Update persists all mutable profile fields plus last_login_at
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $2, profile_pic = $3, email_verified = $4, last_login_at = $5, updated_at = $6
		WHERE id = $1
		RETURNING updated_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.ID,
		user.Email,
		user.ProfilePic,
		user.EmailVerified,
		user.LastLoginAt,
		now,
	).Scan(&user.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("user not found")
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateLastLogin refreshes only last_login_at, for syncs where no tracked
// profile field changed
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, loginTime *time.Time) error {
	query := `UPDATE users SET last_login_at = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, loginTime); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
