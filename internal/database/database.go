package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DB wraps the sql connection pool
type DB struct {
	*sql.DB
}

// New opens a Postgres connection pool and verifies it
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// uniqueViolation is the Postgres error code for unique-constraint violations.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Concurrent callers racing on the same natural key surface here.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// foreignKeyViolation is the Postgres error code for foreign-key violations.
const foreignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// violation, e.g. a follow referencing a fighter that does not exist.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// Migrate creates the schema if it does not exist. Statements are ordered by
// foreign-key dependency.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			auth0_id TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL,
			username TEXT NOT NULL,
			profile_pic TEXT,
			email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			last_login_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fighters (
			id UUID PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			nickname TEXT,
			weight_class TEXT,
			country TEXT,
			image_url TEXT,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			draws INTEGER NOT NULL DEFAULT 0,
			no_contests INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// Lookup index only. Fighter names are not unique by design:
		// the ingestion lookup is best-effort first match.
		`CREATE INDEX IF NOT EXISTS idx_fighters_name ON fighters (first_name, last_name)`,
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			location TEXT,
			city TEXT,
			country TEXT,
			venue TEXT,
			banner_url TEXT,
			promotion TEXT NOT NULL DEFAULT 'UFC',
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			event_url TEXT UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_name_date ON events (name, date)`,
		`CREATE TABLE IF NOT EXISTS fights (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			fighter_a_id UUID NOT NULL REFERENCES fighters(id),
			fighter_b_id UUID NOT NULL REFERENCES fighters(id),
			weight_class TEXT,
			is_main_event BOOLEAN NOT NULL DEFAULT FALSE,
			is_title_fight BOOLEAN NOT NULL DEFAULT FALSE,
			result TEXT NOT NULL DEFAULT 'unknown',
			result_round INTEGER,
			result_method TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (event_id, fighter_a_id, fighter_b_id)
		)`,
		`CREATE TABLE IF NOT EXISTS follows (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			fighter_id UUID NOT NULL REFERENCES fighters(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, fighter_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
