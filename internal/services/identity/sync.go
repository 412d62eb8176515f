// Package identity syncs verified identity-provider claims into local user
// records. It runs on every authenticated request, so the update path is
// written to skip writes when nothing changed.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service finds or creates users from identity claims.
type Service struct {
	users  database.UserRepositoryInterface
	logger *zap.Logger
}

// NewService creates a new identity sync service
func NewService(users database.UserRepositoryInterface, logger *zap.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// SyncUser reconciles a verified claim with the local user record.
//
// If the token says email_verified=true the user re-authenticated after
// verifying, so it is trusted. If the token says false but the stored record
// says true, the stored value wins: the flag never downgrades.
func (s *Service) SyncUser(ctx context.Context, claim *models.IdentityClaim) (*models.User, error) {
	if claim.Sub == "" {
		return nil, apperror.MissingClaim("sub")
	}
	if claim.Email == "" {
		return nil, apperror.MissingClaim("email")
	}

	user, err := s.users.GetByAuth0ID(ctx, claim.Sub)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return s.createUser(ctx, claim)
	}

	finalVerified := claim.EmailVerified || user.EmailVerified

	var claimPic *string
	if claim.Picture != "" {
		claimPic = &claim.Picture
	}

	profileOutdated := user.Email != claim.Email ||
		!equalStringPtr(user.ProfilePic, claimPic) ||
		user.EmailVerified != finalVerified

	user.LastLoginAt = claim.LoginTime

	if profileOutdated {
		user.Email = claim.Email
		user.ProfilePic = claimPic
		user.EmailVerified = finalVerified
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user profile: %w", err)
		}
		s.logger.Debug("user_profile_refreshed", zap.String("auth0_id", claim.Sub))
		return user, nil
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, claim.LoginTime); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return user, nil
}

func (s *Service) createUser(ctx context.Context, claim *models.IdentityClaim) (*models.User, error) {
	user := &models.User{
		ID:            uuid.New(),
		Auth0ID:       claim.Sub,
		Email:         claim.Email,
		Username:      deriveUsername(claim.Email, claim.Name),
		EmailVerified: claim.EmailVerified,
		LastLoginAt:   claim.LoginTime,
	}
	if claim.Picture != "" {
		pic := claim.Picture
		user.ProfilePic = &pic
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent request for the same subject can win the insert race;
		// the unique constraint on auth0_id makes that visible here, and the
		// winner's row is the one we want.
		if database.IsUniqueViolation(err) {
			existing, getErr := s.users.GetByAuth0ID(ctx, claim.Sub)
			if getErr != nil {
				return nil, fmt.Errorf("failed to fetch user after insert race: %w", getErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user_created",
		zap.String("auth0_id", claim.Sub),
		zap.String("username", user.Username),
	)

	return user, nil
}

// deriveUsername slugs the display name, falling back to the email local part.
func deriveUsername(email, name string) string {
	if name != "" {
		return strings.Join(strings.Fields(strings.ToLower(name)), "_")
	}
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
