package identity

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mockUserRepo is an in-memory UserRepositoryInterface for tests
type mockUserRepo struct {
	byAuth0ID      map[string]*models.User
	createCalls    int
	updateCalls    int
	lastLoginCalls int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byAuth0ID: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	m.createCalls++
	if _, exists := m.byAuth0ID[user.Auth0ID]; exists {
		return fmt.Errorf("duplicate auth0_id")
	}
	cp := *user
	m.byAuth0ID[user.Auth0ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByAuth0ID(_ context.Context, auth0ID string) (*models.User, error) {
	user, ok := m.byAuth0ID[auth0ID]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", sql.ErrNoRows)
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *models.User) error {
	m.updateCalls++
	cp := *user
	m.byAuth0ID[user.Auth0ID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, loginTime *time.Time) error {
	m.lastLoginCalls++
	for _, u := range m.byAuth0ID {
		if u.ID == id {
			u.LastLoginAt = loginTime
		}
	}
	return nil
}

func newService(repo *mockUserRepo) *Service {
	return NewService(repo, zap.NewNop())
}

func TestSyncUserMissingEmail(t *testing.T) {
	t.Parallel()

	svc := newService(newMockUserRepo())
	_, err := svc.SyncUser(context.Background(), &models.IdentityClaim{Sub: "auth0|abc"})
	if !apperror.IsKind(err, apperror.KindMissingClaim) {
		t.Fatalf("expected missing-claim error, got %v", err)
	}
}

func TestSyncUserCreatesOnFirstLogin(t *testing.T) {
	t.Parallel()

	repo := newMockUserRepo()
	svc := newService(repo)
	now := time.Now()

	user, err := svc.SyncUser(context.Background(), &models.IdentityClaim{
		Sub:           "auth0|abc",
		Email:         "dan@example.com",
		Name:          "Dan Hooker",
		Picture:       "https://cdn.example.com/dan.png",
		EmailVerified: true,
		LoginTime:     &now,
	})
	if err != nil {
		t.Fatalf("SyncUser() error = %v", err)
	}

	if user.Username != "dan_hooker" {
		t.Errorf("expected username derived from name slug, got %q", user.Username)
	}
	if !user.EmailVerified {
		t.Error("expected email_verified to be carried from claim")
	}
	if user.ProfilePic == nil || *user.ProfilePic != "https://cdn.example.com/dan.png" {
		t.Error("expected profile pic to be stored")
	}
	if repo.createCalls != 1 {
		t.Errorf("expected 1 create, got %d", repo.createCalls)
	}
}

func TestSyncUserUsernameFallsBackToEmailLocalPart(t *testing.T) {
	t.Parallel()

	svc := newService(newMockUserRepo())
	user, err := svc.SyncUser(context.Background(), &models.IdentityClaim{
		Sub:   "auth0|abc",
		Email: "arman.t@example.com",
	})
	if err != nil {
		t.Fatalf("SyncUser() error = %v", err)
	}
	if user.Username != "arman.t" {
		t.Errorf("expected email local part username, got %q", user.Username)
	}
}

func TestSyncUserVerifiedFlagNeverDowngrades(t *testing.T) {
	t.Parallel()

	repo := newMockUserRepo()
	svc := newService(repo)
	ctx := context.Background()

	if _, err := svc.SyncUser(ctx, &models.IdentityClaim{
		Sub: "auth0|abc", Email: "dan@example.com", EmailVerified: true,
	}); err != nil {
		t.Fatalf("first sync error = %v", err)
	}

	user, err := svc.SyncUser(ctx, &models.IdentityClaim{
		Sub: "auth0|abc", Email: "dan@example.com", EmailVerified: false,
	})
	if err != nil {
		t.Fatalf("second sync error = %v", err)
	}
	if !user.EmailVerified {
		t.Error("email_verified downgraded from true to false")
	}
}

func TestSyncUserSkipsFullWriteWhenProfileUnchanged(t *testing.T) {
	t.Parallel()

	repo := newMockUserRepo()
	svc := newService(repo)
	ctx := context.Background()
	claim := &models.IdentityClaim{
		Sub: "auth0|abc", Email: "dan@example.com", EmailVerified: true,
	}

	if _, err := svc.SyncUser(ctx, claim); err != nil {
		t.Fatalf("first sync error = %v", err)
	}

	later := time.Now().Add(time.Hour)
	claim2 := *claim
	claim2.LoginTime = &later
	user, err := svc.SyncUser(ctx, &claim2)
	if err != nil {
		t.Fatalf("second sync error = %v", err)
	}

	if repo.updateCalls != 0 {
		t.Errorf("expected no full profile update, got %d", repo.updateCalls)
	}
	if repo.lastLoginCalls != 1 {
		t.Errorf("expected lone last-login refresh, got %d", repo.lastLoginCalls)
	}
	if user.LastLoginAt == nil || !user.LastLoginAt.Equal(later) {
		t.Error("expected returned user to carry the fresh login time")
	}
}

func TestSyncUserWritesOnceWhenProfileChanged(t *testing.T) {
	t.Parallel()

	repo := newMockUserRepo()
	svc := newService(repo)
	ctx := context.Background()

	if _, err := svc.SyncUser(ctx, &models.IdentityClaim{
		Sub: "auth0|abc", Email: "old@example.com",
	}); err != nil {
		t.Fatalf("first sync error = %v", err)
	}

	user, err := svc.SyncUser(ctx, &models.IdentityClaim{
		Sub: "auth0|abc", Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("second sync error = %v", err)
	}

	if user.Email != "new@example.com" {
		t.Errorf("expected email refreshed, got %q", user.Email)
	}
	if repo.updateCalls != 1 {
		t.Errorf("expected single combined update, got %d", repo.updateCalls)
	}
	if repo.lastLoginCalls != 0 {
		t.Errorf("expected no separate last-login write, got %d", repo.lastLoginCalls)
	}
}
