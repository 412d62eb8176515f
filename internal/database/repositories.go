package database

import (
	"context"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

// UserRepositoryInterface is the persistence gateway the identity sync
// service depends on. Interfaces here enable mock implementations in tests.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, loginTime *time.Time) error
}

// FighterRepositoryInterface is the fighter gateway used by ingestion.
type FighterRepositoryInterface interface {
	GetByName(ctx context.Context, firstName, lastName string) (*models.Fighter, error)
	Create(ctx context.Context, fighter *models.Fighter) error
	Update(ctx context.Context, fighter *models.Fighter) error
}

// EventRepositoryInterface is the event gateway used by ingestion.
type EventRepositoryInterface interface {
	GetByURL(ctx context.Context, eventURL string) (*models.Event, error)
	GetByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
}

// FightRepositoryInterface is the fight gateway used by ingestion.
type FightRepositoryInterface interface {
	GetByParticipants(ctx context.Context, eventID, fighterAID, fighterBID uuid.UUID) (*models.Fight, error)
	Create(ctx context.Context, fight *models.Fight) error
	Update(ctx context.Context, fight *models.Fight) error
}

// FollowRepositoryInterface is the gateway behind the follow endpoints.
type FollowRepositoryInterface interface {
	Create(ctx context.Context, follow *models.Follow) error
	DeleteByPair(ctx context.Context, userID, fighterID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FollowedFighter, error)
}

// Ensure concrete types implement the interfaces
var (
	_ UserRepositoryInterface    = (*UserRepository)(nil)
	_ FighterRepositoryInterface = (*FighterRepository)(nil)
	_ EventRepositoryInterface   = (*EventRepository)(nil)
	_ FightRepositoryInterface   = (*FightRepository)(nil)
	_ FollowRepositoryInterface  = (*FollowRepository)(nil)
)
