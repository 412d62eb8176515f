package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a user-follows-fighter relationship. (UserID, FighterID) is unique.
type Follow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FighterID uuid.UUID `json:"fighter_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FollowedFighter is a follow joined with the fighter's details, as returned
// by the list endpoint.
type FollowedFighter struct {
	Follow
	Fighter *Fighter `json:"fighter"`
}
