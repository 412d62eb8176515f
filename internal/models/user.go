package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the system, synced from the identity provider
type User struct {
	ID            uuid.UUID  `json:"id"`
	Auth0ID       string     `json:"auth0_id"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	ProfilePic    *string    `json:"profile_pic,omitempty"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
