package models

import (
	"time"

	"github.com/google/uuid"
)

// Fighter represents a fighter profile with career stats.
// (FirstName, LastName) is the natural key used by ingestion lookups;
// it is deliberately not database-unique.
type Fighter struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Nickname    *string   `json:"nickname,omitempty"`
	WeightClass *string   `json:"weight_class,omitempty"`
	Country     *string   `json:"country,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Draws       int       `json:"draws"`
	NoContests  int       `json:"no_contests"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName returns the fighter's display name.
func (f *Fighter) FullName() string {
	if f.FirstName == "" {
		return f.LastName
	}
	return f.FirstName + " " + f.LastName
}
