package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPromotion is the promotion tag stamped on every ingested event.
const DefaultPromotion = "UFC"

// Event represents a fight event (card). EventURL is the preferred natural
// key when the scraper supplies it; (Name, Date) is the fallback.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location,omitempty"`
	City        *string   `json:"city,omitempty"`
	Country     *string   `json:"country,omitempty"`
	Venue       *string   `json:"venue,omitempty"`
	BannerURL   *string   `json:"banner_url,omitempty"`
	Promotion   string    `json:"promotion"`
	IsCompleted bool      `json:"is_completed"`
	EventURL    *string   `json:"event_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
